// internal/ui/game_over_panel.go
package ui

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"

	"go-car-shooter/internal/config"
)

const (
	panelWidth     = 360
	panelHeight    = 200
	animationSpeed = 25.0
	buttonWidth    = 160
	buttonHeight   = 36
)

// Button представляет кликабельную кнопку в UI.
type Button struct {
	Rect image.Rectangle
	Text string
}

// GameOverPanel выезжает снизу, показывает итоговый счёт и кнопку рестарта.
type GameOverPanel struct {
	IsVisible     bool
	RestartButton Button
	score         int
	face          font.Face
	titleFace     font.Face
	screenW       int
	screenH       int
	currentY      float64
	targetY       float64
}

func NewGameOverPanel(face, titleFace font.Face, screenW, screenH int) *GameOverPanel {
	return &GameOverPanel{
		face:      face,
		titleFace: titleFace,
		screenW:   screenW,
		screenH:   screenH,
		currentY:  float64(screenH),
		targetY:   float64(screenH),
	}
}

// Show starts the slide-in with the final score.
func (p *GameOverPanel) Show(score int) {
	p.score = score
	p.IsVisible = true
	p.targetY = float64(p.screenH-panelHeight) / 2
}

// Hide убирает панель сразу, без анимации.
func (p *GameOverPanel) Hide() {
	p.IsVisible = false
	p.currentY = float64(p.screenH)
	p.targetY = p.currentY
}

// Update animates the panel and reports whether the restart button was clicked.
func (p *GameOverPanel) Update(clicked bool, cursorX, cursorY int) bool {
	if p.currentY != p.targetY {
		diff := p.targetY - p.currentY
		switch {
		case math.Abs(diff) < animationSpeed:
			p.currentY = p.targetY
		case diff > 0:
			p.currentY += animationSpeed
		default:
			p.currentY -= animationSpeed
		}
	}
	p.layout()

	if !p.IsVisible || !clicked {
		return false
	}
	return image.Pt(cursorX, cursorY).In(p.RestartButton.Rect)
}

// Settled reports whether the slide-in has finished.
func (p *GameOverPanel) Settled() bool {
	return p.IsVisible && p.currentY == p.targetY
}

func (p *GameOverPanel) layout() {
	x := (p.screenW - buttonWidth) / 2
	y := int(p.currentY) + panelHeight - buttonHeight - 20
	p.RestartButton = Button{
		Rect: image.Rect(x, y, x+buttonWidth, y+buttonHeight),
		Text: "Restart (R)",
	}
}

// GameOverLines returns the title and the score line.
func GameOverLines(score int) (string, string) {
	return "GAME OVER", fmt.Sprintf("Final score: %d", score)
}

func (p *GameOverPanel) Draw(screen *ebiten.Image) {
	if !p.IsVisible {
		return
	}
	sw, sh := float32(p.screenW), float32(p.screenH)
	vector.DrawFilledRect(screen, 0, 0, sw, sh, config.OverlayColor, false)

	x := (sw - panelWidth) / 2
	y := float32(p.currentY)
	vector.DrawFilledRect(screen, x, y, panelWidth, panelHeight, color.RGBA{20, 20, 30, 235}, false)
	vector.StrokeRect(screen, x, y, panelWidth, panelHeight, 2, color.RGBA{70, 100, 120, 255}, false)

	title, scoreLine := GameOverLines(p.score)
	p.drawCentered(screen, title, p.titleFace, int(y)+50, config.TextLightColor)
	p.drawCentered(screen, scoreLine, p.face, int(y)+95, config.TextLightColor)

	r := p.RestartButton.Rect
	vector.DrawFilledRect(screen, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), color.RGBA{60, 60, 80, 255}, false)
	vector.StrokeRect(screen, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), 1, color.White, false)
	b := text.BoundString(p.face, p.RestartButton.Text)
	text.Draw(screen, p.RestartButton.Text, p.face, r.Min.X+(r.Dx()-b.Dx())/2, r.Min.Y+(r.Dy()+b.Dy())/2, color.White)
}

func (p *GameOverPanel) drawCentered(screen *ebiten.Image, s string, face font.Face, y int, clr color.Color) {
	b := text.BoundString(face, s)
	text.Draw(screen, s, face, (p.screenW-b.Dx())/2, y, clr)
}
