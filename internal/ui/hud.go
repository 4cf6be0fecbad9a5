// internal/ui/hud.go
package ui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"

	"go-car-shooter/internal/component"
	"go-car-shooter/internal/config"
	"go-car-shooter/internal/interfaces"
)

// HUD draws the counters in the top-left corner.
type HUD struct {
	face      font.Face
	health    *PlayerHealthIndicator
	maxHealth int
	textColor color.Color
}

func NewHUD(face font.Face, maxHealth int) *HUD {
	top := float32(config.HUDLineHeight*4 + 8)
	return &HUD{
		face:      face,
		health:    NewPlayerHealthIndicator(config.HUDMarginX, top),
		maxHealth: maxHealth,
		textColor: config.TextLightColor,
	}
}

// HUDLines formats the counters in display order.
func HUDLines(h interfaces.HUD) []string {
	return []string{
		fmt.Sprintf("Score: %d", h.Score),
		fmt.Sprintf("Ammo: %d/%d", h.Ammo, config.MaxAmmo),
		fmt.Sprintf("Health: %d", h.Health),
		fmt.Sprintf("Speed: %d", h.Speed),
	}
}

// HealthFraction is the filled share of the health bar.
func HealthFraction(h interfaces.HUD, maxHealth int) float64 {
	return component.Health{Current: h.Health, Max: maxHealth}.Fraction()
}

func (u *HUD) Draw(screen *ebiten.Image, h interfaces.HUD) {
	for i, line := range HUDLines(h) {
		y := config.HUDLineHeight * (i + 1)
		text.Draw(screen, line, u.face, config.HUDMarginX, y, u.textColor)
	}
	u.health.Draw(screen, HealthFraction(h, u.maxHealth))
}
