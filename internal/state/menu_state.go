// internal/state/menu_state.go
package state

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"

	"go-car-shooter/internal/config"
)

// MenuLines — подсказки на титульном экране.
var MenuLines = []string{
	"CAR SHOOTER",
	"",
	"Arrows / WASD  drive",
	"Space          fire",
	"R              restart",
	"Esc            quit",
	"",
	"Press Space to start",
}

// MenuState — титульный экран, переключает на игру по пробелу.
type MenuState struct {
	sm   *StateMachine
	next State
	face font.Face
}

func NewMenuState(sm *StateMachine, next State, face font.Face) *MenuState {
	return &MenuState{sm: sm, next: next, face: face}
}

func (m *MenuState) Enter() {}

func (m *MenuState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		m.sm.SetState(m.next)
	}
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	for i, line := range MenuLines {
		text.Draw(screen, line, m.face, config.ScreenWidth/2-110, 180+i*config.HUDLineHeight, color.White)
	}
}

func (m *MenuState) Exit() {}
