// internal/state/game_over_state.go
package state

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Убеждаемся, что GameOverState соответствует интерфейсу State
var _ State = (*GameOverState)(nil)

// GameOverState рисует замороженное поле под панелью с итогом.
// Симуляция продолжает тикать вхолостую, чтобы защёлка выстрела видела отпускание клавиши.
type GameOverState struct {
	stateMachine *StateMachine
	play         *PlayState
	score        int
}

func NewGameOverState(sm *StateMachine, play *PlayState, score int) *GameOverState {
	return &GameOverState{
		stateMachine: sm,
		play:         play,
		score:        score,
	}
}

func (s *GameOverState) Enter() {
	s.play.panel.Show(s.score)
}

func (s *GameOverState) Update(deltaTime float64) {
	kb := s.play.keyboard
	if kb.QuitPressed() {
		s.play.quit()
		return
	}
	s.play.scheduler.Frame()

	cx, cy := ebiten.CursorPosition()
	clicked := s.play.panel.Update(inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft), cx, cy)
	if clicked || kb.RestartPressed() {
		s.play.restart()
		s.stateMachine.SetState(s.play)
	}
}

func (s *GameOverState) Draw(screen *ebiten.Image) {
	s.play.Draw(screen)
	s.play.panel.Draw(screen)
}

func (s *GameOverState) Exit() {
	s.play.panel.Hide()
}
