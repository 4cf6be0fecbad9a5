// internal/state/play_state.go
package state

import (
	"fmt"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/rs/zerolog"

	"go-car-shooter/internal/app"
	"go-car-shooter/internal/interfaces"
	"go-car-shooter/internal/ui"
	"go-car-shooter/pkg/render"
)

// Убеждаемся, что PlayState соответствует интерфейсам
var (
	_ State                   = (*PlayState)(nil)
	_ interfaces.RenderSink   = (*PlayState)(nil)
	_ interfaces.HUDSink      = (*PlayState)(nil)
	_ interfaces.GameOverSink = (*PlayState)(nil)
)

// PlayState is the running screen. It drives the frame scheduler from ebiten's Update
// and keeps the latest snapshot pushed by the runner for Draw.
type PlayState struct {
	sm         *StateMachine
	scheduler  *app.FrameScheduler
	controller interfaces.Controller
	keyboard   *KeyboardSource
	renderer   *render.FieldRenderer
	hud        *ui.HUD
	panel      *ui.GameOverPanel
	showTPS    bool
	log        zerolog.Logger

	mu         sync.Mutex
	snapshot   interfaces.Snapshot
	hudState   interfaces.HUD
	overScore  int
	overNotice bool
}

type PlayDeps struct {
	Scheduler *app.FrameScheduler
	Keyboard  *KeyboardSource
	Renderer  *render.FieldRenderer
	HUD       *ui.HUD
	Panel     *ui.GameOverPanel
	ShowTPS   bool // счётчик TPS в правом верхнем углу
	Logger    zerolog.Logger
}

func NewPlayState(sm *StateMachine, deps PlayDeps) *PlayState {
	return &PlayState{
		sm:        sm,
		scheduler: deps.Scheduler,
		keyboard:  deps.Keyboard,
		renderer:  deps.Renderer,
		hud:       deps.HUD,
		panel:     deps.Panel,
		showTPS:   deps.ShowTPS,
		log:       deps.Logger.With().Str("component", "screen").Logger(),
	}
}

// Bind attaches the session controller. The runner needs the state as its sink,
// so the two are wired after construction.
func (s *PlayState) Bind(c interfaces.Controller) {
	s.controller = c
}

func (s *PlayState) Render(snap interfaces.Snapshot) {
	s.mu.Lock()
	s.snapshot = snap
	s.mu.Unlock()
}

func (s *PlayState) UpdateHUD(h interfaces.HUD) {
	s.mu.Lock()
	s.hudState = h
	s.mu.Unlock()
}

// GameOver is called by the runner on the tick the session ends.
// The screen switch happens on the next Update, outside the runner's lock.
func (s *PlayState) GameOver(finalScore int) {
	s.mu.Lock()
	s.overScore = finalScore
	s.overNotice = true
	s.mu.Unlock()
}

func (s *PlayState) Enter() {}

func (s *PlayState) Update(deltaTime float64) {
	if s.keyboard.QuitPressed() {
		s.quit()
		return
	}
	s.scheduler.Frame()

	s.mu.Lock()
	notice, score := s.overNotice, s.overScore
	s.overNotice = false
	s.mu.Unlock()

	if notice {
		s.sm.SetState(NewGameOverState(s.sm, s, score))
	}
}

func (s *PlayState) Draw(screen *ebiten.Image) {
	s.mu.Lock()
	snap, h := s.snapshot, s.hudState
	s.mu.Unlock()

	s.renderer.Draw(screen, snap)
	s.hud.Draw(screen, h)
	if s.showTPS {
		w := screen.Bounds().Dx()
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("TPS %.0f", ebiten.ActualTPS()), w-60, 4)
	}
}

func (s *PlayState) Exit() {}

func (s *PlayState) restart() {
	if s.controller != nil {
		s.controller.Reset()
	}
}

func (s *PlayState) quit() {
	s.log.Info().Msg("quit requested")
	if s.controller != nil {
		s.controller.Stop()
		return
	}
	s.scheduler.Stop()
}
