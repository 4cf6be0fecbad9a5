package app

import (
	"sync"

	"go-car-shooter/internal/interfaces"
)

// Sinks are the presentation callbacks a Runner feeds after every tick.
// Any of them may be nil.
type Sinks struct {
	Render   interfaces.RenderSink
	HUD      interfaces.HUDSink
	GameOver interfaces.GameOverSink
}

// Runner connects a Game to a scheduler, an input source and the presentation sinks.
// Ticks and resets are serialised by a mutex, so input goroutines may call Reset freely.
type Runner struct {
	mu        sync.Mutex
	game      *Game
	scheduler interfaces.Scheduler
	input     interfaces.InputSource
	sinks     Sinks
}

func NewRunner(game *Game, scheduler interfaces.Scheduler, input interfaces.InputSource, sinks Sinks) *Runner {
	return &Runner{
		game:      game,
		scheduler: scheduler,
		input:     input,
		sinks:     sinks,
	}
}

// Start pushes the initial state to the sinks and hands the tick to the scheduler.
func (r *Runner) Start() {
	r.mu.Lock()
	r.publish()
	r.mu.Unlock()
	r.scheduler.Start(r.frame)
}

func (r *Runner) frame() {
	r.mu.Lock()
	defer r.mu.Unlock()

	in := r.input.Sample()
	ended := r.game.Step(in)
	r.publish()
	if ended && r.sinks.GameOver != nil {
		r.sinks.GameOver.GameOver(r.game.World.Session.Score)
	}
}

// Reset starts a new session and pushes its state immediately.
func (r *Runner) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.game.Reset()
	r.publish()
}

func (r *Runner) Stop() {
	r.scheduler.Stop()
}

func (r *Runner) publish() {
	if r.sinks.Render != nil {
		r.sinks.Render.Render(r.game.Snapshot())
	}
	if r.sinks.HUD != nil {
		r.sinks.HUD.UpdateHUD(r.game.HUD())
	}
}
