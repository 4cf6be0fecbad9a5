package app

import (
	"sync"
	"testing"

	"go-car-shooter/internal/component"
	"go-car-shooter/internal/config"
	"go-car-shooter/internal/input"
	"go-car-shooter/internal/interfaces"
	"go-car-shooter/internal/utils"
)

type fixedInput struct {
	mu sync.Mutex
	in input.Intent
}

func (f *fixedInput) Set(in input.Intent) {
	f.mu.Lock()
	f.in = in
	f.mu.Unlock()
}

func (f *fixedInput) Sample() input.Intent {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.in
}

type recordingSink struct {
	mu        sync.Mutex
	snapshots []interfaces.Snapshot
	huds      []interfaces.HUD
	overs     []int
}

func (r *recordingSink) Render(s interfaces.Snapshot) {
	r.mu.Lock()
	r.snapshots = append(r.snapshots, s)
	r.mu.Unlock()
}

func (r *recordingSink) UpdateHUD(h interfaces.HUD) {
	r.mu.Lock()
	r.huds = append(r.huds, h)
	r.mu.Unlock()
}

func (r *recordingSink) GameOver(score int) {
	r.mu.Lock()
	r.overs = append(r.overs, score)
	r.mu.Unlock()
}

func newTestRunner(t *testing.T) (*Runner, *Game, *FrameScheduler, *fixedInput, *recordingSink) {
	t.Helper()
	g, _ := newTestGame(t, utils.NewScriptedRandom())
	sched := NewFrameScheduler()
	in := &fixedInput{}
	sink := &recordingSink{}
	r := NewRunner(g, sched, in, Sinks{Render: sink, HUD: sink, GameOver: sink})
	return r, g, sched, in, sink
}

func TestRunnerPublishesInitialState(t *testing.T) {
	r, _, _, _, sink := newTestRunner(t)
	r.Start()

	if len(sink.snapshots) != 1 || len(sink.huds) != 1 {
		t.Fatalf("got %d snapshots and %d huds before the first tick", len(sink.snapshots), len(sink.huds))
	}
	if sink.huds[0].Ammo != config.MaxAmmo {
		t.Errorf("initial hud = %+v", sink.huds[0])
	}
}

func TestRunnerFeedsInputToGame(t *testing.T) {
	r, g, sched, in, sink := newTestRunner(t)
	r.Start()

	in.Set(input.Intent{Accelerate: true, Fire: true})
	for i := 0; i < 3; i++ {
		if !sched.Frame() {
			t.Fatal("scheduler stopped unexpectedly")
		}
	}

	if g.Tick() != 3 {
		t.Errorf("ticks = %d, want 3", g.Tick())
	}
	if len(sink.snapshots) != 4 || len(sink.huds) != 4 {
		t.Errorf("got %d snapshots and %d huds, want 4 each", len(sink.snapshots), len(sink.huds))
	}
	last := sink.huds[len(sink.huds)-1]
	if last.Ammo != 29 || last.Speed != 6 {
		t.Errorf("hud = %+v, want ammo 29 speed 6", last)
	}
}

func TestRunnerReportsGameOverOnce(t *testing.T) {
	r, g, sched, _, sink := newTestRunner(t)
	r.Start()

	g.World.Session.Score = 300
	g.World.Vehicle.Health.Current = 10
	g.World.Targets = append(g.World.Targets, component.Target{
		Position: g.World.Vehicle.Position,
		Health:   3,
		Size:     config.TargetSize,
	})
	for i := 0; i < 5; i++ {
		sched.Frame()
	}

	if len(sink.overs) != 1 || sink.overs[0] != 300 {
		t.Fatalf("game over calls = %v, want [300]", sink.overs)
	}
	if !sink.huds[len(sink.huds)-1].Over {
		t.Error("last hud should report the session as over")
	}
}

func TestRunnerReset(t *testing.T) {
	r, g, sched, in, sink := newTestRunner(t)
	r.Start()
	in.Set(input.Intent{Accelerate: true})
	sched.Frame()
	sched.Frame()

	r.Reset()

	if g.World.Vehicle.Speed != 0 {
		t.Error("reset should stop the car")
	}
	if n := len(sink.snapshots); sink.snapshots[n-1].Vehicle.X != 400 {
		t.Errorf("reset should publish fresh state, got vehicle at %g", sink.snapshots[n-1].Vehicle.X)
	}
}

func TestRunnerStop(t *testing.T) {
	r, g, sched, _, _ := newTestRunner(t)
	r.Start()
	sched.Frame()
	r.Stop()

	if sched.Frame() {
		t.Error("Frame should report false after Stop")
	}
	if g.Tick() != 1 {
		t.Errorf("ticks = %d, want 1", g.Tick())
	}
}
