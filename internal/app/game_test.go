package app

import (
	"errors"
	"math"
	"testing"

	"github.com/rs/zerolog"

	"go-car-shooter/internal/component"
	"go-car-shooter/internal/config"
	"go-car-shooter/internal/event"
	"go-car-shooter/internal/input"
	"go-car-shooter/internal/utils"
)

const eps = 1e-9

func newTestGame(t *testing.T, rng *utils.ScriptedRandom) (*Game, *eventCounter) {
	t.Helper()
	d := event.NewDispatcher()
	c := &eventCounter{counts: map[event.EventType]int{}}
	d.SubscribeAll(c, event.AllTypes...)
	g, err := NewGame(config.Default(), rng, d, zerolog.Nop())
	if err != nil {
		t.Fatalf("NewGame failed: %v", err)
	}
	return g, c
}

type eventCounter struct {
	counts    map[event.EventType]int
	lastScore int
}

func (c *eventCounter) OnEvent(e event.Event) {
	c.counts[e.Type]++
	if d, ok := e.Data.(event.ScoreData); ok && e.Type == event.GameOver {
		c.lastScore = d.Score
	}
}

func TestNewGameRejectsInvalidSettings(t *testing.T) {
	s := config.Default()
	s.Field.Width = 0
	if _, err := NewGame(s, nil, nil, zerolog.Nop()); !errors.Is(err, config.ErrInvalidField) {
		t.Fatalf("expected ErrInvalidField, got %v", err)
	}
}

func TestNewGameRejectsFieldSmallerThanVehicle(t *testing.T) {
	s := config.Default()
	s.Field.Width, s.Field.Height = 20, 20
	g, err := NewGame(s, nil, nil, zerolog.Nop())
	if !errors.Is(err, config.ErrInvalidField) {
		t.Fatalf("expected ErrInvalidField, got %v", err)
	}
	if g != nil {
		t.Fatal("no game should be built for an invalid field")
	}
}

func TestNewGameStartsAtCenter(t *testing.T) {
	g, _ := newTestGame(t, utils.NewScriptedRandom())
	v := g.World.Vehicle
	if v.X != 400 || v.Y != 300 || v.Speed != 0 || v.Heading != 0 {
		t.Errorf("vehicle = %+v", v)
	}
	if hud := g.HUD(); hud.Ammo != 30 || hud.Health != 100 || hud.Score != 0 || hud.Over {
		t.Errorf("hud = %+v", hud)
	}
}

func TestFireOncePerPress(t *testing.T) {
	g, c := newTestGame(t, utils.NewScriptedRandom())

	for i := 0; i < 5; i++ {
		g.Step(input.Intent{Fire: true})
	}
	if g.World.Session.Ammo != 29 || c.counts[event.ShotFired] != 1 {
		t.Fatalf("holding fire: ammo %d, shots %d", g.World.Session.Ammo, c.counts[event.ShotFired])
	}

	g.Step(input.Intent{})
	g.Step(input.Intent{Fire: true})
	if g.World.Session.Ammo != 28 || len(g.World.Projectiles) != 2 {
		t.Errorf("second press: ammo %d, projectiles %d", g.World.Session.Ammo, len(g.World.Projectiles))
	}
}

func TestStepMovesBeforeFiring(t *testing.T) {
	g, _ := newTestGame(t, utils.NewScriptedRandom())

	g.Step(input.Intent{Accelerate: true, Fire: true})

	if math.Abs(g.World.Vehicle.X-400.2) > eps {
		t.Fatalf("vehicle x = %g, want 400.2", g.World.Vehicle.X)
	}
	p := g.World.Projectiles[0]
	// выстрел из новой позиции, затем один шаг полёта в том же тике
	if math.Abs(p.X-455.3) > eps || math.Abs(p.Y-300.1) > eps {
		t.Errorf("projectile = (%g, %g), want (455.3, 300.1)", p.X, p.Y)
	}
	if p.Life != 99 {
		t.Errorf("life = %d, want 99", p.Life)
	}
}

func TestSpawnIsLastInTick(t *testing.T) {
	rng := utils.NewScriptedRandom(0.01, 0.5, 0.5, 0.999)
	rng.PushInts(3)
	g, c := newTestGame(t, rng)

	g.Step(input.Intent{})

	if len(g.World.Targets) != 1 {
		t.Fatalf("targets = %d, want 1", len(g.World.Targets))
	}
	tg := g.World.Targets[0]
	if tg.X != -40 || tg.Y != 300 || tg.Speed != 3 {
		t.Errorf("target = %+v, want unmoved at (-40, 300) with speed 3", tg)
	}
	if c.counts[event.TargetSpawned] != 1 {
		t.Error("expected TargetSpawned")
	}

	g.Step(input.Intent{})
	if math.Abs(g.World.Targets[0].X+37) > eps {
		t.Errorf("target x = %g after one tick, want -37", g.World.Targets[0].X)
	}
}

func TestGameOverReportedOnce(t *testing.T) {
	g, c := newTestGame(t, utils.NewScriptedRandom())
	g.World.Session.Score = 700
	g.World.Vehicle.Health.Current = 10
	g.World.Targets = append(g.World.Targets, component.Target{
		Position: component.Position{X: 440, Y: 300},
		Speed:    2,
		Health:   3,
		Size:     config.TargetSize,
	})

	if !g.Step(input.Intent{}) {
		t.Fatal("Step should report the end of the session")
	}
	if c.counts[event.GameOver] != 1 || c.lastScore != 700 {
		t.Errorf("GameOver events = %d, score %d", c.counts[event.GameOver], c.lastScore)
	}
	hud := g.HUD()
	if !hud.Over || hud.Health != 0 {
		t.Errorf("hud = %+v", hud)
	}

	before := g.Snapshot()
	tick := g.Tick()
	for i := 0; i < 10; i++ {
		if g.Step(input.Intent{Accelerate: true, Fire: i%2 == 0}) {
			t.Fatal("Step must not report game over twice")
		}
	}
	if g.Tick() != tick || g.World.Vehicle != before.Vehicle || g.World.Session != before.Session {
		t.Error("world must stay frozen while the session is over")
	}
	if c.counts[event.GameOver] != 1 {
		t.Errorf("GameOver events = %d, want 1", c.counts[event.GameOver])
	}
}

func TestResetAfterGameOver(t *testing.T) {
	g, c := newTestGame(t, utils.NewScriptedRandom())
	g.World.Vehicle.Health.Current = 0
	g.StateSystem.EnterOver()

	g.Reset()

	if hud := g.HUD(); hud.Over || hud.Ammo != 30 || hud.Health != 100 || hud.Score != 0 {
		t.Errorf("hud after reset = %+v", hud)
	}
	if c.counts[event.SessionReset] != 1 {
		t.Error("expected SessionReset")
	}
	g.Step(input.Intent{Accelerate: true})
	if g.World.Vehicle.Speed == 0 {
		t.Error("simulation should run after reset")
	}
}

func TestFireHeldAcrossResetDoesNotShoot(t *testing.T) {
	g, _ := newTestGame(t, utils.NewScriptedRandom())
	g.StateSystem.EnterOver()

	g.Step(input.Intent{Fire: true})
	g.Reset()
	g.Step(input.Intent{Fire: true})

	if len(g.World.Projectiles) != 0 {
		t.Error("a press made while the session was over must not fire after reset")
	}
}

func TestHUDClampsAndRounds(t *testing.T) {
	g, _ := newTestGame(t, utils.NewScriptedRandom())
	g.World.Vehicle.Speed = -3.14
	g.World.Vehicle.Health.Current = -5

	hud := g.HUD()
	if hud.Speed != 31 {
		t.Errorf("speed = %d, want 31", hud.Speed)
	}
	if hud.Health != 0 {
		t.Errorf("health = %d, want 0", hud.Health)
	}
}

func TestSnapshotIsACopy(t *testing.T) {
	g, _ := newTestGame(t, utils.NewScriptedRandom())
	g.Step(input.Intent{Fire: true})

	snap := g.Snapshot()
	snap.Projectiles[0].X = -1000
	snap.Vehicle.X = -1000

	if g.World.Projectiles[0].X == -1000 || g.World.Vehicle.X == -1000 {
		t.Error("mutating a snapshot must not touch the world")
	}
}

func TestSeededGamesAreDeterministic(t *testing.T) {
	s := config.Default()
	s.Seed = 1234
	run := func() (int, int, int) {
		g, err := NewGame(s, nil, nil, zerolog.Nop())
		if err != nil {
			t.Fatal(err)
		}
		for i := 0; i < 600; i++ {
			g.Step(input.Intent{Accelerate: i%120 < 60, TurnLeft: i%50 < 10, Fire: i%7 == 0})
		}
		return len(g.World.Targets), g.World.Session.Score, g.World.Session.Ammo
	}
	t1, s1, a1 := run()
	t2, s2, a2 := run()
	if t1 != t2 || s1 != s2 || a1 != a2 {
		t.Errorf("runs diverged: (%d %d %d) vs (%d %d %d)", t1, s1, a1, t2, s2, a2)
	}
}
