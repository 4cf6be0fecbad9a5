// internal/app/game.go
package app

import (
	"fmt"
	"math"
	"slices"

	"github.com/rs/zerolog"

	"go-car-shooter/internal/component"
	"go-car-shooter/internal/config"
	"go-car-shooter/internal/entity"
	"go-car-shooter/internal/event"
	"go-car-shooter/internal/input"
	"go-car-shooter/internal/interfaces"
	"go-car-shooter/internal/system"
	"go-car-shooter/internal/utils"
)

// Game holds the session world and runs one simulation tick per Step.
// It is not safe for concurrent use; Runner serialises access.
type Game struct {
	World              *entity.World
	VehicleSystem      *system.VehicleSystem
	ProjectileSystem   *system.ProjectileSystem
	SpawnSystem        *system.SpawnSystem
	CombatSystem       *system.CombatSystem
	VisualEffectSystem *system.VisualEffectSystem
	StateSystem        *system.StateSystem
	EventDispatcher    *event.Dispatcher
	Rng                utils.Random

	log       zerolog.Logger
	fireLatch input.EdgeLatch
	tick      uint64
}

// NewGame initializes a new session from settings.
// rng and dispatcher may be nil, in which case a seeded PRNG and a fresh dispatcher are used.
func NewGame(settings config.Settings, rng utils.Random, dispatcher *event.Dispatcher, logger zerolog.Logger) (*Game, error) {
	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("new game: %w", err)
	}
	if rng == nil {
		rng = utils.NewPRNGService(settings.Seed)
	}
	if dispatcher == nil {
		dispatcher = event.NewDispatcher()
	}

	vs := settings.Vehicle
	world := entity.NewWorld(
		component.Field{Width: settings.Field.Width, Height: settings.Field.Height},
		component.VehicleSpec{
			Width:         vs.Width,
			Height:        vs.Height,
			MaxSpeed:      vs.MaxSpeed,
			Acceleration:  vs.Acceleration,
			Deceleration:  vs.Deceleration,
			RotationSpeed: vs.RotationSpeed,
			MaxHealth:     vs.MaxHealth,
		},
	)

	g := &Game{
		World:           world,
		EventDispatcher: dispatcher,
		Rng:             rng,
		log:             logger.With().Str("component", "game").Logger(),
	}
	g.VehicleSystem = system.NewVehicleSystem(world)
	g.ProjectileSystem = system.NewProjectileSystem(world, dispatcher)
	g.SpawnSystem = system.NewSpawnSystem(world, rng, dispatcher)
	g.VisualEffectSystem = system.NewVisualEffectSystem(world, rng)
	g.StateSystem = system.NewStateSystem(world, rng, dispatcher)
	g.CombatSystem = system.NewCombatSystem(world, g.VisualEffectSystem, g.StateSystem, dispatcher)

	g.log.Info().
		Float64("width", settings.Field.Width).
		Float64("height", settings.Field.Height).
		Int64("seed", settings.Seed).
		Msg("session created")
	return g, nil
}

// Step advances the simulation by one tick. It reports true exactly on the tick
// the session ends. While the session is over Step does nothing.
func (g *Game) Step(in input.Intent) bool {
	// защёлку обновляем всегда, иначе зажатый пробел выстрелит сразу после рестарта
	fire := g.fireLatch.Rising(in.Fire)
	if !g.StateSystem.Running() {
		return false
	}
	g.tick++

	g.VehicleSystem.Update(in)
	if fire {
		g.ProjectileSystem.Fire()
	}
	g.ProjectileSystem.Update()
	g.SpawnSystem.Update()
	g.VisualEffectSystem.Update()
	g.CombatSystem.Update()
	g.SpawnSystem.MaybeSpawn()
	g.StateSystem.MaybeResupply()

	if g.StateSystem.Running() {
		return false
	}

	score := g.World.Session.Score
	g.log.Info().Int("score", score).Uint64("tick", g.tick).Msg("game over")
	g.EventDispatcher.Dispatch(event.Event{Type: event.GameOver, Data: event.ScoreData{
		X:     g.World.Vehicle.X,
		Y:     g.World.Vehicle.Y,
		Score: score,
	}})
	return true
}

// Reset starts a new session in place. The fire latch keeps its state.
func (g *Game) Reset() {
	g.StateSystem.Reset()
	g.tick = 0
	g.log.Info().Msg("session reset")
}

// Tick returns the number of simulated ticks in the current session.
func (g *Game) Tick() uint64 {
	return g.tick
}

// Snapshot copies the world for a renderer.
func (g *Game) Snapshot() interfaces.Snapshot {
	w := g.World
	return interfaces.Snapshot{
		Field:       w.Field,
		Vehicle:     w.Vehicle,
		Projectiles: slices.Clone(w.Projectiles),
		Targets:     slices.Clone(w.Targets),
		Effects:     slices.Clone(w.Effects),
		Session:     w.Session,
	}
}

func (g *Game) HUD() interfaces.HUD {
	w := g.World
	return interfaces.HUD{
		Score:  w.Session.Score,
		Ammo:   w.Session.Ammo,
		Health: max(w.Vehicle.Health.Current, 0),
		Speed:  int(math.Round(math.Abs(w.Vehicle.Speed) * config.SpeedDisplayScale)),
		Over:   w.Session.Phase == component.Over,
	}
}
