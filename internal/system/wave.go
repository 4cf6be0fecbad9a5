// internal/system/wave.go
package system

import (
	"math"
	"slices"

	"go-car-shooter/internal/component"
	"go-car-shooter/internal/config"
	"go-car-shooter/internal/entity"
	"go-car-shooter/internal/event"
	"go-car-shooter/internal/utils"
)

// Edge — сторона поля, с которой выезжает цель.
type Edge int

const (
	EdgeTop Edge = iota
	EdgeRight
	EdgeBottom
	EdgeLeft
	edgeCount
)

// SpawnSystem spawns targets just outside the field and drives them in a straight line.
type SpawnSystem struct {
	world           *entity.World
	rng             utils.Random
	eventDispatcher *event.Dispatcher
}

func NewSpawnSystem(world *entity.World, rng utils.Random, eventDispatcher *event.Dispatcher) *SpawnSystem {
	return &SpawnSystem{
		world:           world,
		rng:             rng,
		eventDispatcher: eventDispatcher,
	}
}

// Update moves targets along their fixed heading and drops those far outside the field.
func (s *SpawnSystem) Update() {
	field := s.world.Field
	for i := range s.world.Targets {
		t := &s.world.Targets[i]
		t.X += math.Cos(t.Heading) * t.Speed
		t.Y += math.Sin(t.Heading) * t.Speed
	}
	s.world.Targets = slices.DeleteFunc(s.world.Targets, func(t component.Target) bool {
		return field.Outside(t.Position, config.TargetCullMargin)
	})
}

// MaybeSpawn rolls the per-tick spawn chance and spawns one target on success.
func (s *SpawnSystem) MaybeSpawn() bool {
	if s.rng.Float64() >= config.TargetSpawnChance {
		return false
	}
	s.Spawn(Edge(s.rng.Intn(int(edgeCount))))
	return true
}

// Spawn places a target on the given edge, aimed at the car's current position.
func (s *SpawnSystem) Spawn(edge Edge) {
	field := s.world.Field
	var pos component.Position
	switch edge {
	case EdgeTop:
		pos = component.Position{X: s.rng.Float64() * field.Width, Y: -config.TargetSpawnOffset}
	case EdgeRight:
		pos = component.Position{X: field.Width + config.TargetSpawnOffset, Y: s.rng.Float64() * field.Height}
	case EdgeBottom:
		pos = component.Position{X: s.rng.Float64() * field.Width, Y: field.Height + config.TargetSpawnOffset}
	default:
		pos = component.Position{X: -config.TargetSpawnOffset, Y: s.rng.Float64() * field.Height}
	}

	v := s.world.Vehicle
	t := component.Target{
		Position: pos,
		Heading:  math.Atan2(v.Y-pos.Y, v.X-pos.X),
		Speed:    utils.Range(s.rng, config.TargetMinSpeed, config.TargetMinSpeed+config.TargetSpeedSpread),
		Health:   config.TargetHealth,
		Size:     config.TargetSize,
	}
	s.world.Targets = append(s.world.Targets, t)

	s.eventDispatcher.Dispatch(event.Event{Type: event.TargetSpawned, Data: event.PointData{X: pos.X, Y: pos.Y}})
}
