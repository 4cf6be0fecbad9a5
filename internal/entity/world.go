// internal/entity/world.go
package entity

import (
	"go-car-shooter/internal/component"
	"go-car-shooter/internal/config"
)

// World is the single session object every system mutates.
// Pools are dense slices; systems compact them after each pass.
type World struct {
	Field       component.Field
	Vehicle     component.Vehicle
	Projectiles []component.Projectile
	Targets     []component.Target
	Effects     []component.Particle
	Session     component.Session
}

func NewWorld(field component.Field, spec component.VehicleSpec) *World {
	w := &World{
		Field:       field,
		Vehicle:     component.Vehicle{Spec: spec},
		Projectiles: make([]component.Projectile, 0, config.MaxAmmo),
		Targets:     make([]component.Target, 0, 16),
		Effects:     make([]component.Particle, 0, config.BurstSize*8),
	}
	w.Reset()
	return w
}

// Reset empties every pool and restores the vehicle and counters to their starting values.
// Backing arrays are kept.
func (w *World) Reset() {
	w.Projectiles = w.Projectiles[:0]
	w.Targets = w.Targets[:0]
	w.Effects = w.Effects[:0]

	spec := w.Vehicle.Spec
	w.Vehicle = component.Vehicle{
		Position: w.Field.Center(),
		Health:   component.NewHealth(spec.MaxHealth),
		Spec:     spec,
	}
	w.Session = component.Session{
		Ammo:  config.MaxAmmo,
		Phase: component.Running,
	}
}
