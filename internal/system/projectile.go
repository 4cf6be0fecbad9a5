// internal/system/projectile.go
package system

import (
	"go-car-shooter/internal/component"
	"go-car-shooter/internal/config"
	"go-car-shooter/internal/entity"
	"go-car-shooter/internal/event"
)

// ProjectileSystem launches shells from the car and flies them until they expire or leave the field.
type ProjectileSystem struct {
	world           *entity.World
	eventDispatcher *event.Dispatcher
}

func NewProjectileSystem(world *entity.World, eventDispatcher *event.Dispatcher) *ProjectileSystem {
	return &ProjectileSystem{
		world:           world,
		eventDispatcher: eventDispatcher,
	}
}

// Fire spends one round and spawns a projectile at the car's nose.
// Returns false when the magazine is empty.
func (s *ProjectileSystem) Fire() bool {
	session := &s.world.Session
	if session.Ammo <= 0 {
		return false
	}
	session.Ammo--

	v := s.world.Vehicle
	dx, dy := v.Direction()
	nose := v.HalfWidth() + config.MuzzleOffset
	// Снаряд наследует половину скорости машины по обеим осям.
	momentum := v.Speed * config.ProjectileMomentumFactor

	p := component.Projectile{
		Position: component.Position{X: v.X + dx*nose, Y: v.Y + dy*nose},
		Velocity: component.Velocity{
			X: dx*config.ProjectileSpeed + momentum,
			Y: dy*config.ProjectileSpeed + momentum,
		},
		Life:   config.ProjectileLife,
		Radius: config.ProjectileRadius,
	}
	s.world.Projectiles = append(s.world.Projectiles, p)

	s.eventDispatcher.Dispatch(event.Event{Type: event.ShotFired, Data: event.AmmoData{Ammo: session.Ammo}})
	return true
}

// Update moves every projectile one step and drops the expired and the far off-field ones.
func (s *ProjectileSystem) Update() {
	field := s.world.Field
	kept := s.world.Projectiles[:0]
	for _, p := range s.world.Projectiles {
		p.X += p.Velocity.X
		p.Y += p.Velocity.Y
		p.Life--
		if p.Life <= 0 || field.Outside(p.Position, config.ProjectileCullMargin) {
			continue
		}
		kept = append(kept, p)
	}
	s.world.Projectiles = kept
}
