// internal/system/state.go
package system

import (
	"go-car-shooter/internal/component"
	"go-car-shooter/internal/config"
	"go-car-shooter/internal/entity"
	"go-car-shooter/internal/event"
	"go-car-shooter/internal/utils"
)

// StateSystem owns the session phase and the ammo counter outside of firing.
type StateSystem struct {
	world           *entity.World
	rng             utils.Random
	eventDispatcher *event.Dispatcher
}

func NewStateSystem(world *entity.World, rng utils.Random, eventDispatcher *event.Dispatcher) *StateSystem {
	return &StateSystem{
		world:           world,
		rng:             rng,
		eventDispatcher: eventDispatcher,
	}
}

// MaybeResupply rolls the per-tick resupply chance. The draw happens every call
// so the random sequence does not depend on the current ammo.
func (s *StateSystem) MaybeResupply() bool {
	roll := s.rng.Float64()
	session := &s.world.Session
	if roll >= config.AmmoResupplyChance || session.Ammo >= config.MaxAmmo {
		return false
	}
	session.Ammo = min(config.MaxAmmo, session.Ammo+config.AmmoResupplyAmount)
	s.eventDispatcher.Dispatch(event.Event{Type: event.AmmoResupplied, Data: event.AmmoData{Ammo: session.Ammo}})
	return true
}

// EnterOver switches the session to Over. Reports whether the phase actually changed.
func (s *StateSystem) EnterOver() bool {
	if s.world.Session.Phase == component.Over {
		return false
	}
	s.world.Session.Phase = component.Over
	return true
}

func (s *StateSystem) Running() bool {
	return s.world.Session.Phase == component.Running
}

func (s *StateSystem) Current() component.Phase {
	return s.world.Session.Phase
}

// Reset starts a fresh session.
func (s *StateSystem) Reset() {
	s.world.Reset()
	s.eventDispatcher.Dispatch(event.Event{Type: event.SessionReset})
}
