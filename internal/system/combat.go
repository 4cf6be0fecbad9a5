package system

import (
	"go-car-shooter/internal/config"
	"go-car-shooter/internal/entity"
	"go-car-shooter/internal/event"
	"go-car-shooter/internal/utils"
)

// CombatSystem resolves projectile/target and target/vehicle collisions.
type CombatSystem struct {
	world           *entity.World
	effects         *VisualEffectSystem
	state           *StateSystem
	eventDispatcher *event.Dispatcher

	// переиспользуемые маски, чтобы не аллоцировать каждый тик
	spent     []bool
	destroyed []bool
}

func NewCombatSystem(world *entity.World, effects *VisualEffectSystem, state *StateSystem, eventDispatcher *event.Dispatcher) *CombatSystem {
	return &CombatSystem{
		world:           world,
		effects:         effects,
		state:           state,
		eventDispatcher: eventDispatcher,
	}
}

// Update checks every target against live projectiles, then against the car.
// A projectile hits at most one target and a target is destroyed at most once.
// Removals are applied after the pass so indices stay valid during iteration.
func (s *CombatSystem) Update() {
	w := s.world
	s.spent = resetMask(s.spent, len(w.Projectiles))
	s.destroyed = resetMask(s.destroyed, len(w.Targets))

	v := &w.Vehicle
	for ti := range w.Targets {
		t := &w.Targets[ti]

		for pi := range w.Projectiles {
			if s.spent[pi] {
				continue
			}
			p := w.Projectiles[pi]
			if utils.Distance(t.X, t.Y, p.X, p.Y) >= t.HalfSize()+p.Radius {
				continue
			}
			t.Health--
			s.spent[pi] = true
			s.effects.SpawnBurst(p.X, p.Y)
			s.eventDispatcher.Dispatch(event.Event{Type: event.TargetHit, Data: event.PointData{X: p.X, Y: p.Y}})

			if t.Health <= 0 {
				w.Session.Score += config.TargetScore
				s.destroyed[ti] = true
				s.effects.SpawnBurst(t.X, t.Y)
				s.eventDispatcher.Dispatch(event.Event{
					Type: event.TargetDestroyed,
					Data: event.ScoreData{X: t.X, Y: t.Y, Score: w.Session.Score},
				})
				break
			}
		}
		if s.destroyed[ti] {
			continue
		}

		// Таран: цель гибнет, машина теряет здоровье.
		if utils.Distance(t.X, t.Y, v.X, v.Y) < t.HalfSize()+v.HalfWidth() {
			v.Health.Damage(config.CollisionDamage)
			s.destroyed[ti] = true
			s.effects.SpawnBurst(t.X, t.Y)
			s.eventDispatcher.Dispatch(event.Event{
				Type: event.VehicleHit,
				Data: event.HealthData{X: t.X, Y: t.Y, Health: v.Health.Current},
			})
			if v.Health.IsDead() {
				s.state.EnterOver()
			}
		}
	}

	s.compact()
}

func (s *CombatSystem) compact() {
	w := s.world
	keptP := w.Projectiles[:0]
	for i, p := range w.Projectiles {
		if !s.spent[i] {
			keptP = append(keptP, p)
		}
	}
	w.Projectiles = keptP

	keptT := w.Targets[:0]
	for i, t := range w.Targets {
		if !s.destroyed[i] {
			keptT = append(keptT, t)
		}
	}
	w.Targets = keptT
}

func resetMask(mask []bool, n int) []bool {
	if cap(mask) < n {
		return make([]bool, n)
	}
	mask = mask[:n]
	clear(mask)
	return mask
}
