// internal/system/visual_effect.go
package system

import (
	"image/color"
	"slices"

	"go-car-shooter/internal/component"
	"go-car-shooter/internal/config"
	"go-car-shooter/internal/entity"
	"go-car-shooter/internal/utils"
)

// VisualEffectSystem управляет частицами взрывов. Они не влияют на геймплей,
// но тратят случайные числа, поэтому живут в том же тике, что и остальное.
type VisualEffectSystem struct {
	world   *entity.World
	rng     utils.Random
	palette []color.RGBA
}

// NewVisualEffectSystem создает новую систему визуальных эффектов.
func NewVisualEffectSystem(world *entity.World, rng utils.Random) *VisualEffectSystem {
	return &VisualEffectSystem{
		world:   world,
		rng:     rng,
		palette: config.ExplosionPalette,
	}
}

// SpawnBurst emits the standard explosion at (x, y).
func (s *VisualEffectSystem) SpawnBurst(x, y float64) {
	s.SpawnBurstN(x, y, config.BurstSize)
}

func (s *VisualEffectSystem) SpawnBurstN(x, y float64, n int) {
	for i := 0; i < n; i++ {
		vx := (s.rng.Float64() - 0.5) * 2 * config.ParticleMaxSpeed
		vy := (s.rng.Float64() - 0.5) * 2 * config.ParticleMaxSpeed
		radius := s.rng.Float64()*config.ParticleRadiusSpread + config.ParticleMinRadius
		s.world.Effects = append(s.world.Effects, component.Particle{
			Position: component.Position{X: x, Y: y},
			Velocity: component.Velocity{X: vx, Y: vy},
			Radius:   radius,
			Color:    utils.Choose(s.rng, s.palette),
			Life:     config.ParticleLife,
			MaxLife:  config.ParticleLife,
		})
	}
}

// Update обновляет все активные частицы.
func (s *VisualEffectSystem) Update() {
	for i := range s.world.Effects {
		p := &s.world.Effects[i]
		p.X += p.Velocity.X
		p.Y += p.Velocity.Y
		p.Life--
	}
	s.world.Effects = slices.DeleteFunc(s.world.Effects, func(p component.Particle) bool {
		return p.Life <= 0
	})
}
