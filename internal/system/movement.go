// internal/system/movement.go
package system

import (
	"math"

	"go-car-shooter/internal/config"
	"go-car-shooter/internal/entity"
	"go-car-shooter/internal/input"
	"go-car-shooter/internal/utils"
)

// VehicleSystem applies player intent to the car: throttle, steering and movement.
type VehicleSystem struct {
	world *entity.World
}

func NewVehicleSystem(world *entity.World) *VehicleSystem {
	return &VehicleSystem{world: world}
}

func (s *VehicleSystem) Update(in input.Intent) {
	v := &s.world.Vehicle
	spec := v.Spec

	// Газ и тормоз. Газ имеет приоритет, если нажаты оба.
	switch {
	case in.Accelerate:
		v.Speed = math.Min(v.Speed+spec.Acceleration, spec.MaxSpeed)
	case in.Brake:
		v.Speed = math.Max(v.Speed-spec.Acceleration, -spec.MaxSpeed*config.VehicleReverseFactor)
	default:
		v.Speed = utils.Approach(v.Speed, spec.Deceleration)
	}

	// Чем быстрее едем, тем круче поворот. На месте тоже можно развернуться.
	turn := spec.RotationSpeed * (math.Abs(v.Speed)/spec.MaxSpeed + config.TurnRateFloor)
	if in.TurnLeft {
		v.Heading -= turn
	}
	if in.TurnRight {
		v.Heading += turn
	}
	v.Heading = utils.NormalizeAngle(v.Heading)

	dx, dy := v.Direction()
	v.X += dx * v.Speed
	v.Y += dy * v.Speed
	v.Position = s.world.Field.Clamp(v.Position, spec.Width/2, spec.Height/2)
}
