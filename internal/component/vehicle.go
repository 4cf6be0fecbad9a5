// internal/component/vehicle.go
package component

import "math"

// VehicleSpec — неизменяемые параметры машины игрока.
type VehicleSpec struct {
	Width         float64 // длина корпуса вдоль курса
	Height        float64
	MaxSpeed      float64 // вперёд; назад вдвое меньше
	Acceleration  float64 // за тик
	Deceleration  float64 // за тик, без газа и тормоза
	RotationSpeed float64 // радиан за тик на полной скорости
	MaxHealth     int
}

// Vehicle is the player-controlled car.
type Vehicle struct {
	Position
	Heading float64 // радианы, 0 смотрит вправо
	Speed   float64 // со знаком, < 0 значит задний ход
	Health  Health
	Spec    VehicleSpec
}

func (v Vehicle) HalfWidth() float64 {
	return v.Spec.Width / 2
}

// Direction returns the unit vector of the current heading.
func (v Vehicle) Direction() (float64, float64) {
	return math.Cos(v.Heading), math.Sin(v.Heading)
}
