// internal/component/visual.go
package component

import "image/color"

// Particle — частица взрыва. На геймплей не влияет.
type Particle struct {
	Position
	Velocity Velocity
	Radius   float64
	Color    color.RGBA
	Life     int
	MaxLife  int
}

// Opacity is remaining life as a fraction of the initial life.
func (p Particle) Opacity() float64 {
	if p.MaxLife <= 0 {
		return 0
	}
	return float64(p.Life) / float64(p.MaxLife)
}
