// internal/component/projectile.go
package component

// Projectile представляет летящий снаряд.
type Projectile struct {
	Position
	Velocity Velocity
	Life     int // тиков до исчезновения
	Radius   float64
}
