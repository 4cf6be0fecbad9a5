package interfaces

import (
	"go-car-shooter/internal/component"
	"go-car-shooter/internal/input"
)

// Snapshot is a read-only copy of the world handed to renderers after each tick.
// Slices are owned by the receiver.
type Snapshot struct {
	Field       component.Field
	Vehicle     component.Vehicle
	Projectiles []component.Projectile
	Targets     []component.Target
	Effects     []component.Particle
	Session     component.Session
}

// HUD — то, что видит игрок в углу экрана.
type HUD struct {
	Score  int
	Ammo   int
	Health int // не меньше нуля
	Speed  int // |speed| * 10, округлённое
	Over   bool
}

type InputSource interface {
	Sample() input.Intent
}

type RenderSink interface {
	Render(s Snapshot)
}

type HUDSink interface {
	UpdateHUD(h HUD)
}

type GameOverSink interface {
	GameOver(finalScore int)
}
