// internal/interfaces/game_context.go
package interfaces

// Scheduler drives the simulation at a fixed rate.
// Start must not block the caller longer than the frontend requires.
type Scheduler interface {
	Start(tick func())
	Stop()
}

// Controller is what frontends may ask of a running session.
type Controller interface {
	Reset()
	Stop()
}
