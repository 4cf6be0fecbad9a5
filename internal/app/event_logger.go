package app

import (
	"github.com/rs/zerolog"

	"go-car-shooter/internal/event"
)

// EventLogger пишет игровые события в лог. Частые события (выстрелы, попадания)
// идут на уровне debug, чтобы не засорять info.
type EventLogger struct {
	log zerolog.Logger
}

func NewEventLogger(logger zerolog.Logger) *EventLogger {
	return &EventLogger{log: logger.With().Str("component", "events").Logger()}
}

// Attach subscribes the logger to every gameplay event.
func (l *EventLogger) Attach(d *event.Dispatcher) {
	d.SubscribeAll(l, event.AllTypes...)
}

func (l *EventLogger) OnEvent(e event.Event) {
	var ev *zerolog.Event
	switch e.Type {
	case event.GameOver, event.SessionReset:
		ev = l.log.Info()
	default:
		ev = l.log.Debug()
	}

	switch d := e.Data.(type) {
	case event.PointData:
		ev = ev.Float64("x", d.X).Float64("y", d.Y)
	case event.ScoreData:
		ev = ev.Float64("x", d.X).Float64("y", d.Y).Int("score", d.Score)
	case event.AmmoData:
		ev = ev.Int("ammo", d.Ammo)
	case event.HealthData:
		ev = ev.Float64("x", d.X).Float64("y", d.Y).Int("health", d.Health)
	}
	ev.Str("event", string(e.Type)).Send()
}
