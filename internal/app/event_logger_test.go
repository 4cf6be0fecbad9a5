package app

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"go-car-shooter/internal/event"
)

func TestEventLoggerWritesFields(t *testing.T) {
	var buf bytes.Buffer
	d := event.NewDispatcher()
	NewEventLogger(zerolog.New(&buf).Level(zerolog.DebugLevel)).Attach(d)

	d.Dispatch(event.Event{Type: event.TargetDestroyed, Data: event.ScoreData{X: 1, Y: 2, Score: 100}})

	out := buf.String()
	for _, want := range []string{`"event":"TargetDestroyed"`, `"score":100`, `"component":"events"`, `"level":"debug"`} {
		if !strings.Contains(out, want) {
			t.Errorf("log %q missing %s", out, want)
		}
	}
}

func TestEventLoggerRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	d := event.NewDispatcher()
	NewEventLogger(zerolog.New(&buf).Level(zerolog.InfoLevel)).Attach(d)

	d.Dispatch(event.Event{Type: event.ShotFired, Data: event.AmmoData{Ammo: 29}})
	if buf.Len() != 0 {
		t.Errorf("debug event leaked at info level: %s", buf.String())
	}

	d.Dispatch(event.Event{Type: event.GameOver, Data: event.ScoreData{Score: 400}})
	if !strings.Contains(buf.String(), `"score":400`) {
		t.Errorf("game over not logged: %s", buf.String())
	}
}
