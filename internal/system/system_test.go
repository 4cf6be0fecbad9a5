package system

import (
	"math"

	"go-car-shooter/internal/component"
	"go-car-shooter/internal/config"
	"go-car-shooter/internal/entity"
	"go-car-shooter/internal/event"
)

const eps = 1e-9

func defaultSpec() component.VehicleSpec {
	return component.VehicleSpec{
		Width:         config.VehicleWidth,
		Height:        config.VehicleHeight,
		MaxSpeed:      config.VehicleMaxSpeed,
		Acceleration:  config.VehicleAcceleration,
		Deceleration:  config.VehicleDeceleration,
		RotationSpeed: config.VehicleRotationSpeed,
		MaxHealth:     config.VehicleMaxHealth,
	}
}

func newTestWorld() *entity.World {
	return entity.NewWorld(component.Field{Width: config.ScreenWidth, Height: config.ScreenHeight}, defaultSpec())
}

// eventLog records every dispatched event type in order.
type eventLog struct {
	types []event.EventType
}

func newEventLog() (*event.Dispatcher, *eventLog) {
	d := event.NewDispatcher()
	l := &eventLog{}
	d.SubscribeAll(l, event.AllTypes...)
	return d, l
}

func (l *eventLog) OnEvent(e event.Event) {
	l.types = append(l.types, e.Type)
}

func (l *eventLog) count(t event.EventType) int {
	n := 0
	for _, et := range l.types {
		if et == t {
			n++
		}
	}
	return n
}

func approxEqual(a, b float64) bool {
	return math.Abs(a-b) < eps
}
