// internal/event/event.go
package event

// EventType — тип события
type EventType string

// Event — структура события
type Event struct {
	Type EventType
	Data interface{} // Данные события, если нужны
}

// Listener — интерфейс для подписчиков на события
type Listener interface {
	OnEvent(event Event)
}

// ListenerFunc adapts a plain function to Listener.
type ListenerFunc func(Event)

func (f ListenerFunc) OnEvent(e Event) { f(e) }

// Dispatcher — синхронный диспетчер событий. Вызывается только из тика симуляции.
type Dispatcher struct {
	listeners map[EventType][]Listener
}

// NewDispatcher — создаёт новый диспетчер
func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		listeners: make(map[EventType][]Listener),
	}
}

// Subscribe — подписка на событие
func (d *Dispatcher) Subscribe(eventType EventType, listener Listener) {
	d.listeners[eventType] = append(d.listeners[eventType], listener)
}

// SubscribeAll subscribes listener to each of the given types.
func (d *Dispatcher) SubscribeAll(listener Listener, types ...EventType) {
	for _, t := range types {
		d.Subscribe(t, listener)
	}
}

// Unsubscribe — отписка от события. ListenerFunc values cannot be compared and must not be unsubscribed.
func (d *Dispatcher) Unsubscribe(eventType EventType, listener Listener) {
	if listeners, exists := d.listeners[eventType]; exists {
		for i, l := range listeners {
			if l == listener {
				d.listeners[eventType] = append(listeners[:i], listeners[i+1:]...)
				break
			}
		}
	}
}

// Dispatch — отправка события всем подписчикам
func (d *Dispatcher) Dispatch(event Event) {
	if d == nil {
		return
	}
	if listeners, exists := d.listeners[event.Type]; exists {
		for _, listener := range listeners {
			listener.OnEvent(event)
		}
	}
}
