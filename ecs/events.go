package ecs

// Event is a generic ECS event payload.
type Event struct {
	Type string
	Data any
}

// EventQueue is a FIFO queue that lives for one frame. Every system may read
// it; the scheduler clears it after the last system.
type EventQueue struct {
	items []Event
}

// Push adds an event.
func (q *EventQueue) Push(evt Event) {
	if q == nil {
		return
	}
	q.items = append(q.items, evt)
}

// Events returns the events pushed so far this frame without consuming them.
func (q *EventQueue) Events() []Event {
	if q == nil {
		return nil
	}
	return q.items
}

// Drain returns all events and clears the queue.
func (q *EventQueue) Drain() []Event {
	if q == nil || len(q.items) == 0 {
		return nil
	}
	out := q.items
	q.items = nil
	return out
}

func (q *EventQueue) flush() {
	if q == nil {
		return
	}
	q.items = nil
}

// Emit pushes an event onto w's queue.
func Emit(w *World, typ string, data any) {
	if w == nil {
		return
	}
	w.events.Push(Event{Type: typ, Data: data})
}

// EventsOf returns this frame's payloads of type T in push order.
func EventsOf[T any](w *World) []T {
	if w == nil {
		return nil
	}
	var out []T
	for _, evt := range w.events.items {
		if v, ok := evt.Data.(T); ok {
			out = append(out, v)
		}
	}
	return out
}
