package wallet

import "sync"

// Emitter is a goroutine-safe event fan-out providers can embed.
type Emitter struct {
	mu       sync.Mutex
	nextID   int
	handlers map[Event]map[int]Handler
}

// On registers h for event.
func (e *Emitter) On(event Event, h Handler) Unsubscribe {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.handlers == nil {
		e.handlers = make(map[Event]map[int]Handler)
	}
	if e.handlers[event] == nil {
		e.handlers[event] = make(map[int]Handler)
	}
	id := e.nextID
	e.nextID++
	e.handlers[event][id] = h

	var once sync.Once
	return func() {
		once.Do(func() {
			e.mu.Lock()
			delete(e.handlers[event], id)
			e.mu.Unlock()
		})
	}
}

// Emit calls every handler registered for event. Handlers run outside the
// lock and may unsubscribe themselves.
func (e *Emitter) Emit(event Event, publicKey string) {
	e.mu.Lock()
	handlers := make([]Handler, 0, len(e.handlers[event]))
	for _, h := range e.handlers[event] {
		handlers = append(handlers, h)
	}
	e.mu.Unlock()

	for _, h := range handlers {
		h(publicKey)
	}
}

// HandlerCount returns how many handlers are registered for event.
func (e *Emitter) HandlerCount(event Event) int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.handlers[event])
}
