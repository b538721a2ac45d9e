// Package events is the chart's synchronous notification bus.
package events

import (
	"fmt"
	"sync"

	"github.com/rs/zerolog"
)

// Handler receives the payload of an emitted event.
type Handler func(payload any)

// ListenerID identifies a registration for Off.
type ListenerID uint64

type listener struct {
	id ListenerID
	fn Handler
}

// Bus dispatches events to listeners in registration order. A listener that
// panics is logged and skipped; the remaining listeners still run and the
// emitter never sees the panic.
type Bus struct {
	mu        sync.Mutex
	logger    zerolog.Logger
	nextID    ListenerID
	listeners map[string][]listener
}

func New(logger zerolog.Logger) *Bus {
	return &Bus{
		logger:    logger.With().Str("component", "events").Logger(),
		listeners: make(map[string][]listener),
	}
}

// On registers fn for event and returns an id that Off accepts.
func (b *Bus) On(event string, fn Handler) ListenerID {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.nextID++
	b.listeners[event] = append(b.listeners[event], listener{id: b.nextID, fn: fn})
	return b.nextID
}

// Off removes one registration. It reports whether the id was found.
func (b *Bus) Off(event string, id ListenerID) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	ls := b.listeners[event]
	for i, l := range ls {
		if l.id == id {
			b.listeners[event] = append(ls[:i:i], ls[i+1:]...)
			return true
		}
	}
	return false
}

// OffAll removes every listener for event.
func (b *Bus) OffAll(event string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	delete(b.listeners, event)
}

// Count returns the number of listeners registered for event.
func (b *Bus) Count(event string) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.listeners[event])
}

// Emit calls every listener for event with payload. Listeners registered or
// removed during dispatch take effect on the next Emit.
func (b *Bus) Emit(event string, payload any) {
	b.mu.Lock()
	ls := append([]listener(nil), b.listeners[event]...)
	b.mu.Unlock()

	for _, l := range ls {
		b.call(event, l, payload)
	}
}

func (b *Bus) call(event string, l listener, payload any) {
	defer func() {
		if r := recover(); r != nil {
			b.logger.Error().
				Str("event", event).
				Uint64("listener", uint64(l.id)).
				Str("panic", fmt.Sprint(r)).
				Msg("event listener failed")
		}
	}()
	l.fn(payload)
}

// Reset drops all listeners.
func (b *Bus) Reset() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.listeners = make(map[string][]listener)
}
