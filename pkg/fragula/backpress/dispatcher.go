// Package backpress routes back-button presses to the handlers that want them.
package backpress

import (
	"go.uber.org/atomic"
)

// Handler handles a back press and reports whether it consumed it.
type Handler func() bool

type registration struct {
	id      int
	handler Handler
}

// Dispatcher calls registered handlers newest first until one consumes the
// press. Register, Dispatch and Drain must run on the event loop; Post may
// be called from any goroutine.
type Dispatcher struct {
	handlers []registration
	nextID   int
	pending  *atomic.Int32
}

// NewDispatcher creates an empty Dispatcher.
func NewDispatcher() *Dispatcher {
	return &Dispatcher{pending: atomic.NewInt32(0)}
}

// Register adds a handler. The returned function removes it again and is
// safe to call more than once.
func (d *Dispatcher) Register(h Handler) (unregister func()) {
	id := d.nextID
	d.nextID++
	d.handlers = append(d.handlers, registration{id: id, handler: h})

	return func() {
		for i, r := range d.handlers {
			if r.id == id {
				d.handlers = append(d.handlers[:i:i], d.handlers[i+1:]...)
				return
			}
		}
	}
}

// HasHandlers reports whether any handler is registered, i.e. whether back
// presses are currently intercepted.
func (d *Dispatcher) HasHandlers() bool {
	return len(d.handlers) > 0
}

// Dispatch delivers one press. It returns false when no handler consumed it,
// in which case the caller applies its own back behavior.
func (d *Dispatcher) Dispatch() bool {
	handlers := append([]registration(nil), d.handlers...)
	for i := len(handlers) - 1; i >= 0; i-- {
		if handlers[i].handler() {
			return true
		}
	}
	return false
}

// Post queues a press for the next Drain.
func (d *Dispatcher) Post() {
	d.pending.Inc()
}

// Drain dispatches every queued press and returns how many were not consumed.
func (d *Dispatcher) Drain() (unhandled int) {
	for n := d.pending.Swap(0); n > 0; n-- {
		if !d.Dispatch() {
			unhandled++
		}
	}
	return unhandled
}
