package navigation

import (
	"fmt"
	"log/slog"

	"github.com/BrandonKowalski/fragula/pkg/fragula/internal"
)

// Option configures a Navigator.
type Option func(*Navigator)

// WithLogger replaces the internal library logger.
func WithLogger(logger *slog.Logger) Option {
	return func(n *Navigator) {
		n.logger = logger
	}
}

type subscriber struct {
	id int
	fn func(Snapshot)
}

// Navigator owns the back-stack. It pushes and pops entries and publishes a
// fresh Snapshot to every subscriber after each mutation.
//
// Navigator is not safe for concurrent use; drive it from the event loop.
type Navigator struct {
	graph       *Graph
	stack       backStack
	subscribers []subscriber
	nextSubID   int
	closed      bool
	logger      *slog.Logger
}

// New creates a Navigator whose back-stack holds the start destination.
func New(graph *Graph, startRoute string, opts ...Option) (*Navigator, error) {
	n := &Navigator{
		graph:  graph,
		logger: internal.GetInternalLogger(),
	}
	for _, opt := range opts {
		opt(n)
	}

	dest, captured, err := graph.Resolve(startRoute)
	if err != nil {
		return nil, fmt.Errorf("start destination: %w", err)
	}
	n.stack.push(newEntry(dest, startRoute, captured))

	return n, nil
}

// Graph returns the graph the navigator was built from.
func (n *Navigator) Graph() *Graph {
	return n.graph
}

// Navigate pushes a new entry for route. Placeholder values captured from
// the route are merged under args; explicit args win.
func (n *Navigator) Navigate(route string, args Arguments) (*Entry, error) {
	if n.closed {
		return nil, ErrClosed
	}

	dest, captured, err := n.graph.Resolve(route)
	if err != nil {
		return nil, err
	}
	for name, v := range args {
		if arg, ok := dest.arguments[name]; ok && v == nil && !arg.Nullable {
			return nil, fmt.Errorf("%w: %s on %s", ErrNullArgument, name, dest.route)
		}
	}

	entry := newEntry(dest, route, mergeArguments(captured, args))
	n.stack.push(entry)
	n.logger.Debug("Navigated", "route", route, "entry", entry.id, "depth", n.stack.len())
	n.emit()

	return entry, nil
}

// MustNavigate is like Navigate but panics if the route is not registered.
func (n *Navigator) MustNavigate(route string, args Arguments) *Entry {
	entry, err := n.Navigate(route, args)
	if err != nil {
		panic(err)
	}
	return entry
}

// Pop removes the visible entry. It returns false, leaving the stack
// unchanged, when only the start entry remains so the caller can fall back
// to its own back handling.
func (n *Navigator) Pop() bool {
	if n.closed {
		return false
	}

	popped := n.stack.pop()
	if popped == nil {
		n.logger.Debug("Pop ignored at start destination")
		return false
	}

	n.logger.Debug("Popped", "route", popped.route, "entry", popped.id, "depth", n.stack.len())
	n.emit()
	return true
}

// PopTo pops entries until the topmost entry whose destination pattern or
// concrete route equals route is visible. With inclusive set, that entry is
// popped too. The start entry is never popped. Returns false and leaves the
// stack unchanged if no entry matches.
func (n *Navigator) PopTo(route string, inclusive bool) bool {
	if n.closed {
		return false
	}

	target := -1
	for i := n.stack.len() - 1; i >= 0; i-- {
		e := n.stack.entries[i]
		if e.route == route || e.destination.route == route {
			target = i
			break
		}
	}
	if target < 0 {
		return false
	}

	keep := target + 1
	if inclusive {
		keep = target
	}
	if keep < 1 {
		keep = 1
	}

	popped := false
	for n.stack.len() > keep {
		if !n.Pop() {
			break
		}
		popped = true
	}
	return popped
}

// BackStack returns the current snapshot.
func (n *Navigator) BackStack() Snapshot {
	return n.stack.snapshot()
}

// Current returns the visible entry.
func (n *Navigator) Current() *Entry {
	return n.stack.peek()
}

// Subscribe registers fn to receive every new snapshot. fn is not called
// with the current snapshot; read BackStack for that.
func (n *Navigator) Subscribe(fn func(Snapshot)) (unsubscribe func()) {
	if n.closed {
		return func() {}
	}

	id := n.nextSubID
	n.nextSubID++
	n.subscribers = append(n.subscribers, subscriber{id: id, fn: fn})

	return func() {
		for i, s := range n.subscribers {
			if s.id == id {
				n.subscribers = append(n.subscribers[:i:i], n.subscribers[i+1:]...)
				return
			}
		}
	}
}

func (n *Navigator) emit() {
	snapshot := n.stack.snapshot()
	for _, s := range append([]subscriber(nil), n.subscribers...) {
		s.fn(snapshot)
	}
}

// SavedEntry is the persistable form of an entry.
type SavedEntry struct {
	Route     string    `toml:"route"`
	Arguments Arguments `toml:"arguments,omitempty"`
}

// Save returns the back-stack in a form that Restore accepts.
func (n *Navigator) Save() []SavedEntry {
	saved := make([]SavedEntry, 0, n.stack.len())
	for _, e := range n.stack.entries {
		saved = append(saved, SavedEntry{Route: e.route, Arguments: e.Arguments()})
	}
	return saved
}

// Restore replaces the back-stack with freshly created entries for saved.
// It emits a single snapshot. Nothing changes if any route fails to resolve.
func (n *Navigator) Restore(saved []SavedEntry) error {
	if n.closed {
		return ErrClosed
	}
	if len(saved) == 0 {
		return nil
	}

	restored := make([]*Entry, 0, len(saved))
	for _, s := range saved {
		dest, captured, err := n.graph.Resolve(s.Route)
		if err != nil {
			return fmt.Errorf("restore: %w", err)
		}
		restored = append(restored, newEntry(dest, s.Route, mergeArguments(captured, s.Arguments)))
	}

	n.stack.entries = restored
	n.stack.version++
	n.logger.Debug("Restored back-stack", "depth", len(restored))
	n.emit()
	return nil
}

// Close tears the navigator down. Subscribers are dropped without a final
// notification and later mutations are ignored.
func (n *Navigator) Close() {
	if n.closed {
		return
	}
	n.closed = true
	n.subscribers = nil
	n.stack.clear()
}

// Closed reports whether Close has been called.
func (n *Navigator) Closed() bool {
	return n.closed
}
