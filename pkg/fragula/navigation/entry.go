package navigation

import (
	"maps"

	"github.com/google/uuid"
)

// Arguments are the values an entry was navigated with, keyed by name.
type Arguments map[string]any

// Entry is one item on the back-stack: a destination plus the arguments it
// was opened with. Entries are immutable once created.
type Entry struct {
	id          string
	route       string
	arguments   Arguments
	destination *Destination
}

func newEntry(dest *Destination, route string, args Arguments) *Entry {
	merged := make(Arguments, len(dest.arguments)+len(args))
	for name, arg := range dest.arguments {
		if arg.Default != nil {
			merged[name] = arg.Default
		}
	}
	maps.Copy(merged, args)

	return &Entry{
		id:          uuid.NewString(),
		route:       route,
		arguments:   merged,
		destination: dest,
	}
}

// ID returns the entry's unique token.
func (e *Entry) ID() string {
	return e.id
}

// Route returns the concrete route the entry was navigated to, with any
// placeholders already filled in.
func (e *Entry) Route() string {
	return e.route
}

// Destination returns the destination the entry was created for.
func (e *Entry) Destination() *Destination {
	return e.destination
}

// Arg returns a single argument.
func (e *Entry) Arg(name string) (any, bool) {
	v, ok := e.arguments[name]
	return v, ok
}

// Arguments returns a copy of the entry's arguments.
func (e *Entry) Arguments() Arguments {
	return maps.Clone(e.arguments)
}

// Content produces the entry's renderable content through its destination.
func (e *Entry) Content() any {
	if e.destination == nil || e.destination.content == nil {
		return nil
	}
	return e.destination.content(e)
}

// LegacyEntry is the flat record older call sites expect: the destination's
// class name and the arguments, without identity or routing.
type LegacyEntry struct {
	ClassName string
	Arguments Arguments
}

// Legacy converts the entry into a LegacyEntry.
func (e *Entry) Legacy() LegacyEntry {
	className := e.route
	if e.destination != nil {
		className = e.destination.ClassName()
	}
	return LegacyEntry{
		ClassName: className,
		Arguments: e.Arguments(),
	}
}
