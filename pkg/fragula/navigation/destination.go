package navigation

import (
	"fmt"
	"maps"
	"strings"
)

// ContentFunc produces the content shown for an entry.
// The returned value is opaque to the navigator; hosts type-assert it to
// whatever drawing interface they support.
type ContentFunc func(entry *Entry) any

// Argument describes an optional destination argument.
// Arguments are never type-checked; Default is copied into entries that
// were navigated without the key. A nil value is only accepted for a
// Nullable argument.
type Argument struct {
	Default  any
	Nullable bool
}

// Destination binds a route pattern to the function producing its content.
// Patterns may contain {name} placeholder segments, e.g. "chat/{id}".
type Destination struct {
	route     string
	segments  []string
	content   ContentFunc
	arguments map[string]Argument
	deepLinks []string
	className string
	titleID   string
}

// Route returns the destination's route pattern.
func (d *Destination) Route() string {
	return d.route
}

// ClassName returns the identifier legacy records use for the destination.
// Defaults to the route pattern.
func (d *Destination) ClassName() string {
	if d.className != "" {
		return d.className
	}
	return d.route
}

// TitleID returns the i18n message id of the destination's title, if any.
func (d *Destination) TitleID() string {
	return d.titleID
}

// DeepLinks returns the deep-link patterns registered for the destination.
func (d *Destination) DeepLinks() []string {
	return append([]string(nil), d.deepLinks...)
}

// Argument returns the declared argument with the given name.
func (d *Destination) Argument(name string) (Argument, bool) {
	arg, ok := d.arguments[name]
	return arg, ok
}

// match reports whether a concrete route fits the pattern and returns the
// placeholder values it captured.
func (d *Destination) match(route string) (Arguments, bool) {
	parts := strings.Split(route, "/")
	if len(parts) != len(d.segments) {
		return nil, false
	}

	var captured Arguments
	for i, seg := range d.segments {
		if name, ok := placeholder(seg); ok {
			if parts[i] == "" {
				return nil, false
			}
			if captured == nil {
				captured = make(Arguments)
			}
			captured[name] = parts[i]
			continue
		}
		if seg != parts[i] {
			return nil, false
		}
	}
	return captured, true
}

func placeholder(segment string) (string, bool) {
	if len(segment) > 2 && strings.HasPrefix(segment, "{") && strings.HasSuffix(segment, "}") {
		return segment[1 : len(segment)-1], true
	}
	return "", false
}

// DestinationOption configures a destination during registration.
type DestinationOption func(*Destination)

// WithArgument declares an argument for the destination.
func WithArgument(name string, arg Argument) DestinationOption {
	return func(d *Destination) {
		d.arguments[name] = arg
	}
}

// WithDeepLink records a deep-link pattern. Patterns are stored, not parsed.
func WithDeepLink(pattern string) DestinationOption {
	return func(d *Destination) {
		d.deepLinks = append(d.deepLinks, pattern)
	}
}

// WithClassName sets the identifier used by LegacyEntry.
func WithClassName(name string) DestinationOption {
	return func(d *Destination) {
		d.className = name
	}
}

// WithTitle sets the i18n message id used for the destination's title.
func WithTitle(messageID string) DestinationOption {
	return func(d *Destination) {
		d.titleID = messageID
	}
}

// GraphBuilder collects destinations before the graph is frozen.
type GraphBuilder struct {
	destinations []*Destination
}

// NewGraphBuilder creates an empty GraphBuilder.
func NewGraphBuilder() *GraphBuilder {
	return &GraphBuilder{}
}

// Swipeable registers a destination shown as a swipeable page.
func (b *GraphBuilder) Swipeable(route string, content ContentFunc, opts ...DestinationOption) *GraphBuilder {
	dest := &Destination{
		route:     route,
		segments:  strings.Split(route, "/"),
		content:   content,
		arguments: make(map[string]Argument),
	}
	for _, opt := range opts {
		opt(dest)
	}
	b.destinations = append(b.destinations, dest)
	return b
}

// Build validates the registered destinations and returns the immutable graph.
func (b *GraphBuilder) Build() (*Graph, error) {
	g := &Graph{
		byRoute: make(map[string]*Destination, len(b.destinations)),
		ordered: make([]*Destination, 0, len(b.destinations)),
	}

	for _, dest := range b.destinations {
		if dest.route == "" {
			return nil, ErrEmptyRoute
		}
		if _, exists := g.byRoute[dest.route]; exists {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateRoute, dest.route)
		}
		g.byRoute[dest.route] = dest
		g.ordered = append(g.ordered, dest)
	}

	return g, nil
}

// Graph is the immutable set of destinations a navigator can reach.
type Graph struct {
	byRoute map[string]*Destination
	ordered []*Destination
}

// Destination returns the destination registered under an exact route pattern.
func (g *Graph) Destination(pattern string) (*Destination, bool) {
	d, ok := g.byRoute[pattern]
	return d, ok
}

// Destinations returns the destinations in registration order.
func (g *Graph) Destinations() []*Destination {
	return append([]*Destination(nil), g.ordered...)
}

// Resolve finds the destination for a concrete route. Exact pattern matches
// win over placeholder matches; placeholder patterns are tried in
// registration order.
func (g *Graph) Resolve(route string) (*Destination, Arguments, error) {
	if d, ok := g.byRoute[route]; ok {
		return d, nil, nil
	}

	for _, d := range g.ordered {
		if captured, ok := d.match(route); ok {
			return d, captured, nil
		}
	}

	return nil, nil, fmt.Errorf("%w: %q", ErrUnknownRoute, route)
}

func mergeArguments(captured, explicit Arguments) Arguments {
	if len(captured) == 0 {
		return explicit
	}
	merged := maps.Clone(captured)
	maps.Copy(merged, explicit)
	return merged
}
