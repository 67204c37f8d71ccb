package navigation

import "errors"

var (
	// ErrUnknownRoute is returned when navigating to a route no destination matches.
	// Treat it as a programmer error: the graph is fixed at build time.
	ErrUnknownRoute = errors.New("navigation: unknown route")

	// ErrDuplicateRoute is returned by GraphBuilder.Build when two destinations
	// share a route pattern.
	ErrDuplicateRoute = errors.New("navigation: duplicate route")

	// ErrEmptyRoute is returned by GraphBuilder.Build for a destination without a route.
	ErrEmptyRoute = errors.New("navigation: empty route")

	// ErrNullArgument is returned when a nil value is passed for a declared
	// argument that is not nullable.
	ErrNullArgument = errors.New("navigation: null argument")

	// ErrClosed is returned by mutations on a navigator that has been torn down.
	ErrClosed = errors.New("navigation: navigator closed")
)
