// Package swipe turns paged-surface scroll positions into back-stack intent.
//
// Page N of the surface is stack depth N, so a swipe that settles on a lower
// page than the one previously at rest means the user swiped the top screen
// away. Step is the pure transition function evaluated once per position
// update; Bridge holds its state between updates.
package swipe

// Frame is one position update from the paged surface: the page closest to
// the scroll position and the signed offset from it, in [-0.5, 0.5] for a
// nearest-page surface and never outside (-1, 1).
type Frame struct {
	Page   int
	Offset float64
}

// Position returns the continuous scroll position of the frame.
func (f Frame) Position() float64 {
	return float64(f.Page) + f.Offset
}

// State is carried from one frame to the next.
type State struct {
	// ScrollToEnd is true while the position moves toward lower pages.
	ScrollToEnd bool
	// ScrollOffset is the continuous position of the last frame.
	ScrollOffset float64
	// RenderOffset is how far the previous page has been swiped away from
	// fully covering the screen, in [0, 1]. Zero means at rest on a page.
	RenderOffset float64
	// PreviousPage is the page the surface last settled on.
	PreviousPage int
}

// Direction is the kind of settle a frame produced.
type Direction int

const (
	DirectionNone    Direction = iota // not settled, or settled on the same page
	DirectionForward                  // settled on a higher page
	DirectionBack                     // settled on a lower page: swipe-out
)

func (d Direction) String() string {
	switch d {
	case DirectionForward:
		return "forward"
	case DirectionBack:
		return "back"
	default:
		return "none"
	}
}

// Decision tells the host what a frame means for the back-stack.
type Decision struct {
	Direction Direction
	// Pops is the number of entries to pop. It is the number of pages the
	// settle dropped, so page index and stack depth stay aligned even when a
	// single frame lands more than one page lower.
	Pops int
}

// RenderOffset normalizes a signed page offset to [0, 1].
func RenderOffset(offset float64) float64 {
	var r float64
	if offset < 0 {
		r = 1 + offset
	} else {
		r = offset
	}
	// Offsets outside (-1, 1) are not produced by a nearest-page surface.
	if r < 0 {
		return 0
	}
	if r > 1 {
		return 1
	}
	return r
}

// Step advances the state by one frame.
//
// The settle comparison runs only when the render offset has reached zero,
// that is when the surface is exactly at rest on a page boundary, so one
// gesture produces at most one back decision.
func Step(s State, f Frame) (State, Decision) {
	position := f.Position()

	next := State{
		ScrollToEnd:  position < s.ScrollOffset,
		ScrollOffset: position,
		RenderOffset: RenderOffset(f.Offset),
		PreviousPage: s.PreviousPage,
	}

	if next.RenderOffset > 0 {
		return next, Decision{}
	}

	var d Decision
	switch {
	case f.Page > s.PreviousPage:
		d.Direction = DirectionForward
	case f.Page < s.PreviousPage:
		d.Direction = DirectionBack
		d.Pops = s.PreviousPage - f.Page
	}
	next.PreviousPage = f.Page

	return next, d
}

// Bridge holds the swipe state between frames.
type Bridge struct {
	state State
}

// NewBridge creates a Bridge at rest on page.
func NewBridge(page int) *Bridge {
	b := &Bridge{}
	b.Resync(page)
	return b
}

// Observe feeds one frame through Step.
func (b *Bridge) Observe(f Frame) Decision {
	var d Decision
	b.state, d = Step(b.state, f)
	return d
}

// Resync puts the bridge at rest on page without producing a decision. Use
// it after the back-stack changed for reasons other than a swipe, so the
// resulting page change is not read as a gesture.
func (b *Bridge) Resync(page int) {
	b.state = State{
		ScrollOffset: float64(page),
		PreviousPage: page,
	}
}

// State returns the current state.
func (b *Bridge) State() State {
	return b.state
}

// RenderOffset returns the elevation overlay intensity. The overlay is
// drawn only while it is above zero.
func (b *Bridge) RenderOffset() float64 {
	return b.state.RenderOffset
}
