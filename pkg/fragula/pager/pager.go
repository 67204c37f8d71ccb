// Package pager models a horizontally paged surface: one page per back-stack
// entry and a continuous scroll position that rests on a page index or sits
// between two adjacent pages.
package pager

import (
	"math"

	"github.com/BrandonKowalski/fragula/pkg/fragula/internal"
	"github.com/BrandonKowalski/fragula/pkg/fragula/swipe"
)

// Pager tracks page count, continuous position and drag state.
// Position 0 is the first page; position increases toward the last page.
type Pager struct {
	pageCount     int
	position      float64
	dragging      bool
	animating     bool
	flingVelocity float64

	listeners []listener
	nextID    int
}

type listener struct {
	id int
	fn func(swipe.Frame)
}

// New creates a Pager with the given number of pages resting on page 0.
// flingVelocity is the release velocity, in pages per second toward a lower
// page, above which a drag settles on that page regardless of distance; a
// non-positive value uses the configured default.
func New(pageCount int, flingVelocity float64) *Pager {
	if pageCount < 0 {
		pageCount = 0
	}
	if flingVelocity <= 0 {
		flingVelocity = internal.DefaultFlingVelocity
	}
	return &Pager{pageCount: pageCount, flingVelocity: flingVelocity}
}

// PageCount returns the number of pages.
func (p *Pager) PageCount() int {
	return p.pageCount
}

// SetPageCount resizes the pager. The position is clamped into the new
// range, so shrinking mid-transition resolves to the nearest valid page.
func (p *Pager) SetPageCount(n int) {
	if n < 0 {
		n = 0
	}
	p.pageCount = n
	p.setPosition(p.position)
}

// Position returns the continuous scroll position.
func (p *Pager) Position() float64 {
	return p.position
}

// CurrentPage returns the page closest to the position.
func (p *Pager) CurrentPage() int {
	if p.pageCount == 0 {
		return 0
	}
	page := int(math.Floor(p.position + 0.5))
	return p.clampPage(page)
}

// CurrentPageOffset returns the signed distance from CurrentPage to the
// position, in [-0.5, 0.5].
func (p *Pager) CurrentPageOffset() float64 {
	return p.position - float64(p.CurrentPage())
}

// Frame returns the values the swipe bridge observes.
func (p *Pager) Frame() swipe.Frame {
	return swipe.Frame{Page: p.CurrentPage(), Offset: p.CurrentPageOffset()}
}

// UserScrollEnabled reports whether a drag may start: the surface must be at
// rest on a page or more than halfway through the current transition.
func (p *Pager) UserScrollEnabled() bool {
	render := swipe.RenderOffset(p.CurrentPageOffset())
	return render == 0 || render > 0.5
}

// Dragging reports whether a user drag is in progress.
func (p *Pager) Dragging() bool {
	return p.dragging
}

// SetAnimating marks the surface as driven by a programmatic animation.
// Drags are refused while it is set.
func (p *Pager) SetAnimating(animating bool) {
	p.animating = animating
}

// Animating reports whether a programmatic animation drives the surface.
func (p *Pager) Animating() bool {
	return p.animating
}

// BeginDrag starts a user drag. It returns false when dragging is not allowed.
func (p *Pager) BeginDrag() bool {
	if p.animating || p.pageCount == 0 || !p.UserScrollEnabled() {
		return false
	}
	p.dragging = true
	return true
}

// DragBy moves the position by a finger displacement of dx pixels across a
// page width pages wide. Moving the finger right (dx > 0) reveals lower pages.
func (p *Pager) DragBy(dx, width float64) {
	if !p.dragging || width <= 0 {
		return
	}
	p.ScrollTo(p.position - dx/width)
}

// EndDrag finishes the drag and returns the page to settle on. velocity is
// the finger velocity in pages per second, positive toward lower pages.
func (p *Pager) EndDrag(velocity float64) int {
	if !p.dragging {
		return p.CurrentPage()
	}
	p.dragging = false

	if p.pageCount == 0 {
		return 0
	}

	if velocity >= p.flingVelocity {
		return p.clampPage(int(math.Floor(p.position)))
	}
	if velocity <= -p.flingVelocity {
		return p.clampPage(int(math.Ceil(p.position)))
	}
	return p.CurrentPage()
}

// CancelDrag ends a drag without choosing a target.
func (p *Pager) CancelDrag() {
	p.dragging = false
}

// ScrollTo moves the position, clamped to the valid range, and notifies
// subscribers when it changed.
func (p *Pager) ScrollTo(position float64) {
	if p.setPosition(position) {
		p.notify()
	}
}

func (p *Pager) setPosition(position float64) bool {
	maxPos := float64(p.pageCount - 1)
	if maxPos < 0 {
		maxPos = 0
	}
	position = math.Max(0, math.Min(position, maxPos))
	if position == p.position {
		return false
	}
	p.position = position
	return true
}

func (p *Pager) clampPage(page int) int {
	if page < 0 {
		return 0
	}
	if page > p.pageCount-1 {
		return max(p.pageCount-1, 0)
	}
	return page
}

// Subscribe registers fn to receive the frame after every position change.
func (p *Pager) Subscribe(fn func(swipe.Frame)) (unsubscribe func()) {
	id := p.nextID
	p.nextID++
	p.listeners = append(p.listeners, listener{id: id, fn: fn})

	return func() {
		for i, l := range p.listeners {
			if l.id == id {
				p.listeners = append(p.listeners[:i:i], p.listeners[i+1:]...)
				return
			}
		}
	}
}

func (p *Pager) notify() {
	frame := p.Frame()
	for _, l := range append([]listener(nil), p.listeners...) {
		l.fn(frame)
	}
}
