package pager

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BrandonKowalski/fragula/pkg/fragula/internal"
	"github.com/BrandonKowalski/fragula/pkg/fragula/swipe"
)

func TestCurrentPageAndOffset(t *testing.T) {
	tests := []struct {
		position float64
		page     int
		offset   float64
	}{
		{0, 0, 0},
		{0.3, 0, 0.3},
		{0.5, 1, -0.5},
		{0.7, 1, -0.3},
		{1, 1, 0},
		{1.49, 1, 0.49},
	}

	for _, tt := range tests {
		p := New(3, 0)
		p.ScrollTo(tt.position)

		assert.Equal(t, tt.page, p.CurrentPage(), "position %v", tt.position)
		assert.InDelta(t, tt.offset, p.CurrentPageOffset(), 1e-9, "position %v", tt.position)
		assert.InDelta(t, tt.position, p.Frame().Position(), 1e-9)
	}
}

func TestScrollToClamps(t *testing.T) {
	p := New(3, 0)

	p.ScrollTo(5)
	assert.Equal(t, 2.0, p.Position())

	p.ScrollTo(-1)
	assert.Equal(t, 0.0, p.Position())
}

func TestShrinkMidTransitionClamps(t *testing.T) {
	p := New(3, 0)
	p.ScrollTo(1.6)

	p.SetPageCount(2)
	assert.Equal(t, 1.0, p.Position())
	assert.Equal(t, 1, p.CurrentPage())

	p.SetPageCount(0)
	assert.Equal(t, 0.0, p.Position())
	assert.Equal(t, 0, p.CurrentPage())
	assert.Equal(t, 0, p.EndDrag(0))
}

func TestSubscribeReceivesChanges(t *testing.T) {
	p := New(2, 0)

	var frames []swipe.Frame
	unsubscribe := p.Subscribe(func(f swipe.Frame) { frames = append(frames, f) })

	p.ScrollTo(0.25)
	p.ScrollTo(0.25)
	p.ScrollTo(1)
	unsubscribe()
	p.ScrollTo(0)

	assert.Equal(t, []swipe.Frame{{Page: 0, Offset: 0.25}, {Page: 1, Offset: 0}}, frames)
}

func TestDragMovesTowardLowerPages(t *testing.T) {
	p := New(2, 0)
	p.ScrollTo(1)

	require.True(t, p.BeginDrag())
	p.DragBy(30, 100)
	assert.InDelta(t, 0.7, p.Position(), 1e-9)

	p.DragBy(-10, 100)
	assert.InDelta(t, 0.8, p.Position(), 1e-9)

	p.DragBy(500, 100)
	assert.Equal(t, 0.0, p.Position())
}

func TestDragIgnoredWhenNotDragging(t *testing.T) {
	p := New(2, 0)
	p.ScrollTo(1)

	p.DragBy(50, 100)
	assert.Equal(t, 1.0, p.Position())
}

func TestBeginDragRefused(t *testing.T) {
	p := New(2, 0)
	p.ScrollTo(1)

	p.SetAnimating(true)
	assert.False(t, p.BeginDrag(), "animating")
	p.SetAnimating(false)

	p.ScrollTo(0.3)
	assert.False(t, p.UserScrollEnabled())
	assert.False(t, p.BeginDrag(), "render offset 0.3")

	p.ScrollTo(0.7)
	assert.True(t, p.UserScrollEnabled())
	assert.True(t, p.BeginDrag())

	assert.False(t, New(0, 0).BeginDrag(), "no pages")
}

func TestEndDragTarget(t *testing.T) {
	tests := []struct {
		name     string
		position float64
		velocity float64
		want     int
	}{
		{"nearest stays", 0.8, 0, 1},
		{"nearest back", 0.3, 0, 0},
		{"fling back", 0.8, 1.5, 0},
		{"fling forward", 0.3, -1.5, 1},
		{"slow drift uses nearest", 0.8, 0.5, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := New(2, 0)
			p.ScrollTo(1)
			require.True(t, p.BeginDrag())
			p.DragBy((1-tt.position)*100, 100)

			assert.Equal(t, tt.want, p.EndDrag(tt.velocity))
			assert.False(t, p.Dragging())
		})
	}
}

func TestFlingThreshold(t *testing.T) {
	fling := func(p *Pager, velocity float64) int {
		p.ScrollTo(1)
		require.True(t, p.BeginDrag())
		p.DragBy(20, 100)
		return p.EndDrag(velocity)
	}

	assert.Equal(t, 0, fling(New(2, 0), internal.DefaultFlingVelocity), "default threshold")
	assert.Equal(t, 1, fling(New(2, 3), 2), "below a raised threshold")
	assert.Equal(t, 0, fling(New(2, 3), 3))
}

func TestVelocityTracker(t *testing.T) {
	v := NewVelocityTracker(100 * time.Millisecond)
	start := time.Unix(0, 0)

	assert.Zero(t, v.Velocity())

	v.Add(0, start)
	v.Add(10, start.Add(10*time.Millisecond))
	v.Add(50, start.Add(50*time.Millisecond))
	assert.InDelta(t, 1000, v.Velocity(), 1e-6)

	// Samples older than the window drop out.
	v.Add(50, start.Add(300*time.Millisecond))
	v.Add(60, start.Add(310*time.Millisecond))
	assert.InDelta(t, 1000, v.Velocity(), 1e-6)

	v.Reset()
	assert.Zero(t, v.Velocity())
}
