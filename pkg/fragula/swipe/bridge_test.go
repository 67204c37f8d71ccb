package swipe

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderOffset(t *testing.T) {
	for i := -99; i <= 99; i++ {
		f := float64(i) / 100
		r := RenderOffset(f)

		assert.GreaterOrEqual(t, r, 0.0)
		assert.LessOrEqual(t, r, 1.0)
		if f < 0 {
			assert.InDelta(t, 1+f, r, 1e-12, "offset %v", f)
		} else {
			assert.InDelta(t, f, r, 1e-12, "offset %v", f)
		}
	}
}

func TestRenderOffsetClampsOutOfRange(t *testing.T) {
	assert.Equal(t, 0.0, RenderOffset(-1.5))
	assert.Equal(t, 1.0, RenderOffset(1.5))
}

func TestStepTracksScrollDirection(t *testing.T) {
	s := State{ScrollOffset: 1, PreviousPage: 1}

	s, _ = Step(s, Frame{Page: 1, Offset: -0.2})
	assert.True(t, s.ScrollToEnd)
	assert.InDelta(t, 0.8, s.ScrollOffset, 1e-12)
	assert.InDelta(t, 0.8, s.RenderOffset, 1e-12)

	s, _ = Step(s, Frame{Page: 1, Offset: -0.1})
	assert.False(t, s.ScrollToEnd)
}

func TestStepSingleBackSwipePopsOnce(t *testing.T) {
	b := NewBridge(1)

	frames := []Frame{
		{Page: 1, Offset: -0.1},
		{Page: 1, Offset: -0.3},
		{Page: 1, Offset: -0.5},
		{Page: 0, Offset: 0.4},
		{Page: 0, Offset: 0.2},
		{Page: 0, Offset: 0.05},
		{Page: 0, Offset: 0},
		{Page: 0, Offset: 0},
	}

	backs := 0
	for i, f := range frames {
		d := b.Observe(f)
		if d.Direction == DirectionBack {
			backs++
			assert.Equal(t, 6, i, "decision fires when the render offset reaches zero")
			assert.Equal(t, 1, d.Pops)
		}
	}
	assert.Equal(t, 1, backs)
	assert.Equal(t, 0, b.State().PreviousPage)
}

func TestStepForwardSettleDoesNotPop(t *testing.T) {
	b := NewBridge(0)

	var decisions []Decision
	for _, f := range []Frame{
		{Page: 0, Offset: 0.3},
		{Page: 1, Offset: -0.2},
		{Page: 1, Offset: 0},
	} {
		decisions = append(decisions, b.Observe(f))
	}

	assert.Equal(t, Decision{}, decisions[0])
	assert.Equal(t, Decision{}, decisions[1])
	assert.Equal(t, Decision{Direction: DirectionForward}, decisions[2])
	assert.Equal(t, 1, b.State().PreviousPage)
}

func TestStepNoDecisionMidTransition(t *testing.T) {
	s := State{PreviousPage: 3, ScrollOffset: 3}

	next, d := Step(s, Frame{Page: 1, Offset: 0.25})
	assert.Equal(t, Decision{}, d)
	assert.Equal(t, 3, next.PreviousPage, "previous page only moves on settle")
}

func TestStepMultiPageSettle(t *testing.T) {
	s := State{PreviousPage: 3, ScrollOffset: 3}

	next, d := Step(s, Frame{Page: 1, Offset: 0})
	assert.Equal(t, DirectionBack, d.Direction)
	assert.Equal(t, 2, d.Pops)
	assert.Equal(t, 1, next.PreviousPage)
}

func TestStepSamePageSettle(t *testing.T) {
	s := State{PreviousPage: 2, ScrollOffset: 2.4}

	next, d := Step(s, Frame{Page: 2, Offset: 0})
	assert.Equal(t, Decision{}, d)
	assert.True(t, next.ScrollToEnd)
	assert.Equal(t, 2, next.PreviousPage)
}

func TestResync(t *testing.T) {
	b := NewBridge(2)
	b.Observe(Frame{Page: 2, Offset: -0.4})
	b.Resync(0)

	assert.Equal(t, State{PreviousPage: 0, ScrollOffset: 0}, b.State())
	assert.Equal(t, Decision{}, b.Observe(Frame{Page: 0, Offset: 0}))
	assert.Zero(t, b.RenderOffset())
}

func TestDirectionString(t *testing.T) {
	assert.Equal(t, "none", DirectionNone.String())
	assert.Equal(t, "forward", DirectionForward.String())
	assert.Equal(t, "back", DirectionBack.String())
}
