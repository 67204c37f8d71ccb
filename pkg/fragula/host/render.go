package host

import (
	"image"
	"image/color"
	"math"

	"github.com/BrandonKowalski/fragula/pkg/fragula/internal"
)

// Canvas is the drawing surface the host renders onto.
type Canvas interface {
	Size() (width, height int32)
	FillRect(r image.Rectangle, c color.RGBA)
	// FillHorizontalGradient fills r blending from left at its left edge to
	// right at its right edge.
	FillHorizontalGradient(r image.Rectangle, left, right color.RGBA)
}

// Screen is content the host knows how to draw. Destination content that
// does not implement Screen is skipped.
type Screen interface {
	Draw(c Canvas, bounds image.Rectangle)
}

// ScreenFunc adapts a function to Screen.
type ScreenFunc func(c Canvas, bounds image.Rectangle)

func (f ScreenFunc) Draw(c Canvas, bounds image.Rectangle) {
	f(c, bounds)
}

// Default overlay colors, used when the theme leaves them unset.
var (
	DefaultElevationStart = color.RGBA{A: 0x33}
	DefaultElevationEnd   = color.RGBA{}
	DefaultBackground     = internal.HexToColor(0x000000)
)

// Render draws the pages overlapping the viewport and, mid-transition, the
// elevation overlay at the left edge of the page being swiped.
func (h *Host) Render(c Canvas) {
	if h.closed.Load() {
		return
	}

	width, height := c.Size()
	h.SetSize(width, height)

	c.FillRect(image.Rect(0, 0, int(width), int(height)),
		h.theme.ResolveColor(internal.AttrBackground, DefaultBackground))

	position := h.pager.Position()
	first := int(math.Floor(position))
	for page := first; page <= first+1; page++ {
		entry := h.snapshot.At(page)
		if entry == nil {
			continue
		}

		x := int(math.Round((float64(page) - position) * float64(width)))
		if x >= int(width) || x+int(width) <= 0 {
			continue
		}
		bounds := image.Rect(x, 0, x+int(width), int(height))

		screen, ok := h.Content(page).(Screen)
		if !ok {
			if !h.warned[entry.ID()] {
				h.warned[entry.ID()] = true
				h.logger.Warn("Destination content cannot be drawn", "route", entry.Route())
			}
			continue
		}
		screen.Draw(c, bounds)
	}

	if rect, ok := h.ElevationRect(); ok {
		c.FillHorizontalGradient(rect,
			h.theme.ResolveColor(internal.AttrElevationEnd, DefaultElevationEnd),
			h.theme.ResolveColor(internal.AttrElevationStart, DefaultElevationStart))
	}
}

// ElevationRect returns where the elevation overlay goes for the current
// frame. ok is false when the render offset is zero and nothing is drawn.
func (h *Host) ElevationRect() (image.Rectangle, bool) {
	r := h.bridge.RenderOffset()
	if r <= 0 || h.width <= 0 || h.elevationWidth <= 0 {
		return image.Rectangle{}, false
	}

	right := int(h.width) - int(math.Round(r*float64(h.width)))
	return image.Rect(right-int(h.elevationWidth), 0, right, int(h.height)), true
}
