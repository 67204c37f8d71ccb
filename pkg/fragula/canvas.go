package fragula

import (
	"image"
	"image/color"

	"github.com/veandco/go-sdl2/sdl"
)

// sdlCanvas draws host output with an SDL renderer.
type sdlCanvas struct {
	window *Window
}

func (c sdlCanvas) Size() (int32, int32) {
	return c.window.GetWidth(), c.window.GetHeight()
}

func (c sdlCanvas) FillRect(r image.Rectangle, col color.RGBA) {
	if r.Empty() {
		return
	}
	renderer := c.window.Renderer
	renderer.SetDrawColor(col.R, col.G, col.B, col.A)
	renderer.FillRect(toSDLRect(r))
}

// FillHorizontalGradient draws one vertical line per column; the overlay is
// only a few pixels wide.
func (c sdlCanvas) FillHorizontalGradient(r image.Rectangle, left, right color.RGBA) {
	if r.Empty() {
		return
	}
	renderer := c.window.Renderer
	span := r.Dx() - 1

	for i := 0; i <= span; i++ {
		t := 0.0
		if span > 0 {
			t = float64(i) / float64(span)
		}
		col := lerpColor(left, right, t)
		renderer.SetDrawColor(col.R, col.G, col.B, col.A)
		x := int32(r.Min.X + i)
		renderer.DrawLine(x, int32(r.Min.Y), x, int32(r.Max.Y-1))
	}
}

func lerpColor(a, b color.RGBA, t float64) color.RGBA {
	mix := func(x, y uint8) uint8 {
		return uint8(float64(x) + (float64(y)-float64(x))*t + 0.5)
	}
	return color.RGBA{R: mix(a.R, b.R), G: mix(a.G, b.G), B: mix(a.B, b.B), A: mix(a.A, b.A)}
}

func toSDLRect(r image.Rectangle) *sdl.Rect {
	return &sdl.Rect{X: int32(r.Min.X), Y: int32(r.Min.Y), W: int32(r.Dx()), H: int32(r.Dy())}
}
