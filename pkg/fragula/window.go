package fragula

import (
	"os"
	"strconv"

	"github.com/BrandonKowalski/fragula/pkg/fragula/constants"
	"github.com/BrandonKowalski/fragula/pkg/fragula/internal"
	"github.com/veandco/go-sdl2/sdl"
)

// Window wraps the SDL window and renderer the navigation host draws into.
type Window struct {
	Window          *sdl.Window
	Renderer        *sdl.Renderer
	Title           string
	hasVSync        bool
	lastPresentTime uint64
}

var window *Window

func initWindow(title string, winOpts WindowOptions) (*Window, error) {
	displayMode, err := sdl.GetCurrentDisplayMode(0)
	if err != nil {
		internal.GetInternalLogger().Error("Failed to Get display mode!", "error", err)
	}

	width, height := displayMode.W, displayMode.H
	x, y := int32(0), int32(0)

	if constants.IsDevMode() {
		winOpts.Borderless = false
		x, y = int32(50), int32(50)
		width = envDimension(constants.WindowWidthEnvVar, constants.DevWindowWidth)
		height = envDimension(constants.WindowHeightEnvVar, constants.DevWindowHeight)
	}

	internal.GetInternalLogger().Debug("Initializing SDL Window", "width", width, "height", height)

	sdlWindow, err := sdl.CreateWindow(title, x, y, width, height, winOpts.ToSDLFlags())
	if err != nil {
		return nil, NewInfrastructureError("create_window", err)
	}

	renderer, err := sdl.CreateRenderer(sdlWindow, -1, sdl.RENDERER_ACCELERATED|sdl.RENDERER_PRESENTVSYNC)
	if err != nil {
		sdlWindow.Destroy()
		return nil, NewInfrastructureError("create_renderer", err)
	}

	renderer.SetLogicalSize(width, height)
	renderer.SetDrawBlendMode(sdl.BLENDMODE_BLEND)

	info, err := renderer.GetInfo()
	vsync := err == nil && info.Flags&sdl.RENDERER_PRESENTVSYNC != 0

	return &Window{
		Window:   sdlWindow,
		Renderer: renderer,
		Title:    title,
		hasVSync: vsync,
	}, nil
}

func envDimension(name string, fallback int32) int32 {
	v := os.Getenv(name)
	if v == "" {
		return fallback
	}
	n, err := strconv.ParseInt(v, 10, 32)
	if err != nil || n <= 0 {
		internal.GetInternalLogger().Warn("Invalid window dimension; using default", "name", name, "value", v, "error", err)
		return fallback
	}
	return int32(n)
}

func (w *Window) closeWindow() {
	w.Renderer.Destroy()
	w.Window.Destroy()
}

// GetWindow returns the window created by Init, or nil.
func GetWindow() *Window {
	return window
}

func (w *Window) GetWidth() int32 {
	width, _ := w.Window.GetSize()
	return width
}

func (w *Window) GetHeight() int32 {
	_, height := w.Window.GetSize()
	return height
}

// Present swaps the render buffer and enforces ~60fps frame timing
// when VSync is not available. Use this instead of renderer.Present().
func (w *Window) Present() {
	w.Renderer.Present()
	if !w.hasVSync {
		frame := uint64(constants.FrameDelay.Milliseconds())
		now := sdl.GetTicks64()
		if elapsed := now - w.lastPresentTime; elapsed < frame {
			sdl.Delay(uint32(frame - elapsed))
		}
		w.lastPresentTime = sdl.GetTicks64()
	}
}
