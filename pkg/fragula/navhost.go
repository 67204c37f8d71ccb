package fragula

import (
	"time"

	"github.com/BrandonKowalski/fragula/pkg/fragula/backpress"
	"github.com/BrandonKowalski/fragula/pkg/fragula/constants"
	"github.com/BrandonKowalski/fragula/pkg/fragula/host"
	"github.com/BrandonKowalski/fragula/pkg/fragula/internal"
	"github.com/BrandonKowalski/fragula/pkg/fragula/navigation"
	"github.com/BrandonKowalski/fragula/pkg/fragula/pager"
	"github.com/veandco/go-sdl2/sdl"
)

// NavHostSettings configures NavHost.
type NavHostSettings struct {
	// StateStore keeps the back-stack between runs. Defaults to memory only.
	StateStore host.StateStoreOwner
	// Lifecycle is destroyed when NavHost returns. Optional.
	Lifecycle *host.Lifecycle
	// Messages are extra i18n message files keyed by file name, e.g.
	// "active.en.toml", used to translate destination titles.
	Messages map[string][]byte
	// UpdateWindowTitle shows the visible destination's title in the window title.
	UpdateWindowTitle bool
	// OnEvent sees every SDL event before NavHost handles it, on the event
	// loop, so it may navigate.
	OnEvent func(event sdl.Event)
}

type dragSource int

const (
	dragSourceNone dragSource = iota
	dragSourceMouse
	dragSourceFinger
)

type navHostController struct {
	host       *host.Host
	dispatcher *backpress.Dispatcher
	window     *Window
	canvas     sdlCanvas

	dragSource dragSource
	lastX      float64
	velocity   *pager.VelocityTracker

	onEvent     func(event sdl.Event)
	updateTitle bool
	title       string
	quit        bool
}

// NavHost shows nav's back-stack as swipeable pages until the window is
// closed (nil) or back is pressed on the start destination (ErrCancelled).
// Back presses come from Escape, Backspace, AC Back, the controller B button
// and, if configured, a hardware key read through evdev.
func NavHost(nav *navigation.Navigator, settings NavHostSettings) error {
	if window == nil {
		return ErrNotInitialized
	}

	cfg, err := host.ConfigFromFile(config)
	if err != nil {
		return err
	}
	for name, data := range settings.Messages {
		if err := cfg.Translator.AddMessages(data, name); err != nil {
			return err
		}
	}

	lifecycle := settings.Lifecycle
	if lifecycle == nil {
		lifecycle = &host.Lifecycle{}
	}
	store := settings.StateStore
	if store == nil {
		store = host.NewMemoryStateStore()
	}
	dispatcher := backpress.NewDispatcher()

	h := host.New(nav, cfg)
	if err := h.Attach(host.Owners{
		Lifecycle:  lifecycle,
		StateStore: store,
		Back:       dispatcher,
	}); err != nil {
		return err
	}
	defer lifecycle.Destroy()

	listener, err := internal.ListenBackKey(config.BackKey, dispatcher.Post)
	if err != nil {
		internal.GetInternalLogger().Warn("Hardware back key unavailable", "error", err)
	}
	defer listener.Close()

	controller := &navHostController{
		host:        h,
		dispatcher:  dispatcher,
		window:      window,
		canvas:      sdlCanvas{window: window},
		velocity:    pager.NewVelocityTracker(constants.VelocityWindow),
		onEvent:     settings.OnEvent,
		updateTitle: settings.UpdateWindowTitle,
	}
	return controller.run()
}

func (c *navHostController) run() error {
	renderer := c.window.Renderer

	for {
		c.handleEvents()
		if c.quit {
			return nil
		}

		if c.dispatcher.Drain() > 0 {
			return ErrCancelled
		}

		c.host.Frame(time.Now())

		renderer.SetDrawColor(0, 0, 0, 255)
		renderer.Clear()
		c.host.Render(c.canvas)
		c.window.Present()

		if c.updateTitle {
			if title := c.host.Title(); title != c.title {
				c.title = title
				c.window.Window.SetTitle(title)
			}
		}
	}
}

func (c *navHostController) handleEvents() {
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		if c.onEvent != nil {
			c.onEvent(event)
		}

		switch e := event.(type) {
		case *sdl.QuitEvent:
			c.quit = true
			return

		case *sdl.KeyboardEvent:
			if e.Type != sdl.KEYDOWN || e.Repeat != 0 {
				continue
			}
			switch e.Keysym.Sym {
			case sdl.K_ESCAPE, sdl.K_BACKSPACE, sdl.K_AC_BACK:
				c.dispatcher.Post()
			}

		case *sdl.ControllerButtonEvent:
			if e.Type == sdl.CONTROLLERBUTTONDOWN && sdl.GameControllerButton(e.Button) == sdl.CONTROLLER_BUTTON_B {
				c.dispatcher.Post()
			}

		case *sdl.MouseButtonEvent:
			if e.Button != sdl.BUTTON_LEFT {
				continue
			}
			if e.Type == sdl.MOUSEBUTTONDOWN {
				c.beginDrag(dragSourceMouse, float64(e.X))
			} else {
				c.endDrag(dragSourceMouse, float64(e.X))
			}

		case *sdl.MouseMotionEvent:
			c.moveDrag(dragSourceMouse, float64(e.X))

		case *sdl.TouchFingerEvent:
			x := float64(e.X) * float64(c.window.GetWidth())
			switch e.Type {
			case sdl.FINGERDOWN:
				c.beginDrag(dragSourceFinger, x)
			case sdl.FINGERMOTION:
				c.moveDrag(dragSourceFinger, x)
			case sdl.FINGERUP:
				c.endDrag(dragSourceFinger, x)
			}
		}
	}
}

// beginDrag starts a drag unless one is already running from another source.
// SDL synthesizes mouse events for touches, so the first source wins.
func (c *navHostController) beginDrag(source dragSource, x float64) {
	if c.dragSource != dragSourceNone || !c.host.BeginDrag() {
		return
	}
	c.dragSource = source
	c.lastX = x
	c.velocity.Reset()
	c.velocity.Add(x, time.Now())
}

func (c *navHostController) moveDrag(source dragSource, x float64) {
	if c.dragSource != source {
		return
	}
	c.host.DragBy(x - c.lastX)
	c.lastX = x
	c.velocity.Add(x, time.Now())
}

func (c *navHostController) endDrag(source dragSource, x float64) {
	if c.dragSource != source {
		return
	}
	c.moveDrag(source, x)
	c.dragSource = dragSourceNone
	c.host.EndDrag(c.velocity.Velocity())
}
