// Package host wires a navigator to a paged, swipeable surface.
//
// A Host mirrors the back-stack into a pager (one page per entry), runs the
// transition animator, feeds every pager position through the swipe bridge
// and pops the navigator when the bridge reports a swipe-out. All methods
// must be called from the event loop; nothing here starts a goroutine.
//
//	h := host.New(nav, cfg)
//	if err := h.Attach(host.Owners{
//	    Lifecycle:  lifecycle,
//	    StateStore: host.NewMemoryStateStore(),
//	    Back:       dispatcher,
//	}); err != nil {
//	    return err
//	}
//
//	for running {
//	    // forward input to h.BeginDrag / h.DragBy / h.EndDrag
//	    h.Frame(time.Now())
//	    h.Render(canvas)
//	}
//	h.Close()
package host

import (
	"fmt"
	"log/slog"
	"time"

	"go.uber.org/atomic"

	"github.com/BrandonKowalski/fragula/pkg/fragula/animation"
	"github.com/BrandonKowalski/fragula/pkg/fragula/internal"
	"github.com/BrandonKowalski/fragula/pkg/fragula/navigation"
	"github.com/BrandonKowalski/fragula/pkg/fragula/pager"
	"github.com/BrandonKowalski/fragula/pkg/fragula/swipe"
)

// Config tunes a Host. Zero fields take the defaults from DefaultConfig.
type Config struct {
	Duration       time.Duration    // programmatic transition length
	Easing         animation.Easing // programmatic transition curve
	SnapDuration   time.Duration    // settle length after a drag
	FlingVelocity  float64          // pages per second
	ElevationWidth int32            // overlay width in pixels
	Theme          internal.Theme   // defaults to the framework theme
	Translator     *internal.Translator
	StateKey       string
	Logger         *slog.Logger
}

// DefaultConfig returns the host defaults: a 500ms decelerating transition,
// a 250ms snap and a 3px elevation overlay.
func DefaultConfig() Config {
	return Config{
		Duration:       internal.DefaultDurationMS * time.Millisecond,
		Easing:         animation.Decelerate(internal.DefaultEasingFactor),
		SnapDuration:   internal.DefaultSnapDurationMS * time.Millisecond,
		FlingVelocity:  internal.DefaultFlingVelocity,
		ElevationWidth: internal.DefaultElevationWidth,
		StateKey:       DefaultStateKey,
	}
}

// ConfigFromFile converts a loaded configuration file into a host Config.
func ConfigFromFile(file internal.Config) (Config, error) {
	theme, err := file.Theme.BuildTheme()
	if err != nil {
		return Config{}, fmt.Errorf("theme: %w", err)
	}

	translator, err := internal.NewTranslator(file.Language)
	if err != nil {
		return Config{}, err
	}

	cfg := DefaultConfig()
	cfg.Duration = file.Animation.Duration()
	cfg.Easing = animation.Decelerate(file.Animation.EasingFactor)
	cfg.SnapDuration = file.Animation.SnapDuration()
	cfg.FlingVelocity = file.Animation.FlingVelocity
	cfg.ElevationWidth = file.Elevation.Width
	cfg.Theme = theme
	cfg.Translator = translator
	return cfg, nil
}

func (c Config) withDefaults() Config {
	d := DefaultConfig()
	if c.Duration <= 0 {
		c.Duration = d.Duration
	}
	if c.Easing == nil {
		c.Easing = d.Easing
	}
	if c.SnapDuration <= 0 {
		c.SnapDuration = d.SnapDuration
	}
	if c.FlingVelocity <= 0 {
		c.FlingVelocity = d.FlingVelocity
	}
	if c.ElevationWidth <= 0 {
		c.ElevationWidth = d.ElevationWidth
	}
	if c.StateKey == "" {
		c.StateKey = d.StateKey
	}
	if c.Theme.Attributes == nil {
		c.Theme = internal.GetTheme()
	}
	if c.Logger == nil {
		c.Logger = internal.GetInternalLogger()
	}
	return c
}

// Host presents a navigator's back-stack as swipeable pages.
type Host struct {
	nav      *navigation.Navigator
	pager    *pager.Pager
	bridge   *swipe.Bridge
	animator *animation.Animator

	snapshot navigation.Snapshot
	contents map[string]any
	warned   map[string]bool

	theme          internal.Theme
	translator     *internal.Translator
	elevationWidth int32
	snapDuration   time.Duration
	stateKey       string
	logger         *slog.Logger

	width, height int32
	now           time.Time

	stateStore StateStoreOwner
	cleanup    []func()
	attached   bool
	closed     *atomic.Bool
}

// New creates a Host for nav. The host rests on the navigator's top entry
// without animating to it.
func New(nav *navigation.Navigator, cfg Config) *Host {
	cfg = cfg.withDefaults()

	snapshot := nav.BackStack()
	p := pager.New(snapshot.Len(), cfg.FlingVelocity)

	h := &Host{
		nav:            nav,
		pager:          p,
		animator:       animation.NewAnimator(cfg.Duration, cfg.Easing),
		contents:       make(map[string]any),
		warned:         make(map[string]bool),
		theme:          cfg.Theme,
		translator:     cfg.Translator,
		elevationWidth: cfg.ElevationWidth,
		snapDuration:   cfg.SnapDuration,
		stateKey:       cfg.StateKey,
		logger:         cfg.Logger,
		closed:         atomic.NewBool(false),
	}
	h.jumpTo(snapshot)

	return h
}

// Attach binds the host to its owners: it restores any saved back-stack,
// starts intercepting back presses and tears itself down when the
// lifecycle is destroyed. A missing lifecycle or state store is a
// configuration error.
func (h *Host) Attach(owners Owners) error {
	if h.closed.Load() {
		return ErrClosed
	}
	if h.attached {
		return &ConfigError{Op: "attach", Err: ErrAlreadyAttached}
	}
	if owners.Lifecycle == nil {
		return &ConfigError{Op: "attach", Err: fmt.Errorf("%w: lifecycle owner", ErrMissingCollaborator)}
	}
	if owners.StateStore == nil {
		return &ConfigError{Op: "attach", Err: fmt.Errorf("%w: state store owner", ErrMissingCollaborator)}
	}
	h.attached = true
	h.stateStore = owners.StateStore

	h.restore()

	h.cleanup = append(h.cleanup,
		h.nav.Subscribe(h.onBackStack),
		h.pager.Subscribe(h.onFrame),
	)
	if owners.Back != nil {
		h.cleanup = append(h.cleanup, owners.Back.Register(h.handleBack))
	}
	h.cleanup = append(h.cleanup, owners.Lifecycle.OnDestroy(func() {
		if err := h.Close(); err != nil {
			h.logger.Error("Failed to close navigation host", "error", err)
		}
	}))

	h.logger.Debug("Navigation host attached", "depth", h.snapshot.Len())
	return nil
}

func (h *Host) restore() {
	data, ok := h.stateStore.LoadState(h.stateKey)
	if !ok || len(data) == 0 {
		return
	}

	saved, err := decodeBackStack(data)
	if err == nil {
		err = h.nav.Restore(saved)
	}
	if err != nil {
		h.logger.Warn("Discarding saved back-stack", "error", err)
		return
	}
	h.jumpTo(h.nav.BackStack())
}

// jumpTo shows the top of snapshot immediately.
func (h *Host) jumpTo(snapshot navigation.Snapshot) {
	h.snapshot = snapshot
	h.pager.SetPageCount(snapshot.Len())
	top := max(snapshot.Len()-1, 0)
	h.pager.ScrollTo(float64(top))
	h.bridge = swipe.NewBridge(top)
}

// Navigator returns the navigator the host presents.
func (h *Host) Navigator() *navigation.Navigator {
	return h.nav
}

// Pager returns the paged surface. Read it; drive it through the host.
func (h *Host) Pager() *pager.Pager {
	return h.pager
}

// Bridge returns the swipe bridge.
func (h *Host) Bridge() *swipe.Bridge {
	return h.bridge
}

// Animating reports whether a transition animation is running.
func (h *Host) Animating() bool {
	return h.animator.Running()
}

// SetSize sets the viewport size used to convert drag pixels to pages.
func (h *Host) SetSize(width, height int32) {
	h.width, h.height = width, height
}

func (h *Host) onBackStack(s navigation.Snapshot) {
	if h.closed.Load() {
		return
	}

	prev := h.snapshot
	h.snapshot = s
	h.pager.SetPageCount(s.Len())
	h.pruneContents()

	if s.Len() < prev.Len() {
		if h.animator.Running() && h.animator.Target() >= s.Len() {
			h.stopAnimation()
		}
		h.bridge.Resync(h.pager.CurrentPage())
	}

	top := s.Top()
	if top == nil {
		return
	}
	prevTop := prev.Top()
	if prevTop != nil && prevTop.ID() == top.ID() {
		return
	}

	target := s.Len() - 1
	if h.pager.Position() == float64(target) {
		return
	}

	h.pager.CancelDrag()
	h.animator.Animate(h.clock(), h.pager.Position(), target)
	h.pager.SetAnimating(true)
	h.logger.Debug("Animating to top entry", "route", top.Route(), "page", target)
}

func (h *Host) pruneContents() {
	live := make(map[string]bool, h.snapshot.Len())
	for _, e := range h.snapshot.All() {
		live[e.ID()] = true
	}
	for id := range h.contents {
		if !live[id] {
			delete(h.contents, id)
			delete(h.warned, id)
		}
	}
}

func (h *Host) onFrame(f swipe.Frame) {
	if h.closed.Load() {
		return
	}

	d := h.bridge.Observe(f)
	switch d.Direction {
	case swipe.DirectionForward:
		h.logger.Debug("Settled forward", "page", f.Page)
	case swipe.DirectionBack:
		h.logger.Debug("Swiped out", "page", f.Page, "pops", d.Pops)
		for range d.Pops {
			if !h.nav.Pop() {
				break
			}
		}
	}
}

func (h *Host) handleBack() bool {
	if h.closed.Load() {
		return false
	}
	return h.nav.Pop()
}

// Frame advances the host to now: it steps any running animation and lets
// the resulting position flow through the swipe bridge.
func (h *Host) Frame(now time.Time) {
	if h.closed.Load() {
		return
	}
	h.now = now

	if !h.animator.Running() {
		return
	}

	position, done := h.animator.Tick(now)
	if done {
		h.pager.SetAnimating(false)
	}
	h.pager.ScrollTo(position)
}

// clock returns the time of the last frame, or the wall clock before the first one.
func (h *Host) clock() time.Time {
	if h.now.IsZero() {
		return time.Now()
	}
	return h.now
}

func (h *Host) stopAnimation() {
	h.animator.Cancel()
	h.pager.SetAnimating(false)
}

// BeginDrag starts a user drag. It returns false if the surface is animating
// or not at a point where user scrolling is enabled.
func (h *Host) BeginDrag() bool {
	if h.closed.Load() {
		return false
	}
	return h.pager.BeginDrag()
}

// DragBy moves an active drag by dx pixels; positive dx is a finger moving right.
func (h *Host) DragBy(dx float64) {
	if h.closed.Load() || h.width <= 0 {
		return
	}
	h.pager.DragBy(dx, float64(h.width))
}

// EndDrag releases the drag with the finger velocity in pixels per second
// (positive to the right) and animates to the chosen page.
func (h *Host) EndDrag(velocity float64) {
	if h.closed.Load() || !h.pager.Dragging() {
		return
	}

	pagesPerSecond := 0.0
	if h.width > 0 {
		pagesPerSecond = velocity / float64(h.width)
	}
	target := h.pager.EndDrag(pagesPerSecond)

	if h.pager.Position() == float64(target) {
		return
	}
	h.animator.AnimateWith(h.clock(), h.pager.Position(), target, h.snapDuration, animation.Decelerate(1))
	h.pager.SetAnimating(true)
}

// Content returns the cached content of the entry at page, creating it on first use.
func (h *Host) Content(page int) any {
	entry := h.snapshot.At(page)
	if entry == nil {
		return nil
	}
	if c, ok := h.contents[entry.ID()]; ok {
		return c
	}
	c := entry.Content()
	h.contents[entry.ID()] = c
	return c
}

// Title returns the localized title of the visible entry.
func (h *Host) Title() string {
	top := h.snapshot.Top()
	if top == nil {
		return ""
	}

	id := ""
	if top.Destination() != nil {
		id = top.Destination().TitleID()
	}
	if id == "" {
		id = internal.MessageUntitled
	}
	if h.translator == nil {
		return id
	}
	return h.translator.Translate(id)
}

// Close tears the host down: it saves the back-stack, stops the animator,
// drops every subscription and the back handler, and closes the navigator.
// Later calls on the host are no-ops. Close is idempotent.
func (h *Host) Close() error {
	if h.closed.Swap(true) {
		return nil
	}

	var saveErr error
	if h.stateStore != nil && !h.nav.Closed() {
		data, err := encodeBackStack(h.nav.Save())
		if err == nil {
			err = h.stateStore.SaveState(h.stateKey, data)
		}
		if err != nil {
			saveErr = fmt.Errorf("save back-stack: %w", err)
		}
	}

	h.animator.Cancel()
	h.pager.SetAnimating(false)
	h.pager.CancelDrag()

	for i := len(h.cleanup) - 1; i >= 0; i-- {
		h.cleanup[i]()
	}
	h.cleanup = nil

	h.nav.Close()
	h.contents = make(map[string]any)

	h.logger.Debug("Navigation host closed")
	return saveErr
}

// Closed reports whether Close has run.
func (h *Host) Closed() bool {
	return h.closed.Load()
}
