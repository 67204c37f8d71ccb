package animation

import "time"

// Animator interpolates a continuous page position toward a target page.
// It holds no timer of its own: the event loop calls Tick every frame with
// the frame time, so an animation never outlives the loop that drives it.
type Animator struct {
	Duration time.Duration
	Easing   Easing

	from     float64
	target   int
	start    time.Time
	duration time.Duration
	easing   Easing
	running  bool
}

// NewAnimator creates an Animator with the given default duration and easing.
func NewAnimator(duration time.Duration, easing Easing) *Animator {
	return &Animator{Duration: duration, Easing: easing}
}

// Animate starts an animation from position from to page target using the
// default duration and easing. A running animation is replaced.
func (a *Animator) Animate(now time.Time, from float64, target int) {
	a.AnimateWith(now, from, target, a.Duration, a.Easing)
}

// AnimateWith is like Animate with an explicit duration and easing.
func (a *Animator) AnimateWith(now time.Time, from float64, target int, duration time.Duration, easing Easing) {
	if easing == nil {
		easing = Linear
	}
	a.from = from
	a.target = target
	a.start = now
	a.duration = duration
	a.easing = easing
	a.running = true
}

// Tick returns the position for the frame at now. On the final frame it
// returns the target exactly and done is true; the animator is then idle.
// Tick on an idle animator returns the last target and done.
func (a *Animator) Tick(now time.Time) (position float64, done bool) {
	if !a.running {
		return float64(a.target), true
	}

	elapsed := now.Sub(a.start)
	if a.duration <= 0 || elapsed >= a.duration {
		a.running = false
		return float64(a.target), true
	}
	if elapsed < 0 {
		elapsed = 0
	}

	t := a.easing(float64(elapsed) / float64(a.duration))
	return a.from + (float64(a.target)-a.from)*t, false
}

// Cancel stops the animation where it is.
func (a *Animator) Cancel() {
	a.running = false
}

// Running reports whether an animation is in progress.
func (a *Animator) Running() bool {
	return a.running
}

// Target returns the page of the current or most recent animation.
func (a *Animator) Target() int {
	return a.target
}
