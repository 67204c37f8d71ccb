package pager

import "time"

// VelocityTracker estimates finger velocity from recent drag samples.
type VelocityTracker struct {
	window  time.Duration
	samples []sample
}

type sample struct {
	x  float64
	at time.Time
}

// NewVelocityTracker keeps samples no older than window.
func NewVelocityTracker(window time.Duration) *VelocityTracker {
	return &VelocityTracker{window: window}
}

// Add records the finger position x at time at.
func (v *VelocityTracker) Add(x float64, at time.Time) {
	v.samples = append(v.samples, sample{x: x, at: at})

	cutoff := at.Add(-v.window)
	drop := 0
	for drop < len(v.samples)-1 && v.samples[drop].at.Before(cutoff) {
		drop++
	}
	v.samples = v.samples[drop:]
}

// Velocity returns units per second between the oldest and newest sample
// still in the window, or 0 with fewer than two samples.
func (v *VelocityTracker) Velocity() float64 {
	if len(v.samples) < 2 {
		return 0
	}
	first, last := v.samples[0], v.samples[len(v.samples)-1]
	dt := last.at.Sub(first.at).Seconds()
	if dt <= 0 {
		return 0
	}
	return (last.x - first.x) / dt
}

// Reset drops all samples.
func (v *VelocityTracker) Reset() {
	v.samples = v.samples[:0]
}
