// Package anim implements the fixed-duration interpolations used by the tag
// picker: the slide of a row between lists and the rotation of its icon.
package anim

import (
	"math"
	"time"
)

// Tween linearly interpolates a value from From to To over Duration.
type Tween struct {
	From     float64
	To       float64
	Duration time.Duration

	elapsed time.Duration
}

// NewTween returns a tween at its start value.
func NewTween(from, to float64, d time.Duration) Tween {
	return Tween{From: from, To: to, Duration: d}
}

// Step advances the tween by dt and returns the new value.
func (t *Tween) Step(dt time.Duration) float64 {
	if dt > 0 {
		t.elapsed += dt
	}
	if t.elapsed > t.Duration {
		t.elapsed = t.Duration
	}
	return t.Value()
}

// Progress is the linear easing fraction in [0, 1].
func (t *Tween) Progress() float64 {
	if t.Duration <= 0 {
		return 1
	}
	return math.Min(1, float64(t.elapsed)/float64(t.Duration))
}

func (t *Tween) Value() float64 {
	p := t.Progress()
	if p >= 1 {
		return t.To
	}
	return t.From + (t.To-t.From)*p
}

func (t *Tween) Done() bool {
	return t.Progress() >= 1
}

func (t *Tween) Elapsed() time.Duration {
	return t.elapsed
}
