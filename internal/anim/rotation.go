package anim

import "time"

// DefaultRotateAngle is the resting angle of a selected tag's icon.
const DefaultRotateAngle = 45.0

// Rotation turns an icon from 0 to a fixed angle. It never turns back.
type Rotation struct {
	tween   Tween
	started bool
}

func NewRotation(angle float64, d time.Duration) *Rotation {
	return &Rotation{tween: NewTween(0, angle, d)}
}

// NewRotated returns a rotation already resting at angle.
func NewRotated(angle float64) *Rotation {
	r := NewRotation(angle, 0)
	r.started = true
	return r
}

// Start begins turning. Further calls are no-ops.
func (r *Rotation) Start() {
	r.started = true
}

func (r *Rotation) Step(dt time.Duration) {
	if r.started {
		r.tween.Step(dt)
	}
}

// Angle is the current angle in degrees.
func (r *Rotation) Angle() float64 {
	if !r.started {
		return 0
	}
	return r.tween.Value()
}

func (r *Rotation) Started() bool { return r.started }

// Settled reports whether the rotation has nothing left to animate.
func (r *Rotation) Settled() bool {
	return !r.started || r.tween.Done()
}
