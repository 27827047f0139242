package anim

import (
	"math"
	"time"

	"github.com/charmbracelet/harmonica"
)

// DefaultFPS is the frame rate animations are driven at.
const DefaultFPS = 60

// FrameInterval converts a frame rate into the duration of one frame.
func FrameInterval(fps int) time.Duration {
	if fps <= 0 {
		fps = DefaultFPS
	}
	return time.Duration(math.Round(harmonica.FPS(fps) * float64(time.Second)))
}

// Cursor eases a fractional cursor position towards an integer target with a
// damped spring, one call per frame.
type Cursor struct {
	Pos      float64
	velocity float64
	spring   harmonica.Spring
}

func NewCursor(fps int) Cursor {
	if fps <= 0 {
		fps = DefaultFPS
	}
	return Cursor{spring: harmonica.NewSpring(harmonica.FPS(fps), 12.0, 0.9)}
}

// Update moves Pos one frame closer to target.
func (c *Cursor) Update(target int) {
	c.Pos, c.velocity = c.spring.Update(c.Pos, c.velocity, float64(target))
}

// Snap jumps straight to target.
func (c *Cursor) Snap(target int) {
	c.Pos = float64(target)
	c.velocity = 0
}

// Settled reports whether the cursor is at rest on target.
func (c *Cursor) Settled(target int) bool {
	d := c.Pos - float64(target)
	return d < 0.01 && d > -0.01 && c.velocity < 0.01 && c.velocity > -0.01
}
