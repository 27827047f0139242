package anim

import (
	"math"
	"time"
)

// Direction is the way a tag travels between the two lists.
type Direction int

const (
	SuggestedToSelected Direction = iota
	SelectedToSuggested
)

func (d Direction) String() string {
	if d == SuggestedToSelected {
		return "suggested->selected"
	}
	return "selected->suggested"
}

// Delta is the vertical distance a row travels, in lines.
// suggestedY is the position anchored in the suggested list and selectedY the
// one anchored in the selected list.
func Delta(dir Direction, suggestedY, selectedY int) int {
	if dir == SuggestedToSelected {
		return selectedY - suggestedY
	}
	return suggestedY - selectedY
}

// Slide is a one-shot vertical offset animation. Once the offset reaches its
// end value the continuation registered with Then runs exactly once.
type Slide struct {
	Tag       string
	Direction Direction

	tween Tween
	then  func()
	fired bool
}

// NewSlide starts a slide whose offset goes from 0 to delta over d.
func NewSlide(tag string, dir Direction, delta int, d time.Duration) *Slide {
	return &Slide{
		Tag:       tag,
		Direction: dir,
		tween:     NewTween(0, float64(delta), d),
	}
}

// Then sets the continuation run on completion.
func (s *Slide) Then(fn func()) *Slide {
	s.then = fn
	return s
}

// Step advances the slide. It returns true on the frame the slide completes.
func (s *Slide) Step(dt time.Duration) bool {
	if s.fired {
		return false
	}
	s.tween.Step(dt)
	if !s.tween.Done() {
		return false
	}
	s.fired = true
	if s.then != nil {
		s.then()
	}
	return true
}

// Offset is the current displacement rounded to whole lines.
func (s *Slide) Offset() int {
	return int(math.Round(s.tween.Value()))
}

// RawOffset is the unrounded displacement.
func (s *Slide) RawOffset() float64 {
	return s.tween.Value()
}

func (s *Slide) Target() int {
	return int(math.Round(s.tween.To))
}

func (s *Slide) Done() bool {
	return s.fired
}
