package ui

import (
	"math"

	"github.com/charmbracelet/harmonica"
)

// settleEpsilon is how close position and velocity must be to rest before a spring snaps.
const settleEpsilon = 0.001

// Rect is a screen rectangle in terminal cells.
type Rect struct {
	X, Y, W, H int
}

// Contains reports whether the cell (x, y) lies inside r.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Lerp interpolates between r and to. t is not clamped, so an underdamped spring overshoots.
func (r Rect) Lerp(to Rect, t float64) Rect {
	mix := func(a, b int) int {
		return int(math.Round(float64(a) + (float64(b)-float64(a))*t))
	}
	return Rect{X: mix(r.X, to.X), Y: mix(r.Y, to.Y), W: mix(r.W, to.W), H: mix(r.H, to.H)}
}

// Clamp shrinks r to fit a width × height screen while keeping at least minW × minH.
func (r Rect) Clamp(width, height, minW, minH int) Rect {
	r.W = max(min(r.W, width), minW)
	r.H = max(min(r.H, height), minH)
	r.X = max(min(r.X, width-r.W), 0)
	r.Y = max(min(r.Y, height-r.H), 0)
	return r
}

// springValue animates a scalar toward a target. Without animation it jumps straight there.
type springValue struct {
	spring  harmonica.Spring
	animate bool
	pos     float64
	vel     float64
	target  float64
}

func newSpringValue(fps int, frequency, damping float64, animate bool, initial float64) springValue {
	return springValue{
		spring:  harmonica.NewSpring(harmonica.FPS(fps), frequency, damping),
		animate: animate,
		pos:     initial,
		target:  initial,
	}
}

// set retargets the value. Position and velocity carry over, so a change mid-flight stays continuous.
func (s *springValue) set(target float64) {
	s.target = target
	if !s.animate {
		s.pos, s.vel = target, 0
	}
}

func (s *springValue) step() {
	if !s.moving() {
		return
	}
	s.pos, s.vel = s.spring.Update(s.pos, s.vel, s.target)
	if math.Abs(s.pos-s.target) < settleEpsilon && math.Abs(s.vel) < settleEpsilon {
		s.pos, s.vel = s.target, 0
	}
}

func (s *springValue) moving() bool {
	return s.pos != s.target || s.vel != 0
}

// Transition morphs a shape between a source and a destination rectangle.
//
// It is keyed by entry id so the grid and overlay can resolve their own geometry every frame.
// Progress 0 sits on the source (the grid tile) and 1 on the destination (the detail card).
type Transition struct {
	key      string
	progress springValue
}

// NewTransition creates an idle transition. frequency and damping configure the spring.
func NewTransition(fps int, frequency, damping float64, animate bool) *Transition {
	return &Transition{progress: newSpringValue(fps, frequency, damping, animate, 0)}
}

// Key returns the id of the entry being morphed, or "" when idle.
func (t *Transition) Key() string {
	return t.key
}

// Expand morphs key toward the destination. A different key restarts from the source.
func (t *Transition) Expand(key string) {
	if key != t.key {
		t.key = key
		t.progress.pos, t.progress.vel = 0, 0
	}
	t.progress.set(1)
}

// Collapse morphs back toward the source. The transition goes idle once it arrives.
func (t *Transition) Collapse() {
	if t.key == "" {
		return
	}
	t.progress.set(0)
	t.settle()
}

// Step advances one frame.
func (t *Transition) Step() {
	t.progress.step()
	t.settle()
}

func (t *Transition) settle() {
	if !t.progress.moving() && t.progress.target == 0 {
		t.key = ""
	}
}

// Moving reports whether frames are still needed.
func (t *Transition) Moving() bool {
	return t.key != "" && t.progress.moving()
}

// Visible reports whether a morphing shape should be drawn.
func (t *Transition) Visible() bool {
	return t.key != ""
}

// Progress returns the current position between source (0) and destination (1).
func (t *Transition) Progress() float64 {
	return t.progress.pos
}

// Rect resolves the current rectangle between from and to.
func (t *Transition) Rect(from, to Rect) Rect {
	return from.Lerp(to, t.progress.pos)
}
