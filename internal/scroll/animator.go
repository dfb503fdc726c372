package scroll

import (
	"math"
	"time"

	"github.com/charmbracelet/harmonica"
)

// FPS is the frame rate of smooth scrolling.
const FPS = 60

// Frame is the delay between animation steps.
var Frame = time.Second / FPS

// Animator moves an offset toward a target along a critically damped spring.
// A new Start while moving retargets the motion and keeps its velocity.
type Animator struct {
	spring harmonica.Spring
	pos    float64
	vel    float64
	target float64
	active bool
}

// NewAnimator creates an idle animator.
func NewAnimator() *Animator {
	return &Animator{spring: harmonica.NewSpring(harmonica.FPS(FPS), 8.0, 1.0)}
}

// Start begins (or retargets) a motion from the current offset to target.
// It reports whether a new tick loop needs to be scheduled.
func (a *Animator) Start(from, to int) bool {
	wasActive := a.active
	if !a.active {
		a.pos = float64(from)
		a.vel = 0
	}
	a.target = float64(to)
	a.active = true
	return !wasActive
}

// Active reports whether a motion is in flight.
func (a *Animator) Active() bool { return a.active }

// Target returns the offset the current motion is heading to.
func (a *Animator) Target() int { return int(a.target) }

// Step advances one frame and returns the rounded offset. done is true once the
// motion has settled on the target.
func (a *Animator) Step() (offset int, done bool) {
	if !a.active {
		return int(math.Round(a.pos)), true
	}
	a.pos, a.vel = a.spring.Update(a.pos, a.vel, a.target)
	if math.Abs(a.pos-a.target) < 0.5 && math.Abs(a.vel) < 0.5 {
		a.pos = a.target
		a.vel = 0
		a.active = false
		return int(a.target), true
	}
	return int(math.Round(a.pos)), false
}
