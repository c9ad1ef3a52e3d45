package arena

import (
	"math"

	"github.com/jakecoffman/cp"
)

// Navigator steers a kinematic body straight toward its destination. There
// is no route planning here: waypoints are laid out so straight segments
// stay clear of obstacles.
type Navigator struct {
	body     *cp.Body
	dest     cp.Vector
	hasDest  bool
	speed    float64
	stopping float64
	enabled  bool
	moving   bool
	facing   cp.Vector
}

func NewNavigator(body *cp.Body, stoppingDistance float64) *Navigator {
	return &Navigator{
		body:     body,
		stopping: stoppingDistance,
		enabled:  true,
		facing:   cp.Vector{X: 1, Y: 0},
	}
}

func (n *Navigator) SetDestination(p cp.Vector) {
	n.dest = p
	n.hasDest = true
}

// RemainingDistance is infinite until the first destination is set, so "have
// we arrived" checks fail closed.
func (n *Navigator) RemainingDistance() float64 {
	if !n.hasDest {
		return math.Inf(1)
	}
	return n.body.Position().Distance(n.dest)
}

func (n *Navigator) StoppingDistance() float64 { return n.stopping }

func (n *Navigator) SetSpeed(speed float64) { n.speed = speed }

func (n *Navigator) SetEnabled(enabled bool) {
	n.enabled = enabled
	if !enabled {
		n.halt()
	}
}

func (n *Navigator) Moving() bool { return n.moving }

// Facing is the last direction of travel, unit length. Sentries look where
// they walk.
func (n *Navigator) Facing() cp.Vector { return n.facing }

// Step applies one frame of movement. Call it before stepping the space.
func (n *Navigator) Step(dt float64) {
	if !n.enabled || !n.hasDest || n.speed <= 0 {
		n.halt()
		return
	}
	to := n.dest.Sub(n.body.Position())
	dist := to.Length()
	if dist <= n.stopping {
		n.halt()
		return
	}
	dir := to.Mult(1 / dist)
	n.facing = dir
	if n.speed*dt >= dist {
		// would overshoot; snap and stop
		n.body.SetPosition(n.dest)
		n.halt()
		return
	}
	n.body.SetVelocityVector(dir.Mult(n.speed))
	n.moving = true
}

func (n *Navigator) halt() {
	n.moving = false
	n.body.SetVelocityVector(cp.Vector{})
}
