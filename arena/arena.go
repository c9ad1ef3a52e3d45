// Package arena owns the Chipmunk space sentries live in: static obstacle
// geometry, mover bodies, and the spatial queries perception is built on.
package arena

import (
	"github.com/jakecoffman/cp"

	"github.com/milk9111/sentry/perception"
)

// Shape categories. Perception masks are built from these.
const (
	CategoryObstacle uint = 1 << iota
	CategorySentry
	CategoryTarget
)

const borderThickness = 4.0

// Arena wraps a cp.Space with a bordered rectangular playfield.
type Arena struct {
	space  *cp.Space
	width  float64
	height float64
}

func New(width, height float64) *Arena {
	space := cp.NewSpace()
	space.Iterations = 10
	a := &Arena{space: space, width: width, height: height}
	a.addBorders()
	return a
}

// Space returns the underlying Chipmunk space.
func (a *Arena) Space() *cp.Space {
	if a == nil {
		return nil
	}
	return a.space
}

func (a *Arena) Size() (w, h float64) {
	return a.width, a.height
}

func (a *Arena) addBorders() {
	segments := []struct {
		a cp.Vector
		b cp.Vector
	}{
		{a: cp.Vector{X: 0, Y: 0}, b: cp.Vector{X: a.width, Y: 0}},
		{a: cp.Vector{X: 0, Y: a.height}, b: cp.Vector{X: a.width, Y: a.height}},
		{a: cp.Vector{X: 0, Y: 0}, b: cp.Vector{X: 0, Y: a.height}},
		{a: cp.Vector{X: a.width, Y: 0}, b: cp.Vector{X: a.width, Y: a.height}},
	}
	for _, seg := range segments {
		shape := cp.NewSegment(a.space.StaticBody, seg.a, seg.b, borderThickness)
		shape.SetElasticity(0)
		shape.SetFriction(1)
		shape.SetFilter(cp.NewShapeFilter(cp.NO_GROUP, CategoryObstacle, cp.ALL_CATEGORIES))
		a.space.AddShape(shape)
	}
}

// AddWall adds an axis-aligned rectangular obstacle. Walls occlude sight and
// block dynamic movers.
func (a *Arena) AddWall(x, y, w, h float64) {
	bb := cp.BB{L: x, B: y, R: x + w, T: y + h}
	shape := cp.NewBox2(a.space.StaticBody, bb, 0)
	shape.SetElasticity(0)
	shape.SetFriction(1)
	shape.SetFilter(cp.NewShapeFilter(cp.NO_GROUP, CategoryObstacle, cp.ALL_CATEGORIES))
	a.space.AddShape(shape)
}

// AddPillar adds a circular obstacle.
func (a *Arena) AddPillar(pos cp.Vector, radius float64) {
	shape := cp.NewCircle(a.space.StaticBody, radius, pos)
	shape.SetElasticity(0)
	shape.SetFriction(1)
	shape.SetFilter(cp.NewShapeFilter(cp.NO_GROUP, CategoryObstacle, cp.ALL_CATEGORIES))
	a.space.AddShape(shape)
}

// NewMover adds a kinematic circle body. Kinematic movers follow their set
// velocity exactly and are used for navigator-driven sentries.
func (a *Arena) NewMover(pos cp.Vector, radius float64, category uint, data any) *cp.Body {
	body := cp.NewKinematicBody()
	body.SetPosition(pos)
	a.space.AddBody(body)
	a.attachCircle(body, radius, category, data)
	return body
}

// NewDynamicMover adds a mass-1 circle body that collides with obstacles.
// Rotation is locked; top-down movers have no use for spin.
func (a *Arena) NewDynamicMover(pos cp.Vector, radius float64, category uint, data any) *cp.Body {
	body := cp.NewBody(1, cp.INFINITY)
	body.SetPosition(pos)
	a.space.AddBody(body)
	a.attachCircle(body, radius, category, data)
	return body
}

func (a *Arena) attachCircle(body *cp.Body, radius float64, category uint, data any) {
	shape := cp.NewCircle(body, radius, cp.Vector{})
	shape.SetElasticity(0)
	shape.SetFriction(0.7)
	shape.SetFilter(cp.NewShapeFilter(cp.NO_GROUP, category, cp.ALL_CATEGORIES))
	shape.UserData = data
	a.space.AddShape(shape)
}

// RemoveMover takes a body and its shapes out of the space.
func (a *Arena) RemoveMover(body *cp.Body) {
	if a == nil || body == nil {
		return
	}
	body.EachShape(func(s *cp.Shape) {
		a.space.RemoveShape(s)
	})
	a.space.RemoveBody(body)
}

func (a *Arena) Step(dt float64) {
	a.space.Step(dt)
}

// QueryWithinRadius implements perception.SpatialQuery. Contacts carry the
// owning body's position and the shape's user data.
func (a *Arena) QueryWithinRadius(center cp.Vector, radius float64, mask uint, buf []perception.Contact) []perception.Contact {
	filter := cp.NewShapeFilter(cp.NO_GROUP, cp.ALL_CATEGORIES, mask)
	a.space.PointQuery(center, radius, filter, func(shape *cp.Shape, point cp.Vector, distance float64, gradient cp.Vector) {
		buf = append(buf, perception.Contact{Position: shape.Body().Position(), Data: shape.UserData})
	})
	return buf
}

// RaycastBlocked implements perception.SpatialQuery.
func (a *Arena) RaycastBlocked(origin, dir cp.Vector, maxDist float64, mask uint) bool {
	if maxDist <= 0 {
		return false
	}
	end := origin.Add(dir.Mult(maxDist))
	filter := cp.NewShapeFilter(cp.NO_GROUP, cp.ALL_CATEGORIES, mask)
	info := a.space.SegmentQueryFirst(origin, end, 0, filter)
	return info.Shape != nil
}
