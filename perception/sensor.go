// Package perception implements the view-cone plus line-of-sight visibility
// test sentries run every frame. The geometric test is a pure function; the
// Sensor only adds the spatial lookup and a reusable contact buffer so a
// steady-state Sense call does not allocate.
package perception

import (
	"math"

	"github.com/jakecoffman/cp"
)

// Contact is one entity produced by a spatial query.
type Contact struct {
	Position cp.Vector
	Data     any
}

// SpatialQuery abstracts the spatial index perception runs against.
type SpatialQuery interface {
	// QueryWithinRadius appends every entity matching mask within radius of
	// center to buf and returns the extended slice.
	QueryWithinRadius(center cp.Vector, radius float64, mask uint, buf []Contact) []Contact

	// RaycastBlocked reports whether any shape matching mask intersects the
	// ray from origin along dir (unit length) within maxDist.
	RaycastBlocked(origin, dir cp.Vector, maxDist float64, mask uint) bool
}

// Params bundle the per-sense tuning.
type Params struct {
	Radius       float64
	HalfAngle    float64 // radians
	TargetMask   uint
	ObstacleMask uint
}

// Result is what one sense pass produces.
type Result struct {
	Visible   bool
	LastKnown cp.Vector
}

const minSightDistance = 1e-9

// Sensor runs the visibility test against a spatial index.
type Sensor struct {
	space SpatialQuery
	buf   []Contact
}

func NewSensor(space SpatialQuery) *Sensor {
	return &Sensor{space: space, buf: make([]Contact, 0, 8)}
}

// Sense tests every candidate matching TargetMask within Radius of origin.
// Each candidate is tested independently; when several are visible at once
// the last one wins the recorded position.
func (s *Sensor) Sense(origin, forward cp.Vector, p Params) Result {
	var res Result
	if s == nil || s.space == nil {
		return res
	}
	s.buf = s.space.QueryWithinRadius(origin, p.Radius, p.TargetMask, s.buf[:0])
	for _, c := range s.buf {
		if !InCone(origin, forward, c.Position, p.Radius, p.HalfAngle) {
			continue
		}
		to := c.Position.Sub(origin)
		dist := to.Length()
		if dist > minSightDistance && s.space.RaycastBlocked(origin, to.Mult(1/dist), dist, p.ObstacleMask) {
			continue
		}
		res.Visible = true
		res.LastKnown = c.Position
	}
	return res
}

// InCone reports whether point lies inside the forward-facing view cone of
// an observer at origin. The angular test is strict: a point exactly on the
// cone boundary is outside.
func InCone(origin, forward, point cp.Vector, radius, halfAngle float64) bool {
	to := point.Sub(origin)
	dist := to.Length()
	if dist > radius {
		return false
	}
	if dist <= minSightDistance {
		// standing on top of the observer
		return true
	}
	cos := forward.Normalize().Dot(to.Mult(1 / dist))
	return math.Acos(clampCos(cos)) < halfAngle
}

func clampCos(v float64) float64 {
	if v > 1 {
		return 1
	}
	if v < -1 {
		return -1
	}
	return v
}
