package perception

import (
	"math"
	"testing"

	"github.com/jakecoffman/cp"
)

type stubSpace struct {
	contacts   []Contact
	blockedFor map[cp.Vector]bool // keyed by contact position; default unblocked
	raycasts   int
}

func (s *stubSpace) QueryWithinRadius(center cp.Vector, radius float64, mask uint, buf []Contact) []Contact {
	for _, c := range s.contacts {
		if c.Position.Distance(center) <= radius {
			buf = append(buf, c)
		}
	}
	return buf
}

func (s *stubSpace) RaycastBlocked(origin, dir cp.Vector, maxDist float64, mask uint) bool {
	s.raycasts++
	end := origin.Add(dir.Mult(maxDist))
	return s.blockedFor[end]
}

func TestInCone(t *testing.T) {
	origin := cp.Vector{}
	forward := cp.Vector{X: 1}
	const (
		radius    = 10.0
		halfAngle = math.Pi / 4
	)

	tests := []struct {
		name  string
		point cp.Vector
		want  bool
	}{
		{"dead ahead", cp.Vector{X: 5}, true},
		{"10 degrees off", cp.Vector{X: 5 * math.Cos(10 * math.Pi / 180), Y: 5 * math.Sin(10 * math.Pi / 180)}, true},
		{"just inside the edge", cp.Vector{X: 5 * math.Cos(44 * math.Pi / 180), Y: 5 * math.Sin(44 * math.Pi / 180)}, true},
		{"exactly on the edge", cp.Vector{X: 5 * math.Cos(halfAngle), Y: 5 * math.Sin(halfAngle)}, false},
		{"just outside the edge", cp.Vector{X: 5 * math.Cos(46 * math.Pi / 180), Y: 5 * math.Sin(46 * math.Pi / 180)}, false},
		{"behind", cp.Vector{X: -5}, false},
		{"ahead but out of range", cp.Vector{X: 11}, false},
		{"on the radius edge", cp.Vector{X: 10}, true},
		{"on top of the observer", cp.Vector{}, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := InCone(origin, forward, tc.point, radius, halfAngle); got != tc.want {
				t.Fatalf("InCone(%v) = %v, want %v", tc.point, got, tc.want)
			}
		})
	}
}

func TestInConeUnnormalizedForward(t *testing.T) {
	// forward vectors come straight from velocity and are not unit length
	if !InCone(cp.Vector{}, cp.Vector{X: 37.5}, cp.Vector{X: 5}, 10, math.Pi/4) {
		t.Fatalf("scaled forward vector broke the cone test")
	}
}

func TestSenseParams(t *testing.T) {
	params := Params{Radius: 10, HalfAngle: math.Pi / 4, TargetMask: 1, ObstacleMask: 2}
	origin := cp.Vector{}
	forward := cp.Vector{X: 1}

	t.Run("no candidates", func(t *testing.T) {
		s := NewSensor(&stubSpace{})
		res := s.Sense(origin, forward, params)
		if res.Visible {
			t.Fatalf("visible with no candidates")
		}
	})

	t.Run("occluded candidate rejected", func(t *testing.T) {
		target := cp.Vector{X: 6}
		stub := &stubSpace{
			contacts:   []Contact{{Position: target}},
			blockedFor: map[cp.Vector]bool{target: true},
		}
		s := NewSensor(stub)
		res := s.Sense(origin, forward, params)
		if res.Visible {
			t.Fatalf("occluded target reported visible")
		}
		if stub.raycasts != 1 {
			t.Fatalf("raycasts = %d, want 1", stub.raycasts)
		}
	})

	t.Run("candidate outside cone skips the raycast", func(t *testing.T) {
		stub := &stubSpace{contacts: []Contact{{Position: cp.Vector{X: -6}}}}
		s := NewSensor(stub)
		if res := s.Sense(origin, forward, params); res.Visible {
			t.Fatalf("target behind reported visible")
		}
		if stub.raycasts != 0 {
			t.Fatalf("raycast ran for a candidate outside the cone")
		}
	})

	t.Run("last visible match wins", func(t *testing.T) {
		first := cp.Vector{X: 4, Y: 1}
		second := cp.Vector{X: 6, Y: -1}
		s := NewSensor(&stubSpace{contacts: []Contact{{Position: first}, {Position: second}}})
		res := s.Sense(origin, forward, params)
		if !res.Visible {
			t.Fatalf("expected visible")
		}
		if res.LastKnown != second {
			t.Fatalf("last known = %v, want the later match %v", res.LastKnown, second)
		}
	})

	t.Run("mixed visibility still reports visible", func(t *testing.T) {
		seen := cp.Vector{X: 4}
		hidden := cp.Vector{X: 6}
		s := NewSensor(&stubSpace{
			contacts:   []Contact{{Position: seen}, {Position: hidden}},
			blockedFor: map[cp.Vector]bool{hidden: true},
		})
		res := s.Sense(origin, forward, params)
		if !res.Visible || res.LastKnown != seen {
			t.Fatalf("res = %+v, want visible at %v", res, seen)
		}
	})
}

func TestSenseReusesContactBuffer(t *testing.T) {
	stub := &stubSpace{contacts: []Contact{
		{Position: cp.Vector{X: 3}},
		{Position: cp.Vector{X: 4}},
		{Position: cp.Vector{X: 5}},
	}}
	s := NewSensor(stub)
	params := Params{Radius: 10, HalfAngle: math.Pi / 4}

	s.Sense(cp.Vector{}, cp.Vector{X: 1}, params)
	grown := cap(s.buf)
	for i := 0; i < 100; i++ {
		s.Sense(cp.Vector{}, cp.Vector{X: 1}, params)
	}
	if cap(s.buf) != grown {
		t.Fatalf("contact buffer reallocated in steady state: cap %d -> %d", grown, cap(s.buf))
	}
}
