package main

import (
	"log"

	"github.com/jakecoffman/cp"

	"github.com/milk9111/sentry/arena"
	"github.com/milk9111/sentry/behavior"
	"github.com/milk9111/sentry/perception"
	"github.com/milk9111/sentry/prefabs"
	"github.com/milk9111/sentry/script"
)

const (
	sentryRadius     = 14.0
	stoppingDistance = 6.0
	barkDuration     = 2.5
)

// Sentry glues one behavior controller to its body, navigator, animation
// player and optional bark script.
type Sentry struct {
	name string
	cfg  behavior.Config
	body *cp.Body
	nav  *arena.Navigator
	anim *ClipPlayer
	ctrl *behavior.Controller
	bark *script.Bark

	barkLine string
	barkTTL  float64
	gone     bool
}

func NewSentry(field *arena.Arena, spec *prefabs.SentrySpec, target *Player) (*Sentry, error) {
	cfg := spec.Config(arena.CategoryTarget, arena.CategoryObstacle)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	s := &Sentry{name: spec.Name, cfg: cfg, anim: NewClipPlayer()}
	s.body = field.NewMover(cfg.Waypoints[0], sentryRadius, arena.CategorySentry, s)
	s.nav = arena.NewNavigator(s.body, stoppingDistance)

	if spec.BarkScript != "" {
		src, err := prefabs.LoadScript(spec.BarkScript)
		if err != nil {
			log.Printf("sentry %s: bark script: %v", spec.Name, err)
		} else if b, err := script.CompileBark(src); err != nil {
			log.Printf("sentry %s: %v", spec.Name, err)
		} else {
			s.bark = b
		}
	}

	ctrl, err := behavior.NewController(cfg, behavior.Deps{
		Nav:            s.nav,
		Anim:           s.anim,
		Sensor:         perception.NewSensor(field),
		Target:         target,
		TargetPosition: target.PositionOK,
		Position:       s.body.Position,
		Forward:        s.nav.Facing,
		Deactivate: func() {
			s.gone = true
			field.RemoveMover(s.body)
		},
		OnTransition: s.onTransition,
	})
	if err != nil {
		return nil, err
	}
	s.ctrl = ctrl
	return s, nil
}

func (s *Sentry) onTransition(from, to behavior.State) {
	if s.bark == nil {
		return
	}
	line, err := s.bark.Line(to.String())
	if err != nil {
		log.Printf("sentry %s: %v", s.name, err)
		return
	}
	if line != "" {
		s.barkLine = line
		s.barkTTL = barkDuration
	}
}

func (s *Sentry) Update(dt float64) {
	if s.gone {
		return
	}
	s.ctrl.Tick(dt)
	s.nav.Step(dt)
	s.anim.Update(dt)
	if s.barkTTL > 0 {
		s.barkTTL -= dt
	}
}

// Teardown removes the sentry from the space and cancels any pending
// deactivation so the controller can't act on a dead instance.
func (s *Sentry) Teardown(field *arena.Arena) {
	s.ctrl.Destroy()
	if !s.gone {
		field.RemoveMover(s.body)
	}
	s.gone = true
}
