package behavior

import (
	"errors"

	"github.com/jakecoffman/cp"

	"github.com/milk9111/sentry/perception"
)

// Navigator is the movement collaborator. Route planning lives behind it;
// the controller only issues destinations and tuning.
type Navigator interface {
	SetDestination(p cp.Vector)
	RemainingDistance() float64
	StoppingDistance() float64
	SetSpeed(speed float64)
	SetEnabled(enabled bool)
	Moving() bool
}

// AnimationSink receives clip triggers from the controller and answers which
// clip is currently playing.
type AnimationSink interface {
	Trigger(clip string)
	IsPlayingState(clip string) bool
}

// DamageTarget is whatever the sentry hits when an attack lands.
type DamageTarget interface {
	ApplyDamage(amount int)
}

// Deps wires a Controller to its host entity. Nav and Anim are required;
// everything else degrades gracefully when absent.
type Deps struct {
	Nav    Navigator
	Anim   AnimationSink
	Sensor *perception.Sensor
	Target DamageTarget

	// TargetPosition reports the primary target's current transform; ok is
	// false when the target is gone. Attack treats a missing target as out
	// of range.
	TargetPosition func() (pos cp.Vector, ok bool)

	// Position and Forward read the host transform. The controller never
	// owns or writes them.
	Position func() cp.Vector
	Forward  func() cp.Vector

	// Deactivate fires once, DeathAnimTime after entering StateDeath,
	// unless Destroy cancels it first.
	Deactivate func()

	// OnTransition observes every accepted state change.
	OnTransition func(from, to State)
}

// Controller is the per-frame decision engine of one sentry. All state is
// owned by the instance and mutated only from Tick, so any number of
// controllers can run side by side without coordination.
type Controller struct {
	cfg  Config
	deps Deps

	state State

	waitTime       float64
	loseInterest   float64
	attackCooldown float64

	targetVisible bool
	lastKnown     cp.Vector

	waypoint int

	deactivatePending bool
	deactivateIn      float64
}

// NewController validates the config and starts the sentry patrolling toward
// its first waypoint.
func NewController(cfg Config, deps Deps) (*Controller, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if deps.Nav == nil {
		return nil, errors.New("behavior: navigator is required")
	}
	if deps.Anim == nil {
		return nil, errors.New("behavior: animation sink is required")
	}
	c := &Controller{cfg: cfg, deps: deps, state: StatePatrol}
	c.enter(StatePatrol)
	return c, nil
}

func (c *Controller) State() State { return c.state }

// TargetVisible reports the visibility flag computed by the most recent
// tick's perception pass.
func (c *Controller) TargetVisible() bool { return c.targetVisible }

// LastKnownTargetPosition is only meaningful after the target has been
// visible at least once.
func (c *Controller) LastKnownTargetPosition() cp.Vector { return c.lastKnown }

func (c *Controller) WaypointIndex() int { return c.waypoint }

// Tick advances the machine by one frame. dt is the elapsed time in seconds;
// negative values are clamped to zero so counters never grow.
func (c *Controller) Tick(dt float64) {
	if dt < 0 {
		dt = 0
	}
	if c.state == StateDeath {
		c.tickDeactivation(dt)
		return
	}

	switch c.state {
	case StatePatrol:
		c.updatePatrol(dt)
	case StateIdle:
		c.updateIdle()
	case StateChase:
		c.updateChase(dt)
	case StateAttack:
		c.updateAttack(dt)
	}

	if c.state != StateDeath {
		c.sense()
	}
}

// ChangeState switches to next and runs its entry actions exactly once.
// Two requests are refused: anything after death, and idle on a sentry
// without an idle animation.
func (c *Controller) ChangeState(next State) {
	if c.state == StateDeath {
		return
	}
	if next == StateIdle && !c.cfg.HasIdleAnimation {
		return
	}
	prev := c.state
	c.state = next
	c.enter(next)
	if c.deps.OnTransition != nil {
		c.deps.OnTransition(prev, next)
	}
}

// Kill is shorthand for entering the terminal state.
func (c *Controller) Kill() {
	c.ChangeState(StateDeath)
}

// Destroy cancels the pending post-death deactivation. Call it when the host
// entity is torn down or reset so the one-shot can't fire against a stale or
// reused instance.
func (c *Controller) Destroy() {
	c.deactivatePending = false
}

func (c *Controller) enter(s State) {
	switch s {
	case StatePatrol:
		c.deps.Nav.SetSpeed(c.cfg.PatrolSpeed)
		c.waitTime = c.cfg.WaypointWait
		c.deps.Nav.SetDestination(c.cfg.Waypoints[c.waypoint])
		c.deps.Anim.Trigger(ClipWalk)
	case StateChase:
		c.deps.Nav.SetSpeed(c.cfg.ChaseSpeed)
		c.loseInterest = c.cfg.LoseInterest
		c.deps.Anim.Trigger(ClipWalk)
	case StateAttack:
		// zero cooldown so the first swing can land this tick
		c.attackCooldown = 0
		c.deps.Anim.Trigger(ClipAttack)
	case StateIdle:
		c.deps.Nav.SetSpeed(0)
		c.deps.Anim.Trigger(ClipIdle)
	case StateDeath:
		c.deps.Nav.SetEnabled(false)
		c.deps.Anim.Trigger(ClipDeath)
		c.deactivatePending = true
		c.deactivateIn = c.cfg.DeathAnimTime
	}
}

func (c *Controller) updatePatrol(dt float64) {
	if c.deps.Nav.RemainingDistance() > c.deps.Nav.StoppingDistance() {
		// still walking; movement is the navigator's problem
		return
	}
	if c.waitTime <= 0 {
		c.waypoint = (c.waypoint + 1) % len(c.cfg.Waypoints)
		c.deps.Nav.SetDestination(c.cfg.Waypoints[c.waypoint])
		c.waitTime = c.cfg.WaypointWait
		c.deps.Anim.Trigger(ClipWalk)
		return
	}
	c.waitTime -= dt
	if !c.deps.Nav.Moving() && c.cfg.HasIdleAnimation {
		c.ChangeState(StateIdle)
	}
}

func (c *Controller) updateIdle() {
	if !c.cfg.HasIdleAnimation {
		// unreachable through ChangeState; zeroing the wait counter
		// unsticks patrol if a sentry is ever forced here
		c.waitTime = 0
		return
	}
	if !c.deps.Anim.IsPlayingState(ClipIdle) {
		c.deps.Anim.Trigger(ClipIdle)
	}
}

func (c *Controller) updateChase(dt float64) {
	if c.targetVisible {
		c.deps.Nav.SetDestination(c.lastKnown)
		c.loseInterest = c.cfg.LoseInterest
		c.deps.Anim.Trigger(ClipWalk)
		return
	}
	if c.loseInterest <= 0 {
		c.ChangeState(StatePatrol)
		return
	}
	c.loseInterest -= dt
}

func (c *Controller) updateAttack(dt float64) {
	if c.attackCooldown > 0 {
		c.attackCooldown -= dt
		return
	}
	if d, ok := c.targetDistance(); ok && d <= c.cfg.AttackRange {
		if c.deps.Target != nil {
			c.deps.Target.ApplyDamage(c.cfg.AttackDamage)
		}
		c.attackCooldown = c.cfg.AttackCooldown
		c.deps.Anim.Trigger(ClipAttack)
		return
	}
	// target gone or out of reach
	if c.targetVisible {
		c.ChangeState(StateChase)
	} else {
		c.ChangeState(StatePatrol)
	}
}

// targetDistance prefers the host-supplied target transform and falls back
// to the last sensed position while the target is visible.
func (c *Controller) targetDistance() (float64, bool) {
	if c.deps.Position == nil {
		return 0, false
	}
	if c.deps.TargetPosition != nil {
		p, ok := c.deps.TargetPosition()
		if !ok {
			return 0, false
		}
		return c.deps.Position().Distance(p), true
	}
	if c.targetVisible {
		return c.deps.Position().Distance(c.lastKnown), true
	}
	return 0, false
}

// sense recomputes visibility from scratch and applies the escalation rule:
// a seen target forces chase unless already attacking, and a seen target in
// attack range escalates again to attack within the same tick.
func (c *Controller) sense() {
	c.targetVisible = false
	if c.deps.Sensor == nil || c.deps.Position == nil || c.deps.Forward == nil {
		return
	}
	res := c.deps.Sensor.Sense(c.deps.Position(), c.deps.Forward(), perception.Params{
		Radius:       c.cfg.ViewRadius,
		HalfAngle:    c.cfg.ViewHalfAngle,
		TargetMask:   c.cfg.TargetMask,
		ObstacleMask: c.cfg.ObstacleMask,
	})
	if !res.Visible {
		return
	}
	c.targetVisible = true
	c.lastKnown = res.LastKnown
	if c.state != StateAttack {
		c.ChangeState(StateChase)
		if d, ok := c.targetDistance(); ok && d <= c.cfg.AttackRange {
			c.ChangeState(StateAttack)
		}
	}
}

func (c *Controller) tickDeactivation(dt float64) {
	if !c.deactivatePending {
		return
	}
	c.deactivateIn -= dt
	if c.deactivateIn > 0 {
		return
	}
	c.deactivatePending = false
	if c.deps.Deactivate != nil {
		c.deps.Deactivate()
	}
}
