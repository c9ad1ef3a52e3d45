package behavior

import (
	"errors"
	"fmt"

	"github.com/jakecoffman/cp"
)

// Config is the per-sentry tuning. It is read at construction and never
// mutated afterwards, so one Config value can safely seed many controllers.
type Config struct {
	PatrolSpeed    float64
	WaypointWait   float64 // seconds to linger at a reached waypoint
	ChaseSpeed     float64
	LoseInterest   float64 // grace period after losing sight before reverting to patrol
	AttackRange    float64
	AttackCooldown float64
	AttackDamage   int
	ViewRadius     float64
	ViewHalfAngle  float64 // radians, half of the full cone angle
	DeathAnimTime  float64 // delay between entering StateDeath and the deactivate callback

	// HasIdleAnimation gates StateIdle. Requesting idle without it is a
	// silent no-op.
	HasIdleAnimation bool

	// Waypoints is the patrol route. It must not be empty.
	Waypoints []cp.Vector

	// Shape category masks for perception queries.
	TargetMask   uint
	ObstacleMask uint
}

var errNoWaypoints = errors.New("behavior: waypoint list is empty")

func (c Config) Validate() error {
	if len(c.Waypoints) == 0 {
		return errNoWaypoints
	}
	if c.ViewRadius <= 0 {
		return fmt.Errorf("behavior: view radius must be positive, got %v", c.ViewRadius)
	}
	if c.ViewHalfAngle <= 0 {
		return fmt.Errorf("behavior: view half angle must be positive, got %v", c.ViewHalfAngle)
	}
	if c.AttackRange <= 0 {
		return fmt.Errorf("behavior: attack range must be positive, got %v", c.AttackRange)
	}
	if c.AttackCooldown < 0 {
		return fmt.Errorf("behavior: attack cooldown must not be negative, got %v", c.AttackCooldown)
	}
	return nil
}
