package prefabs

import (
	"fmt"
	"math"

	"github.com/jakecoffman/cp"
	"gopkg.in/yaml.v3"

	"github.com/milk9111/sentry/behavior"
)

type PointSpec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// SentrySpec is the on-disk tuning for one guard.
type SentrySpec struct {
	Name             string      `yaml:"name"`
	PatrolSpeed      float64     `yaml:"patrol_speed"`
	WaypointWait     float64     `yaml:"waypoint_wait"`
	ChaseSpeed       float64     `yaml:"chase_speed"`
	LoseInterest     float64     `yaml:"lose_interest"`
	AttackRange      float64     `yaml:"attack_range"`
	AttackCooldown   float64     `yaml:"attack_cooldown"`
	AttackDamage     int         `yaml:"attack_damage"`
	ViewRadius       float64     `yaml:"view_radius"`
	ViewAngle        float64     `yaml:"view_angle"` // full cone angle, degrees
	DeathAnim        float64     `yaml:"death_anim"`
	HasIdleAnimation bool        `yaml:"has_idle_animation"`
	BarkScript       string      `yaml:"bark_script"`
	Waypoints        []PointSpec `yaml:"waypoints"`
}

func LoadSentrySpec(name string) (*SentrySpec, error) {
	data, err := Load(name)
	if err != nil {
		return nil, fmt.Errorf("prefabs: load %s: %w", name, err)
	}
	var spec SentrySpec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("prefabs: unmarshal %s: %w", name, err)
	}
	return &spec, nil
}

// Config converts the spec into the immutable runtime tuning. The view angle
// goes from a full cone in degrees to a half angle in radians.
func (s *SentrySpec) Config(targetMask, obstacleMask uint) behavior.Config {
	waypoints := make([]cp.Vector, 0, len(s.Waypoints))
	for _, p := range s.Waypoints {
		waypoints = append(waypoints, cp.Vector{X: p.X, Y: p.Y})
	}
	return behavior.Config{
		PatrolSpeed:      s.PatrolSpeed,
		WaypointWait:     s.WaypointWait,
		ChaseSpeed:       s.ChaseSpeed,
		LoseInterest:     s.LoseInterest,
		AttackRange:      s.AttackRange,
		AttackCooldown:   s.AttackCooldown,
		AttackDamage:     s.AttackDamage,
		ViewRadius:       s.ViewRadius,
		ViewHalfAngle:    s.ViewAngle / 2 * math.Pi / 180,
		DeathAnimTime:    s.DeathAnim,
		HasIdleAnimation: s.HasIdleAnimation,
		Waypoints:        waypoints,
		TargetMask:       targetMask,
		ObstacleMask:     obstacleMask,
	}
}
