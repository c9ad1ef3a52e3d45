package behavior

// State identifies the active behavior of a sentry. Exactly one state is
// active at a time. StateDeath is terminal: once entered, no further
// transitions are accepted.
type State int

const (
	StatePatrol State = iota
	StateIdle
	StateChase
	StateAttack
	StateDeath
)

func (s State) String() string {
	switch s {
	case StatePatrol:
		return "patrol"
	case StateIdle:
		return "idle"
	case StateChase:
		return "chase"
	case StateAttack:
		return "attack"
	case StateDeath:
		return "death"
	}
	return "unknown"
}

// Animation clip names the controller feeds to its AnimationSink.
const (
	ClipWalk   = "WalkState"
	ClipAttack = "AttackState"
	ClipIdle   = "IdleState"
	ClipDeath  = "DeathState"
)
