package main

import "github.com/milk9111/sentry/behavior"

// clipLengths for one-shot clips, seconds. Zero means the clip loops and is
// always "playing" once triggered.
var clipLengths = map[string]float64{
	behavior.ClipWalk:   0,
	behavior.ClipIdle:   0,
	behavior.ClipAttack: 0.4,
	behavior.ClipDeath:  1.2,
}

// ClipPlayer is a minimal AnimationSink: it tracks which clip was last
// triggered and how long it has been playing. The demo has no sprite sheets;
// state is rendered as colors and labels instead.
type ClipPlayer struct {
	current string
	elapsed float64
}

func NewClipPlayer() *ClipPlayer {
	return &ClipPlayer{}
}

func (c *ClipPlayer) Trigger(clip string) {
	c.current = clip
	c.elapsed = 0
}

func (c *ClipPlayer) IsPlayingState(clip string) bool {
	if c.current != clip {
		return false
	}
	length := clipLengths[clip]
	return length == 0 || c.elapsed < length
}

func (c *ClipPlayer) Update(dt float64) {
	c.elapsed += dt
}

func (c *ClipPlayer) Current() string {
	return c.current
}
