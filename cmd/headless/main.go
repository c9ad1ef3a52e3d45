// Command headless soaks the behavior core without a display: one sentry
// patrols a bordered arena while a scripted target orbits through its view
// cone. Every state transition is printed with the simulation clock.
package main

import (
	"flag"
	"fmt"
	"log"
	"math"

	"github.com/jakecoffman/cp"

	"github.com/milk9111/sentry/arena"
	"github.com/milk9111/sentry/behavior"
	"github.com/milk9111/sentry/perception"
	"github.com/milk9111/sentry/prefabs"
)

type traceAnim struct {
	current string
}

func (a *traceAnim) Trigger(clip string) { a.current = clip }

func (a *traceAnim) IsPlayingState(clip string) bool { return a.current == clip }

type countingTarget struct {
	hits  int
	total int
}

func (t *countingTarget) ApplyDamage(amount int) {
	t.hits++
	t.total += amount
}

func main() {
	prefab := flag.String("prefab", "sentry.yaml", "sentry prefab in prefabs/ (basename)")
	seconds := flag.Float64("seconds", 30, "simulated time to run")
	dt := flag.Float64("dt", 1.0/60.0, "fixed timestep")
	orbit := flag.Float64("orbit", 0.4, "target angular speed, radians per second")
	flag.Parse()

	spec, err := prefabs.LoadSentrySpec(*prefab)
	if err != nil {
		log.Fatal(err)
	}
	cfg := spec.Config(arena.CategoryTarget, arena.CategoryObstacle)

	field := arena.New(960, 640)
	field.AddWall(430, 280, 100, 80)

	targetBody := field.NewMover(cp.Vector{X: 480, Y: 580}, 10, arena.CategoryTarget, nil)
	sentryBody := field.NewMover(cfg.Waypoints[0], 12, arena.CategorySentry, nil)
	nav := arena.NewNavigator(sentryBody, 6)
	anim := &traceAnim{}
	target := &countingTarget{}

	clock := 0.0
	ctrl, err := behavior.NewController(cfg, behavior.Deps{
		Nav:    nav,
		Anim:   anim,
		Sensor: perception.NewSensor(field),
		Target: target,
		TargetPosition: func() (cp.Vector, bool) {
			return targetBody.Position(), true
		},
		Position: sentryBody.Position,
		Forward:  nav.Facing,
		OnTransition: func(from, to behavior.State) {
			fmt.Printf("%7.2fs  %s -> %s\n", clock, from, to)
		},
	})
	if err != nil {
		log.Fatal(err)
	}

	steps := int(*seconds / *dt)
	for i := 0; i < steps; i++ {
		clock = float64(i) * *dt
		angle := clock * *orbit
		targetBody.SetPosition(cp.Vector{
			X: 480 + 260*math.Cos(angle),
			Y: 320 + 260*math.Sin(angle),
		})
		ctrl.Tick(*dt)
		nav.Step(*dt)
		field.Step(*dt)
	}

	fmt.Printf("final state %s after %.1fs, %d hits for %d damage\n",
		ctrl.State(), *seconds, target.hits, target.total)
}
