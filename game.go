package main

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/jakecoffman/cp"

	"github.com/milk9111/sentry/arena"
	"github.com/milk9111/sentry/prefabs"
)

const (
	baseWidth  = 960
	baseHeight = 640
)

type wallRect struct{ x, y, w, h float64 }

type pillarSpot struct {
	pos cp.Vector
	r   float64
}

type Game struct {
	frames int

	field    *arena.Arena
	walls    []wallRect
	pillars  []pillarSpot
	player   *Player
	sentries []*Sentry

	prefab  string
	watcher *prefabs.Watcher
	debug   bool
}

func NewGame(prefab string, debug, watch bool) (*Game, error) {
	field := arena.New(baseWidth, baseHeight)
	g := &Game{
		field:  field,
		prefab: prefab,
		debug:  debug,
	}
	g.walls, g.pillars = layoutObstacles(field)
	g.player = NewPlayer(field, cp.Vector{X: baseWidth / 2, Y: baseHeight - 80})

	if err := g.spawnSentries(); err != nil {
		return nil, err
	}

	if watch {
		w, err := prefabs.NewWatcher("prefabs", "prefabs/scripts")
		if err != nil {
			log.Printf("prefab watcher disabled: %v", err)
		} else {
			g.watcher = w
		}
	}
	return g, nil
}

func (g *Game) Close() {
	if g.watcher != nil {
		_ = g.watcher.Close()
	}
}

func layoutObstacles(field *arena.Arena) ([]wallRect, []pillarSpot) {
	walls := []wallRect{
		{380, 200, 200, 24},
		{160, 300, 24, 160},
		{760, 260, 24, 200},
	}
	pillars := []pillarSpot{
		{cp.Vector{X: 300, Y: 160}, 18},
		{cp.Vector{X: 660, Y: 470}, 18},
	}
	for _, w := range walls {
		field.AddWall(w.x, w.y, w.w, w.h)
	}
	for _, p := range pillars {
		field.AddPillar(p.pos, p.r)
	}
	return walls, pillars
}

func (g *Game) spawnSentries() error {
	spec, err := prefabs.LoadSentrySpec(g.prefab)
	if err != nil {
		return err
	}
	s, err := NewSentry(g.field, spec, g.player)
	if err != nil {
		return err
	}
	g.sentries = []*Sentry{s}
	return nil
}

func (g *Game) Update() error {
	g.frames++
	dt := 1.0 / float64(ebiten.TPS())

	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		g.debug = !g.debug
	}

	g.drainWatcher()

	g.player.Update(dt)
	for _, s := range g.sentries {
		s.Update(dt)
	}
	if g.player.striking {
		g.resolveStrike()
	}
	g.field.Step(dt)
	return nil
}

// drainWatcher reloads every sentry when a watched file changes. Cheap and
// blunt, but prefab edits are rare and sentries are few.
func (g *Game) drainWatcher() {
	if g.watcher == nil {
		return
	}
	reload := false
	for {
		select {
		case name := <-g.watcher.Events:
			log.Printf("prefab changed: %s", name)
			reload = true
		case err := <-g.watcher.Errors:
			if err != nil {
				log.Printf("prefab watcher: %v", err)
			}
		default:
			if reload {
				g.reloadSentries()
			}
			return
		}
	}
}

func (g *Game) reloadSentries() {
	for _, s := range g.sentries {
		s.Teardown(g.field)
	}
	g.sentries = nil
	if err := g.spawnSentries(); err != nil {
		log.Printf("prefab reload failed: %v", err)
	}
}

// resolveStrike lets the player put down any sentry within arm's reach, to
// demo the death path.
func (g *Game) resolveStrike() {
	const strikeRange = 36.0
	pp := g.player.Position()
	for _, s := range g.sentries {
		if s.gone {
			continue
		}
		if s.body.Position().Distance(pp) <= strikeRange {
			s.ctrl.Kill()
		}
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return baseWidth, baseHeight
}
