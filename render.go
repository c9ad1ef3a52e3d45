package main

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/jakecoffman/cp"
	"golang.org/x/image/colornames"
	"golang.org/x/image/font/basicfont"

	"github.com/milk9111/sentry/behavior"
)

var hudFace ebtext.Face = ebtext.NewGoXFace(basicfont.Face7x13)

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.NRGBA{R: 0x16, G: 0x18, B: 0x1d, A: 0xff})

	for _, w := range g.walls {
		vector.FillRect(screen, float32(w.x), float32(w.y), float32(w.w), float32(w.h), colornames.Dimgray, false)
	}
	for _, p := range g.pillars {
		vector.FillCircle(screen, float32(p.pos.X), float32(p.pos.Y), float32(p.r), colornames.Dimgray, true)
	}

	for _, s := range g.sentries {
		g.drawSentry(screen, s)
	}
	g.drawPlayer(screen)

	hud := fmt.Sprintf("health: %d    fps: %.0f    [F1] debug  [space] strike", g.player.health, ebiten.ActualFPS())
	ebitenutil.DebugPrint(screen, hud)
}

func (g *Game) drawSentry(screen *ebiten.Image, s *Sentry) {
	if s.gone {
		return
	}
	pos := s.body.Position()

	if g.debug {
		g.drawViewCone(screen, s)
		for _, wp := range s.cfg.Waypoints {
			vector.StrokeCircle(screen, float32(wp.X), float32(wp.Y), 4, 1, colornames.Slategray, true)
		}
	}

	clr := stateColor(s.ctrl.State())
	vector.FillCircle(screen, float32(pos.X), float32(pos.Y), sentryRadius, clr, true)

	// facing tick
	f := s.nav.Facing().Mult(sentryRadius + 6)
	vector.StrokeLine(screen, float32(pos.X), float32(pos.Y), float32(pos.X+f.X), float32(pos.Y+f.Y), 2, colornames.White, true)

	label := fmt.Sprintf("%s [%s]", s.name, s.ctrl.State())
	drawLabel(screen, label, pos.X-30, pos.Y-sentryRadius-22, colornames.Gainsboro)

	if s.barkTTL > 0 && s.barkLine != "" {
		drawLabel(screen, s.barkLine, pos.X-30, pos.Y-sentryRadius-36, colornames.Khaki)
	}
}

func (g *Game) drawViewCone(screen *ebiten.Image, s *Sentry) {
	pos := s.body.Position()
	facing := s.nav.Facing()
	heading := math.Atan2(facing.Y, facing.X)
	for _, a := range []float64{heading - s.cfg.ViewHalfAngle, heading + s.cfg.ViewHalfAngle} {
		edge := pos.Add(cp.Vector{X: math.Cos(a), Y: math.Sin(a)}.Mult(s.cfg.ViewRadius))
		vector.StrokeLine(screen, float32(pos.X), float32(pos.Y), float32(edge.X), float32(edge.Y), 1, colornames.Darkseagreen, true)
	}
	vector.StrokeCircle(screen, float32(pos.X), float32(pos.Y), float32(s.cfg.ViewRadius), 1, colornames.Darkslategray, true)
	if s.ctrl.TargetVisible() {
		lk := s.ctrl.LastKnownTargetPosition()
		vector.StrokeLine(screen, float32(pos.X), float32(pos.Y), float32(lk.X), float32(lk.Y), 1, colornames.Orangered, true)
	}
}

func (g *Game) drawPlayer(screen *ebiten.Image) {
	pos := g.player.Position()
	clr := colornames.Steelblue
	if g.player.hitFlash > 0 {
		clr = colornames.White
	}
	vector.FillCircle(screen, float32(pos.X), float32(pos.Y), playerRadius, clr, true)
}

func drawLabel(screen *ebiten.Image, s string, x, y float64, clr color.Color) {
	op := &ebtext.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	ebtext.Draw(screen, s, hudFace, op)
}

func stateColor(s behavior.State) color.Color {
	switch s {
	case behavior.StatePatrol:
		return colornames.Mediumseagreen
	case behavior.StateIdle:
		return colornames.Cadetblue
	case behavior.StateChase:
		return colornames.Orange
	case behavior.StateAttack:
		return colornames.Crimson
	case behavior.StateDeath:
		return colornames.Gray
	}
	return colornames.White
}
