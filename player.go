package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/jakecoffman/cp"

	"github.com/milk9111/sentry/arena"
)

const (
	playerRadius = 10.0
	playerSpeed  = 140.0
	maxHealth    = 100
)

// Player is the hunted target: WASD/arrows to move, space to strike a
// nearby sentry down.
type Player struct {
	body     *cp.Body
	health   int
	hitFlash float64
	striking bool
}

func NewPlayer(field *arena.Arena, pos cp.Vector) *Player {
	p := &Player{health: maxHealth}
	p.body = field.NewDynamicMover(pos, playerRadius, arena.CategoryTarget, p)
	return p
}

func (p *Player) Update(dt float64) {
	var dir cp.Vector
	if ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		dir.Y--
	}
	if ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		dir.Y++
	}
	if ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		dir.X--
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		dir.X++
	}
	if dir.X != 0 || dir.Y != 0 {
		dir = dir.Normalize()
	}
	p.body.SetVelocityVector(dir.Mult(playerSpeed))

	p.striking = inpututil.IsKeyJustPressed(ebiten.KeySpace)

	if p.hitFlash > 0 {
		p.hitFlash -= dt
	}
}

func (p *Player) Position() cp.Vector {
	return p.body.Position()
}

// PositionOK satisfies the behavior target-position hook. The demo target
// never disappears; at zero health it just stands there taking it.
func (p *Player) PositionOK() (cp.Vector, bool) {
	return p.body.Position(), true
}

// ApplyDamage implements behavior.DamageTarget.
func (p *Player) ApplyDamage(amount int) {
	p.health -= amount
	if p.health < 0 {
		p.health = 0
	}
	p.hitFlash = 0.2
}
