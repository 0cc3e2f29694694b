// Package actor implements the player-controlled sprite walking on the
// isometric grid.
package actor

import (
	"github.com/milk9111/isowalk/common"
	"github.com/milk9111/isowalk/iso"
)

// DefaultSpeed is in grid cells per second.
const DefaultSpeed = 3.0

// ObjectLayer reports whether a world-space box overlaps anything solid.
type ObjectLayer interface {
	Blocked(box common.Rect) bool
}

type Actor struct {
	proj  iso.Projection
	speed float64

	position       common.Vec2
	renderPosition common.Vec2
	facing         Direction
	frame          Frame

	collisionLayer  ObjectLayer
	collisionWidth  float64
	collisionHeight float64

	sheet *SpriteSheet
}

// New places an actor at grid position (x, y) facing down.
func New(x, y float64, proj iso.Projection, speed float64) *Actor {
	if speed <= 0 {
		speed = DefaultSpeed
	}
	a := &Actor{
		proj:     proj,
		speed:    speed,
		position: common.Vec2{X: x, Y: y},
		facing:   Down,
	}
	a.frame = a.facing.Frame()
	a.updateRenderPosition()
	return a
}

func (a *Actor) SetCollisionLayer(layer ObjectLayer) {
	a.collisionLayer = layer
}

// SetCollisionBox sets the footprint, in grid units, tested against the
// collision layer.
func (a *Actor) SetCollisionBox(width, height float64) {
	a.collisionWidth = width
	a.collisionHeight = height
}

// Update advances the actor by dt seconds using the held keys.
func (a *Actor) Update(dt float64, in Intent) {
	step := in.Vector()
	if !step.IsZero() {
		step = step.Normalize().Scale(a.speed * dt)
	}

	candidate := a.position.Add(step)
	if !step.IsZero() && !a.blocked(candidate) {
		a.position = candidate
	}

	a.facing = ResolveFacing(in, a.facing)
	a.updateRenderPosition()
	a.frame = a.facing.Frame()
}

func (a *Actor) blocked(pos common.Vec2) bool {
	if a.collisionLayer == nil || a.collisionWidth <= 0 || a.collisionHeight <= 0 {
		return false
	}
	return a.collisionLayer.Blocked(a.boxAt(pos))
}

func (a *Actor) boxAt(pos common.Vec2) common.Rect {
	return common.CenteredRect(pos, a.collisionWidth, a.collisionHeight)
}

// CollisionBox returns the current footprint in grid units.
func (a *Actor) CollisionBox() common.Rect {
	return a.boxAt(a.position)
}

func (a *Actor) updateRenderPosition() {
	a.renderPosition = a.proj.Project(a.position)
}

// SetPosition teleports the actor, e.g. to a map spawn point.
func (a *Actor) SetPosition(p common.Vec2) {
	a.position = p
	a.updateRenderPosition()
}

func (a *Actor) Position() common.Vec2 {
	return a.position
}

func (a *Actor) RenderPosition() common.Vec2 {
	return a.renderPosition
}

func (a *Actor) Facing() Direction {
	return a.facing
}

func (a *Actor) Frame() Frame {
	return a.frame
}

func (a *Actor) Speed() float64 {
	return a.speed
}
