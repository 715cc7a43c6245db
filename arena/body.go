package arena

import (
	"fmt"
	"image/color"
)

// ID identifies a body for its whole lifetime.
type ID int

const (
	Ball ID = iota
	LeftPaddle
	RightPaddle
	TopWall
	BottomWall
	LeftWall
	RightWall
	BodyCount // Must be last - used for array sizing
)

var idNames = [BodyCount]string{
	Ball:        "Ball",
	LeftPaddle:  "LeftPaddle",
	RightPaddle: "RightPaddle",
	TopWall:     "TopWall",
	BottomWall:  "BottomWall",
	LeftWall:    "LeftWall",
	RightWall:   "RightWall",
}

func (id ID) String() string {
	if id < 0 || id >= BodyCount {
		return fmt.Sprintf("ID(%d)", int(id))
	}
	return idNames[id]
}

// IsPaddle reports whether id is one of the two paddles.
func (id ID) IsPaddle() bool {
	return id == LeftPaddle || id == RightPaddle
}

// IsWall reports whether id is one of the four invisible boundaries.
func (id ID) IsWall() bool {
	return id == TopWall || id == BottomWall || id == LeftWall || id == RightWall
}

// Movable reports whether a body with this id may carry a staged collision.
func (id ID) Movable() bool {
	return id == Ball || id.IsPaddle()
}

// stagedCollision is the outcome of a detected collision, held until the
// resolve phase so every overlap test in a frame sees pre-collision geometry.
type stagedCollision struct {
	box Rect
	vel Velocity
}

// Body is an axis-aligned rigid box with piecewise-constant velocity.
type Body struct {
	box   Rect
	vel   Velocity
	id    ID
	color color.RGBA

	initBox Rect
	initVel Velocity

	pending *stagedCollision
}

func newBody(id ID, box Rect, vel Velocity, c color.RGBA) *Body {
	return &Body{
		box:     box,
		vel:     vel,
		id:      id,
		color:   c,
		initBox: box,
		initVel: vel,
	}
}

func (b *Body) ID() ID                    { return b.id }
func (b *Body) Box() Rect                 { return b.box }
func (b *Body) Velocity() Velocity        { return b.vel }
func (b *Body) Color() color.RGBA         { return b.color }
func (b *Body) InitialBox() Rect          { return b.initBox }
func (b *Body) InitialVelocity() Velocity { return b.initVel }

// HasPendingCollision reports whether a collision is staged for this frame.
func (b *Body) HasPendingCollision() bool {
	return b.pending != nil
}

// advance moves the body by its velocity.
func (b *Body) advance() {
	b.box.X += b.vel.X
	b.box.Y += b.vel.Y
}

// BodyView is the read-only face of a body handed to callers outside the
// arena. It follows the body live; only the arena mutates it.
type BodyView struct {
	b *Body
}

func (v BodyView) ID() ID                    { return v.b.id }
func (v BodyView) Box() Rect                 { return v.b.box }
func (v BodyView) Velocity() Velocity        { return v.b.vel }
func (v BodyView) Color() color.RGBA         { return v.b.color }
func (v BodyView) InitialBox() Rect          { return v.b.initBox }
func (v BodyView) InitialVelocity() Velocity { return v.b.initVel }

// State returns the body's current box and velocity.
func (v BodyView) State() BodyState {
	return BodyState{Box: v.b.box, Velocity: v.b.vel}
}

// reset restores the constructor-time box and velocity and drops any staged
// collision.
func (b *Body) reset() {
	b.box = b.initBox
	b.vel = b.initVel
	b.pending = nil
}

// setVelocity overwrites the current velocity.
func (b *Body) setVelocity(v Velocity) {
	b.vel = v
}

// stageCollision computes the post-collision state of b against other and
// stores it without touching the current state. A later call in the same
// frame replaces the earlier result.
//
// Only the ball and the paddles stage collisions; any other pairing is a
// topology bug and panics.
func (b *Body) stageCollision(other *Body) {
	if !b.id.Movable() {
		panic(fmt.Sprintf("arena: %s cannot stage collisions", b.id))
	}

	next := stagedCollision{box: b.box, vel: b.vel}

	switch b.id {
	case Ball:
		switch other.id {
		case LeftPaddle, RightPaddle:
			next.vel.X = -next.vel.X
			next.vel.Y = other.vel.Y
		case LeftWall, RightWall:
			// Scoring is handled by the arena.
			return
		case TopWall, BottomWall:
			next.vel.Y = -next.vel.Y
		default:
			panic(fmt.Sprintf("arena: unknown collision %s with %s", b.id, other.id))
		}
	case LeftPaddle, RightPaddle:
		switch other.id {
		case TopWall:
			next.vel.Y = 0
			next.box.Y = other.box.Bottom()
		case BottomWall:
			next.vel.Y = 0
			next.box.Y = other.box.Y - b.box.H
		default:
			panic(fmt.Sprintf("arena: unknown collision %s with %s", b.id, other.id))
		}
	}

	b.pending = &next
}

// applyStagedCollision commits the staged collision, if any.
func (b *Body) applyStagedCollision() {
	if b.pending == nil {
		return
	}
	b.box = b.pending.box
	b.vel = b.pending.vel
	b.pending = nil
}
