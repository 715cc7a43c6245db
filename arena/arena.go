// Package arena is the collision core of the game: it owns the ball, the two
// paddles and the four invisible boundary walls, and runs the per-frame
// advance, detect and resolve phases.
package arena

import (
	"fmt"
	"image/color"
)

const (
	// DefaultPadding is the thickness of the boundary walls outside the field.
	DefaultPadding = 1
	// DefaultCellSize is the broad-phase cell edge in screen units.
	DefaultCellSize = 16
)

// Config fixes all initial geometry. There is no runtime resize.
type Config struct {
	ScreenWidth  int
	ScreenHeight int
	Padding      int // Outer margin: wall thickness beyond the field edge (0 = DefaultPadding)
	CellSize     int // Broad-phase cell size (0 = DefaultCellSize)
	Color        color.RGBA
}

// Validate reports configurations that cannot produce a playable field.
func (c Config) Validate() error {
	if c.ScreenWidth < 25 || c.ScreenHeight < 75 {
		return fmt.Errorf("screen %dx%d is too small (need at least 25x75)", c.ScreenWidth, c.ScreenHeight)
	}
	if c.Padding < 0 {
		return fmt.Errorf("padding must not be negative, got %d", c.Padding)
	}
	if c.CellSize < 0 {
		return fmt.Errorf("cell size must not be negative, got %d", c.CellSize)
	}
	return nil
}

var (
	paddleIDs        = [...]ID{LeftPaddle, RightPaddle}
	topBottomWallIDs = [...]ID{TopWall, BottomWall}
	sideWallIDs      = [...]ID{LeftWall, RightWall}
	movableIDs       = [...]ID{Ball, LeftPaddle, RightPaddle}
	visibleIDs       = [...]ID{Ball, LeftPaddle, RightPaddle}
)

// Sprite is the read-only drawing view of a visible body.
type Sprite struct {
	ID    ID
	Box   Rect
	Color color.RGBA
}

// Arena owns every body and runs the frame pipeline.
type Arena struct {
	cfg         Config
	bodies      [BodyCount]*Body
	broad       *broadPhase
	paddleSpeed int
	scores      Scores
	listener    ScoreListener
	frame       uint64

	// ballFinal is set when the ball scored during the current detect phase;
	// nothing else may stage on the ball until the next frame.
	ballFinal bool
}

// New builds the arena for the given screen. Invalid configurations panic;
// call Config.Validate first for user-supplied values.
func New(cfg Config, listener ScoreListener) *Arena {
	if cfg.Padding == 0 {
		cfg.Padding = DefaultPadding
	}
	if cfg.Color == (color.RGBA{}) {
		cfg.Color = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
	}
	if err := cfg.Validate(); err != nil {
		panic("arena: " + err.Error())
	}

	w, h := cfg.ScreenWidth, cfg.ScreenHeight
	pad := cfg.Padding

	ballW := BallSize(w)
	ballH := ballW
	paddleH := int(float64(h) / 6.0)
	paddleW := ballW

	a := &Arena{
		cfg:         cfg,
		paddleSpeed: int(float64(h) / 75.0),
		listener:    listener,
	}

	still := Velocity{}
	c := cfg.Color

	// Ball is in the middle of the screen
	a.bodies[Ball] = newBody(Ball, Rect{
		X: int(float64(w)/2 - float64(ballW)/2),
		Y: int(float64(h)/2 - float64(ballW)/2),
		W: ballW,
		H: ballH,
	}, still, c)

	paddleY := int(float64(h)/2 - float64(paddleH)/2)
	a.bodies[LeftPaddle] = newBody(LeftPaddle, Rect{X: 0, Y: paddleY, W: paddleW, H: paddleH}, still, c)
	a.bodies[RightPaddle] = newBody(RightPaddle, Rect{X: w - paddleW, Y: paddleY, W: paddleW, H: paddleH}, still, c)

	// Invisible boundaries just outside the field
	a.bodies[TopWall] = newBody(TopWall, Rect{X: 0, Y: -pad, W: w, H: pad}, still, c)
	a.bodies[BottomWall] = newBody(BottomWall, Rect{X: 0, Y: h, W: w, H: pad}, still, c)
	a.bodies[LeftWall] = newBody(LeftWall, Rect{X: -pad, Y: 0, W: pad, H: h}, still, c)
	a.bodies[RightWall] = newBody(RightWall, Rect{X: w, Y: 0, W: pad, H: h}, still, c)

	a.broad = newBroadPhase(cfg, &a.bodies)

	return a
}

// BallSize is the ball edge length for a screen width.
func BallSize(screenWidth int) int {
	return int(float64(screenWidth) / 25.0)
}

// Config returns the configuration the arena was built with.
func (a *Arena) Config() Config {
	return a.cfg
}

// Body returns a read-only view of the body with the given id.
func (a *Arena) Body(id ID) BodyView {
	return BodyView{b: a.bodies[id]}
}

// PaddleSpeed is the per-frame paddle and serve speed derived from the
// screen height.
func (a *Arena) PaddleSpeed() int {
	return a.paddleSpeed
}

// Frame returns the number of completed ticks.
func (a *Arena) Frame() uint64 {
	return a.frame
}

// StartGame serves the ball from the centre toward the right and
// re-baselines both scores to zero, notifying once per side.
func (a *Arena) StartGame() {
	ball := a.bodies[Ball]
	ball.reset()
	ball.setVelocity(Velocity{X: a.paddleSpeed})
	a.broad.sync(ball)

	a.scores = Scores{Left: -1, Right: -1}
	a.IncScore(Left)
	a.IncScore(Right)
}

// Tick runs one frame: advance, detect, resolve.
func (a *Arena) Tick() {
	a.Advance()
	a.DetectCollisions()
	a.ResolveCollisions()
	a.frame++
}

// Advance moves the ball and both paddles by their velocities.
func (a *Arena) Advance() {
	for _, id := range movableIDs {
		a.bodies[id].advance()
	}
}

// DetectCollisions stages the outcome of every overlap found this frame.
// A side wall breach is final: the ball is reset, served away from the
// breached wall, and the opposing side scores.
func (a *Arena) DetectCollisions() {
	a.ballFinal = false
	for _, id := range movableIDs {
		a.broad.sync(a.bodies[id])
	}

	ball := a.bodies[Ball]

	for _, pid := range paddleIDs {
		paddle := a.bodies[pid]

		if a.overlaps(ball, paddle, ResolvPaddle) {
			a.stageBall(paddle)
		}

		for _, wid := range sideWallIDs {
			if !a.ballFinal && a.overlaps(ball, a.bodies[wid], ResolvWall) {
				a.score(wid)
			}
		}

		for _, wid := range topBottomWallIDs {
			wall := a.bodies[wid]
			if a.overlaps(ball, wall, ResolvWall) {
				a.stageBall(wall)
			}
			if a.overlaps(paddle, wall, ResolvWall) {
				paddle.stageCollision(wall)
			}
		}
	}
}

// ResolveCollisions commits every staged collision, paddles first.
func (a *Arena) ResolveCollisions() {
	for _, id := range paddleIDs {
		a.bodies[id].applyStagedCollision()
	}
	a.bodies[Ball].applyStagedCollision()

	for _, id := range movableIDs {
		a.broad.sync(a.bodies[id])
	}
}

// Sprites exposes the visible bodies for drawing. It never mutates state.
func (a *Arena) Sprites() []Sprite {
	out := make([]Sprite, 0, len(visibleIDs))
	for _, id := range visibleIDs {
		b := a.bodies[id]
		out = append(out, Sprite{ID: id, Box: b.Box(), Color: b.Color()})
	}
	return out
}

// Walls returns the boxes of the four boundary walls.
func (a *Arena) Walls() []Rect {
	out := make([]Rect, 0, len(topBottomWallIDs)+len(sideWallIDs))
	for _, id := range topBottomWallIDs {
		out = append(out, a.bodies[id].Box())
	}
	for _, id := range sideWallIDs {
		out = append(out, a.bodies[id].Box())
	}
	return out
}

// BroadPhaseObjects returns the broad-phase mirrors carrying tag, in screen
// coordinates. Used for debug drawing.
func (a *Arena) BroadPhaseObjects(tag string) []Rect {
	return a.broad.objectsByTags(tag)
}

func (a *Arena) overlaps(self, other *Body, otherTag string) bool {
	if !a.broad.near(self, other, otherTag) {
		return false
	}
	return self.Box().Overlaps(other.Box())
}

func (a *Arena) stageBall(other *Body) {
	if a.ballFinal {
		return
	}
	a.bodies[Ball].stageCollision(other)
}

// score handles the ball breaching a side wall.
func (a *Arena) score(wall ID) {
	ball := a.bodies[Ball]
	ball.reset()

	switch wall {
	case LeftWall:
		ball.setVelocity(Velocity{X: a.paddleSpeed})
		a.IncScore(Right)
	case RightWall:
		ball.setVelocity(Velocity{X: -a.paddleSpeed})
		a.IncScore(Left)
	default:
		panic(fmt.Sprintf("arena: %s is not a side wall", wall))
	}

	a.broad.sync(ball)
	a.ballFinal = true
}
