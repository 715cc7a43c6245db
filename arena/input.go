package arena

import "fmt"

// Direction is a paddle movement request.
type Direction int

const (
	Neutral Direction = iota
	Up
	Down
)

func (d Direction) String() string {
	switch d {
	case Neutral:
		return "neutral"
	case Up:
		return "up"
	case Down:
		return "down"
	}
	return fmt.Sprintf("Direction(%d)", int(d))
}

// PaddleID returns the body id of the paddle on side.
func PaddleID(side Side) ID {
	switch side {
	case Left:
		return LeftPaddle
	case Right:
		return RightPaddle
	}
	panic(fmt.Sprintf("arena: invalid side %d", int(side)))
}

// MoveBar sets the paddle velocity on side from dir. The most recent call
// wins; directions are never blended.
func (a *Arena) MoveBar(side Side, dir Direction) {
	var v Velocity
	switch dir {
	case Up:
		v.Y = -a.paddleSpeed
	case Down:
		v.Y = a.paddleSpeed
	case Neutral:
	default:
		panic(fmt.Sprintf("arena: invalid direction %d", int(dir)))
	}
	a.bodies[PaddleID(side)].setVelocity(v)
}

// SetPaddleDirection is MoveBar under the name used by input sources.
func (a *Arena) SetPaddleDirection(side Side, dir Direction) {
	a.MoveBar(side, dir)
}
