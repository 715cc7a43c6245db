package game

import "github.com/automoto/pong/arena"

// Autopilot steers one paddle so its centre follows the ball's centre.
type Autopilot struct {
	side arena.Side
	// DeadZone is the centre offset tolerated before the paddle moves.
	DeadZone int
}

// NewAutopilot returns a bot for the paddle on side.
func NewAutopilot(side arena.Side) *Autopilot {
	return &Autopilot{side: side}
}

// Side returns the paddle side this bot controls.
func (p *Autopilot) Side() arena.Side {
	return p.side
}

// Decide picks the direction that moves the paddle toward the ball.
func (p *Autopilot) Decide(a *arena.Arena) arena.Direction {
	ball := a.Body(arena.Ball).Box()
	paddle := a.Body(arena.PaddleID(p.side)).Box()

	dz := p.DeadZone
	if dz <= 0 {
		dz = a.PaddleSpeed()
	}

	target := ball.Y + ball.H/2
	centre := paddle.Y + paddle.H/2
	switch {
	case target < centre-dz:
		return arena.Up
	case target > centre+dz:
		return arena.Down
	}
	return arena.Neutral
}

// Steer applies Decide through MoveBar.
func (p *Autopilot) Steer(a *arena.Arena) {
	a.MoveBar(p.side, p.Decide(a))
}
