package tags

import (
	"github.com/automoto/pong/arena"
	"github.com/yohamta/donburi"
)

var (
	Body  = donburi.NewTag().SetName("Body")
	Score = donburi.NewTag().SetName("Score")
)

// Resolv tags used by the arena's broad phase
const (
	ResolvBall   = arena.ResolvBall
	ResolvPaddle = arena.ResolvPaddle
	ResolvWall   = arena.ResolvWall
)
