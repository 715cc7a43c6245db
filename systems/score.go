package systems

import (
	"github.com/automoto/pong/arena"
	"github.com/automoto/pong/components"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateScoreDisplays advances the score pop animations by one tick.
func UpdateScoreDisplays(ecs *ecs.ECS) {
	dt := float32(1) / float32(ebiten.TPS())
	components.ScoreDisplay.Each(ecs.World, func(e *donburi.Entry) {
		components.ScoreDisplay.Get(e).Update(dt)
	})
}

// NewScoreListener returns the arena listener that feeds the score
// displays living in ecs.
func NewScoreListener(ecs *ecs.ECS) arena.ScoreListener {
	return arena.ScoreListenerFunc(func(side arena.Side, value int) {
		components.ScoreDisplay.Each(ecs.World, func(e *donburi.Entry) {
			d := components.ScoreDisplay.Get(e)
			if d.Side == side {
				d.SetValue(value)
			}
		})
	})
}
