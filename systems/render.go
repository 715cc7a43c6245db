package systems

import (
	"github.com/automoto/pong/components"
	"github.com/automoto/pong/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// DrawBodies renders the ball and both paddles.
func DrawBodies(ecs *ecs.ECS, screen *ebiten.Image) {
	tags.Body.Each(ecs.World, func(e *donburi.Entry) {
		drawVisible(screen, components.Sprite.Get(e).Drawable)
	})
}

// DrawScores renders both score displays.
func DrawScores(ecs *ecs.ECS, screen *ebiten.Image) {
	tags.Score.Each(ecs.World, func(e *donburi.Entry) {
		drawVisible(screen, components.ScoreDisplay.Get(e))
	})
}

func drawVisible(screen *ebiten.Image, d components.Drawable) {
	if d == nil || !d.Bounds().Overlaps(screen.Bounds()) {
		return
	}
	d.Draw(screen)
}
