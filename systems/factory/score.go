package factory

import (
	"image"

	"github.com/automoto/pong/archetypes"
	"github.com/automoto/pong/arena"
	"github.com/automoto/pong/components"
	cfg "github.com/automoto/pong/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font"
)

// CreateScoreDisplay creates the text display for side with its top-left
// corner at the given point.
func CreateScoreDisplay(ecs *ecs.ECS, side arena.Side, at image.Point, face font.Face, sc cfg.ScoreConfig) *donburi.Entry {
	entry := archetypes.ScoreDisplay.Spawn(ecs)
	components.ScoreDisplay.SetValue(entry, components.ScoreDisplayData{
		Side:        side,
		X:           at.X,
		Y:           at.Y,
		Face:        face,
		Color:       sc.Color,
		PopScale:    sc.PopScale,
		PopDuration: sc.PopDuration,
	})
	return entry
}

// ScoreAnchors returns the top-left corners of the left and right score
// texts: a quarter and three quarters across, one ball height down.
func ScoreAnchors(screenWidth int) (left, right image.Point) {
	y := arena.BallSize(screenWidth)
	return image.Pt(screenWidth/4, y), image.Pt(3*screenWidth/4, y)
}
