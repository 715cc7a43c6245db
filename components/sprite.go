package components

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
)

// Drawable is anything the renderers can place on screen.
type Drawable interface {
	Bounds() image.Rectangle
	Draw(screen *ebiten.Image)
}

type SpriteData struct {
	Drawable
}

var Sprite = donburi.NewComponentType[SpriteData]()
