package components

import (
	"image"

	"github.com/automoto/pong/arena"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// BodyRect draws one arena body as a filled rectangle. It reads the body on
// every call and never mutates it.
type BodyRect struct {
	Arena *arena.Arena
	ID    arena.ID
}

var _ Drawable = BodyRect{}

func (r BodyRect) Bounds() image.Rectangle {
	return r.Arena.Body(r.ID).Box().Image()
}

func (r BodyRect) Draw(screen *ebiten.Image) {
	b := r.Arena.Body(r.ID)
	box := b.Box()
	vector.FillRect(screen, float32(box.X), float32(box.Y), float32(box.W), float32(box.H), b.Color(), false)
}
