package components

import (
	"github.com/automoto/pong/game"
	"github.com/yohamta/donburi"
)

// InputData stores the current and previous frame's pressed state for all
// game keys. Key edges are computed by comparing frames.
type InputData struct {
	Current  [game.KeyCount]bool
	Previous [game.KeyCount]bool
}

func (i *InputData) JustPressed(k game.Key) bool {
	return i.Current[k] && !i.Previous[k]
}

func (i *InputData) JustReleased(k game.Key) bool {
	return !i.Current[k] && i.Previous[k]
}

var Input = donburi.NewComponentType[InputData]()
