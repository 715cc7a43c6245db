package systems

import (
	"github.com/automoto/pong/components"
	cfg "github.com/automoto/pong/config"
	"github.com/automoto/pong/game"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/yohamta/donburi/ecs"
)

// keyBindings maps each game key to the physical keys that press it.
var keyBindings = [game.KeyCount][]ebiten.Key{
	game.KeyW:    {ebiten.KeyW},
	game.KeyS:    {ebiten.KeyS},
	game.KeyUp:   {ebiten.KeyArrowUp},
	game.KeyDown: {ebiten.KeyArrowDown},
}

const debugKey = ebiten.KeyF3

// UpdateInput polls the keyboard and forwards key edges to the session.
// Must run BEFORE UpdateArena in the system order.
func UpdateInput(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)

	// Swap buffers: current becomes previous, then zero out current
	input.Previous = input.Current
	input.Current = [game.KeyCount]bool{}

	for k, keys := range keyBindings {
		for _, key := range keys {
			if ebiten.IsKeyPressed(key) {
				input.Current[k] = true
			}
		}
	}

	if inpututil.IsKeyJustPressed(debugKey) {
		d := getOrCreateDebug(ecs)
		d.Enabled = !d.Enabled
	}

	session, ok := getSession(ecs)
	if !ok {
		return
	}
	dispatchKeyEdges(input, session)
}

// dispatchKeyEdges sends releases before presses so a key pressed in the
// same frame another is released keeps its paddle moving.
func dispatchKeyEdges(input *components.InputData, h game.EventHandler) {
	for k := game.Key(0); k < game.KeyCount; k++ {
		if input.JustReleased(k) {
			h.OnKeyUp(k)
		}
	}
	for k := game.Key(0); k < game.KeyCount; k++ {
		if input.JustPressed(k) {
			h.OnKeyDown(k)
		}
	}
}

func getOrCreateInput(ecs *ecs.ECS) *components.InputData {
	entry, ok := components.Input.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Input))
		// Zero-value InputData is correct (all bools false)
	}
	return components.Input.Get(entry)
}

func getOrCreateDebug(ecs *ecs.ECS) *components.DebugData {
	entry, ok := components.Debug.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Debug))
		components.Debug.SetValue(entry, components.DebugData{
			Enabled:   cfg.Debug.Enabled,
			ShowBroad: cfg.Debug.ShowBroad,
		})
	}
	return components.Debug.Get(entry)
}
