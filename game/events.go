// Package game connects the arena to its hosts: the windowed ebiten scene
// and the headless runner both drive a Session through EventHandler.
package game

import "fmt"

// Key is a physical key the game reacts to.
type Key int

const (
	KeyUnknown Key = iota
	KeyW
	KeyS
	KeyUp
	KeyDown
	KeyCount // Must be last - used for array sizing
)

func (k Key) String() string {
	switch k {
	case KeyUnknown:
		return "unknown"
	case KeyW:
		return "W"
	case KeyS:
		return "S"
	case KeyUp:
		return "Up"
	case KeyDown:
		return "Down"
	}
	return fmt.Sprintf("Key(%d)", int(k))
}

// EventHandler receives the host's frame, key and quit events.
type EventHandler interface {
	OnTick()
	OnKeyDown(key Key)
	OnKeyUp(key Key)
	OnQuit()
}
