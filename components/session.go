package components

import (
	"github.com/automoto/pong/game"
	"github.com/yohamta/donburi"
)

// SessionData is the singleton holding the running game session.
type SessionData struct {
	*game.Session
}

var Session = donburi.NewComponentType[SessionData]()

// DebugData is the singleton toggled by the debug key.
type DebugData struct {
	Enabled   bool
	ShowBroad bool
}

var Debug = donburi.NewComponentType[DebugData]()
