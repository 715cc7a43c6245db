package factory

import (
	"github.com/automoto/pong/archetypes"
	"github.com/automoto/pong/components"
	"github.com/automoto/pong/game"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateSession stores the session singleton.
func CreateSession(ecs *ecs.ECS, s *game.Session) *donburi.Entry {
	entry := archetypes.Session.Spawn(ecs)
	components.Session.SetValue(entry, components.SessionData{Session: s})
	return entry
}

// CreateInput creates the keyboard state singleton.
func CreateInput(ecs *ecs.ECS) *donburi.Entry {
	return archetypes.Input.Spawn(ecs)
}

// CreateDebug creates the debug overlay singleton.
func CreateDebug(ecs *ecs.ECS, enabled, showBroad bool) *donburi.Entry {
	entry := archetypes.Debug.Spawn(ecs)
	components.Debug.SetValue(entry, components.DebugData{
		Enabled:   enabled,
		ShowBroad: showBroad,
	})
	return entry
}
