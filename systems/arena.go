package systems

import (
	"github.com/automoto/pong/components"
	"github.com/automoto/pong/game"
	"github.com/yohamta/donburi/ecs"
)

// UpdateArena runs one arena frame per ebiten tick.
func UpdateArena(ecs *ecs.ECS) {
	session, ok := getSession(ecs)
	if !ok {
		return
	}
	session.OnTick()
}

func getSession(ecs *ecs.ECS) (*game.Session, bool) {
	entry, ok := components.Session.First(ecs.World)
	if !ok {
		return nil, false
	}
	s := components.Session.Get(entry).Session
	return s, s != nil
}
