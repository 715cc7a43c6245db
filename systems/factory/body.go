package factory

import (
	"github.com/automoto/pong/archetypes"
	"github.com/automoto/pong/arena"
	"github.com/automoto/pong/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateBodies creates one sprite entity per visible arena body.
func CreateBodies(ecs *ecs.ECS, a *arena.Arena) []*donburi.Entry {
	sprites := a.Sprites()
	entries := make([]*donburi.Entry, 0, len(sprites))
	for _, s := range sprites {
		entries = append(entries, CreateBody(ecs, a, s.ID))
	}
	return entries
}

func CreateBody(ecs *ecs.ECS, a *arena.Arena, id arena.ID) *donburi.Entry {
	entry := archetypes.Body.Spawn(ecs)
	components.Sprite.SetValue(entry, components.SpriteData{
		Drawable: components.BodyRect{Arena: a, ID: id},
	})
	return entry
}
