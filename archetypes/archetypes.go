package archetypes

import (
	"github.com/automoto/pong/components"
	cfg "github.com/automoto/pong/config"
	"github.com/automoto/pong/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Session = newArchetype(
		components.Session,
	)
	Body = newArchetype(
		tags.Body,
		components.Sprite,
	)
	ScoreDisplay = newArchetype(
		tags.Score,
		components.ScoreDisplay,
	)
	Input = newArchetype(
		components.Input,
	)
	Debug = newArchetype(
		components.Debug,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
