package factory

import (
	"github.com/automoto/touchstick/archetypes"
	"github.com/automoto/touchstick/assets"
	"github.com/automoto/touchstick/components"
	cfg "github.com/automoto/touchstick/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateArena loads the named arena and spawns its space, walls and avatar.
func CreateArena(ecs *ecs.ECS, name string) *donburi.Entry {
	arena := assets.GetArena(name)

	entry := archetypes.Arena.Spawn(ecs)
	components.Arena.SetValue(entry, components.ArenaData{
		Name: arena.Name,
		Data: arena.Data,
	})

	CreateSpace(ecs,
		arena.Data.MapWidth,
		arena.Data.MapHeight,
		cfg.Arena.CellSize, cfg.Arena.CellSize,
	)

	for _, r := range arena.Data.SolidRects {
		CreateWall(ecs, r.X, r.Y, r.W, r.H)
	}

	spawn := arena.Data.Spawn()
	CreateAvatar(ecs, spawn.X, spawn.Y)
	CreateCamera(ecs, spawn.X, spawn.Y)

	return entry
}
