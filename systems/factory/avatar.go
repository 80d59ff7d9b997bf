package factory

import (
	"github.com/automoto/touchstick/archetypes"
	"github.com/automoto/touchstick/components"
	cfg "github.com/automoto/touchstick/config"
	"github.com/automoto/touchstick/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateAvatar spawns the playground character centered on (x, y).
func CreateAvatar(ecs *ecs.ECS, x, y float64) *donburi.Entry {
	avatar := archetypes.Avatar.Spawn(ecs)

	size := cfg.Avatar.Size
	obj := resolv.NewObject(x-size/2, y-size/2, size, size, tags.ResolvAvatar)
	obj.SetShape(resolv.NewRectangle(0, 0, size, size))
	obj.Data = avatar

	components.Object.SetValue(avatar, components.ObjectData{Object: obj})
	components.Avatar.SetValue(avatar, components.AvatarData{})

	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}

	return avatar
}
