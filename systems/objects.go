package systems

import (
	"github.com/automoto/touchstick/components"
	"github.com/yohamta/donburi/ecs"
)

// UpdateObjects syncs moved collision objects with the space's cells.
func UpdateObjects(ecs *ecs.ECS) {
	for e := range components.Object.Iter(ecs.World) {
		obj := components.Object.Get(e)
		obj.Update()
	}
}
