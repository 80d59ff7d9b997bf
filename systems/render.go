package systems

import (
	"github.com/automoto/touchstick/components"
	cfg "github.com/automoto/touchstick/config"
	"github.com/automoto/touchstick/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// DrawArena clears the screen and fills every wall.
func DrawArena(ecs *ecs.ECS, screen *ebiten.Image) {
	screen.Fill(cfg.Arena.BackgroundColor)
	camX, camY := cameraOffset(ecs, screen.Bounds().Dx(), screen.Bounds().Dy())

	tags.Wall.Each(ecs.World, func(e *donburi.Entry) {
		o := components.Object.Get(e)
		vector.FillRect(screen,
			float32(o.X+camX), float32(o.Y+camY), float32(o.W), float32(o.H),
			cfg.Arena.WallColor, false)
	})
}

func DrawAvatar(ecs *ecs.ECS, screen *ebiten.Image) {
	camX, camY := cameraOffset(ecs, screen.Bounds().Dx(), screen.Bounds().Dy())

	tags.Avatar.Each(ecs.World, func(e *donburi.Entry) {
		o := components.Object.Get(e)
		vector.FillRect(screen,
			float32(o.X+camX), float32(o.Y+camY), float32(o.W), float32(o.H),
			cfg.Avatar.Color, false)
	})
}
