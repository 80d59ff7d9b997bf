package systems

import (
	"image/color"

	"github.com/automoto/touchstick/components"
	"github.com/automoto/touchstick/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// DrawDebug outlines every collision object and the joystick hit area.
// The hit area is in screen space, the objects in world space.
func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	settings := GetOrCreateSettings(ecs)
	if !settings.Debug {
		return
	}

	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		camX, camY := cameraOffset(ecs, screen.Bounds().Dx(), screen.Bounds().Dy())
		space := components.Space.Get(spaceEntry)
		for _, obj := range space.Objects() {
			c := color.RGBA{0, 255, 255, 255} // Cyan default
			if obj.HasTags(tags.ResolvSolid) {
				c = color.RGBA{100, 100, 100, 255} // Grey
			} else if obj.HasTags(tags.ResolvAvatar) {
				c = color.RGBA{0, 0, 255, 255} // Blue
			}

			x, y := float32(obj.X+camX), float32(obj.Y+camY)
			w, h := float32(obj.W), float32(obj.H)
			vector.FillRect(screen, x, y, w, 1, c, false)     // Top
			vector.FillRect(screen, x, y+h-1, w, 1, c, false) // Bottom
			vector.FillRect(screen, x, y, 1, h, c, false)     // Left
			vector.FillRect(screen, x+w-1, y, 1, h, c, false) // Right
		}
	}

	if entry, ok := components.Joystick.First(ecs.World); ok {
		stick := components.Joystick.Get(entry).Stick
		center := stick.Settings().Geometry.Center
		vector.StrokeCircle(screen,
			float32(center.X), float32(center.Y), float32(stick.HitRadius),
			1, color.RGBA{255, 0, 255, 255}, false)
	}
}
