package components

import "github.com/yohamta/donburi"

// AvatarData is the playground character driven by the movement actions.
type AvatarData struct {
	SpeedX, SpeedY float64
	// Axis inputs of the last frame, -1/0/1, for the HUD
	InputX, InputY int
}

var Avatar = donburi.NewComponentType[AvatarData]()
