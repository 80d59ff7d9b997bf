package tags

import "github.com/yohamta/donburi"

var (
	Avatar   = donburi.NewTag().SetName("Avatar")
	Wall     = donburi.NewTag().SetName("Wall")
	Joystick = donburi.NewTag().SetName("Joystick")
)

// Resolv tags for physics collision
const (
	ResolvSolid  = "solid"
	ResolvAvatar = "avatar"
)
