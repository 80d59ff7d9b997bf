package components

import (
	"github.com/automoto/touchstick/joystick"
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// JoystickData is the on-screen stick. The Stick owns all mapping state;
// the rest is presentation.
type JoystickData struct {
	Stick *joystick.Stick

	// Drawn knob offset. Follows the stick while dragging and eases back to
	// the center after release.
	Knob      joystick.Point
	SnapBackX *gween.Tween
	SnapBackY *gween.Tween

	Visible   bool
	TouchSeen bool // a touch has been observed since startup
}

var Joystick = donburi.NewComponentType[JoystickData]()
