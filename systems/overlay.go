package systems

import (
	"math"

	"github.com/automoto/touchstick/joystick"
)

// compassOffset converts a heading into a screen offset of length dist.
// Screen Y grows downward, so north is negative Y.
func compassOffset(c joystick.Compass, dist float64) (float64, float64) {
	a := c.Angle()
	return math.Cos(a) * dist, -math.Sin(a) * dist
}
