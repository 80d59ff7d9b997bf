package joystick

import "math"

// Compass is one of the eight indicator directions around the stick base.
type Compass int

const (
	CompassNone Compass = iota
	CompassN
	CompassNE
	CompassE
	CompassSE
	CompassS
	CompassSW
	CompassW
	CompassNW
)

var compassNames = [...]string{"none", "n", "ne", "e", "se", "s", "sw", "w", "nw"}

func (c Compass) String() string {
	if c < 0 || int(c) >= len(compassNames) {
		return "unknown"
	}
	return compassNames[c]
}

// Angle returns the compass heading in radians, counter-clockwise from east.
func (c Compass) Angle() float64 {
	if c == CompassNone {
		return 0
	}
	return compassAngles[c]
}

var compassAngles = [...]float64{
	CompassE:  0,
	CompassNE: math.Pi / 4,
	CompassN:  math.Pi / 2,
	CompassNW: 3 * math.Pi / 4,
	CompassW:  math.Pi,
	CompassSW: -3 * math.Pi / 4,
	CompassS:  -math.Pi / 2,
	CompassSE: -math.Pi / 4,
}

var compassAxes = [...]Vector{
	CompassN:  {X: 0, Y: 1},
	CompassNE: {X: 1, Y: 1},
	CompassE:  {X: 1, Y: 0},
	CompassSE: {X: 1, Y: -1},
	CompassS:  {X: 0, Y: -1},
	CompassSW: {X: -1, Y: -1},
	CompassW:  {X: -1, Y: 0},
	CompassNW: {X: -1, Y: 1},
}

// sectors counter-clockwise starting at east
var compassSectors = [8]Compass{CompassE, CompassNE, CompassN, CompassNW, CompassW, CompassSW, CompassS, CompassSE}

// AllCompass lists the eight headings, clockwise from north.
var AllCompass = []Compass{CompassN, CompassNE, CompassE, CompassSE, CompassS, CompassSW, CompassW, CompassNW}

// CompassOf returns the 45 degree sector v points into, or CompassNone for
// the zero vector. Sector boundaries sit at 22.5 + k*45 degrees; a boundary
// angle belongs to the sector counter-clockwise of it.
func CompassOf(v Vector) Compass {
	if v.IsZero() {
		return CompassNone
	}
	deg := math.Atan2(v.Y, v.X) * 180 / math.Pi
	if deg < 0 {
		deg += 360
	}
	idx := int(math.Floor((deg+22.5)/45)) % 8
	return compassSectors[idx]
}
