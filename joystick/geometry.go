// Package joystick maps a pointer dragged around an on-screen anchor onto an
// analog vector and edge-triggered directional key presses.
//
// Nothing in this package touches the renderer or the input devices. Pointer
// samples come in through Stick or Mapper, key transitions go out through an
// InputSink.
package joystick

import (
	"errors"
	"fmt"
	"math"

	"github.com/automoto/touchstick/shared/gamemath"
)

// ErrInvalidGeometry is returned by Geometry.Validate.
var ErrInvalidGeometry = errors.New("invalid joystick geometry")

// Point is a position in screen coordinates. Y grows downward.
type Point struct {
	X, Y float64
}

// Sub returns p - o.
func (p Point) Sub(o Point) Point {
	return Point{X: p.X - o.X, Y: p.Y - o.Y}
}

// Add returns p + o.
func (p Point) Add(o Point) Point {
	return Point{X: p.X + o.X, Y: p.Y + o.Y}
}

// Geometry is the physical control area of the stick.
type Geometry struct {
	Center    Point
	MaxRadius float64 // travel limit of the knob
	DeadZone  float64 // offsets at or inside this radius are neutral
}

// Validate reports whether the geometry can produce a normalized vector.
func (g Geometry) Validate() error {
	switch {
	case g.MaxRadius <= 0:
		return fmt.Errorf("%w: max radius %v must be positive", ErrInvalidGeometry, g.MaxRadius)
	case g.DeadZone < 0:
		return fmt.Errorf("%w: dead zone %v must not be negative", ErrInvalidGeometry, g.DeadZone)
	case g.DeadZone >= g.MaxRadius:
		return fmt.Errorf("%w: dead zone %v must be smaller than max radius %v", ErrInvalidGeometry, g.DeadZone, g.MaxRadius)
	}
	return nil
}

// CheckVisible returns ErrElementsMissing unless the whole base fits on a
// width x height surface.
func (g Geometry) CheckVisible(width, height float64) error {
	c, r := g.Center, g.MaxRadius
	if c.X-r < 0 || c.Y-r < 0 || c.X+r > width || c.Y+r > height {
		return fmt.Errorf("%w: base at (%v, %v) radius %v outside %vx%v surface",
			ErrElementsMissing, c.X, c.Y, r, width, height)
	}
	return nil
}

// Vector is the normalized analog stick state. Both components lie in
// [-1, 1] and the magnitude never exceeds 1. Positive Y is "up".
type Vector struct {
	X, Y float64
}

// Magnitude returns the length of v.
func (v Vector) Magnitude() float64 {
	return math.Hypot(v.X, v.Y)
}

// IsZero reports whether v is the neutral vector.
func (v Vector) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// Map converts a pointer sample into the analog vector for g. The second
// return value is the knob offset from the center, capped at g.MaxRadius.
func Map(sample Point, g Geometry) (Vector, Point) {
	offset := sample.Sub(g.Center)
	kx, ky, distance := gamemath.ClampMagnitude(offset.X, offset.Y, g.MaxRadius)
	knob := Point{X: kx, Y: ky}

	if distance == 0 || distance <= g.DeadZone {
		return Vector{}, knob
	}

	t := gamemath.Clamp01((distance - g.DeadZone) / (g.MaxRadius - g.DeadZone))
	return Vector{
		X: offset.X / distance * t,
		Y: -offset.Y / distance * t,
	}, knob
}

// Quantize8 snaps a non-zero vector onto one of the eight compass directions,
// returning axis values in {-1, 0, 1}. Sectors are 45 degrees wide and
// centered on the compass points.
func Quantize8(v Vector) Vector {
	c := CompassOf(v)
	if c == CompassNone {
		return Vector{}
	}
	return compassAxes[c]
}
