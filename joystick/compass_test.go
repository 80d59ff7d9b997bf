package joystick

import (
	"math"
	"testing"
)

func TestCompassOf(t *testing.T) {
	deg := func(d float64) Vector {
		r := d * math.Pi / 180
		return Vector{X: math.Cos(r), Y: math.Sin(r)}
	}

	cases := []struct {
		name string
		v    Vector
		want Compass
	}{
		{"zero", Vector{}, CompassNone},
		{"east", deg(0), CompassE},
		{"just_below_ne", deg(22), CompassE},
		{"just_past_ne", deg(23), CompassNE},
		{"north", deg(90), CompassN},
		{"north_west", deg(135), CompassNW},
		{"just_past_west", deg(158), CompassW},
		{"west", deg(180), CompassW},
		{"south_west", deg(-135), CompassSW},
		{"south", deg(-90), CompassS},
		{"south_east", deg(-45), CompassSE},
		{"east_lower_edge", deg(-22), CompassE},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := CompassOf(c.v); got != c.want {
				t.Fatalf("CompassOf(%+v) = %v, want %v", c.v, got, c.want)
			}
		})
	}
}

func TestCompassAngleRoundTrip(t *testing.T) {
	for _, c := range AllCompass {
		a := c.Angle()
		v := Vector{X: math.Cos(a), Y: math.Sin(a)}
		if got := CompassOf(v); got != c {
			t.Errorf("CompassOf(angle of %v) = %v", c, got)
		}
	}
}
