package joystick

import (
	"errors"
	"math"
	"testing"
)

const eps = 1e-9

var exampleGeometry = Geometry{Center: Point{X: 100, Y: 100}, MaxRadius: 40, DeadZone: 8}

func TestMapDeadZone(t *testing.T) {
	cases := []struct {
		name   string
		sample Point
	}{
		{"center", Point{100, 100}},
		{"inside", Point{102, 100}},
		{"diagonal_inside", Point{104, 104}},
		{"on_boundary", Point{108, 100}},
		{"on_boundary_up", Point{100, 92}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			v, _ := Map(c.sample, exampleGeometry)
			if !v.IsZero() {
				t.Fatalf("expected zero vector, got %+v", v)
			}
		})
	}
}

func TestMapSaturatesAtMaxRadius(t *testing.T) {
	cases := []struct {
		name   string
		sample Point
	}{
		{"right_boundary", Point{140, 100}},
		{"far_left", Point{0, 100}},
		{"far_down_right", Point{400, 350}},
		{"up", Point{100, 20}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			v, knob := Map(c.sample, exampleGeometry)
			if math.Abs(v.Magnitude()-1) > eps {
				t.Fatalf("magnitude = %v, want 1", v.Magnitude())
			}
			off := c.sample.Sub(exampleGeometry.Center)
			dist := math.Hypot(off.X, off.Y)
			if math.Abs(v.X-off.X/dist) > eps || math.Abs(v.Y+off.Y/dist) > eps {
				t.Fatalf("direction mismatch: vector %+v, offset %+v", v, off)
			}
			if math.Abs(math.Hypot(knob.X, knob.Y)-exampleGeometry.MaxRadius) > eps {
				t.Fatalf("knob not clamped to max radius: %+v", knob)
			}
		})
	}
}

func TestMapExampleRight(t *testing.T) {
	v, _ := Map(Point{140, 100}, exampleGeometry)
	if math.Abs(v.X-1) > eps || math.Abs(v.Y) > eps {
		t.Fatalf("expected (1, 0), got %+v", v)
	}
}

func TestMapInvertsVertical(t *testing.T) {
	v, _ := Map(Point{100, 70}, exampleGeometry)
	if v.Y <= 0 {
		t.Fatalf("pointer above center should give positive Y, got %+v", v)
	}
	v, _ = Map(Point{100, 130}, exampleGeometry)
	if v.Y >= 0 {
		t.Fatalf("pointer below center should give negative Y, got %+v", v)
	}
}

func TestMapMonotonic(t *testing.T) {
	dirs := []Point{{1, 0}, {0, 1}, {-0.6, 0.8}, {0.7071, -0.7071}}
	for _, d := range dirs {
		prev := -1.0
		for r := 0.0; r <= 80; r += 0.5 {
			sample := exampleGeometry.Center.Add(Point{X: d.X * r, Y: d.Y * r})
			v, _ := Map(sample, exampleGeometry)
			m := v.Magnitude()
			if m < prev-eps {
				t.Fatalf("magnitude decreased along %+v at r=%v: %v < %v", d, r, m, prev)
			}
			if m > 1+eps {
				t.Fatalf("magnitude %v exceeds 1", m)
			}
			prev = m
		}
	}
}

func TestMapZeroDeadZoneAtCenter(t *testing.T) {
	g := Geometry{Center: Point{10, 10}, MaxRadius: 20}
	v, knob := Map(Point{10, 10}, g)
	if !v.IsZero() || knob != (Point{}) {
		t.Fatalf("expected neutral output, got %+v %+v", v, knob)
	}
}

func TestGeometryValidate(t *testing.T) {
	cases := []struct {
		name    string
		g       Geometry
		wantErr bool
	}{
		{"ok", exampleGeometry, false},
		{"zero_radius", Geometry{MaxRadius: 0}, true},
		{"negative_dead_zone", Geometry{MaxRadius: 10, DeadZone: -1}, true},
		{"dead_zone_too_big", Geometry{MaxRadius: 10, DeadZone: 10}, true},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			err := c.g.Validate()
			if (err != nil) != c.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, c.wantErr)
			}
			if err != nil && !errors.Is(err, ErrInvalidGeometry) {
				t.Fatalf("expected ErrInvalidGeometry, got %v", err)
			}
		})
	}
}

func TestQuantize8(t *testing.T) {
	cases := []struct {
		name string
		in   Vector
		want Vector
	}{
		{"zero", Vector{}, Vector{}},
		{"east", Vector{0.5, 0.1}, Vector{1, 0}},
		{"north_east", Vector{0.5, 0.5}, Vector{1, 1}},
		{"north", Vector{0.05, 0.9}, Vector{0, 1}},
		{"south_west", Vector{-0.4, -0.5}, Vector{-1, -1}},
		{"west", Vector{-0.9, 0.2}, Vector{-1, 0}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := Quantize8(c.in); got != c.want {
				t.Fatalf("Quantize8(%+v) = %+v, want %+v", c.in, got, c.want)
			}
		})
	}
}

func TestGeometryCheckVisible(t *testing.T) {
	cases := []struct {
		name    string
		center  Point
		wantErr bool
	}{
		{"inside", Point{X: 100, Y: 100}, false},
		{"touching_edges", Point{X: 40, Y: 160}, false},
		{"left_clipped", Point{X: 39, Y: 100}, true},
		{"bottom_clipped", Point{X: 100, Y: 181}, true},
		{"offscreen", Point{X: -500, Y: -500}, true},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			g := Geometry{Center: c.center, MaxRadius: 40}
			err := g.CheckVisible(320, 200)
			if (err != nil) != c.wantErr {
				t.Fatalf("CheckVisible() error = %v, wantErr %v", err, c.wantErr)
			}
			if err != nil && !errors.Is(err, ErrElementsMissing) {
				t.Fatalf("expected ErrElementsMissing, got %v", err)
			}
		})
	}
}
