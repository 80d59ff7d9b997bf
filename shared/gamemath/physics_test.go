package gamemath

import (
	"math"
	"testing"
)

func TestApplyFriction(t *testing.T) {
	cases := []struct {
		name     string
		speed    float64
		friction float64
		want     float64
	}{
		{"positive", 3, 0.5, 2.5},
		{"negative", -3, 0.5, -2.5},
		{"snaps_to_zero", 0.2, 0.5, 0},
		{"negative_snaps_to_zero", -0.2, 0.5, 0},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := ApplyFriction(c.speed, c.friction); got != c.want {
				t.Fatalf("ApplyFriction(%v, %v) = %v, want %v", c.speed, c.friction, got, c.want)
			}
		})
	}
}

func TestClampSpeed(t *testing.T) {
	if got := ClampSpeed(5, 3); got != 3 {
		t.Fatalf("expected 3, got %v", got)
	}
	if got := ClampSpeed(-5, 3); got != -3 {
		t.Fatalf("expected -3, got %v", got)
	}
	if got := ClampSpeed(1, 3); got != 1 {
		t.Fatalf("expected 1, got %v", got)
	}
}

func TestClampMagnitude(t *testing.T) {
	cases := []struct {
		name       string
		x, y, max  float64
		wantX      float64
		wantY      float64
		wantLength float64
	}{
		{"inside", 3, 4, 10, 3, 4, 5},
		{"on_boundary", 3, 4, 5, 3, 4, 5},
		{"outside", 30, 40, 5, 3, 4, 50},
		{"zero", 0, 0, 5, 0, 0, 0},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			x, y, length := ClampMagnitude(c.x, c.y, c.max)
			if math.Abs(x-c.wantX) > 1e-9 || math.Abs(y-c.wantY) > 1e-9 {
				t.Fatalf("got (%v, %v), want (%v, %v)", x, y, c.wantX, c.wantY)
			}
			if math.Abs(length-c.wantLength) > 1e-9 {
				t.Fatalf("length = %v, want %v", length, c.wantLength)
			}
		})
	}
}

func TestClamp01(t *testing.T) {
	for _, c := range []struct{ in, want float64 }{{-1, 0}, {0.5, 0.5}, {2, 1}} {
		if got := Clamp01(c.in); got != c.want {
			t.Errorf("Clamp01(%v) = %v, want %v", c.in, got, c.want)
		}
	}
}
