package systems

import "testing"

func TestClampAxis(t *testing.T) {
	tests := []struct {
		name   string
		target float64
		screen float64
		arena  float64
		want   float64
	}{
		{"arena smaller than screen is centered", 10, 640, 320, 160},
		{"arena equal to screen is centered", 600, 640, 640, 320},
		{"clamped at start", 5, 360, 368, 180},
		{"clamped at end", 366, 360, 368, 188},
		{"free in the middle", 500, 640, 1280, 500},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := clampAxis(tt.target, tt.screen, tt.arena); got != tt.want {
				t.Errorf("clampAxis(%v, %v, %v) = %v, want %v", tt.target, tt.screen, tt.arena, got, tt.want)
			}
		})
	}
}
