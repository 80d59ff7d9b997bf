package ui

import "testing"

func TestCycle(t *testing.T) {
	names := []string{"analog", "analog-mouse", "digital8"}

	tests := []struct {
		name    string
		current string
		delta   int
		want    string
	}{
		{"forward", "analog", 1, "analog-mouse"},
		{"wraps forward", "digital8", 1, "analog"},
		{"wraps backward", "analog", -1, "digital8"},
		{"unknown starts at first", "nope", 1, "analog-mouse"},
		{"large delta", "analog", 7, "analog-mouse"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := cycle(names, tt.current, tt.delta); got != tt.want {
				t.Errorf("cycle(%q, %d) = %q, want %q", tt.current, tt.delta, got, tt.want)
			}
		})
	}

	if got := cycle(nil, "x", 1); got != "x" {
		t.Errorf("cycle on empty list = %q, want %q", got, "x")
	}
}
