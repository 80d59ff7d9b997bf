package joystick

import (
	"errors"
	"testing"
)

const testPresets = `
presets:
  digital8:
    mode: digital8
    max_radius: 45
    dead_zone: 15
    threshold: 0.5
  analog:
    max_radius: 45
    dead_zone: 10
`

func TestParsePresets(t *testing.T) {
	ps, err := ParsePresets([]byte(testPresets))
	if err != nil {
		t.Fatalf("ParsePresets: %v", err)
	}
	if names := ps.Names(); len(names) != 2 || names[0] != "analog" || names[1] != "digital8" {
		t.Fatalf("unexpected names %v", names)
	}

	analog, err := ps.Get("analog")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if analog.Threshold != DefaultThreshold {
		t.Fatalf("threshold should default to %v, got %v", DefaultThreshold, analog.Threshold)
	}

	s, err := analog.Settings(Point{50, 60})
	if err != nil {
		t.Fatalf("Settings: %v", err)
	}
	if s.Mode != ModeAnalog || s.Geometry.Center != (Point{50, 60}) || s.Geometry.DeadZone != 10 {
		t.Fatalf("unexpected settings %+v", s)
	}

	digital, _ := ps.Get("digital8")
	s, err = digital.Settings(Point{})
	if err != nil {
		t.Fatalf("Settings: %v", err)
	}
	if s.Mode != ModeDigital8 || s.Threshold != 0.5 {
		t.Fatalf("unexpected settings %+v", s)
	}
}

func TestParsePresetsRejectsBadValues(t *testing.T) {
	cases := []struct {
		name string
		doc  string
	}{
		{"bad_mode", "presets:\n  x:\n    mode: hexagonal\n    max_radius: 10\n"},
		{"dead_zone_too_big", "presets:\n  x:\n    max_radius: 10\n    dead_zone: 12\n"},
		{"not_yaml", "presets: [1, 2"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if _, err := ParsePresets([]byte(c.doc)); err == nil {
				t.Fatalf("expected error")
			}
		})
	}
}

func TestPresetsGetUnknown(t *testing.T) {
	_, err := Presets{}.Get("nope")
	if !errors.Is(err, ErrUnknownPreset) {
		t.Fatalf("expected ErrUnknownPreset, got %v", err)
	}
}

func TestPresetOverride(t *testing.T) {
	base := Preset{Name: "analog", MaxRadius: 45, DeadZone: 10, Threshold: 0.3}

	got, err := base.Override([]byte("dead_zone: 5\nmouse: true\n"))
	if err != nil {
		t.Fatalf("Override: %v", err)
	}
	if got.DeadZone != 5 || !got.Mouse || got.MaxRadius != 45 || got.Name != "analog" {
		t.Fatalf("unexpected override result %+v", got)
	}

	if _, err := base.Override([]byte("dead_zone: 50\n")); err == nil {
		t.Fatalf("expected invalid override to fail")
	}
}

func TestPresetOverrideZeroThresholdIsDefault(t *testing.T) {
	base := Preset{Name: "digital8", Mode: "digital8", MaxRadius: 45, DeadZone: 15, Threshold: 0.5}

	got, err := base.Override([]byte("threshold: 0\n"))
	if err != nil {
		t.Fatalf("Override: %v", err)
	}
	if got.Threshold != DefaultThreshold {
		t.Fatalf("threshold = %v, want %v", got.Threshold, DefaultThreshold)
	}
}
