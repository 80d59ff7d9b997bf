package joystick

import (
	"errors"
	"fmt"
	"sort"

	"gopkg.in/yaml.v3"
)

// ErrUnknownPreset is returned by Presets.Get.
var ErrUnknownPreset = errors.New("unknown joystick preset")

// Preset is one named joystick tuning as written in YAML.
type Preset struct {
	Name      string  `yaml:"-"`
	Mode      string  `yaml:"mode"`
	MaxRadius float64 `yaml:"max_radius"`
	DeadZone  float64 `yaml:"dead_zone"`
	HitRadius float64 `yaml:"hit_radius"`
	Threshold float64 `yaml:"threshold"`
	Mouse     bool    `yaml:"mouse"`
}

// Settings converts p into mapper settings anchored at center.
func (p Preset) Settings(center Point) (Settings, error) {
	mode, err := ParseMode(p.Mode)
	if err != nil {
		return Settings{}, fmt.Errorf("preset %q: %w", p.Name, err)
	}
	s := Settings{
		Geometry: Geometry{
			Center:    center,
			MaxRadius: p.MaxRadius,
			DeadZone:  p.DeadZone,
		},
		Threshold: p.Threshold,
		Mode:      mode,
	}
	if err := s.Validate(); err != nil {
		return Settings{}, fmt.Errorf("preset %q: %w", p.Name, err)
	}
	return s, nil
}

// Presets is a set of named tunings.
type Presets map[string]Preset

type presetFile struct {
	Presets map[string]Preset `yaml:"presets"`
}

// ParsePresets decodes a YAML document with a top-level "presets" map.
// Missing thresholds default to DefaultThreshold.
func ParsePresets(data []byte) (Presets, error) {
	var f presetFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse presets: %w", err)
	}
	out := make(Presets, len(f.Presets))
	for name, p := range f.Presets {
		p.Name = name
		if p.Threshold == 0 {
			p.Threshold = DefaultThreshold
		}
		if _, err := p.Settings(Point{}); err != nil {
			return nil, err
		}
		out[name] = p
	}
	return out, nil
}

// Get returns the preset called name.
func (ps Presets) Get(name string) (Preset, error) {
	p, ok := ps[name]
	if !ok {
		return Preset{}, fmt.Errorf("%w: %q", ErrUnknownPreset, name)
	}
	return p, nil
}

// Names returns the preset names sorted.
func (ps Presets) Names() []string {
	names := make([]string, 0, len(ps))
	for name := range ps {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Override decodes a single preset document on top of p. Fields absent
// from data keep their current values; a zero threshold means the default.
func (p Preset) Override(data []byte) (Preset, error) {
	out := p
	if err := yaml.Unmarshal(data, &out); err != nil {
		return p, fmt.Errorf("override preset %q: %w", p.Name, err)
	}
	if out.Threshold == 0 {
		out.Threshold = DefaultThreshold
	}
	if _, err := out.Settings(Point{}); err != nil {
		return p, err
	}
	return out, nil
}
