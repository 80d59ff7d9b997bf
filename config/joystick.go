package config

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/automoto/touchstick/joystick"
)

//go:embed presets.yaml
var presetsYAML []byte

// ShowMode decides when the overlay is drawn.
type ShowMode string

const (
	ShowAuto   ShowMode = "auto"   // on touch devices, or once a touch is seen
	ShowAlways ShowMode = "always" // desktop testing
	ShowNever  ShowMode = "never"
)

// SinkMode decides where joystick key transitions go.
type SinkMode string

const (
	// SinkVirtual merges the keys into the game's own action polling.
	SinkVirtual SinkMode = "virtual"
	// SinkDOM dispatches KeyboardEvents to the page's canvas (browser only).
	SinkDOM SinkMode = "dom"
)

// JoystickConfig contains the joystick selection made at startup
type JoystickConfig struct {
	Preset  joystick.Preset
	Presets joystick.Presets
	// YAML applied on top of whichever preset is selected
	OverridePath string
	Show         ShowMode
	Sink         SinkMode
	Selector     string // CSS selector of the event target in SinkDOM mode
	// How long to wait for the DOM target before giving up, in seconds
	SurfaceTimeout float64
}

// Joystick is the global joystick configuration
var Joystick JoystickConfig

func init() {
	presets, err := joystick.ParsePresets(presetsYAML)
	if err != nil {
		panic(fmt.Sprintf("embedded joystick presets: %v", err))
	}
	Joystick = JoystickConfig{
		Presets:        presets,
		Show:           ShowAuto,
		Sink:           SinkVirtual,
		Selector:       "canvas",
		SurfaceTimeout: 10,
	}
	Joystick.Preset, _ = presets.Get("analog-mouse")
}

// SelectPreset makes the named preset current. A non-empty overridePath is
// read as YAML and applied on top of it.
func SelectPreset(name, overridePath string) error {
	p, err := Joystick.Presets.Get(name)
	if err != nil {
		return err
	}
	if overridePath != "" {
		data, err := os.ReadFile(overridePath)
		if err != nil {
			return fmt.Errorf("read joystick config: %w", err)
		}
		if p, err = p.Override(data); err != nil {
			return err
		}
	}
	Joystick.Preset = p
	Joystick.OverridePath = overridePath
	return nil
}

// ParseShowMode validates a -show flag value.
func ParseShowMode(s string) (ShowMode, error) {
	switch m := ShowMode(s); m {
	case ShowAuto, ShowAlways, ShowNever:
		return m, nil
	}
	return ShowAuto, fmt.Errorf("unknown show mode %q", s)
}

// ParseSinkMode validates a -sink flag value.
func ParseSinkMode(s string) (SinkMode, error) {
	switch m := SinkMode(s); m {
	case SinkVirtual, SinkDOM:
		return m, nil
	}
	return SinkVirtual, fmt.Errorf("unknown sink mode %q", s)
}
