package factory

import (
	"fmt"

	"github.com/automoto/touchstick/archetypes"
	"github.com/automoto/touchstick/components"
	cfg "github.com/automoto/touchstick/config"
	"github.com/automoto/touchstick/joystick"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// JoystickOptions selects how a joystick entity is built.
type JoystickOptions struct {
	Preset joystick.Preset
	// Center of the base in screen coordinates
	Center joystick.Point
	// External sink, e.g. the page canvas. Nil routes keys to the entity's
	// virtual keyboard.
	Sink    joystick.InputSink
	LogKeys bool
	Visible bool
	// Surface the overlay is drawn on
	ScreenWidth, ScreenHeight int
}

// CreateJoystick spawns the on-screen stick. A base that does not fit the
// screen fails with joystick.ErrElementsMissing.
func CreateJoystick(ecs *ecs.ECS, opts JoystickOptions) (*donburi.Entry, error) {
	settings, err := opts.Preset.Settings(opts.Center)
	if err != nil {
		return nil, fmt.Errorf("create joystick: %w", err)
	}
	if err := settings.Geometry.CheckVisible(float64(opts.ScreenWidth), float64(opts.ScreenHeight)); err != nil {
		return nil, fmt.Errorf("create joystick: %w", err)
	}

	entry := archetypes.Joystick.Spawn(ecs)

	keyboard := &components.VirtualKeyboard{}
	components.VirtualKeys.SetValue(entry, components.VirtualKeysData{VirtualKeyboard: keyboard})

	var sink joystick.InputSink = keyboard
	if opts.Sink != nil {
		sink = opts.Sink
	}
	if opts.LogKeys {
		sink = joystick.LogSink{Prefix: "joystick: ", Next: sink}
	}

	mapper, err := joystick.NewMapper(settings, sink)
	if err != nil {
		ecs.World.Remove(entry.Entity())
		return nil, fmt.Errorf("create joystick: %w", err)
	}

	components.Joystick.SetValue(entry, components.JoystickData{
		Stick:   joystick.NewStick(mapper, opts.Preset.HitRadius, opts.Preset.Mouse),
		Visible: opts.Visible,
	})

	return entry, nil
}

// DefaultJoystickCenter places the base in the bottom-left corner of a
// screen of the given height.
func DefaultJoystickCenter(height int) joystick.Point {
	return joystick.Point{
		X: cfg.Overlay.MarginX,
		Y: float64(height) - cfg.Overlay.MarginY,
	}
}
