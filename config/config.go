package config

import (
	"image/color"

	"github.com/yohamta/donburi/ecs"
)

// Default is the only render layer used by the scenes.
const Default ecs.LayerID = 0

// AvatarConfig contains the playground avatar's movement values
type AvatarConfig struct {
	Acceleration float64 // added per frame while a direction is held
	MaxSpeed     float64
	Friction     float64 // removed per frame on released axes
	Size         float64
	Color        color.RGBA
}

// OverlayConfig contains the joystick overlay's presentation values
type OverlayConfig struct {
	// Distance of the base center from the bottom-left screen corner
	MarginX float64
	MarginY float64

	KnobRadius        float64
	IndicatorRadius   float64
	IndicatorDistance float64 // from base center, in units of max radius
	SnapBackSeconds   float32 // knob return tween on release

	BaseColor            color.RGBA
	RingColor            color.RGBA
	DeadZoneColor        color.RGBA
	KnobColor            color.RGBA
	KnobActiveColor      color.RGBA
	IndicatorColor       color.RGBA
	IndicatorActiveColor color.RGBA
}

// HUDConfig contains the on-screen readout values
type HUDConfig struct {
	Margin     float64
	LineHeight float64
	FontSize   float64
	TextColor  color.RGBA
	HeldColor  color.RGBA
}

// ArenaConfig contains arena loading and drawing values
type ArenaConfig struct {
	Dir             string // directory of .tmx files inside the embedded assets
	Default         string // file stem loaded when none is chosen
	CellSize        int    // resolv space cell size
	BackgroundColor color.RGBA
	WallColor       color.RGBA
}

// CameraConfig contains camera follow and shake values
type CameraConfig struct {
	FollowSmoothing float64 // How fast camera follows the avatar (0.0-1.0)
	// Wall hits at or above this fraction of max speed shake the screen
	BumpSpeedRatio float64
	BumpIntensity  float64
	BumpFrames     int
}

// Config holds general game configuration
type Config struct {
	Width  int
	Height int
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	SkipMenu      bool // Skip menu and go directly to the playground
	LogKeys       bool // Log every key transition the joystick emits
	ShowColliders bool // Outline collision objects
}

// Global configuration instances
var C *Config
var Avatar AvatarConfig
var Overlay OverlayConfig
var HUD HUDConfig
var Arena ArenaConfig
var Camera CameraConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	BrightYellow = color.RGBA{R: 255, G: 255, B: 100, A: 255}
	Orange       = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	LightGreen   = color.RGBA{R: 100, G: 255, B: 100, A: 255}
	LightBlue    = color.RGBA{R: 100, G: 180, B: 255, A: 255}
	DarkBlue     = color.RGBA{R: 60, G: 100, B: 160, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
)

func init() {
	C = &Config{
		Width:  640,
		Height: 360,
	}

	Avatar = AvatarConfig{
		Acceleration: 0.6,
		MaxSpeed:     3.5,
		Friction:     0.4,
		Size:         16,
		Color:        LightGreen,
	}

	Overlay = OverlayConfig{
		MarginX: 80,
		MarginY: 80,

		KnobRadius:        18,
		IndicatorRadius:   4,
		IndicatorDistance: 1.35,
		SnapBackSeconds:   0.12,

		BaseColor:            color.RGBA{R: 255, G: 255, B: 255, A: 40},
		RingColor:            color.RGBA{R: 255, G: 255, B: 255, A: 110},
		DeadZoneColor:        color.RGBA{R: 255, G: 255, B: 255, A: 25},
		KnobColor:            color.RGBA{R: 220, G: 220, B: 220, A: 170},
		KnobActiveColor:      color.RGBA{R: 255, G: 255, B: 255, A: 230},
		IndicatorColor:       color.RGBA{R: 255, G: 255, B: 255, A: 60},
		IndicatorActiveColor: BrightYellow,
	}

	HUD = HUDConfig{
		Margin:     8,
		LineHeight: 14,
		FontSize:   11,
		TextColor:  White,
		HeldColor:  BrightYellow,
	}

	Arena = ArenaConfig{
		Dir:             "arenas",
		Default:         "playground",
		CellSize:        16,
		BackgroundColor: color.RGBA{R: 24, G: 26, B: 36, A: 255},
		WallColor:       DarkBlue,
	}

	Camera = CameraConfig{
		FollowSmoothing: 0.1,
		BumpSpeedRatio:  0.9,
		BumpIntensity:   2,
		BumpFrames:      10,
	}

	// Debug Config (defaults, can be overridden by CLI flags)
	Debug = DebugConfig{
		SkipMenu:      false,
		LogKeys:       false,
		ShowColliders: false,
	}
}
