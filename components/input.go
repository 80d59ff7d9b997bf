package components

import (
	cfg "github.com/automoto/touchstick/config"
	"github.com/automoto/touchstick/joystick"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
)

// InputMethod represents the type of input device being used
type InputMethod int

const (
	InputKeyboard InputMethod = iota
	InputXbox
	InputPlayStation
	InputTouch
)

// ActionState represents the temporal state of an action
type ActionState struct {
	Pressed      bool // Currently held down
	JustPressed  bool // Pressed this frame
	JustReleased bool // Released this frame
}

// InputData stores the current and previous frame's pressed state for all actions.
// JustPressed/JustReleased are computed on-demand by comparing frames.
type InputData struct {
	Current         [cfg.ActionCount]bool // Current frame's Pressed state
	Previous        [cfg.ActionCount]bool // Previous frame's Pressed state
	LastInputMethod InputMethod           // Most recently used input method
}

var Input = donburi.NewComponentType[InputData]()

// VirtualKeyboard is the keyboard the joystick types on. It implements
// joystick.InputSink; the input system reads it next to the real keyboard.
type VirtualKeyboard struct {
	held map[ebiten.Key]bool
}

// VirtualKeysData links an entity to its virtual keyboard. The keyboard is
// held by pointer so the joystick mapper can keep it as its sink.
type VirtualKeysData struct {
	*VirtualKeyboard
}

var VirtualKeys = donburi.NewComponentType[VirtualKeysData]()

func (v *VirtualKeyboard) Press(k joystick.Key) {
	key, ok := cfg.EbitenKey(k)
	if !ok {
		return
	}
	if v.held == nil {
		v.held = make(map[ebiten.Key]bool)
	}
	v.held[key] = true
}

func (v *VirtualKeyboard) Release(k joystick.Key) {
	if key, ok := cfg.EbitenKey(k); ok {
		delete(v.held, key)
	}
}

// IsPressed reports whether the joystick currently holds key.
func (v *VirtualKeyboard) IsPressed(key ebiten.Key) bool {
	return v.held[key]
}

// Len returns the number of held keys.
func (v *VirtualKeyboard) Len() int {
	return len(v.held)
}
