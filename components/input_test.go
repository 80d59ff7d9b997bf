package components

import (
	"testing"

	"github.com/automoto/touchstick/joystick"
	"github.com/hajimehoshi/ebiten/v2"
)

func TestVirtualKeyboardHoldsMappedKeys(t *testing.T) {
	var vk VirtualKeyboard

	vk.Press(joystick.KeyArrowUp)
	vk.Press(joystick.KeyW)
	if !vk.IsPressed(ebiten.KeyArrowUp) || !vk.IsPressed(ebiten.KeyW) {
		t.Fatalf("expected ArrowUp and W held")
	}
	if got := vk.Len(); got != 2 {
		t.Fatalf("Len() = %d, want 2", got)
	}

	vk.Release(joystick.KeyArrowUp)
	if vk.IsPressed(ebiten.KeyArrowUp) {
		t.Errorf("ArrowUp still held after release")
	}
	if got := vk.Len(); got != 1 {
		t.Errorf("Len() = %d, want 1", got)
	}
}

func TestVirtualKeyboardIgnoresUnknownKeys(t *testing.T) {
	var vk VirtualKeyboard

	vk.Press(joystick.Key{Name: "q", Code: "KeyQ", KeyCode: 81})
	if got := vk.Len(); got != 0 {
		t.Errorf("Len() = %d, want 0", got)
	}

	// Releasing before any press must not panic on the nil map
	vk.Release(joystick.KeyD)
}

func TestVirtualKeyboardAsMapperSink(t *testing.T) {
	vk := &VirtualKeyboard{}
	m, err := joystick.NewMapper(joystick.Settings{
		Geometry:  joystick.Geometry{Center: joystick.Point{X: 100, Y: 100}, MaxRadius: 40, DeadZone: 8},
		Threshold: joystick.DefaultThreshold,
	}, vk)
	if err != nil {
		t.Fatalf("NewMapper: %v", err)
	}

	m.UpdateKeys(m.Move(joystick.Point{X: 140, Y: 100}))
	if !vk.IsPressed(ebiten.KeyArrowRight) || !vk.IsPressed(ebiten.KeyD) {
		t.Fatalf("expected right keys held")
	}

	m.Reset()
	if got := vk.Len(); got != 0 {
		t.Errorf("Len() after Reset = %d, want 0", got)
	}
}
