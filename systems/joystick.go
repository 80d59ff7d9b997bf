package systems

import (
	"slices"

	"github.com/automoto/touchstick/components"
	cfg "github.com/automoto/touchstick/config"
	"github.com/automoto/touchstick/joystick"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Reusable slices for touch IDs to avoid allocations
var (
	justPressedTouchIDs []ebiten.TouchID
	activeTouchIDs      []ebiten.TouchID
)

// UpdateJoystick feeds touches and the mouse to every on-screen stick.
// Must run BEFORE UpdateInput in the system order.
func UpdateJoystick(ecs *ecs.ECS) {
	justPressedTouchIDs = inpututil.AppendJustPressedTouchIDs(justPressedTouchIDs[:0])
	activeTouchIDs = ebiten.AppendTouchIDs(activeTouchIDs[:0])

	components.Joystick.Each(ecs.World, func(e *donburi.Entry) {
		updateJoystick(components.Joystick.Get(e))
	})
}

func updateJoystick(js *components.JoystickData) {
	stick := js.Stick

	if len(justPressedTouchIDs) > 0 {
		js.TouchSeen = true
		if cfg.Joystick.Show == cfg.ShowAuto {
			js.Visible = true
		}
	}
	if !js.Visible {
		return
	}

	dt := float32(1 / float64(ebiten.TPS()))

	// Losing focus is the closest thing to a touchcancel
	if !ebiten.IsFocused() {
		focusLost(js, dt)
		return
	}

	for _, id := range justPressedTouchIDs {
		x, y := ebiten.TouchPosition(id)
		if stick.Begin(joystick.PointerID(id), joystick.Point{X: float64(x), Y: float64(y)}) {
			stopSnapBack(js)
			break
		}
	}
	if stick.AllowMouse && inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		if stick.Begin(joystick.MousePointer, joystick.Point{X: float64(x), Y: float64(y)}) {
			stopSnapBack(js)
		}
	}

	if id, ok := stick.Active(); ok {
		if p, down := pointerPosition(id); down {
			stick.Move(id, p)
			js.Knob = stick.Knob()
		} else {
			stick.End(id)
			startSnapBack(js)
		}
	}

	advanceSnapBack(js, dt)
}

// focusLost drops any drag and keeps the knob easing home.
func focusLost(js *components.JoystickData, dt float32) {
	if js.Stick.Dragging() {
		js.Stick.Cancel()
		startSnapBack(js)
	}
	advanceSnapBack(js, dt)
}

// pointerPosition returns where id is and whether it is still down.
func pointerPosition(id joystick.PointerID) (joystick.Point, bool) {
	if id == joystick.MousePointer {
		if !ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
			return joystick.Point{}, false
		}
		x, y := ebiten.CursorPosition()
		return joystick.Point{X: float64(x), Y: float64(y)}, true
	}

	tid := ebiten.TouchID(id)
	if !slices.Contains(activeTouchIDs, tid) || inpututil.IsTouchJustReleased(tid) {
		return joystick.Point{}, false
	}
	x, y := ebiten.TouchPosition(tid)
	return joystick.Point{X: float64(x), Y: float64(y)}, true
}

func startSnapBack(js *components.JoystickData) {
	d := cfg.Overlay.SnapBackSeconds
	js.SnapBackX = gween.New(float32(js.Knob.X), 0, d, ease.OutQuad)
	js.SnapBackY = gween.New(float32(js.Knob.Y), 0, d, ease.OutQuad)
}

func stopSnapBack(js *components.JoystickData) {
	js.SnapBackX = nil
	js.SnapBackY = nil
}

func advanceSnapBack(js *components.JoystickData, dt float32) {
	if js.SnapBackX == nil || js.SnapBackY == nil {
		return
	}
	x, doneX := js.SnapBackX.Update(dt)
	y, doneY := js.SnapBackY.Update(dt)
	js.Knob = joystick.Point{X: float64(x), Y: float64(y)}
	if doneX && doneY {
		js.Knob = joystick.Point{}
		stopSnapBack(js)
	}
}

// ReleaseJoysticks drops every drag and releases all keys. Scenes call it
// on teardown so nothing stays held.
func ReleaseJoysticks(ecs *ecs.ECS) {
	components.Joystick.Each(ecs.World, func(e *donburi.Entry) {
		js := components.Joystick.Get(e)
		js.Stick.Cancel()
		js.Knob = joystick.Point{}
		stopSnapBack(js)
	})
}

// DrawJoystick renders the base, dead zone, direction indicators and knob.
func DrawJoystick(ecs *ecs.ECS, screen *ebiten.Image) {
	components.Joystick.Each(ecs.World, func(e *donburi.Entry) {
		js := components.Joystick.Get(e)
		if !js.Visible {
			return
		}
		drawJoystick(screen, js)
	})
}

func drawJoystick(screen *ebiten.Image, js *components.JoystickData) {
	g := js.Stick.Settings().Geometry
	cx, cy := float32(g.Center.X), float32(g.Center.Y)
	radius := float32(g.MaxRadius)

	vector.FillCircle(screen, cx, cy, radius, cfg.Overlay.BaseColor, true)
	vector.StrokeCircle(screen, cx, cy, radius, 2, cfg.Overlay.RingColor, true)
	if g.DeadZone > 0 {
		vector.FillCircle(screen, cx, cy, float32(g.DeadZone), cfg.Overlay.DeadZoneColor, true)
	}

	active := js.Stick.Compass()
	dist := g.MaxRadius * cfg.Overlay.IndicatorDistance
	for _, c := range joystick.AllCompass {
		dx, dy := compassOffset(c, dist)
		clr := cfg.Overlay.IndicatorColor
		if c == active {
			clr = cfg.Overlay.IndicatorActiveColor
		}
		vector.FillCircle(screen, cx+float32(dx), cy+float32(dy), float32(cfg.Overlay.IndicatorRadius), clr, true)
	}

	knobColor := cfg.Overlay.KnobColor
	if js.Stick.Dragging() {
		knobColor = cfg.Overlay.KnobActiveColor
	}
	vector.FillCircle(screen,
		cx+float32(js.Knob.X), cy+float32(js.Knob.Y),
		float32(cfg.Overlay.KnobRadius), knobColor, true)
}
