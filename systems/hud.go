package systems

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/automoto/touchstick/components"
	cfg "github.com/automoto/touchstick/config"
	"github.com/automoto/touchstick/fonts"
	"github.com/automoto/touchstick/joystick"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/yohamta/donburi/ecs"
)

var hudTextOp = &text.DrawOptions{}

var inputMethodNames = map[components.InputMethod]string{
	components.InputKeyboard:    "keyboard",
	components.InputXbox:        "xbox",
	components.InputPlayStation: "playstation",
	components.InputTouch:       "touch",
}

// DrawHUD prints the joystick's live state in the top-left corner.
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	entry, ok := components.Joystick.First(ecs.World)
	if !ok {
		return
	}
	stick := components.Joystick.Get(entry).Stick
	input := getOrCreateInput(ecs)

	v := stick.Vector()
	y := cfg.HUD.Margin
	drawHUDLine(screen, y, fmt.Sprintf("preset %s (%s)", cfg.Joystick.Preset.Name, stick.Settings().Mode), cfg.HUD.TextColor)
	y += cfg.HUD.LineHeight
	drawHUDLine(screen, y, fmt.Sprintf("vector %+.2f %+.2f  |v| %.2f", v.X, v.Y, v.Magnitude()), cfg.HUD.TextColor)
	y += cfg.HUD.LineHeight
	drawHUDLine(screen, y, "heading "+stick.Compass().String(), cfg.HUD.TextColor)
	y += cfg.HUD.LineHeight

	held := heldKeyNames(stick)
	clr := cfg.HUD.TextColor
	if held != "" {
		clr = cfg.HUD.HeldColor
	} else {
		held = "-"
	}
	drawHUDLine(screen, y, "keys "+held, clr)
	y += cfg.HUD.LineHeight
	drawHUDLine(screen, y, "input "+inputMethodNames[input.LastInputMethod], cfg.HUD.TextColor)
}

func heldKeyNames(stick *joystick.Stick) string {
	var names []string
	for _, d := range joystick.Directions {
		if !stick.Held(d) {
			continue
		}
		for _, k := range joystick.KeysFor(d) {
			names = append(names, k.Name)
		}
	}
	return strings.Join(names, " ")
}

func drawHUDLine(screen *ebiten.Image, y float64, s string, clr color.RGBA) {
	hudTextOp.GeoM.Reset()
	hudTextOp.GeoM.Translate(cfg.HUD.Margin, y)
	hudTextOp.ColorScale.Reset()
	hudTextOp.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, s, fonts.Mono.Get(), hudTextOp)
}
