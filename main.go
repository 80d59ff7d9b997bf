package main

import (
	"context"
	"flag"
	"image"
	"log"
	"time"

	"github.com/automoto/touchstick/config"
	"github.com/automoto/touchstick/fonts"
	"github.com/automoto/touchstick/joystick"
	"github.com/automoto/touchstick/scenes"
	"github.com/automoto/touchstick/web"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

func NewGame(opts scenes.Options) *Game {
	g := &Game{
		bounds: image.Rectangle{},
	}

	if config.Debug.SkipMenu {
		g.scene = scenes.NewPlaygroundScene(g, opts)
	} else {
		g.scene = scenes.NewMenuScene(g, opts)
	}

	return g
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

// awaitCanvas waits for the page element that receives the joystick's
// key events.
func awaitCanvas() (joystick.InputSink, error) {
	loc, err := web.NewLocator(config.Joystick.Selector)
	if err != nil {
		return nil, err
	}
	defer loc.Close()

	timeout := time.Duration(config.Joystick.SurfaceTimeout * float64(time.Second))
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	return joystick.AwaitSurface(ctx, loc)
}

func main() {
	preset := flag.String("preset", config.Joystick.Preset.Name, "joystick preset (digital8, analog, analog-mouse)")
	joystickConfig := flag.String("joystick-config", "", "YAML file overriding fields of the selected preset")
	show := flag.String("show", string(config.Joystick.Show), "when to draw the joystick: auto, always, never")
	sink := flag.String("sink", string(config.Joystick.Sink), "where joystick keys go: virtual, dom")
	arena := flag.String("arena", config.Arena.Default, "arena to load")
	flag.BoolVar(&config.Debug.LogKeys, "debug", config.Debug.LogKeys, "log every joystick key transition")
	flag.BoolVar(&config.Debug.SkipMenu, "skip-menu", config.Debug.SkipMenu, "start in the playground")
	flag.BoolVar(&config.Debug.ShowColliders, "colliders", config.Debug.ShowColliders, "outline collision objects")
	flag.Parse()

	if err := config.SelectPreset(*preset, *joystickConfig); err != nil {
		log.Fatalf("Invalid joystick preset: %v", err)
	}

	var err error
	if config.Joystick.Show, err = config.ParseShowMode(*show); err != nil {
		log.Fatalf("Invalid -show: %v", err)
	}
	if config.Joystick.Sink, err = config.ParseSinkMode(*sink); err != nil {
		log.Fatalf("Invalid -sink: %v", err)
	}

	if err := fonts.LoadDefaults(config.HUD.FontSize); err != nil {
		log.Fatalf("Failed to load fonts: %v", err)
	}

	opts := scenes.Options{Arena: *arena}
	if config.Joystick.Sink == config.SinkDOM {
		if opts.Sink, err = awaitCanvas(); err != nil {
			log.Fatalf("Joystick target %q: %v", config.Joystick.Selector, err)
		}
		log.Printf("Joystick keys go to %q", config.Joystick.Selector)
	}

	ebiten.SetWindowSize(config.C.Width*2, config.C.Height*2)
	ebiten.SetWindowTitle("touchstick")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)

	if err := ebiten.RunGame(NewGame(opts)); err != nil {
		log.Fatal(err)
	}
}
