package scenes

import (
	"errors"
	"image/color"
	"log"
	"sync"

	cfg "github.com/automoto/touchstick/config"
	"github.com/automoto/touchstick/joystick"
	"github.com/automoto/touchstick/systems"
	"github.com/automoto/touchstick/systems/factory"
	"github.com/automoto/touchstick/web"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// PlaygroundScene is an arena with an avatar driven by the on-screen stick.
type PlaygroundScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	opts         Options
	once         sync.Once
}

func NewPlaygroundScene(sc SceneChanger, opts Options) *PlaygroundScene {
	if opts.Arena == "" {
		opts.Arena = cfg.Arena.Default
	}
	return &PlaygroundScene{sceneChanger: sc, opts: opts}
}

func (ps *PlaygroundScene) Update() {
	ps.once.Do(ps.configure)
	ps.ecs.Update()

	if systems.IsActionJustPressed(ps.ecs, cfg.ActionMenuBack) {
		// Nothing may stay held once the scene is gone
		systems.ReleaseJoysticks(ps.ecs)
		ps.sceneChanger.ChangeScene(NewMenuScene(ps.sceneChanger, ps.opts))
	}
}

func (ps *PlaygroundScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ps.ecs == nil {
		return
	}
	ps.ecs.Draw(screen)
}

func (ps *PlaygroundScene) configure() {
	ecs := ecs.NewECS(donburi.NewWorld())

	// The joystick types into the virtual keyboard, which UpdateInput reads
	ecs.AddSystem(systems.UpdateJoystick)
	ecs.AddSystem(systems.UpdateInput)
	ecs.AddSystem(systems.UpdateSettings)
	ecs.AddSystem(systems.UpdateAvatar)
	ecs.AddSystem(systems.UpdateObjects)
	ecs.AddSystem(systems.UpdateCamera)

	ecs.AddRenderer(cfg.Default, systems.DrawArena)
	ecs.AddRenderer(cfg.Default, systems.DrawAvatar)
	ecs.AddRenderer(cfg.Default, systems.DrawDebug)
	ecs.AddRenderer(cfg.Default, systems.DrawJoystick)
	ecs.AddRenderer(cfg.Default, systems.DrawHUD)

	ps.ecs = ecs

	factory.CreateArena(ps.ecs, ps.opts.Arena)

	_, err := factory.CreateJoystick(ps.ecs, factory.JoystickOptions{
		Preset:       cfg.Joystick.Preset,
		Center:       factory.DefaultJoystickCenter(cfg.C.Height),
		Sink:         ps.opts.Sink,
		LogKeys:      cfg.Debug.LogKeys,
		Visible:      overlayVisible(cfg.Joystick.Show),
		ScreenWidth:  cfg.C.Width,
		ScreenHeight: cfg.C.Height,
	})
	switch {
	case errors.Is(err, joystick.ErrElementsMissing):
		// Not retried: the playground runs keyboard/gamepad only
		log.Printf("playground: %v", err)
	case err != nil:
		panic("failed to create joystick: " + err.Error())
	}
}

// overlayVisible decides the initial visibility. In auto mode the stick
// also appears on the first touch.
func overlayVisible(mode cfg.ShowMode) bool {
	switch mode {
	case cfg.ShowAlways:
		return true
	case cfg.ShowNever:
		return false
	}
	return web.IsMobile()
}
