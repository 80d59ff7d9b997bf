package scenes

import (
	"fmt"
	"image/color"
	"log"
	"sync"

	"github.com/automoto/touchstick/assets"
	cfg "github.com/automoto/touchstick/config"
	"github.com/automoto/touchstick/systems"
	"github.com/automoto/touchstick/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// MenuScene lets the player pick a joystick preset and an arena.
type MenuScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	opts         Options
	picker       *ui.PresetPickerUI
	once         sync.Once
}

// NewMenuScene creates a new menu scene
func NewMenuScene(sc SceneChanger, opts Options) *MenuScene {
	return &MenuScene{sceneChanger: sc, opts: opts}
}

func (ms *MenuScene) Update() {
	ms.once.Do(ms.configure)
	ms.ecs.Update()

	switch {
	case systems.IsActionJustPressed(ms.ecs, cfg.ActionMenuUp):
		ms.picker.CyclePreset(-1)
	case systems.IsActionJustPressed(ms.ecs, cfg.ActionMenuDown):
		ms.picker.CyclePreset(1)
	case systems.IsActionJustPressed(ms.ecs, cfg.ActionMenuSelect):
		ms.picker.Start()
		return
	}

	ms.picker.Update()
}

func (ms *MenuScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ms.ecs == nil {
		return
	}
	ms.picker.UI.Draw(screen)
}

func (ms *MenuScene) configure() {
	ms.ecs = ecs.NewECS(donburi.NewWorld())
	ms.ecs.AddSystem(systems.UpdateInput)

	arena := ms.opts.Arena
	if arena == "" {
		arena = cfg.Arena.Default
	}

	ms.picker = ui.NewPresetPickerUI(
		cfg.Joystick.Presets.Names(),
		assets.ArenaNames(),
		cfg.Joystick.Preset.Name,
		arena,
		describePreset,
		ms.start,
	)
}

func (ms *MenuScene) start(preset, arena string) {
	if err := cfg.SelectPreset(preset, cfg.Joystick.OverridePath); err != nil {
		log.Printf("menu: %v", err)
		return
	}
	opts := ms.opts
	opts.Arena = arena
	ms.sceneChanger.ChangeScene(NewPlaygroundScene(ms.sceneChanger, opts))
}

func describePreset(name string) string {
	p, err := cfg.Joystick.Presets.Get(name)
	if err != nil {
		return err.Error()
	}
	input := "touch"
	if p.Mouse {
		input = "touch + mouse"
	}
	return fmt.Sprintf("%s  radius %.0f  dead zone %.0f  threshold %.2f  %s",
		p.Mode, p.MaxRadius, p.DeadZone, p.Threshold, input)
}
