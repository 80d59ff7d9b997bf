package ui

import (
	"image/color"

	"github.com/automoto/touchstick/fonts"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

var (
	optionIdle     = color.RGBA{60, 60, 80, 255}
	optionHover    = color.RGBA{80, 80, 100, 255}
	optionSelected = color.RGBA{80, 80, 140, 255}
	textIdle       = color.RGBA{200, 200, 200, 255}
	textSelected   = color.RGBA{255, 255, 255, 255}
)

// PresetPickerUI lets the player pick a joystick preset and an arena
// before starting the playground.
type PresetPickerUI struct {
	UI *ebitenui.UI

	OnStart func(preset, arena string)

	presetNames []string
	arenaNames  []string
	preset      string
	arena       string

	presetButtons map[string]*widget.Button
	arenaButtons  map[string]*widget.Button
	detailLabel   *widget.Label
	describe      func(preset string) string

	titleFace  text.Face
	normalFace text.Face
	smallFace  text.Face
}

// NewPresetPickerUI builds the picker. describe returns the detail line
// shown for the selected preset.
func NewPresetPickerUI(presets, arenas []string, preset, arena string,
	describe func(string) string, onStart func(preset, arena string)) *PresetPickerUI {
	ui := &PresetPickerUI{
		OnStart:       onStart,
		presetNames:   presets,
		arenaNames:    arenas,
		preset:        preset,
		arena:         arena,
		presetButtons: make(map[string]*widget.Button),
		arenaButtons:  make(map[string]*widget.Button),
		describe:      describe,
	}
	ui.loadFonts()
	ui.buildUI()
	ui.refresh()
	return ui
}

func (ui *PresetPickerUI) loadFonts() {
	ui.titleFace = fonts.Title.Get()
	ui.normalFace = fonts.Regular.Get()
	ui.smallFace = fonts.Small.Get()
}

func (ui *PresetPickerUI) buildUI() {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(color.RGBA{20, 20, 30, 255})),
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	contentContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(12)),
			widget.RowLayoutOpts.Spacing(8),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)

	titleLabel := widget.NewLabel(
		widget.LabelOpts.Text("TOUCHSTICK", &ui.titleFace, &widget.LabelColor{
			Idle: color.RGBA{255, 255, 255, 255},
		}),
	)
	contentContainer.AddChild(titleLabel)

	contentContainer.AddChild(ui.sectionLabel("Joystick"))
	contentContainer.AddChild(ui.buildOptionRow(ui.presetNames, ui.presetButtons, func(name string) {
		ui.preset = name
		ui.refresh()
	}))

	ui.detailLabel = widget.NewLabel(
		widget.LabelOpts.Text("", &ui.smallFace, &widget.LabelColor{
			Idle: color.RGBA{255, 200, 100, 255},
		}),
	)
	contentContainer.AddChild(ui.detailLabel)

	contentContainer.AddChild(ui.sectionLabel("Arena"))
	contentContainer.AddChild(ui.buildOptionRow(ui.arenaNames, ui.arenaButtons, func(name string) {
		ui.arena = name
		ui.refresh()
	}))

	contentContainer.AddChild(ui.buildStartButton())

	rootContainer.AddChild(contentContainer)

	ui.UI = &ebitenui.UI{Container: rootContainer}
}

func (ui *PresetPickerUI) sectionLabel(s string) *widget.Label {
	return widget.NewLabel(
		widget.LabelOpts.Text(s, &ui.normalFace, &widget.LabelColor{
			Idle: textIdle,
		}),
	)
}

func (ui *PresetPickerUI) buildOptionRow(names []string, buttons map[string]*widget.Button, onPick func(string)) *widget.Container {
	container := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(4),
		)),
	)

	for _, name := range names {
		btn := widget.NewButton(
			widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(100, 24)),
			widget.ButtonOpts.Image(&widget.ButtonImage{
				Idle:    image.NewNineSliceColor(optionIdle),
				Hover:   image.NewNineSliceColor(optionHover),
				Pressed: image.NewNineSliceColor(optionSelected),
				// The selected option is drawn disabled
				Disabled: image.NewNineSliceColor(optionSelected),
			}),
			widget.ButtonOpts.Text(name, &ui.smallFace, &widget.ButtonTextColor{
				Idle:     textIdle,
				Disabled: textSelected,
			}),
			widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
				onPick(name)
			}),
		)
		buttons[name] = btn
		container.AddChild(btn)
	}

	return container
}

func (ui *PresetPickerUI) buildStartButton() *widget.Button {
	return widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(120, 26)),
		widget.ButtonOpts.Image(&widget.ButtonImage{
			Idle:    image.NewNineSliceColor(color.RGBA{40, 100, 40, 255}),
			Hover:   image.NewNineSliceColor(color.RGBA{60, 140, 60, 255}),
			Pressed: image.NewNineSliceColor(color.RGBA{30, 80, 30, 255}),
		}),
		widget.ButtonOpts.Text("Start", &ui.normalFace, &widget.ButtonTextColor{
			Idle:    color.RGBA{255, 255, 255, 255},
			Hover:   color.RGBA{200, 255, 200, 255},
			Pressed: color.RGBA{150, 200, 150, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			ui.Start()
		}),
	)
}

// refresh highlights the current choices.
func (ui *PresetPickerUI) refresh() {
	for name, btn := range ui.presetButtons {
		btn.GetWidget().Disabled = name == ui.preset
	}
	for name, btn := range ui.arenaButtons {
		btn.GetWidget().Disabled = name == ui.arena
	}
	if ui.detailLabel != nil && ui.describe != nil {
		ui.detailLabel.Label = ui.describe(ui.preset)
	}
}

// CyclePreset moves the preset selection by delta, wrapping around.
func (ui *PresetPickerUI) CyclePreset(delta int) {
	ui.preset = cycle(ui.presetNames, ui.preset, delta)
	ui.refresh()
}

func cycle(names []string, current string, delta int) string {
	if len(names) == 0 {
		return current
	}
	i := 0
	for j, n := range names {
		if n == current {
			i = j
			break
		}
	}
	i = ((i+delta)%len(names) + len(names)) % len(names)
	return names[i]
}

// Start reports the current choices.
func (ui *PresetPickerUI) Start() {
	if ui.OnStart != nil {
		ui.OnStart(ui.preset, ui.arena)
	}
}

func (ui *PresetPickerUI) Update() {
	ui.UI.Update()
}
