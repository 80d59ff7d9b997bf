package components

import "github.com/yohamta/donburi"

// SettingsData holds toggles that can change while a scene runs.
type SettingsData struct {
	Debug bool
}

var Settings = donburi.NewComponentType[SettingsData]()
