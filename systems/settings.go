package systems

import (
	"log"

	"github.com/automoto/touchstick/components"
	cfg "github.com/automoto/touchstick/config"
	"github.com/yohamta/donburi/ecs"
)

// GetOrCreateSettings returns the scene's settings singleton.
func GetOrCreateSettings(e *ecs.ECS) *components.SettingsData {
	if _, ok := components.Settings.First(e.World); !ok {
		ent := e.World.Entry(e.World.Create(components.Settings))
		components.Settings.SetValue(ent, components.SettingsData{
			Debug: cfg.Debug.ShowColliders,
		})
	}

	ent, _ := components.Settings.First(e.World)
	return components.Settings.Get(ent)
}

// UpdateSettings flips the debug overlay on ActionToggleDebug.
func UpdateSettings(e *ecs.ECS) {
	settings := GetOrCreateSettings(e)
	if GetAction(getOrCreateInput(e), cfg.ActionToggleDebug).JustPressed {
		settings.Debug = !settings.Debug
		log.Printf("debug overlay: %v", settings.Debug)
	}
}
