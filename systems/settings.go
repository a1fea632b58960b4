package systems

import (
	"github.com/automoto/neon-reverie/components"
	cfg "github.com/automoto/neon-reverie/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// UpdateSettings applies host chords. None of them touch scene content.
func UpdateSettings(ecs *ecs.ECS) {
	settings := GetOrCreateSettings(ecs)
	input := getOrCreateInput(ecs)

	if toggleSettings(settings, input) {
		ebiten.SetFullscreen(settings.Fullscreen)
	}
}

// toggleSettings flips settings for chords pressed this frame and reports
// whether fullscreen changed.
func toggleSettings(settings *components.SettingsData, input *components.InputData) bool {
	if input.JustPressed(cfg.ActionToggleDebug) {
		settings.Debug = !settings.Debug
	}
	if input.JustPressed(cfg.ActionToggleMute) {
		settings.Muted = !settings.Muted
	}
	if input.JustPressed(cfg.ActionQuit) {
		settings.Quit = true
	}
	if input.JustPressed(cfg.ActionToggleFullscreen) {
		settings.Fullscreen = !settings.Fullscreen
		return true
	}
	return false
}

// GetOrCreateSettings returns the settings singleton, seeded from the command line.
func GetOrCreateSettings(ecs *ecs.ECS) *components.SettingsData {
	entry, ok := components.Settings.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Settings))
		components.Settings.SetValue(entry, components.SettingsData{
			Debug:      cfg.Debug.Overlay,
			Fullscreen: cfg.Debug.Fullscreen,
			Muted:      cfg.Audio.Muted,
		})
	}
	return components.Settings.Get(entry)
}
