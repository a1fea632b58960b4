package components

import "github.com/yohamta/donburi"

// SettingsData holds host window state toggled by chords.
type SettingsData struct {
	Debug      bool
	Fullscreen bool
	Muted      bool
	Quit       bool
}

var Settings = donburi.NewComponentType[SettingsData]()
