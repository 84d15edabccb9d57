package components

import "github.com/yohamta/donburi"

// SettingsData holds the debug overlay toggles.
type SettingsData struct {
	ShowHitboxes bool
	ShowProbes   bool
	Dirty        bool // Changed since the last save
}

var Settings = donburi.NewComponentType[SettingsData]()
