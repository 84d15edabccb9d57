package systems

import (
	"encoding/json"

	"github.com/automoto/chaser/components"
	cfg "github.com/automoto/chaser/config"
	"github.com/automoto/chaser/logging"
	"github.com/quasilyte/gdata"
)

// SavedSettings represents the settings data stored on disk
type SavedSettings struct {
	ShowHitboxes bool `json:"showHitboxes"`
	ShowProbes   bool `json:"showProbes"`
}

var gdataManager *gdata.Manager

// InitPersistence initializes the gdata manager for settings storage
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: "chaser",
	})
	if err != nil {
		logging.L().Warnw("could not initialize persistence", "err", err)
		return err
	}
	gdataManager = m
	return nil
}

// LoadSettings loads settings from disk. A missing or unreadable save
// returns nil.
func LoadSettings() *SavedSettings {
	if gdataManager == nil {
		return nil
	}

	data, err := gdataManager.LoadItem("settings")
	if err != nil {
		logging.L().Warnw("could not load settings", "err", err)
		return nil
	}
	if len(data) == 0 {
		return nil
	}

	var settings SavedSettings
	if err := json.Unmarshal(data, &settings); err != nil {
		logging.L().Warnw("could not parse saved settings", "err", err)
		return nil
	}
	return &settings
}

// SaveSettings saves settings to disk
func SaveSettings(s *SavedSettings) error {
	if gdataManager == nil {
		return nil
	}

	data, err := json.Marshal(s)
	if err != nil {
		logging.L().Warnw("could not serialize settings", "err", err)
		return err
	}

	if err := gdataManager.SaveItem("settings", data); err != nil {
		logging.L().Warnw("could not save settings", "err", err)
		return err
	}
	logging.L().Infow("settings saved", "hitboxes", s.ShowHitboxes, "probes", s.ShowProbes)
	return nil
}

// SaveCurrentSettings saves the overlay toggles from the Settings component
func SaveCurrentSettings(s *components.SettingsData) {
	_ = SaveSettings(&SavedSettings{
		ShowHitboxes: s.ShowHitboxes,
		ShowProbes:   s.ShowProbes,
	})
}

// ApplySavedSettings copies a loaded save onto the Settings component.
// Overlays forced on by the debug config stay on.
func ApplySavedSettings(s *components.SettingsData, saved *SavedSettings) {
	if saved == nil {
		return
	}
	s.ShowHitboxes = saved.ShowHitboxes || cfg.Debug.ShowHitboxes
	s.ShowProbes = saved.ShowProbes || cfg.Debug.ShowProbes
}
