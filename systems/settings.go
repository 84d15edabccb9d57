package systems

import (
	"github.com/automoto/chaser/components"
	cfg "github.com/automoto/chaser/config"
	"github.com/automoto/chaser/logging"
	"github.com/automoto/chaser/systems/factory"
	"github.com/yohamta/donburi/ecs"
)

// UpdateSettings handles the overlay and respawn hotkeys. Changed toggles are
// saved once per tick.
func UpdateSettings(ecs *ecs.ECS) {
	settings := GetOrCreateSettings(ecs)
	input := getOrCreateInput(ecs)

	if input.JustPressed(cfg.ActionToggleHitboxes) {
		settings.ShowHitboxes = !settings.ShowHitboxes
		settings.Dirty = true
	}
	if input.JustPressed(cfg.ActionToggleProbes) {
		settings.ShowProbes = !settings.ShowProbes
		settings.Dirty = true
	}
	if input.JustPressed(cfg.ActionRespawn) {
		RespawnEnemies(ecs)
	}

	if settings.Dirty {
		SaveCurrentSettings(settings)
		settings.Dirty = false
	}
}

// RespawnEnemies removes every enemy and spawns the level's enemies again.
func RespawnEnemies(ecs *ecs.ECS) {
	entry, ok := components.Level.First(ecs.World)
	if !ok {
		return
	}
	level := components.Level.Get(entry).CurrentLevel

	factory.DestroyEnemies(ecs)
	factory.SpawnEnemies(ecs, level)
	logging.L().Infow("enemies respawned", "level", level.Name, "count", len(level.EnemySpawns))
}

// GetOrCreateSettings returns the singleton Settings component, seeding it
// from the debug config on creation.
func GetOrCreateSettings(ecs *ecs.ECS) *components.SettingsData {
	entry, ok := components.Settings.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Settings))
		components.Settings.SetValue(entry, components.SettingsData{
			ShowHitboxes: cfg.Debug.ShowHitboxes,
			ShowProbes:   cfg.Debug.ShowProbes,
		})
	}
	return components.Settings.Get(entry)
}
