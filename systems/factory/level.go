package factory

import (
	"slices"

	"github.com/automoto/chaser/archetypes"
	"github.com/automoto/chaser/assets"
	"github.com/automoto/chaser/components"
	cfg "github.com/automoto/chaser/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateLevel builds the level entity, the collision space sized to it, and
// one wall per obstacle.
func CreateLevel(ecs *ecs.ECS, level *assets.Level) *donburi.Entry {
	entry := archetypes.Level.Spawn(ecs)
	components.Level.SetValue(entry, components.LevelData{
		CurrentLevel: level,
		Obstacles:    slices.Clone(level.Obstacles),
	})

	CreateSpace(ecs, level.Width, level.Height, cfg.Level.SpaceCellSize, cfg.Level.SpaceCellSize)

	for i, r := range level.Obstacles {
		CreateWall(ecs, i, r)
	}
	return entry
}

// SpawnEnemies creates one enemy per spawn point in the level.
func SpawnEnemies(ecs *ecs.ECS, level *assets.Level) {
	for _, s := range level.EnemySpawns {
		CreateEnemy(ecs, s.Pos, s.EnemyType)
	}
}
