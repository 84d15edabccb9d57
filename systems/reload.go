package systems

import (
	"github.com/automoto/chaser/components"
	cfg "github.com/automoto/chaser/config"
	"github.com/automoto/chaser/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// ApplyConfig pushes the current global tuning onto live entities after a
// config reload. Steering timers keep running; speeds and colors change
// immediately.
func ApplyConfig(ecs *ecs.ECS) {
	if entry, ok := components.Steering.First(ecs.World); ok {
		components.Steering.Get(entry).Controller.SetConfig(cfg.Steering.Tuning())
	}

	tags.Enemy.Each(ecs.World, func(e *donburi.Entry) {
		enemy := components.Enemy.Get(e)
		enemyType := cfg.EnemyType(enemy.TypeName)
		enemy.TypeConfig = &enemyType
		components.Movement.Get(e).Speed = enemyType.Speed
		components.Sprite.Get(e).Color = enemyType.TintColor
	})

	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		components.Movement.Get(e).Speed = cfg.Player.Speed
		components.Sprite.Get(e).Color = cfg.Player.Color
	})
}
