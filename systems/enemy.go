package systems

import (
	"github.com/automoto/chaser/components"
	cfg "github.com/automoto/chaser/config"
	"github.com/automoto/chaser/geom"
	"github.com/automoto/chaser/logging"
	"github.com/automoto/chaser/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateEnemies runs the steering controller for every enemy and hands the
// chosen direction to the collision system.
func UpdateEnemies(ecs *ecs.ECS) {
	steerEntry, ok := components.Steering.First(ecs.World)
	if !ok {
		return
	}
	controller := components.Steering.Get(steerEntry).Controller

	obstacles := levelObstacles(ecs)
	player := playerCenter(ecs)

	tags.Enemy.Each(ecs.World, func(e *donburi.Entry) {
		enemy := components.Enemy.Get(e)
		self := components.Object.Get(e).Rect()

		decision := controller.Tick(&enemy.Steering, self, player, obstacles)
		enemy.LastDecision = decision
		components.Movement.Get(e).Direction = decision.Direction

		if decision.Redecided && cfg.Debug.LogDecisions {
			logging.Named("enemy").Debugw("redecided",
				"entity", e.Entity(),
				"type", enemy.TypeName,
				"mode", decision.Mode,
				"probeHit", decision.ProbeHit,
				"bound", enemy.Steering.Bound,
			)
		}
	})
}

// levelObstacles returns the current level's obstacles in level order.
func levelObstacles(ecs *ecs.ECS) []geom.Rect {
	entry, ok := components.Level.First(ecs.World)
	if !ok {
		return nil
	}
	return components.Level.Get(entry).Obstacles
}
