package factory

import (
	"github.com/automoto/chaser/components"
	cfg "github.com/automoto/chaser/config"
	"github.com/automoto/chaser/steering"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateSteering creates the singleton controller shared by all enemies. A
// nil rng seeds one from cfg.Steering.Seed.
func CreateSteering(ecs *ecs.ECS, rng steering.Rand) *donburi.Entry {
	entry := ecs.World.Entry(ecs.World.Create(components.Steering))
	components.Steering.SetValue(entry, components.SteeringData{
		Controller: steering.NewController(cfg.Steering.Tuning(), rng),
	})
	return entry
}
