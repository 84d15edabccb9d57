package systems

import (
	"github.com/automoto/chaser/components"
	cfg "github.com/automoto/chaser/config"
	"github.com/automoto/chaser/geom"
	"github.com/automoto/chaser/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePlayer turns held movement actions into the player's direction.
// Diagonals are normalized so the player is not faster on them.
func UpdatePlayer(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)
	dir := inputDirection(input)

	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		components.Movement.Get(e).Direction = dir
		if !dir.IsZero() {
			components.Player.Get(e).Facing = dir
		}
	})
}

func inputDirection(input *components.InputData) geom.Vec {
	var dir geom.Vec
	if input.Pressed(cfg.ActionMoveLeft) {
		dir.X--
	}
	if input.Pressed(cfg.ActionMoveRight) {
		dir.X++
	}
	if input.Pressed(cfg.ActionMoveUp) {
		dir.Y--
	}
	if input.Pressed(cfg.ActionMoveDown) {
		dir.Y++
	}
	return dir.Normalize()
}

// playerCenter returns the center of the player's hitbox, or nil when there
// is no player.
func playerCenter(ecs *ecs.ECS) *geom.Vec {
	entry, ok := tags.Player.First(ecs.World)
	if !ok {
		return nil
	}
	c := components.Object.Get(entry).Rect().Center()
	return &c
}
