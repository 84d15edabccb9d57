package factory

import (
	"github.com/automoto/chaser/archetypes"
	"github.com/automoto/chaser/components"
	cfg "github.com/automoto/chaser/config"
	"github.com/automoto/chaser/geom"
	"github.com/automoto/chaser/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreatePlayer spawns the player with its render rect centered on pos.
func CreatePlayer(ecs *ecs.ECS, pos geom.Vec) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)

	render := geom.CenteredAt(pos, cfg.Player.RenderWidth, cfg.Player.RenderHeight)
	hitbox := render.Inset(cfg.Player.HitboxInsetX, cfg.Player.HitboxInsetY)

	obj := resolv.NewObject(hitbox.X, hitbox.Y, hitbox.W, hitbox.H)
	obj.SetShape(resolv.NewRectangle(0, 0, hitbox.W, hitbox.H))
	obj.AddTags(tags.ResolvCharacter, tags.ResolvPlayer)
	obj.Data = player
	components.Object.SetValue(player, components.ObjectData{Object: obj})

	components.Player.SetValue(player, components.PlayerData{Facing: geom.Down})
	components.Movement.SetValue(player, components.MovementData{
		Speed: cfg.Player.Speed,
	})
	components.Sprite.SetValue(player, components.SpriteData{
		Color:  cfg.Player.Color,
		InsetX: cfg.Player.HitboxInsetX,
		InsetY: cfg.Player.HitboxInsetY,
	})

	addToSpace(ecs, obj)
	return player
}
