package factory

import (
	"github.com/automoto/chaser/archetypes"
	"github.com/automoto/chaser/components"
	cfg "github.com/automoto/chaser/config"
	"github.com/automoto/chaser/geom"
	"github.com/automoto/chaser/tags"
	"github.com/solarlune/resolv"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateEnemy spawns an enemy whose render rect is centered on pos. Unknown
// type names fall back to the configured default type.
func CreateEnemy(ecs *ecs.ECS, pos geom.Vec, enemyTypeName string) *donburi.Entry {
	enemyType := cfg.EnemyType(enemyTypeName)

	enemy := archetypes.Enemy.Spawn(ecs)

	render := geom.CenteredAt(pos, enemyType.RenderWidth, enemyType.RenderHeight)
	hitbox := render.Inset(enemyType.HitboxInsetX, enemyType.HitboxInsetY)

	// Create collision object
	obj := resolv.NewObject(hitbox.X, hitbox.Y, hitbox.W, hitbox.H)
	obj.SetShape(resolv.NewRectangle(0, 0, hitbox.W, hitbox.H))
	obj.AddTags(tags.ResolvCharacter, tags.ResolvEnemy)
	obj.Data = enemy
	components.Object.SetValue(enemy, components.ObjectData{Object: obj})

	components.Enemy.SetValue(enemy, components.EnemyData{
		TypeName:   enemyType.Name,
		TypeConfig: &enemyType,
	})
	if steerEntry, ok := components.Steering.First(ecs.World); ok {
		components.Steering.Get(steerEntry).Controller.Reset(&components.Enemy.Get(enemy).Steering)
	}

	components.Movement.SetValue(enemy, components.MovementData{
		Speed: enemyType.Speed,
	})
	components.Sprite.SetValue(enemy, components.SpriteData{
		Color:  enemyType.TintColor,
		InsetX: enemyType.HitboxInsetX,
		InsetY: enemyType.HitboxInsetY,
	})
	components.Fade.SetValue(enemy, newFade(enemyType.FadeInSeconds))

	addToSpace(ecs, obj)
	return enemy
}

// DestroyEnemies removes every enemy and its collision object.
func DestroyEnemies(ecs *ecs.ECS) {
	var entries []*donburi.Entry
	tags.Enemy.Each(ecs.World, func(e *donburi.Entry) {
		entries = append(entries, e)
	})

	spaceEntry, hasSpace := components.Space.First(ecs.World)
	for _, e := range entries {
		if hasSpace {
			components.Space.Get(spaceEntry).Remove(components.Object.Get(e).Object)
		}
		ecs.World.Remove(e.Entity())
	}
}

func newFade(seconds float32) components.FadeData {
	if seconds <= 0 {
		return components.FadeData{Alpha: 1}
	}
	return components.FadeData{
		Tween: gween.New(0, 1, seconds, ease.OutQuad),
	}
}
