package factory

import (
	"github.com/automoto/chaser/archetypes"
	"github.com/automoto/chaser/components"
	"github.com/automoto/chaser/geom"
	"github.com/automoto/chaser/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateWall creates a static obstacle. index is the obstacle's position in
// the level's obstacle list.
func CreateWall(ecs *ecs.ECS, index int, r geom.Rect) *donburi.Entry {
	wall := archetypes.Wall.Spawn(ecs)

	obj := resolv.NewObject(r.X, r.Y, r.W, r.H, tags.ResolvSolid)
	obj.SetShape(resolv.NewRectangle(0, 0, r.W, r.H))
	obj.Data = wall // Link for O(1) lookup

	components.Object.SetValue(wall, components.ObjectData{Object: obj})
	components.Obstacle.SetValue(wall, components.ObstacleData{Index: index})

	addToSpace(ecs, obj)
	return wall
}
