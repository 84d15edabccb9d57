package systems

import (
	"slices"

	"github.com/automoto/chaser/collision"
	"github.com/automoto/chaser/components"
	"github.com/automoto/chaser/geom"
	"github.com/automoto/chaser/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCollisions moves every entity with a Movement component by
// direction * speed, resolving against the level's obstacles one axis at a
// time. Actors do not block each other.
func UpdateCollisions(ecs *ecs.ECS) {
	obstacles := levelObstacles(ecs)

	var space *resolv.Space
	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		space = components.Space.Get(spaceEntry)
	}

	components.Movement.Each(ecs.World, func(e *donburi.Entry) {
		if !e.HasComponent(components.Object) {
			return
		}
		movement := components.Movement.Get(e)
		obj := components.Object.Get(e)

		if movement.Direction.IsZero() || movement.Speed == 0 {
			movement.LastMove = collision.Result{Box: obj.Rect(), BlockedX: -1, BlockedY: -1}
			return
		}

		delta := movement.Direction.Scale(movement.Speed)
		indices := nearbyObstacles(space, obj.Rect(), delta, len(obstacles))
		candidates := make([]geom.Rect, len(indices))
		for i, idx := range indices {
			candidates[i] = obstacles[idx]
		}

		result := collision.Move(obj.Rect(), movement.Direction, movement.Speed, candidates)
		result.BlockedX = levelIndex(indices, result.BlockedX)
		result.BlockedY = levelIndex(indices, result.BlockedY)

		obj.MoveTo(result.Box)
		movement.LastMove = result
	})
}

// broadphasePad grows the broadphase query on every side. resolv picks cells
// from X+W-1, so a wall starting on a cell boundary is missed when the far
// edge ends less than a pixel past it.
const broadphasePad = 1

// nearbyObstacles uses the resolv space as a broadphase. It returns the level
// indices of walls near any position box can pass through this tick, sorted
// so the exact pass scans them in level order. Displacements are assumed to
// be no larger than the box itself. Without a space every obstacle is a
// candidate.
func nearbyObstacles(space *resolv.Space, box geom.Rect, delta geom.Vec, count int) []int {
	if space == nil {
		indices := make([]int, count)
		for i := range indices {
			indices[i] = i
		}
		return indices
	}

	query := resolv.NewObject(
		box.X-broadphasePad, box.Y-broadphasePad,
		box.W+2*broadphasePad, box.H+2*broadphasePad,
	)
	space.Add(query)
	defer space.Remove(query)

	var indices []int
	for _, d := range [...]geom.Vec{{X: delta.X}, {Y: delta.Y}, delta} {
		check := query.Check(d.X, d.Y, tags.ResolvSolid)
		if check == nil {
			continue
		}
		for _, o := range check.ObjectsByTags(tags.ResolvSolid) {
			wall, ok := o.Data.(*donburi.Entry)
			if !ok || !wall.HasComponent(components.Obstacle) {
				continue
			}
			idx := components.Obstacle.Get(wall).Index
			if idx < 0 || idx >= count {
				continue
			}
			indices = append(indices, idx)
		}
	}
	slices.Sort(indices)
	return slices.Compact(indices)
}

// levelIndex maps a candidate index back to the level's obstacle index.
func levelIndex(indices []int, i int) int {
	if i < 0 {
		return -1
	}
	return indices[i]
}
