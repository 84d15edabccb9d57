// Package collision moves axis-aligned boxes through a set of static
// obstacles.
//
// Movement is resolved one axis at a time, horizontal first. On each axis the
// obstacles are scanned in slice order and only the first overlap is
// resolved, by snapping the box's leading edge to the obstacle's facing edge.
package collision

import (
	"math"

	"github.com/automoto/chaser/geom"
)

// Result is the outcome of Move.
type Result struct {
	Box geom.Rect
	// Index into the obstacle slice of the obstacle that stopped each axis,
	// or -1 when that axis moved freely.
	BlockedX int
	BlockedY int
}

// Blocked reports whether either axis hit an obstacle.
func (r Result) Blocked() bool {
	return r.BlockedX >= 0 || r.BlockedY >= 0
}

// Move displaces box by dir*speed, resolving the horizontal axis and then the
// vertical axis against obstacles.
func Move(box geom.Rect, dir geom.Vec, speed float64, obstacles []geom.Rect) Result {
	var r Result
	r.Box, r.BlockedX = MoveX(box, dir.X*speed, obstacles)
	r.Box, r.BlockedY = MoveY(r.Box, dir.Y*speed, obstacles)
	return r
}

// MoveX shifts box horizontally by dx. If the shifted box overlaps an obstacle
// its right edge (moving right) or left edge (moving left) is snapped to that
// obstacle. It returns the index of the obstacle hit, or -1.
func MoveX(box geom.Rect, dx float64, obstacles []geom.Rect) (geom.Rect, int) {
	if dx == 0 {
		return box, -1
	}
	box.X += dx
	for i, o := range obstacles {
		if !box.Intersects(o) {
			continue
		}
		if dx > 0 {
			box.X = below(o.X, box.W)
		} else {
			box.X = o.Right()
		}
		return box, i
	}
	return box, -1
}

// MoveY is MoveX for the vertical axis; positive dy moves down.
func MoveY(box geom.Rect, dy float64, obstacles []geom.Rect) (geom.Rect, int) {
	if dy == 0 {
		return box, -1
	}
	box.Y += dy
	for i, o := range obstacles {
		if !box.Intersects(o) {
			continue
		}
		if dy > 0 {
			box.Y = below(o.Y, box.H)
		} else {
			box.Y = o.Bottom()
		}
		return box, i
	}
	return box, -1
}

// below returns the largest start coordinate whose far edge, start+size, does
// not pass edge. Plain edge-size can round up by one ulp.
func below(edge, size float64) float64 {
	start := edge - size
	for start+size > edge {
		start = math.Nextafter(start, math.Inf(-1))
	}
	return start
}
