package collision

import (
	"math"
	"math/rand"
	"testing"

	"github.com/automoto/chaser/geom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMoveIntoObstacleFromEachSide(t *testing.T) {
	wall := geom.NewRect(100, 100, 50, 50)

	cases := []struct {
		name  string
		start geom.Rect
		dir   geom.Vec
		check func(t *testing.T, box geom.Rect)
	}{
		{
			name:  "from_left",
			start: geom.NewRect(80, 110, 16, 16),
			dir:   geom.Right,
			check: func(t *testing.T, box geom.Rect) { assert.Equal(t, wall.X, box.Right()) },
		},
		{
			name:  "from_right",
			start: geom.NewRect(154, 110, 16, 16),
			dir:   geom.Left,
			check: func(t *testing.T, box geom.Rect) { assert.Equal(t, wall.Right(), box.X) },
		},
		{
			name:  "from_above",
			start: geom.NewRect(110, 80, 16, 16),
			dir:   geom.Down,
			check: func(t *testing.T, box geom.Rect) { assert.Equal(t, wall.Y, box.Bottom()) },
		},
		{
			name:  "from_below",
			start: geom.NewRect(110, 154, 16, 16),
			dir:   geom.Up,
			check: func(t *testing.T, box geom.Rect) { assert.Equal(t, wall.Bottom(), box.Y) },
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			r := Move(c.start, c.dir, 8, []geom.Rect{wall})
			assert.True(t, r.Blocked())
			assert.False(t, r.Box.Intersects(wall))
			c.check(t, r.Box)
		})
	}
}

func TestMoveFreely(t *testing.T) {
	box := geom.NewRect(0, 0, 10, 10)
	r := Move(box, geom.Vec{X: 0.6, Y: 0.8}, 5, []geom.Rect{geom.NewRect(100, 100, 10, 10)})

	assert.False(t, r.Blocked())
	assert.Equal(t, -1, r.BlockedX)
	assert.Equal(t, -1, r.BlockedY)
	assert.InDelta(t, 3.0, r.Box.X, 1e-9)
	assert.InDelta(t, 4.0, r.Box.Y, 1e-9)
}

func TestMoveDiagonalSlidesAlongWall(t *testing.T) {
	// Wall to the right; moving down-right keeps the vertical component.
	wall := geom.NewRect(20, -100, 10, 300)
	box := geom.NewRect(8, 0, 10, 10)

	r := Move(box, geom.Vec{X: math.Sqrt2 / 2, Y: math.Sqrt2 / 2}, 4, []geom.Rect{wall})

	assert.Equal(t, 0, r.BlockedX)
	assert.Equal(t, -1, r.BlockedY)
	assert.Equal(t, 20.0, r.Box.Right())
	assert.InDelta(t, 4*math.Sqrt2/2, r.Box.Y, 1e-9)
}

func TestMoveCornerDoesNotTunnel(t *testing.T) {
	// Box sits diagonally off the top-left corner of the wall. Moving
	// diagonally must not end inside it.
	wall := geom.NewRect(10, 10, 20, 20)
	box := geom.NewRect(0, 0, 9, 9)

	r := Move(box, geom.Vec{X: 1, Y: 1}.Normalize(), 3, []geom.Rect{wall})

	assert.False(t, r.Box.Intersects(wall))
	assert.Equal(t, -1, r.BlockedX, "horizontal step alone clears the corner")
	assert.Equal(t, 0, r.BlockedY)
	assert.Equal(t, wall.Y, r.Box.Bottom())
}

func TestMoveResolvesFirstObstacleOnly(t *testing.T) {
	first := geom.NewRect(30, 0, 10, 10)
	second := geom.NewRect(25, 0, 10, 10)
	box := geom.NewRect(10, 0, 10, 10)

	r := Move(box, geom.Right, 12, []geom.Rect{first, second})

	assert.Equal(t, 0, r.BlockedX)
	assert.Equal(t, first.X, r.Box.Right())
	assert.True(t, r.Box.Intersects(second), "later overlaps are left alone")
}

func TestMoveZeroDirectionIsNoop(t *testing.T) {
	box := geom.NewRect(5, 5, 10, 10)
	overlapping := geom.NewRect(0, 0, 20, 20)

	r := Move(box, geom.Zero, 3, []geom.Rect{overlapping})

	assert.Equal(t, box, r.Box)
	assert.False(t, r.Blocked())
}

func TestMoveNeverEndsOverlappingSingleObstacle(t *testing.T) {
	rng := rand.New(rand.NewSource(12345))
	wall := geom.NewRect(100, 100, 40, 40)
	dirs := []geom.Vec{geom.Up, geom.Down, geom.Left, geom.Right, {X: 0.6, Y: 0.8}, {X: -0.8, Y: 0.6}}

	box := geom.NewRect(60, 60, 12, 12)
	for i := 0; i < 5000; i++ {
		dir := dirs[rng.Intn(len(dirs))]
		speed := 1 + rng.Float64()*6

		var blocked int
		box, blocked = MoveX(box, dir.X*speed, []geom.Rect{wall})
		if blocked >= 0 {
			require.False(t, box.Intersects(wall), "x step %d", i)
		}
		box, _ = MoveY(box, dir.Y*speed, []geom.Rect{wall})
		require.False(t, box.Intersects(wall), "y step %d", i)

		if box.X < -200 || box.X > 400 || box.Y < -200 || box.Y > 400 {
			box = geom.NewRect(60, 60, 12, 12)
		}
	}
}

func TestSnapWithFractionalSizesLeavesNoOverlap(t *testing.T) {
	rng := rand.New(rand.NewSource(12345))

	for i := 0; i < 20000; i++ {
		wall := geom.NewRect(50+rng.Float64()*200, 50+rng.Float64()*200, 1+rng.Float64()*40, 1+rng.Float64()*40)
		w := 1 + rng.Float64()*30
		h := 1 + rng.Float64()*30

		// Approach from the left, one step short of touching.
		box := geom.NewRect(wall.X-w-rng.Float64()*1.5, wall.Y, w, h)
		box, blocked := MoveX(box, 2, []geom.Rect{wall})
		require.Equal(t, 0, blocked, "x case %d", i)
		require.False(t, box.Intersects(wall), "x case %d: right %v wall %v", i, box.Right(), wall.X)
		require.LessOrEqual(t, box.Right(), wall.X)
		require.InDelta(t, wall.X, box.Right(), 1e-9)

		// Approach from above.
		box = geom.NewRect(wall.X, wall.Y-h-rng.Float64()*1.5, w, h)
		box, blocked = MoveY(box, 2, []geom.Rect{wall})
		require.Equal(t, 0, blocked, "y case %d", i)
		require.False(t, box.Intersects(wall), "y case %d: bottom %v wall %v", i, box.Bottom(), wall.Y)
		require.InDelta(t, wall.Y, box.Bottom(), 1e-9)
	}
}
