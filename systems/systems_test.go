package systems

import (
	"math/rand"
	"testing"

	"github.com/automoto/chaser/assets"
	"github.com/automoto/chaser/components"
	cfg "github.com/automoto/chaser/config"
	"github.com/automoto/chaser/geom"
	"github.com/automoto/chaser/steering"
	"github.com/automoto/chaser/systems/factory"
	"github.com/automoto/chaser/tags"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func newTestECS(t *testing.T, level *assets.Level, rng steering.Rand) *ecs.ECS {
	t.Helper()
	cfg.Reset()
	e := ecs.NewECS(donburi.NewWorld())
	factory.CreateSteering(e, rng)
	factory.CreateLevel(e, level)
	return e
}

func wallLevel() *assets.Level {
	return &assets.Level{
		Name:        "wall",
		Width:       320,
		Height:      320,
		Obstacles:   []geom.Rect{geom.NewRect(160, 0, 32, 320)},
		PlayerSpawn: geom.Vec{X: 280, Y: 160},
		EnemySpawns: []assets.EnemySpawn{{Pos: geom.Vec{X: 130, Y: 160}}},
	}
}

func TestEnemyNeverEndsInsideWall(t *testing.T) {
	level := wallLevel()
	e := newTestECS(t, level, rand.New(rand.NewSource(12345)))
	factory.CreatePlayer(e, level.PlayerSpawn)
	factory.SpawnEnemies(e, level)

	wall := level.Obstacles[0]
	for i := 0; i < 600; i++ {
		UpdateEnemies(e)
		UpdateCollisions(e)

		tags.Enemy.Each(e.World, func(entry *donburi.Entry) {
			box := components.Object.Get(entry).Rect()
			require.False(t, box.Intersects(wall), "tick %d: %+v inside wall", i, box)
		})
	}

	// The player is straight through the wall, so the enemy ends up pressed
	// against it.
	enemy, ok := tags.Enemy.First(e.World)
	require.True(t, ok)
	assert.LessOrEqual(t, components.Object.Get(enemy).Rect().Right(), wall.X)
}

func TestWallOnCellBoundaryStopsSubPixelApproach(t *testing.T) {
	level := wallLevel()
	e := newTestECS(t, level, rand.New(rand.NewSource(12345)))
	wall := level.Obstacles[0]

	// Hitbox is 20 wide and starts 10 left of the spawn center, so its right
	// edge sits at 159, one pixel short of the wall on the 16px grid.
	player := factory.CreatePlayer(e, geom.Vec{X: 149, Y: 160})
	require.Equal(t, 159.0, components.Object.Get(player).Rect().Right())

	mv := components.Movement.Get(player)
	mv.Direction = geom.Right
	mv.Speed = 1.5

	UpdateCollisions(e)

	box := components.Object.Get(player).Rect()
	assert.False(t, box.Intersects(wall), "%+v inside wall", box)
	assert.Equal(t, wall.X, box.Right())
	assert.Equal(t, 0, mv.LastMove.BlockedX)
}

func TestFractionalApproachesNeverEndInsideWall(t *testing.T) {
	level := wallLevel()
	e := newTestECS(t, level, rand.New(rand.NewSource(12345)))
	wall := level.Obstacles[0]
	player := factory.CreatePlayer(e, geom.Vec{X: 100.3, Y: 160})
	mv := components.Movement.Get(player)
	mv.Direction = geom.Vec{X: 0.6, Y: 0.8}

	rng := rand.New(rand.NewSource(12345))
	for i := 0; i < 2000; i++ {
		if i%40 == 0 {
			components.Object.Get(player).MoveTo(geom.NewRect(100+rng.Float64()*20, 140+rng.Float64()*20, 20, 24))
		}
		mv.Speed = 0.1 + rng.Float64()*3

		UpdateCollisions(e)

		box := components.Object.Get(player).Rect()
		require.False(t, box.Intersects(wall), "tick %d: %+v inside wall", i, box)
	}
}

func TestCollisionWithoutSpaceScansEveryObstacle(t *testing.T) {
	indices := nearbyObstacles(nil, geom.NewRect(139.5, 100, 20, 24), geom.Right, 2)

	assert.Equal(t, []int{0, 1}, indices)
}

func TestCollisionReportsLevelObstacleIndex(t *testing.T) {
	level := &assets.Level{
		Name:   "two",
		Width:  320,
		Height: 320,
		Obstacles: []geom.Rect{
			geom.NewRect(0, 0, 16, 16),
			geom.NewRect(200, 100, 32, 64),
		},
	}
	e := newTestECS(t, level, rand.New(rand.NewSource(12345)))
	player := factory.CreatePlayer(e, geom.Vec{X: 180, Y: 130})
	components.Movement.Get(player).Direction = geom.Right

	for i := 0; i < 20; i++ {
		UpdateCollisions(e)
	}

	mv := components.Movement.Get(player)
	assert.Equal(t, 1, mv.LastMove.BlockedX)
	assert.Equal(t, -1, mv.LastMove.BlockedY)
	assert.Equal(t, 200.0, components.Object.Get(player).Rect().Right())
}

func TestPlayerMovesBySpeedInPressedDirection(t *testing.T) {
	level := wallLevel()
	e := newTestECS(t, level, rand.New(rand.NewSource(12345)))
	player := factory.CreatePlayer(e, geom.Vec{X: 60, Y: 160})
	start := components.Object.Get(player).Rect()

	input := getOrCreateInput(e)
	input.Current[cfg.ActionMoveDown] = true

	UpdatePlayer(e)
	UpdateCollisions(e)

	got := components.Object.Get(player).Rect()
	assert.Equal(t, start.X, got.X)
	assert.InDelta(t, start.Y+cfg.Player.Speed, got.Y, 1e-9)
	assert.Equal(t, geom.Down, components.Player.Get(player).Facing)
}

func TestPlayerDiagonalInputIsNormalized(t *testing.T) {
	input := &components.InputData{}
	input.Current[cfg.ActionMoveLeft] = true
	input.Current[cfg.ActionMoveUp] = true

	dir := inputDirection(input)

	assert.InDelta(t, 1, dir.Len(), 1e-9)
	assert.Less(t, dir.X, 0.0)
	assert.Less(t, dir.Y, 0.0)
}

func TestPauseSkipsGameplaySystems(t *testing.T) {
	level := wallLevel()
	e := newTestECS(t, level, rand.New(rand.NewSource(12345)))
	player := factory.CreatePlayer(e, geom.Vec{X: 60, Y: 160})
	components.Movement.Get(player).Direction = geom.Down
	start := components.Object.Get(player).Rect()

	GetOrCreatePause(e).IsPaused = true
	WithGameplayChecks(UpdateCollisions)(e)
	assert.Equal(t, start, components.Object.Get(player).Rect())

	GetOrCreatePause(e).IsPaused = false
	WithGameplayChecks(UpdateCollisions)(e)
	assert.NotEqual(t, start, components.Object.Get(player).Rect())
}

func TestFadeReachesFullOpacity(t *testing.T) {
	level := wallLevel()
	e := newTestECS(t, level, rand.New(rand.NewSource(12345)))
	enemy := factory.CreateEnemy(e, geom.Vec{X: 60, Y: 60}, "Chaser")
	fade := components.Fade.Get(enemy)
	require.NotNil(t, fade.Tween)
	assert.Zero(t, fade.Alpha)

	for i := 0; i < cfg.C.TPS; i++ {
		UpdateFades(e)
	}

	assert.Nil(t, fade.Tween)
	assert.Equal(t, float32(1), fade.Alpha)
}

func TestRespawnEnemiesRebuildsFromLevel(t *testing.T) {
	level := wallLevel()
	level.EnemySpawns = append(level.EnemySpawns, assets.EnemySpawn{Pos: geom.Vec{X: 60, Y: 60}, EnemyType: "Runner"})
	e := newTestECS(t, level, rand.New(rand.NewSource(12345)))
	factory.SpawnEnemies(e, level)
	factory.CreateEnemy(e, geom.Vec{X: 100, Y: 260}, "Brute")

	RespawnEnemies(e)

	count := 0
	tags.Enemy.Each(e.World, func(*donburi.Entry) { count++ })
	assert.Equal(t, 2, count)

	space := components.Space.Get(mustFirst(t, e, components.Space))
	// One wall plus two enemies.
	assert.Len(t, space.Objects(), 3)
}

func TestApplyConfigUpdatesSpeeds(t *testing.T) {
	level := wallLevel()
	e := newTestECS(t, level, rand.New(rand.NewSource(12345)))
	enemy := factory.CreateEnemy(e, geom.Vec{X: 60, Y: 60}, "Runner")

	s := cfg.Current()
	runner := s.Enemy.Types["Runner"]
	runner.Speed = 4
	s.Enemy.Types["Runner"] = runner
	s.Steering.ProbeDistance = 20
	cfg.Apply(s)
	defer cfg.Reset()

	ApplyConfig(e)

	assert.Equal(t, 4.0, components.Movement.Get(enemy).Speed)
	steer := components.Steering.Get(mustFirst(t, e, components.Steering))
	assert.Equal(t, 20.0, steer.Controller.Config().ProbeDistance)
}

func TestHUDLinesCountModes(t *testing.T) {
	level := wallLevel()
	e := newTestECS(t, level, rand.New(rand.NewSource(12345)))
	factory.SpawnEnemies(e, level)

	lines := HUDLines(e)

	require.GreaterOrEqual(t, len(lines), 2)
	assert.Contains(t, lines[0], "wall")
	assert.Contains(t, lines[1], "idle:1")
}

func mustFirst[T any](t *testing.T, e *ecs.ECS, c *donburi.ComponentType[T]) *donburi.Entry {
	t.Helper()
	entry, ok := c.First(e.World)
	require.True(t, ok)
	return entry
}
