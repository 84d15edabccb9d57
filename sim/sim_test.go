package sim

import (
	"math/rand"
	"testing"

	"github.com/automoto/chaser/assets"
	cfg "github.com/automoto/chaser/config"
	"github.com/automoto/chaser/geom"
	"github.com/automoto/chaser/steering"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// idleRand never follows and always draws the idle slot of the wander pool.
type idleRand struct{}

func (idleRand) Float64() float64 { return 0.999 }
func (idleRand) Intn(n int) int   { return n - 1 }

func openLevel() *assets.Level {
	return &assets.Level{
		Name:        "open",
		Width:       320,
		Height:      320,
		PlayerSpawn: geom.Vec{X: 280, Y: 280},
		EnemySpawns: []assets.EnemySpawn{{Pos: geom.Vec{X: 64, Y: 64}}},
	}
}

func TestIdleEnemyStaysPut(t *testing.T) {
	cfg.Reset()
	w := New(openLevel(), idleRand{})
	require.Len(t, w.Enemies, 1)
	start := w.Enemies[0].Hitbox

	for i := 0; i < 200; i++ {
		w.Step(geom.Zero)
	}

	assert.Equal(t, start, w.Enemies[0].Hitbox)
	assert.Equal(t, steering.Idle, w.Enemies[0].Mode())
	assert.Equal(t, 200, w.Ticks)
}

func TestPlayerMovesBySpeed(t *testing.T) {
	cfg.Reset()
	w := New(openLevel(), idleRand{})
	start := w.Player.Hitbox

	w.Step(geom.Vec{X: -1})

	assert.InDelta(t, start.X-cfg.Player.Speed, w.Player.Hitbox.X, 1e-9)
	assert.Equal(t, start.Y, w.Player.Hitbox.Y)
}

func TestPlayerDiagonalIsNormalized(t *testing.T) {
	cfg.Reset()
	w := New(openLevel(), idleRand{})
	start := w.Player.Hitbox.Center()

	w.Step(geom.Vec{X: -1, Y: -1})

	moved := w.Player.Hitbox.Center().Sub(start).Len()
	assert.InDelta(t, cfg.Player.Speed, moved, 1e-9)
}

func TestEnemiesStayInsideArena(t *testing.T) {
	cfg.Reset()
	level := assets.MustLoadEmbeddedLevel("arena")
	w := New(level, rand.New(rand.NewSource(12345)))
	bounds := level.Bounds()

	for i := 0; i < 3000; i++ {
		w.Step(geom.Zero)
		for _, e := range w.Enemies {
			require.GreaterOrEqual(t, e.Hitbox.X, bounds.X, "tick %d", i)
			require.GreaterOrEqual(t, e.Hitbox.Y, bounds.Y, "tick %d", i)
			require.LessOrEqual(t, e.Hitbox.Right(), bounds.Right(), "tick %d", i)
			require.LessOrEqual(t, e.Hitbox.Bottom(), bounds.Bottom(), "tick %d", i)

			l := e.Decision.Direction.Len()
			require.True(t, l == 0 || (l > 1-1e-9 && l < 1+1e-9), "tick %d: |dir| = %v", i, l)
		}
	}
}

func TestEnemiesCloseInOnPlayer(t *testing.T) {
	cfg.Reset()
	level := openLevel()
	w := New(level, rand.New(rand.NewSource(12345)))
	before := w.Enemies[0].Hitbox.Center().Sub(w.Player.Hitbox.Center()).Len()

	for i := 0; i < 120; i++ {
		w.Step(geom.Zero)
	}

	after := w.Enemies[0].Hitbox.Center().Sub(w.Player.Hitbox.Center()).Len()
	assert.Less(t, after, before)
}

func TestRespawnResetsEnemies(t *testing.T) {
	cfg.Reset()
	w := New(openLevel(), rand.New(rand.NewSource(12345)))
	start := w.Enemies[0].Hitbox
	for i := 0; i < 60; i++ {
		w.Step(geom.Zero)
	}
	require.NotEqual(t, start, w.Enemies[0].Hitbox)

	w.Respawn()

	require.Len(t, w.Enemies, 1)
	assert.Equal(t, start, w.Enemies[0].Hitbox)
	assert.Equal(t, 0, w.Enemies[0].Steering.Timer)
	assert.Equal(t, 1, w.ModeCounts()[steering.Idle])
}
