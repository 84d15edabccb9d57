// Package sim runs the chase without a renderer or ECS: one player, the
// level's enemies, the same steering and collision code as the game.
package sim

import (
	"github.com/automoto/chaser/assets"
	"github.com/automoto/chaser/collision"
	cfg "github.com/automoto/chaser/config"
	"github.com/automoto/chaser/geom"
	"github.com/automoto/chaser/steering"
)

// Actor is a moving body. Hitbox is what collides; the player has no
// steering state.
type Actor struct {
	Type     string
	Hitbox   geom.Rect
	Speed    float64
	Steering steering.State
	Decision steering.Decision
	LastMove collision.Result
}

// Mode is derived from the steering state.
func (a *Actor) Mode() steering.Mode {
	return a.Steering.Mode()
}

type World struct {
	Level   *assets.Level
	Player  *Actor
	Enemies []*Actor
	Ticks   int

	controller *steering.Controller
}

// New builds a world from the current global config. A nil rng seeds one
// from cfg.Steering.Seed.
func New(level *assets.Level, rng steering.Rand) *World {
	w := &World{
		Level:      level,
		controller: steering.NewController(cfg.Steering.Tuning(), rng),
	}
	w.Player = &Actor{
		Type:   "player",
		Hitbox: hitbox(level.PlayerSpawn, cfg.Player.RenderWidth, cfg.Player.RenderHeight, cfg.Player.HitboxInsetX, cfg.Player.HitboxInsetY),
		Speed:  cfg.Player.Speed,
	}
	w.Respawn()
	return w
}

// Respawn replaces every enemy with a fresh one at its spawn point.
func (w *World) Respawn() {
	w.Enemies = w.Enemies[:0]
	for _, s := range w.Level.EnemySpawns {
		t := cfg.EnemyType(s.EnemyType)
		e := &Actor{
			Type:   t.Name,
			Hitbox: hitbox(s.Pos, t.RenderWidth, t.RenderHeight, t.HitboxInsetX, t.HitboxInsetY),
			Speed:  t.Speed,
		}
		w.controller.Reset(&e.Steering)
		w.Enemies = append(w.Enemies, e)
	}
}

// Step advances one tick. input is the player's raw direction; it is
// normalized here.
func (w *World) Step(input geom.Vec) {
	w.Ticks++
	obstacles := w.Level.Obstacles

	w.Player.LastMove = collision.Move(w.Player.Hitbox, input.Normalize(), w.Player.Speed, obstacles)
	w.Player.Hitbox = w.Player.LastMove.Box

	target := w.Player.Hitbox.Center()
	for _, e := range w.Enemies {
		e.Decision = w.controller.Tick(&e.Steering, e.Hitbox, &target, obstacles)
		e.LastMove = collision.Move(e.Hitbox, e.Decision.Direction, e.Speed, obstacles)
		e.Hitbox = e.LastMove.Box
	}
}

// ModeCounts tallies enemies by steering mode.
func (w *World) ModeCounts() map[steering.Mode]int {
	counts := map[steering.Mode]int{}
	for _, e := range w.Enemies {
		counts[e.Mode()]++
	}
	return counts
}

func hitbox(center geom.Vec, w, h, insetX, insetY float64) geom.Rect {
	return geom.CenteredAt(center, w, h).Inset(insetX, insetY)
}
