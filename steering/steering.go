// Package steering decides which way an enemy walks each tick.
//
// An actor keeps its direction for a randomized number of ticks. When the
// timer runs out, or a small probe ahead of the actor touches an obstacle, the
// controller picks again: usually straight at the player, sometimes a random
// cardinal direction or standing still.
package steering

import (
	"math/rand"

	"github.com/automoto/chaser/geom"
)

// Rand is the random source a Controller draws from. *rand.Rand satisfies it.
type Rand interface {
	Float64() float64
	Intn(n int) int
}

// Config tunes a Controller.
type Config struct {
	MinBound      int     // Fewest ticks between decisions
	MaxBound      int     // Most ticks between decisions (inclusive)
	FollowChance  float64 // Probability a decision seeks the player
	ProbeDistance float64 // How far ahead of the actor center the probe sits
	ProbeSize     float64 // Side length of the square probe
	Seed          int64   // Seed used when no Rand is supplied
}

// DefaultConfig returns the tuning used by the chase demo.
func DefaultConfig() Config {
	return Config{
		MinBound:      5,
		MaxBound:      10,
		FollowChance:  0.95,
		ProbeDistance: 10,
		ProbeSize:     4,
		Seed:          42,
	}
}

// wanderChoices is the uniform pool for non-seeking decisions.
var wanderChoices = [...]geom.Vec{geom.Up, geom.Down, geom.Left, geom.Right, geom.Zero}

// State is the per-actor steering memory.
type State struct {
	Timer     int
	Bound     int
	Direction geom.Vec // Always zero or unit length
	Seeking   bool     // Direction came from seeking the player
}

// Mode returns the label for the state's current direction.
func (s *State) Mode() Mode {
	return ModeFor(s.Direction, s.Seeking)
}

// Decision is the outcome of one Tick.
type Decision struct {
	Direction geom.Vec
	Mode      Mode
	Redecided bool      // A new direction was chosen this tick
	ProbeHit  bool      // The look-ahead probe touched an obstacle
	Probe     geom.Rect // The probe that was tested, for debug drawing
}

type Controller struct {
	cfg Config
	rng Rand
}

// NewController returns a controller drawing from rng. A nil rng gets a
// private source seeded from cfg.Seed.
func NewController(cfg Config, rng Rand) *Controller {
	if cfg.MaxBound < cfg.MinBound {
		cfg.MaxBound = cfg.MinBound
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(cfg.Seed))
	}
	return &Controller{cfg: cfg, rng: rng}
}

// Config returns the controller's tuning.
func (c *Controller) Config() Config {
	return c.cfg
}

// SetConfig swaps the tuning in place. The random source and any running
// timers are kept; new bounds apply from the next re-decision.
func (c *Controller) SetConfig(cfg Config) {
	if cfg.MaxBound < cfg.MinBound {
		cfg.MaxBound = cfg.MinBound
	}
	c.cfg = cfg
}

// Reset clears the state and draws a fresh bound so a newly spawned actor
// makes its first decision after a normal wait.
func (c *Controller) Reset(s *State) {
	*s = State{Bound: c.nextBound()}
}

// Probe returns the look-ahead rectangle for an actor occupying self and
// heading in dir.
func (c *Controller) Probe(self geom.Rect, dir geom.Vec) geom.Rect {
	center := self.Center().Add(dir.Scale(c.cfg.ProbeDistance))
	return geom.CenteredAt(center, c.cfg.ProbeSize, c.cfg.ProbeSize)
}

// Tick advances s by one frame. self is the actor's hitbox, player the
// player's center (nil when there is no player) and obstacles the static
// boxes the probe is tested against.
func (c *Controller) Tick(s *State, self geom.Rect, player *geom.Vec, obstacles []geom.Rect) Decision {
	s.Timer++

	probe := c.Probe(self, s.Direction)
	hit := probeBlocked(probe, obstacles)

	d := Decision{ProbeHit: hit, Probe: probe}
	if s.Timer >= s.Bound || hit {
		s.Timer = 0
		s.Bound = c.nextBound()
		s.Direction, s.Seeking = c.choose(self, player)
		d.Redecided = true
	}

	d.Direction = s.Direction
	d.Mode = s.Mode()
	return d
}

func (c *Controller) nextBound() int {
	return c.cfg.MinBound + c.rng.Intn(c.cfg.MaxBound-c.cfg.MinBound+1)
}

func (c *Controller) choose(self geom.Rect, player *geom.Vec) (geom.Vec, bool) {
	if c.rng.Float64() < c.cfg.FollowChance {
		if self.W <= 0 || self.H <= 0 {
			return geom.Zero, true
		}
		return Seek(self.Center(), player), true
	}
	return wanderChoices[c.rng.Intn(len(wanderChoices))], false
}

// Seek returns the unit vector from from to the player, or zero when there is
// no player or the two points coincide.
func Seek(from geom.Vec, player *geom.Vec) geom.Vec {
	if player == nil {
		return geom.Zero
	}
	return player.Sub(from).Normalize()
}

func probeBlocked(probe geom.Rect, obstacles []geom.Rect) bool {
	for _, o := range obstacles {
		if probe.Intersects(o) {
			return true
		}
	}
	return false
}
