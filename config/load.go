package config

import (
	"fmt"
	"maps"
	"os"

	"gopkg.in/yaml.v3"
)

// Snapshot is the overridable part of the configuration, laid out the way an
// override file is.
type Snapshot struct {
	Window   Config         `yaml:"window"`
	Steering SteeringConfig `yaml:"steering"`
	Enemy    EnemyConfig    `yaml:"enemy"`
	Player   PlayerConfig   `yaml:"player"`
	Level    LevelConfig    `yaml:"level"`
	Debug    DebugConfig    `yaml:"debug"`
}

// Current copies the live globals into a Snapshot.
func Current() Snapshot {
	enemy := Enemy
	enemy.Types = maps.Clone(Enemy.Types)
	return Snapshot{
		Window:   *C,
		Steering: Steering,
		Enemy:    enemy,
		Player:   Player,
		Level:    Level,
		Debug:    Debug,
	}
}

// Apply makes s the live configuration.
func Apply(s Snapshot) {
	window := s.Window
	C = &window
	Steering = s.Steering
	Enemy = s.Enemy
	Player = s.Player
	Level = s.Level
	Debug = s.Debug
}

// Parse overlays the YAML document in data onto base. Keys missing from the
// document keep their value from base.
func Parse(base Snapshot, data []byte) (Snapshot, error) {
	s := base
	s.Enemy.Types = maps.Clone(base.Enemy.Types)
	if err := yaml.Unmarshal(data, &s); err != nil {
		return base, fmt.Errorf("config: unmarshal: %w", err)
	}
	if err := s.Validate(); err != nil {
		return base, err
	}
	return s, nil
}

// LoadFile reads an override file on top of the built-in defaults. The live
// globals are not touched; call Apply with the result.
func LoadFile(path string) (Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Defaults(), fmt.Errorf("config: load %s: %w", path, err)
	}
	s, err := Parse(Defaults(), data)
	if err != nil {
		return s, fmt.Errorf("config: %s: %w", path, err)
	}
	return s, nil
}

// Validate rejects settings the game cannot run with.
func (s Snapshot) Validate() error {
	if s.Window.Width <= 0 || s.Window.Height <= 0 {
		return fmt.Errorf("window size %dx%d must be positive", s.Window.Width, s.Window.Height)
	}
	if s.Window.TPS <= 0 {
		return fmt.Errorf("window tps %d must be positive", s.Window.TPS)
	}
	if s.Steering.MinBound < 1 || s.Steering.MaxBound < s.Steering.MinBound {
		return fmt.Errorf("steering bounds [%d,%d] are invalid", s.Steering.MinBound, s.Steering.MaxBound)
	}
	if s.Steering.FollowChance < 0 || s.Steering.FollowChance > 1 {
		return fmt.Errorf("steering follow_chance %v outside [0,1]", s.Steering.FollowChance)
	}
	if _, ok := s.Enemy.Types[s.Enemy.DefaultType]; !ok {
		return fmt.Errorf("enemy default_type %q is not defined", s.Enemy.DefaultType)
	}
	for name, t := range s.Enemy.Types {
		if err := validHitbox(t.RenderWidth, t.RenderHeight, t.HitboxInsetX, t.HitboxInsetY); err != nil {
			return fmt.Errorf("enemy type %q: %w", name, err)
		}
	}
	if err := validHitbox(s.Player.RenderWidth, s.Player.RenderHeight, s.Player.HitboxInsetX, s.Player.HitboxInsetY); err != nil {
		return fmt.Errorf("player: %w", err)
	}
	if s.Level.SpaceCellSize <= 0 {
		return fmt.Errorf("level space_cell_size %d must be positive", s.Level.SpaceCellSize)
	}
	return nil
}

func validHitbox(w, h, insetX, insetY float64) error {
	if hw, hh := w-2*insetX, h-2*insetY; hw <= 0 || hh <= 0 {
		return fmt.Errorf("hitbox %vx%v (render %vx%v, inset %v,%v) must be positive", hw, hh, w, h, insetX, insetY)
	}
	return nil
}
