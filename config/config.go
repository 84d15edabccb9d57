package config

import (
	"image/color"

	"github.com/automoto/chaser/steering"
)

// Config holds general window configuration
type Config struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
	TPS    int    `yaml:"tps"` // Ticks per second; steering timers count these
}

// SteeringConfig tunes the enemy direction picker
type SteeringConfig struct {
	MinBound      int     `yaml:"min_bound"`      // Fewest ticks between decisions
	MaxBound      int     `yaml:"max_bound"`      // Most ticks between decisions (inclusive)
	FollowChance  float64 `yaml:"follow_chance"`  // Probability a decision seeks the player
	ProbeDistance float64 `yaml:"probe_distance"` // Look-ahead distance from the enemy center
	ProbeSize     float64 `yaml:"probe_size"`     // Side of the square look-ahead probe
	Seed          int64   `yaml:"seed"`           // Seed for the shared steering source
}

// Tuning converts the settings for steering.NewController.
func (c SteeringConfig) Tuning() steering.Config {
	return steering.Config{
		MinBound:      c.MinBound,
		MaxBound:      c.MaxBound,
		FollowChance:  c.FollowChance,
		ProbeDistance: c.ProbeDistance,
		ProbeSize:     c.ProbeSize,
		Seed:          c.Seed,
	}
}

// EnemyTypeConfig contains configuration for specific enemy types
type EnemyTypeConfig struct {
	Name  string  `yaml:"name"`
	Speed float64 `yaml:"speed"` // Pixels per tick

	// Dimensions
	RenderWidth  float64 `yaml:"render_width"`
	RenderHeight float64 `yaml:"render_height"`
	HitboxInsetX float64 `yaml:"hitbox_inset_x"` // Trimmed from each side of the render rect
	HitboxInsetY float64 `yaml:"hitbox_inset_y"`

	// Visual
	TintColor     color.RGBA `yaml:"tint"`
	FadeInSeconds float32    `yaml:"fade_in_seconds"`
}

// EnemyConfig contains enemy system configuration
type EnemyConfig struct {
	// Entries in an override file replace a whole type.
	Types       map[string]EnemyTypeConfig `yaml:"types"`
	DefaultType string                     `yaml:"default_type"`
}

// PlayerConfig contains all player-related configuration values
type PlayerConfig struct {
	Speed        float64    `yaml:"speed"`
	RenderWidth  float64    `yaml:"render_width"`
	RenderHeight float64    `yaml:"render_height"`
	HitboxInsetX float64    `yaml:"hitbox_inset_x"`
	HitboxInsetY float64    `yaml:"hitbox_inset_y"`
	Color        color.RGBA `yaml:"color"`
}

// LevelConfig selects the level and sizes the collision space
type LevelConfig struct {
	Name          string `yaml:"name"` // TMX stem under assets/levels
	SpaceCellSize int    `yaml:"space_cell_size"`
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	ShowHitboxes bool `yaml:"show_hitboxes"`
	ShowProbes   bool `yaml:"show_probes"`
	LogDecisions bool `yaml:"log_decisions"` // Log every steering re-decision at debug level
}

// UIConfig contains HUD configuration values
type UIConfig struct {
	BackgroundColor   color.RGBA
	ObstacleColor     color.RGBA
	HitboxColor       color.RGBA
	ProbeColor        color.RGBA
	ProbeHitColor     color.RGBA
	TextColor         color.RGBA
	PauseOverlayColor color.RGBA
	HUDFontSize       float64
	HUDTitleSize      float64
	HUDMargin         float64
}

// Global configuration instances
var C *Config
var Steering SteeringConfig
var Enemy EnemyConfig
var Player PlayerConfig
var Level LevelConfig
var Debug DebugConfig
var UI UIConfig

// Shared RGBA color constants
var (
	White     = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Grey      = color.RGBA{R: 100, G: 100, B: 100, A: 255}
	Red       = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	LightRed  = color.RGBA{R: 255, G: 60, B: 60, A: 255}
	Orange    = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	Yellow    = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	Green     = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	Cyan      = color.RGBA{R: 0, G: 255, B: 255, A: 255}
	Blue      = color.RGBA{R: 0, G: 100, B: 255, A: 255}
	Purple    = color.RGBA{R: 128, G: 0, B: 255, A: 255}
	DarkNavy  = color.RGBA{R: 15, G: 25, B: 50, A: 255}
	LightBlue = color.RGBA{R: 100, G: 180, B: 255, A: 255}
)

func init() {
	Reset()
}

// Reset restores every global to its built-in default.
func Reset() {
	Apply(Defaults())

	UI = UIConfig{
		BackgroundColor:   DarkNavy,
		ObstacleColor:     Grey,
		HitboxColor:       Cyan,
		ProbeColor:        Green,
		ProbeHitColor:     Red,
		TextColor:         White,
		PauseOverlayColor: color.RGBA{R: 0, G: 0, B: 0, A: 160},
		HUDFontSize:       12,
		HUDTitleSize:      24,
		HUDMargin:         8,
	}
}

// Defaults returns the built-in configuration without touching the globals.
func Defaults() Snapshot {
	chaserType := EnemyTypeConfig{
		Name:          "Chaser",
		Speed:         1.5,
		RenderWidth:   32,
		RenderHeight:  32,
		HitboxInsetX:  6,
		HitboxInsetY:  4,
		TintColor:     LightRed,
		FadeInSeconds: 0.5,
	}

	runnerType := EnemyTypeConfig{
		Name:          "Runner",
		Speed:         2.5,
		RenderWidth:   24,
		RenderHeight:  24,
		HitboxInsetX:  4,
		HitboxInsetY:  3,
		TintColor:     Yellow,
		FadeInSeconds: 0.3,
	}

	bruteType := EnemyTypeConfig{
		Name:          "Brute",
		Speed:         1.0,
		RenderWidth:   48,
		RenderHeight:  48,
		HitboxInsetX:  8,
		HitboxInsetY:  6,
		TintColor:     Purple,
		FadeInSeconds: 0.8,
	}

	return Snapshot{
		Window: Config{
			Width:  640,
			Height: 360,
			Title:  "Chaser",
			TPS:    60,
		},
		Steering: SteeringConfig{
			MinBound:      5,
			MaxBound:      10,
			FollowChance:  0.95,
			ProbeDistance: 10,
			ProbeSize:     4,
			Seed:          42,
		},
		Enemy: EnemyConfig{
			Types: map[string]EnemyTypeConfig{
				"Chaser": chaserType,
				"Runner": runnerType,
				"Brute":  bruteType,
			},
			DefaultType: "Chaser",
		},
		Player: PlayerConfig{
			Speed:        2.0,
			RenderWidth:  32,
			RenderHeight: 32,
			HitboxInsetX: 6,
			HitboxInsetY: 4,
			Color:        LightBlue,
		},
		Level: LevelConfig{
			Name:          "arena",
			SpaceCellSize: 16,
		},
		Debug: DebugConfig{
			ShowHitboxes: false,
			ShowProbes:   false,
			LogDecisions: false,
		},
	}
}

// EnemyType returns the named enemy type, falling back to the default type.
func EnemyType(name string) EnemyTypeConfig {
	if t, ok := Enemy.Types[name]; ok {
		return t
	}
	return Enemy.Types[Enemy.DefaultType]
}
