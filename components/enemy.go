package components

import (
	"github.com/automoto/chaser/config"
	"github.com/automoto/chaser/steering"
	"github.com/yohamta/donburi"
)

type EnemyData struct {
	TypeName   string                  // "Chaser", "Runner", "Brute"
	TypeConfig *config.EnemyTypeConfig // Cached reference to type configuration

	Steering     steering.State
	LastDecision steering.Decision // Kept for the probe overlay and HUD
}

// Mode is derived from the steering state, never stored.
func (e *EnemyData) Mode() steering.Mode {
	return e.Steering.Mode()
}

var Enemy = donburi.NewComponentType[EnemyData]()
