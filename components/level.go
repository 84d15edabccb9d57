package components

import (
	"github.com/automoto/chaser/assets"
	"github.com/automoto/chaser/geom"
	"github.com/yohamta/donburi"
)

type LevelData struct {
	CurrentLevel *assets.Level
	// Obstacles in level order. This is the enumeration order collisions
	// are resolved in.
	Obstacles []geom.Rect
}

var Level = donburi.NewComponentType[LevelData]()
