package components

import (
	"github.com/automoto/chaser/collision"
	"github.com/automoto/chaser/geom"
	"github.com/yohamta/donburi"
)

// MovementData is what the collision system applies each tick.
type MovementData struct {
	Direction geom.Vec // Zero or unit length
	Speed     float64  // Pixels per tick
	LastMove  collision.Result
}

var Movement = donburi.NewComponentType[MovementData]()
