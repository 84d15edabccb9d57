package components

import (
	"github.com/automoto/chaser/geom"
	"github.com/yohamta/donburi"
)

type PlayerData struct {
	Facing geom.Vec // Last non-zero input direction
}

var Player = donburi.NewComponentType[PlayerData]()
