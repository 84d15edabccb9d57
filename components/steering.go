package components

import (
	"github.com/automoto/chaser/steering"
	"github.com/yohamta/donburi"
)

// SteeringData is the singleton holding the controller every enemy shares.
type SteeringData struct {
	Controller *steering.Controller
}

var Steering = donburi.NewComponentType[SteeringData]()
