package steering

import (
	"math"

	"github.com/automoto/chaser/geom"
)

// Mode is the behavioral label of an actor, used to pick an animation.
type Mode int

const (
	Idle Mode = iota
	WanderUp
	WanderDown
	WanderLeft
	WanderRight
	Following
)

var modeNames = [...]string{
	Idle:        "idle",
	WanderUp:    "up",
	WanderDown:  "down",
	WanderLeft:  "left",
	WanderRight: "right",
	Following:   "following",
}

func (m Mode) String() string {
	if m < 0 || int(m) >= len(modeNames) {
		return "unknown"
	}
	return modeNames[m]
}

// ModeFor derives the mode label from a direction and whether that direction
// came from seeking the player. A zero direction is always Idle.
func ModeFor(dir geom.Vec, seeking bool) Mode {
	if dir.IsZero() {
		return Idle
	}
	if seeking {
		return Following
	}
	if math.Abs(dir.X) >= math.Abs(dir.Y) {
		if dir.X > 0 {
			return WanderRight
		}
		return WanderLeft
	}
	if dir.Y > 0 {
		return WanderDown
	}
	return WanderUp
}
