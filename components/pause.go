package components

import "github.com/yohamta/donburi"

// PauseData stores the pause state and whether the player asked to quit.
type PauseData struct {
	IsPaused bool
	Quit     bool
}

var Pause = donburi.NewComponentType[PauseData]()
