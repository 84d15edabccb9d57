package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// FadeData fades an actor in after it spawns.
type FadeData struct {
	Tween *gween.Tween
	Alpha float32 // Current opacity, 0..1
}

var Fade = donburi.NewComponentType[FadeData]()
