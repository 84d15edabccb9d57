package systems

import (
	"github.com/automoto/chaser/components"
	cfg "github.com/automoto/chaser/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateFades advances spawn fade-in tweens by one tick.
func UpdateFades(ecs *ecs.ECS) {
	dt := float32(1) / float32(cfg.C.TPS)

	components.Fade.Each(ecs.World, func(e *donburi.Entry) {
		fade := components.Fade.Get(e)
		if fade.Tween == nil {
			return
		}
		alpha, done := fade.Tween.Update(dt)
		fade.Alpha = alpha
		if done {
			fade.Tween = nil
			fade.Alpha = 1
		}
	})
}
