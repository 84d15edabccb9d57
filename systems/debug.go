package systems

import (
	"github.com/automoto/chaser/components"
	cfg "github.com/automoto/chaser/config"
	"github.com/automoto/chaser/geom"
	"github.com/automoto/chaser/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// DrawDebug outlines collision objects and steering probes when the overlays
// are on.
func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	settings := GetOrCreateSettings(ecs)

	if settings.ShowHitboxes {
		if spaceEntry, ok := components.Space.First(ecs.World); ok {
			space := components.Space.Get(spaceEntry)
			for _, obj := range space.Objects() {
				c := cfg.UI.HitboxColor
				if obj.HasTags(tags.ResolvSolid) {
					c = cfg.White
				} else if obj.HasTags(tags.ResolvPlayer) {
					c = cfg.Blue
				} else if obj.HasTags(tags.ResolvEnemy) {
					c = cfg.Orange
				}
				strokeRect(screen, geom.NewRect(obj.X, obj.Y, obj.W, obj.H), c)
			}
		}
	}

	if settings.ShowProbes {
		tags.Enemy.Each(ecs.World, func(e *donburi.Entry) {
			d := components.Enemy.Get(e).LastDecision
			if d.Probe.W == 0 {
				return
			}
			c := cfg.UI.ProbeColor
			if d.ProbeHit {
				c = cfg.UI.ProbeHitColor
			}
			fillRect(screen, d.Probe, c)
		})
	}
}
