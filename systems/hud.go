package systems

import (
	"fmt"
	"strings"

	"github.com/automoto/chaser/components"
	cfg "github.com/automoto/chaser/config"
	"github.com/automoto/chaser/fonts"
	"github.com/automoto/chaser/steering"
	"github.com/automoto/chaser/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// ModeCounts tallies enemies by steering mode.
func ModeCounts(ecs *ecs.ECS) map[steering.Mode]int {
	counts := map[steering.Mode]int{}
	tags.Enemy.Each(ecs.World, func(e *donburi.Entry) {
		counts[components.Enemy.Get(e).Mode()]++
	})
	return counts
}

// HUDLines returns the status lines shown in the top-left corner.
func HUDLines(ecs *ecs.ECS) []string {
	lines := []string{}
	if entry, ok := components.Level.First(ecs.World); ok {
		lines = append(lines, fmt.Sprintf("level %s  seed %d", components.Level.Get(entry).CurrentLevel.Name, cfg.Steering.Seed))
	}

	counts := ModeCounts(ecs)
	var parts []string
	for m := steering.Idle; m <= steering.Following; m++ {
		if n := counts[m]; n > 0 {
			parts = append(parts, fmt.Sprintf("%s:%d", m, n))
		}
	}
	if len(parts) > 0 {
		lines = append(lines, strings.Join(parts, " "))
	}

	settings := GetOrCreateSettings(ecs)
	lines = append(lines, fmt.Sprintf("F1 hitboxes:%s  F2 probes:%s  R respawn  P pause",
		onOff(settings.ShowHitboxes), onOff(settings.ShowProbes)))
	return lines
}

// DrawHUD renders the HUD text.
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	face := fonts.HUD.Get()
	lineHeight := face.Metrics().Height.Ceil()
	margin := int(cfg.UI.HUDMargin)

	for i, line := range HUDLines(ecs) {
		text.Draw(screen, line, face, margin, margin+lineHeight*(i+1), cfg.UI.TextColor)
	}
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}
