package components

import (
	"image/color"

	"github.com/automoto/chaser/geom"
	"github.com/yohamta/donburi"
)

// SpriteData describes the render rectangle drawn around an actor's hitbox.
type SpriteData struct {
	Color  color.RGBA
	InsetX float64 // Hitbox inset from the render rect on each side
	InsetY float64
}

// RenderRect grows hitbox back out to the rectangle that is drawn.
func (s SpriteData) RenderRect(hitbox geom.Rect) geom.Rect {
	return hitbox.Inset(-s.InsetX, -s.InsetY)
}

var Sprite = donburi.NewComponentType[SpriteData]()
