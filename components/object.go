package components

import (
	"github.com/automoto/chaser/geom"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// ObjectData is an entity's collision body. For actors its bounds are the
// hitbox.
type ObjectData struct {
	*resolv.Object
}

// Rect returns the object's bounds.
func (o ObjectData) Rect() geom.Rect {
	return geom.NewRect(o.X, o.Y, o.W, o.H)
}

// MoveTo places the object at r's position and refreshes its cells in the
// space.
func (o ObjectData) MoveTo(r geom.Rect) {
	o.X = r.X
	o.Y = r.Y
	o.Update()
}

var Object = donburi.NewComponentType[ObjectData]()
