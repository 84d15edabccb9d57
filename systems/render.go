package systems

import (
	"image/color"

	"github.com/automoto/chaser/components"
	cfg "github.com/automoto/chaser/config"
	"github.com/automoto/chaser/geom"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// DrawLevel clears the screen and fills every obstacle.
func DrawLevel(ecs *ecs.ECS, screen *ebiten.Image) {
	screen.Fill(cfg.UI.BackgroundColor)

	for _, o := range levelObstacles(ecs) {
		fillRect(screen, o, cfg.UI.ObstacleColor)
	}
}

// DrawActors draws each actor's render rect, faded in while it spawns.
func DrawActors(ecs *ecs.ECS, screen *ebiten.Image) {
	components.Sprite.Each(ecs.World, func(e *donburi.Entry) {
		sprite := components.Sprite.Get(e)
		hitbox := components.Object.Get(e).Rect()

		c := sprite.Color
		if e.HasComponent(components.Fade) {
			c = fadeColor(c, components.Fade.Get(e).Alpha)
		}
		fillRect(screen, sprite.RenderRect(hitbox), c)
	})
}

// fadeColor scales a straight-alpha color to premultiplied at alpha.
func fadeColor(c color.RGBA, alpha float32) color.RGBA {
	if alpha >= 1 {
		return c
	}
	if alpha <= 0 {
		return color.RGBA{}
	}
	a := float32(c.A) * alpha
	return color.RGBA{
		R: uint8(float32(c.R) * a / 255),
		G: uint8(float32(c.G) * a / 255),
		B: uint8(float32(c.B) * a / 255),
		A: uint8(a),
	}
}

func fillRect(screen *ebiten.Image, r geom.Rect, c color.Color) {
	vector.FillRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), c, false)
}

func strokeRect(screen *ebiten.Image, r geom.Rect, c color.Color) {
	vector.StrokeRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), 1, c, false)
}
