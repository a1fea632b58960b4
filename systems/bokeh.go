package systems

import (
	"image/color"
	"math"

	"github.com/automoto/neon-reverie/components"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// DrawBokeh draws out-of-focus lights: soft discs, or rings for the smaller ones.
func DrawBokeh(ecs *ecs.ECS, screen *ebiten.Image) {
	w := float64(screen.Bounds().Dx())
	h := float64(screen.Bounds().Dy())

	components.Bokeh.Each(ecs.World, func(e *donburi.Entry) {
		light := components.Bokeh.Get(e).Light
		x, y := light.Anchor.Resolve(w, h, light.Radius*2, light.Radius*2)
		cx, cy := x+light.Radius, y+light.Radius
		c := light.Color.WithAlpha(light.Opacity)

		if light.Ring {
			// The ring is heavily defocused, so it reads as a soft band.
			fillRadialGradient(screen, cx, cy, light.Radius*1.25, light.Radius*1.25, []gradientStop{
				{At: 0, Color: scaleAlpha(c, 0.1)},
				{At: 0.55, Color: scaleAlpha(c, 0.25)},
				{At: 0.8, Color: c},
				{At: 1, Color: color.RGBA{}},
			})
			return
		}
		spread := light.Radius * math.Sqrt2
		fillRadialGradient(screen, cx, cy, spread, spread, []gradientStop{
			{At: 0, Color: c},
			{At: 0.5, Color: scaleAlpha(c, 0.55)},
			{At: 1, Color: color.RGBA{}},
		})
	})
}
