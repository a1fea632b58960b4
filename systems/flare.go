package systems

import (
	"image/color"
	"math"

	"github.com/automoto/neon-reverie/components"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// DrawFlares draws the drifting lens flares. The tween value, -1..1, slides the
// hot spot across the disc and breathes its brightness.
func DrawFlares(ecs *ecs.ECS, screen *ebiten.Image) {
	w := float64(screen.Bounds().Dx())
	h := float64(screen.Bounds().Dy())

	components.LensFlare.Each(ecs.World, func(e *donburi.Entry) {
		flare := components.LensFlare.Get(e).Flare
		sweep := float64(components.Tween.Get(e).Value)

		x, y := flare.Anchor.Resolve(w, h, flare.Size, flare.Size)
		r := flare.Size / 2
		cx, cy := x+r, y+r

		alpha := 0.85 + 0.15*math.Cos(sweep*math.Pi/2)
		// The blur carries the last stop out to a soft edge.
		stops := paletteStops(flare.Gradient, alpha)
		for i := range stops {
			stops[i].At *= 0.8
		}
		stops = append(stops, gradientStop{At: 1, Color: color.RGBA{}})
		hx := cx - r*0.35 + sweep*r*0.25
		hy := cy - r*0.35 + sweep*r*0.1
		fillRadialGradient(screen, hx, hy, r*1.3, r*1.3, stops)

		inner := r - 16
		if inner > 0 {
			strokePolygon(screen, circle(cx, cy, inner, 64), 1, rgba(255, 255, 255, 0.1))
		}
	})
}

func circle(cx, cy, r float64, segments int) []point {
	pts := make([]point, segments)
	for i := range pts {
		a := 2 * math.Pi * float64(i) / float64(segments)
		pts[i] = point{cx + math.Cos(a)*r, cy + math.Sin(a)*r}
	}
	return pts
}
