package systems

import (
	"image/color"

	"github.com/automoto/neon-reverie/components"
	cfg "github.com/automoto/neon-reverie/config"
	"github.com/automoto/neon-reverie/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// DrawPavement draws the wet street: a dark floor, pooled reflections of the
// signs, a skewed sheen and a neon strip along the curb.
func DrawPavement(ecs *ecs.ECS, screen *ebiten.Image) {
	entry, ok := tags.Pavement.First(ecs.World)
	if !ok {
		return
	}
	pavement := components.Pavement.Get(entry)

	w := float64(screen.Bounds().Dx())
	h := float64(screen.Bounds().Dy())
	ph := h * pavement.HeightFraction
	py := h - ph

	fillLinearGradient(screen, 0, py, w, ph, []gradientStop{
		{At: 0, Color: cfg.Slate900},
		{At: 0.5, Color: cfg.Fade(cfg.Slate900, 0.9)},
		{At: 1, Color: color.RGBA{}},
	}, toTop)

	glowSpot(screen, 0, py, w, ph, 0.40, 0.80, rgba(244, 114, 182, 0.25), 0.6)
	glowSpot(screen, 0, py, w, ph, 0.65, 0.85, rgba(56, 189, 248, 0.22), 0.65)

	// Sheen, sheared by about 18 degrees and clipped to the street.
	sheenX := -w * 0.3
	sheenW := w * 1.6
	sheenH := ph * 2.2
	sheenStops := []gradientStop{
		{At: 0, Color: rgba(59, 130, 246, 0.15*0.8)},
		{At: 0.34, Color: rgba(236, 72, 153, 0.06*0.8)},
		{At: 0.68, Color: color.RGBA{}},
	}
	geo := ebiten.GeoM{}
	geo.Skew(0, 0.32)
	geo.Translate(0, h-sheenH-w*0.32/2)
	sheen := transformPoints([]point{
		{sheenX, 0}, {sheenX + sheenW, 0}, {sheenX + sheenW, sheenH}, {sheenX, sheenH},
	}, geo)
	clipTop := py
	fillPolygon(screen, clipPolygonTop(sheen, clipTop), func(p point) color.RGBA {
		return sampleStops(sheenStops, (p.Y-clipTop)/(h-clipTop))
	})

	fillLinearGradient(screen, 0, h-8-80, w, 80, evenStops(
		rgba(255, 255, 255, 0.1*0.6), color.RGBA{}, rgba(255, 255, 255, 0.1*0.6),
	), toRight)
	fillLinearGradient(screen, 0, h-6, w, 6, evenStops(
		rgba(103, 232, 249, 0.6), rgba(244, 114, 182, 0.8), rgba(192, 132, 252, 0.7),
	), toRight)
}

// clipPolygonTop keeps the part of a convex polygon at or below y.
func clipPolygonTop(pts []point, y float64) []point {
	var out []point
	for i := range pts {
		a, b := pts[i], pts[(i+1)%len(pts)]
		aIn, bIn := a.Y >= y, b.Y >= y
		if aIn {
			out = append(out, a)
		}
		if aIn != bIn {
			t := (y - a.Y) / (b.Y - a.Y)
			out = append(out, point{a.X + (b.X-a.X)*t, y})
		}
	}
	return out
}
