package systems

import (
	"image/color"
	"math"

	cfg "github.com/automoto/neon-reverie/config"
	"github.com/automoto/neon-reverie/layout"
	"github.com/hajimehoshi/ebiten/v2"
)

// rgba builds a premultiplied color from straight components.
func rgba(r, g, b uint8, a float64) color.RGBA {
	return cfg.Fade(color.RGBA{R: r, G: g, B: b, A: 255}, a)
}

// paletteStops spreads scene colors evenly, faded by alpha.
func paletteStops(cs []layout.Color, alpha float64) []gradientStop {
	colors := make([]color.RGBA, len(cs))
	for i, c := range cs {
		colors[i] = c.WithAlpha(alpha)
	}
	return evenStops(colors...)
}

// farthestCorner is the radius of a circle centered at cx, cy that reaches
// every corner of the w x h box at the origin.
func farthestCorner(cx, cy, w, h float64) float64 {
	return math.Max(
		math.Max(math.Hypot(cx, cy), math.Hypot(w-cx, cy)),
		math.Max(math.Hypot(cx, h-cy), math.Hypot(w-cx, h-cy)),
	)
}

// glowSpot draws a circular glow at a fraction of the box that fades to
// nothing at reach (a fraction of the farthest-corner radius).
func glowSpot(dst *ebiten.Image, x, y, w, h, fx, fy float64, c color.RGBA, reach float64) {
	cx, cy := x+w*fx, y+h*fy
	r := farthestCorner(w*fx, h*fy, w, h) * reach
	fillRadialGradient(dst, cx, cy, r, r, []gradientStop{
		{At: 0, Color: c},
		{At: 1, Color: color.RGBA{}},
	})
}
