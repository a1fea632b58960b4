package systems

import (
	"image/color"
	"math"

	"github.com/automoto/neon-reverie/components"
	"github.com/automoto/neon-reverie/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// Torso outline as fractions of its box, clockwise from the neck.
var torsoShape = []point{
	{0.52, 0}, {0.70, 0.12}, {0.64, 0.30}, {0.74, 0.55}, {0.62, 1},
	{0.52, 1}, {0.36, 1}, {0.26, 0.55}, {0.38, 0.30}, {0.32, 0.12},
}

const (
	heroHeadSize = 48
	heroTorsoW   = 0.72
)

// DrawHero draws the walking silhouette centered at the bottom of the scene.
// The torso sways about its base with the stride tween.
func DrawHero(ecs *ecs.ECS, screen *ebiten.Image) {
	entry, ok := tags.Hero.First(ecs.World)
	if !ok {
		return
	}
	hero := components.Hero.Get(entry)
	stride := float64(components.Tween.Get(entry).Value)

	w := float64(screen.Bounds().Dx())
	h := float64(screen.Bounds().Dy())
	boxH := h * hero.HeightFraction
	boxW := hero.Width
	boxY := h - hero.BottomMargin - boxH

	// Halo
	fillRadialGradient(screen, w/2, boxY+boxH/2+16, boxW*0.9, boxH*0.55, []gradientStop{
		{At: 0, Color: rgba(103, 232, 249, 0.3)},
		{At: 1, Color: color.RGBA{}},
	})

	// Head
	headX := w / 2
	headY := boxY + 8 + heroHeadSize/2
	headStops := []gradientStop{
		{At: 0, Color: rgba(251, 207, 232, 1)},
		{At: 0.5, Color: rgba(245, 208, 254, 0.6)},
		{At: 1, Color: rgba(192, 132, 252, 0.3)},
	}
	fillRadialGradient(screen, headX, headY, heroHeadSize*0.75, heroHeadSize*0.75, []gradientStop{
		{At: 0, Color: rgba(236, 72, 153, 0.35)},
		{At: 1, Color: color.RGBA{}},
	})
	head := circle(headX, headY, heroHeadSize/2, 48)
	top := headY - heroHeadSize/2
	fillPolygon(screen, head, func(p point) color.RGBA {
		return sampleStops(headStops, (p.Y-top)/heroHeadSize)
	})
	strokePolygon(screen, head, 1, rgba(255, 255, 255, 0.15))

	// Torso
	torsoW := boxW * heroTorsoW
	torsoTop := top + heroHeadSize - 12
	torsoH := boxY + boxH - torsoTop
	torsoX := (w - torsoW) / 2

	geo := ebiten.GeoM{}
	geo.Scale(torsoW, torsoH)
	geo.Translate(-torsoW/2, -torsoH)
	geo.Rotate(stride * math.Pi / 180)
	geo.Translate(torsoX+torsoW/2, torsoTop+torsoH)

	bodyStops := []gradientStop{
		{At: 0, Color: rgba(251, 207, 232, 0.7)},
		{At: 0.5, Color: rgba(224, 242, 254, 0.6)},
		{At: 1, Color: rgba(96, 165, 250, 0.4)},
	}
	body := transformPoints(torsoShape, geo)
	fillPolygon(screen, body, func(p point) color.RGBA {
		return sampleStops(bodyStops, (p.Y-torsoTop)/torsoH)
	})

	// Rim lights along each flank.
	rim := func(fx, from, to, width float64, c color.RGBA) {
		pts := transformPoints([]point{
			{fx, from}, {fx + width/torsoW, from}, {fx + width/torsoW, to}, {fx, to},
		}, geo)
		fillPolygon(screen, pts, solid(c))
	}
	rim(0.30, 0.28, 0.72, 2, rgba(255, 255, 255, 0.6))
	rim(0.68, 0.36, 0.64, 1.5, rgba(165, 243, 252, 0.5))
}
