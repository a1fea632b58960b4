package systems

import (
	"image/color"
	"math"
	"slices"

	"github.com/automoto/neon-reverie/assets"
	"github.com/automoto/neon-reverie/components"
	cfg "github.com/automoto/neon-reverie/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Building layers span past both edges of the scene and start below the sky.
const (
	buildingOverhang = 0.12
	buildingTop      = 0.18
)

// DrawSky paints the night gradient and the two colored glows behind the city.
func DrawSky(ecs *ecs.ECS, screen *ebiten.Image) {
	w := float64(screen.Bounds().Dx())
	h := float64(screen.Bounds().Dy())

	screen.Fill(cfg.Scene.BackgroundColor)
	fillLinearGradient(screen, 0, 0, w, h, []gradientStop{
		{At: 0.1, Color: rgba(2, 6, 23, 0.85)},
		{At: 1, Color: rgba(0, 0, 0, 0.92)},
	}, toBottom)
	glowSpot(screen, 0, 0, w, h, 0.25, 0.15, rgba(236, 72, 153, 0.22), 0.45)
	glowSpot(screen, 0, 0, w, h, 0.75, 0.10, rgba(6, 182, 212, 0.24), 0.5)
	fillLinearGradient(screen, 0, 0, w, h, []gradientStop{
		{At: 0, Color: rgba(56, 189, 248, 0.06)},
		{At: 0.55, Color: color.RGBA{}},
	}, toBottomRight)
}

// DrawBuildings draws each skyline layer back to front. Layers are rendered and
// blurred once, then composited at their opacity every frame.
func DrawBuildings(ecs *ecs.ECS, screen *ebiten.Image) {
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()

	var layers []*components.BuildingLayerData
	components.BuildingLayer.Each(ecs.World, func(e *donburi.Entry) {
		layers = append(layers, components.BuildingLayer.Get(e))
	})
	slices.SortFunc(layers, func(a, b *components.BuildingLayerData) int {
		return a.Depth - b.Depth
	})

	for _, l := range layers {
		if l.Cache == nil || l.Cache.Bounds().Dx() != w || l.Cache.Bounds().Dy() != h {
			l.Cache = renderBuildingLayer(l, w, h)
		}
		op := &ebiten.DrawImageOptions{}
		op.ColorScale.ScaleAlpha(float32(l.Layer.Opacity))
		screen.DrawImage(l.Cache, op)
	}
}

// skylineMask is the fade applied from the top of a layer (0) to its base (1).
var skylineMask = []gradientStop{
	{At: 0, Color: color.RGBA{A: 230}},
	{At: 0.82, Color: color.RGBA{A: 115}},
	{At: 1, Color: color.RGBA{}},
}

func renderBuildingLayer(l *components.BuildingLayerData, w, h int) *ebiten.Image {
	fw, fh := float64(w), float64(h)
	boxX := -fw * buildingOverhang
	boxW := fw * (1 + 2*buildingOverhang)
	boxY := fh*buildingTop + l.Layer.OffsetY*fh
	boxH := fh - fh*buildingTop
	stops := paletteStops(l.Layer.Gradient, 1)

	colorAt := func(p point) color.RGBA {
		c := sampleStops(stops, gradientT(toBottomRight, p, boxX, boxY, boxW, boxH))
		v := (p.Y - boxY) / boxH
		return scaleAlpha(c, float64(sampleStops(skylineMask, v).A)/255)
	}

	src := ebiten.NewImage(w, h)

	windows := &quadBatch{}
	for _, t := range l.Towers {
		x := boxX + t.X*boxW
		tw := t.Width * boxW
		top := boxY + boxH*(1-t.Height)
		fillPolygon(src, towerOutline(x, top, tw, boxY+boxH), colorAt)

		size, gap := cfg.Skyline.WindowSize, cfg.Skyline.WindowGap
		cols := int((tw - gap) / (size + gap))
		rows := int((boxY + boxH - top - gap) / (size + gap))
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				if !t.WindowLit(r, c, cfg.Skyline.WindowChance) {
					continue
				}
				wx := x + gap + float64(c)*(size+gap)
				wy := top + gap + float64(r)*(size+gap)
				lit := colorAt(point{wx, wy})
				windows.add(src, wx, wy, size, size, lighten(lit, 0.55))
			}
		}
	}
	windows.flush(src)

	out := ebiten.NewImage(w, h)
	radius := l.Layer.Blur
	drawShaded(out, src, assets.GlowShader, radius, 1, 0, 1)
	return out
}

// towerOutline subdivides the sides of a tower so the vertical mask keeps its shape.
func towerOutline(x, top, width, base float64) []point {
	var left, right []point
	for _, s := range skylineMask {
		y := top + (base-top)*s.At
		right = append(right, point{x + width, y})
		left = append(left, point{x, y})
	}
	pts := make([]point, 0, len(left)+len(right))
	pts = append(pts, right...)
	for i := len(left) - 1; i >= 0; i-- {
		pts = append(pts, left[i])
	}
	return pts
}

// lighten mixes a premultiplied color toward white of the same alpha.
func lighten(c color.RGBA, f float64) color.RGBA {
	white := color.RGBA{R: c.A, G: c.A, B: c.A, A: c.A}
	return lerpColor(c, white, f)
}

// quadBatch collects axis-aligned rectangles into as few draws as the 16-bit
// index buffer allows.
type quadBatch struct {
	vs []ebiten.Vertex
	is []uint16
}

const maxBatchQuads = math.MaxUint16 / 4

func (b *quadBatch) add(dst *ebiten.Image, x, y, w, h float64, c color.RGBA) {
	if len(b.vs)/4 >= maxBatchQuads {
		b.flush(dst)
	}
	base := uint16(len(b.vs))
	b.vs = append(b.vs,
		vertex(point{x, y}, c),
		vertex(point{x + w, y}, c),
		vertex(point{x, y + h}, c),
		vertex(point{x + w, y + h}, c),
	)
	b.is = append(b.is, base, base+1, base+2, base+1, base+3, base+2)
}

func (b *quadBatch) flush(dst *ebiten.Image) {
	drawMesh(dst, b.vs, b.is)
	b.vs = b.vs[:0]
	b.is = b.is[:0]
}

// DrawHaze lays the ground fog and colored light spill over the skyline.
func DrawHaze(ecs *ecs.ECS, screen *ebiten.Image) {
	w := float64(screen.Bounds().Dx())
	h := float64(screen.Bounds().Dy())

	fogH := h * 0.42
	fillLinearGradient(screen, 0, h-fogH, w, fogH, []gradientStop{
		{At: 0, Color: cfg.Slate950},
		{At: 0.5, Color: cfg.Fade(cfg.Slate900, 0.8)},
		{At: 1, Color: color.RGBA{}},
	}, toTop)

	// Flattened so the spill stays inside the bottom band.
	spillH := h * 0.3
	r := farthestCorner(w/2, spillH/2, w, spillH)
	fillRadialGradient(screen, w/2, h-spillH/2, r, spillH/2/0.7, []gradientStop{
		{At: 0, Color: rgba(37, 99, 235, 0.3)},
		{At: 0.45, Color: rgba(14, 116, 144, 0.08)},
		{At: 0.7, Color: color.RGBA{}},
	})

	glowSpot(screen, 0, 0, w, h, 0.2, 0.25, rgba(244, 114, 182, 0.25), 0.5)
	glowSpot(screen, 0, 0, w, h, 0.8, 0.2, rgba(56, 189, 248, 0.18), 0.52)
}
