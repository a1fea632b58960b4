package systems

import (
	"image"
	"image/color"
	"math"
	"slices"

	"github.com/hajimehoshi/ebiten/v2"
)

var (
	whiteImage    = ebiten.NewImage(3, 3)
	whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
)

func init() {
	whiteImage.Fill(color.White)
}

// point is a polygon vertex in destination pixels.
type point struct {
	X, Y float64
}

// gradientStop places a premultiplied color at a position along a gradient.
type gradientStop struct {
	At    float64
	Color color.RGBA
}

// evenStops spreads colors evenly from 0 to 1.
func evenStops(colors ...color.RGBA) []gradientStop {
	stops := make([]gradientStop, len(colors))
	for i, c := range colors {
		at := 0.0
		if len(colors) > 1 {
			at = float64(i) / float64(len(colors)-1)
		}
		stops[i] = gradientStop{At: at, Color: c}
	}
	return stops
}

// sampleStops returns the interpolated color at t.
func sampleStops(stops []gradientStop, t float64) color.RGBA {
	if len(stops) == 0 {
		return color.RGBA{}
	}
	if t <= stops[0].At {
		return stops[0].Color
	}
	for i := 1; i < len(stops); i++ {
		if t <= stops[i].At {
			a, b := stops[i-1], stops[i]
			span := b.At - a.At
			if span <= 0 {
				return b.Color
			}
			return lerpColor(a.Color, b.Color, (t-a.At)/span)
		}
	}
	return stops[len(stops)-1].Color
}

func lerpColor(a, b color.RGBA, t float64) color.RGBA {
	mix := func(x, y uint8) uint8 {
		return uint8(math.Round(float64(x) + (float64(y)-float64(x))*t))
	}
	return color.RGBA{R: mix(a.R, b.R), G: mix(a.G, b.G), B: mix(a.B, b.B), A: mix(a.A, b.A)}
}

// scaleAlpha fades a premultiplied color.
func scaleAlpha(c color.RGBA, f float64) color.RGBA {
	f = math.Max(0, math.Min(1, f))
	return color.RGBA{
		R: uint8(float64(c.R) * f),
		G: uint8(float64(c.G) * f),
		B: uint8(float64(c.B) * f),
		A: uint8(float64(c.A) * f),
	}
}

func vertex(p point, c color.RGBA) ebiten.Vertex {
	return ebiten.Vertex{
		DstX:   float32(p.X),
		DstY:   float32(p.Y),
		SrcX:   1,
		SrcY:   1,
		ColorR: float32(c.R) / 255,
		ColorG: float32(c.G) / 255,
		ColorB: float32(c.B) / 255,
		ColorA: float32(c.A) / 255,
	}
}

func drawMesh(dst *ebiten.Image, vs []ebiten.Vertex, is []uint16) {
	if len(is) == 0 {
		return
	}
	op := &ebiten.DrawTrianglesOptions{}
	op.ColorScaleMode = ebiten.ColorScaleModePremultipliedAlpha
	op.AntiAlias = true
	dst.DrawTriangles(vs, is, whiteSubImage, op)
}

// gradientDir picks the axis a linear gradient runs along.
type gradientDir int

const (
	toBottom gradientDir = iota
	toTop
	toRight
	toBottomRight
)

// gradientT projects p inside the box onto the gradient axis.
func gradientT(dir gradientDir, p point, x, y, w, h float64) float64 {
	u, v := (p.X-x)/w, (p.Y-y)/h
	switch dir {
	case toTop:
		return 1 - v
	case toRight:
		return u
	case toBottomRight:
		return (u + v) / 2
	default:
		return v
	}
}

// fillLinearGradient fills a rectangle. Rows or columns are added at each stop
// so multi-stop gradients keep their shape.
func fillLinearGradient(dst *ebiten.Image, x, y, w, h float64, stops []gradientStop, dir gradientDir) {
	if w <= 0 || h <= 0 || len(stops) == 0 {
		return
	}
	// Split along both axes at every stop, so each cell is a bilinear patch.
	cuts := make([]float64, 0, len(stops)+2)
	cuts = append(cuts, 0)
	for _, s := range stops {
		if s.At > 0 && s.At < 1 {
			cuts = append(cuts, s.At)
		}
	}
	cuts = append(cuts, 1)

	var vs []ebiten.Vertex
	var is []uint16
	n := len(cuts)
	for j := 0; j < n; j++ {
		for i := 0; i < n; i++ {
			p := point{X: x + w*cuts[i], Y: y + h*cuts[j]}
			vs = append(vs, vertex(p, sampleStops(stops, gradientT(dir, p, x, y, w, h))))
		}
	}
	for j := 0; j < n-1; j++ {
		for i := 0; i < n-1; i++ {
			a := uint16(j*n + i)
			b, c, d := a+1, a+uint16(n), a+uint16(n)+1
			is = append(is, a, b, c, b, d, c)
		}
	}
	drawMesh(dst, vs, is)
}

// fillRadialGradient fills an ellipse centered at cx, cy with stops running
// from the center (0) to the rim (1).
func fillRadialGradient(dst *ebiten.Image, cx, cy, rx, ry float64, stops []gradientStop) {
	if rx <= 0 || ry <= 0 || len(stops) == 0 {
		return
	}
	const segments = 48
	rings := evenRings(stops)

	vs := []ebiten.Vertex{vertex(point{cx, cy}, sampleStops(stops, 0))}
	var is []uint16
	for r, t := range rings {
		c := sampleStops(stops, t)
		for s := 0; s < segments; s++ {
			a := 2 * math.Pi * float64(s) / segments
			vs = append(vs, vertex(point{cx + math.Cos(a)*rx*t, cy + math.Sin(a)*ry*t}, c))
		}
		base := uint16(1 + r*segments)
		for s := 0; s < segments; s++ {
			next := uint16((s + 1) % segments)
			cur := uint16(s)
			if r == 0 {
				is = append(is, 0, base+cur, base+next)
				continue
			}
			prev := base - segments
			is = append(is, prev+cur, base+cur, base+next, prev+cur, base+next, prev+next)
		}
	}
	drawMesh(dst, vs, is)
}

// evenRings returns ring radii covering every stop plus intermediate rings so
// the falloff reads as smooth.
func evenRings(stops []gradientStop) []float64 {
	const steps = 8
	var rings []float64
	for i := 1; i <= steps; i++ {
		rings = append(rings, float64(i)/steps)
	}
	for _, s := range stops {
		if s.At > 0 && s.At < 1 {
			rings = append(rings, s.At)
		}
	}
	slices.Sort(rings)
	return rings
}

// fillPolygon fills a star-shaped polygon by fanning from its centroid, with
// each vertex colored by colorAt.
func fillPolygon(dst *ebiten.Image, pts []point, colorAt func(point) color.RGBA) {
	if len(pts) < 3 {
		return
	}
	var c point
	for _, p := range pts {
		c.X += p.X
		c.Y += p.Y
	}
	c.X /= float64(len(pts))
	c.Y /= float64(len(pts))

	vs := make([]ebiten.Vertex, 0, len(pts)+1)
	vs = append(vs, vertex(c, colorAt(c)))
	for _, p := range pts {
		vs = append(vs, vertex(p, colorAt(p)))
	}
	is := make([]uint16, 0, len(pts)*3)
	for i := range pts {
		is = append(is, 0, uint16(1+i), uint16(1+(i+1)%len(pts)))
	}
	drawMesh(dst, vs, is)
}

func solid(c color.RGBA) func(point) color.RGBA {
	return func(point) color.RGBA { return c }
}

// strokePolygon outlines a closed polygon, joining consecutive points.
func strokePolygon(dst *ebiten.Image, pts []point, width float64, c color.RGBA) {
	if len(pts) < 2 {
		return
	}
	var vs []ebiten.Vertex
	var is []uint16
	for i := range pts {
		a, b := pts[i], pts[(i+1)%len(pts)]
		dx, dy := b.X-a.X, b.Y-a.Y
		l := math.Hypot(dx, dy)
		if l == 0 {
			continue
		}
		nx, ny := -dy/l*width/2, dx/l*width/2
		base := uint16(len(vs))
		vs = append(vs,
			vertex(point{a.X + nx, a.Y + ny}, c),
			vertex(point{b.X + nx, b.Y + ny}, c),
			vertex(point{a.X - nx, a.Y - ny}, c),
			vertex(point{b.X - nx, b.Y - ny}, c),
		)
		is = append(is, base, base+1, base+2, base+1, base+3, base+2)
	}
	drawMesh(dst, vs, is)
}

// roundedRect returns the outline of a rectangle with circular corners.
func roundedRect(x, y, w, h, r float64) []point {
	r = math.Max(0, math.Min(r, math.Min(w, h)/2))
	const steps = 8
	corners := []struct{ cx, cy, start float64 }{
		{x + w - r, y + r, -math.Pi / 2},
		{x + w - r, y + h - r, 0},
		{x + r, y + h - r, math.Pi / 2},
		{x + r, y + r, math.Pi},
	}
	pts := make([]point, 0, len(corners)*(steps+1))
	for _, c := range corners {
		for i := 0; i <= steps; i++ {
			a := c.start + math.Pi/2*float64(i)/steps
			pts = append(pts, point{c.cx + math.Cos(a)*r, c.cy + math.Sin(a)*r})
		}
	}
	return pts
}

// transformPoints maps pts through g.
func transformPoints(pts []point, g ebiten.GeoM) []point {
	out := make([]point, len(pts))
	for i, p := range pts {
		x, y := g.Apply(p.X, p.Y)
		out[i] = point{x, y}
	}
	return out
}

// drawShaded composites src onto dst through the glow shader. blur replaces
// the image with its blurred copy, glow adds the halo on top.
func drawShaded(dst, src *ebiten.Image, shader *ebiten.Shader, radius, blur, glow, alpha float64) {
	w, h := src.Bounds().Dx(), src.Bounds().Dy()
	if shader == nil {
		op := &ebiten.DrawImageOptions{}
		op.ColorScale.ScaleAlpha(float32(alpha))
		dst.DrawImage(src, op)
		return
	}
	op := &ebiten.DrawRectShaderOptions{}
	op.Images[0] = src
	op.Uniforms = map[string]any{
		"Radius": float32(radius),
		"Blur":   float32(blur),
		"Glow":   float32(glow),
		"Alpha":  float32(alpha),
	}
	dst.DrawRectShader(w, h, shader, op)
}

// offscreen returns *img resized to match like, cleared.
func offscreen(img **ebiten.Image, like *ebiten.Image) *ebiten.Image {
	w, h := like.Bounds().Dx(), like.Bounds().Dy()
	if *img == nil || (*img).Bounds().Dx() != w || (*img).Bounds().Dy() != h {
		*img = ebiten.NewImage(w, h)
	}
	(*img).Clear()
	return *img
}
