package systems

import (
	"image/color"
	"math"

	"github.com/automoto/neon-reverie/assets"
	"github.com/automoto/neon-reverie/components"
	cfg "github.com/automoto/neon-reverie/config"
	"github.com/automoto/neon-reverie/fonts"
	"github.com/automoto/neon-reverie/layout"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const (
	signPadX   = 20
	signPadY   = 12
	signRadius = 24
)

var signGlow *ebiten.Image

type placedSign struct {
	sign  layout.NeonSign
	geo   ebiten.GeoM
	w, h  float64
	pulse float64
}

// DrawSigns draws the neon signboards: a blurred palette glow behind a glassy
// rotated board with widely tracked lettering.
func DrawSigns(ecs *ecs.ECS, screen *ebiten.Image) {
	w := float64(screen.Bounds().Dx())
	h := float64(screen.Bounds().Dy())
	face := fonts.Sign.Get()
	spacing := cfg.UI.SignFontSize * 0.8

	var signs []placedSign
	components.NeonSign.Each(ecs.World, func(e *donburi.Entry) {
		s := components.NeonSign.Get(e).Sign
		bw := measureTracked(face, s.Label, spacing) + spacing + signPadX*2
		bh := textHeight(face) + signPadY*2
		x, y := s.Anchor.Resolve(w, h, bw, bh)
		signs = append(signs, placedSign{
			sign:  s,
			geo:   signGeoM(x, y, bw, bh, s.Rotation),
			w:     bw,
			h:     bh,
			pulse: float64(components.Tween.Get(e).Value),
		})
	})
	if len(signs) == 0 {
		return
	}

	glow := offscreen(&signGlow, screen)
	for _, s := range signs {
		stops := paletteStops(s.sign.Palette, 0.75*s.pulse)
		outline := transformPoints(roundedRect(-12, -12, s.w+24, s.h+24, signRadius+12), s.geo)
		left, _ := s.geo.Apply(0, s.h/2)
		right, _ := s.geo.Apply(s.w, s.h/2)
		fillPolygon(glow, outline, func(p point) color.RGBA {
			return sampleStops(stops, (p.X-left)/(right-left))
		})
	}
	drawShaded(screen, glow, assets.GlowShader, 40, 1, 0.5, 1)

	for _, s := range signs {
		board := transformPoints(roundedRect(0, 0, s.w, s.h, signRadius), s.geo)
		fillPolygon(screen, board, solid(cfg.UI.SignFill))
		strokePolygon(screen, board, 1, cfg.UI.SignBorder)

		textGeo := ebiten.GeoM{}
		textGeo.Translate(signPadX+spacing/2, signPadY)
		textGeo.Concat(s.geo)
		drawTracked(screen, s.sign.Label, face, spacing, textGeo, scaleAlpha(cfg.UI.SignTextColor, 0.85+0.15*s.pulse))
	}
}

// signGeoM rotates a w x h board about its center and places it at x, y.
func signGeoM(x, y, w, h, degrees float64) ebiten.GeoM {
	g := ebiten.GeoM{}
	g.Translate(-w/2, -h/2)
	g.Rotate(degrees * math.Pi / 180)
	g.Translate(x+w/2, y+h/2)
	return g
}
