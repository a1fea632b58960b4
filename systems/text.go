package systems

import (
	"image/color"
	"unicode/utf8"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"golang.org/x/image/font"
)

// measureTracked returns the advance of s drawn with extra spacing between letters.
func measureTracked(face font.Face, s string, spacing float64) float64 {
	n := utf8.RuneCountInString(s)
	if n == 0 {
		return 0
	}
	return float64(font.MeasureString(face, s).Ceil()) + spacing*float64(n-1)
}

// textHeight is the ascent plus descent of face.
func textHeight(face font.Face) float64 {
	m := face.Metrics()
	return float64((m.Ascent + m.Descent).Ceil())
}

// drawTracked draws s letter by letter with the top-left of the line at the
// origin of geo.
func drawTracked(dst *ebiten.Image, s string, face font.Face, spacing float64, geo ebiten.GeoM, clr color.Color) {
	ascent := float64(face.Metrics().Ascent.Ceil())
	x := 0.0
	for _, r := range s {
		ch := string(r)
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(x, ascent)
		op.GeoM.Concat(geo)
		op.ColorScale.ScaleWithColor(clr)
		op.Filter = ebiten.FilterLinear
		text.DrawWithOptions(dst, ch, face, op)
		x += float64(font.MeasureString(face, ch).Ceil()) + spacing
	}
}
