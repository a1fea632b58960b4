package systems

import (
	"strings"

	"github.com/automoto/neon-reverie/components"
	cfg "github.com/automoto/neon-reverie/config"
	"github.com/automoto/neon-reverie/fonts"
	"github.com/automoto/neon-reverie/layout"
	"github.com/automoto/neon-reverie/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// frameRect is the part of the scene image visible through the frame before
// the camera moves it.
func frameRect(screen *ebiten.Image) (x, y, w, h float64) {
	sw := float64(screen.Bounds().Dx())
	sh := float64(screen.Bounds().Dy())
	w = float64(cfg.C.Width)
	h = float64(cfg.C.Height)
	return (sw - w) / 2, (sh - h) / 2, w, h
}

// chipTracking returns the letter spacing of a corner's chips.
func chipTracking(corner layout.Corner) float64 {
	if corner == layout.CornerTopRight {
		return cfg.UI.HUDFontSize * 0.42
	}
	return cfg.UI.HUDFontSize * 0.36
}

// DrawOverlays draws the HUD chips stacked in the top corners of the frame.
func DrawOverlays(ecs *ecs.ECS, screen *ebiten.Image) {
	fx, fy, fw, _ := frameRect(screen)
	face := fonts.HUD.Get()
	chipH := textHeight(face) + cfg.UI.ChipPaddingY*2

	components.OverlayChip.Each(ecs.World, func(e *donburi.Entry) {
		chip := components.OverlayChip.Get(e)
		label := strings.ToUpper(chip.Chip.Text)
		spacing := chipTracking(chip.Chip.Corner)
		chipW := measureTracked(face, label, spacing) + spacing + cfg.UI.ChipPaddingX*2

		x := fx + cfg.UI.OverlayMargin
		if chip.Chip.Corner == layout.CornerTopRight {
			x = fx + fw - cfg.UI.OverlayMargin - chipW
		}
		y := fy + cfg.UI.OverlayMargin + float64(chip.Row)*(chipH+cfg.UI.ChipGap)

		border := cfg.UI.ChipBorder
		if chip.Row > 0 {
			border = scaleAlpha(border, 0.75)
		}
		pill := roundedRect(x, y, chipW, chipH, chipH/2)
		fillPolygon(screen, pill, solid(cfg.UI.ChipFill))
		strokePolygon(screen, pill, 1, border)

		geo := ebiten.GeoM{}
		geo.Translate(x+cfg.UI.ChipPaddingX+spacing/2, y+cfg.UI.ChipPaddingY)
		drawTracked(screen, label, face, spacing, geo, cfg.UI.ChipText)
	})
}

// DrawTrackingBar draws the take progress bar along the bottom of the frame.
// A bright band sweeps along the filled part on each loop of its tween.
func DrawTrackingBar(ecs *ecs.ECS, screen *ebiten.Image) {
	entry, ok := tags.Tracking.First(ecs.World)
	if !ok {
		return
	}
	bar := components.TrackingBar.Get(entry).Bar
	sweep := float64(components.Tween.Get(entry).Value)

	fx, fy, fw, fh := frameRect(screen)
	face := fonts.Track.Get()
	spacing := (cfg.UI.HUDFontSize + 1) * 0.4
	labelW := measureTracked(face, bar.Label, spacing)
	labelH := textHeight(face)

	const gap = 12
	left := fx + cfg.UI.TrackInset
	right := fx + fw - cfg.UI.TrackInset
	trackW := right - left - gap - labelW
	centerY := fy + fh - 40 - labelH/2
	trackY := centerY - cfg.UI.TrackHeight/2

	if trackW > 0 {
		track := roundedRect(left, trackY, trackW, cfg.UI.TrackHeight, cfg.UI.TrackHeight/2)
		fillPolygon(screen, track, solid(cfg.UI.TrackBackground))

		fillW := trackW * bar.Fill
		if fillW > 0 {
			fillLinearGradient(screen, left, trackY, fillW, cfg.UI.TrackHeight, paletteStops(bar.Gradient, 1), toRight)

			bandW := fillW * 0.12
			bandX := left + (fillW-bandW)*sweep
			fillLinearGradient(screen, bandX, trackY, bandW, cfg.UI.TrackHeight, evenStops(
				rgba(255, 255, 255, 0), rgba(255, 255, 255, 0.55), rgba(255, 255, 255, 0),
			), toRight)
		}
	}

	geo := ebiten.GeoM{}
	geo.Translate(right-labelW, centerY-labelH/2)
	drawTracked(screen, bar.Label, face, spacing, geo, cfg.UI.TrackLabelColor)
}
