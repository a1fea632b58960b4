package systems

import (
	"image/color"

	cfg "github.com/automoto/neon-reverie/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

const frameRadius = 40

// DrawVignette darkens the bottom of the frame so the caption stays legible
// and outlines the frame.
func DrawVignette(ecs *ecs.ECS, screen *ebiten.Image) {
	w := float64(screen.Bounds().Dx())
	h := float64(screen.Bounds().Dy())

	fillLinearGradient(screen, 0, 0, w, h, []gradientStop{
		{At: 0, Color: cfg.Scene.VignetteColor},
		{At: 0.5, Color: color.RGBA{}},
	}, toTop)

	fillRadialGradient(screen, w/2, h, w*0.7, h*0.5, []gradientStop{
		{At: 0, Color: scaleAlpha(cfg.Scene.FrameGlow, 0.35)},
		{At: 1, Color: color.RGBA{}},
	})
	strokePolygon(screen, roundedRect(0.5, 0.5, w-1, h-1, frameRadius), 1, cfg.Scene.FrameBorder)
}
