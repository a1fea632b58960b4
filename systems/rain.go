package systems

import (
	"image/color"
	"math"

	"github.com/automoto/neon-reverie/components"
	cfg "github.com/automoto/neon-reverie/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateRain moves each drop along its fall. Drops wait out their delay first.
func UpdateRain(ecs *ecs.ECS) {
	entry, ok := components.SceneClock.First(ecs.World)
	if !ok {
		return
	}
	seconds := components.SceneClock.Get(entry).Seconds()

	components.RainDrop.Each(ecs.World, func(e *donburi.Entry) {
		advanceDrop(components.RainDrop.Get(e), seconds)
	})
}

func advanceDrop(d *components.RainDropData, seconds float64) {
	t := seconds - d.Drop.Delay
	if t < 0 || d.Drop.Duration <= 0 {
		d.Active = false
		d.Fall = 0
		return
	}
	d.Active = true
	d.Fall = math.Mod(t, d.Drop.Duration) / d.Drop.Duration
}

// DrawRain draws each active drop as a slanted streak that enters above the
// top edge and leaves below the bottom.
func DrawRain(ecs *ecs.ECS, screen *ebiten.Image) {
	w := float64(screen.Bounds().Dx())
	h := float64(screen.Bounds().Dy())

	components.RainDrop.Each(ecs.World, func(e *donburi.Entry) {
		d := components.RainDrop.Get(e)
		if !d.Active {
			return
		}
		x0, y0, x1, y1 := dropSegment(d, w, h)
		c := scaleAlpha(cfg.Rain.Color, d.Drop.Brightness)
		faded := scaleAlpha(c, 0.15)
		vs, is := streak(x0, y0, x1, y1, cfg.Rain.DropWidth, faded, c)
		drawMesh(screen, vs, is)
	})
}

// dropSegment returns the streak from tail (top) to head (bottom).
func dropSegment(d *components.RainDropData, w, h float64) (x0, y0, x1, y1 float64) {
	length := cfg.Rain.DropLength * d.Drop.Scale
	travel := h + length*2
	headY := -length + travel*d.Fall
	tailY := headY - length
	x := d.Drop.Left * w
	drift := cfg.Rain.Slant
	return x + drift*tailY, tailY, x + drift*headY, headY
}

// streak is a thin quad fading from the tail color to the head color.
func streak(x0, y0, x1, y1, width float64, tail, head color.RGBA) ([]ebiten.Vertex, []uint16) {
	dx, dy := x1-x0, y1-y0
	l := math.Hypot(dx, dy)
	if l == 0 {
		return nil, nil
	}
	nx, ny := -dy/l*width/2, dx/l*width/2
	vs := []ebiten.Vertex{
		vertex(point{x0 + nx, y0 + ny}, tail),
		vertex(point{x0 - nx, y0 - ny}, tail),
		vertex(point{x1 + nx, y1 + ny}, head),
		vertex(point{x1 - nx, y1 - ny}, head),
	}
	return vs, []uint16{0, 1, 2, 1, 3, 2}
}
