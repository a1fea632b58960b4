package systems

import (
	"fmt"

	"github.com/automoto/neon-reverie/components"
	cfg "github.com/automoto/neon-reverie/config"
	"github.com/automoto/neon-reverie/fonts"
	"github.com/automoto/neon-reverie/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// DrawDebug shows the camera vectors and loop state when the overlay is on.
func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	settings := GetOrCreateSettings(ecs)
	if !settings.Debug {
		return
	}

	lines := debugLines(ecs)
	face := fonts.Debug.Get()
	lineH := textHeight(face) + 4

	x, y := float32(16), float32(16)
	vector.FillRect(screen, x, y, float32(cfg.UI.DebugPanelWidth), float32(cfg.UI.DebugPanelHeight), cfg.UI.DebugPanelColor, false)
	for i, line := range lines {
		geo := ebiten.GeoM{}
		geo.Translate(float64(x)+10, float64(y)+8+float64(i)*lineH)
		drawTracked(screen, line, face, 0, geo, cfg.UI.DebugTextColor)
	}
}

func debugLines(ecs *ecs.ECS) []string {
	var lines []string
	if entry, ok := components.Camera.First(ecs.World); ok {
		camera := components.Camera.Get(entry)
		lines = append(lines,
			"target  "+camera.Driver.Target().String(),
			"current "+camera.Driver.Current().String(),
			fmt.Sprintf("loop running=%v frames=%d", camera.Loop.Running(), camera.Loop.Frames()),
		)
	}

	drops := 0
	tags.Rain.Each(ecs.World, func(*donburi.Entry) { drops++ })
	generation := 0
	if entry, ok := components.Layout.First(ecs.World); ok {
		generation = components.Layout.Get(entry).Generation
	}
	lines = append(lines, fmt.Sprintf("tps %.0f fps %.0f drops %d reloads %d muted %v",
		ebiten.ActualTPS(), ebiten.ActualFPS(), drops, generation, GetOrCreateSettings(ecs).Muted))
	return lines
}
