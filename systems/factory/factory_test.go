package factory

import (
	"os"
	"testing"

	"github.com/automoto/neon-reverie/components"
	"github.com/automoto/neon-reverie/layout"
	"github.com/automoto/neon-reverie/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

type counter interface {
	Each(w donburi.World, fn func(*donburi.Entry))
}

func count(w donburi.World, c counter) int {
	n := 0
	c.Each(w, func(*donburi.Entry) { n++ })
	return n
}

func defaultScene(t *testing.T) *layout.Scene {
	t.Helper()
	scene, err := layout.Load(os.DirFS("../../assets"), "scenes/neon_reverie.yaml")
	if err != nil {
		t.Fatalf("load scene: %v", err)
	}
	return scene
}

func TestCreateDecor(t *testing.T) {
	scene := defaultScene(t)

	tests := []struct {
		name      string
		drops     int
		wantDrops int
	}{
		{"scene_count", -1, layout.DefaultRainDrops},
		{"override", 10, 10},
		{"no_rain", 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := ecs.NewECS(donburi.NewWorld())
			CreateDecor(e, scene, tt.drops)

			want := map[string]struct {
				c counter
				n int
			}{
				"rain":     {tags.Rain, tt.wantDrops},
				"sign":     {tags.Sign, len(scene.Signs)},
				"flare":    {tags.Flare, len(scene.Flares)},
				"building": {tags.Building, len(scene.Buildings)},
				"bokeh":    {tags.Bokeh, len(scene.Bokeh)},
				"hero":     {tags.Hero, 1},
				"pavement": {tags.Pavement, 1},
				"overlay":  {tags.Overlay, len(scene.Overlays)},
				"tracking": {tags.Tracking, 1},
			}
			for name, w := range want {
				if got := count(e.World, w.c); got != w.n {
					t.Fatalf("%s entities = %d, want %d", name, got, w.n)
				}
			}
		})
	}
}

func TestClearDecor(t *testing.T) {
	e := ecs.NewECS(donburi.NewWorld())
	CreateLayout(e, defaultScene(t), "scenes/neon_reverie.yaml", -1)
	CreateSceneClock(e)

	ClearDecor(e)

	if got := count(e.World, tags.Decor); got != 0 {
		t.Fatalf("decor left after clear: %d", got)
	}
	if _, ok := components.Layout.First(e.World); !ok {
		t.Fatal("layout singleton should survive ClearDecor")
	}
	if _, ok := components.SceneClock.First(e.World); !ok {
		t.Fatal("scene clock should survive ClearDecor")
	}
}

func TestCreateOverlaysRows(t *testing.T) {
	e := ecs.NewECS(donburi.NewWorld())
	CreateOverlays(e, []layout.OverlayChip{
		{Text: "a", Corner: layout.CornerTopLeft},
		{Text: "b", Corner: layout.CornerTopRight},
		{Text: "c", Corner: layout.CornerTopLeft},
	})

	rows := map[string]int{}
	components.OverlayChip.Each(e.World, func(entry *donburi.Entry) {
		d := components.OverlayChip.Get(entry)
		rows[d.Chip.Text] = d.Row
	})
	want := map[string]int{"a": 0, "b": 0, "c": 1}
	for text, row := range want {
		if rows[text] != row {
			t.Fatalf("chip %q row = %d, want %d", text, rows[text], row)
		}
	}
}

func TestCreateBuildingsDepth(t *testing.T) {
	e := ecs.NewECS(donburi.NewWorld())
	CreateBuildings(e, defaultScene(t).Buildings)

	seen := map[int]bool{}
	components.BuildingLayer.Each(e.World, func(entry *donburi.Entry) {
		d := components.BuildingLayer.Get(entry)
		if len(d.Towers) == 0 {
			t.Fatalf("layer %q has no towers", d.Layer.ID)
		}
		seen[d.Depth] = true
	})
	for depth := range 3 {
		if !seen[depth] {
			t.Fatalf("missing depth %d in %v", depth, seen)
		}
	}
}

func TestSceneSize(t *testing.T) {
	w, h := SceneSize(1000, 500, 0.1)
	if w != 1200 || h != 600 {
		t.Fatalf("SceneSize = %dx%d, want 1200x600", w, h)
	}
}

func TestCreateCamera(t *testing.T) {
	e := ecs.NewECS(donburi.NewWorld())
	view := components.SceneView.Get(CreateSceneView(e))
	clock := components.SceneClock.Get(CreateSceneClock(e))

	entry, err := CreateCamera(e, view, clock)
	if err != nil {
		t.Fatalf("CreateCamera: %v", err)
	}
	camera := components.Camera.Get(entry)
	if !camera.Loop.Running() {
		t.Fatal("camera loop should be running")
	}

	camera.Loop.Tick()
	if view.Applied != 1 {
		t.Fatalf("Applied = %d after one tick, want 1", view.Applied)
	}
}
