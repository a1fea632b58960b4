package scenes

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/automoto/neon-reverie/components"
	"github.com/automoto/neon-reverie/layout"
	"github.com/automoto/neon-reverie/systems"
	"github.com/automoto/neon-reverie/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

type closingPlayer struct {
	volume float64
	closed bool
}

func (p *closingPlayer) Play()               {}
func (p *closingPlayer) SetVolume(v float64) { p.volume = v }
func (p *closingPlayer) Volume() float64     { return p.volume }
func (p *closingPlayer) Close() error        { p.closed = true; return nil }

func TestCityscapeSceneClose(t *testing.T) {
	scene, err := layout.Load(os.DirFS("../assets"), "scenes/neon_reverie.yaml")
	if err != nil {
		t.Fatalf("load scene: %v", err)
	}

	e := ecs.NewECS(donburi.NewWorld())
	view := components.SceneView.Get(factory.CreateSceneView(e))
	clock := components.SceneClock.Get(factory.CreateSceneClock(e))
	entry, err := factory.CreateCamera(e, view, clock)
	if err != nil {
		t.Fatalf("CreateCamera: %v", err)
	}
	camera := components.Camera.Get(entry)

	path := filepath.Join(t.TempDir(), "scene.yaml")
	if err := os.WriteFile(path, []byte("title: x\n"), 0o644); err != nil {
		t.Fatalf("write scene: %v", err)
	}
	data := components.Layout.Get(factory.CreateLayout(e, scene, path, -1))
	watcher, err := layout.NewWatcher(path)
	if err != nil {
		// Platforms without file notifications still tear down the rest.
		t.Logf("no watcher: %v", err)
	} else {
		data.Watcher = watcher
	}

	player := &closingPlayer{}
	systems.CreateAudio(e, player)

	cs := &CityscapeScene{ecs: e}
	systems.UpdateParallax(e)
	if view.Applied != 1 {
		t.Fatalf("Applied = %d before close, want 1", view.Applied)
	}

	cs.Close()

	if camera.Loop.Running() {
		t.Fatal("camera loop still running after Close")
	}
	if data.Watcher != nil {
		t.Fatal("watcher kept after Close")
	}
	if watcher != nil {
		if _, ok := <-watcher.Events; ok {
			t.Fatal("watcher events channel still open")
		}
	}
	if !player.closed {
		t.Fatal("ambience player not closed")
	}

	systems.UpdateParallax(e)
	if view.Applied != 1 {
		t.Fatalf("Applied = %d after close, want 1", view.Applied)
	}

	// A second Close is harmless.
	cs.Close()
	if cs.Quit() {
		t.Fatal("Close should not request quit")
	}
}
