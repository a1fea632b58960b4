package systems

import (
	"log"

	"github.com/automoto/neon-reverie/assets"
	"github.com/automoto/neon-reverie/components"
	cfg "github.com/automoto/neon-reverie/config"
	"github.com/automoto/neon-reverie/layout"
	"github.com/automoto/neon-reverie/systems/factory"
	"github.com/yohamta/donburi/ecs"
)

// UpdateLayoutReload drains the scene watcher without blocking and rebuilds the
// decorative entities from the edited file. A file that fails to load keeps
// the previous layout on screen.
func UpdateLayoutReload(ecs *ecs.ECS) {
	entry, ok := components.Layout.First(ecs.World)
	if !ok {
		return
	}
	data := components.Layout.Get(entry)
	if data.Watcher == nil {
		return
	}

	changed := false
drain:
	for {
		select {
		case _, ok := <-data.Watcher.Events:
			if !ok {
				data.Watcher = nil
				return
			}
			changed = true
		case err, ok := <-data.Watcher.Errors:
			if !ok {
				data.Watcher = nil
				return
			}
			log.Printf("Warning: scene watcher: %v", err)
		default:
			break drain
		}
	}
	if !changed {
		return
	}

	scene, err := assets.LoadScene(data.Source)
	if err != nil {
		log.Printf("Warning: keeping previous scene: %v", err)
		return
	}
	ApplyLayout(ecs, data, scene)
}

// ApplyLayout replaces the decorative entities with those of scene.
func ApplyLayout(ecs *ecs.ECS, data *components.LayoutData, scene *layout.Scene) {
	factory.ClearDecor(ecs)
	factory.CreateDecor(ecs, scene, cfg.Debug.Drops)
	data.Scene = scene
	data.Generation++
}
