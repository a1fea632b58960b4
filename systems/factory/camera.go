package factory

import (
	"fmt"

	"github.com/automoto/neon-reverie/archetypes"
	"github.com/automoto/neon-reverie/components"
	cfg "github.com/automoto/neon-reverie/config"
	"github.com/automoto/neon-reverie/parallax"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateSceneView spawns the render target sized to the frame plus its overhang.
func CreateSceneView(ecs *ecs.ECS) *donburi.Entry {
	view := archetypes.SceneView.Spawn(ecs)
	w, h := SceneSize(cfg.C.Width, cfg.C.Height, cfg.Scene.Inset)
	components.SceneView.SetValue(view, components.SceneViewData{Width: w, Height: h})
	return view
}

// SceneSize returns the scene image size for a frame, the frame grown by
// inset on every side.
func SceneSize(frameW, frameH int, inset float64) (int, int) {
	return int(float64(frameW) * (1 + 2*inset)), int(float64(frameH) * (1 + 2*inset))
}

func CreateSceneClock(ecs *ecs.ECS) *donburi.Entry {
	clock := archetypes.SceneClock.Spawn(ecs)
	components.SceneClock.SetValue(clock, components.SceneClockData{})
	return clock
}

// CreateCamera spawns the parallax camera. The loop reads time from clock and
// applies the smoothed pose to view. The loop is started here.
func CreateCamera(ecs *ecs.ECS, view *components.SceneViewData, clock parallax.Clock) (*donburi.Entry, error) {
	driver, err := parallax.NewDriver(cfg.Parallax, view)
	if err != nil {
		return nil, fmt.Errorf("create camera: %w", err)
	}

	camera := archetypes.Camera.Spawn(ecs)
	loop := parallax.NewLoop(clock, driver.Step)
	components.Camera.SetValue(camera, components.CameraData{
		Driver: driver,
		Loop:   loop,
	})
	loop.Start()

	return camera, nil
}
