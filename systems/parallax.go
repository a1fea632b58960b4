package systems

import (
	"github.com/automoto/neon-reverie/components"
	cfg "github.com/automoto/neon-reverie/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// UpdateParallax feeds cursor movement to the camera and runs one frame of its loop.
func UpdateParallax(ecs *ecs.ECS) {
	entry, ok := components.Camera.First(ecs.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(entry)

	x, y := ebiten.CursorPosition()
	trackPointer(camera, float64(x), float64(y), float64(cfg.C.Width), float64(cfg.C.Height))
	camera.Loop.Tick()
}

// trackPointer forwards the cursor to the driver only when it moved. The first
// sample just records where the cursor rests.
func trackPointer(camera *components.CameraData, x, y, viewportW, viewportH float64) {
	pos := math.NewVec2(x, y)
	if !camera.HasPointer {
		camera.Pointer = pos
		camera.HasPointer = true
		return
	}
	if pos == camera.Pointer {
		return
	}
	camera.Pointer = pos
	camera.Driver.PointerMove(x, y, viewportW, viewportH)
}
