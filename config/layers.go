package config

import "github.com/yohamta/donburi/ecs"

// Render layers. Scene renderers draw into the tilted offscreen image,
// screen renderers draw on top of the composited frame.
const (
	LayerScene ecs.LayerID = iota
	LayerScreen
)
