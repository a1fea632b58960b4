package components

import (
	"time"

	"github.com/automoto/neon-reverie/parallax"
	"github.com/yohamta/donburi"
)

// SceneViewData is the element the camera pose is applied to: the offscreen
// scene image composited onto the frame each draw.
type SceneViewData struct {
	Transform parallax.Vector
	Applied   uint64 // Transforms received so far
	Width     int    // Scene image size, larger than the frame by the inset
	Height    int
}

// ApplyTransform implements parallax.Target.
func (v *SceneViewData) ApplyTransform(t parallax.Vector) {
	v.Transform = t
	v.Applied++
}

var SceneView = donburi.NewComponentType[SceneViewData]()

// SceneClockData advances by one tick per update so animation is frame locked.
type SceneClockData struct {
	Epoch   time.Time
	Elapsed time.Duration
	Ticks   uint64
}

// Now implements parallax.Clock.
func (c *SceneClockData) Now() time.Time {
	return c.Epoch.Add(c.Elapsed)
}

// Seconds returns the elapsed scene time in seconds.
func (c *SceneClockData) Seconds() float64 {
	return c.Elapsed.Seconds()
}

var SceneClock = donburi.NewComponentType[SceneClockData]()
