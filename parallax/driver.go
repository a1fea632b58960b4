package parallax

import (
	"errors"
	"math"
	"time"

	"github.com/automoto/neon-reverie/config"
)

// ErrInvalidEase is returned when the easing factor would not converge monotonically.
var ErrInvalidEase = errors.New("parallax: ease must be in (0, 1)")

// Target receives the smoothed camera pose once per frame.
type Target interface {
	ApplyTransform(v Vector)
}

// Driver owns the target and current camera vectors for one scene view.
type Driver struct {
	cfg     config.ParallaxConfig
	target  Vector
	current Vector
	render  Target
}

// NewDriver creates a driver at rest. render may be nil until the scene image exists.
func NewDriver(cfg config.ParallaxConfig, render Target) (*Driver, error) {
	if cfg.Ease <= 0 || cfg.Ease >= 1 {
		return nil, ErrInvalidEase
	}
	return &Driver{cfg: cfg, render: render}, nil
}

// SetRenderTarget swaps the element the pose is applied to.
func (d *Driver) SetRenderTarget(t Target) {
	d.render = t
}

// Target returns the pose derived from the latest pointer sample.
func (d *Driver) Target() Vector {
	return d.target
}

// Current returns the smoothed pose.
func (d *Driver) Current() Vector {
	return d.current
}

// PointerMove maps a pointer position in viewport pixels to a new target.
func (d *Driver) PointerMove(px, py, viewportW, viewportH float64) {
	xRatio, yRatio := NormalizePointer(px, py, viewportW, viewportH)
	d.target = TargetFromRatio(xRatio, yRatio, d.cfg)
}

// Ambient returns the idle sway (x) and float (y) offsets at the given time.
func (d *Driver) Ambient(elapsed time.Duration) (sway, floatOffset float64) {
	t := float64(elapsed) / float64(time.Millisecond) * d.cfg.TimeScale
	floatOffset = math.Sin(t) * d.cfg.FloatAmplitude
	sway = math.Cos(t*d.cfg.SwayFrequency) * d.cfg.SwayAmplitude
	return sway, floatOffset
}

// Step advances current toward target plus ambient motion by one frame and
// applies the result. Without a render target it does nothing.
func (d *Driver) Step(elapsed time.Duration) {
	if d.render == nil {
		return
	}

	sway, floatOffset := d.Ambient(elapsed)
	ease := d.cfg.Ease

	d.current.X += (d.target.X + sway - d.current.X) * ease
	d.current.Y += (d.target.Y + floatOffset - d.current.Y) * ease
	d.current.RotateX += (d.target.RotateX - d.current.RotateX) * ease
	d.current.RotateY += (d.target.RotateY - d.current.RotateY) * ease

	d.render.ApplyTransform(d.current)
}

// NormalizePointer returns the pointer offset from the viewport center as a
// ratio of the viewport size, each axis in [-0.5, 0.5].
func NormalizePointer(px, py, viewportW, viewportH float64) (xRatio, yRatio float64) {
	if viewportW <= 0 || viewportH <= 0 {
		return 0, 0
	}
	xRatio = clampRatio(px/viewportW - 0.5)
	yRatio = clampRatio(py/viewportH - 0.5)
	return xRatio, yRatio
}

// TargetFromRatio scales a normalized pointer sample into a camera pose.
func TargetFromRatio(xRatio, yRatio float64, cfg config.ParallaxConfig) Vector {
	return Vector{
		X:       xRatio * cfg.OffsetScaleX,
		Y:       yRatio * cfg.OffsetScaleY,
		RotateX: yRatio * cfg.TiltScaleX,
		RotateY: xRatio * cfg.TiltScaleY,
	}
}

func clampRatio(r float64) float64 {
	return math.Max(-0.5, math.Min(0.5, r))
}
