// Package parallax implements the pointer-driven camera that tilts the scene.
// It has no dependency on the ECS so it can be driven and tested on its own.
package parallax

import (
	"fmt"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// Vector is a camera pose: a translation in pixels and two rotations in degrees.
type Vector struct {
	X       float64
	Y       float64
	RotateX float64
	RotateY float64
}

// Sub returns the per-axis difference v - o.
func (v Vector) Sub(o Vector) Vector {
	return Vector{
		X:       v.X - o.X,
		Y:       v.Y - o.Y,
		RotateX: v.RotateX - o.RotateX,
		RotateY: v.RotateY - o.RotateY,
	}
}

// String formats the pose as a CSS transform, which is also what the debug
// readout prints.
func (v Vector) String() string {
	return fmt.Sprintf("translate3d(%.2fpx, %.2fpx, 0) rotateX(%.3fdeg) rotateY(%.3fdeg)",
		v.X, v.Y, v.RotateX, v.RotateY)
}

// GeoM projects the pose onto a w x h image centered on its own midpoint.
// Rotations become cosine foreshortening plus a shear scaled by perspective.
func (v Vector) GeoM(w, h, perspective float64) ebiten.GeoM {
	rx := v.RotateX * math.Pi / 180
	ry := v.RotateY * math.Pi / 180

	var g ebiten.GeoM
	g.Translate(-w/2, -h/2)
	g.Scale(math.Cos(ry), math.Cos(rx))
	g.Skew(rx*perspective, ry*perspective)
	g.Translate(w/2+v.X, h/2+v.Y)
	return g
}
