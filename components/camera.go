package components

import (
	"github.com/automoto/neon-reverie/parallax"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// CameraData owns the parallax driver and the loop that steps it.
type CameraData struct {
	Driver     *parallax.Driver
	Loop       *parallax.Loop
	Pointer    math.Vec2 // Last cursor position fed to the driver
	HasPointer bool
}

var Camera = donburi.NewComponentType[CameraData]()
