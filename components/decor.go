package components

import (
	"github.com/automoto/neon-reverie/layout"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
)

type RainDropData struct {
	Drop   layout.RainDrop
	Fall   float64 // Progress through the current fall, 0 at the top
	Active bool    // False until the drop's delay has passed
}

var RainDrop = donburi.NewComponentType[RainDropData]()

type NeonSignData struct {
	Sign layout.NeonSign
}

var NeonSign = donburi.NewComponentType[NeonSignData]()

type LensFlareData struct {
	Flare layout.LensFlare
}

var LensFlare = donburi.NewComponentType[LensFlareData]()

type BuildingLayerData struct {
	Layer  layout.BuildingLayer
	Depth  int // 0 is farthest
	Towers []layout.Tower
	Cache  *ebiten.Image // Blurred skyline, drawn once
}

var BuildingLayer = donburi.NewComponentType[BuildingLayerData]()

type BokehData struct {
	Light layout.BokehLight
}

var Bokeh = donburi.NewComponentType[BokehData]()

// HeroData describes the walking silhouette. The stride angle comes from its tween.
type HeroData struct {
	HeightFraction float64 // Of the scene height
	Width          float64
	BottomMargin   float64
}

var Hero = donburi.NewComponentType[HeroData]()

type PavementData struct {
	HeightFraction float64
}

var Pavement = donburi.NewComponentType[PavementData]()

type OverlayChipData struct {
	Chip layout.OverlayChip
	Row  int // Position within its corner's column
}

var OverlayChip = donburi.NewComponentType[OverlayChipData]()

type TrackingBarData struct {
	Bar layout.TrackingBar
}

var TrackingBar = donburi.NewComponentType[TrackingBarData]()
