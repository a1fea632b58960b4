package tags

import "github.com/yohamta/donburi"

var (
	Rain     = donburi.NewTag().SetName("Rain")
	Sign     = donburi.NewTag().SetName("Sign")
	Flare    = donburi.NewTag().SetName("Flare")
	Building = donburi.NewTag().SetName("Building")
	Bokeh    = donburi.NewTag().SetName("Bokeh")
	Hero     = donburi.NewTag().SetName("Hero")
	Pavement = donburi.NewTag().SetName("Pavement")
	Overlay  = donburi.NewTag().SetName("Overlay")
	Tracking = donburi.NewTag().SetName("Tracking")

	// Decor marks every entity spawned from the scene layout so a reload can clear them.
	Decor = donburi.NewTag().SetName("Decor")
)
