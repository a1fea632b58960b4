package factory

import (
	"github.com/automoto/neon-reverie/archetypes"
	"github.com/automoto/neon-reverie/components"
	cfg "github.com/automoto/neon-reverie/config"
	"github.com/automoto/neon-reverie/layout"
	"github.com/automoto/neon-reverie/tags"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateLayout spawns the layout singleton and everything it describes.
// drops overrides the scene's rain count when it is not negative.
func CreateLayout(ecs *ecs.ECS, scene *layout.Scene, source string, drops int) *donburi.Entry {
	entry := archetypes.Layout.Spawn(ecs)
	components.Layout.SetValue(entry, components.LayoutData{
		Scene:  scene,
		Source: source,
	})
	CreateDecor(ecs, scene, drops)
	return entry
}

// CreateDecor spawns every decorative entity of the scene.
func CreateDecor(ecs *ecs.ECS, scene *layout.Scene, drops int) {
	count := scene.Rain.DropCount()
	if drops >= 0 {
		count = drops
	}

	CreateBuildings(ecs, scene.Buildings)
	CreateBokeh(ecs, scene.Bokeh)
	CreateFlares(ecs, scene.Flares)
	CreateRain(ecs, count)
	CreateHero(ecs)
	CreatePavement(ecs)
	CreateSigns(ecs, scene.Signs)
	CreateOverlays(ecs, scene.Overlays)
	CreateTrackingBar(ecs, scene.Tracking)
}

// ClearDecor removes everything CreateDecor spawned.
func ClearDecor(ecs *ecs.ECS) {
	var entities []donburi.Entity
	tags.Decor.Each(ecs.World, func(e *donburi.Entry) {
		entities = append(entities, e.Entity())
	})
	for _, e := range entities {
		ecs.World.Remove(e)
	}
}

func CreateRain(ecs *ecs.ECS, count int) []*donburi.Entry {
	drops := layout.GenerateRain(count)
	entries := make([]*donburi.Entry, 0, len(drops))
	for _, d := range drops {
		e := archetypes.RainDrop.Spawn(ecs)
		components.RainDrop.SetValue(e, components.RainDropData{Drop: d})
		entries = append(entries, e)
	}
	return entries
}

func CreateSigns(ecs *ecs.ECS, signs []layout.NeonSign) {
	for _, s := range signs {
		e := archetypes.Sign.Spawn(ecs)
		components.NeonSign.SetValue(e, components.NeonSignData{Sign: s})
		components.Tween.SetValue(e, components.NewTween(0.75, 1, cfg.Animation.SignPulse, ease.InOutSine, components.TweenPingPong))
	}
}

func CreateFlares(ecs *ecs.ECS, flares []layout.LensFlare) {
	for _, f := range flares {
		e := archetypes.Flare.Spawn(ecs)
		components.LensFlare.SetValue(e, components.LensFlareData{Flare: f})
		components.Tween.SetValue(e, components.NewTween(-1, 1, cfg.Animation.LensSweep, ease.InOutSine, components.TweenPingPong))
	}
}

func CreateBuildings(ecs *ecs.ECS, layers []layout.BuildingLayer) {
	params := layout.SkylineParams{
		Towers:       cfg.Skyline.Towers,
		MinWidth:     cfg.Skyline.MinTowerWidth,
		MaxWidth:     cfg.Skyline.MaxTowerWidth,
		MinHeight:    cfg.Skyline.MinHeight,
		MaxHeight:    cfg.Skyline.MaxHeight,
		WindowChance: cfg.Skyline.WindowChance,
	}
	for i, l := range layers {
		e := archetypes.Building.Spawn(ecs)
		components.BuildingLayer.SetValue(e, components.BuildingLayerData{
			Layer:  l,
			Depth:  i,
			Towers: layout.Skyline(i, params),
		})
	}
}

func CreateBokeh(ecs *ecs.ECS, lights []layout.BokehLight) {
	for _, l := range lights {
		e := archetypes.Bokeh.Spawn(ecs)
		components.Bokeh.SetValue(e, components.BokehData{Light: l})
	}
}

func CreateHero(ecs *ecs.ECS) *donburi.Entry {
	e := archetypes.Hero.Spawn(ecs)
	components.Hero.SetValue(e, components.HeroData{
		HeightFraction: 0.62,
		Width:          128,
		BottomMargin:   24,
	})
	stride := float32(cfg.Animation.StrideAngle)
	components.Tween.SetValue(e, components.NewTween(-stride, stride, cfg.Animation.HeroStride/2, ease.InOutSine, components.TweenPingPong))
	return e
}

func CreatePavement(ecs *ecs.ECS) *donburi.Entry {
	e := archetypes.Pavement.Spawn(ecs)
	components.Pavement.SetValue(e, components.PavementData{HeightFraction: 0.38})
	return e
}

// CreateOverlays stacks chips into their corner columns in declaration order.
func CreateOverlays(ecs *ecs.ECS, chips []layout.OverlayChip) {
	rows := map[layout.Corner]int{}
	for _, c := range chips {
		e := archetypes.OverlayChip.Spawn(ecs)
		components.OverlayChip.SetValue(e, components.OverlayChipData{Chip: c, Row: rows[c.Corner]})
		rows[c.Corner]++
	}
}

func CreateTrackingBar(ecs *ecs.ECS, bar layout.TrackingBar) *donburi.Entry {
	e := archetypes.TrackingBar.Spawn(ecs)
	components.TrackingBar.SetValue(e, components.TrackingBarData{Bar: bar})
	components.Tween.SetValue(e, components.NewTween(0, 1, cfg.Animation.TrackingSweep, ease.Linear, components.TweenRestart))
	return e
}
