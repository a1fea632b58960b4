package archetypes

import (
	"github.com/automoto/neon-reverie/components"
	cfg "github.com/automoto/neon-reverie/config"
	"github.com/automoto/neon-reverie/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Camera = newArchetype(
		components.Camera,
	)
	SceneView = newArchetype(
		components.SceneView,
	)
	SceneClock = newArchetype(
		components.SceneClock,
	)
	Input = newArchetype(
		components.Input,
	)
	Settings = newArchetype(
		components.Settings,
	)
	Audio = newArchetype(
		components.Audio,
	)
	Layout = newArchetype(
		components.Layout,
	)
	RainDrop = newArchetype(
		tags.Decor,
		tags.Rain,
		components.RainDrop,
	)
	Sign = newArchetype(
		tags.Decor,
		tags.Sign,
		components.NeonSign,
		components.Tween,
	)
	Flare = newArchetype(
		tags.Decor,
		tags.Flare,
		components.LensFlare,
		components.Tween,
	)
	Building = newArchetype(
		tags.Decor,
		tags.Building,
		components.BuildingLayer,
	)
	Bokeh = newArchetype(
		tags.Decor,
		tags.Bokeh,
		components.Bokeh,
	)
	Hero = newArchetype(
		tags.Decor,
		tags.Hero,
		components.Hero,
		components.Tween,
	)
	Pavement = newArchetype(
		tags.Decor,
		tags.Pavement,
		components.Pavement,
	)
	OverlayChip = newArchetype(
		tags.Decor,
		tags.Overlay,
		components.OverlayChip,
	)
	TrackingBar = newArchetype(
		tags.Decor,
		tags.Tracking,
		components.TrackingBar,
		components.Tween,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.LayerScene,
		append(a.components, cs...)...,
	))
	return e
}
