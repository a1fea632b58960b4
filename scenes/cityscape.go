package scenes

import (
	"log"
	"sync"

	"github.com/automoto/neon-reverie/assets"
	"github.com/automoto/neon-reverie/components"
	cfg "github.com/automoto/neon-reverie/config"
	"github.com/automoto/neon-reverie/fonts"
	"github.com/automoto/neon-reverie/layout"
	"github.com/automoto/neon-reverie/parallax"
	"github.com/automoto/neon-reverie/systems"
	"github.com/automoto/neon-reverie/systems/factory"
	"github.com/automoto/neon-reverie/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CityscapeScene is the tilted parallax street with its caption card.
type CityscapeScene struct {
	ecs  *ecs.ECS
	once sync.Once

	sceneImage *ebiten.Image
	caption    *ui.CaptionUI
	generation int
}

func NewCityscapeScene() *CityscapeScene {
	return &CityscapeScene{}
}

func (cs *CityscapeScene) Update() {
	cs.once.Do(cs.configure)
	cs.ecs.Update()

	if data := cs.layout(); data != nil && data.Generation != cs.generation {
		cs.generation = data.Generation
		cs.caption.SetCaption(data.Scene.Caption)
		ebiten.SetWindowTitle(data.Scene.WindowTitle(cfg.C.Title))
	}
	cs.caption.Update()
}

func (cs *CityscapeScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(cfg.Scene.BackgroundColor)

	if cs.ecs == nil {
		return
	}

	cs.sceneImage.Clear()
	cs.ecs.DrawLayer(cfg.LayerScene, cs.sceneImage)

	view := components.SceneView.Get(components.SceneView.MustFirst(cs.ecs.World))
	op := &ebiten.DrawImageOptions{}
	op.GeoM = sceneGeoM(view.Transform, screen.Bounds().Dx(), screen.Bounds().Dy(), view.Width, view.Height)
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(cs.sceneImage, op)

	cs.ecs.DrawLayer(cfg.LayerScreen, screen)
	cs.caption.Draw(screen)
}

// sceneGeoM places the oversized scene image centered on the frame, zoomed
// and then posed by the camera transform.
func sceneGeoM(t parallax.Vector, frameW, frameH, sceneW, sceneH int) ebiten.GeoM {
	sw, sh := float64(sceneW), float64(sceneH)

	var geo ebiten.GeoM
	geo.Translate(-sw/2, -sh/2)
	geo.Scale(cfg.Scene.Scale, cfg.Scene.Scale)
	geo.Translate(sw/2, sh/2)

	pose := t.GeoM(sw, sh, cfg.Parallax.Perspective)
	geo.Concat(pose)

	geo.Translate(-(sw-float64(frameW))/2, -(sh-float64(frameH))/2)
	return geo
}

// Quit reports whether the quit chord was pressed.
func (cs *CityscapeScene) Quit() bool {
	if cs.ecs == nil {
		return false
	}
	return systems.GetOrCreateSettings(cs.ecs).Quit
}

// Close stops the parallax loop, the scene watcher and the ambience.
func (cs *CityscapeScene) Close() {
	if cs.ecs == nil {
		return
	}
	if entry, ok := components.Camera.First(cs.ecs.World); ok {
		components.Camera.Get(entry).Loop.Cancel()
	}
	if data := cs.layout(); data != nil && data.Watcher != nil {
		if err := data.Watcher.Close(); err != nil {
			log.Printf("Warning: closing scene watcher: %v", err)
		}
		data.Watcher = nil
	}
	systems.StopAudio(cs.ecs)
}

func (cs *CityscapeScene) layout() *components.LayoutData {
	entry, ok := components.Layout.First(cs.ecs.World)
	if !ok {
		return nil
	}
	return components.Layout.Get(entry)
}

func (cs *CityscapeScene) configure() {
	if err := assets.LoadShaders(); err != nil {
		panic("failed to load shaders: " + err.Error())
	}
	fonts.LoadDefaults(fonts.Sizes{
		HUD:     cfg.UI.HUDFontSize,
		Sign:    cfg.UI.SignFontSize,
		Heading: cfg.UI.HeadingFontSize,
		Body:    cfg.UI.BodyFontSize,
		Tag:     cfg.UI.TagFontSize,
	})

	source := cfg.Debug.ScenePath
	if source == "" {
		source = assets.DefaultScene
	}
	scene := assets.MustLoadScene(source)
	ebiten.SetWindowTitle(scene.WindowTitle(cfg.C.Title))

	ecs := ecs.NewECS(donburi.NewWorld())

	ecs.AddSystem(systems.UpdateInput)
	ecs.AddSystem(systems.UpdateSettings)
	ecs.AddSystem(systems.UpdateSceneClock)
	ecs.AddSystem(systems.UpdateParallax)
	ecs.AddSystem(systems.UpdateTweens)
	ecs.AddSystem(systems.UpdateRain)
	ecs.AddSystem(systems.UpdateAudio)
	ecs.AddSystem(systems.UpdateLayoutReload)

	// Scene layer, back to front. It is drawn into the oversized scene image.
	ecs.AddRenderer(cfg.LayerScene, systems.DrawSky)
	ecs.AddRenderer(cfg.LayerScene, systems.DrawBuildings)
	ecs.AddRenderer(cfg.LayerScene, systems.DrawHaze)
	ecs.AddRenderer(cfg.LayerScene, systems.DrawBokeh)
	ecs.AddRenderer(cfg.LayerScene, systems.DrawFlares)
	ecs.AddRenderer(cfg.LayerScene, systems.DrawRain)
	ecs.AddRenderer(cfg.LayerScene, systems.DrawHero)
	ecs.AddRenderer(cfg.LayerScene, systems.DrawPavement)
	ecs.AddRenderer(cfg.LayerScene, systems.DrawSigns)
	ecs.AddRenderer(cfg.LayerScene, systems.DrawOverlays)
	ecs.AddRenderer(cfg.LayerScene, systems.DrawTrackingBar)

	// Screen layer, untilted.
	ecs.AddRenderer(cfg.LayerScreen, systems.DrawVignette)
	ecs.AddRenderer(cfg.LayerScreen, systems.DrawDebug)

	cs.ecs = ecs

	view := factory.CreateSceneView(cs.ecs)
	viewData := components.SceneView.Get(view)
	cs.sceneImage = ebiten.NewImage(viewData.Width, viewData.Height)

	clock := factory.CreateSceneClock(cs.ecs)
	if _, err := factory.CreateCamera(cs.ecs, viewData, components.SceneClock.Get(clock)); err != nil {
		panic(err)
	}

	entry := factory.CreateLayout(cs.ecs, scene, source, cfg.Debug.Drops)
	if cfg.Debug.Watch {
		if path, ok := assets.ScenePath(source); ok {
			watcher, err := layout.NewWatcher(path)
			if err != nil {
				log.Printf("Warning: scene reload disabled: %v", err)
			} else {
				components.Layout.Get(entry).Watcher = watcher
			}
		} else {
			log.Printf("Warning: scene reload disabled: %s is not on disk", source)
		}
	}

	// Muted scenes still start the ambience so M can bring it back.
	systems.GetOrCreateSettings(cs.ecs)
	systems.StartAmbience(cs.ecs)

	cs.caption = ui.NewCaptionUI(scene.Caption)
}
