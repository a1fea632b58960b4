package main

import (
	"flag"
	"log"

	"github.com/automoto/neon-reverie/config"
	"github.com/automoto/neon-reverie/scenes"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
	Quit() bool
	Close()
}

type Game struct {
	scene Scene
}

func NewGame() *Game {
	return &Game{
		scene: scenes.NewCityscapeScene(),
	}
}

func (g *Game) Update() error {
	g.scene.Update()
	if g.scene.Quit() {
		return ebiten.Termination
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	return config.C.Width, config.C.Height
}

func main() {
	flag.BoolVar(&config.Debug.Overlay, "debug", config.Debug.Overlay, "show the camera readout")
	flag.IntVar(&config.Debug.Drops, "drops", config.Debug.Drops, "rain drop count, negative keeps the scene's")
	flag.StringVar(&config.Debug.ScenePath, "scene", config.Debug.ScenePath, "scene file to load instead of the embedded one")
	flag.BoolVar(&config.Debug.Watch, "watch", config.Debug.Watch, "reload the scene file when it changes")
	flag.BoolVar(&config.Debug.Fullscreen, "fullscreen", config.Debug.Fullscreen, "start fullscreen")
	flag.IntVar(&config.C.TPS, "tps", config.C.TPS, "updates per second")
	flag.BoolVar(&config.Audio.Muted, "mute", config.Audio.Muted, "start with the rain ambience muted")
	flag.Parse()

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle(config.C.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)
	ebiten.SetTPS(config.C.TPS)
	ebiten.SetFullscreen(config.Debug.Fullscreen)

	game := NewGame()
	err := ebiten.RunGame(game)
	game.scene.Close()
	if err != nil {
		log.Fatal(err)
	}
}
