package systems

import (
	"log"
	"sync"

	"github.com/automoto/neon-reverie/assets"
	"github.com/automoto/neon-reverie/components"
	cfg "github.com/automoto/neon-reverie/config"
	"github.com/automoto/neon-reverie/sound"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/yohamta/donburi/ecs"
)

// The audio context can only be created once per process.
var (
	globalAudioContext *audio.Context
	audioInitOnce      sync.Once
)

func initGlobalAudio() {
	audioInitOnce.Do(func() {
		globalAudioContext = audio.NewContext(cfg.Audio.SampleRate)
	})
}

// StartAmbience spawns the audio singleton playing the generated rain bed.
// Failure leaves the scene silent.
func StartAmbience(ecs *ecs.ECS) {
	initGlobalAudio()

	rain := sound.NewRain(sound.RainOptions{
		SampleRate:  cfg.Audio.SampleRate,
		Seed:        cfg.Audio.Seed,
		Gain:        0.9,
		Cutoff:      cfg.Audio.Cutoff,
		DropRate:    cfg.Audio.DropRate,
		SwellPeriod: cfg.Audio.SwellPeriod,
	})
	ambience, err := assets.NewAmbience(globalAudioContext, rain)
	if err != nil {
		log.Printf("Warning: rain ambience disabled: %v", err)
		return
	}
	CreateAudio(ecs, ambience)
	ambience.Play()
}

// CreateAudio stores player in the audio singleton with a fresh fade in.
func CreateAudio(ecs *ecs.ECS, player components.AmbiencePlayer) {
	entry, ok := components.Audio.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Audio))
	}
	components.Audio.SetValue(entry, components.AudioData{
		Player:       player,
		TargetVolume: cfg.Audio.Volume,
		FadeDuration: cfg.Audio.FadeInFrames,
	})
}

// UpdateAudio fades the ambience in and follows the mute chord.
func UpdateAudio(ecs *ecs.ECS) {
	entry, ok := components.Audio.First(ecs.World)
	if !ok {
		return
	}
	data := components.Audio.Get(entry)
	if data.Player == nil {
		return
	}
	data.Player.SetVolume(ambienceVolume(data, GetOrCreateSettings(ecs).Muted))
}

// ambienceVolume advances the fade and returns the volume for this tick.
// Muting does not pause the fade.
func ambienceVolume(data *components.AudioData, muted bool) float64 {
	if data.FadeTimer < data.FadeDuration {
		data.FadeTimer++
	}
	if muted {
		return 0
	}
	if data.FadeDuration <= 0 {
		return data.TargetVolume
	}
	return data.TargetVolume * float64(data.FadeTimer) / float64(data.FadeDuration)
}

// StopAudio closes the ambience player.
func StopAudio(ecs *ecs.ECS) {
	entry, ok := components.Audio.First(ecs.World)
	if !ok {
		return
	}
	data := components.Audio.Get(entry)
	if data.Player == nil {
		return
	}
	if err := data.Player.Close(); err != nil {
		log.Printf("Warning: closing ambience: %v", err)
	}
	data.Player = nil
}
