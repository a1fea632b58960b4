package components

import (
	"github.com/yohamta/donburi"
)

// AmbiencePlayer is the subset of an audio player the ambience system drives.
type AmbiencePlayer interface {
	Play()
	SetVolume(v float64)
	Volume() float64
	Close() error
}

// AudioData stores global audio state (singleton component)
type AudioData struct {
	Player       AmbiencePlayer
	TargetVolume float64 // 0.0 - 1.0
	FadeTimer    int     // Frames elapsed in the fade in
	FadeDuration int     // Total fade duration in frames
}

var Audio = donburi.NewComponentType[AudioData]()
