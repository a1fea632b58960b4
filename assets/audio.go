package assets

import (
	"fmt"
	"io"

	"github.com/hajimehoshi/ebiten/v2/audio"
)

// Ambience plays an endless generated stream, such as the rain bed.
type Ambience struct {
	context *audio.Context
	player  *audio.Player
}

// NewAmbience wraps src in a player on the given context. src must produce
// 16-bit little endian stereo PCM at the context's sample rate.
func NewAmbience(ctx *audio.Context, src io.Reader) (*Ambience, error) {
	player, err := ctx.NewPlayer(src)
	if err != nil {
		return nil, fmt.Errorf("failed to create ambience player: %w", err)
	}
	player.SetVolume(0)
	return &Ambience{context: ctx, player: player}, nil
}

func (a *Ambience) Play() {
	if !a.player.IsPlaying() {
		a.player.Play()
	}
}

func (a *Ambience) SetVolume(v float64) {
	a.player.SetVolume(v)
}

func (a *Ambience) Volume() float64 {
	return a.player.Volume()
}

func (a *Ambience) Close() error {
	a.player.Pause()
	return a.player.Close()
}
