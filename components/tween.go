package components

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
)

type TweenMode int

const (
	TweenRestart  TweenMode = iota // Jump back to Begin when finished
	TweenPingPong                  // Reverse direction when finished
)

// TweenData drives one endlessly looping value.
type TweenData struct {
	Tween    *gween.Tween
	Begin    float32
	End      float32
	Duration float32 // Seconds per pass
	Easing   ease.TweenFunc
	Mode     TweenMode
	Reversed bool
	Value    float32
	Passes   int
}

// NewTween starts a loop at begin.
func NewTween(begin, end, duration float32, easing ease.TweenFunc, mode TweenMode) TweenData {
	return TweenData{
		Tween:    gween.New(begin, end, duration, easing),
		Begin:    begin,
		End:      end,
		Duration: duration,
		Easing:   easing,
		Mode:     mode,
		Value:    begin,
	}
}

var Tween = donburi.NewComponentType[TweenData]()
