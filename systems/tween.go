package systems

import (
	"github.com/automoto/neon-reverie/components"
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateTweens advances every looping tween by one tick.
func UpdateTweens(ecs *ecs.ECS) {
	dt := tickSeconds()
	components.Tween.Each(ecs.World, func(e *donburi.Entry) {
		stepTween(components.Tween.Get(e), dt)
	})
}

func stepTween(tw *components.TweenData, dt float32) {
	if tw.Tween == nil {
		return
	}
	value, finished := tw.Tween.Update(dt)
	tw.Value = value
	if !finished {
		return
	}

	tw.Passes++
	switch tw.Mode {
	case components.TweenPingPong:
		tw.Reversed = !tw.Reversed
		begin, end := tw.Begin, tw.End
		if tw.Reversed {
			begin, end = end, begin
		}
		tw.Tween = gween.New(begin, end, tw.Duration, tw.Easing)
	default:
		tw.Tween.Reset()
	}
}
