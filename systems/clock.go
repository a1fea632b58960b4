package systems

import (
	"time"

	"github.com/automoto/neon-reverie/components"
	cfg "github.com/automoto/neon-reverie/config"
	"github.com/yohamta/donburi/ecs"
)

// UpdateSceneClock advances scene time by one tick.
func UpdateSceneClock(ecs *ecs.ECS) {
	entry, ok := components.SceneClock.First(ecs.World)
	if !ok {
		return
	}
	advanceClock(components.SceneClock.Get(entry), cfg.C.TPS)
}

func advanceClock(clock *components.SceneClockData, tps int) {
	if tps <= 0 {
		tps = 60
	}
	clock.Ticks++
	clock.Elapsed = time.Duration(clock.Ticks) * time.Second / time.Duration(tps)
}

// tickSeconds is the duration of one update.
func tickSeconds() float32 {
	if cfg.C.TPS <= 0 {
		return 1.0 / 60
	}
	return 1 / float32(cfg.C.TPS)
}
