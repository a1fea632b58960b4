package components

import (
	cfg "github.com/automoto/neon-reverie/config"
	"github.com/yohamta/donburi"
)

// InputData stores the current and previous frame's pressed state for all actions.
type InputData struct {
	Current  [cfg.ActionCount]bool
	Previous [cfg.ActionCount]bool
}

// JustPressed reports a press that started this frame.
func (d *InputData) JustPressed(action cfg.ActionID) bool {
	return d.Current[action] && !d.Previous[action]
}

var Input = donburi.NewComponentType[InputData]()
