package components

import (
	"github.com/automoto/neon-reverie/layout"
	"github.com/yohamta/donburi"
)

// LayoutData is the scene description the decorative entities were spawned from.
type LayoutData struct {
	Scene      *layout.Scene
	Source     string // Scene name or on-disk path
	Watcher    *layout.Watcher
	Generation int // Bumped on every successful reload
}

var Layout = donburi.NewComponentType[LayoutData]()
