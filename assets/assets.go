package assets

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/automoto/neon-reverie/layout"
)

//go:embed scenes/*.yaml
var sceneFS embed.FS

// DefaultScene is the embedded scene shipped with the binary.
const DefaultScene = "scenes/neon_reverie.yaml"

// SceneFS exposes the embedded scene files.
func SceneFS() fs.FS {
	return sceneFS
}

// ScenePath returns the on-disk file that overrides name, if one exists.
// name is tried as given, then relative to an assets/ directory.
func ScenePath(name string) (string, bool) {
	for _, candidate := range []string{name, filepath.Join("assets", filepath.FromSlash(name))} {
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, true
		}
	}
	return "", false
}

// LoadScene parses name from disk when present, otherwise from the embedded files.
func LoadScene(name string) (*layout.Scene, error) {
	if path, ok := ScenePath(name); ok {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("assets: read scene %s: %w", path, err)
		}
		scene, err := layout.Parse(data)
		if err != nil {
			return nil, fmt.Errorf("assets: scene %s: %w", path, err)
		}
		return scene, nil
	}
	return layout.Load(sceneFS, filepath.ToSlash(name))
}

// MustLoadScene is LoadScene for scenes that ship with the binary.
func MustLoadScene(name string) *layout.Scene {
	scene, err := LoadScene(name)
	if err != nil {
		panic(err)
	}
	return scene
}
