package layout

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestWatcherReportsSceneWrites(t *testing.T) {
	dir := t.TempDir()
	scene := filepath.Join(dir, "scene.yaml")
	other := filepath.Join(dir, "other.yaml")
	for _, p := range []string{scene, other} {
		if err := os.WriteFile(p, []byte("title: a\n"), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	w, err := NewWatcher(scene)
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(other, []byte("title: b\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(scene, []byte("title: c\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case got := <-w.Events:
		if filepath.Base(got) != "scene.yaml" {
			t.Fatalf("event for %q, want scene.yaml", got)
		}
	case err := <-w.Errors:
		t.Fatalf("watcher error: %v", err)
	case <-time.After(3 * time.Second):
		t.Fatal("no event for the watched scene file")
	}
}

func TestWatcherCloseTwice(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(filepath.Join(dir, "scene.yaml"))
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("first Close: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("second Close: %v", err)
	}
	if _, ok := <-w.Events; ok {
		t.Fatal("Events should be closed")
	}
}

func TestIsSceneFile(t *testing.T) {
	tests := map[string]bool{
		"a.yaml": true,
		"a.YML":  true,
		"a.json": false,
		"a":      false,
	}
	for path, want := range tests {
		if got := isSceneFile(path); got != want {
			t.Fatalf("isSceneFile(%q) = %v, want %v", path, got, want)
		}
	}
}
