package layout

import (
	"bytes"
	"fmt"
	"io"
	"io/fs"

	"gopkg.in/yaml.v3"
)

// Parse decodes and validates a scene document. Unknown keys are rejected so
// typos in hand-edited files surface instead of silently dropping a layer.
func Parse(data []byte) (*Scene, error) {
	return Decode(bytes.NewReader(data))
}

func Decode(r io.Reader) (*Scene, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var scene Scene
	if err := dec.Decode(&scene); err != nil {
		if err == io.EOF {
			return nil, fmt.Errorf("layout: decode: %w: empty document", ErrInvalidScene)
		}
		return nil, fmt.Errorf("layout: decode: %w", err)
	}
	if err := scene.Validate(); err != nil {
		return nil, err
	}
	return &scene, nil
}

// Load reads and parses name from fsys.
func Load(fsys fs.FS, name string) (*Scene, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("layout: load %s: %w", name, err)
	}
	scene, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("layout: load %s: %w", name, err)
	}
	return scene, nil
}

// Marshal encodes a scene back to YAML.
func Marshal(s *Scene) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(s); err != nil {
		return nil, fmt.Errorf("layout: encode: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("layout: encode: %w", err)
	}
	return buf.Bytes(), nil
}
