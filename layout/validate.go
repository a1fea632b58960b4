package layout

import (
	"errors"
	"fmt"
	"strings"
)

var ErrInvalidScene = errors.New("invalid scene")

// Validate checks the scene for values the renderer cannot draw.
func (s *Scene) Validate() error {
	var problems []string
	addf := func(format string, args ...any) {
		problems = append(problems, fmt.Sprintf(format, args...))
	}

	if s.Rain.Drops != nil && *s.Rain.Drops < 0 {
		addf("rain.drops must not be negative, got %d", *s.Rain.Drops)
	}

	ids := map[string]string{}
	checkID := func(kind, id string) {
		if id == "" {
			addf("%s: missing id", kind)
			return
		}
		if prev, ok := ids[id]; ok {
			addf("%s %q: id already used by a %s", kind, id, prev)
			return
		}
		ids[id] = kind
	}
	checkAnchor := func(kind, id string, a Anchor) {
		for _, f := range a.fractions() {
			if f < -0.5 || f > 1.5 {
				addf("%s %q: anchor offset %.2f out of range", kind, id, f)
			}
		}
	}

	for _, sign := range s.Signs {
		checkID("sign", sign.ID)
		checkAnchor("sign", sign.ID, sign.Anchor)
		if strings.TrimSpace(sign.Label) == "" {
			addf("sign %q: empty label", sign.ID)
		}
		if len(sign.Palette) == 0 {
			addf("sign %q: palette needs at least one color", sign.ID)
		}
	}
	for _, flare := range s.Flares {
		checkID("flare", flare.ID)
		checkAnchor("flare", flare.ID, flare.Anchor)
		if flare.Size <= 0 {
			addf("flare %q: size must be positive", flare.ID)
		}
		if len(flare.Gradient) == 0 {
			addf("flare %q: gradient needs at least one color", flare.ID)
		}
	}
	for _, b := range s.Buildings {
		checkID("building", b.ID)
		if b.Opacity < 0 || b.Opacity > 1 {
			addf("building %q: opacity %.2f outside [0, 1]", b.ID, b.Opacity)
		}
		if b.Blur < 0 {
			addf("building %q: blur must not be negative", b.ID)
		}
		if len(b.Gradient) < 2 {
			addf("building %q: gradient needs two colors", b.ID)
		}
	}
	for i, light := range s.Bokeh {
		id := fmt.Sprint(i)
		checkAnchor("bokeh", id, light.Anchor)
		if light.Radius <= 0 {
			addf("bokeh %s: radius must be positive", id)
		}
		if light.Opacity < 0 || light.Opacity > 1 {
			addf("bokeh %s: opacity %.2f outside [0, 1]", id, light.Opacity)
		}
	}
	for i, chip := range s.Overlays {
		if chip.Corner != CornerTopLeft && chip.Corner != CornerTopRight {
			addf("overlay %d: unknown corner %q", i, chip.Corner)
		}
		if strings.TrimSpace(chip.Text) == "" {
			addf("overlay %d: empty text", i)
		}
	}
	if s.Tracking.Fill < 0 || s.Tracking.Fill > 1 {
		addf("tracking.fill %.2f outside [0, 1]", s.Tracking.Fill)
	}

	if len(problems) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %s", ErrInvalidScene, strings.Join(problems, "; "))
}
