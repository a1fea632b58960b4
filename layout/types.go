package layout

import (
	"fmt"
	"image/color"

	"github.com/mazznoer/csscolorparser"
	"gopkg.in/yaml.v3"
)

// Scene is the declarative description of everything drawn in the view.
type Scene struct {
	Title       string          `yaml:"title"`
	Description string          `yaml:"description"`
	Rain        RainSpec        `yaml:"rain"`
	Signs       []NeonSign      `yaml:"signs"`
	Flares      []LensFlare     `yaml:"flares"`
	Buildings   []BuildingLayer `yaml:"buildings"`
	Bokeh       []BokehLight    `yaml:"bokeh"`
	Overlays    []OverlayChip   `yaml:"overlays"`
	Tracking    TrackingBar     `yaml:"tracking"`
	Caption     Caption         `yaml:"caption"`
}

// WindowTitle returns the scene title, or fallback when the file has none.
func (s *Scene) WindowTitle(fallback string) string {
	if s == nil || s.Title == "" {
		return fallback
	}
	return s.Title
}

type RainSpec struct {
	Drops *int `yaml:"drops,omitempty"`
}

// DropCount returns the configured drop count or the default.
func (r RainSpec) DropCount() int {
	if r.Drops == nil {
		return DefaultRainDrops
	}
	return *r.Drops
}

// Anchor positions a box inside a container using CSS-like edge offsets
// expressed as fractions. Unset axes center the box.
type Anchor struct {
	Top    *float64 `yaml:"top,omitempty"`
	Bottom *float64 `yaml:"bottom,omitempty"`
	Left   *float64 `yaml:"left,omitempty"`
	Right  *float64 `yaml:"right,omitempty"`
}

// Resolve returns the top-left corner of a boxW x boxH box in a w x h container.
func (a Anchor) Resolve(w, h, boxW, boxH float64) (x, y float64) {
	switch {
	case a.Left != nil:
		x = *a.Left * w
	case a.Right != nil:
		x = w - *a.Right*w - boxW
	default:
		x = (w - boxW) / 2
	}
	switch {
	case a.Top != nil:
		y = *a.Top * h
	case a.Bottom != nil:
		y = h - *a.Bottom*h - boxH
	default:
		y = (h - boxH) / 2
	}
	return x, y
}

func (a Anchor) fractions() []float64 {
	var out []float64
	for _, f := range []*float64{a.Top, a.Bottom, a.Left, a.Right} {
		if f != nil {
			out = append(out, *f)
		}
	}
	return out
}

type NeonSign struct {
	ID       string  `yaml:"id"`
	Label    string  `yaml:"label"`
	Anchor   Anchor  `yaml:"anchor"`
	Rotation float64 `yaml:"rotation"` // degrees
	Palette  []Color `yaml:"palette"`
}

type LensFlare struct {
	ID       string  `yaml:"id"`
	Anchor   Anchor  `yaml:"anchor"`
	Size     float64 `yaml:"size"` // diameter in pixels
	Gradient []Color `yaml:"gradient"`
}

type BuildingLayer struct {
	ID       string  `yaml:"id"`
	Blur     float64 `yaml:"blur"`     // softening radius in pixels
	Opacity  float64 `yaml:"opacity"`  // 0..1
	OffsetY  float64 `yaml:"offset_y"` // fraction of the scene height
	Gradient []Color `yaml:"gradient"`
}

type BokehLight struct {
	Anchor  Anchor  `yaml:"anchor"`
	Radius  float64 `yaml:"radius"`
	Color   Color   `yaml:"color"`
	Ring    bool    `yaml:"ring"`
	Opacity float64 `yaml:"opacity"`
}

// Corner selects which overlay column a chip stacks into.
type Corner string

const (
	CornerTopLeft  Corner = "top_left"
	CornerTopRight Corner = "top_right"
)

type OverlayChip struct {
	Text   string `yaml:"text"`
	Corner Corner `yaml:"corner"`
}

type TrackingBar struct {
	Label    string  `yaml:"label"`
	Fill     float64 `yaml:"fill"` // width of the sweep as a fraction of the track
	Gradient []Color `yaml:"gradient"`
}

type Caption struct {
	Tags    []string `yaml:"tags"`
	Heading string   `yaml:"heading"`
	Body    string   `yaml:"body"`
}

// Color is a CSS color string in scene files, held as straight alpha.
type Color struct {
	color.RGBA
}

func (c *Color) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := ParseColor(s)
	if err != nil {
		return fmt.Errorf("line %d: %w", value.Line, err)
	}
	*c = parsed
	return nil
}

func (c Color) MarshalYAML() (interface{}, error) {
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A), nil
}

// ParseColor accepts hex, rgb()/rgba(), hsl() and named CSS colors.
func ParseColor(s string) (Color, error) {
	parsed, err := csscolorparser.Parse(s)
	if err != nil {
		return Color{}, fmt.Errorf("layout: color %q: %w", s, err)
	}
	r, g, b, a := parsed.RGBA255()
	return Color{color.RGBA{R: r, G: g, B: b, A: a}}, nil
}

// WithAlpha scales the color's alpha by f and returns it premultiplied, the
// form ebiten expects from color.RGBA.
func (c Color) WithAlpha(f float64) color.RGBA {
	a := float64(c.A) / 255 * clamp01(f)
	return color.RGBA{
		R: uint8(float64(c.R)*a + 0.5),
		G: uint8(float64(c.G)*a + 0.5),
		B: uint8(float64(c.B)*a + 0.5),
		A: uint8(a*255 + 0.5),
	}
}

func clamp01(f float64) float64 {
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}
