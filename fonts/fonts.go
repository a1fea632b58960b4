package fonts

import (
	"fmt"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
)

type FontName string

const (
	HUD     FontName = "hud"
	Sign    FontName = "sign"
	Track   FontName = "track"
	Debug   FontName = "debug"
	Heading FontName = "heading"
	Body    FontName = "body"
	Tag     FontName = "tag"
)

func (f FontName) Get() font.Face {
	return getFont(f)
}

var (
	fonts = map[FontName]font.Face{}
)

func LoadFont(name FontName, ttf []byte) {
	LoadFontWithSize(name, ttf, 10)
}

func LoadFontWithSize(name FontName, ttf []byte, size float64) {
	fontData, err := truetype.Parse(ttf)
	if err != nil {
		panic(fmt.Sprintf("Font %s: %v", name, err))
	}
	fonts[name] = truetype.NewFace(fontData, &truetype.Options{
		Size:    size,
		Hinting: font.HintingFull,
	})
}

// Sizes holds the point size of each default face.
type Sizes struct {
	HUD     float64
	Sign    float64
	Heading float64
	Body    float64
	Tag     float64
}

// LoadDefaults registers every face the scene and the caption card draw with,
// using the Go fonts.
func LoadDefaults(sizes Sizes) {
	LoadFontWithSize(HUD, goregular.TTF, sizes.HUD)
	LoadFontWithSize(Sign, gobold.TTF, sizes.Sign)
	LoadFontWithSize(Track, goregular.TTF, sizes.HUD+1)
	LoadFontWithSize(Debug, gomono.TTF, sizes.HUD+1)
	LoadFontWithSize(Heading, gobold.TTF, sizes.Heading)
	LoadFontWithSize(Body, goregular.TTF, sizes.Body)
	LoadFontWithSize(Tag, goregular.TTF, sizes.Tag)
}

// Loaded reports whether name has been registered.
func Loaded(name FontName) bool {
	_, ok := fonts[name]
	return ok
}

func getFont(name FontName) font.Face {
	f, ok := fonts[name]
	if !ok {
		panic(fmt.Sprintf("Font %s not found", name))
	}
	return f
}
