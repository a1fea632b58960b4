package layout

// SkylineParams controls procedural tower generation. Widths and heights are
// fractions of the building layer.
type SkylineParams struct {
	Towers       int
	MinWidth     float64
	MaxWidth     float64
	MinHeight    float64
	MaxHeight    float64
	WindowChance float64
}

// Tower is one block of a building layer's skyline.
type Tower struct {
	X      float64
	Width  float64
	Height float64
	Seed   float64
}

// Skyline lays towers left to right across the layer, overlapping slightly so
// there are no gaps. Output depends only on the layer index and params.
func Skyline(layer int, p SkylineParams) []Tower {
	if p.Towers <= 0 {
		return nil
	}
	base := float64(layer)*97.31 + 3.7

	towers := make([]Tower, 0, p.Towers)
	x := -p.MinWidth / 2
	for i := 0; x < 1 && i < p.Towers*4; i++ {
		seed := base + float64(i)*17.23
		w := p.MinWidth + PseudoRandom(seed)*(p.MaxWidth-p.MinWidth)
		h := p.MinHeight + PseudoRandom(seed+5.9)*(p.MaxHeight-p.MinHeight)
		towers = append(towers, Tower{X: x, Width: w, Height: h, Seed: seed})
		x += w * 0.92
	}
	return towers
}

// WindowLit reports whether the window at row, col of this tower is lit.
func (t Tower) WindowLit(row, col int, chance float64) bool {
	return PseudoRandom(t.Seed+float64(row)*7.13+float64(col)*3.31) < chance
}
