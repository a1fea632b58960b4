package layout

import "math"

// DefaultRainDrops is used when a scene file does not set rain.drops.
const DefaultRainDrops = 72

// PseudoRandom maps a seed to [0, 1) deterministically: the fractional part of sin(seed)*10000.
func PseudoRandom(seed float64) float64 {
	v := math.Sin(seed) * 10000
	return v - math.Floor(v)
}

// RainDrop describes one streak of the rain layer.
type RainDrop struct {
	Left       float64 // Fraction of the layer width
	Delay      float64 // Seconds before the first fall
	Duration   float64 // Seconds per fall
	Scale      float64 // Streak length multiplier
	Brightness float64 // Alpha multiplier
}

// GenerateRain returns count drops. The seeds depend on both the index and the
// count, so the same count always yields the same layout.
func GenerateRain(count int) []RainDrop {
	if count <= 0 {
		return nil
	}
	n := float64(count)
	drops := make([]RainDrop, count)
	for i := range drops {
		idx := float64(i)
		drops[i] = RainDrop{
			Left:       PseudoRandom(idx*3.37 + n*0.618),
			Delay:      PseudoRandom(idx*5.11+12.7) * 2,
			Duration:   1.2 + PseudoRandom(idx*7.43+4.2)*1.1,
			Scale:      0.55 + PseudoRandom(idx*11.92+1.7)*0.9,
			Brightness: 0.6 + PseudoRandom(idx*13.73+9.3)*0.4,
		}
	}
	return drops
}
