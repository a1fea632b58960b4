package layout

import (
	"math"
	"testing"
)

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestPseudoRandomRange(t *testing.T) {
	for i := 0; i < 1000; i++ {
		v := PseudoRandom(float64(i)*0.731 - 40)
		if v < 0 || v >= 1 {
			t.Fatalf("PseudoRandom out of range at %d: %v", i, v)
		}
	}
}

func TestGenerateRainSnapshot(t *testing.T) {
	drops := GenerateRain(72)
	if len(drops) != 72 {
		t.Fatalf("expected 72 drops, got %d", len(drops))
	}

	tests := []struct {
		index int
		want  RainDrop
	}{
		{0, RainDrop{0.05534554993482743, 0.6408283988444055, 1.4665034505305812, 1.1332940722169953, 0.8176940282468422}},
		{1, RainDrop{0.5527729368486689, 0.4131859531516966, 2.165600175937834, 0.7604723072061461, 0.9110939132755448}},
		{71, RainDrop{0.9777244074812188, 0.36736831197413267, 1.8363973331953276, 0.7659347708870428, 0.9191522705223178}},
	}

	for _, tt := range tests {
		got := drops[tt.index]
		if !approx(got.Left, tt.want.Left) || !approx(got.Delay, tt.want.Delay) ||
			!approx(got.Duration, tt.want.Duration) || !approx(got.Scale, tt.want.Scale) ||
			!approx(got.Brightness, tt.want.Brightness) {
			t.Fatalf("drop %d = %+v, want %+v", tt.index, got, tt.want)
		}
	}
}

func TestGenerateRainDeterministic(t *testing.T) {
	a := GenerateRain(40)
	b := GenerateRain(40)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("drop %d differs between runs: %+v vs %+v", i, a[i], b[i])
		}
	}
}

func TestGenerateRainRanges(t *testing.T) {
	for _, d := range GenerateRain(500) {
		switch {
		case d.Left < 0 || d.Left >= 1:
			t.Fatalf("left out of range: %+v", d)
		case d.Delay < 0 || d.Delay >= 2:
			t.Fatalf("delay out of range: %+v", d)
		case d.Duration < 1.2 || d.Duration >= 2.3:
			t.Fatalf("duration out of range: %+v", d)
		case d.Scale < 0.55 || d.Scale >= 1.45:
			t.Fatalf("scale out of range: %+v", d)
		case d.Brightness < 0.6 || d.Brightness >= 1:
			t.Fatalf("brightness out of range: %+v", d)
		}
	}
}

func TestGenerateRainCountChangesLeftOnly(t *testing.T) {
	small := GenerateRain(10)
	large := GenerateRain(11)
	for i := range small {
		if small[i].Left == large[i].Left {
			t.Fatalf("drop %d: left should depend on the drop count", i)
		}
		if small[i].Delay != large[i].Delay || small[i].Duration != large[i].Duration ||
			small[i].Scale != large[i].Scale || small[i].Brightness != large[i].Brightness {
			t.Fatalf("drop %d: only left should depend on the drop count", i)
		}
	}
}

func TestGenerateRainEmpty(t *testing.T) {
	if got := GenerateRain(0); len(got) != 0 {
		t.Fatalf("expected no drops, got %d", len(got))
	}
	if got := GenerateRain(-3); len(got) != 0 {
		t.Fatalf("expected no drops for negative count, got %d", len(got))
	}
}

func TestSkyline(t *testing.T) {
	p := SkylineParams{Towers: 14, MinWidth: 0.04, MaxWidth: 0.11, MinHeight: 0.35, MaxHeight: 0.95, WindowChance: 0.28}

	t.Run("deterministic", func(t *testing.T) {
		a, b := Skyline(2, p), Skyline(2, p)
		if len(a) != len(b) {
			t.Fatalf("lengths differ: %d vs %d", len(a), len(b))
		}
		for i := range a {
			if a[i] != b[i] {
				t.Fatalf("tower %d differs: %+v vs %+v", i, a[i], b[i])
			}
		}
	})

	t.Run("covers_width", func(t *testing.T) {
		towers := Skyline(0, p)
		if len(towers) == 0 {
			t.Fatal("expected towers")
		}
		last := towers[len(towers)-1]
		if last.X+last.Width < 1 {
			t.Fatalf("skyline stops at %.3f", last.X+last.Width)
		}
		for i, tw := range towers {
			if tw.Width < p.MinWidth || tw.Width > p.MaxWidth {
				t.Fatalf("tower %d width %.3f out of range", i, tw.Width)
			}
			if tw.Height < p.MinHeight || tw.Height > p.MaxHeight {
				t.Fatalf("tower %d height %.3f out of range", i, tw.Height)
			}
			if i > 0 && tw.X > towers[i-1].X+towers[i-1].Width {
				t.Fatalf("gap before tower %d", i)
			}
		}
	})

	t.Run("layers_differ", func(t *testing.T) {
		if Skyline(0, p)[0] == Skyline(1, p)[0] {
			t.Fatal("layers should not share a skyline")
		}
	})

	t.Run("no_towers", func(t *testing.T) {
		if got := Skyline(0, SkylineParams{}); got != nil {
			t.Fatalf("expected nil, got %d towers", len(got))
		}
	})

	t.Run("window_chance_bounds", func(t *testing.T) {
		tw := Skyline(0, p)[0]
		for r := 0; r < 5; r++ {
			for c := 0; c < 5; c++ {
				if tw.WindowLit(r, c, 0) {
					t.Fatal("no window should be lit at chance 0")
				}
				if !tw.WindowLit(r, c, 1) {
					t.Fatal("every window should be lit at chance 1")
				}
			}
		}
	})
}
