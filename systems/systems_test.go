package systems

import (
	"image/color"
	"math"
	"testing"
	"time"

	"github.com/automoto/neon-reverie/components"
	cfg "github.com/automoto/neon-reverie/config"
	"github.com/automoto/neon-reverie/layout"
	"github.com/automoto/neon-reverie/parallax"
	"github.com/tanema/gween/ease"
)

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-6
}

func TestTrackPointer(t *testing.T) {
	driver, err := parallax.NewDriver(cfg.Parallax, nil)
	if err != nil {
		t.Fatalf("NewDriver: %v", err)
	}
	camera := &components.CameraData{Driver: driver}

	trackPointer(camera, 1280, 320, 1280, 640)
	if !camera.HasPointer {
		t.Fatal("first sample should be recorded")
	}
	if got := driver.Target(); got != (parallax.Vector{}) {
		t.Fatalf("first sample moved the target to %v", got)
	}

	trackPointer(camera, 1280, 320, 1280, 640)
	if got := driver.Target(); got != (parallax.Vector{}) {
		t.Fatalf("resting cursor moved the target to %v", got)
	}

	trackPointer(camera, 1279, 320, 1280, 640)
	got := driver.Target()
	wantX := (1279.0/1280 - 0.5) * cfg.Parallax.OffsetScaleX
	if !approx(got.X, wantX) || !approx(got.Y, 0) {
		t.Fatalf("target = %v, want X=%v Y=0", got, wantX)
	}
}

func TestStepTween(t *testing.T) {
	t.Run("ping_pong", func(t *testing.T) {
		tw := components.NewTween(0, 1, 1, ease.Linear, components.TweenPingPong)
		stepTween(&tw, 0.5)
		if !approx(float64(tw.Value), 0.5) {
			t.Fatalf("Value = %v, want 0.5", tw.Value)
		}
		stepTween(&tw, 0.5)
		if tw.Passes != 1 || !tw.Reversed {
			t.Fatalf("Passes = %d, Reversed = %v after a full pass", tw.Passes, tw.Reversed)
		}
		stepTween(&tw, 0.25)
		if !approx(float64(tw.Value), 0.75) {
			t.Fatalf("reversed Value = %v, want 0.75", tw.Value)
		}
	})

	t.Run("restart", func(t *testing.T) {
		tw := components.NewTween(0, 1, 1, ease.Linear, components.TweenRestart)
		stepTween(&tw, 1)
		if tw.Passes != 1 || tw.Reversed {
			t.Fatalf("Passes = %d, Reversed = %v", tw.Passes, tw.Reversed)
		}
		stepTween(&tw, 0.25)
		if !approx(float64(tw.Value), 0.25) {
			t.Fatalf("restarted Value = %v, want 0.25", tw.Value)
		}
	})

	t.Run("nil_tween", func(t *testing.T) {
		tw := components.TweenData{}
		stepTween(&tw, 1)
		if tw.Passes != 0 {
			t.Fatal("nil tween should not advance")
		}
	})
}

func TestAdvanceDrop(t *testing.T) {
	tests := []struct {
		name       string
		seconds    float64
		wantActive bool
		wantFall   float64
	}{
		{"waiting", 0.5, false, 0},
		{"halfway", 2, true, 0.5},
		{"wrapped", 5, true, 0},
		{"second_pass", 3.5, true, 0.25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := &components.RainDropData{Drop: layout.RainDrop{Delay: 1, Duration: 2}}
			advanceDrop(d, tt.seconds)
			if d.Active != tt.wantActive || !approx(d.Fall, tt.wantFall) {
				t.Fatalf("advanceDrop(%v) = active %v fall %v, want %v %v",
					tt.seconds, d.Active, d.Fall, tt.wantActive, tt.wantFall)
			}
		})
	}
}

func TestDropSegment(t *testing.T) {
	d := &components.RainDropData{Drop: layout.RainDrop{Left: 0.5, Scale: 1}}
	_, y0, _, y1 := dropSegment(d, 1000, 500)
	if y1 > 0 || y0 >= y1 {
		t.Fatalf("drop at the start of its fall should sit above the top edge, got %v..%v", y0, y1)
	}

	d.Fall = 1
	_, y0, _, _ = dropSegment(d, 1000, 500)
	if y0 < 500 {
		t.Fatalf("drop at the end of its fall should be below the bottom edge, tail at %v", y0)
	}
}

func TestStreak(t *testing.T) {
	vs, is := streak(0, 0, 0, 10, 2, color.RGBA{}, color.RGBA{A: 255})
	if len(vs) != 4 || len(is) != 6 {
		t.Fatalf("streak = %d vertices %d indices, want 4 and 6", len(vs), len(is))
	}
	if vs[0].DstX != -1 || vs[1].DstX != 1 {
		t.Fatalf("streak width: got x %v and %v", vs[0].DstX, vs[1].DstX)
	}
	if vs, _ := streak(3, 3, 3, 3, 2, color.RGBA{}, color.RGBA{}); vs != nil {
		t.Fatal("zero length streak should be empty")
	}
}

func TestAdvanceClock(t *testing.T) {
	clock := &components.SceneClockData{Epoch: time.Unix(100, 0)}
	for range 60 {
		advanceClock(clock, 60)
	}
	if clock.Elapsed != time.Second {
		t.Fatalf("Elapsed = %v after 60 ticks, want 1s", clock.Elapsed)
	}
	if !clock.Now().Equal(time.Unix(101, 0)) {
		t.Fatalf("Now = %v", clock.Now())
	}

	fallback := &components.SceneClockData{}
	advanceClock(fallback, 0)
	if fallback.Elapsed != time.Second/60 {
		t.Fatalf("zero tps Elapsed = %v, want one 60Hz tick", fallback.Elapsed)
	}
}

func TestToggleSettings(t *testing.T) {
	settings := &components.SettingsData{}
	input := &components.InputData{}

	var pressed [cfg.ActionCount]bool
	pressed[cfg.ActionToggleDebug] = true
	pressed[cfg.ActionToggleFullscreen] = true
	applyInput(input, pressed)

	if !toggleSettings(settings, input) {
		t.Fatal("fullscreen chord should report a change")
	}
	if !settings.Debug || !settings.Fullscreen {
		t.Fatalf("settings = %+v", settings)
	}

	// Held keys do not repeat.
	applyInput(input, pressed)
	if toggleSettings(settings, input) || !settings.Debug {
		t.Fatalf("held chord toggled again: %+v", settings)
	}

	var none [cfg.ActionCount]bool
	none[cfg.ActionToggleMute] = true
	none[cfg.ActionQuit] = true
	applyInput(input, none)
	toggleSettings(settings, input)
	if !settings.Muted || !settings.Quit {
		t.Fatalf("mute and quit not applied: %+v", settings)
	}
}

type fakePlayer struct {
	volume  float64
	playing bool
	closed  bool
}

func (p *fakePlayer) Play()               { p.playing = true }
func (p *fakePlayer) SetVolume(v float64) { p.volume = v }
func (p *fakePlayer) Volume() float64     { return p.volume }
func (p *fakePlayer) Close() error        { p.closed = true; return nil }

func TestAmbienceVolume(t *testing.T) {
	data := &components.AudioData{Player: &fakePlayer{}, TargetVolume: 0.8, FadeDuration: 4}

	if v := ambienceVolume(data, false); !approx(v, 0.2) {
		t.Fatalf("first tick volume = %v, want 0.2", v)
	}
	if v := ambienceVolume(data, true); v != 0 {
		t.Fatalf("muted volume = %v, want 0", v)
	}
	ambienceVolume(data, false)
	if v := ambienceVolume(data, false); !approx(v, 0.8) {
		t.Fatalf("faded in volume = %v, want 0.8", v)
	}
	if v := ambienceVolume(data, false); !approx(v, 0.8) {
		t.Fatalf("volume kept growing: %v", v)
	}

	instant := &components.AudioData{TargetVolume: 0.5}
	if v := ambienceVolume(instant, false); v != 0.5 {
		t.Fatalf("no fade volume = %v, want 0.5", v)
	}
}

func TestSampleStops(t *testing.T) {
	black := color.RGBA{A: 255}
	white := color.RGBA{R: 255, G: 255, B: 255, A: 255}
	stops := evenStops(black, white)

	tests := []struct {
		name string
		t    float64
		want color.RGBA
	}{
		{"before", -1, black},
		{"start", 0, black},
		{"middle", 0.5, color.RGBA{R: 128, G: 128, B: 128, A: 255}},
		{"end", 1, white},
		{"after", 2, white},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := sampleStops(stops, tt.t); got != tt.want {
				t.Fatalf("sampleStops(%v) = %v, want %v", tt.t, got, tt.want)
			}
		})
	}

	if got := sampleStops(nil, 0.5); got != (color.RGBA{}) {
		t.Fatalf("empty stops = %v", got)
	}
	if got := evenStops(white); len(got) != 1 || got[0].At != 0 {
		t.Fatalf("single stop = %v", got)
	}
}

func TestScaleAlpha(t *testing.T) {
	c := color.RGBA{R: 200, G: 100, B: 50, A: 200}
	if got := scaleAlpha(c, 0.5); got != (color.RGBA{R: 100, G: 50, B: 25, A: 100}) {
		t.Fatalf("scaleAlpha = %v", got)
	}
	if got := scaleAlpha(c, 3); got != c {
		t.Fatalf("scaleAlpha clamps above 1, got %v", got)
	}
}

func TestClipPolygonTop(t *testing.T) {
	square := []point{{0, 0}, {10, 0}, {10, 10}, {0, 10}}
	got := clipPolygonTop(square, 4)
	want := []point{{10, 4}, {10, 10}, {0, 10}, {0, 4}}
	if len(got) != len(want) {
		t.Fatalf("clipPolygonTop = %v, want %v", got, want)
	}
	for i := range want {
		if !approx(got[i].X, want[i].X) || !approx(got[i].Y, want[i].Y) {
			t.Fatalf("clipPolygonTop = %v, want %v", got, want)
		}
	}

	if got := clipPolygonTop(square, 20); len(got) != 0 {
		t.Fatalf("clip below the polygon = %v, want empty", got)
	}
}

func TestRoundedRect(t *testing.T) {
	pts := roundedRect(0, 0, 100, 50, 10)
	if len(pts) != 36 {
		t.Fatalf("len = %d, want 36", len(pts))
	}
	for _, p := range pts {
		if p.X < -1e-9 || p.X > 100+1e-9 || p.Y < -1e-9 || p.Y > 50+1e-9 {
			t.Fatalf("point %v outside the rectangle", p)
		}
	}
	if !approx(pts[0].X, 90) || !approx(pts[0].Y, 0) {
		t.Fatalf("first point = %v, want (90, 0)", pts[0])
	}

	// The radius is capped at half the short side.
	pts = roundedRect(0, 0, 20, 10, 50)
	if !approx(pts[0].X, 15) {
		t.Fatalf("capped radius first point = %v, want x 15", pts[0])
	}
}

func TestEvenRings(t *testing.T) {
	rings := evenRings([]gradientStop{{At: 0}, {At: 0.3}, {At: 1}})
	if len(rings) != 9 {
		t.Fatalf("len = %d, want 9", len(rings))
	}
	for i := 1; i < len(rings); i++ {
		if rings[i] < rings[i-1] {
			t.Fatalf("rings not sorted: %v", rings)
		}
	}
	if rings[len(rings)-1] != 1 {
		t.Fatalf("last ring = %v, want 1", rings[len(rings)-1])
	}
}
