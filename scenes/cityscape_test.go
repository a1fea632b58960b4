package scenes

import (
	"math"
	"testing"

	"github.com/automoto/neon-reverie/parallax"
)

func TestSceneGeoM(t *testing.T) {
	const frameW, frameH = 1000, 500
	const sceneW, sceneH = 1240, 620

	tests := []struct {
		name         string
		pose         parallax.Vector
		wantX, wantY float64
	}{
		{"rest", parallax.Vector{}, 500, 250},
		{"translated", parallax.Vector{X: 12, Y: -8}, 512, 242},
		{"tilted", parallax.Vector{RotateX: 3, RotateY: -4}, 500, 250},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			geo := sceneGeoM(tt.pose, frameW, frameH, sceneW, sceneH)
			x, y := geo.Apply(sceneW/2, sceneH/2)
			if math.Abs(x-tt.wantX) > 1e-6 || math.Abs(y-tt.wantY) > 1e-6 {
				t.Fatalf("scene center maps to (%v, %v), want (%v, %v)", x, y, tt.wantX, tt.wantY)
			}
		})
	}
}

func TestSceneGeoMZoomsAroundCenter(t *testing.T) {
	geo := sceneGeoM(parallax.Vector{}, 1000, 500, 1240, 620)
	x0, _ := geo.Apply(0, 310)
	x1, _ := geo.Apply(1240, 310)
	if x1-x0 <= 1240 {
		t.Fatalf("scene width on screen = %v, want zoomed past 1240", x1-x0)
	}
}
