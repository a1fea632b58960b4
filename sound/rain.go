// Package sound synthesizes the rain ambience so the scene needs no audio files.
package sound

import (
	"encoding/binary"
	"math"
)

const bytesPerFrame = 4 // 16-bit little endian stereo

type xorshift32 struct {
	s uint32
}

func (r *xorshift32) Seed(v uint32) {
	if v == 0 {
		v = 0x12345678
	}
	r.s = v
}

func (r *xorshift32) Next() uint32 {
	x := r.s
	x ^= x << 13
	x ^= x >> 17
	x ^= x << 5
	r.s = x
	return x
}

// float returns a value in [0, 1).
func (r *xorshift32) float() float64 {
	return float64(r.Next()) / (1 << 32)
}

// RainOptions tunes the generated rain.
type RainOptions struct {
	SampleRate  int
	Seed        uint32
	Gain        float64 // Peak level, 0..1
	Cutoff      float64 // One-pole lowpass coefficient for the body of the hiss
	DropRate    float64 // Audible droplets per second
	SwellPeriod float64 // Seconds per loudness swell
}

// Rain is an endless PCM stream of filtered noise with scattered droplets.
// It implements io.Reader and never returns an error.
type Rain struct {
	opts RainOptions
	rng  xorshift32

	lowL, lowR float64
	drop       float64 // Envelope of the current droplet
	dropPhase  float64
	dropStep   float64
	dropPan    float64
	frameIndex uint64

	frame [bytesPerFrame]byte
	off   int
}

func NewRain(opts RainOptions) *Rain {
	r := &Rain{opts: opts, off: bytesPerFrame}
	r.rng.Seed(opts.Seed)
	return r
}

func (r *Rain) Read(p []byte) (int, error) {
	n := 0
	for n < len(p) {
		if r.off == bytesPerFrame {
			r.next()
			r.off = 0
		}
		c := copy(p[n:], r.frame[r.off:])
		r.off += c
		n += c
	}
	return n, nil
}

func (r *Rain) next() {
	rate := float64(r.opts.SampleRate)
	t := float64(r.frameIndex) / rate
	r.frameIndex++

	whiteL := r.rng.float()*2 - 1
	whiteR := r.rng.float()*2 - 1
	r.lowL += (whiteL - r.lowL) * r.opts.Cutoff
	r.lowR += (whiteR - r.lowR) * r.opts.Cutoff
	left := r.lowL*0.7 + (whiteL-r.lowL)*0.12
	right := r.lowR*0.7 + (whiteR-r.lowR)*0.12

	if r.opts.DropRate > 0 && r.rng.float() < r.opts.DropRate/rate {
		r.drop = 0.4 + r.rng.float()*0.6
		r.dropPhase = 0
		r.dropStep = 2 * math.Pi * (1500 + r.rng.float()*2500) / rate
		r.dropPan = r.rng.float()
	}
	if r.drop > 1e-4 {
		ping := math.Sin(r.dropPhase) * r.drop * 0.25
		r.dropPhase += r.dropStep
		r.drop *= 0.996
		left += ping * (1 - r.dropPan)
		right += ping * r.dropPan
	}

	swell := 1.0
	if r.opts.SwellPeriod > 0 {
		swell = 0.8 + 0.2*math.Sin(2*math.Pi*t/r.opts.SwellPeriod)
	}

	level := swell * r.opts.Gain
	binary.LittleEndian.PutUint16(r.frame[0:], uint16(toPCM(clip(left)*level)))
	binary.LittleEndian.PutUint16(r.frame[2:], uint16(toPCM(clip(right)*level)))
}

func clip(v float64) float64 {
	return math.Max(-1, math.Min(1, v))
}

func toPCM(v float64) int16 {
	return int16(clip(v) * math.MaxInt16)
}
