package sound

import (
	"bytes"
	"encoding/binary"
	"testing"
)

func testOptions(seed uint32) RainOptions {
	return RainOptions{
		SampleRate:  44100,
		Seed:        seed,
		Gain:        0.5,
		Cutoff:      0.08,
		DropRate:    400,
		SwellPeriod: 7,
	}
}

func read(t *testing.T, r *Rain, n int) []byte {
	t.Helper()
	buf := make([]byte, n)
	got, err := r.Read(buf)
	if err != nil || got != n {
		t.Fatalf("Read = %d, %v; want %d, nil", got, err, n)
	}
	return buf
}

func TestRainDeterministic(t *testing.T) {
	a := read(t, NewRain(testOptions(7)), 8192)
	b := read(t, NewRain(testOptions(7)), 8192)
	if !bytes.Equal(a, b) {
		t.Fatal("same seed should produce the same stream")
	}

	c := read(t, NewRain(testOptions(8)), 8192)
	if bytes.Equal(a, c) {
		t.Fatal("different seeds should produce different streams")
	}
}

func TestRainChunkedReadsMatch(t *testing.T) {
	whole := read(t, NewRain(testOptions(3)), 4003)

	r := NewRain(testOptions(3))
	var chunked []byte
	for len(chunked) < len(whole) {
		size := 3
		if rest := len(whole) - len(chunked); rest < size {
			size = rest
		}
		chunked = append(chunked, read(t, r, size)...)
	}
	if !bytes.Equal(whole, chunked) {
		t.Fatal("chunked reads should continue the same stream")
	}
}

func TestRainLevel(t *testing.T) {
	opts := testOptions(11)
	buf := read(t, NewRain(opts), 44100*bytesPerFrame)

	limit := int(opts.Gain*32767) + 1
	var peak int
	for i := 0; i < len(buf); i += 2 {
		s := int(int16(binary.LittleEndian.Uint16(buf[i:])))
		if s < 0 {
			s = -s
		}
		if s > peak {
			peak = s
		}
	}
	if peak == 0 {
		t.Fatal("stream is silent")
	}
	if peak > limit {
		t.Fatalf("peak %d exceeds gain limit %d", peak, limit)
	}
}

func TestRainZeroGainIsSilent(t *testing.T) {
	opts := testOptions(5)
	opts.Gain = 0
	for _, b := range read(t, NewRain(opts), 1024) {
		if b != 0 {
			t.Fatal("zero gain should produce silence")
		}
	}
}

func TestXorshiftZeroSeed(t *testing.T) {
	var r xorshift32
	r.Seed(0)
	if r.Next() == 0 {
		t.Fatal("zero seed should be replaced")
	}
}
