package testutil

import (
	"math"
	"testing"
)

func TestDeterministicSine(t *testing.T) {
	s := DeterministicSine(1000, 48000, 1.0, 48)
	if len(s) != 48 {
		t.Fatalf("len = %d, want 48", len(s))
	}
	// First sample of a sine at phase 0 should be 0.
	if math.Abs(s[0]) > 1e-15 {
		t.Fatalf("s[0] = %v, want 0", s[0])
	}
	// All values in [-1, 1].
	for i, v := range s {
		if v < -1 || v > 1 {
			t.Fatalf("s[%d] = %v out of range", i, v)
		}
	}
}

func TestMultiTone(t *testing.T) {
	freqs := []float64{500, 4000}
	m := MultiTone(freqs, 48000, 0.5, 256)
	a := DeterministicSine(500, 48000, 0.5, 256)
	b := DeterministicSine(4000, 48000, 0.5, 256)
	for i := range m {
		if math.Abs(m[i]-(a[i]+b[i])) > 1e-15 {
			t.Fatalf("MultiTone[%d] = %v, want sum of tones %v", i, m[i], a[i]+b[i])
		}
	}
}

func TestDeterministicNoise(t *testing.T) {
	a := DeterministicNoise(42, 1.0, 64)
	b := DeterministicNoise(42, 1.0, 64)
	if len(a) != 64 {
		t.Fatalf("len = %d, want 64", len(a))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("noise not deterministic at index %d", i)
		}
	}
}

func TestDeterministicNoiseDifferentSeeds(t *testing.T) {
	a := DeterministicNoise(1, 1.0, 16)
	b := DeterministicNoise(2, 1.0, 16)
	same := true
	for i := range a {
		if a[i] != b[i] {
			same = false
			break
		}
	}
	if same {
		t.Fatal("different seeds produced identical noise")
	}
}

func TestDC(t *testing.T) {
	d := DC(0.5, 4)
	for i, v := range d {
		if v != 0.5 {
			t.Fatalf("DC[%d] = %v, want 0.5", i, v)
		}
	}
}

func TestBandEnergy(t *testing.T) {
	const fs = 48000.0
	s := DeterministicSine(1000, fs, 1.0, 4096)

	inBand := BandEnergy(s, fs, 800, 1200)
	outBand := BandEnergy(s, fs, 8000, 16000)
	if inBand <= 0 {
		t.Fatal("in-band energy should be positive")
	}
	if outBand > inBand*1e-6 {
		t.Fatalf("out-of-band energy %v not negligible vs in-band %v", outBand, inBand)
	}
}
