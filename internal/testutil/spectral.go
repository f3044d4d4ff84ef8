package testutil

import (
	"math"

	algofft "github.com/MeKo-Christian/algo-fft"
)

// BandEnergy returns the summed squared-magnitude spectrum of signal
// between loHz and hiHz (inclusive). The signal is Hann-windowed and
// zero-padded to the next power of two before the FFT.
func BandEnergy(signal []float64, sampleRate, loHz, hiHz float64) float64 {
	n := len(signal)
	if n == 0 || sampleRate <= 0 {
		return 0
	}

	fftSize := nextPowerOf2(n)
	den := float64(n - 1)
	if den == 0 {
		den = 1
	}
	inData := make([]complex128, fftSize)
	for i, v := range signal {
		w := 0.5 * (1 - math.Cos(2*math.Pi*float64(i)/den))
		inData[i] = complex(v*w, 0)
	}

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return 0
	}
	out := make([]complex128, fftSize)
	if err := plan.Forward(out, inData); err != nil {
		return 0
	}

	binHz := sampleRate / float64(fftSize)
	energy := 0.0
	for k := 0; k <= fftSize/2; k++ {
		f := float64(k) * binHz
		if f < loHz || f > hiHz {
			continue
		}
		re := real(out[k])
		im := imag(out[k])
		energy += re*re + im*im
	}
	return energy
}

func nextPowerOf2(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}
