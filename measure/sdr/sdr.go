package sdr

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/vocalblend/dsp/buffer"
)

// Epsilon regularizes both the numerator and denominator so silent
// references and perfect estimates stay finite.
const Epsilon = 1e-7

// Single computes the signal-to-distortion ratio in dB between a
// reference signal and an estimate of it:
//
//	10*log10((Σ ref² + ε) / (Σ (ref-est)² + ε))
//
// The sums run over all channels and samples. Both signals must have
// the same shape.
func Single(ref, est [][]float64) (float64, error) {
	if len(ref) != len(est) {
		return 0, fmt.Errorf("sdr: channel count mismatch: %d vs %d", len(ref), len(est))
	}

	var signal, distortion float64
	var scratch []float64
	for c := range ref {
		if len(ref[c]) != len(est[c]) {
			return 0, fmt.Errorf("sdr: channel %d length mismatch: %d vs %d",
				c, len(ref[c]), len(est[c]))
		}
		n := len(ref[c])
		if cap(scratch) < n {
			scratch = make([]float64, n)
		}
		sq := scratch[:n]

		vecmath.MulBlock(sq, ref[c], ref[c])
		signal += sum(sq)

		for i := range sq {
			sq[i] = ref[c][i] - est[c][i]
		}
		vecmath.MulBlockInPlace(sq, sq)
		distortion += sum(sq)
	}

	return 10 * math.Log10((signal+Epsilon)/(distortion+Epsilon)), nil
}

// Batch computes one SDR value per reference/estimate pair.
func Batch(references, estimates [][][]float64) ([]float64, error) {
	if len(references) != len(estimates) {
		return nil, fmt.Errorf("sdr: batch size mismatch: %d vs %d", len(references), len(estimates))
	}

	out := make([]float64, len(references))
	for i := range references {
		v, err := Single(references[i], estimates[i])
		if err != nil {
			return nil, fmt.Errorf("sdr: batch element %d: %w", i, err)
		}
		out[i] = v
	}
	return out, nil
}

// Compare computes the SDR between two audio buffers, trimming both to
// the shorter length first. The channel counts must match.
func Compare(ref, est *buffer.Audio) (float64, error) {
	n := ref.Len()
	if est.Len() < n {
		n = est.Len()
	}
	return Single(ref.Trimmed(n).Channels(), est.Trimmed(n).Channels())
}

func sum(x []float64) float64 {
	s := 0.0
	for _, v := range x {
		s += v
	}
	return s
}
