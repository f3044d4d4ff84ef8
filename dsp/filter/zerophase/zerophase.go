package zerophase

import (
	"errors"
	"fmt"

	"github.com/cwbudde/vocalblend/dsp/buffer"
	"github.com/cwbudde/vocalblend/dsp/filter/biquad"
	"github.com/cwbudde/vocalblend/dsp/filter/design/pass"
)

// ErrInvalidCutoff reports a cutoff frequency outside (0, Nyquist).
var ErrInvalidCutoff = errors.New("zerophase: cutoff outside (0, Nyquist)")

// Kind selects the filter response shape.
type Kind int

const (
	// Lowpass passes frequencies below the cutoff.
	Lowpass Kind = iota
	// Highpass passes frequencies above the cutoff.
	Highpass
)

func (k Kind) String() string {
	switch k {
	case Lowpass:
		return "lowpass"
	case Highpass:
		return "highpass"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

const (
	// DefaultOrder is the effective filter order after the
	// forward-backward pass.
	DefaultOrder = 6
	// DefaultSampleRate is assumed when no sample rate option is given.
	DefaultSampleRate = 44100.0
)

// Filter applies a Butterworth filter forward and backward over a signal,
// cancelling the phase response. The effective magnitude response is the
// squared single-pass response, so a Filter built with order 6 designs a
// third-order Butterworth cascade and applies it twice.
type Filter struct {
	kind       Kind
	cutoff     float64
	order      int
	sampleRate float64
	coeffs     []biquad.Coefficients
}

// Option configures a Filter.
type Option func(*Filter)

// WithOrder sets the effective filter order. It must be even and at
// least 2; the single-pass design uses order/2. Default 6.
func WithOrder(order int) Option {
	return func(f *Filter) { f.order = order }
}

// WithSampleRate sets the sample rate in Hz. Default 44100.
func WithSampleRate(sampleRate float64) Option {
	return func(f *Filter) { f.sampleRate = sampleRate }
}

// New creates a zero-phase filter of the given kind and cutoff frequency.
func New(kind Kind, cutoffHz float64, opts ...Option) (*Filter, error) {
	if kind != Lowpass && kind != Highpass {
		return nil, fmt.Errorf("zerophase: unknown filter kind %d", int(kind))
	}

	f := &Filter{
		kind:       kind,
		cutoff:     cutoffHz,
		order:      DefaultOrder,
		sampleRate: DefaultSampleRate,
	}
	for _, opt := range opts {
		opt(f)
	}

	if f.sampleRate <= 0 {
		return nil, fmt.Errorf("zerophase: sample rate must be positive, got %v", f.sampleRate)
	}
	if f.cutoff <= 0 || f.cutoff >= f.sampleRate/2 {
		return nil, fmt.Errorf("%w: got %v at sample rate %v", ErrInvalidCutoff, f.cutoff, f.sampleRate)
	}
	if f.order < 2 || f.order%2 != 0 {
		return nil, fmt.Errorf("zerophase: order must be a positive even integer, got %d", f.order)
	}

	design := f.order / 2
	switch kind {
	case Lowpass:
		f.coeffs = pass.ButterworthLP(f.cutoff, design, f.sampleRate)
	case Highpass:
		f.coeffs = pass.ButterworthHP(f.cutoff, design, f.sampleRate)
	}

	return f, nil
}

// Kind returns the response shape.
func (f *Filter) Kind() Kind { return f.kind }

// Cutoff returns the cutoff frequency in Hz.
func (f *Filter) Cutoff() float64 { return f.cutoff }

// Order returns the effective (forward-backward) order.
func (f *Filter) Order() int { return f.order }

// SampleRate returns the sample rate in Hz.
func (f *Filter) SampleRate() float64 { return f.sampleRate }

// padLen returns the number of samples of odd-symmetric edge extension
// applied at each end before filtering.
func (f *Filter) padLen() int {
	return 3 * (2*len(f.coeffs) + 1)
}

// Apply filters x forward and backward and returns the result as a new
// slice. The input must be longer than the edge padding, 3*(2*S+1)
// samples for S cascade sections.
func (f *Filter) Apply(x []float64) ([]float64, error) {
	n := len(x)
	edge := f.padLen()
	if n <= edge {
		return nil, fmt.Errorf("zerophase: signal length %d must exceed edge padding %d", n, edge)
	}

	ext := oddExt(x, edge)
	f.onePass(ext)
	reverse(ext)
	f.onePass(ext)
	reverse(ext)

	out := make([]float64, n)
	copy(out, ext[edge:edge+n])
	return out, nil
}

// ApplyAudio filters every channel of a and returns a new buffer with
// the same shape and sample rate.
func (f *Filter) ApplyAudio(a *buffer.Audio) (*buffer.Audio, error) {
	out := buffer.New(a.NumChannels(), a.Len(), a.SampleRate())
	for c := 0; c < a.NumChannels(); c++ {
		y, err := f.Apply(a.Channel(c))
		if err != nil {
			return nil, fmt.Errorf("zerophase: channel %d: %w", c, err)
		}
		copy(out.Channel(c), y)
	}
	return out, nil
}

// onePass runs one causal pass over buf in-place with steady-state
// initial conditions scaled to the first sample, suppressing the
// startup transient.
func (f *Filter) onePass(buf []float64) {
	chain := biquad.NewChain(f.coeffs)
	x0 := buf[0]
	for i := range f.coeffs {
		d0, d1 := stepState(f.coeffs[i])
		chain.Section(i).SetState(d0*x0, d1*x0)
		x0 *= dcGain(f.coeffs[i])
	}
	chain.ProcessBlock(buf)
}

// stepState returns the delay line values a section settles into under a
// sustained unit input. Scaling these by the first input sample removes
// the step transient at the start of a pass.
func stepState(c biquad.Coefficients) (d0, d1 float64) {
	y := dcGain(c)
	d0 = y - c.B0
	d1 = c.B2 - c.A2*y
	return d0, d1
}

func dcGain(c biquad.Coefficients) float64 {
	return (c.B0 + c.B1 + c.B2) / (1 + c.A1 + c.A2)
}

// oddExt extends x by edge samples at each end, reflecting the signal
// around its endpoint values so the extension is odd-symmetric.
func oddExt(x []float64, edge int) []float64 {
	n := len(x)
	ext := make([]float64, n+2*edge)
	copy(ext[edge:], x)
	for i := 0; i < edge; i++ {
		ext[edge-1-i] = 2*x[0] - x[i+1]
		ext[edge+n+i] = 2*x[n-1] - x[n-2-i]
	}
	return ext
}

func reverse(x []float64) {
	for i, j := 0, len(x)-1; i < j; i, j = i+1, j-1 {
		x[i], x[j] = x[j], x[i]
	}
}
