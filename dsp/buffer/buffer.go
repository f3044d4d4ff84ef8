package buffer

import "fmt"

// Audio is a multi-channel audio buffer: an ordered set of channels, each an
// ordered sequence of float64 samples, paired with the sample rate the signal
// was captured at. All channels have the same length.
type Audio struct {
	channels   [][]float64
	sampleRate int
}

// New returns a zero-filled Audio with the given channel count, length and
// sample rate.
func New(numChannels, length, sampleRate int) *Audio {
	if numChannels < 0 {
		numChannels = 0
	}
	if length < 0 {
		length = 0
	}
	chans := make([][]float64, numChannels)
	for i := range chans {
		chans[i] = make([]float64, length)
	}
	return &Audio{channels: chans, sampleRate: sampleRate}
}

// FromChannels wraps existing channel slices without copying.
// Mutations to the slices are visible through the Audio and vice versa.
// All channels must have the same length.
func FromChannels(channels [][]float64, sampleRate int) (*Audio, error) {
	for i := 1; i < len(channels); i++ {
		if len(channels[i]) != len(channels[0]) {
			return nil, fmt.Errorf("buffer: channel %d has %d samples, channel 0 has %d",
				i, len(channels[i]), len(channels[0]))
		}
	}
	return &Audio{channels: channels, sampleRate: sampleRate}, nil
}

// SampleRate returns the sample rate in Hz.
func (a *Audio) SampleRate() int { return a.sampleRate }

// NumChannels returns the channel count.
func (a *Audio) NumChannels() int { return len(a.channels) }

// Len returns the number of samples per channel.
func (a *Audio) Len() int {
	if len(a.channels) == 0 {
		return 0
	}
	return len(a.channels[0])
}

// Channel returns the underlying slice for channel i.
func (a *Audio) Channel(i int) []float64 { return a.channels[i] }

// Channels returns the underlying channel slices.
func (a *Audio) Channels() [][]float64 { return a.channels }

// Copy returns a deep copy of the buffer.
func (a *Audio) Copy() *Audio {
	chans := make([][]float64, len(a.channels))
	for i, ch := range a.channels {
		chans[i] = make([]float64, len(ch))
		copy(chans[i], ch)
	}
	return &Audio{channels: chans, sampleRate: a.sampleRate}
}

// Trimmed returns a view of the first n samples of every channel without
// copying. If n exceeds the buffer length the buffer itself is returned.
func (a *Audio) Trimmed(n int) *Audio {
	if n < 0 {
		n = 0
	}
	if n >= a.Len() {
		return a
	}
	chans := make([][]float64, len(a.channels))
	for i, ch := range a.channels {
		chans[i] = ch[:n]
	}
	return &Audio{channels: chans, sampleRate: a.sampleRate}
}

// Add returns the elementwise sum of a and b as a new buffer.
// The buffers must agree in channel count, length and sample rate.
func (a *Audio) Add(b *Audio) (*Audio, error) {
	if a.NumChannels() != b.NumChannels() {
		return nil, fmt.Errorf("buffer: channel count mismatch: %d vs %d", a.NumChannels(), b.NumChannels())
	}
	if a.Len() != b.Len() {
		return nil, fmt.Errorf("buffer: length mismatch: %d vs %d", a.Len(), b.Len())
	}
	if a.sampleRate != b.sampleRate {
		return nil, fmt.Errorf("buffer: sample rate mismatch: %d vs %d", a.sampleRate, b.sampleRate)
	}
	out := New(a.NumChannels(), a.Len(), a.sampleRate)
	for c := range a.channels {
		dst := out.channels[c]
		x := a.channels[c]
		y := b.channels[c]
		for i := range dst {
			dst[i] = x[i] + y[i]
		}
	}
	return out, nil
}
