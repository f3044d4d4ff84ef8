package eval

import (
	"fmt"

	"github.com/cwbudde/vocalblend/dsp/buffer"
)

// blendVocals forms the weighted average (W1*a + W2*b)/(W1+W2) as a new
// buffer. The inputs must agree in shape and sample rate.
func blendVocals(a, b *buffer.Audio, pair WeightPair) (*buffer.Audio, error) {
	total := pair.W1 + pair.W2
	if total <= 0 {
		return nil, fmt.Errorf("eval: weight pair %s has non-positive sum", pair)
	}
	if a.NumChannels() != b.NumChannels() {
		return nil, fmt.Errorf("eval: model channel counts differ: %d vs %d",
			a.NumChannels(), b.NumChannels())
	}
	if a.Len() != b.Len() {
		return nil, fmt.Errorf("eval: model lengths differ: %d vs %d", a.Len(), b.Len())
	}
	if a.SampleRate() != b.SampleRate() {
		return nil, fmt.Errorf("eval: model sample rates differ: %d vs %d",
			a.SampleRate(), b.SampleRate())
	}

	w1 := pair.W1 / total
	w2 := pair.W2 / total
	out := buffer.New(a.NumChannels(), a.Len(), a.SampleRate())
	for c := 0; c < a.NumChannels(); c++ {
		dst := out.Channel(c)
		x := a.Channel(c)
		y := b.Channel(c)
		for i := range dst {
			dst[i] = w1*x[i] + w2*y[i]
		}
	}
	return out, nil
}

// scaleInPlace multiplies every sample of a by g.
func scaleInPlace(a *buffer.Audio, g float64) {
	for _, ch := range a.Channels() {
		for i := range ch {
			ch[i] *= g
		}
	}
}
