package eval

import (
	"context"
	"errors"
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/vocalblend/dsp/buffer"
	"github.com/cwbudde/vocalblend/internal/testutil"
)

// fakeLoader serves stems from memory, keyed by track then role.
type fakeLoader struct {
	tracks map[string]map[string]*buffer.Audio
}

func (f *fakeLoader) Load(track, role string) (*buffer.Audio, error) {
	stems, ok := f.tracks[track]
	if !ok {
		return nil, fmt.Errorf("unknown track %q", track)
	}
	a, ok := stems[role]
	if !ok {
		return nil, fmt.Errorf("track %q has no stem %q", track, role)
	}
	return a, nil
}

func mono(samples []float64, rate int) *buffer.Audio {
	a, err := buffer.FromChannels([][]float64{samples}, rate)
	if err != nil {
		panic(err)
	}
	return a
}

func scaled(samples []float64, g float64) []float64 {
	out := make([]float64, len(samples))
	for i, v := range samples {
		out[i] = g * v
	}
	return out
}

// lowTone is a reference vocal stem living entirely below the 10 kHz
// crossover, so the high band contributes nothing.
func lowTone(rate int) []float64 {
	return testutil.DeterministicSine(200, float64(rate), 0.8, 4096)
}

func testConfig() Config {
	return Config{Models: [2]string{"mdx", "demucs"}}
}

func stems(vocals, modelA, modelB []float64, rate int) map[string]*buffer.Audio {
	return map[string]*buffer.Audio{
		RoleOriginalVocals:   mono(vocals, rate),
		RoleOriginalOther:    mono(make([]float64, len(vocals)), rate),
		VocalsRole("mdx"):    mono(modelA, rate),
		VocalsRole("demucs"): mono(modelB, rate),
	}
}

func TestNewEvaluator_Validation(t *testing.T) {
	loader := &fakeLoader{}

	_, err := NewEvaluator(Config{}, loader)
	require.Error(t, err, "models are required")

	_, err = NewEvaluator(Config{Models: [2]string{"a", "b"}, FilterOrder: 3}, loader)
	require.Error(t, err, "odd filter order")

	_, err = NewEvaluator(Config{Models: [2]string{"a", "b"}, WeightStep: -1}, loader)
	require.Error(t, err, "negative weight step")

	_, err = NewEvaluator(testConfig(), nil)
	require.Error(t, err, "nil loader")

	ev, err := NewEvaluator(testConfig(), loader)
	require.NoError(t, err)
	assert.Len(t, ev.Grid(), 11)
}

func TestEvaluate_PerfectFirstModelWinsLowBand(t *testing.T) {
	const rate = 44100
	v := lowTone(rate)
	loader := &fakeLoader{tracks: map[string]map[string]*buffer.Audio{
		// Model A reproduces the vocals exactly; model B at half scale.
		"song": stems(v, v, scaled(v, 0.5), rate),
	}}

	ev, err := NewEvaluator(testConfig(), loader)
	require.NoError(t, err)

	obs, err := ev.Evaluate(context.Background(), "song")
	require.NoError(t, err)
	require.Len(t, obs, 11)

	best := obs[0]
	for _, o := range obs[1:] {
		assert.Greater(t, o.SDR, best.SDR,
			"SDR should improve as weight shifts toward the accurate model")
		best = o
	}
	assert.Equal(t, WeightPair{W1: 10, W2: 0}, best.Pair)
}

func TestEvaluate_SampleRateMismatch(t *testing.T) {
	v := lowTone(48000)
	tr := stems(v, v, v, 48000)
	tr[VocalsRole("demucs")] = mono(v, 44100)
	loader := &fakeLoader{tracks: map[string]map[string]*buffer.Audio{"song": tr}}

	ev, err := NewEvaluator(testConfig(), loader)
	require.NoError(t, err)

	_, err = ev.Evaluate(context.Background(), "song")
	var mismatch *SampleRateMismatchError
	require.ErrorAs(t, err, &mismatch)
	assert.Equal(t, "song", mismatch.Track)
	assert.Equal(t, []int{44100, 48000}, mismatch.Rates, "rates listed ascending")
	assert.Contains(t, mismatch.Error(), "44100, 48000")
}

func TestEvaluate_MissingStem(t *testing.T) {
	v := lowTone(44100)
	tr := stems(v, v, v, 44100)
	delete(tr, RoleOriginalOther)
	loader := &fakeLoader{tracks: map[string]map[string]*buffer.Audio{"song": tr}}

	ev, err := NewEvaluator(testConfig(), loader)
	require.NoError(t, err)

	_, err = ev.Evaluate(context.Background(), "song")
	require.Error(t, err)
	assert.Contains(t, err.Error(), RoleOriginalOther)
	assert.Contains(t, err.Error(), "song")
}

func TestEvaluate_ModelLengthMismatch(t *testing.T) {
	const rate = 44100
	v := lowTone(rate)
	tr := stems(v, v, v[:4000], rate)
	loader := &fakeLoader{tracks: map[string]map[string]*buffer.Audio{"song": tr}}

	ev, err := NewEvaluator(testConfig(), loader)
	require.NoError(t, err)

	_, err = ev.Evaluate(context.Background(), "song")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "lengths differ")
}

func TestEvaluate_CandidateShorterThanReference(t *testing.T) {
	// Model outputs three samples shorter than the reference: the SDR
	// trims to the shorter length instead of failing.
	const rate = 44100
	v := lowTone(rate)
	tr := stems(v, v[:len(v)-3], v[:len(v)-3], rate)
	loader := &fakeLoader{tracks: map[string]map[string]*buffer.Audio{"song": tr}}

	ev, err := NewEvaluator(testConfig(), loader)
	require.NoError(t, err)

	obs, err := ev.Evaluate(context.Background(), "song")
	require.NoError(t, err)
	require.Len(t, obs, 11)
	for _, o := range obs {
		assert.False(t, math.IsNaN(o.SDR), "SDR must not be NaN")
	}
}

func TestEvaluate_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	v := lowTone(44100)
	loader := &fakeLoader{tracks: map[string]map[string]*buffer.Audio{
		"song": stems(v, v, v, 44100),
	}}
	ev, err := NewEvaluator(testConfig(), loader)
	require.NoError(t, err)

	_, err = ev.Evaluate(ctx, "song")
	require.ErrorIs(t, err, context.Canceled)
}

func TestSampleRateMismatchError_Message(t *testing.T) {
	err := &SampleRateMismatchError{Track: "x", Rates: []int{22050, 44100, 48000}}
	assert.Contains(t, err.Error(), "22050, 44100, 48000")
	assert.True(t, errors.As(error(err), new(*SampleRateMismatchError)))
}
