package eval

import (
	"context"
	"fmt"
	"sort"

	"github.com/cwbudde/vocalblend/dsp/buffer"
	"github.com/cwbudde/vocalblend/dsp/filter/zerophase"
	"github.com/cwbudde/vocalblend/measure/sdr"
)

// Stem roles inside a track directory. Model outputs use VocalsRole.
const (
	RoleOriginalVocals = "original_vocals"
	RoleOriginalOther  = "original_other"
)

// VocalsRole returns the stem role holding a model's vocal estimate.
func VocalsRole(model string) string {
	return "vocals_" + model
}

// Loader resolves a (track, role) pair to decoded audio.
type Loader interface {
	Load(track, role string) (*buffer.Audio, error)
}

// Observation is the SDR scored for one weight pair on one track.
type Observation struct {
	Pair WeightPair
	SDR  float64
}

// Evaluator scores every weight pair of the grid against one track.
type Evaluator struct {
	cfg    Config
	loader Loader
	grid   []WeightPair
}

// NewEvaluator validates cfg (after applying defaults) and builds the
// weight grid once; the grid is shared read-only across all tracks.
func NewEvaluator(cfg Config, loader Loader) (*Evaluator, error) {
	cfg = cfg.withDefaults()
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	if loader == nil {
		return nil, fmt.Errorf("eval: loader is required")
	}
	return &Evaluator{cfg: cfg, loader: loader, grid: Grid(cfg.WeightStep)}, nil
}

// Grid returns the weight pairs the evaluator scores, in grid order.
func (e *Evaluator) Grid() []WeightPair {
	return e.grid
}

// Evaluate loads the track's stems, validates them, and returns one
// observation per weight pair. Errors abort only this track.
func (e *Evaluator) Evaluate(ctx context.Context, track string) ([]Observation, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	vocals, err := e.load(track, RoleOriginalVocals)
	if err != nil {
		return nil, err
	}
	other, err := e.load(track, RoleOriginalOther)
	if err != nil {
		return nil, err
	}
	modelA, err := e.load(track, VocalsRole(e.cfg.Models[0]))
	if err != nil {
		return nil, err
	}
	modelB, err := e.load(track, VocalsRole(e.cfg.Models[1]))
	if err != nil {
		return nil, err
	}

	if rates := distinctRates(vocals, other, modelA, modelB); len(rates) > 1 {
		return nil, &SampleRateMismatchError{Track: track, Rates: rates}
	}

	// The reference stems must form a coherent mix; a shape mismatch
	// here means the track directory is inconsistent.
	if _, err := vocals.Add(other); err != nil {
		return nil, fmt.Errorf("eval: track %q: reference stems: %w", track, err)
	}

	rate := float64(vocals.SampleRate())
	lp, err := zerophase.New(zerophase.Lowpass, e.cfg.CrossoverHz,
		zerophase.WithOrder(e.cfg.FilterOrder), zerophase.WithSampleRate(rate))
	if err != nil {
		return nil, fmt.Errorf("eval: track %q: %w", track, err)
	}
	hp, err := zerophase.New(zerophase.Highpass, e.cfg.CrossoverHz,
		zerophase.WithOrder(e.cfg.FilterOrder), zerophase.WithSampleRate(rate))
	if err != nil {
		return nil, fmt.Errorf("eval: track %q: %w", track, err)
	}

	// The high band depends only on the second model, not the weights.
	high, err := hp.ApplyAudio(modelB)
	if err != nil {
		return nil, fmt.Errorf("eval: track %q: high band: %w", track, err)
	}

	obs := make([]Observation, 0, len(e.grid))
	for _, pair := range e.grid {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		blended, err := blendVocals(modelA, modelB, pair)
		if err != nil {
			return nil, fmt.Errorf("eval: track %q: %w", track, err)
		}
		low, err := lp.ApplyAudio(blended)
		if err != nil {
			return nil, fmt.Errorf("eval: track %q: low band: %w", track, err)
		}
		scaleInPlace(low, e.cfg.LowBandGain)

		candidate, err := low.Add(high)
		if err != nil {
			return nil, fmt.Errorf("eval: track %q: band sum: %w", track, err)
		}

		v, err := sdr.Compare(vocals, candidate)
		if err != nil {
			return nil, fmt.Errorf("eval: track %q: %w", track, err)
		}
		obs = append(obs, Observation{Pair: pair, SDR: v})
	}
	return obs, nil
}

func (e *Evaluator) load(track, role string) (*buffer.Audio, error) {
	a, err := e.loader.Load(track, role)
	if err != nil {
		return nil, fmt.Errorf("eval: track %q: load %s: %w", track, role, err)
	}
	return a, nil
}

func distinctRates(buffers ...*buffer.Audio) []int {
	seen := make(map[int]struct{}, len(buffers))
	var rates []int
	for _, b := range buffers {
		r := b.SampleRate()
		if _, ok := seen[r]; ok {
			continue
		}
		seen[r] = struct{}{}
		rates = append(rates, r)
	}
	sort.Ints(rates)
	return rates
}
