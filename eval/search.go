package eval

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"golang.org/x/sync/errgroup"
)

// TrackFailure records a track that could not be evaluated and why.
type TrackFailure struct {
	Track string
	Err   error
}

// PairMean is a weight pair's SDR averaged over all evaluated tracks.
type PairMean struct {
	Pair    WeightPair
	MeanSDR float64
	Tracks  int
}

// Result is the outcome of a full grid search.
type Result struct {
	// Best is the pair with the highest mean SDR. Equal means resolve
	// to the smaller W1.
	Best PairMean

	// Pairs holds every grid pair's mean, in grid order.
	Pairs []PairMean

	// Evaluated counts the tracks that contributed observations.
	Evaluated int

	// Failures lists the tracks that were skipped, sorted by track ID.
	Failures []TrackFailure
}

// ProgressFunc is called once per track as its evaluation finishes,
// successfully or not. Calls are serialized.
type ProgressFunc func(track string)

// Search runs the weight grid over a set of tracks on a bounded worker
// pool and aggregates per-pair means.
type Search struct {
	cfg  Config
	eval *Evaluator
}

// NewSearch builds the evaluator and grid for cfg.
func NewSearch(cfg Config, loader Loader) (*Search, error) {
	ev, err := NewEvaluator(cfg, loader)
	if err != nil {
		return nil, err
	}
	return &Search{cfg: ev.cfg, eval: ev}, nil
}

// Grid returns the weight pairs in grid order.
func (s *Search) Grid() []WeightPair {
	return s.eval.Grid()
}

type pairAccumulator struct {
	sum   float64
	count int
}

// Run evaluates every track with at most cfg.Workers tracks in flight
// and folds the observations into per-pair means. A failing track is
// recorded in Result.Failures and does not stop the run; Run errors
// only when ctx is cancelled or no track at all succeeds. The result
// does not depend on completion order.
func (s *Search) Run(ctx context.Context, tracks []string, progress ProgressFunc) (*Result, error) {
	grid := s.eval.Grid()
	index := make(map[WeightPair]int, len(grid))
	for i, p := range grid {
		index[p] = i
	}
	accs := make([]pairAccumulator, len(grid))

	var (
		mu        sync.Mutex
		failures  []TrackFailure
		evaluated int
	)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.cfg.Workers)
	for _, track := range tracks {
		g.Go(func() error {
			obs, err := s.eval.Evaluate(ctx, track)

			mu.Lock()
			defer mu.Unlock()
			if progress != nil {
				defer progress(track)
			}

			if err != nil {
				if ctx.Err() != nil {
					return err
				}
				failures = append(failures, TrackFailure{Track: track, Err: err})
				return nil
			}
			evaluated++
			for _, o := range obs {
				i := index[o.Pair]
				accs[i].sum += o.SDR
				accs[i].count++
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if evaluated == 0 {
		return nil, fmt.Errorf("eval: no track could be evaluated (%d failed)", len(failures))
	}

	sort.Slice(failures, func(i, j int) bool { return failures[i].Track < failures[j].Track })

	res := &Result{
		Pairs:     make([]PairMean, len(grid)),
		Evaluated: evaluated,
		Failures:  failures,
	}
	for i, p := range grid {
		mean := PairMean{Pair: p, Tracks: accs[i].count}
		if accs[i].count > 0 {
			mean.MeanSDR = accs[i].sum / float64(accs[i].count)
		}
		res.Pairs[i] = mean
	}

	// Strict > over grid order keeps ties on the smaller W1.
	best := res.Pairs[0]
	for _, pm := range res.Pairs[1:] {
		if pm.MeanSDR > best.MeanSDR {
			best = pm
		}
	}
	res.Best = best

	return res, nil
}
