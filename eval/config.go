package eval

import "fmt"

// Defaults for the evaluation pipeline. The crossover constants come
// from the blend recipe the tool scores: a 10 kHz two-band split with a
// small gain correction on the low band.
const (
	DefaultCrossoverHz = 10000.0
	DefaultLowBandGain = 1.01055
	DefaultFilterOrder = 6
	DefaultWeightTotal = 10.0
	DefaultWeightStep  = 1.0
	DefaultWorkers     = 5
)

// Config carries the full evaluation setup. The zero value of every
// numeric field means "use the default"; Models must always be set.
type Config struct {
	// Models names the two separation models whose outputs are blended.
	// Model order matters: the low band blends both, the high band comes
	// from the second model only.
	Models [2]string

	// WeightStep is the grid step over [0, 10]. Default 1.
	WeightStep float64

	// CrossoverHz splits the low and high bands. Default 10000.
	CrossoverHz float64

	// LowBandGain scales the lowpassed blend. Default 1.01055.
	LowBandGain float64

	// FilterOrder is the effective zero-phase filter order. Default 6.
	FilterOrder int

	// Workers bounds the number of tracks evaluated concurrently.
	// Default 5.
	Workers int
}

func (c Config) withDefaults() Config {
	if c.WeightStep == 0 {
		c.WeightStep = DefaultWeightStep
	}
	if c.CrossoverHz == 0 {
		c.CrossoverHz = DefaultCrossoverHz
	}
	if c.LowBandGain == 0 {
		c.LowBandGain = DefaultLowBandGain
	}
	if c.FilterOrder == 0 {
		c.FilterOrder = DefaultFilterOrder
	}
	if c.Workers == 0 {
		c.Workers = DefaultWorkers
	}
	return c
}

func (c Config) validate() error {
	if c.Models[0] == "" || c.Models[1] == "" {
		return fmt.Errorf("eval: two model names are required")
	}
	if c.WeightStep <= 0 {
		return fmt.Errorf("eval: weight step must be positive, got %v", c.WeightStep)
	}
	if c.CrossoverHz <= 0 {
		return fmt.Errorf("eval: crossover frequency must be positive, got %v", c.CrossoverHz)
	}
	if c.FilterOrder < 2 || c.FilterOrder%2 != 0 {
		return fmt.Errorf("eval: filter order must be a positive even integer, got %d", c.FilterOrder)
	}
	if c.Workers < 1 {
		return fmt.Errorf("eval: worker count must be at least 1, got %d", c.Workers)
	}
	return nil
}
