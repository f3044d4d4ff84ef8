package eval

import "fmt"

// WeightPair is one point of the blend grid. W1 weighs the first
// model, W2 the second; the blend normalizes by their sum.
type WeightPair struct {
	W1, W2 float64
}

func (p WeightPair) String() string {
	return fmt.Sprintf("(%g, %g)", p.W1, p.W2)
}

// Grid returns the weight pairs {(w, 10-w)} for w = 0, step, 2*step, …
// up to and including 10 when the step divides it evenly. The index
// loop avoids accumulating float error across steps.
func Grid(step float64) []WeightPair {
	if step <= 0 {
		return nil
	}
	var pairs []WeightPair
	for i := 0; ; i++ {
		w := float64(i) * step
		if w > DefaultWeightTotal {
			break
		}
		pairs = append(pairs, WeightPair{W1: w, W2: DefaultWeightTotal - w})
	}
	return pairs
}
