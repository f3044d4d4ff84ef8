package eval

import (
	"fmt"
	"strings"
)

// SampleRateMismatchError reports that the stems of a track were not
// all recorded at the same sample rate. Rates holds the distinct rates
// found, sorted ascending.
type SampleRateMismatchError struct {
	Track string
	Rates []int
}

func (e *SampleRateMismatchError) Error() string {
	rates := make([]string, len(e.Rates))
	for i, r := range e.Rates {
		rates[i] = fmt.Sprintf("%d", r)
	}
	return fmt.Sprintf("track %q: sample rates are not the same across all files: found %s",
		e.Track, strings.Join(rates, ", "))
}
