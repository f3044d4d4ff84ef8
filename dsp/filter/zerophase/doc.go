// Package zerophase implements forward-backward Butterworth filtering.
//
// A [Filter] runs a Butterworth cascade over the signal twice, once
// forward and once in reverse, which cancels the phase response and
// squares the magnitude response. Edge effects are suppressed by
// odd-symmetric signal extension and steady-state initial conditions,
// so the output has no startup transient.
package zerophase
