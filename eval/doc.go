// Package eval scores linear blends of two vocal-separation models
// against reference stems and finds the blend weights with the best
// mean SDR across a track collection.
//
// An [Evaluator] handles one track: it loads the stems, splits the
// candidate into a 10 kHz low band (weighted blend of both models)
// and high band (second model only) with zero-phase Butterworth
// filters, and scores every weight pair of the grid. A [Search] fans
// tracks out over a bounded worker pool and aggregates per-pair means.
package eval
