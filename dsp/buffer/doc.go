// Package buffer provides the multi-channel audio container shared by the
// filtering, metric and evaluation packages.
//
// An [Audio] value pairs channel-major sample data with its sample rate.
// DSP functions operate on raw []float64 channels; use Channels or Channel
// to bridge.
package buffer
