// Package sdr computes the signal-to-distortion ratio between a
// reference signal and an estimate, in dB. Higher is better; identical
// signals are capped by the regularization constant rather than
// reaching +Inf.
package sdr
