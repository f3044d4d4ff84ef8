// Package pass provides lowpass and highpass filter design.
//
// ButterworthLP and ButterworthHP return cascades of second-order sections
// (plus one first-order section for odd orders) with maximally flat passband
// response. The returned coefficients plug directly into a biquad.Chain.
package pass
