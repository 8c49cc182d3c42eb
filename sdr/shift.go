/*
NAME
  shift.go

DESCRIPTION
  shift.go implements Shift, a per-channel frequency shift: an element-wise
  complex multiply of the input sample stream against a rotating phasor,
  bringing one channel of a wideband capture down to baseband.

AUTHOR
  nrf24sniff contributors

LICENSE
  Copyright (C) 2026 the nrf24sniff authors.
  Released under the MIT License; see LICENSE for details.
*/

package sdr

import (
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/cmplxs"
)

// Shift multiplies a sample stream by a rotating phasor at a fixed offset
// frequency, the per-channel down-conversion step ahead of LowPass. It
// keeps the phasor's running phase so repeated Apply calls on consecutive
// blocks of a single stream stay phase-continuous.
type Shift struct {
	step  complex128 // per-sample phasor rotation
	phase complex128 // current phasor value, |phase| == 1
}

// NewShift returns a Shift that rotates samples by offsetHz against a
// stream sampled at sampleRate Hz.
func NewShift(offsetHz, sampleRate float64) *Shift {
	theta := -2 * math.Pi * offsetHz / sampleRate
	return &Shift{
		step:  cmplx.Exp(complex(0, theta)),
		phase: complex(1, 0),
	}
}

// Apply multiplies samples in place by the running phasor, advancing it
// one step per sample.
func (s *Shift) Apply(samples []complex128) {
	lo := make([]complex128, len(samples))
	for i := range lo {
		lo[i] = s.phase
		s.phase *= s.step
	}
	// Periodically renormalize so repeated multiplication doesn't drift
	// away from the unit circle.
	if mag := cmplx.Abs(s.phase); mag < 0.999 || mag > 1.001 {
		s.phase /= complex(mag, 0)
	}
	cmplxs.Mul(samples, lo)
}
