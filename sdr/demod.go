/*
NAME
  demod.go

DESCRIPTION
  demod.go implements instantaneous-frequency quadrature demodulation: the
  argument of each sample multiplied by the conjugate of its predecessor,
  the standard GFSK/FM demodulation technique rustradio's QuadratureDemod
  block (referenced by the original program's pipeline construction) uses.

AUTHOR
  nrf24sniff contributors

LICENSE
  Copyright (C) 2026 the nrf24sniff authors.
  Released under the MIT License; see LICENSE for details.
*/

package sdr

import "math/cmplx"

// QuadratureDemod recovers an instantaneous-frequency estimate from a
// complex baseband sample stream, carrying the last sample across Apply
// calls so consecutive blocks stay continuous.
type QuadratureDemod struct {
	gain float64
	last complex128
	have bool
}

// NewQuadratureDemod returns a QuadratureDemod scaling its output by gain.
func NewQuadratureDemod(gain float64) *QuadratureDemod {
	return &QuadratureDemod{gain: gain}
}

// Apply returns one real-valued frequency sample per input sample.
func (d *QuadratureDemod) Apply(samples []complex128) []float64 {
	out := make([]float64, len(samples))
	for i, s := range samples {
		if !d.have {
			d.last = s
			d.have = true
			out[i] = 0
			continue
		}
		out[i] = d.gain * cmplx.Phase(s*cmplx.Conj(d.last))
		d.last = s
	}
	return out
}
