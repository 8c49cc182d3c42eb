/*
NAME
  clock.go

DESCRIPTION
  clock.go implements fixed-phase symbol timing: it takes one sample per
  symbol period, at the midpoint of each period counted from the first
  sample, and passes the demodulated value there on to the Slicer. It does
  not track zero crossings or otherwise adjust its sampling phase. It takes
  the place of rustradio's ZeroCrossing block (referenced by the original
  program's pipeline construction).

AUTHOR
  nrf24sniff contributors

LICENSE
  Copyright (C) 2026 the nrf24sniff authors.
  Released under the MIT License; see LICENSE for details.
*/

package sdr

import "fmt"

// ClockRecovery samples one symbol value per samplesPerSymbol input
// samples, carrying its phase across Apply calls so symbol spacing stays
// continuous across buffer boundaries.
type ClockRecovery struct {
	samplesPerSymbol int
	offset           int // index of the next symbol center within the next Apply's samples
}

// NewClockRecovery returns a ClockRecovery for samplesPerSymbol samples per
// symbol period, taking the first symbol at the midpoint of the first
// period.
func NewClockRecovery(samplesPerSymbol int) (*ClockRecovery, error) {
	if samplesPerSymbol <= 0 {
		return nil, fmt.Errorf("sdr: samples per symbol must be positive, got %d", samplesPerSymbol)
	}
	return &ClockRecovery{samplesPerSymbol: samplesPerSymbol, offset: samplesPerSymbol / 2}, nil
}

// Apply returns one symbol sample value per complete symbol period found
// in samples.
func (c *ClockRecovery) Apply(samples []float64) []float64 {
	var out []float64
	i := c.offset
	for i < len(samples) {
		out = append(out, samples[i])
		i += c.samplesPerSymbol
	}
	c.offset = i - len(samples)
	return out
}
