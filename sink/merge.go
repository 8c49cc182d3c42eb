/*
NAME
  merge.go

DESCRIPTION
  merge.go implements Merge, a fair interleaver over N per-channel frame
  streams: a non-blocking poll of each input in turn, generalising
  original_source's two-input Union block (`self.a.pop().or(self.b.pop())`)
  to an arbitrary channel count.

AUTHOR
  nrf24sniff contributors

LICENSE
  Copyright (C) 2026 the nrf24sniff authors.
  Released under the MIT License; see LICENSE for details.
*/

package sink

import (
	"context"
	"runtime"

	"github.com/nrf24sniff/nrf24sniff/nrf24"
)

// Merge fairly interleaves frames from any number of per-channel frame
// streams into one output stream, preserving each input's own order.
type Merge struct {
	inputs []<-chan nrf24.Frame
	out    chan nrf24.Frame
}

// NewMerge returns a Merge reading from inputs.
func NewMerge(inputs []<-chan nrf24.Frame) *Merge {
	return &Merge{inputs: inputs, out: make(chan nrf24.Frame)}
}

// Output returns the merged frame stream. It is closed once every input
// has been drained or ctx is done.
func (m *Merge) Output() <-chan nrf24.Frame {
	return m.out
}

// Run polls each input in turn, non-blocking, until every input channel is
// closed or ctx is done.
func (m *Merge) Run(ctx context.Context) {
	defer close(m.out)

	open := make([]bool, len(m.inputs))
	for i := range open {
		open[i] = true
	}
	remaining := len(open)

	for remaining > 0 {
		progressed := false
		for i, isOpen := range open {
			if !isOpen {
				continue
			}
			select {
			case <-ctx.Done():
				return
			case f, ok := <-m.inputs[i]:
				if !ok {
					open[i] = false
					remaining--
					progressed = true
					continue
				}
				progressed = true
				select {
				case m.out <- f:
				case <-ctx.Done():
					return
				}
			default:
			}
		}
		if !progressed {
			runtime.Gosched()
		}
	}
}
