/*
NAME
  stdout.go

DESCRIPTION
  stdout.go implements Stdout, a FrameSink that writes one formatted line
  per frame, grounded on original_source's stdout_sink.rs and NrfFrame's
  Display implementation.

AUTHOR
  nrf24sniff contributors

LICENSE
  Copyright (C) 2026 the nrf24sniff authors.
  Released under the MIT License; see LICENSE for details.
*/

package sink

import (
	"fmt"
	"io"

	"github.com/nrf24sniff/nrf24sniff/nrf24"
)

// Stdout writes one line per frame to an io.Writer, in the form
// "chan=<n> addr=<hex> payload=<hex>".
type Stdout struct {
	w io.Writer
}

// NewStdout returns a Stdout writing to w.
func NewStdout(w io.Writer) *Stdout {
	return &Stdout{w: w}
}

// PushFrame writes frame to the underlying writer.
func (s *Stdout) PushFrame(frame nrf24.Frame) {
	fmt.Fprintln(s.w, frame.String())
}
