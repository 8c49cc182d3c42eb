/*
NAME
  doc.go

DESCRIPTION
  Package sink implements the outer consumers of recovered nrf24.Frames:
  Merge, a fair interleaver over one channel per sniffed nRF24 channel, and
  Stdout and Stats, two FrameSink implementations for reporting what was
  found.

AUTHOR
  nrf24sniff contributors

LICENSE
  Copyright (C) 2026 the nrf24sniff authors.
  Released under the MIT License; see LICENSE for details.
*/

// Package sink implements frame merging and reporting sinks.
package sink
