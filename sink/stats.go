/*
NAME
  stats.go

DESCRIPTION
  stats.go implements Stats, a FrameSink that aggregates a rolling
  per-address history (frame count, channels seen, payload lengths seen)
  and renders a top-N table, grounded on original_source's
  nrf_stat_sink.rs. Unlike the original, Render here writes a plain
  snapshot rather than an ANSI-cleared live view — this module
  has no terminal-UI dependency anywhere in its stack to ground one on.

AUTHOR
  nrf24sniff contributors

LICENSE
  Copyright (C) 2026 the nrf24sniff authors.
  Released under the MIT License; see LICENSE for details.
*/

package sink

import (
	"encoding/hex"
	"fmt"
	"io"
	"sort"
	"sync"

	"github.com/nrf24sniff/nrf24sniff/nrf24"
)

type addressStats struct {
	count       int
	channels    map[uint8]struct{}
	payloadLens map[int]struct{}
}

// Stats aggregates frame counts per address, safe for concurrent use by
// multiple channel pipelines.
type Stats struct {
	mu   sync.Mutex
	byID map[string]*addressStats
}

// NewStats returns an empty Stats aggregator.
func NewStats() *Stats {
	return &Stats{byID: make(map[string]*addressStats)}
}

// PushFrame records frame in the aggregate.
func (s *Stats) PushFrame(frame nrf24.Frame) {
	key := hex.EncodeToString(frame.Address)

	s.mu.Lock()
	defer s.mu.Unlock()
	st, ok := s.byID[key]
	if !ok {
		st = &addressStats{
			channels:    make(map[uint8]struct{}),
			payloadLens: make(map[int]struct{}),
		}
		s.byID[key] = st
	}
	st.count++
	st.channels[frame.Channel] = struct{}{}
	st.payloadLens[len(frame.Payload)] = struct{}{}
}

type statsRow struct {
	address     string
	count       int
	channels    []uint8
	payloadLens []int
}

// Render writes the top-n addresses by frame count, most frequent first,
// to w.
func (s *Stats) Render(w io.Writer, n int) {
	s.mu.Lock()
	rows := make([]statsRow, 0, len(s.byID))
	for addr, st := range s.byID {
		row := statsRow{address: addr, count: st.count}
		for ch := range st.channels {
			row.channels = append(row.channels, ch)
		}
		for l := range st.payloadLens {
			row.payloadLens = append(row.payloadLens, l)
		}
		rows = append(rows, row)
	}
	s.mu.Unlock()

	sort.Slice(rows, func(i, j int) bool { return rows[i].count > rows[j].count })
	if n > 0 && len(rows) > n {
		rows = rows[:n]
	}

	fmt.Fprintf(w, "%-12s %8s %10s %10s\n", "address", "count", "channels", "lengths")
	for _, r := range rows {
		sort.Slice(r.channels, func(i, j int) bool { return r.channels[i] < r.channels[j] })
		sort.Ints(r.payloadLens)
		fmt.Fprintf(w, "%-12s %8d %10v %10v\n", r.address, r.count, r.channels, r.payloadLens)
	}
}
