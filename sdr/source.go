/*
NAME
  source.go

DESCRIPTION
  source.go defines Source, the interface a sample acquisition device
  implements, and FileSource, a concrete Source that reads raw interleaved
  float32 IQ pairs from an io.Reader. FileSource stands in for a live SDR
  binding, which this module does not include (the CLI's -driver flag is
  accepted and logged but otherwise inert).

AUTHOR
  nrf24sniff contributors

LICENSE
  Copyright (C) 2026 the nrf24sniff authors.
  Released under the MIT License; see LICENSE for details.
*/

package sdr

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"
)

// Source produces a stream of complex baseband samples. Implementations
// need not be safe for concurrent use; Tee.Run calls ReadSamples from a
// single goroutine and fans the samples out to the channel Pipelines.
type Source interface {
	// ReadSamples fills buf with up to len(buf) samples, returning the
	// number read. It returns io.EOF once the underlying stream is
	// exhausted, matching io.Reader's convention.
	ReadSamples(buf []complex128) (int, error)

	// SampleRate returns the source's sample rate in Hz.
	SampleRate() float64

	// Close releases any resources held by the source.
	Close() error
}

// FileSource reads raw interleaved little-endian float32 IQ pairs (I, Q,
// I, Q, ...) from an io.Reader, the offline analogue of a live SDR device.
type FileSource struct {
	r          io.Reader
	sampleRate float64
	closer     io.Closer
}

// NewFileSource returns a FileSource reading from r at the given sample
// rate in Hz. If r also implements io.Closer, Close closes it.
func NewFileSource(r io.Reader, sampleRate float64) *FileSource {
	fs := &FileSource{r: r, sampleRate: sampleRate}
	if c, ok := r.(io.Closer); ok {
		fs.closer = c
	}
	return fs
}

// SampleRate returns the configured sample rate in Hz.
func (f *FileSource) SampleRate() float64 { return f.sampleRate }

// ReadSamples reads up to len(buf) IQ pairs, each encoded as two
// little-endian float32 values.
func (f *FileSource) ReadSamples(buf []complex128) (int, error) {
	raw := make([]byte, len(buf)*8)
	n, err := io.ReadFull(f.r, raw)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		return 0, fmt.Errorf("sdr: reading samples: %w", err)
	}
	samples := n / 8
	for i := 0; i < samples; i++ {
		ib := math.Float32frombits(binary.LittleEndian.Uint32(raw[i*8:]))
		qb := math.Float32frombits(binary.LittleEndian.Uint32(raw[i*8+4:]))
		buf[i] = complex(float64(ib), float64(qb))
	}
	if samples == 0 && (err == io.EOF || err == io.ErrUnexpectedEOF) {
		return 0, io.EOF
	}
	if err == io.ErrUnexpectedEOF {
		err = io.EOF
	}
	return samples, err
}

// Close closes the underlying reader if it is an io.Closer.
func (f *FileSource) Close() error {
	if f.closer == nil {
		return nil
	}
	return f.closer.Close()
}
