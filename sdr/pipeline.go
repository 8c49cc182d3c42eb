/*
NAME
  pipeline.go

DESCRIPTION
  pipeline.go wires one channel's receive chain — Shift, LowPass,
  QuadratureDemod, ClockRecovery, Slicer, nrf24.Decoder — and runs it on
  its own goroutine, and Tee, which fans a single sample source out to N
  per-channel sample channels, the Go-channel equivalent of rustradio's Tee
  block referenced by the original program's pipeline construction.

AUTHOR
  nrf24sniff contributors

LICENSE
  Copyright (C) 2026 the nrf24sniff authors.
  Released under the MIT License; see LICENSE for details.
*/

package sdr

import (
	"context"
	"fmt"
	"io"

	"github.com/nrf24sniff/nrf24sniff/nrf24"
)

// Config describes one channel's receive chain, everything upstream of the
// deframer core.
type Config struct {
	Channel          uint8
	OffsetHz         float64
	SampleRate       float64
	CutoffHz         float64
	FilterTaps       int
	SamplesPerSymbol int
	DemodGain        float64
}

// Pipeline runs one channel's Shift -> LowPass -> QuadratureDemod ->
// ClockRecovery -> Slicer -> nrf24.Decoder chain.
type Pipeline struct {
	shift   *Shift
	lowpass *LowPass
	demod   *QuadratureDemod
	clock   *ClockRecovery
	slicer  Slicer
	decoder *nrf24.Decoder
}

// NewPipeline builds a Pipeline for the given receive chain and decoder
// configuration.
func NewPipeline(cfg Config, decoderCfg nrf24.Config) (*Pipeline, error) {
	lowpass, err := NewLowPass(cfg.CutoffHz, cfg.SampleRate, cfg.FilterTaps)
	if err != nil {
		return nil, fmt.Errorf("sdr: building low-pass filter: %w", err)
	}
	clock, err := NewClockRecovery(cfg.SamplesPerSymbol)
	if err != nil {
		return nil, fmt.Errorf("sdr: building clock recovery: %w", err)
	}
	return &Pipeline{
		shift:   NewShift(cfg.OffsetHz, cfg.SampleRate),
		lowpass: lowpass,
		demod:   NewQuadratureDemod(cfg.DemodGain),
		clock:   clock,
		decoder: nrf24.NewDecoder(decoderCfg),
	}, nil
}

// Run consumes sample blocks from in until it is closed or ctx is done,
// pushing any recovered frames to sink.
func (p *Pipeline) Run(ctx context.Context, in <-chan []complex128, sink nrf24.FrameSink) {
	for {
		select {
		case <-ctx.Done():
			return
		case samples, ok := <-in:
			if !ok {
				return
			}
			p.process(samples, sink)
		}
	}
}

func (p *Pipeline) process(samples []complex128, sink nrf24.FrameSink) {
	block := append([]complex128{}, samples...)
	p.shift.Apply(block)
	filtered, err := p.lowpass.Apply(block)
	if err != nil {
		return
	}
	freq := p.demod.Apply(filtered)
	symbols := p.clock.Apply(freq)
	bits := p.slicer.Apply(symbols)
	for _, bit := range bits {
		p.decoder.PushBit(bit, sink)
	}
}

// Tee fans a single Source out to N independent, unbuffered per-channel
// sample streams; each reader receives every block, one send per reader.
type Tee struct {
	outputs []chan []complex128
}

// NewTee returns a Tee with n output channels.
func NewTee(n int) *Tee {
	outputs := make([]chan []complex128, n)
	for i := range outputs {
		outputs[i] = make(chan []complex128)
	}
	return &Tee{outputs: outputs}
}

// Output returns the i'th output channel.
func (t *Tee) Output(i int) <-chan []complex128 {
	return t.outputs[i]
}

// Run reads blockSize-sample blocks from src and broadcasts each to every
// output channel until src is exhausted or ctx is done. It closes every
// output channel before returning.
func (t *Tee) Run(ctx context.Context, src Source, blockSize int) error {
	defer func() {
		for _, ch := range t.outputs {
			close(ch)
		}
	}()

	buf := make([]complex128, blockSize)
	for {
		n, err := src.ReadSamples(buf)
		if n > 0 {
			block := append([]complex128{}, buf[:n]...)
			for _, ch := range t.outputs {
				select {
				case ch <- block:
				case <-ctx.Done():
					return nil
				}
			}
		}
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("sdr: reading samples: %w", err)
		}
		if ctx.Err() != nil {
			return nil
		}
	}
}
