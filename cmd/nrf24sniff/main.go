/*
NAME
  main.go

DESCRIPTION
  nrf24sniff is a passive nRF24L01+ / Enhanced ShockBurst sniffer: it reads
  a raw IQ capture (file or stdin), runs one receive chain per requested
  channel, and reports recovered frames on stdout.

AUTHOR
  nrf24sniff contributors

LICENSE
  Copyright (C) 2026 the nrf24sniff authors.
  Released under the MIT License; see LICENSE for details.
*/

// Package main is the nrf24sniff CLI.
package main

import (
	"context"
	"encoding/hex"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"github.com/ausocean/utils/logging"

	"github.com/nrf24sniff/nrf24sniff/nrf24"
	"github.com/nrf24sniff/nrf24sniff/sdr"
	"github.com/nrf24sniff/nrf24sniff/sink"
)

const version = "0.1.0"

const defaultFilterTaps = 63

func main() {
	os.Exit(run())
}

func run() int {
	driver := flag.String("driver", "file", "SDR driver name (accepted, unused: no live SDR binding in this build)")
	channelsFlag := flag.String("channels", "2", "comma-separated list of 2.4GHz channels to sniff, 0-125")
	gain := flag.Float64("gain", 0, "input gain in dB (accepted, unused: no live SDR binding in this build)")
	sampleRate := flag.Float64("sample-rate", 2e6, "sample rate in Hz")
	addressLen := flag.Int("address-len", 4, "address length in bytes, 3-5")
	addressPrefixHex := flag.String("address-prefix", "", "known address prefix, hex-encoded (empty matches any address)")
	payloadLen := flag.Int("payload-len", -1, "payload length in bytes, 0-32 (required unless -shockburst)")
	shockburst := flag.Bool("shockburst", false, "decode Enhanced ShockBurst framing")
	rate := flag.Int("rate", 2, "over-the-air data rate in Mbps, 1 or 2")
	stats := flag.Bool("stats", false, "print a per-address statistics table once the input ends, instead of raw frames")
	input := flag.String("input", "", "path to a raw IQ capture file (defaults to stdin)")
	showVersion := flag.Bool("version", false, "show version")
	flag.Parse()

	if *showVersion {
		fmt.Println(version)
		return 0
	}

	log := logging.New(logging.Info, os.Stderr, false)
	log.Info("starting nrf24sniff", "version", version, "driver", *driver, "rate", *rate, "gain", *gain)

	addressPrefix, err := hex.DecodeString(*addressPrefixHex)
	if err != nil {
		log.Error("address-prefix must be valid hex", "value", *addressPrefixHex)
		return 1
	}

	channels, err := parseChannels(*channelsFlag)
	if err != nil {
		log.Error("invalid channels", "error", err.Error())
		return 1
	}

	if *payloadLen < 0 && !*shockburst {
		log.Error("payload-len is required unless -shockburst is set")
		return 1
	}

	in := os.Stdin
	if *input != "" {
		f, err := os.Open(*input)
		if err != nil {
			log.Error("opening input", "error", err.Error())
			return 1
		}
		defer f.Close()
		in = f
	}
	source := sdr.NewFileSource(in, *sampleRate)
	defer source.Close()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	tee := sdr.NewTee(len(channels))
	frameChans := make([]<-chan nrf24.Frame, len(channels))

	for i, ch := range channels {
		decoderCfg, err := buildDecoderConfig(ch, *addressLen, *payloadLen, *shockburst, addressPrefix)
		if err != nil {
			log.Error("building decoder config", "channel", ch, "error", err.Error())
			return 1
		}

		pipeline, err := sdr.NewPipeline(sdr.Config{
			Channel:          ch,
			OffsetHz:         0,
			SampleRate:       *sampleRate,
			CutoffHz:         *sampleRate / 4,
			FilterTaps:       defaultFilterTaps,
			SamplesPerSymbol: 1,
			DemodGain:        1,
		}, decoderCfg)
		if err != nil {
			log.Error("building pipeline", "channel", ch, "error", err.Error())
			return 1
		}

		out := make(chan nrf24.Frame, 64)
		frameChans[i] = out
		pushOut := nrf24.FrameSinkFunc(func(f nrf24.Frame) {
			select {
			case out <- f:
			case <-ctx.Done():
			}
		})
		go func(pl *sdr.Pipeline, samples <-chan []complex128, dst chan nrf24.Frame) {
			pl.Run(ctx, samples, pushOut)
			close(dst)
		}(pipeline, tee.Output(i), out)
	}

	merge := sink.NewMerge(frameChans)
	go merge.Run(ctx)

	var statsSink *sink.Stats
	var out nrf24.FrameSink
	if *stats {
		statsSink = sink.NewStats()
		out = statsSink
	} else {
		out = sink.NewStdout(os.Stdout)
	}

	go func() {
		if err := tee.Run(ctx, source, 4096); err != nil {
			log.Error("reading samples", "error", err.Error())
		}
		cancel()
	}()

	for f := range merge.Output() {
		out.PushFrame(f)
	}
	if statsSink != nil {
		statsSink.Render(os.Stdout, 10)
	}
	return 0
}

func buildDecoderConfig(channel uint8, addressLen, payloadLen int, shockburst bool, prefix []byte) (nrf24.Config, error) {
	if shockburst {
		var declared *int
		if payloadLen >= 0 {
			declared = &payloadLen
		}
		return nrf24.ShockBurst(channel, addressLen, declared, prefix)
	}
	return nrf24.FixedLength(channel, addressLen, payloadLen, prefix)
}

func parseChannels(s string) ([]uint8, error) {
	parts := strings.Split(s, ",")
	out := make([]uint8, 0, len(parts))
	for _, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("parsing channel %q: %w", p, err)
		}
		if n < 0 || n > 125 {
			return nil, fmt.Errorf("channel %d out of range [0,125]", n)
		}
		out = append(out, uint8(n))
	}
	return out, nil
}
