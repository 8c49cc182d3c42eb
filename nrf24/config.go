/*
NAME
  config.go

DESCRIPTION
  config.go describes the wire layout of one nRF24 channel: address length
  and prefix, whether the channel uses Enhanced ShockBurst framing, and
  (optionally) a fixed payload length. A Config precomputes the expected-bit
  stacks the decoder pops from as bits arrive, so per-bit work in the hot
  path never re-derives them.

AUTHOR
  nrf24sniff contributors

LICENSE
  Copyright (C) 2026 the nrf24sniff authors.
  Released under the MIT License; see LICENSE for details.
*/

package nrf24

import "fmt"

const (
	minAddressLen = 3
	maxAddressLen = 5
	maxPayloadLen = 32
)

// Config is the immutable wire-layout description for one channel's
// decoder. Build one with FixedLength or ShockBurst.
type Config struct {
	Channel    uint8
	addressLen int
	payloadLen *int // nil: unknown, learned per-frame from the ESB length field
	shockburst bool

	addressPrefix bitStack // precomputed expected bits, copied per resync attempt
	lengthHeader  bitStack // 6-bit length check; empty if payloadLen is unknown
}

// FixedLength builds a Config for a channel with no Enhanced ShockBurst
// framing: every frame on this channel has exactly payloadLen bytes of
// payload and no length/PID/NO_ACK header.
func FixedLength(channel uint8, addressLen, payloadLen int, addressPrefix []byte) (Config, error) {
	if err := validateAddress(addressLen, addressPrefix); err != nil {
		return Config{}, err
	}
	if payloadLen < 0 || payloadLen > maxPayloadLen {
		return Config{}, fmt.Errorf("nrf24: payload length %d out of range [0,%d]", payloadLen, maxPayloadLen)
	}
	return Config{
		Channel:       channel,
		addressLen:    addressLen,
		payloadLen:    &payloadLen,
		shockburst:    false,
		addressPrefix: addressPrefixBits(addressPrefix),
	}, nil
}

// ShockBurst builds a Config for a channel using Enhanced ShockBurst
// framing: every frame carries a 9-bit PCF header (6-bit length, 2-bit PID,
// 1-bit NO_ACK) ahead of the payload. payloadLen, if non-nil, additionally
// constrains the decoded length field to a known value; pass nil to accept
// any length the PCF header reports (0..32).
func ShockBurst(channel uint8, addressLen int, payloadLen *int, addressPrefix []byte) (Config, error) {
	if err := validateAddress(addressLen, addressPrefix); err != nil {
		return Config{}, err
	}
	cfg := Config{
		Channel:       channel,
		addressLen:    addressLen,
		shockburst:    true,
		addressPrefix: addressPrefixBits(addressPrefix),
	}
	if payloadLen != nil {
		if *payloadLen < 0 || *payloadLen > maxPayloadLen {
			return Config{}, fmt.Errorf("nrf24: payload length %d out of range [0,%d]", *payloadLen, maxPayloadLen)
		}
		n := *payloadLen
		cfg.payloadLen = &n
		cfg.lengthHeader = lengthHeaderBits(n)
	}
	return cfg, nil
}

func validateAddress(addressLen int, prefix []byte) error {
	if addressLen < minAddressLen || addressLen > maxAddressLen {
		return fmt.Errorf("nrf24: address length %d out of range [%d,%d]", addressLen, minAddressLen, maxAddressLen)
	}
	if len(prefix) > addressLen {
		return fmt.Errorf("nrf24: address prefix length %d invalid for address length %d", len(prefix), addressLen)
	}
	return nil
}

// paddingBits returns the number of zero bits conceptually prepended ahead
// of the address so the non-byte-aligned ESB PCF header lands on a byte
// boundary once packed (7 bits: 9-bit PCF + 7 padding = 16 bits = 2 bytes).
// Fixed-length framing needs no padding.
func (c Config) paddingBits() int {
	if c.shockburst {
		return 7
	}
	return 0
}

// headerBits returns the width of the PCF header, 0 outside ESB mode.
func (c Config) headerBits() int {
	if c.shockburst {
		return 9
	}
	return 0
}

// maxFrameBytes upper-bounds the size of one frame attempt's bit buffer,
// used to preallocate it: address + (PCF header, ESB only) + payload + CRC.
func (c Config) maxFrameBytes() int {
	payload := maxPayloadLen
	if c.payloadLen != nil {
		payload = *c.payloadLen
	}
	extra := 0
	if c.shockburst {
		extra = 2 // 9-bit header + 7-bit padding, packed
	}
	return c.addressLen + extra + payload + 2
}

// addressPrefixBits builds the expected-bit stack for an address prefix
// given in natural on-air byte order, most-significant-bit first per byte.
func addressPrefixBits(prefix []byte) bitStack {
	ordered := make([]bool, 0, len(prefix)*8)
	for _, b := range prefix {
		for bit := 7; bit >= 0; bit-- {
			ordered = append(ordered, b&(1<<uint(bit)) != 0)
		}
	}
	return newExpectedBits(ordered)
}

// lengthHeaderBits builds the expected-bit stack for the 6-bit PCF length
// field, most-significant-bit first, for a known payload length.
func lengthHeaderBits(length int) bitStack {
	ordered := make([]bool, 6)
	for i := 0; i < 6; i++ {
		ordered[i] = (length>>uint(5-i))&1 != 0
	}
	return newExpectedBits(ordered)
}

// crcExpectedBits builds the expected-bit stack for a 16-bit CRC trailer,
// most-significant-bit first.
func crcExpectedBits(crc uint16) bitStack {
	ordered := make([]bool, 16)
	for i := 0; i < 16; i++ {
		ordered[i] = (crc>>uint(15-i))&1 != 0
	}
	return newExpectedBits(ordered)
}
