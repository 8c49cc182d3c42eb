/*
NAME
  decoder_test.go

DESCRIPTION
  decoder_test.go exercises the six concrete scenarios from the core
  specification: fixed-length and ESB round trips, dynamic vs. fixed ESB
  payload length, an over-length ESB header, back-to-back frames separated
  by noise, and resync after a corrupted CRC.

AUTHOR
  nrf24sniff contributors

LICENSE
  Copyright (C) 2026 the nrf24sniff authors.
  Released under the MIT License; see LICENSE for details.
*/

package nrf24

import (
	"bytes"
	"testing"
)

type testSink struct {
	frames []Frame
}

func (s *testSink) PushFrame(f Frame) {
	s.frames = append(s.frames, f)
}

func bytesBitsMSB(data []byte) []bool {
	bits := make([]bool, 0, len(data)*8)
	for _, b := range data {
		for i := 7; i >= 0; i-- {
			bits = append(bits, b&(1<<uint(i)) != 0)
		}
	}
	return bits
}

func uint16BitsMSB(v uint16) []bool {
	bits := make([]bool, 16)
	for i := 0; i < 16; i++ {
		bits[i] = (v>>uint(15-i))&1 != 0
	}
	return bits
}

func preambleBits(firstBit bool) []bool {
	bits := make([]bool, 8)
	cur := firstBit
	for i := range bits {
		bits[i] = cur
		cur = !cur
	}
	return bits
}

func pcfBits(length int) []bool {
	bits := make([]bool, 9)
	for i := 0; i < 6; i++ {
		bits[i] = (length>>uint(5-i))&1 != 0
	}
	return bits
}

// encodeFixed builds the on-air bit stream for a fixed-length frame.
func encodeFixed(address, payload []byte) []bool {
	addrBits := bytesBitsMSB(address)
	payloadBits := bytesBitsMSB(payload)
	crc := crc16(append(append([]byte{}, address...), payload...), crcInitFixed)

	out := preambleBits(addrBits[0])
	out = append(out, addrBits...)
	out = append(out, payloadBits...)
	out = append(out, uint16BitsMSB(crc)...)
	return out
}

// encodeESB builds the on-air bit stream for an Enhanced ShockBurst frame,
// with the PCF length field set to lengthField (which need not equal
// len(payload), to exercise the over-length rejection path).
func encodeESB(address, payload []byte, lengthField int) []bool {
	addrBits := bytesBitsMSB(address)
	pcf := pcfBits(lengthField)
	payloadBits := bytesBitsMSB(payload)

	padded := make([]bool, 0, 7+len(addrBits)+len(pcf)+len(payloadBits))
	padded = append(padded, make([]bool, 7)...)
	padded = append(padded, addrBits...)
	padded = append(padded, pcf...)
	padded = append(padded, payloadBits...)
	crc := crc16(packBits(padded), crcInitESB)

	out := preambleBits(addrBits[0])
	out = append(out, addrBits...)
	out = append(out, pcf...)
	out = append(out, payloadBits...)
	out = append(out, uint16BitsMSB(crc)...)
	return out
}

func feed(d *Decoder, bits []bool, sink FrameSink) {
	for _, b := range bits {
		d.PushBit(b, sink)
	}
}

// S1: fixed, channel 39, 4-byte address, 6-byte payload.
func TestScenarioFixedRoundTrip(t *testing.T) {
	address := []byte{0x01, 0x02, 0x03, 0x04}
	payload := []byte{0x05, 0x06, 0x07, 0x08, 0x09, 0x0A}
	cfg, err := FixedLength(39, 4, len(payload), address)
	if err != nil {
		t.Fatalf("FixedLength: %v", err)
	}
	sink := &testSink{}
	feed(NewDecoder(cfg), encodeFixed(address, payload), sink)

	if len(sink.frames) != 1 {
		t.Fatalf("got %d frames, want 1", len(sink.frames))
	}
	got := sink.frames[0]
	if got.Channel != 39 || !bytes.Equal(got.Address, address) || !bytes.Equal(got.Payload, payload) {
		t.Fatalf("frame = %+v, want channel=39 address=%x payload=%x", got, address, payload)
	}
}

// S2: ESB with dynamic (unconstrained) payload length.
func TestScenarioESBDynamicLength(t *testing.T) {
	address := []byte{0x01, 0x02, 0x03, 0x04}
	payload := []byte{0x05, 0x06, 0x07, 0x08, 0x09, 0x0A}
	cfg, err := ShockBurst(39, 4, nil, address)
	if err != nil {
		t.Fatalf("ShockBurst: %v", err)
	}
	sink := &testSink{}
	feed(NewDecoder(cfg), encodeESB(address, payload, len(payload)), sink)

	if len(sink.frames) != 1 {
		t.Fatalf("got %d frames, want 1", len(sink.frames))
	}
	got := sink.frames[0]
	if !bytes.Equal(got.Address, address) || !bytes.Equal(got.Payload, payload) {
		t.Fatalf("frame = %+v, want address=%x payload=%x", got, address, payload)
	}
}

// S3: same as S2 but with a fixed expected length of 6.
func TestScenarioESBFixedLength(t *testing.T) {
	address := []byte{0x01, 0x02, 0x03, 0x04}
	payload := []byte{0x05, 0x06, 0x07, 0x08, 0x09, 0x0A}
	n := 6
	cfg, err := ShockBurst(39, 4, &n, address)
	if err != nil {
		t.Fatalf("ShockBurst: %v", err)
	}
	sink := &testSink{}
	feed(NewDecoder(cfg), encodeESB(address, payload, len(payload)), sink)

	if len(sink.frames) != 1 {
		t.Fatalf("got %d frames, want 1", len(sink.frames))
	}
	got := sink.frames[0]
	if !bytes.Equal(got.Address, address) || !bytes.Equal(got.Payload, payload) {
		t.Fatalf("frame = %+v, want address=%x payload=%x", got, address, payload)
	}
}

// S4: ESB header claims a length of 33, which exceeds the 32-byte bound.
func TestScenarioESBOverLengthRejected(t *testing.T) {
	address := []byte{0x01, 0x02, 0x03, 0x04}
	cfg, err := ShockBurst(39, 4, nil, address)
	if err != nil {
		t.Fatalf("ShockBurst: %v", err)
	}
	addrBits := bytesBitsMSB(address)
	bits := preambleBits(addrBits[0])
	bits = append(bits, addrBits...)
	bits = append(bits, pcfBits(33)...)

	sink := &testSink{}
	feed(NewDecoder(cfg), bits, sink)
	if len(sink.frames) != 0 {
		t.Fatalf("got %d frames, want 0", len(sink.frames))
	}
}

// S5: two valid fixed frames back to back with 20 bits of noise between.
func TestScenarioBackToBackFrames(t *testing.T) {
	addr1 := []byte{0x01, 0x02, 0x03, 0x04}
	pay1 := []byte{0x05, 0x06, 0x07, 0x08, 0x09, 0x0A}
	addr2 := addr1
	pay2 := []byte{0x0F, 0x10, 0x11, 0x12, 0x13, 0x14}

	cfg1, err := FixedLength(39, 4, len(pay1), addr1)
	if err != nil {
		t.Fatalf("FixedLength: %v", err)
	}
	noise := []bool{
		true, true, false, false, true, false, true, true,
		false, true, true, false, false, false, true, false,
		true, false, false, true,
	}

	bits := append([]bool{}, encodeFixed(addr1, pay1)...)
	bits = append(bits, noise...)
	bits = append(bits, encodeFixed(addr2, pay2)...)

	sink := &testSink{}
	feed(NewDecoder(cfg1), bits, sink)
	if len(sink.frames) != 2 {
		t.Fatalf("got %d frames, want 2: %+v", len(sink.frames), sink.frames)
	}
	if !bytes.Equal(sink.frames[0].Payload, pay1) {
		t.Fatalf("first frame payload = %x, want %x", sink.frames[0].Payload, pay1)
	}
}

// An empty address prefix matches any address, per original_source's
// deframer.rs test_fixed/test_shockburst, which construct configs with an
// empty prefix slice.
func TestEmptyAddressPrefixMatchesAnyAddress(t *testing.T) {
	address := []byte{0xAA, 0xBB, 0xCC, 0xDD}
	payload := []byte{0x05, 0x06, 0x07, 0x08, 0x09, 0x0A}
	cfg, err := FixedLength(39, 4, len(payload), nil)
	if err != nil {
		t.Fatalf("FixedLength: %v", err)
	}
	sink := &testSink{}
	feed(NewDecoder(cfg), encodeFixed(address, payload), sink)

	if len(sink.frames) != 1 {
		t.Fatalf("got %d frames, want 1", len(sink.frames))
	}
	got := sink.frames[0]
	if !bytes.Equal(got.Address, address) || !bytes.Equal(got.Payload, payload) {
		t.Fatalf("frame = %+v, want address=%x payload=%x", got, address, payload)
	}
}

// S6: a frame with one corrupted CRC bit followed by a second valid frame;
// only the second frame is emitted.
func TestScenarioResyncAfterCRCFailure(t *testing.T) {
	addr1 := []byte{0x01, 0x02, 0x03, 0x04}
	pay1 := []byte{0x05, 0x06, 0x07, 0x08, 0x09, 0x0A}
	addr2 := addr1
	pay2 := []byte{0x0F, 0x10, 0x11, 0x12, 0x13, 0x14}

	cfg, err := FixedLength(39, 4, len(pay1), addr1)
	if err != nil {
		t.Fatalf("FixedLength: %v", err)
	}

	corrupt := encodeFixed(addr1, pay1)
	corrupt[len(corrupt)-1] = !corrupt[len(corrupt)-1]

	bits := append([]bool{}, corrupt...)
	bits = append(bits, encodeFixed(addr2, pay2)...)

	sink := &testSink{}
	feed(NewDecoder(cfg), bits, sink)
	if len(sink.frames) != 1 {
		t.Fatalf("got %d frames, want 1: %+v", len(sink.frames), sink.frames)
	}
	if !bytes.Equal(sink.frames[0].Address, addr2) || !bytes.Equal(sink.frames[0].Payload, pay2) {
		t.Fatalf("frame = %+v, want address=%x payload=%x", sink.frames[0], addr2, pay2)
	}
}
