/*
NAME
  doc.go

DESCRIPTION
  Package nrf24 implements a bit-stream deframer for the Nordic
  Semiconductor nRF24L01+ (2 Mbps / 1 Mbps GFSK) over-the-air format,
  including the Enhanced ShockBurst (ESB) variant.

  The package is a passive decoder: given a Config describing a channel's
  wire layout, a Decoder consumes one demodulated bit at a time and pushes
  fully validated Frames to a FrameSink as they are recovered. It never
  transmits and has no notion of acknowledgement or retransmission.

AUTHOR
  nrf24sniff contributors

LICENSE
  Copyright (C) 2026 the nrf24sniff authors.
  Released under the MIT License; see LICENSE for details.
*/

// Package nrf24 decodes nRF24L01+ and Enhanced ShockBurst bit streams into
// validated frames.
package nrf24
