/*
NAME
  doc.go

DESCRIPTION
  Package sdr implements the receive chain that turns raw IQ samples from a
  software-defined radio into the demodulated bit stream an nrf24.Decoder
  consumes: frequency shift, low-pass filtering, quadrature demodulation,
  clock recovery, and binary slicing, one Pipeline per channel, fed from a
  Tee-split sample source.

  None of this is part of the deframer core; it exists so the module is
  runnable end to end against recorded or live IQ captures.

AUTHOR
  nrf24sniff contributors

LICENSE
  Copyright (C) 2026 the nrf24sniff authors.
  Released under the MIT License; see LICENSE for details.
*/

// Package sdr implements the SDR receive chain feeding nrf24.Decoder.
package sdr
