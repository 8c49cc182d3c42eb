/*
NAME
  lowpass.go

DESCRIPTION
  lowpass.go implements a windowed-sinc FIR low-pass filter applied via
  FFT-based fast convolution, generalising codec/pcm's real-valued PCM
  filter design to complex IQ samples by convolving the real and imaginary
  rails independently with the same real-valued tap set.

AUTHOR
  nrf24sniff contributors

LICENSE
  Copyright (C) 2026 the nrf24sniff authors.
  Released under the MIT License; see LICENSE for details.
*/

package sdr

import (
	"fmt"
	"math"

	"github.com/mjibson/go-dsp/fft"
	"github.com/mjibson/go-dsp/window"
)

// LowPass is a windowed-sinc FIR low-pass filter for complex baseband
// samples.
type LowPass struct {
	coeffs []float64
}

// NewLowPass designs a low-pass filter with cutoff fc Hz and taps+1
// coefficients, for a stream sampled at sampleRate Hz.
func NewLowPass(fc, sampleRate float64, taps int) (*LowPass, error) {
	if fc <= 0 || fc >= sampleRate/2 {
		return nil, fmt.Errorf("sdr: cutoff %v out of bounds for sample rate %v", fc, sampleRate)
	}
	if taps <= 0 {
		return nil, fmt.Errorf("sdr: cannot build filter with %d taps", taps)
	}

	fd := fc / sampleRate
	size := taps + 1
	coeffs := make([]float64, size)
	b := 2 * math.Pi * fd
	winData := window.FlatTop(size)
	for n := 0; n < taps/2; n++ {
		c := float64(n) - float64(taps)/2
		y := math.Sin(c*b) / (math.Pi * c)
		coeffs[n] = y * winData[n]
		coeffs[size-1-n] = coeffs[n]
	}
	coeffs[taps/2] = 2 * fd * winData[taps/2]

	return &LowPass{coeffs: coeffs}, nil
}

// Apply convolves samples with the filter's taps, returning the filtered
// samples (length len(samples)+len(coeffs)-1, the full linear convolution,
// matching rustradio's block semantics of emitting history alongside new
// output).
func (f *LowPass) Apply(samples []complex128) ([]complex128, error) {
	re := make([]float64, len(samples))
	im := make([]float64, len(samples))
	for i, s := range samples {
		re[i] = real(s)
		im[i] = imag(s)
	}

	reOut, err := fastConvolve(re, f.coeffs)
	if err != nil {
		return nil, fmt.Errorf("sdr: convolving real rail: %w", err)
	}
	imOut, err := fastConvolve(im, f.coeffs)
	if err != nil {
		return nil, fmt.Errorf("sdr: convolving imaginary rail: %w", err)
	}

	out := make([]complex128, len(reOut))
	for i := range out {
		out[i] = complex(reOut[i], imOut[i])
	}
	return out, nil
}

// fastConvolve computes the linear convolution of x and h in O(n log n)
// time via zero-padded FFT multiplication.
func fastConvolve(x, h []float64) ([]float64, error) {
	if len(x) == 0 || len(h) == 0 {
		return nil, fmt.Errorf("sdr: convolution requires non-empty inputs")
	}

	convLen := len(x) + len(h) - 1
	padLen := int(math.Pow(2, math.Ceil(math.Log2(float64(convLen)))))

	xPad := make([]float64, padLen)
	copy(xPad, x)
	hPad := make([]float64, padLen)
	copy(hPad, h)

	xFFT, hFFT := fft.FFTReal(xPad), fft.FFTReal(hPad)
	yFFT := make([]complex128, padLen)
	for i := range xFFT {
		yFFT[i] = xFFT[i] * hFFT[i]
	}
	iy := fft.IFFT(yFFT)

	y := make([]float64, convLen)
	for i := range y {
		y[i] = real(iy[i])
	}
	return y, nil
}
