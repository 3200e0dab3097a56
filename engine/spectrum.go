package engine

import (
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/dsp/fourier"
)

// spectrumFloor is the magnitude floor used before converting to
// decibels, avoiding -Inf for a zero bin (spec.md §4.6).
const spectrumFloor = 1e-10

// Spectrum is a Hann-windowed, radix-2 power-spectrum analyzer over a
// fixed-length real window (spec.md §4.6). The FFT itself is
// gonum.org/v1/gonum/dsp/fourier rather than a hand-rolled Cooley-Tukey:
// spec.md §9 explicitly permits a library for "this non-novel piece",
// and gonum's real-input FFT returns exactly the L/2+1 non-redundant
// coefficients a real Hermitian-symmetric spectrum has, of which the
// analyzer keeps the first L/2 (spec.md's documented bin count),
// dropping only the Nyquist bin.
type Spectrum struct {
	length int
	window []float32
	fft    *fourier.FFT
	real   []float64
}

// NewSpectrumAnalyzer creates an analyzer for windows of length L, which
// must be a power of two and at least 16 (spec.md §4.6).
func NewSpectrumAnalyzer(length int) (*Spectrum, error) {
	if !isPowerOfTwo(length) || length < 16 {
		return nil, invalidParameter("spectrum length=%d, must be a power of two >= 16", length)
	}
	window := make([]float32, length)
	for k := range window {
		window[k] = float32(0.5 * (1 - math.Cos(2*math.Pi*float64(k)/float64(length-1))))
	}
	return &Spectrum{
		length: length,
		window: window,
		fft:    fourier.NewFFT(length),
		real:   make([]float64, length),
	}, nil
}

// Len returns the configured window length L.
func (s *Spectrum) Len() int { return s.length }

// Compute applies the Hann window to samples, runs the FFT, and returns
// L/2 magnitude bins in decibels: 20·log10(max(|X_k|, ε)) (spec.md
// §4.6). len(samples) must equal Len().
func (s *Spectrum) Compute(samples []float32) ([]float32, error) {
	if len(samples) != s.length {
		return nil, invalidParameter("Compute: got %d samples, want %d", len(samples), s.length)
	}
	for i, v := range samples {
		s.real[i] = float64(v) * float64(s.window[i])
	}
	coeffs := s.fft.Coefficients(nil, s.real)

	bins := s.length / 2
	mags := make([]float32, bins)
	for k := 0; k < bins; k++ {
		mag := cmplx.Abs(coeffs[k])
		if mag < spectrumFloor {
			mag = spectrumFloor
		}
		mags[k] = float32(20 * math.Log10(mag))
	}
	return mags, nil
}

// FindPeakBin returns argmax_k over 1 <= k < len(mags) (DC excluded),
// per spec.md §4.6.
func FindPeakBin(mags []float32) int {
	if len(mags) < 2 {
		return 0
	}
	peak := 1
	for k := 2; k < len(mags); k++ {
		if mags[k] > mags[peak] {
			peak = k
		}
	}
	return peak
}

// BinToFrequency converts bin k to its normalized frequency k/L.
func (s *Spectrum) BinToFrequency(k int) float32 {
	return float32(k) / float32(s.length)
}
