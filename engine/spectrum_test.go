package engine

import (
	"math"
	"sort"
	"testing"
)

func sineWindow(length int, freq float64) []float32 {
	out := make([]float32, length)
	for k := range out {
		out[k] = float32(math.Sin(2 * math.Pi * freq * float64(k)))
	}
	return out
}

func TestNewSpectrumAnalyzerValidation(t *testing.T) {
	if _, err := NewSpectrumAnalyzer(15); err == nil {
		t.Errorf("length=15 (not a power of two) should be rejected")
	}
	if _, err := NewSpectrumAnalyzer(8); err == nil {
		t.Errorf("length=8 (< 16) should be rejected")
	}
	if _, err := NewSpectrumAnalyzer(16); err != nil {
		t.Errorf("length=16 should be accepted: %v", err)
	}
}

func TestSpectrumPeakBinForExactBinFrequency(t *testing.T) {
	const length = 64
	for _, m := range []int{3, 10, 20} {
		s, err := NewSpectrumAnalyzer(length)
		if err != nil {
			t.Fatal(err)
		}
		samples := sineWindow(length, float64(m)/float64(length))
		mags, err := s.Compute(samples)
		if err != nil {
			t.Fatal(err)
		}
		peak := FindPeakBin(mags)
		if peak != m {
			t.Errorf("m=%d: peak bin = %d, want %d", m, peak, m)
		}

		sorted := append([]float32(nil), mags...)
		sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })
		median := sorted[len(sorted)/2]
		if mags[peak]-median < 30 {
			t.Errorf("m=%d: peak %v dB is not >= 30 dB above median %v dB", m, mags[peak], median)
		}
	}
}

func TestSpectrumScenarioPeakBin26(t *testing.T) {
	const length = 256
	s, err := NewSpectrumAnalyzer(length)
	if err != nil {
		t.Fatal(err)
	}
	samples := sineWindow(length, 0.1)
	mags, err := s.Compute(samples)
	if err != nil {
		t.Fatal(err)
	}
	if peak := FindPeakBin(mags); peak != 26 {
		t.Errorf("f=0.1 L=256: peak bin = %d, want 26", peak)
	}
}

func TestBinToFrequency(t *testing.T) {
	s, err := NewSpectrumAnalyzer(256)
	if err != nil {
		t.Fatal(err)
	}
	if f := s.BinToFrequency(26); f < 0.1015 || f > 0.1016 {
		t.Errorf("BinToFrequency(26) = %v, want ~0.1015625", f)
	}
}

func TestComputeRejectsWrongLength(t *testing.T) {
	s, err := NewSpectrumAnalyzer(32)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := s.Compute(make([]float32, 16)); err == nil {
		t.Errorf("Compute with wrong-length input should error")
	}
}
