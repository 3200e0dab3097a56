// spectrumcheck drives a single sinusoidal plane wave into a scratch
// grid, records it at a probe cell, and prints the resulting spectrum
// peak — a standalone inspection tool for probe/spectrum behavior,
// grounded in the teacher's cmd/shaderdebug: render/compute one thing
// offline, print the result, exit.
//
// Usage: go run ./cmd/spectrumcheck -freq 0.1 -length 256
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/pthm-cable/fdtd2d/engine"
)

func main() {
	freq := flag.Float64("freq", 0.1, "Normalized source frequency in cycles/step, (0, 0.5)")
	length := flag.Int("length", 256, "Probe/spectrum window length, must be a power of two >= 16")
	amplitude := flag.Float64("amplitude", 1.0, "Source amplitude")
	gridSize := flag.Int("grid", 64, "Square grid side length")
	flag.Parse()

	grid, err := engine.NewGridWithBoundary(*gridSize, *gridSize, engine.BoundaryNone, 0)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to build grid: %v\n", err)
		os.Exit(1)
	}

	sourcePos := (*gridSize) / 6
	if _, err := grid.InjectSinusoidalPlaneWave(sourcePos, engine.AxisVertical, float32(*freq), float32(*amplitude), engine.Soft); err != nil {
		fmt.Fprintf(os.Stderr, "failed to register source: %v\n", err)
		os.Exit(1)
	}

	probeX, probeY := (*gridSize)/2, (*gridSize)/2
	probe, err := engine.NewProbe(probeX, probeY, *length)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to build probe: %v\n", err)
		os.Exit(1)
	}
	spectrum, err := engine.NewSpectrumAnalyzer(*length)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to build spectrum analyzer: %v\n", err)
		os.Exit(1)
	}

	for i := 0; i < *length; i++ {
		grid.Step()
		probe.Record(grid)
	}

	mags, err := spectrum.Compute(probe.Snapshot())
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to compute spectrum: %v\n", err)
		os.Exit(1)
	}

	peakBin := engine.FindPeakBin(mags)
	peakFreq := spectrum.BinToFrequency(peakBin)
	expectedBin := int(float64(*length)*(*freq) + 0.5)

	fmt.Printf("probe: cell=(%d,%d) length=%d\n", probeX, probeY, *length)
	fmt.Printf("source: f=%.4f amplitude=%.2f at x=%d\n", *freq, *amplitude, sourcePos)
	fmt.Printf("spectrum: peak_bin=%d peak_freq=%.4f magnitude_db=%.2f (expected bin ~%d)\n",
		peakBin, peakFreq, mags[peakBin], expectedBin)
}
