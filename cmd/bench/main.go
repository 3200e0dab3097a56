// bench runs the boundary scenarios of spec.md §8 headlessly and
// reports pass/fail against their documented thresholds, grounded in
// the teacher's cmd/optimize evaluate-log-report loop (here there is no
// search, just a fixed batch of scenario runs).
//
// Usage: go run ./cmd/bench [-scenario 1|3|6|all]
package main

import (
	"flag"
	"fmt"
	"math"
	"os"
	"time"

	"github.com/pthm-cable/fdtd2d/engine"
)

type result struct {
	name   string
	pass   bool
	detail string
	took   time.Duration
}

func main() {
	which := flag.String("scenario", "all", "Which scenario to run: 1, 3, 6, or all")
	flag.Parse()

	var results []result
	switch *which {
	case "1":
		results = append(results, runVacuumGaussianSpread())
	case "3":
		results = append(results, runCPMLAbsorption())
	case "6":
		results = append(results, runSpectrumPeak())
	case "all":
		results = append(results, runVacuumGaussianSpread(), runCPMLAbsorption(), runSpectrumPeak())
	default:
		fmt.Fprintf(os.Stderr, "unknown scenario %q (want 1, 3, 6, or all)\n", *which)
		os.Exit(2)
	}

	allPassed := true
	for _, r := range results {
		status := "PASS"
		if !r.pass {
			status = "FAIL"
			allPassed = false
		}
		fmt.Printf("[%s] %-28s %-40s (%s)\n", status, r.name, r.detail, r.took.Round(time.Millisecond))
	}
	if !allPassed {
		os.Exit(1)
	}
}

// runVacuumGaussianSpread is spec.md §8 boundary scenario 1: W=H=128,
// CPML off, a pulse at center, check the radial profile is monotonically
// decreasing out to r=30 and max|Ez| <= 0.20 after 64 steps.
func runVacuumGaussianSpread() result {
	start := time.Now()
	name := "vacuum_gaussian_spread"

	grid, err := engine.NewGridWithBoundary(128, 128, engine.BoundaryNone, 0)
	if err != nil {
		return result{name: name, pass: false, detail: err.Error(), took: time.Since(start)}
	}
	grid.PlacePulse(64, 64, 1.0)
	grid.StepN(64)

	var maxField float32
	prev := float32(math.Inf(1))
	monotonic := true
	for r := 0; r <= 30; r++ {
		v := abs32(grid.FieldAt(64+r, 64))
		if v > maxField {
			maxField = v
		}
		if v > prev {
			monotonic = false
		}
		prev = v
	}

	pass := monotonic && maxField <= 0.20
	detail := fmt.Sprintf("monotonic=%v max|Ez|=%.4f (want <= 0.20)", monotonic, maxField)
	return result{name: name, pass: pass, detail: detail, took: time.Since(start)}
}

// runCPMLAbsorption is spec.md §8 boundary scenario 3: vacuum 256x256,
// CPML enabled, a Gaussian plane wave injected at x=20, total energy at
// step 500 less than 1% of its peak.
func runCPMLAbsorption() result {
	start := time.Now()
	name := "cpml_absorption"

	grid, err := engine.NewGridWithBoundary(256, 256, engine.BoundaryCPML, engine.DefaultCPMLThickness)
	if err != nil {
		return result{name: name, pass: false, detail: err.Error(), took: time.Since(start)}
	}
	if _, err := grid.InjectGaussianPlaneWave(20, engine.AxisVertical, 30, 10, 1.0, engine.Soft); err != nil {
		return result{name: name, pass: false, detail: err.Error(), took: time.Since(start)}
	}

	var peak float32
	for i := 0; i < 500; i++ {
		grid.Step()
		if e := grid.TotalEnergy(); e > peak {
			peak = e
		}
	}
	final := grid.TotalEnergy()

	var fraction float32
	if peak > 0 {
		fraction = final / peak
	}
	pass := peak > 0 && fraction < 0.01
	detail := fmt.Sprintf("final/peak=%.4f (want < 0.01)", fraction)
	return result{name: name, pass: pass, detail: detail, took: time.Since(start)}
}

// runSpectrumPeak is spec.md §8 boundary scenario 6: a pure sinusoid at
// f=0.1 recorded into a length-256 probe should report its peak bin at
// 26 (0.1*256 = 25.6, nearest integer).
func runSpectrumPeak() result {
	start := time.Now()
	name := "spectrum_peak"

	grid, err := engine.NewGridWithBoundary(64, 64, engine.BoundaryNone, 0)
	if err != nil {
		return result{name: name, pass: false, detail: err.Error(), took: time.Since(start)}
	}
	if _, err := grid.InjectSinusoidalPlaneWave(10, engine.AxisVertical, 0.1, 1.0, engine.Soft); err != nil {
		return result{name: name, pass: false, detail: err.Error(), took: time.Since(start)}
	}

	probe, err := engine.NewProbe(32, 32, 256)
	if err != nil {
		return result{name: name, pass: false, detail: err.Error(), took: time.Since(start)}
	}
	spectrum, err := engine.NewSpectrumAnalyzer(256)
	if err != nil {
		return result{name: name, pass: false, detail: err.Error(), took: time.Since(start)}
	}

	for i := 0; i < 256; i++ {
		grid.Step()
		probe.Record(grid)
	}

	mags, err := spectrum.Compute(probe.Snapshot())
	if err != nil {
		return result{name: name, pass: false, detail: err.Error(), took: time.Since(start)}
	}
	peakBin := engine.FindPeakBin(mags)

	pass := peakBin == 26
	detail := fmt.Sprintf("peak_bin=%d (want 26)", peakBin)
	return result{name: name, pass: pass, detail: detail, took: time.Since(start)}
}

func abs32(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
