// autotune searches for the CPML thickness that minimizes residual
// boundary reflection for a given grid size, using gonum's CMA-ES
// optimizer over a continuous relaxation of the (integer) thickness.
//
// Usage: go run ./cmd/autotune -width 200 -height 200 -max-evals 40
package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"gonum.org/v1/gonum/optimize"

	"github.com/pthm-cable/fdtd2d/engine"
)

func main() {
	width := flag.Int("width", 200, "Grid width in cells")
	height := flag.Int("height", 200, "Grid height in cells")
	minThickness := flag.Int("min-thickness", 4, "Minimum CPML thickness to consider")
	maxThickness := flag.Int("max-thickness", 30, "Maximum CPML thickness to consider")
	settleTicks := flag.Int("settle-ticks", 400, "Ticks to run while the pulse reaches and interacts with the boundary, tracking peak energy")
	measureTicks := flag.Int("measure-ticks", 200, "Ticks to run after settling, measuring residual energy")
	maxEvals := flag.Int("max-evals", 30, "Maximum number of CMA-ES evaluations")
	logPath := flag.String("log", "autotune_log.csv", "CSV log of evaluated thicknesses and residuals")
	flag.Parse()

	logFile, err := os.Create(*logPath)
	if err != nil {
		log.Fatalf("failed to create log file: %v", err)
	}
	defer logFile.Close()
	w := csv.NewWriter(logFile)
	defer w.Flush()
	w.Write([]string{"eval", "thickness", "residual_fraction"})

	evalCount := 0
	bestResidual := 1e9
	bestThickness := *minThickness

	objective := func(x []float64) float64 {
		thickness := clampInt(int(x[0]+0.5), *minThickness, *maxThickness)
		residual := evaluateThickness(*width, *height, thickness, *settleTicks, *measureTicks)

		evalCount++
		w.Write([]string{fmt.Sprintf("%d", evalCount), fmt.Sprintf("%d", thickness), fmt.Sprintf("%.8f", residual)})
		w.Flush()
		fmt.Printf("eval %d/%d: thickness=%d residual=%.6f\n", evalCount, *maxEvals, thickness, residual)

		if residual < bestResidual {
			bestResidual = residual
			bestThickness = thickness
		}
		return residual
	}

	problem := optimize.Problem{Func: objective}
	settings := &optimize.Settings{FuncEvaluations: *maxEvals}
	method := &optimize.CmaEsChol{InitStepSize: 4.0, Population: 6}

	start := time.Now()
	initX := []float64{float64((*minThickness + *maxThickness) / 2)}
	if _, err := optimize.Minimize(problem, initX, settings, method); err != nil {
		log.Printf("optimization ended: %v", err)
	}

	fmt.Printf("\ndone in %s after %d evaluations\n", time.Since(start).Round(time.Millisecond), evalCount)
	fmt.Printf("best thickness: %d cells (residual fraction %.6f)\n", bestThickness, bestResidual)
}

// evaluateThickness runs a pulse-and-settle experiment: place a pulse at
// grid center, run until it has had time to reach and interact with the
// boundary, then measure the fraction of peak energy still present as a
// proxy for reflected energy that leaked back from the CPML layer.
func evaluateThickness(width, height, thickness, settleTicks, measureTicks int) float64 {
	grid, err := engine.NewGridWithBoundary(width, height, engine.BoundaryCPML, thickness)
	if err != nil {
		return 1e9
	}

	grid.PlacePulse(width/2, height/2, 1.0)
	var peak float32
	for i := 0; i < settleTicks; i++ {
		grid.Step()
		if e := grid.TotalEnergy(); e > peak {
			peak = e
		}
	}
	if peak <= 0 {
		return 1e9
	}

	grid.StepN(measureTicks)
	residual := grid.TotalEnergy()
	return float64(residual / peak)
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
