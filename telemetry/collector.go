package telemetry

import (
	"gonum.org/v1/gonum/floats"
)

// Collector accumulates per-tick energy samples within a window and
// produces WindowStats on flush.
type Collector struct {
	windowTicks int32

	windowStartTick int32
	energies        []float64
	peakField       float64
	stable          bool
}

// NewCollector creates a new stats collector.
// windowTicks: number of simulation ticks per flushed window.
func NewCollector(windowTicks int) *Collector {
	if windowTicks < 1 {
		windowTicks = 1
	}
	return &Collector{
		windowTicks: int32(windowTicks),
		stable:      true,
	}
}

// RecordTick accumulates one tick's worth of field statistics.
func (c *Collector) RecordTick(energy float64, peakField float64, stable bool) {
	c.energies = append(c.energies, energy)
	if peakField > c.peakField {
		c.peakField = peakField
	}
	c.stable = c.stable && stable
}

// ShouldFlush returns true if enough ticks have passed to flush the window.
func (c *Collector) ShouldFlush(currentTick int32) bool {
	return currentTick-c.windowStartTick >= c.windowTicks
}

// Flush produces a WindowStats from the accumulated samples and resets
// the collector for the next window. The total/peak reduction uses
// gonum/floats since the sample slice is small relative to the field
// grid; the mean/median reported alongside it go through gonum/stat
// (Percentile/Mean) for a distribution shape cheap per-tick floats.Sum
// doesn't give.
func (c *Collector) Flush(currentTick int32) WindowStats {
	var total, peak, mean, median float64
	if len(c.energies) > 0 {
		total = floats.Sum(c.energies) / float64(len(c.energies))
		peak = floats.Max(c.energies)
		mean = Mean(c.energies)
		median = Percentile(c.energies, 0.5)
	}

	stats := WindowStats{
		WindowStartTick: c.windowStartTick,
		WindowEndTick:   currentTick,
		TotalEnergy:     total,
		PeakEnergy:      peak,
		PeakField:       c.peakField,
		MeanEnergy:      mean,
		MedianEnergy:    median,
		Stable:          c.stable,
	}

	c.windowStartTick = currentTick
	c.energies = c.energies[:0]
	c.peakField = 0
	c.stable = true

	return stats
}

// WindowTicks returns the number of ticks per window.
func (c *Collector) WindowTicks() int32 {
	return c.windowTicks
}
