package telemetry

import (
	"math"
	"testing"
)

func TestCollectorFlushAggregatesEnergy(t *testing.T) {
	c := NewCollector(4)
	c.RecordTick(1.0, 0.5, true)
	c.RecordTick(3.0, 0.9, true)
	c.RecordTick(2.0, 0.2, false)

	stats := c.Flush(3)

	if stats.PeakEnergy != 3.0 {
		t.Errorf("peak energy = %v, want 3.0", stats.PeakEnergy)
	}
	if stats.PeakField != 0.9 {
		t.Errorf("peak field = %v, want 0.9", stats.PeakField)
	}
	if stats.Stable {
		t.Errorf("stats.Stable = true, want false (one tick was unstable)")
	}
	if stats.WindowEndTick != 3 {
		t.Errorf("window end = %v, want 3", stats.WindowEndTick)
	}
	if math.Abs(stats.MeanEnergy-2.0) > 1e-9 {
		t.Errorf("mean energy = %v, want 2.0", stats.MeanEnergy)
	}
	if math.Abs(stats.MedianEnergy-2.0) > 1e-9 {
		t.Errorf("median energy = %v, want 2.0", stats.MedianEnergy)
	}
}

func TestPercentileAndMean(t *testing.T) {
	samples := []float64{4.0, 1.0, 3.0, 2.0}

	if got := Mean(samples); math.Abs(got-2.5) > 1e-9 {
		t.Errorf("Mean = %v, want 2.5", got)
	}
	// stat.Empirical returns the lowest sample covering fraction p of the
	// data, so the median of four samples is the second one, not 2.5.
	if got := Percentile(samples, 0.5); math.Abs(got-2.0) > 1e-9 {
		t.Errorf("Percentile(0.5) = %v, want 2.0", got)
	}
	if got := Percentile(samples, 0); got != 1.0 {
		t.Errorf("Percentile(0) = %v, want 1.0", got)
	}
	if got := Percentile(samples, 1); got != 4.0 {
		t.Errorf("Percentile(1) = %v, want 4.0", got)
	}
	// Percentile must not mutate the caller's slice.
	if samples[0] != 4.0 {
		t.Errorf("Percentile mutated input slice: %v", samples)
	}
	if got := Mean(nil); got != 0 {
		t.Errorf("Mean(nil) = %v, want 0", got)
	}
	if got := Percentile(nil, 0.5); got != 0 {
		t.Errorf("Percentile(nil) = %v, want 0", got)
	}
}

func TestCollectorResetsAfterFlush(t *testing.T) {
	c := NewCollector(2)
	c.RecordTick(5.0, 1.0, true)
	c.Flush(2)

	if c.peakField != 0 {
		t.Errorf("peakField not reset: %v", c.peakField)
	}
	if !c.stable {
		t.Errorf("stable flag not reset to true")
	}
	if len(c.energies) != 0 {
		t.Errorf("energies not reset: %v", c.energies)
	}
}

func TestShouldFlush(t *testing.T) {
	c := NewCollector(10)
	if c.ShouldFlush(5) {
		t.Errorf("should not flush before window elapses")
	}
	if !c.ShouldFlush(10) {
		t.Errorf("should flush once window elapses")
	}
}
