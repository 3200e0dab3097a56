package game

import (
	"github.com/pthm-cable/fdtd2d/engine"
	"github.com/pthm-cable/fdtd2d/telemetry"
)

// simulationStep advances the grid by stepsPerUpdate ticks, recording
// per-phase timing and per-window telemetry. The phase boundaries don't
// map onto Grid.Step's internals (those stay a single hot loop per
// spec.md's performance notes) — instead each "phase" here times the
// surrounding game-side work: the whole field step (H, E, boundary and
// sources together) is recorded under telemetry.PhaseUpdateH, then probe
// capture and telemetry bookkeeping under their own phases. The
// update_e, boundary and sources phases are never recorded.
func (g *Game) simulationStep() {
	g.perfCollector.StartTick()

	g.perfCollector.StartPhase(telemetry.PhaseUpdateH)
	g.grid.StepN(g.stepsPerUpdate)
	g.tick = g.grid.TimeStep()

	g.perfCollector.StartPhase(telemetry.PhaseProbes)
	g.recordProbe()

	g.perfCollector.StartPhase(telemetry.PhaseTelemetry)
	g.recordTelemetry()

	g.perfCollector.EndTick()
}

func (g *Game) recordProbe() {
	if g.probe == nil {
		return
	}
	g.probe.Record(g.grid)
}

func (g *Game) recordTelemetry() {
	energy := float64(g.grid.TotalEnergy())
	stable := g.grid.IsStable()
	peak := float64(g.peakFieldMagnitude())
	g.collector.RecordTick(energy, peak, stable)

	if !g.collector.ShouldFlush(int32(g.tick)) {
		return
	}
	stats := g.flushSpectrumInto(g.collector.Flush(int32(g.tick)))

	if g.logStats {
		stats.LogStats()
		g.perfCollector.Stats().LogStats()
	}
	if g.outputManager != nil {
		if err := g.outputManager.WriteTelemetry(stats); err != nil {
			Logf("telemetry write failed: %v", err)
		}
		if err := g.outputManager.WritePerf(g.perfCollector.Stats(), stats.WindowEndTick); err != nil {
			Logf("perf write failed: %v", err)
		}
	}
}

// flushSpectrumInto runs the FFT on the probe's current ring buffer and
// attaches the peak bin/frequency/magnitude to the window stats, when
// both a probe and a spectrum analyzer are wired in.
func (g *Game) flushSpectrumInto(stats telemetry.WindowStats) telemetry.WindowStats {
	if g.probe == nil || g.spectrum == nil {
		return stats
	}
	mags, err := g.spectrum.Compute(g.probe.Snapshot())
	if err != nil {
		return stats
	}
	peakBin := engine.FindPeakBin(mags)
	stats.PeakBin = peakBin
	stats.PeakFreq = float64(g.spectrum.BinToFrequency(peakBin))
	if peakBin < len(mags) {
		stats.PeakDB = float64(mags[peakBin])
	}
	return stats
}

func (g *Game) peakFieldMagnitude() float32 {
	var peak float32
	view := g.grid.EzView()
	for _, v := range view {
		if v < 0 {
			v = -v
		}
		if v > peak {
			peak = v
		}
	}
	return peak
}
