package telemetry

import (
	"log/slog"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// WindowStats holds aggregated field statistics for a tick window.
type WindowStats struct {
	WindowStartTick int32 `csv:"-"`
	WindowEndTick   int32 `csv:"window_end"`

	// Field energy
	TotalEnergy  float64 `csv:"total_energy"`
	PeakEnergy   float64 `csv:"peak_energy"`
	PeakField    float64 `csv:"peak_field"`
	MeanEnergy   float64 `csv:"mean_energy"`
	MedianEnergy float64 `csv:"median_energy"`

	// Stability
	Stable bool `csv:"stable"`

	// Probe spectrum (populated only when a probe/spectrum analyzer is wired in)
	PeakBin  int     `csv:"peak_bin"`
	PeakFreq float64 `csv:"peak_freq"`
	PeakDB   float64 `csv:"peak_db"`
}

// Percentile returns the p-th percentile (p in [0, 1]) of samples via
// gonum/stat's quantile estimator, sorting a copy so the caller's slice
// order is left untouched. Returns 0 for an empty input.
func Percentile(samples []float64, p float64) float64 {
	if len(samples) == 0 {
		return 0
	}
	sorted := make([]float64, len(samples))
	copy(sorted, samples)
	sort.Float64s(sorted)
	return stat.Quantile(p, stat.Empirical, sorted, nil)
}

// Mean returns the arithmetic mean of samples via gonum/stat.
func Mean(samples []float64) float64 {
	if len(samples) == 0 {
		return 0
	}
	return stat.Mean(samples, nil)
}

// LogValue implements slog.LogValuer for structured logging.
func (s WindowStats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("window_start", int(s.WindowStartTick)),
		slog.Int("window_end", int(s.WindowEndTick)),
		slog.Float64("total_energy", s.TotalEnergy),
		slog.Float64("peak_energy", s.PeakEnergy),
		slog.Float64("peak_field", s.PeakField),
		slog.Float64("mean_energy", s.MeanEnergy),
		slog.Float64("median_energy", s.MedianEnergy),
		slog.Bool("stable", s.Stable),
		slog.Int("peak_bin", s.PeakBin),
		slog.Float64("peak_freq", s.PeakFreq),
		slog.Float64("peak_db", s.PeakDB),
	)
}

// LogStats logs the window stats using slog.
func (s WindowStats) LogStats() {
	slog.Info("stats",
		"window_end", s.WindowEndTick,
		"total_energy", s.TotalEnergy,
		"peak_energy", s.PeakEnergy,
		"peak_field", s.PeakField,
		"mean_energy", s.MeanEnergy,
		"median_energy", s.MedianEnergy,
		"stable", s.Stable,
		"peak_bin", s.PeakBin,
		"peak_freq", s.PeakFreq,
		"peak_db", s.PeakDB,
	)
}
