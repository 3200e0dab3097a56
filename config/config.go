// Package config provides configuration loading and access for the simulation.
package config

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all simulation configuration parameters.
type Config struct {
	Screen    ScreenConfig    `yaml:"screen"`
	Grid      GridConfig      `yaml:"grid"`
	Boundary  BoundaryConfig  `yaml:"boundary"`
	Materials MaterialsConfig `yaml:"materials"`
	Sources   []SourceConfig  `yaml:"sources"`
	Probe     ProbeConfig     `yaml:"probe"`
	Telemetry TelemetryConfig `yaml:"telemetry"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-"`
}

// ScreenConfig holds display settings for the interactive viewer.
type ScreenConfig struct {
	Width     int `yaml:"width"`
	Height    int `yaml:"height"`
	TargetFPS int `yaml:"target_fps"`
}

// GridConfig holds grid geometry parameters.
type GridConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// BoundaryConfig selects and parameterizes the grid's outer boundary.
type BoundaryConfig struct {
	Mode          string `yaml:"mode"` // "cpml", "mur", "periodic", "none"
	CPMLThickness int    `yaml:"cpml_thickness"`
}

// SpeckleConfig describes a randomized dielectric speckle fill, used by
// the demo driver to seed a scattering medium via opensimplex noise.
type SpeckleConfig struct {
	Enabled bool    `yaml:"enabled"`
	Seed    int64   `yaml:"seed"`
	Scale   float64 `yaml:"scale"`
	EpsLow  float32 `yaml:"eps_low"`
	EpsHigh float32 `yaml:"eps_high"`
}

// MaterialsConfig holds demo-driver material placement defaults.
type MaterialsConfig struct {
	Speckle SpeckleConfig `yaml:"speckle"`
}

// SourceConfig describes one source to seed into the demo driver's grid.
// Kind selects among "point", "plane_x", "plane_y", "gaussian_beam", "phased_array".
type SourceConfig struct {
	Kind     string  `yaml:"kind"`
	X        int     `yaml:"x"`
	Y        int     `yaml:"y"`
	Waist    float32 `yaml:"waist"`
	Elements int     `yaml:"elements"`
	Spacing  int     `yaml:"spacing"`
	Phase    float32 `yaml:"phase"`
	Inject   string  `yaml:"inject"` // "soft" or "hard"

	Waveform WaveformConfig `yaml:"waveform"`
}

// WaveformConfig describes a source's time-domain drive function.
type WaveformConfig struct {
	Kind string  `yaml:"kind"` // "sine", "gaussian", "modulated_gaussian", "ricker", "step"
	A    float32 `yaml:"a"`
	F    float32 `yaml:"f"`
	N0   float32 `yaml:"n0"`
	Tau  float32 `yaml:"tau"`
}

// ProbeConfig holds the default probe ring-buffer length, used for both
// time-domain capture and spectrum analysis (both require a power of two).
type ProbeConfig struct {
	Length int `yaml:"length"`
}

// TelemetryConfig holds telemetry export and in-memory history parameters.
type TelemetryConfig struct {
	StatsWindow      int    `yaml:"stats_window"`
	PerfWindow       int    `yaml:"perf_window"`
	CSVExportPath    string `yaml:"csv_export_path"`
	EnergyLogEvery   int    `yaml:"energy_log_every"`
}

// DerivedConfig holds computed values derived from the loaded config.
type DerivedConfig struct {
	CPMLThickness int // resolved boundary.cpml_thickness, clamped to >= 1
}

// global holds the loaded configuration.
var global *Config

// Init loads configuration from the given path, or uses embedded defaults if path is empty.
// Must be called before Cfg().
func Init(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	global = cfg
	return nil
}

// MustInit is like Init but panics on error.
func MustInit(path string) {
	if err := Init(path); err != nil {
		panic(fmt.Sprintf("config: failed to initialize: %v", err))
	}
}

// Cfg returns the global configuration. Panics if Init was not called.
func Cfg() *Config {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	// Start with embedded defaults
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	// Load user config if provided
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Unmarshal into same struct - only overwrites fields present in file
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	// Compute derived values
	cfg.computeDerived()

	return cfg, nil
}

// computeDerived calculates values derived from loaded config.
func (c *Config) computeDerived() {
	t := c.Boundary.CPMLThickness
	if t < 1 {
		t = 1
	}
	c.Derived.CPMLThickness = t
}
