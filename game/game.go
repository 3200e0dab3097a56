package game

import (
	"fmt"
	"math/rand"

	"github.com/pthm-cable/fdtd2d/camera"
	"github.com/pthm-cable/fdtd2d/config"
	"github.com/pthm-cable/fdtd2d/engine"
	"github.com/pthm-cable/fdtd2d/renderer"
	"github.com/pthm-cable/fdtd2d/telemetry"
	"github.com/pthm-cable/fdtd2d/ui"
)

// CellSize is the on-screen pixel size of a grid cell at zoom 1.0.
const CellSize = 3.0

// Game holds the complete simulation+viewer state: the FDTD grid, its
// camera/texture/overlay presentation, and the telemetry pipeline
// watching it.
type Game struct {
	rng *rand.Rand

	grid   *engine.Grid
	probe  *engine.Probe
	probeX, probeY int
	spectrum *engine.Spectrum

	camera    *camera.Camera
	fieldView *renderer.FieldView

	hud           *ui.HUD
	perfPanel     *ui.PerfPanel
	spectrumPanel *ui.SpectrumPanel
	controlsPanel *ui.ControlsPanel
	uiOverlays    *ui.OverlayRegistry

	collector     *telemetry.Collector
	perfCollector *telemetry.PerfCollector
	outputManager *telemetry.OutputManager

	tick           uint64
	paused         bool
	stepsPerUpdate int

	width, height  float32
	boundaryLabel  string
	cpmlThickness  int

	logStats bool
	headless bool
}

// Options configures game behavior.
type Options struct {
	ConfigPath string
	Seed       int64
	LogStats   bool
	Headless   bool
}

// NewGame creates a new game instance with default options.
func NewGame() *Game {
	return NewGameWithOptions(Options{Seed: 1})
}

// NewGameWithOptions creates a new game instance with the given options.
func NewGameWithOptions(opts Options) *Game {
	config.MustInit(opts.ConfigPath)
	cfg := config.Cfg()

	g := &Game{
		rng:            rand.New(rand.NewSource(opts.Seed)),
		stepsPerUpdate: 1,
		logStats:       opts.LogStats,
		headless:       opts.Headless,
		width:          float32(cfg.Grid.Width) * CellSize,
		height:         float32(cfg.Grid.Height) * CellSize,
		boundaryLabel:  cfg.Boundary.Mode,
		cpmlThickness:  cfg.Derived.CPMLThickness,
	}

	g.buildGrid(cfg)
	g.seedScenario(cfg)

	g.collector = telemetry.NewCollector(cfg.Telemetry.StatsWindow)
	g.perfCollector = telemetry.NewPerfCollector(cfg.Telemetry.PerfWindow)

	om, err := telemetry.NewOutputManager(cfg.Telemetry.CSVExportPath)
	if err != nil {
		Logf("output manager disabled: %v", err)
	}
	g.outputManager = om

	if !opts.Headless {
		g.camera = camera.New(float32(cfg.Screen.Width), float32(cfg.Screen.Height), g.width, g.height)
		g.fieldView = renderer.NewFieldView(cfg.Grid.Width, cfg.Grid.Height)
		g.hud = ui.NewHUD()
		g.perfPanel = ui.NewPerfPanel(10, 110)
		g.spectrumPanel = ui.NewSpectrumPanel(int32(cfg.Screen.Width)-260, 10, 250, 140)
		g.uiOverlays = ui.NewOverlayRegistry()
		g.controlsPanel = ui.NewControlsPanel(int32(cfg.Screen.Width)-200, 160, 190)
		g.controlsPanel.SetVisible(true)
	}

	return g
}

func (g *Game) buildGrid(cfg *config.Config) {
	mode, err := boundaryModeFromString(cfg.Boundary.Mode)
	if err != nil {
		Logf("boundary mode %q invalid, falling back to cpml: %v", cfg.Boundary.Mode, err)
		mode = engine.BoundaryCPML
	}

	grid, err := engine.NewGridWithBoundary(cfg.Grid.Width, cfg.Grid.Height, mode, cfg.Derived.CPMLThickness)
	if err != nil {
		panic(err)
	}
	g.grid = grid

	probe, err := engine.NewProbe(cfg.Grid.Width/4, cfg.Grid.Height/2, cfg.Probe.Length)
	if err != nil {
		Logf("probe disabled: %v", err)
	} else {
		g.probe = probe
		g.probeX, g.probeY = cfg.Grid.Width/4, cfg.Grid.Height/2
	}

	spectrum, err := engine.NewSpectrumAnalyzer(cfg.Probe.Length)
	if err != nil {
		Logf("spectrum analyzer disabled: %v", err)
	} else {
		g.spectrum = spectrum
	}
}

func boundaryModeFromString(s string) (engine.BoundaryMode, error) {
	switch s {
	case "cpml", "":
		return engine.BoundaryCPML, nil
	case "mur":
		return engine.BoundaryMur, nil
	case "none":
		return engine.BoundaryNone, nil
	case "periodic":
		return engine.BoundaryPeriodic, nil
	default:
		return engine.BoundaryCPML, fmt.Errorf("unknown boundary mode %q", s)
	}
}

// Tick returns the current simulation tick.
func (g *Game) Tick() uint64 { return g.tick }

// Grid exposes the underlying FDTD grid (used by headless tools).
func (g *Game) Grid() *engine.Grid { return g.grid }

// UpdateHeadless advances the simulation by one tick without touching
// raylib state, for the headless loop in main.go and cmd/fieldexport.
func (g *Game) UpdateHeadless() {
	g.simulationStep()
}

// Update processes input and, unless paused, advances the simulation.
// Called once per rendered frame by the interactive viewer.
func (g *Game) Update() {
	g.handleInput()
	if !g.paused {
		g.simulationStep()
	}
}

// PerfStats returns the current performance statistics.
func (g *Game) PerfStats() telemetry.PerfStats {
	return g.perfCollector.Stats()
}

// Unload releases GPU resources.
func (g *Game) Unload() {
	if g.fieldView != nil {
		g.fieldView.Unload()
	}
}
