package game

import (
	"fmt"

	opensimplex "github.com/ojrac/opensimplex-go"

	"github.com/pthm-cable/fdtd2d/config"
	"github.com/pthm-cable/fdtd2d/engine"
)

// seedScenario paints materials and registers sources on a freshly built
// grid, driven entirely by the loaded config (config.SourceConfig,
// config.WaveformConfig, config.SpeckleConfig).
func (g *Game) seedScenario(cfg *config.Config) {
	g.seedMaterials(cfg.Materials.Speckle)
	for _, sc := range cfg.Sources {
		if err := g.addSourceFromConfig(sc); err != nil {
			Logf("skipping source %q: %v", sc.Kind, err)
		}
	}
}

// seedMaterials optionally fills the grid with a speckled dielectric
// using 2D OpenSimplex noise, the same noise generator the resource
// field used for its procedural capacity map, repurposed here to
// produce a scattering medium instead of a foraging landscape.
func (g *Game) seedMaterials(sc config.SpeckleConfig) {
	if !sc.Enabled {
		return
	}
	noise := opensimplex.New(sc.Seed)
	scale := sc.Scale
	if scale <= 0 {
		scale = 0.05
	}
	span := sc.EpsHigh - sc.EpsLow
	for y := 0; y < g.grid.Height(); y++ {
		for x := 0; x < g.grid.Width(); x++ {
			n := (noise.Eval2(float64(x)*scale, float64(y)*scale) + 1) * 0.5
			epsR := sc.EpsLow + float32(n)*span
			if err := g.grid.SetMaterialRegion(x, y, x, y, epsR, 0); err != nil {
				Logf("speckle cell (%d,%d) rejected: %v", x, y, err)
				return
			}
		}
	}
}

func (g *Game) addSourceFromConfig(sc config.SourceConfig) error {
	wave, err := waveformFromConfig(sc.Waveform)
	if err != nil {
		return err
	}
	mode := engine.Soft
	if sc.Inject == "hard" {
		mode = engine.Hard
	}

	switch sc.Kind {
	case "point":
		src, err := engine.NewPointSource(sc.X, sc.Y, wave, mode)
		if err != nil {
			return err
		}
		g.grid.AddSource(src)
	case "plane_x":
		g.grid.InjectPlaneWaveX(sc.X, wave, mode)
	case "plane_y":
		g.grid.InjectPlaneWaveY(sc.Y, wave, mode)
	case "gaussian_beam":
		src, err := engine.NewGaussianBeam(sc.X, float32(sc.Y), sc.Waist, wave, mode)
		if err != nil {
			return err
		}
		g.grid.AddSource(src)
	case "phased_array":
		src, err := engine.NewPhasedArray(sc.X, sc.Y, sc.Elements, sc.Spacing, wave, sc.Phase, 0, mode)
		if err != nil {
			return err
		}
		g.grid.AddSource(src)
	default:
		return fmt.Errorf("unknown source kind %q", sc.Kind)
	}
	return nil
}

func waveformFromConfig(wc config.WaveformConfig) (engine.Waveform, error) {
	var kind engine.WaveformKind
	switch wc.Kind {
	case "sine":
		kind = engine.Sine
	case "gaussian":
		kind = engine.Gaussian
	case "modulated_gaussian", "":
		kind = engine.ModulatedGaussian
	case "ricker":
		kind = engine.Ricker
	case "step":
		kind = engine.StepFunction
	default:
		return engine.Waveform{}, fmt.Errorf("unknown waveform kind %q", wc.Kind)
	}
	return engine.NewWaveform(engine.Waveform{Kind: kind, A: wc.A, F: wc.F, N0: wc.N0, Tau: wc.Tau})
}
