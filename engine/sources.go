package engine

import "math"

// InjectMode selects soft (additive) or hard (replacing) injection,
// per spec.md §4.5.
type InjectMode int

const (
	Soft InjectMode = iota
	Hard
)

// Axis picks which coordinate a line source holds constant: AxisVertical
// sources run along a constant x (a "vertical" line per spec.md §4.5),
// AxisHorizontal along a constant y.
type Axis int

const (
	AxisVertical Axis = iota
	AxisHorizontal
)

// WaveformKind is the closed set of temporal driving functions of
// spec.md §4.5.
type WaveformKind int

const (
	Sine WaveformKind = iota
	Gaussian
	ModulatedGaussian
	Ricker
	StepFunction
)

// Waveform is a small tagged union: a temporal driving function plus its
// parameters. F is a normalized frequency in cycles per step and must
// lie in (0, 0.5) for any kind that uses it (Sine, ModulatedGaussian,
// Ricker); Gaussian and StepFunction ignore F.
type Waveform struct {
	Kind WaveformKind
	A    float32
	F    float32
	N0   float32
	Tau  float32
}

// NewWaveform validates and returns w, per the InvalidParameter taxonomy
// of spec.md §7: frequency must be in (0, 0.5) where used, Tau must be
// positive where used.
func NewWaveform(w Waveform) (Waveform, error) {
	switch w.Kind {
	case Sine, ModulatedGaussian, Ricker:
		if w.F <= 0 || w.F >= 0.5 {
			return w, invalidParameter("waveform frequency f=%v, must be in (0, 0.5)", w.F)
		}
	}
	switch w.Kind {
	case Gaussian, ModulatedGaussian:
		if w.Tau <= 0 {
			return w, invalidParameter("waveform tau=%v, must be > 0", w.Tau)
		}
	}
	return w, nil
}

// Value evaluates the waveform at discrete step n (spec.md §4.5).
func (w Waveform) Value(n uint64) float32 {
	t := float64(n)
	switch w.Kind {
	case Sine:
		return w.A * float32(math.Sin(2*math.Pi*float64(w.F)*t))
	case Gaussian:
		d := (t - float64(w.N0)) / float64(w.Tau)
		return w.A * float32(math.Exp(-d*d))
	case ModulatedGaussian:
		d := (t - float64(w.N0)) / float64(w.Tau)
		envelope := math.Exp(-d * d)
		carrier := math.Sin(2 * math.Pi * float64(w.F) * t)
		return w.A * float32(envelope*carrier)
	case Ricker:
		arg := math.Pi * float64(w.F) * (t - float64(w.N0))
		arg2 := arg * arg
		return w.A * float32((1-2*arg2)*math.Exp(-arg2))
	case StepFunction:
		if t >= float64(w.N0) {
			return w.A
		}
		return 0
	default:
		return 0
	}
}

type sourceKind int

const (
	kindPoint sourceKind = iota
	kindPlaneWave
	kindGaussianBeam
	kindPhasedArray
)

// Source is the closed tagged union of spec.md §9: one struct, a kind
// tag, geometry-specific fields, and a single dispatch in inject. There
// is no source interface/class hierarchy — a fixed switch is simpler and
// cheaper for a type this small and this stable.
type Source struct {
	kind sourceKind
	mode InjectMode
	wave Waveform

	x, y int  // point position; plane-wave/beam/array line position
	axis Axis // plane-wave line orientation

	yc    float32 // Gaussian beam transverse center (fractional cell)
	waist float32 // Gaussian beam waist, in cells

	elements int       // phased array element count
	spacing  int       // phased array element spacing, in cells
	phi0     float32   // phased array base phase
	dphi     float32   // phased array progressive phase step
	amps     []float32 // optional per-element amplitude override
}

// NewPointSource creates a single-cell source at (x, y).
func NewPointSource(x, y int, wave Waveform, mode InjectMode) (*Source, error) {
	return &Source{kind: kindPoint, mode: mode, wave: wave, x: x, y: y}, nil
}

// NewPlaneWave creates a full-line source at a constant coordinate along
// the given axis: AxisVertical holds x constant (pos is the x
// coordinate, the line runs over all y); AxisHorizontal holds y constant.
func NewPlaneWave(pos int, axis Axis, wave Waveform, mode InjectMode) (*Source, error) {
	s := &Source{kind: kindPlaneWave, mode: mode, wave: wave, axis: axis}
	if axis == AxisVertical {
		s.x = pos
	} else {
		s.y = pos
	}
	return s, nil
}

// NewGaussianBeam creates a vertical line source at x, amplitude-
// modulated across y by A·exp(−2·(y − yc)²/waist²) (spec.md §4.5).
func NewGaussianBeam(x int, yc, waist float32, wave Waveform, mode InjectMode) (*Source, error) {
	if waist <= 0 {
		return nil, invalidParameter("gaussian beam waist=%v, must be > 0", waist)
	}
	return &Source{kind: kindGaussianBeam, mode: mode, wave: wave, x: x, yc: yc, waist: waist}, nil
}

// NewPhasedArray creates N elements spaced d cells apart along y,
// starting at (x, y0); element k is driven by A_k·sin(2π f n + φ_k) with
// φ_k = phi0 + k·dphi (spec.md §4.5). A nonzero dphi, passed here or
// later via SetProgressivePhase, steers the beam.
func NewPhasedArray(x, y0, elements, spacing int, wave Waveform, phi0, dphi float32, mode InjectMode) (*Source, error) {
	if elements <= 0 {
		return nil, invalidParameter("phased array elements=%d, must be > 0", elements)
	}
	if spacing <= 0 {
		return nil, invalidParameter("phased array spacing=%d, must be > 0", spacing)
	}
	return &Source{
		kind: kindPhasedArray, mode: mode, wave: wave,
		x: x, y: y0, elements: elements, spacing: spacing,
		phi0: phi0, dphi: dphi,
	}, nil
}

// SetElementAmplitudes overrides the uniform A_k of a phased array with
// per-element amplitudes; len(amps) must equal the element count.
func (s *Source) SetElementAmplitudes(amps []float32) error {
	if s.kind != kindPhasedArray {
		return invalidParameter("SetElementAmplitudes: source is not a phased array")
	}
	if len(amps) != s.elements {
		return invalidParameter("SetElementAmplitudes: got %d amplitudes, want %d", len(amps), s.elements)
	}
	s.amps = amps
	return nil
}

// SetProgressivePhase sets the per-element phase step for beam steering,
// so φ_k = phi0 + k·dphi; phi0 keeps the value given to NewPhasedArray.
func (s *Source) SetProgressivePhase(dphi float32) {
	s.dphi = dphi
}

func (s *Source) write(g *Grid, x, y int, value float32) {
	i := g.idx(x, y)
	if s.mode == Hard {
		g.Ez[i] = value
	} else {
		g.Ez[i] += value
	}
}

// inject applies the source to g.Ez at the grid's current step,
// dispatching on the single tag (spec.md §9 "Dispatch is a single
// match at inject time").
func (s *Source) inject(g *Grid) {
	n := g.n
	switch s.kind {
	case kindPoint:
		s.write(g, s.x, s.y, s.wave.Value(n))

	case kindPlaneWave:
		v := s.wave.Value(n)
		if s.axis == AxisVertical {
			for y := 0; y < g.H; y++ {
				s.write(g, s.x, y, v)
			}
		} else {
			for x := 0; x < g.W; x++ {
				s.write(g, x, s.y, v)
			}
		}

	case kindGaussianBeam:
		base := s.wave.Value(n)
		w2 := s.waist * s.waist
		for y := 0; y < g.H; y++ {
			dy := float32(y) - s.yc
			envelope := float32(math.Exp(-2 * float64(dy*dy) / float64(w2)))
			s.write(g, s.x, y, base*envelope)
		}

	case kindPhasedArray:
		for k := 0; k < s.elements; k++ {
			y := s.y + k*s.spacing
			phase := float64(s.phi0) + float64(k)*float64(s.dphi)
			amp := s.wave.A
			if s.amps != nil {
				amp = s.amps[k]
			}
			value := amp * float32(math.Sin(2*math.Pi*float64(s.wave.F)*float64(n)+phase))
			s.write(g, s.x, y, value)
		}
	}
}

// AddSource registers a source, applied in registration order from the
// next Step onward (spec.md §4.5 "Ordering").
func (g *Grid) AddSource(s *Source) {
	g.sources = append(g.sources, s)
}

// PlacePulse sets a single cell's E_z directly and immediately
// (spec.md §6 convenience method), independent of the registered-source
// list and of the current step's injection order.
func (g *Grid) PlacePulse(x, y int, amplitude float32) {
	g.Ez[g.idx(x, y)] = amplitude
}

// AddSoftSource registers a single-cell soft point source.
func (g *Grid) AddSoftSource(x, y int, wave Waveform) *Source {
	s, _ := NewPointSource(x, y, wave, Soft)
	g.AddSource(s)
	return s
}

// InjectPlaneWaveX registers a full vertical line source at x=pos.
func (g *Grid) InjectPlaneWaveX(pos int, wave Waveform, mode InjectMode) *Source {
	s, _ := NewPlaneWave(pos, AxisVertical, wave, mode)
	g.AddSource(s)
	return s
}

// InjectPlaneWaveY registers a full horizontal line source at y=pos.
func (g *Grid) InjectPlaneWaveY(pos int, wave Waveform, mode InjectMode) *Source {
	s, _ := NewPlaneWave(pos, AxisHorizontal, wave, mode)
	g.AddSource(s)
	return s
}

// InjectSinusoidalPlaneWave registers a sinusoidal plane-wave line
// source (spec.md §6 convenience method).
func (g *Grid) InjectSinusoidalPlaneWave(pos int, axis Axis, f, amplitude float32, mode InjectMode) (*Source, error) {
	wave, err := NewWaveform(Waveform{Kind: Sine, A: amplitude, F: f})
	if err != nil {
		return nil, err
	}
	s, _ := NewPlaneWave(pos, axis, wave, mode)
	g.AddSource(s)
	return s, nil
}

// InjectGaussianPlaneWave registers a Gaussian-pulse plane-wave line
// source (spec.md §6 convenience method).
func (g *Grid) InjectGaussianPlaneWave(pos int, axis Axis, n0, tau, amplitude float32, mode InjectMode) (*Source, error) {
	wave, err := NewWaveform(Waveform{Kind: Gaussian, A: amplitude, N0: n0, Tau: tau})
	if err != nil {
		return nil, err
	}
	s, _ := NewPlaneWave(pos, axis, wave, mode)
	g.AddSource(s)
	return s, nil
}
