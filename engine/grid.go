package engine

import "math"

// BoundaryMode selects how the outermost rows/columns of the lattice are
// terminated. CPML is the default and recommended mode (spec.md §4.4).
// Mur is the documented first-order fallback. None leaves the outer ring
// frozen at zero, which is only useful for isolating interior behavior in
// tests. Periodic wraps the lattice into a torus, used by the energy-
// conservation test scenario of spec.md §8 ("doubly-periodic boundaries")
// where no absorption at all should occur.
type BoundaryMode int

const (
	BoundaryCPML BoundaryMode = iota
	BoundaryMur
	BoundaryNone
	BoundaryPeriodic
)

// MaxGridDimension bounds W and H to keep a single grid's field arrays
// within a sane memory footprint; it is generous enough for any
// realistic 2D visualization (16M cells per array).
const MaxGridDimension = 4096

// Grid is the owned, single-threaded FDTD lattice: flat row-major field
// and material arrays, a monotonic step counter, and whichever boundary
// state the chosen BoundaryMode requires. See spec.md §3 for the full
// data model and invariants.
type Grid struct {
	W, H int

	Ez []float32
	Hx []float32
	Hy []float32

	matID   []uint8
	ca      []float32
	cb      []float32
	pecMask []bool

	palette [numMaterials]Material

	n         uint64
	unstable  bool
	boundary  BoundaryMode
	cpmlLayer *cpmlState
	murCache  *murCache

	sources []*Source
}

// NewGrid creates a W×H grid with CPML boundaries of the default
// thickness (10 cells) and the default material palette. Arrays are
// zero-initialized (spec.md §3 "Lifecycle").
func NewGrid(w, h int) (*Grid, error) {
	return NewGridWithBoundary(w, h, BoundaryCPML, DefaultCPMLThickness)
}

// NewGridWithBoundary creates a grid with an explicit boundary mode and
// CPML layer thickness (the thickness argument is ignored for non-CPML
// modes).
func NewGridWithBoundary(w, h int, mode BoundaryMode, cpmlThickness int) (*Grid, error) {
	if w <= 0 || h <= 0 {
		return nil, invalidGeometry("W=%d H=%d, both must be > 0", w, h)
	}
	if w > MaxGridDimension || h > MaxGridDimension {
		return nil, invalidGeometry("W=%d H=%d exceeds MaxGridDimension=%d", w, h, MaxGridDimension)
	}
	if mode == BoundaryCPML && (w <= 2*cpmlThickness || h <= 2*cpmlThickness) {
		return nil, invalidGeometry("W=%d H=%d too small for CPML thickness %d", w, h, cpmlThickness)
	}

	size := w * h
	g := &Grid{
		W: w, H: h,
		Ez:      make([]float32, size),
		Hx:      make([]float32, size),
		Hy:      make([]float32, size),
		matID:   make([]uint8, size),
		ca:      make([]float32, size),
		cb:      make([]float32, size),
		pecMask: make([]bool, size),
		palette: defaultPalette,
		boundary: mode,
	}
	g.recomputeAllCoefficients()

	switch mode {
	case BoundaryCPML:
		g.cpmlLayer = newCPMLState(w, h, cpmlThickness)
	case BoundaryMur:
		g.murCache = newMurCache(w, h)
	}
	return g, nil
}

// idx maps a clamped (x, y) pair to its row-major flat index.
func (g *Grid) idx(x, y int) int {
	x = clamp(x, 0, g.W-1)
	y = clamp(y, 0, g.H-1)
	return y*g.W + x
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Width returns the grid width in cells.
func (g *Grid) Width() int { return g.W }

// Height returns the grid height in cells.
func (g *Grid) Height() int { return g.H }

// TimeStep returns the monotonic step counter n.
func (g *Grid) TimeStep() uint64 { return g.n }

// FieldAt returns E_z at the given (possibly out-of-range, clamped) cell.
func (g *Grid) FieldAt(x, y int) float32 { return g.Ez[g.idx(x, y)] }

// MaterialAt returns the material palette id of the given cell.
func (g *Grid) MaterialAt(x, y int) uint8 { return g.matID[g.idx(x, y)] }

// IsPEC reports whether the given cell is a perfect electric conductor.
func (g *Grid) IsPEC(x, y int) bool { return g.pecMask[g.idx(x, y)] }

// EzView returns a read-only view of the E_z array. The view is valid
// only until the next mutating call on the Grid (Step, StepN, Reset, any
// material/raster setter, or source registration); retaining it across
// such a call is undefined, mirroring the GPU-uploader borrow described
// in spec.md §9.
func (g *Grid) EzView() []float32 { return g.Ez[:len(g.Ez):len(g.Ez)] }

// Reset zeros field arrays and the step counter but keeps materials and
// registered sources (spec.md §3 "Lifecycle"). CPML/Mur auxiliary state
// is also cleared.
func (g *Grid) Reset() {
	zeroF32(g.Ez)
	zeroF32(g.Hx)
	zeroF32(g.Hy)
	g.n = 0
	g.unstable = false
	if g.cpmlLayer != nil {
		g.cpmlLayer.reset()
	}
	if g.murCache != nil {
		g.murCache.reset()
	}
}

func zeroF32(s []float32) {
	for i := range s {
		s[i] = 0
	}
}

// ClearMaterials sets every cell to Vacuum and recomputes coefficients
// (spec.md §3 "Lifecycle").
func (g *Grid) ClearMaterials() {
	for i := range g.matID {
		g.matID[i] = Vacuum
	}
	g.recomputeAllCoefficients()
}

func (g *Grid) recomputeAllCoefficients() {
	for i := range g.matID {
		g.recomputeCoefficient(i)
	}
}

func (g *Grid) recomputeCoefficient(i int) {
	mat := g.palette[g.matID[i]]
	pec := mat.Kind == PEC
	g.pecMask[i] = pec
	g.ca[i], g.cb[i] = deriveCoefficients(mat.EpsR, mat.Sigma, pec)
}

// SetCellMaterial writes the material id of a single (clamped) cell and
// recomputes its coefficients.
func (g *Grid) SetCellMaterial(x, y int, id uint8) {
	i := g.idx(x, y)
	g.matID[i] = id % numMaterials
	g.recomputeCoefficient(i)
}

// SetPEC forces a single cell to the PEC material.
func (g *Grid) SetPEC(x, y int) {
	g.SetCellMaterial(x, y, Metal)
}

// SetMaterialRegion paints an inclusive, corner-order-independent
// rectangle with a generic dielectric of the given (ε_r, σ), per
// spec.md §4.1. The region is stored as material id Vacuum with ad hoc
// coefficients overriding the palette-derived ones, since an arbitrary
// (ε_r, σ) pair generally has no palette slot.
func (g *Grid) SetMaterialRegion(x1, y1, x2, y2 int, epsR, sigma float32) error {
	if err := validateMaterialParams(epsR, 1, sigma); err != nil {
		return err
	}
	x1, x2 = orderMinMax(clamp(x1, 0, g.W-1), clamp(x2, 0, g.W-1))
	y1, y2 = orderMinMax(clamp(y1, 0, g.H-1), clamp(y2, 0, g.H-1))
	ca, cb := deriveCoefficients(epsR, sigma, false)
	for y := y1; y <= y2; y++ {
		row := y * g.W
		for x := x1; x <= x2; x++ {
			i := row + x
			g.matID[i] = Vacuum
			g.pecMask[i] = false
			g.ca[i] = ca
			g.cb[i] = cb
		}
	}
	return nil
}

func orderMinMax(a, b int) (int, int) {
	if a > b {
		return b, a
	}
	return a, b
}

// IsStable returns true iff every E_z cell holds a finite value
// (spec.md §4.7).
func (g *Grid) IsStable() bool {
	if g.unstable {
		return false
	}
	for _, v := range g.Ez {
		if !finite32(v) {
			return false
		}
	}
	return true
}

func finite32(v float32) bool {
	f := float64(v)
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// TotalEnergy returns Σ (½·ε_r·ε₀·E_z² + ½·μ₀·(H_x² + H_y²)) over every
// cell, or -1 if any field holds a non-finite value (spec.md §4.7). This
// is a plain loop over []float32 rather than a gonum/floats reduction:
// floats.* is float64-only, and converting the whole grid on every
// polled call would add an allocation to a path clients may call once
// per frame.
func (g *Grid) TotalEnergy() float32 {
	var total float32
	for i := range g.Ez {
		ez, hx, hy := g.Ez[i], g.Hx[i], g.Hy[i]
		if !finite32(ez) || !finite32(hx) || !finite32(hy) {
			return -1
		}
		epsR := g.palette[g.matID[i]].EpsR
		if g.matID[i] == Vacuum && g.cb[i] != 0 {
			// SetMaterialRegion cells keep id Vacuum with their own (ca, cb);
			// ca = (ε−h)/(ε+h) and cb = (Δt/Δx)/(ε+h) give back ε.
			epsR = (Dt / Dx) * (1 + g.ca[i]) / (2 * g.cb[i] * Eps0)
		}
		total += 0.5*epsR*Eps0*ez*ez + 0.5*Mu0*(hx*hx+hy*hy)
	}
	return total
}
