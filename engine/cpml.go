package engine

import "math"

// DefaultCPMLThickness is the default CPML layer thickness in cells
// (spec.md §4.4, "typically 10 cells on each side").
const DefaultCPMLThickness = 10

const (
	cpmlGradeM   = 3.0
	cpmlSigmaMax = 0.8 * (cpmlGradeM + 1) // η₀ = Δx = 1 in this normalization
	cpmlKappaMax = 15.0
	cpmlAlphaMax = 0.05
)

// cpmlState holds the four auxiliary ψ arrays and the per-layer
// coefficient vectors of spec.md §3/§4.4. Because the engine normalizes
// μ₀ = ε₀ = 1, the H-side and E-side coefficient profiles are
// numerically identical (spec.md §4.4: "b_H, c_H are identical with
// field-normal permeability in place of ε"), so a single coefficient set
// serves both ψ_E and ψ_H updates.
type cpmlState struct {
	T, W, H int

	bCoef, cCoef []float32 // length T, indexed by depth d = 0..T-1

	// ψ_Ezx, ψ_Hyx: x-normal strips, shaped 2T×H (layer 0..T-1 = left
	// edge at x=0..T-1, layer T..2T-1 = right edge at x=W-T..W-1).
	psiEzx []float32
	psiHyx []float32

	// ψ_Ezy, ψ_Hxy: y-normal strips, shaped W×2T (layer 0..T-1 = top
	// edge at y=0..T-1, layer T..2T-1 = bottom edge at y=H-T..H-1).
	psiEzy []float32
	psiHxy []float32
}

func newCPMLState(w, h, t int) *cpmlState {
	c := &cpmlState{
		T: t, W: w, H: h,
		bCoef:  make([]float32, t),
		cCoef:  make([]float32, t),
		psiEzx: make([]float32, 2*t*h),
		psiHyx: make([]float32, 2*t*h),
		psiEzy: make([]float32, 2*t*w),
		psiHxy: make([]float32, 2*t*w),
	}
	for d := 0; d < t; d++ {
		frac := (float64(d) + 0.5) / float64(t)
		grade := math.Pow(frac, cpmlGradeM)
		sigma := cpmlSigmaMax * grade
		kappa := 1 + (cpmlKappaMax-1)*grade
		alpha := cpmlAlphaMax * (1 - frac)

		b := math.Exp(-(sigma/kappa + alpha) * Dt / Eps0)
		denom := sigma*kappa + kappa*kappa*alpha
		var cc float64
		if denom != 0 {
			cc = sigma * (b - 1) / denom
		}
		c.bCoef[d] = float32(b)
		c.cCoef[d] = float32(cc)
	}
	return c
}

func (c *cpmlState) reset() {
	zeroF32(c.psiEzx)
	zeroF32(c.psiHyx)
	zeroF32(c.psiEzy)
	zeroF32(c.psiHxy)
}

// xDepth returns the CPML layer index (0..2T-1) and grading depth
// (0..T-1) for a column x, or ok=false if x is outside either strip.
func (c *cpmlState) xDepth(x int) (layer, depth int, ok bool) {
	if x < c.T {
		return x, c.T - 1 - x, true
	}
	if x >= c.W-c.T {
		d := x - (c.W - c.T)
		return c.T + d, d, true
	}
	return 0, 0, false
}

func (c *cpmlState) yDepth(y int) (layer, depth int, ok bool) {
	if y < c.T {
		return y, c.T - 1 - y, true
	}
	if y >= c.H-c.T {
		d := y - (c.H - c.T)
		return c.T + d, d, true
	}
	return 0, 0, false
}

// correctH applies the ψ_H correction to Hx/Hy for cells in the CPML
// strips, using the same field derivatives the plain H update just
// computed (Ez has not changed since). It runs immediately after the
// interior H update within Step, which keeps H→E→PEC→boundary→sources
// observably fixed (spec.md §4.3) while avoiding a second pass over the
// cached derivatives a strictly separate stage would need.
func (c *cpmlState) correctH(g *Grid) {
	w, h := g.W, g.H
	// x-normal strips correct Hy (its update differentiates Ez along x).
	for j := 1; j < h-1; j++ {
		row := j * w
		for x := 1; x < w-1; x++ {
			layer, depth, ok := c.xDepth(x)
			if !ok {
				continue
			}
			i := row + x
			dEz := g.Ez[i+1] - g.Ez[i]
			pIdx := layer*h + j
			psi := c.bCoef[depth]*c.psiHyx[pIdx] + c.cCoef[depth]*dEz
			c.psiHyx[pIdx] = psi
			g.Hy[i] += CourantS * psi
		}
	}
	// y-normal strips correct Hx (its update differentiates Ez along y).
	for j := 1; j < h-1; j++ {
		row := j * w
		rowUp := (j + 1) * w
		layer, depth, ok := c.yDepth(j)
		if !ok {
			continue
		}
		for x := 1; x < w-1; x++ {
			i := row + x
			dEz := g.Ez[rowUp+x] - g.Ez[i]
			pIdx := layer*w + x
			psi := c.bCoef[depth]*c.psiHxy[pIdx] + c.cCoef[depth]*dEz
			c.psiHxy[pIdx] = psi
			g.Hx[i] -= CourantS * psi
		}
	}
}

// correctE applies the ψ_E correction to Ez for cells in the CPML
// strips, using the H values the plain E update just consumed.
func (c *cpmlState) correctE(g *Grid) {
	w, h := g.W, g.H
	for j := 1; j < h-1; j++ {
		row := j * w
		rowDown := (j - 1) * w
		yLayer, yDepth, yOK := c.yDepth(j)
		for x := 1; x < w-1; x++ {
			i := row + x
			var correction float32

			if xLayer, xDepth, ok := c.xDepth(x); ok {
				dHy := g.Hy[i] - g.Hy[i-1]
				pIdx := xLayer*h + j
				psi := c.bCoef[xDepth]*c.psiEzx[pIdx] + c.cCoef[xDepth]*dHy
				c.psiEzx[pIdx] = psi
				correction += psi
			}
			if yOK {
				dHx := g.Hx[i] - g.Hx[rowDown+x]
				pIdx := yLayer*w + x
				psi := c.bCoef[yDepth]*c.psiEzy[pIdx] + c.cCoef[yDepth]*dHx
				c.psiEzy[pIdx] = psi
				correction -= psi
			}
			if correction != 0 {
				g.Ez[i] += g.cb[i] * correction
			}
		}
	}
}
