package engine

// Step advances the grid by exactly one time step: H update, E update,
// PEC enforcement, boundary correction, source injection, then n++
// (spec.md §4.3 "Order per step"). If the grid is already unstable, Step
// is a no-op (spec.md §7 "Instability ... step() becomes a no-op until
// reset()").
//
// For BoundaryCPML grids the ψ correction is folded into updateH/updateE
// themselves rather than run as a later pass (see cpml.go); for
// BoundaryMur grids the extrapolation genuinely runs as the fourth stage,
// since it depends on the E update's output. Both preserve the same
// observable four-stage ordering.
func (g *Grid) Step() {
	if g.unstable {
		return
	}

	if g.boundary == BoundaryMur {
		g.murCache.capture(g)
	}

	if g.boundary == BoundaryPeriodic {
		g.updateHPeriodic()
		g.updateEPeriodic()
	} else {
		g.updateH()
		g.updateE()
	}

	g.applyPEC()

	if g.boundary == BoundaryMur {
		g.murCache.apply(g)
	}

	g.injectSources()
	g.n++

	if !g.IsStable() {
		g.unstable = true
	}
}

// StepN runs k consecutive steps, equivalent to k calls to Step
// (spec.md §8 invariant 7). If the grid goes unstable mid-batch, StepN
// stops early and returns the number of steps actually taken (spec.md §5
// "Cancellation": "If instability is detected mid-batch, step_n stops
// and returns early").
func (g *Grid) StepN(k int) int {
	for i := 0; i < k; i++ {
		if g.unstable {
			return i
		}
		g.Step()
	}
	return k
}

// updateH is the leap-frog H update of spec.md §4.3, operating on
// interior indices 1 ≤ i < W-1, 1 ≤ j < H-1.
func (g *Grid) updateH() {
	w, h := g.W, g.H
	for j := 1; j < h-1; j++ {
		row := j * w
		rowUp := (j + 1) * w
		for i := 1; i < w-1; i++ {
			idx := row + i
			g.Hx[idx] -= CourantS * (g.Ez[rowUp+i] - g.Ez[idx])
			g.Hy[idx] += CourantS * (g.Ez[idx+1] - g.Ez[idx])
		}
	}
	if g.boundary == BoundaryCPML {
		g.cpmlLayer.correctH(g)
	}
}

// updateE is the curl-based E update of spec.md §4.3.
func (g *Grid) updateE() {
	w, h := g.W, g.H
	for j := 1; j < h-1; j++ {
		row := j * w
		rowDown := (j - 1) * w
		for i := 1; i < w-1; i++ {
			idx := row + i
			curlH := (g.Hy[idx] - g.Hy[idx-1]) - (g.Hx[idx] - g.Hx[rowDown+i])
			g.Ez[idx] = g.ca[idx]*g.Ez[idx] + g.cb[idx]*curlH
		}
	}
	if g.boundary == BoundaryCPML {
		g.cpmlLayer.correctE(g)
	}
}

// updateHPeriodic and updateEPeriodic wrap every cell's neighbor lookup
// modulo W/H, turning the lattice into a torus. This mode exists for the
// energy-conservation test scenario of spec.md §8 ("CPML disabled and
// doubly-periodic boundaries"), where no energy should leave the grid at
// all.
func (g *Grid) updateHPeriodic() {
	w, h := g.W, g.H
	for j := 0; j < h; j++ {
		row := j * w
		rowUp := ((j + 1) % h) * w
		for i := 0; i < w; i++ {
			idx := row + i
			iRight := row + (i+1)%w
			g.Hx[idx] -= CourantS * (g.Ez[rowUp+i] - g.Ez[idx])
			g.Hy[idx] += CourantS * (g.Ez[iRight] - g.Ez[idx])
		}
	}
}

func (g *Grid) updateEPeriodic() {
	w, h := g.W, g.H
	for j := 0; j < h; j++ {
		row := j * w
		rowDown := ((j - 1 + h) % h) * w
		for i := 0; i < w; i++ {
			idx := row + i
			iLeft := row + (i-1+w)%w
			curlH := (g.Hy[idx] - g.Hy[iLeft]) - (g.Hx[idx] - g.Hx[rowDown+i])
			g.Ez[idx] = g.ca[idx]*g.Ez[idx] + g.cb[idx]*curlH
		}
	}
}

// applyPEC forces E_z to zero in every PEC cell (spec.md §4.3), after
// every E update, regardless of the coefficients otherwise in force.
func (g *Grid) applyPEC() {
	for i, pec := range g.pecMask {
		if pec {
			g.Ez[i] = 0
		}
	}
}

// injectSources applies every registered source in registration order
// (spec.md §4.5 "Ordering").
func (g *Grid) injectSources() {
	for _, s := range g.sources {
		s.inject(g)
	}
}
