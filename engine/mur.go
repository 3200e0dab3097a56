package engine

// murCoefficient is the first-order Mur ABC reflection coefficient
// (S-1)/(S+1), fixed since the engine fixes S = CourantS (spec.md §4.4).
const murCoefficient = (CourantS - 1) / (CourantS + 1)

// murCache holds the pre-update Ez values the Mur extrapolation needs:
// the outermost ring (which the interior update never touches) and the
// ring just inside it (which the interior update is about to overwrite).
type murCache struct {
	W, H int

	col0, col1, colWm2, colWm1 []float32 // length H
	row0, row1, rowHm2, rowHm1 []float32 // length W
}

func newMurCache(w, h int) *murCache {
	return &murCache{
		W: w, H: h,
		col0: make([]float32, h), col1: make([]float32, h),
		colWm2: make([]float32, h), colWm1: make([]float32, h),
		row0: make([]float32, w), row1: make([]float32, w),
		rowHm2: make([]float32, w), rowHm1: make([]float32, w),
	}
}

func (m *murCache) reset() {
	zeroF32(m.col0)
	zeroF32(m.col1)
	zeroF32(m.colWm2)
	zeroF32(m.colWm1)
	zeroF32(m.row0)
	zeroF32(m.row1)
	zeroF32(m.rowHm2)
	zeroF32(m.rowHm1)
}

// capture snapshots the pre-update edge values. Must run before the E
// update overwrites the interior ring.
func (m *murCache) capture(g *Grid) {
	w, h := g.W, g.H
	for j := 0; j < h; j++ {
		row := j * w
		m.col0[j] = g.Ez[row]
		m.col1[j] = g.Ez[row+1]
		m.colWm2[j] = g.Ez[row+w-2]
		m.colWm1[j] = g.Ez[row+w-1]
	}
	copy(m.row0, g.Ez[0:w])
	copy(m.row1, g.Ez[w:2*w])
	copy(m.rowHm2, g.Ez[(h-2)*w:(h-1)*w])
	copy(m.rowHm1, g.Ez[(h-1)*w:h*w])
}

// apply extrapolates the outer ring from the just-updated interior ring
// and the captured pre-update values (spec.md §4.4). Corners are written
// twice (by the column pass, then the row pass); the row pass's value
// wins, which is an arbitrary but consistent tie-break for a correction
// term that is already only first-order accurate.
func (m *murCache) apply(g *Grid) {
	w, h := g.W, g.H
	for j := 0; j < h; j++ {
		row := j * w
		newCol1 := g.Ez[row+1]
		g.Ez[row] = m.col1[j] + murCoefficient*(newCol1-m.col0[j])
		newColWm2 := g.Ez[row+w-2]
		g.Ez[row+w-1] = m.colWm2[j] + murCoefficient*(newColWm2-m.colWm1[j])
	}
	for i := 0; i < w; i++ {
		newRow1 := g.Ez[w+i]
		g.Ez[i] = m.row1[i] + murCoefficient*(newRow1-m.row0[i])
		newRowHm2 := g.Ez[(h-2)*w+i]
		g.Ez[(h-1)*w+i] = m.rowHm2[i] + murCoefficient*(newRowHm2-m.rowHm1[i])
	}
}
