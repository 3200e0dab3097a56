package game

// CellInfo describes the field/material state of a single grid cell,
// the readback shown when the cursor hovers a cell in the interactive
// viewer.
type CellInfo struct {
	X, Y      int
	Field     float32
	Material  uint8
	PEC       bool
}

// cellAtScreen converts a screen-space position to grid cell coordinates,
// returning ok=false if the point falls outside the grid in world space
// (the camera clamps world coordinates to [0, world size], so this
// happens only for points on or past the grid's far right or bottom
// edge).
func (g *Game) cellAtScreen(sx, sy float32) (x, y int, ok bool) {
	wx, wy := g.camera.ScreenToWorld(sx, sy)
	x = int(wx / CellSize)
	y = int(wy / CellSize)
	if x < 0 || y < 0 || x >= g.grid.Width() || y >= g.grid.Height() {
		return 0, 0, false
	}
	return x, y, true
}

// cellInfoAtScreen reads back the field/material state of the cell under
// a screen position, for the hover inspector.
func (g *Game) cellInfoAtScreen(sx, sy float32) (CellInfo, bool) {
	x, y, ok := g.cellAtScreen(sx, sy)
	if !ok {
		return CellInfo{}, false
	}
	return CellInfo{
		X:        x,
		Y:        y,
		Field:    g.grid.FieldAt(x, y),
		Material: g.grid.MaterialAt(x, y),
		PEC:      g.grid.IsPEC(x, y),
	}, true
}
