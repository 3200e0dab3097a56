package engine

import "math"

// This file implements the raster operations of spec.md §4.1: filled
// rectangle, circle, ellipse and a Bresenham-stroked line, all painting
// by material id. Coordinates outside the grid clamp silently; there is
// no OutOfRange error (spec.md §7).

// PaintRect fills an inclusive rectangle with a material id. Inverted
// corners are normalized before filling (spec.md §4.1, tested by
// property 5 of spec.md §8).
func (g *Grid) PaintRect(x1, y1, x2, y2 int, id uint8) {
	x1, x2 = orderMinMax(clamp(x1, 0, g.W-1), clamp(x2, 0, g.W-1))
	y1, y2 = orderMinMax(clamp(y1, 0, g.H-1), clamp(y2, 0, g.H-1))
	for y := y1; y <= y2; y++ {
		for x := x1; x <= x2; x++ {
			g.SetCellMaterial(x, y, id)
		}
	}
}

// PaintCircle fills a disk of the given radius (in cells) centered at
// (cx, cy), including the rasterized boundary, using the standard
// midpoint circle algorithm to find each scanline's horizontal extent.
func (g *Grid) PaintCircle(cx, cy, radius int, id uint8) {
	if radius < 0 {
		return
	}
	x, y := radius, 0
	err := 1 - radius
	for x >= y {
		g.paintHSpan(cx-x, cx+x, cy+y, id)
		g.paintHSpan(cx-x, cx+x, cy-y, id)
		g.paintHSpan(cx-y, cx+y, cy+x, id)
		g.paintHSpan(cx-y, cx+y, cy-x, id)
		y++
		if err < 0 {
			err += 2*y + 1
		} else {
			x--
			err += 2*(y-x) + 1
		}
	}
}

func (g *Grid) paintHSpan(x1, x2, y int, id uint8) {
	if y < 0 || y >= g.H {
		return
	}
	x1 = clamp(x1, 0, g.W-1)
	x2 = clamp(x2, 0, g.W-1)
	for x := x1; x <= x2; x++ {
		g.SetCellMaterial(x, y, id)
	}
}

// PaintEllipse fills an axis-aligned ellipse inscribed in the bounding
// box (x1,y1)-(x2,y2), interior plus boundary, via per-scanline implicit
// evaluation of the ellipse equation.
func (g *Grid) PaintEllipse(x1, y1, x2, y2 int, id uint8) {
	x1, x2 = orderMinMax(x1, x2)
	y1, y2 = orderMinMax(y1, y2)
	rx := float64(x2-x1) / 2
	ry := float64(y2-y1) / 2
	if rx <= 0 || ry <= 0 {
		return
	}
	cx := float64(x1+x2) / 2
	cy := float64(y1+y2) / 2

	cy1, cy2 := clamp(y1, 0, g.H-1), clamp(y2, 0, g.H-1)
	for y := cy1; y <= cy2; y++ {
		dy := (float64(y) - cy) / ry
		rem := 1 - dy*dy
		if rem < 0 {
			continue
		}
		dx := rx * math.Sqrt(rem)
		g.paintHSpan(int(cx-dx), int(cx+dx), y, id)
	}
}

// PaintLine strokes a Bresenham line from (x1,y1) to (x2,y2) with a
// square brush of half-size ⌊brush/2⌋ (spec.md §4.1).
func (g *Grid) PaintLine(x1, y1, x2, y2 int, brush int, id uint8) {
	half := brush / 2
	plot := func(x, y int) {
		if half <= 0 {
			g.SetCellMaterial(x, y, id)
			return
		}
		g.PaintRect(x-half, y-half, x+half, y+half, id)
	}

	dx := abs(x2 - x1)
	dy := -abs(y2 - y1)
	sx, sy := 1, 1
	if x1 > x2 {
		sx = -1
	}
	if y1 > y2 {
		sy = -1
	}
	err := dx + dy

	x, y := x1, y1
	for {
		plot(x, y)
		if x == x2 && y == y2 {
			break
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x += sx
		}
		if e2 <= dx {
			err += dx
			y += sy
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
