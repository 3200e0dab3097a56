package engine

import "testing"

func materialMap(g *Grid) []uint8 {
	out := make([]uint8, len(g.matID))
	copy(out, g.matID)
	return out
}

func TestPaintRectCornerOrderInvariant(t *testing.T) {
	g1, _ := NewGrid(64, 64)
	g2, _ := NewGrid(64, 64)

	g1.PaintRect(10, 10, 40, 30, Glass)
	g2.PaintRect(40, 30, 10, 10, Glass)

	m1, m2 := materialMap(g1), materialMap(g2)
	for i := range m1 {
		if m1[i] != m2[i] {
			t.Fatalf("material maps differ at index %d: %d vs %d", i, m1[i], m2[i])
		}
	}
}

func TestPaintRectClamps(t *testing.T) {
	g, _ := NewGrid(32, 32)
	g.PaintRect(-100, -100, 1000, 1000, Glass)
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			if g.MaterialAt(x, y) != Glass {
				t.Fatalf("cell (%d,%d) = %d, want Glass after clamped full-grid paint", x, y, g.MaterialAt(x, y))
			}
		}
	}
}

func TestPaintCircleFillsCenterAndBoundary(t *testing.T) {
	g, _ := NewGrid(64, 64)
	g.PaintCircle(32, 32, 10, Water)
	if g.MaterialAt(32, 32) != Water {
		t.Errorf("circle center not painted")
	}
	if g.MaterialAt(32+10, 32) != Water {
		t.Errorf("circle boundary at radius not painted")
	}
	if g.MaterialAt(32+20, 32) == Water {
		t.Errorf("cell well outside circle radius was painted")
	}
}

func TestPaintEllipseFillsBoundingBox(t *testing.T) {
	g, _ := NewGrid(64, 64)
	g.PaintEllipse(10, 20, 50, 40, Crystal)
	if g.MaterialAt(30, 30) != Crystal {
		t.Errorf("ellipse center not painted")
	}
	if g.MaterialAt(0, 0) == Crystal {
		t.Errorf("cell outside ellipse bounding box was painted")
	}
}

func TestPaintLineWithBrush(t *testing.T) {
	g, _ := NewGrid(64, 64)
	g.PaintLine(5, 5, 5, 20, 3, Silicon)
	for y := 5; y <= 20; y++ {
		if g.MaterialAt(5, y) != Silicon {
			t.Fatalf("line not painted at (5,%d)", y)
		}
	}
	// half-size 1 brush should paint neighbor column too.
	if g.MaterialAt(6, 10) != Silicon {
		t.Errorf("brush did not widen the line")
	}
}
