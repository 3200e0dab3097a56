package engine

import "testing"

func TestNewProbeRejectsNonPowerOfTwo(t *testing.T) {
	if _, err := NewProbe(0, 0, 17); err == nil {
		t.Errorf("length=17 should be rejected")
	}
	if _, err := NewProbe(0, 0, 16); err != nil {
		t.Errorf("length=16 should be accepted: %v", err)
	}
}

func TestProbeSnapshotChronologicalOrder(t *testing.T) {
	g, err := NewGridWithBoundary(8, 8, BoundaryNone, 0)
	if err != nil {
		t.Fatal(err)
	}
	p, err := NewProbe(4, 4, 4)
	if err != nil {
		t.Fatal(err)
	}

	values := []float32{1, 2, 3, 4, 5, 6}
	for _, v := range values {
		g.Ez[g.idx(4, 4)] = v
		p.Record(g)
	}

	snap := p.Snapshot()
	want := []float32{3, 4, 5, 6} // ring buffer length 4, last 4 writes, oldest first
	if len(snap) != len(want) {
		t.Fatalf("snapshot length = %d, want %d", len(snap), len(want))
	}
	for i := range want {
		if snap[i] != want[i] {
			t.Errorf("snapshot[%d] = %v, want %v", i, snap[i], want[i])
		}
	}
}

func TestProbeSnapshotBeforeFull(t *testing.T) {
	g, _ := NewGridWithBoundary(8, 8, BoundaryNone, 0)
	p, _ := NewProbe(4, 4, 8)
	g.Ez[g.idx(4, 4)] = 9
	p.Record(g)
	g.Ez[g.idx(4, 4)] = 10
	p.Record(g)

	snap := p.Snapshot()
	if len(snap) != 2 {
		t.Fatalf("snapshot length = %d, want 2 before buffer fills", len(snap))
	}
	if snap[0] != 9 || snap[1] != 10 {
		t.Errorf("snapshot = %v, want [9 10]", snap)
	}
}

func TestProbeClear(t *testing.T) {
	g, _ := NewGridWithBoundary(8, 8, BoundaryNone, 0)
	p, _ := NewProbe(4, 4, 4)
	g.Ez[g.idx(4, 4)] = 1
	p.Record(g)
	p.Clear()
	snap := p.Snapshot()
	if len(snap) != 0 {
		t.Errorf("snapshot after Clear has length %d, want 0", len(snap))
	}
}
