package engine

import (
	"math"
	"testing"
)

func TestNewGridValidation(t *testing.T) {
	tests := []struct {
		name    string
		w, h    int
		wantErr bool
	}{
		{"valid", 64, 64, false},
		{"zero width", 0, 64, true},
		{"negative height", 64, -1, true},
		{"too large", MaxGridDimension + 1, 64, true},
		{"too small for cpml", 2 * DefaultCPMLThickness, 64, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewGrid(tt.w, tt.h)
			if (err != nil) != tt.wantErr {
				t.Errorf("NewGrid(%d,%d) err=%v, wantErr=%v", tt.w, tt.h, err, tt.wantErr)
			}
		})
	}
}

func TestResetMatchesFreshConstruction(t *testing.T) {
	g, err := NewGridWithBoundary(64, 64, BoundaryNone, 0)
	if err != nil {
		t.Fatal(err)
	}
	g.PlacePulse(32, 32, 1.0)
	wave, _ := NewWaveform(Waveform{Kind: Sine, A: 0.5, F: 0.1})
	g.AddSoftSource(10, 10, wave)

	for i := 0; i < 20; i++ {
		g.Step()
	}
	g.Reset()

	for i, v := range g.Ez {
		if v != 0 {
			t.Fatalf("Ez[%d] = %v after Reset, want 0", i, v)
		}
	}
	for i, v := range g.Hx {
		if v != 0 {
			t.Fatalf("Hx[%d] = %v after Reset, want 0", i, v)
		}
	}
	for i, v := range g.Hy {
		if v != 0 {
			t.Fatalf("Hy[%d] = %v after Reset, want 0", i, v)
		}
	}
	if g.TimeStep() != 0 {
		t.Errorf("TimeStep() = %d after Reset, want 0", g.TimeStep())
	}
}

func TestVacuumNoSourcesEnergyIsZero(t *testing.T) {
	g, err := NewGridWithBoundary(32, 32, BoundaryNone, 0)
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 50; i++ {
		g.Step()
		if e := g.TotalEnergy(); e != 0 {
			t.Fatalf("step %d: TotalEnergy() = %v, want 0", i, e)
		}
	}
}

func TestTotalEnergySentinelOnNonFinite(t *testing.T) {
	g, err := NewGridWithBoundary(16, 16, BoundaryNone, 0)
	if err != nil {
		t.Fatal(err)
	}
	g.Ez[5] = float32(math.NaN())
	if e := g.TotalEnergy(); e != -1 {
		t.Errorf("TotalEnergy() = %v, want -1 sentinel", e)
	}
	if g.IsStable() {
		t.Errorf("IsStable() = true with a NaN cell, want false")
	}
}

func TestClearMaterials(t *testing.T) {
	g, err := NewGrid(64, 64)
	if err != nil {
		t.Fatal(err)
	}
	g.SetCellMaterial(5, 5, Glass)
	g.ClearMaterials()
	if id := g.MaterialAt(5, 5); id != Vacuum {
		t.Errorf("MaterialAt after ClearMaterials = %d, want Vacuum", id)
	}
	i := g.idx(5, 5)
	wantCa, wantCb := deriveCoefficients(defaultPalette[Vacuum].EpsR, defaultPalette[Vacuum].Sigma, false)
	if g.ca[i] != wantCa || g.cb[i] != wantCb {
		t.Errorf("coefficients after ClearMaterials = (%v,%v), want (%v,%v)", g.ca[i], g.cb[i], wantCa, wantCb)
	}
}

func TestSetMaterialRegionOrdersCorners(t *testing.T) {
	g, err := NewGrid(64, 64)
	if err != nil {
		t.Fatal(err)
	}
	if err := g.SetMaterialRegion(40, 40, 5, 5, 4, 0); err != nil {
		t.Fatal(err)
	}
	i := g.idx(10, 10)
	wantCa, wantCb := deriveCoefficients(4, 0, false)
	if g.ca[i] != wantCa || g.cb[i] != wantCb {
		t.Errorf("region coefficients = (%v,%v), want (%v,%v)", g.ca[i], g.cb[i], wantCa, wantCb)
	}
}

func TestSetMaterialRegionRejectsInvalidParams(t *testing.T) {
	g, err := NewGrid(64, 64)
	if err != nil {
		t.Fatal(err)
	}
	if err := g.SetMaterialRegion(0, 0, 10, 10, 0.5, 0); err == nil {
		t.Errorf("SetMaterialRegion with epsR<1 should error")
	}
	if err := g.SetMaterialRegion(0, 0, 10, 10, 1, -1); err == nil {
		t.Errorf("SetMaterialRegion with negative sigma should error")
	}
}

func TestOutOfRangeCoordinatesClamp(t *testing.T) {
	g, err := NewGrid(64, 64)
	if err != nil {
		t.Fatal(err)
	}
	g.SetCellMaterial(-5, 1000, Glass)
	if id := g.MaterialAt(0, g.H-1); id != Glass {
		t.Errorf("clamped SetCellMaterial did not land at (0, H-1): got material %d", id)
	}
}
