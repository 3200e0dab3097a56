package engine

import "testing"

func TestCPMLAbsorbsEnergyAfterWaveReachesBoundary(t *testing.T) {
	g, err := NewGridWithBoundary(128, 128, BoundaryCPML, DefaultCPMLThickness)
	if err != nil {
		t.Fatal(err)
	}
	wave, err := NewWaveform(Waveform{Kind: Gaussian, A: 1, N0: 30, Tau: 10})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := g.InjectGaussianPlaneWave(20, AxisVertical, wave.N0, wave.Tau, wave.A, Soft); err != nil {
		t.Fatal(err)
	}

	var peak float32
	for i := 0; i < 500; i++ {
		g.Step()
		if !g.IsStable() {
			t.Fatalf("grid went unstable at step %d", i)
		}
		if e := g.TotalEnergy(); e > peak {
			peak = e
		}
	}
	final := g.TotalEnergy()
	if peak <= 0 {
		t.Fatalf("peak energy = %v, want > 0 (pulse never propagated)", peak)
	}
	if final > 0.05*peak {
		t.Errorf("final energy %v is more than 5%% of peak %v; CPML did not absorb", final, peak)
	}
}

func TestCPMLResetClearsPsi(t *testing.T) {
	g, err := NewGridWithBoundary(64, 64, BoundaryCPML, DefaultCPMLThickness)
	if err != nil {
		t.Fatal(err)
	}
	g.PlacePulse(5, 32, 1)
	for i := 0; i < 20; i++ {
		g.Step()
	}
	g.Reset()
	for i, v := range g.cpmlLayer.psiEzx {
		if v != 0 {
			t.Fatalf("psiEzx[%d] = %v after Reset, want 0", i, v)
		}
	}
}

func TestMurBoundaryStaysStable(t *testing.T) {
	g, err := NewGridWithBoundary(96, 96, BoundaryMur, 0)
	if err != nil {
		t.Fatal(err)
	}
	wave, _ := NewWaveform(Waveform{Kind: Sine, A: 1, F: 0.08})
	g.AddSoftSource(48, 48, wave)
	for i := 0; i < 300; i++ {
		g.Step()
	}
	if !g.IsStable() {
		t.Errorf("Mur-bounded grid went unstable")
	}
}

func TestPeriodicBoundaryConservesEnergy(t *testing.T) {
	g, err := NewGridWithBoundary(64, 64, BoundaryPeriodic, 0)
	if err != nil {
		t.Fatal(err)
	}
	g.PlacePulse(32, 32, 1.0)
	g.Step()
	initial := g.TotalEnergy()
	for i := 0; i < 500; i++ {
		g.Step()
	}
	final := g.TotalEnergy()
	if final <= 0 {
		t.Fatalf("periodic grid lost all energy: final=%v", final)
	}
	diff := final - initial
	if diff < 0 {
		diff = -diff
	}
	if diff > 0.01*initial {
		t.Errorf("periodic boundary energy drifted: initial=%v final=%v", initial, final)
	}
}
