package engine

import (
	"math"
	"testing"
)

func TestStepNMatchesRepeatedStep(t *testing.T) {
	newScenario := func() *Grid {
		g, err := NewGridWithBoundary(48, 48, BoundaryCPML, DefaultCPMLThickness)
		if err != nil {
			t.Fatal(err)
		}
		wave, _ := NewWaveform(Waveform{Kind: Sine, A: 1, F: 0.1})
		g.AddSoftSource(24, 24, wave)
		return g
	}

	a := newScenario()
	b := newScenario()

	for i := 0; i < 30; i++ {
		a.Step()
	}
	b.StepN(30)

	for i := range a.Ez {
		if a.Ez[i] != b.Ez[i] {
			t.Fatalf("Ez[%d] differs: step-by-step=%v stepN=%v", i, a.Ez[i], b.Ez[i])
		}
	}
	if a.TimeStep() != b.TimeStep() {
		t.Errorf("time step differs: %d vs %d", a.TimeStep(), b.TimeStep())
	}
}

func TestStepNStopsEarlyOnInstability(t *testing.T) {
	g, err := NewGridWithBoundary(32, 32, BoundaryNone, 0)
	if err != nil {
		t.Fatal(err)
	}
	// A PEC cell with a wildly out-of-domain coefficient poke is not
	// representative; instead force instability directly to exercise
	// the early-return contract.
	g.Ez[10] = float32(math.Inf(1)) // forces IsStable() false post-step
	taken := g.StepN(5)
	if taken != 1 {
		t.Errorf("StepN after forced instability ran %d steps, want 1", taken)
	}
	if g.IsStable() {
		t.Errorf("grid reports stable after an infinite field value")
	}
}

func TestPECCellAlwaysZero(t *testing.T) {
	g, err := NewGrid(64, 64)
	if err != nil {
		t.Fatal(err)
	}
	for x := 0; x < g.W; x++ {
		g.SetPEC(x, 32)
	}
	wave, _ := NewWaveform(Waveform{Kind: Sine, A: 1, F: 0.05})
	g.AddSoftSource(10, 10, wave)

	for i := 0; i < 100; i++ {
		g.Step()
		for x := 0; x < g.W; x++ {
			if v := g.FieldAt(x, 32); v != 0 {
				t.Fatalf("step %d: PEC cell (%d,32) = %v, want 0", i, x, v)
			}
		}
	}
}

func TestUnstableGridIsNoOp(t *testing.T) {
	g, err := NewGridWithBoundary(32, 32, BoundaryNone, 0)
	if err != nil {
		t.Fatal(err)
	}
	g.Ez[0] = float32(math.Inf(1))
	g.Step() // marks unstable
	before := make([]float32, len(g.Ez))
	copy(before, g.Ez)
	beforeN := g.TimeStep()

	g.Step()

	if g.TimeStep() != beforeN {
		t.Errorf("Step() advanced n on an unstable grid")
	}
	for i := range g.Ez {
		if g.Ez[i] != before[i] && !(isNaNOrInf(g.Ez[i]) && isNaNOrInf(before[i])) {
			t.Fatalf("Ez[%d] changed on an unstable grid", i)
		}
	}
}

func isNaNOrInf(v float32) bool {
	return !finite32(v)
}
