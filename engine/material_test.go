package engine

import "testing"

func TestDeriveCoefficientsVacuum(t *testing.T) {
	ca, cb := deriveCoefficients(1, 0, false)
	if ca != 1 {
		t.Errorf("vacuum ca = %v, want 1", ca)
	}
	wantCb := float32(Dt / (Eps0 * Dx))
	if cb != wantCb {
		t.Errorf("vacuum cb = %v, want %v", cb, wantCb)
	}
}

func TestDeriveCoefficientsPEC(t *testing.T) {
	ca, cb := deriveCoefficients(1, 0, true)
	if ca != 0 || cb != 0 {
		t.Errorf("PEC coefficients = (%v,%v), want (0,0)", ca, cb)
	}
}

func TestDeriveCoefficientsLossy(t *testing.T) {
	ca, cb := deriveCoefficients(2, 1, false)
	denom := float32(2*Eps0 + 1*Dt/2)
	wantCa := (2*float32(Eps0) - 1*float32(Dt)/2) / denom
	wantCb := float32(Dt/Dx) / denom
	if ca != wantCa || cb != wantCb {
		t.Errorf("lossy coefficients = (%v,%v), want (%v,%v)", ca, cb, wantCa, wantCb)
	}
}

func TestValidateMaterialParams(t *testing.T) {
	if err := validateMaterialParams(1, 1, 0); err != nil {
		t.Errorf("validateMaterialParams(1,1,0) = %v, want nil", err)
	}
	if err := validateMaterialParams(0.5, 1, 0); err == nil {
		t.Errorf("validateMaterialParams with epsR<1 should error")
	}
	if err := validateMaterialParams(1, 1, -1); err == nil {
		t.Errorf("validateMaterialParams with sigma<0 should error")
	}
}

func TestPaletteInvariants(t *testing.T) {
	for id, m := range defaultPalette {
		if m.EpsR < 1 {
			t.Errorf("palette[%d].EpsR = %v, want >= 1", id, m.EpsR)
		}
		if m.MuR < 1 {
			t.Errorf("palette[%d].MuR = %v, want >= 1", id, m.MuR)
		}
		if m.Sigma < 0 {
			t.Errorf("palette[%d].Sigma = %v, want >= 0", id, m.Sigma)
		}
	}
	if defaultPalette[Metal].Kind != PEC {
		t.Errorf("Metal palette entry is not PEC")
	}
}
