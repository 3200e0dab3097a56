// Package engine implements a 2D finite-difference time-domain (FDTD)
// electromagnetic field solver for the transverse-magnetic (TM_z) mode.
//
// The package normalizes units so that ε₀ = μ₀ = Δx = 1 and fixes the
// Courant number S = Δt = 0.5, the stable value for the 2D Yee lattice
// (S ≤ 1/√2). Every formula in this package assumes that normalization;
// see CourantS, Eps0, Mu0 and Dx.
//
// A Grid owns its field arrays exclusively. Callers obtain read-only
// access to E_z via EzView, which is only valid until the next mutating
// call on the Grid — the same scoped-borrow contract a GPU uploader or
// probe would need on the other side of an FFI boundary.
package engine

// Normalization constants. The engine folds physical units so that the
// free-space permittivity, permeability and grid spacing are all 1; the
// Courant number S is fixed at the conventional 0.5, below the 2D
// stability limit of 1/√2.
const (
	Eps0     = 1.0
	Mu0      = 1.0
	Dx       = 1.0
	CourantS = 0.5
	Dt       = CourantS
)
