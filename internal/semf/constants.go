// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package semf implements the closed-form nuclear-physics formulas: the
// semi-empirical mass formula, the Gamow alpha-decay model, shell-model
// classification, and the liquid-drop fragmentation estimate. Every
// function is pure; callers validate nuclides with types.Nuclide.Validate
// before entering this package.
package semf

import "math"

// Physical constants (CODATA where exact values exist).
const (
	// SpeedOfLight in m/s.
	SpeedOfLight = 299792458.0

	// ElementaryCharge in coulombs.
	ElementaryCharge = 1.602176634e-19

	// ReducedPlanck in J*s.
	ReducedPlanck = 1.054571817e-34

	// Boltzmann in J/K.
	Boltzmann = 1.380649e-23

	// Avogadro in atoms/mol.
	Avogadro = 6.02214076e23

	// AtomicMassKg is one atomic mass unit in kg.
	AtomicMassKg = 1.66053906660e-27

	// UToMeV converts atomic mass units to MeV.
	UToMeV = 931.49410242

	// MeVToJoule converts MeV to joules.
	MeVToJoule = 1.602176634e-13

	// FineStructure is the fine-structure constant alpha.
	FineStructure = 7.2973525693e-3

	// VacuumPermittivity in F/m.
	VacuumPermittivity = 8.8541878128e-12

	// RadiusParameterM is r0 in R = r0 * A^(1/3), in meters.
	RadiusParameterM = 1.2e-15

	// BarnToM2 converts barns to square meters.
	BarnToM2 = 1e-28

	// SecondsPerYear uses the Julian year.
	SecondsPerYear = 365.25 * 24 * 3600
)

// Liquid-drop coefficients of the semi-empirical mass formula, in MeV.
const (
	CoeffVolume    = 15.8
	CoeffSurface   = 18.3
	CoeffCoulomb   = 0.714
	CoeffAsymmetry = 23.2
	CoeffPairing   = 12.0
)

// NuclearRadiusM returns R = r0 * A^(1/3) in meters.
func NuclearRadiusM(a int) float64 {
	return RadiusParameterM * math.Cbrt(float64(a))
}
