// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package critmass computes bare critical-assembly sizes from one-group
// diffusion theory with the four-factor formula collapsed to the pure
// fissile, unmoderated case (epsilon = p = f = 1). It is a teaching
// approximation, not a reactor-physics solver: the nu fallback, the Fermi
// age heuristic, and the flat reflector factor are all order-of-magnitude
// devices, called out as such on their constants below.
package critmass

import (
	"fmt"
	"math"

	"github.com/pdiddy/nuclide-engine/internal/semf"
	"github.com/pdiddy/nuclide-engine/internal/xsection"
	"github.com/pdiddy/nuclide-engine/pkg/types"
)

const (
	// fallbackDensityKgM3 applies when neither the caller nor the dataset
	// supplies a density.
	fallbackDensityKgM3 = 10000.0

	// fermiAgeFactor scales the diffusion length into a stand-in for the
	// Fermi age: tau = 0.5 * L. Heuristic, not derived from slowing-down
	// theory; it sets the overall scale of the migration area.
	fermiAgeFactor = 0.5

	// diffusionLengthFloorM guards the 1/sqrt(3*Sigma_s*Sigma_a) form
	// when either macroscopic cross section is zero.
	diffusionLengthFloorM = 0.1

	// minBucklingM2 is the floor used on the subcritical branch when the
	// migration area degenerates to zero.
	minBucklingM2 = 0.01

	// radiusFallbackM caps the geometry formulas when buckling is not
	// positive, so no branch can emit NaN or a negative radius.
	radiusFallbackM = 0.1

	// reflectorFactor shrinks the critical radius when a reflector is
	// present. A coarse constant, not a computed reflector savings.
	reflectorFactor = 0.7

	// cylinderBesselRoot is the first zero of J0, from the radial
	// buckling of a finite cylinder.
	cylinderBesselRoot = 2.405

	// energyPerFissionMeV is the usual ~200 MeV released per fission.
	energyPerFissionMeV = 200.0

	// joulesPerKtTNT converts to kilotons of TNT equivalent.
	joulesPerKtTNT = 4.184e12
)

// measuredNu holds measured average neutron yields per fission for the
// common fissile and fertile isotopes.
var measuredNu = map[[2]int]float64{
	{92, 235}: 2.43,
	{92, 238}: 2.6,
	{94, 239}: 2.87,
	{90, 232}: 2.4,
}

// neutronsPerFission returns nu and whether it came from the heuristic
// linear fallback rather than the measured table. Fallback results are
// low-confidence by construction.
func neutronsPerFission(n types.Nuclide) (nu float64, estimated bool) {
	if v, ok := measuredNu[[2]int{n.Z, n.A}]; ok {
		return v, false
	}
	if n.A > 200 {
		return 2.0 + 0.003*float64(n.A-200), true
	}
	return 2.0, true
}

// Request carries the optional knobs of a critical-mass calculation.
type Request struct {
	// DensityKgM3 overrides the dataset density. Zero selects the
	// dataset default, then fallbackDensityKgM3.
	DensityKgM3 float64

	Geometry  types.Geometry
	Reflector bool
}

// Calculate derives the critical size of a bare assembly of the given
// nuclide. Missing cross-section data and non-fissile material come back
// as tagged statuses, never as errors; a material whose k_infinity stays
// at or below 1 comes back StatusSubcritical with figures from the
// minimal-buckling fallback. The caller has validated the nuclide and
// a non-negative density.
func Calculate(table *xsection.Table, n types.Nuclide, req Request) types.CriticalMass {
	rec, ok := table.Get(n.Z, n.A)
	if !ok {
		return types.CriticalMass{
			Status:  types.StatusMissingData,
			Note:    fmt.Sprintf("no cross-section record for %s; critical-mass calculations need thermal neutron data", n),
			Nuclide: n,
		}
	}

	thermal := rec.Sections(xsection.Thermal)
	if thermal.FissionB == 0 {
		return types.CriticalMass{
			Status:  types.StatusNonFissile,
			Note:    fmt.Sprintf("%s does not undergo thermal-neutron fission", n),
			Nuclide: n,
			Name:    rec.Name,
		}
	}

	geometry := req.Geometry
	if geometry == "" {
		geometry = types.GeometrySphere
	}

	density := req.DensityKgM3
	if density == 0 {
		density = rec.DensityKgM3
	}
	if density == 0 {
		density = fallbackDensityKgM3
	}

	// Microscopic cross sections in m^2, then macroscopic in 1/m.
	sigmaF := thermal.FissionB * semf.BarnToM2
	sigmaA := thermal.AbsorptionB * semf.BarnToM2
	sigmaS := thermal.ScatteringB * semf.BarnToM2

	atomicMassKg := float64(n.A) * semf.AtomicMassKg
	numberDensity := density / atomicMassKg

	bigSigmaA := numberDensity * sigmaA
	bigSigmaS := numberDensity * sigmaS

	nu, nuEstimated := neutronsPerFission(n)

	eta := 0.0
	if sigmaA > 0 {
		eta = nu * sigmaF / sigmaA
	}

	// Pure fissile material without moderator: no fast-fission bonus, no
	// resonance absorption on the way down, all thermal absorption in fuel.
	factors := types.FourFactors{
		Eta:                eta,
		FastFission:        1.0,
		ResonanceEscape:    1.0,
		ThermalUtilization: 1.0,
	}
	kInfinity := factors.Eta * factors.FastFission * factors.ResonanceEscape * factors.ThermalUtilization

	diffusionLength := diffusionLengthFloorM
	if bigSigmaS > 0 && bigSigmaA > 0 {
		diffusionLength = 1.0 / math.Sqrt(3*bigSigmaS*bigSigmaA)
	}
	fermiAge := fermiAgeFactor * diffusionLength
	migrationArea := diffusionLength*diffusionLength + fermiAge

	// Critical buckling. k_eff is pinned to 1.0 exactly at the critical
	// point on the supercritical branch and reported as the bulk
	// k_infinity on the subcritical one; the two regimes are
	// distinguished by Status, not by re-deriving reactor physics.
	var (
		buckling float64
		kEff     float64
		status   types.Status
		note     string
	)
	switch {
	case kInfinity > 1.0 && migrationArea > 0:
		buckling = (kInfinity - 1.0) / migrationArea
		kEff = 1.0
		status = types.StatusOK
	case kInfinity <= 1.0:
		buckling = minBucklingM2
		if migrationArea > 0 {
			buckling = math.Abs(kInfinity-1.0) / migrationArea
		}
		kEff = kInfinity
		status = types.StatusSubcritical
		note = fmt.Sprintf("k_infinity = %.4f never exceeds 1; bulk %s cannot go critical at any size", kInfinity, n)
	default:
		buckling = minBucklingM2
		kEff = kInfinity
		status = types.StatusSubcritical
		note = "degenerate migration area; reported size uses the minimal-buckling fallback"
	}

	radius := criticalRadius(geometry, buckling)
	if req.Reflector {
		radius *= reflectorFactor
	}

	volume := criticalVolume(geometry, radius)
	massKg := density * volume

	binding := semf.BindingEnergy(n)
	atoms := massKg / atomicMassKg

	totalBindingMeV := binding.TotalMeV * atoms
	totalFissionMeV := energyPerFissionMeV * atoms
	totalFissionJ := totalFissionMeV * semf.MeVToJoule
	restEnergyJ := massKg * semf.SpeedOfLight * semf.SpeedOfLight

	return types.CriticalMass{
		Status:      status,
		Note:        note,
		Nuclide:     n,
		Name:        rec.Name,
		Geometry:    geometry,
		Reflector:   req.Reflector,
		DensityKgM3: density,

		CriticalMassKg:   massKg,
		CriticalRadiusM:  radius,
		CriticalVolumeM3: volume,

		Neutronics: &types.NeutronPhysics{
			NeutronsPerFission: nu,
			NuEstimated:        nuEstimated,
			FissionBarns:       thermal.FissionB,
			AbsorptionBarns:    thermal.AbsorptionB,
			ScatteringBarns:    thermal.ScatteringB,
			Factors:            factors,
			KInfinity:          kInfinity,
			KEffective:         kEff,
			MigrationAreaM2:    migrationArea,
			DiffusionLengthM:   diffusionLength,
			BucklingM2:         buckling,
		},
		Energy: &types.EnergyBookkeeping{
			BindingPerAtomMeV:  binding.TotalMeV,
			TotalBindingMeV:    totalBindingMeV,
			TotalBindingJ:      totalBindingMeV * semf.MeVToJoule,
			PerFissionMeV:      energyPerFissionMeV,
			TotalFissionMeV:    totalFissionMeV,
			TotalFissionJ:      totalFissionJ,
			TotalFissionKtTNT:  totalFissionJ / joulesPerKtTNT,
			RestEnergyJ:        restEnergyJ,
			RestEnergyMeV:      restEnergyJ / semf.MeVToJoule,
			MassDefectPerAtomU: binding.MassDefectU,
		},
	}
}

// criticalRadius applies the geometric buckling formula for each shape.
// For the slab the returned value is the half-thickness. Non-positive
// buckling falls back to a fixed radius rather than emitting NaN.
func criticalRadius(g types.Geometry, buckling float64) float64 {
	if buckling <= 0 {
		return radiusFallbackM
	}
	switch g {
	case types.GeometryCylinder:
		return cylinderBesselRoot / math.Sqrt(buckling)
	default: // sphere and slab share pi/sqrt(B^2)
		return math.Pi / math.Sqrt(buckling)
	}
}

// criticalVolume converts a critical radius into a volume: a sphere, a
// height-equals-diameter cylinder, or a unit-area slab of thickness 2r.
func criticalVolume(g types.Geometry, radius float64) float64 {
	switch g {
	case types.GeometryCylinder:
		height := 2 * radius
		return math.Pi * radius * radius * height
	case types.GeometrySlab:
		const unitAreaM2 = 1.0
		return unitAreaM2 * 2 * radius
	default:
		return 4.0 / 3.0 * math.Pi * radius * radius * radius
	}
}
