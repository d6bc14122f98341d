// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package semf

import (
	"math"

	"github.com/pdiddy/nuclide-engine/pkg/types"
)

// attemptFrequencyHz is the assumed nuclear vibration frequency in the
// half-life estimate. An order-of-magnitude figure, not measured
// per-nuclide.
const attemptFrequencyHz = 1e21

// alphaCharge is the charge number of the emitted alpha particle.
const alphaCharge = 2

// AlphaDecay estimates the tunneling probability and half-life for alpha
// emission at energy eAlphaMeV using the bare Gamow model. The caller
// guarantees eAlphaMeV > 0 and Z > alphaCharge.
//
// The model keeps only the exponential Gamow factor; it overshoots
// measured half-lives of heavy emitters by many orders of magnitude and
// is reported for its scaling behavior, not its absolute value.
func AlphaDecay(n types.Nuclide, eAlphaMeV float64) types.AlphaDecay {
	zDaughter := float64(n.Z - alphaCharge)

	// Coulomb barrier height at the nuclear surface.
	r := NuclearRadiusM(n.A)
	vCoulombJ := alphaCharge * zDaughter * ElementaryCharge * ElementaryCharge /
		(4 * math.Pi * VacuumPermittivity * r)
	vCoulombMeV := vCoulombJ / MeVToJoule

	// Sommerfeld parameter and Gamow factor.
	eta := 2 * FineStructure * alphaCharge * zDaughter * math.Sqrt(931.494/eAlphaMeV)
	gamow := math.Exp(-2 * math.Pi * eta)

	tunneling := gamow
	if eAlphaMeV >= vCoulombMeV {
		// Above the barrier the emission is classically allowed.
		tunneling = 1.0
	}

	halfLife := math.Ln2 / (attemptFrequencyHz * tunneling)

	return types.AlphaDecay{
		Nuclide:              n,
		AlphaEnergyMeV:       eAlphaMeV,
		CoulombBarrierMeV:    vCoulombMeV,
		GamowFactor:          gamow,
		TunnelingProbability: tunneling,
		HalfLifeSeconds:      halfLife,
		HalfLifeYears:        halfLife / SecondsPerYear,
	}
}
