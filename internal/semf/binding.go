// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package semf

import (
	"math"

	"github.com/pdiddy/nuclide-engine/pkg/types"
)

// BindingEnergy evaluates the semi-empirical mass formula
//
//	B = a_v*A - a_s*A^(2/3) - a_c*Z(Z-1)/A^(1/3) - a_a*(A-2Z)^2/A + delta
//
// with delta = +a_p/sqrt(A) for even-even nuclei, -a_p/sqrt(A) for
// odd-odd, and 0 for odd A. The caller guarantees 0 < Z <= A.
func BindingEnergy(n types.Nuclide) types.BindingEnergy {
	a := float64(n.A)
	z := float64(n.Z)

	terms := types.BindingEnergyTerms{
		Volume:    CoeffVolume * a,
		Surface:   -CoeffSurface * math.Pow(a, 2.0/3.0),
		Coulomb:   -CoeffCoulomb * z * (z - 1) / math.Cbrt(a),
		Asymmetry: -CoeffAsymmetry * (a - 2*z) * (a - 2*z) / a,
		Pairing:   pairingTerm(n),
	}

	total := terms.Volume + terms.Surface + terms.Coulomb + terms.Asymmetry + terms.Pairing
	return types.BindingEnergy{
		Nuclide:       n,
		TotalMeV:      total,
		PerNucleonMeV: total / a,
		MassDefectU:   total / UToMeV,
		Terms:         terms,
	}
}

func pairingTerm(n types.Nuclide) float64 {
	delta := CoeffPairing / math.Sqrt(float64(n.A))
	switch {
	case n.Z%2 == 0 && n.N()%2 == 0:
		return delta
	case n.Z%2 == 1 && n.N()%2 == 1:
		return -delta
	default:
		return 0
	}
}

// MassDefectU returns the mass defect in atomic mass units.
func MassDefectU(n types.Nuclide) float64 {
	return BindingEnergy(n).TotalMeV / UToMeV
}

// FissionEnergyMeV estimates the energy released by symmetric fission as
// 2*B(Z/2, A/2) - B(Z, A). This is a rough placeholder: real fission Q
// values need fragment-specific mass tables, which this engine does not
// carry. Treat the output as an order-of-magnitude figure.
func FissionEnergyMeV(n types.Nuclide) float64 {
	half := types.Nuclide{Z: n.Z / 2, A: n.A / 2}
	if half.Z <= 0 || half.A < half.Z {
		return 0
	}
	return 2*BindingEnergy(half).TotalMeV - BindingEnergy(n).TotalMeV
}

// Properties aggregates the derived per-nuclide quantities.
func Properties(n types.Nuclide) types.NuclearProperties {
	return types.NuclearProperties{
		Nuclide:       n,
		Binding:       BindingEnergy(n),
		FissionQMeV:   FissionEnergyMeV(n),
		Shell:         ShellModel(n),
		Fragmentation: Fragmentation(n),
	}
}
