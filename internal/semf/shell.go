// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package semf

import (
	"math"

	"github.com/pdiddy/nuclide-engine/pkg/types"
)

// Magic numbers of the nuclear shell model. Neutron shells extend to the
// predicted closure at 184.
var (
	magicProtons  = []int{2, 8, 20, 28, 50, 82, 126}
	magicNeutrons = []int{2, 8, 20, 28, 50, 82, 126, 184}
)

// ShellModel classifies a nuclide against the magic numbers and attaches
// the harmonic-oscillator estimate of the principal quantum number.
func ShellModel(n types.Nuclide) types.ShellModel {
	pMagic := containsInt(magicProtons, n.Z)
	nMagic := containsInt(magicNeutrons, n.N())

	stability := 0.5
	if pMagic || nMagic {
		stability = 1.0
	}

	return types.ShellModel{
		Nuclide:                n,
		ProtonMagic:            pMagic,
		NeutronMagic:           nMagic,
		DoublyMagic:            pMagic && nMagic,
		StabilityFactor:        stability,
		PrincipalQuantumNumber: int(math.Cbrt(float64(n.A) / 4.0)),
	}
}

// Fragmentation estimates the liquid-drop fission fragment split and
// barrier. The 0.4/0.6 mass split and the coefficient choices are crude
// systematics, good to a factor of a few at best.
func Fragmentation(n types.Nuclide) types.Fragmentation {
	a := float64(n.A)
	z := float64(n.Z)

	lightA := a * 0.4
	heavyA := a * 0.6
	deformation := 0.1 * math.Pow(a, 2.0/3.0)
	coulomb := 0.6 * z * z / math.Cbrt(a)

	return types.Fragmentation{
		Nuclide:              n,
		LightFragmentA:       lightA,
		HeavyFragmentA:       heavyA,
		DeformationEnergyMeV: deformation,
		CoulombEnergyMeV:     coulomb,
		FissionBarrierMeV:    deformation + coulomb,
		Asymmetry:            math.Abs(lightA-heavyA) / a,
	}
}

// metastableThresholdS separates "metastable" from "short-lived" isomers.
const metastableThresholdS = 1e-6

// Isomer estimates an excited state's half-life from Weisskopf-style
// energy bands: picoseconds below 0.1 MeV, nanoseconds below 1 MeV,
// microseconds above, with a 0.1 retardation factor for even-A nuclei.
func Isomer(n types.Nuclide, excitationMeV float64) types.Isomer {
	var halfLife float64
	switch {
	case excitationMeV < 0.1:
		halfLife = 1e-12
	case excitationMeV < 1.0:
		halfLife = 1e-9
	default:
		halfLife = 1e-6
	}

	spinFactor := 1.0
	if n.A%2 == 0 {
		spinFactor = 0.1
	}
	halfLife *= spinFactor

	kind := "short-lived"
	if halfLife > metastableThresholdS {
		kind = "metastable"
	}

	return types.Isomer{
		Nuclide:         n,
		ExcitationMeV:   excitationMeV,
		HalfLifeSeconds: halfLife,
		SpinFactor:      spinFactor,
		Kind:            kind,
	}
}

func containsInt(xs []int, v int) bool {
	for _, x := range xs {
		if x == v {
			return true
		}
	}
	return false
}
