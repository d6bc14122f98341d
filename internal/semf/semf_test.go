// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package semf

import (
	"math"
	"testing"

	"github.com/pdiddy/nuclide-engine/pkg/types"
)

// closeTo reports whether got is within tol of want.
func closeTo(got, want, tol float64) bool {
	return math.Abs(got-want) <= tol
}

func TestBindingEnergy(t *testing.T) {
	tests := []struct {
		name    string
		nuclide types.Nuclide
		wantMeV float64
		tol     float64
		perLow  float64 // acceptable per-nucleon band
		perHigh float64
	}{
		// Fe-56 sits near the peak of the binding curve. The liquid-drop
		// value with the Z(Z-1) Coulomb term is 490.6 MeV.
		{"Fe-56", types.Nuclide{Z: 26, A: 56}, 490.6, 0.5, 8.5, 9.0},
		{"U-235", types.Nuclide{Z: 92, A: 235}, 1790.7, 2.0, 7.2, 7.8},
		{"U-238", types.Nuclide{Z: 92, A: 238}, 1809.6, 2.0, 7.2, 7.8},
		{"Pb-208", types.Nuclide{Z: 82, A: 208}, 1628.5, 2.0, 7.5, 8.1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := BindingEnergy(tt.nuclide)
			if !closeTo(b.TotalMeV, tt.wantMeV, tt.tol) {
				t.Errorf("TotalMeV = %.2f, want %.2f +/- %.2f", b.TotalMeV, tt.wantMeV, tt.tol)
			}
			if b.PerNucleonMeV < tt.perLow || b.PerNucleonMeV > tt.perHigh {
				t.Errorf("PerNucleonMeV = %.4f, want in [%.1f, %.1f]", b.PerNucleonMeV, tt.perLow, tt.perHigh)
			}
			sum := b.Terms.Volume + b.Terms.Surface + b.Terms.Coulomb + b.Terms.Asymmetry + b.Terms.Pairing
			if !closeTo(sum, b.TotalMeV, 1e-9) {
				t.Errorf("terms sum to %.9f, total is %.9f", sum, b.TotalMeV)
			}
			if !closeTo(b.MassDefectU, b.TotalMeV/UToMeV, 1e-12) {
				t.Errorf("MassDefectU = %g, want %g", b.MassDefectU, b.TotalMeV/UToMeV)
			}
		})
	}
}

func TestPairingTerm(t *testing.T) {
	tests := []struct {
		name    string
		nuclide types.Nuclide
		sign    int
	}{
		{"even-even He-4", types.Nuclide{Z: 2, A: 4}, +1},
		{"even-even U-238", types.Nuclide{Z: 92, A: 238}, +1},
		{"odd-odd N-14", types.Nuclide{Z: 7, A: 14}, -1},
		{"odd-A U-235", types.Nuclide{Z: 92, A: 235}, 0},
		{"odd-A Fe-57", types.Nuclide{Z: 26, A: 57}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := BindingEnergy(tt.nuclide).Terms.Pairing
			switch {
			case tt.sign > 0 && got <= 0:
				t.Errorf("Pairing = %g, want positive", got)
			case tt.sign < 0 && got >= 0:
				t.Errorf("Pairing = %g, want negative", got)
			case tt.sign == 0 && got != 0:
				t.Errorf("Pairing = %g, want zero", got)
			}
			// Magnitude is a_p / sqrt(A) when nonzero.
			if tt.sign != 0 {
				want := CoeffPairing / math.Sqrt(float64(tt.nuclide.A))
				if !closeTo(math.Abs(got), want, 1e-12) {
					t.Errorf("|Pairing| = %g, want %g", math.Abs(got), want)
				}
			}
		})
	}
}

func TestAlphaDecay(t *testing.T) {
	u238 := types.Nuclide{Z: 92, A: 238}

	t.Run("U-238 at 4.27 MeV", func(t *testing.T) {
		d := AlphaDecay(u238, 4.27)

		if d.CoulombBarrierMeV < 25 || d.CoulombBarrierMeV > 40 {
			t.Errorf("CoulombBarrierMeV = %.2f, want in [25, 40]", d.CoulombBarrierMeV)
		}
		if d.TunnelingProbability <= 0 || d.TunnelingProbability >= 1 {
			t.Errorf("TunnelingProbability = %g, want in (0, 1)", d.TunnelingProbability)
		}
		// The bare Gamow model can only overshoot the measured
		// 4.47e9 yr half-life; it must never undershoot it.
		if d.HalfLifeYears < 4.47e9 {
			t.Errorf("HalfLifeYears = %g, want >= 4.47e9", d.HalfLifeYears)
		}
		if !closeTo(d.HalfLifeYears, d.HalfLifeSeconds/SecondsPerYear, d.HalfLifeYears*1e-12) {
			t.Errorf("HalfLifeYears inconsistent with HalfLifeSeconds")
		}
	})

	t.Run("tunneling grows with energy", func(t *testing.T) {
		low := AlphaDecay(u238, 4.0)
		high := AlphaDecay(u238, 6.0)
		if high.TunnelingProbability <= low.TunnelingProbability {
			t.Errorf("tunneling at 6 MeV (%g) not greater than at 4 MeV (%g)",
				high.TunnelingProbability, low.TunnelingProbability)
		}
		if high.HalfLifeSeconds >= low.HalfLifeSeconds {
			t.Errorf("half-life at 6 MeV (%g s) not shorter than at 4 MeV (%g s)",
				high.HalfLifeSeconds, low.HalfLifeSeconds)
		}
	})

	t.Run("above the barrier emission is allowed", func(t *testing.T) {
		d := AlphaDecay(u238, 50.0)
		if d.TunnelingProbability != 1.0 {
			t.Errorf("TunnelingProbability = %g above the barrier, want 1.0", d.TunnelingProbability)
		}
	})
}

func TestShellModel(t *testing.T) {
	tests := []struct {
		name        string
		nuclide     types.Nuclide
		protonMagic bool
		neutronMagc bool
		doubly      bool
	}{
		{"Pb-208 doubly magic", types.Nuclide{Z: 82, A: 208}, true, true, true},
		{"Ca-40 doubly magic", types.Nuclide{Z: 20, A: 40}, true, true, true},
		{"Sn-120 proton magic", types.Nuclide{Z: 50, A: 120}, true, false, false},
		{"U-238 no closed shell", types.Nuclide{Z: 92, A: 238}, false, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := ShellModel(tt.nuclide)
			if s.ProtonMagic != tt.protonMagic {
				t.Errorf("ProtonMagic = %v, want %v", s.ProtonMagic, tt.protonMagic)
			}
			if s.NeutronMagic != tt.neutronMagc {
				t.Errorf("NeutronMagic = %v, want %v", s.NeutronMagic, tt.neutronMagc)
			}
			if s.DoublyMagic != tt.doubly {
				t.Errorf("DoublyMagic = %v, want %v", s.DoublyMagic, tt.doubly)
			}
			wantStability := 0.5
			if tt.protonMagic || tt.neutronMagc {
				wantStability = 1.0
			}
			if s.StabilityFactor != wantStability {
				t.Errorf("StabilityFactor = %g, want %g", s.StabilityFactor, wantStability)
			}
		})
	}
}

func TestFragmentation(t *testing.T) {
	f := Fragmentation(types.Nuclide{Z: 92, A: 236})

	if !closeTo(f.LightFragmentA, 94.4, 1e-9) {
		t.Errorf("LightFragmentA = %g, want 94.4", f.LightFragmentA)
	}
	if !closeTo(f.HeavyFragmentA, 141.6, 1e-9) {
		t.Errorf("HeavyFragmentA = %g, want 141.6", f.HeavyFragmentA)
	}
	if !closeTo(f.LightFragmentA+f.HeavyFragmentA, 236, 1e-9) {
		t.Errorf("fragments sum to %g, want 236", f.LightFragmentA+f.HeavyFragmentA)
	}
	if !closeTo(f.Asymmetry, 0.2, 1e-12) {
		t.Errorf("Asymmetry = %g, want 0.2", f.Asymmetry)
	}
	if !closeTo(f.FissionBarrierMeV, f.DeformationEnergyMeV+f.CoulombEnergyMeV, 1e-9) {
		t.Errorf("barrier %g is not deformation %g + coulomb %g",
			f.FissionBarrierMeV, f.DeformationEnergyMeV, f.CoulombEnergyMeV)
	}
}

func TestIsomer(t *testing.T) {
	tests := []struct {
		name     string
		nuclide  types.Nuclide
		energy   float64
		wantHalf float64
		wantKind string
	}{
		{"low-lying odd-A", types.Nuclide{Z: 73, A: 181}, 0.006, 1e-12, "short-lived"},
		{"mid-band odd-A", types.Nuclide{Z: 49, A: 115}, 0.336, 1e-9, "short-lived"},
		{"high even-A", types.Nuclide{Z: 72, A: 178}, 2.4, 1e-7, "short-lived"},
		{"high odd-A", types.Nuclide{Z: 73, A: 179}, 1.1, 1e-6, "short-lived"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			iso := Isomer(tt.nuclide, tt.energy)
			if !closeTo(iso.HalfLifeSeconds, tt.wantHalf, tt.wantHalf*1e-9) {
				t.Errorf("HalfLifeSeconds = %g, want %g", iso.HalfLifeSeconds, tt.wantHalf)
			}
			if iso.Kind != tt.wantKind {
				t.Errorf("Kind = %q, want %q", iso.Kind, tt.wantKind)
			}
		})
	}
}

func TestStellarProcesses(t *testing.T) {
	cno := CNOCycle()
	if len(cno.Reactions) != 6 {
		t.Fatalf("CNO cycle has %d reactions, want 6", len(cno.Reactions))
	}
	// The CNO cycle releases about 26.7 MeV per helium nucleus; this
	// table omits the annihilation energy of the positrons.
	if !closeTo(cno.TotalQMeV, 26.73, 0.1) {
		t.Errorf("CNO TotalQMeV = %.3f, want about 26.73", cno.TotalQMeV)
	}

	ta := TripleAlpha()
	if len(ta.Reactions) != 2 {
		t.Fatalf("triple-alpha has %d reactions, want 2", len(ta.Reactions))
	}
	if ta.Reactions[0].QMeV >= 0 {
		t.Errorf("first triple-alpha step Q = %g, want endothermic", ta.Reactions[0].QMeV)
	}
	if !closeTo(ta.TotalQMeV, 7.275, 0.01) {
		t.Errorf("triple-alpha TotalQMeV = %.3f, want about 7.275", ta.TotalQMeV)
	}
}
