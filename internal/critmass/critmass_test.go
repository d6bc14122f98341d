// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package critmass

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/pdiddy/nuclide-engine/internal/xsection"
	"github.com/pdiddy/nuclide-engine/pkg/types"
)

func defaultTable(t *testing.T) *xsection.Table {
	t.Helper()
	table := xsection.Load("")
	if table.LoadErr != "" {
		t.Fatalf("embedded dataset failed to load: %s", table.LoadErr)
	}
	return table
}

func TestCalculateU235Sphere(t *testing.T) {
	table := defaultTable(t)
	u235 := types.Nuclide{Z: 92, A: 235}

	result := Calculate(table, u235, Request{})

	if result.Status != types.StatusOK {
		t.Fatalf("Status = %q, want %q (note: %s)", result.Status, types.StatusOK, result.Note)
	}
	if result.Geometry != types.GeometrySphere {
		t.Errorf("Geometry = %q, want sphere default", result.Geometry)
	}
	if result.DensityKgM3 != 19050 {
		t.Errorf("DensityKgM3 = %g, want dataset value 19050", result.DensityKgM3)
	}

	// The one-group bare-sphere estimate lands in the tens of kilograms,
	// the right neighborhood for highly enriched uranium.
	if result.CriticalMassKg < 10 || result.CriticalMassKg > 60 {
		t.Errorf("CriticalMassKg = %.2f, want in [10, 60]", result.CriticalMassKg)
	}
	if result.CriticalRadiusM < 0.04 || result.CriticalRadiusM > 0.15 {
		t.Errorf("CriticalRadiusM = %.4f, want in [0.04, 0.15]", result.CriticalRadiusM)
	}

	np := result.Neutronics
	if np == nil {
		t.Fatal("Neutronics is nil for an ok result")
	}
	if np.NeutronsPerFission != 2.43 || np.NuEstimated {
		t.Errorf("nu = %g (estimated=%v), want measured 2.43", np.NeutronsPerFission, np.NuEstimated)
	}
	if np.KInfinity < 2.0 || np.KInfinity > 2.2 {
		t.Errorf("KInfinity = %.4f, want in [2.0, 2.2]", np.KInfinity)
	}
	if np.KEffective != 1.0 {
		t.Errorf("KEffective = %g, want pinned to 1.0 at the critical point", np.KEffective)
	}
	if np.Factors.FastFission != 1.0 || np.Factors.ResonanceEscape != 1.0 || np.Factors.ThermalUtilization != 1.0 {
		t.Errorf("epsilon/p/f = %g/%g/%g, want all 1.0",
			np.Factors.FastFission, np.Factors.ResonanceEscape, np.Factors.ThermalUtilization)
	}

	e := result.Energy
	if e == nil {
		t.Fatal("Energy is nil for an ok result")
	}
	if e.PerFissionMeV != 200 {
		t.Errorf("PerFissionMeV = %g, want 200", e.PerFissionMeV)
	}
	if e.TotalFissionKtTNT <= 0 {
		t.Errorf("TotalFissionKtTNT = %g, want positive", e.TotalFissionKtTNT)
	}
	if e.RestEnergyJ <= e.TotalFissionJ {
		t.Errorf("rest energy %g J not greater than fission energy %g J", e.RestEnergyJ, e.TotalFissionJ)
	}
}

func TestCalculateNonFissile(t *testing.T) {
	table := defaultTable(t)

	// Every dataset record with zero thermal fission must come back
	// StatusNonFissile, with no partial numbers attached.
	checked := 0
	for _, key := range table.Keys() {
		rec, ok := table.FindByName(key)
		if !ok {
			t.Fatalf("FindByName(%q) missed a listed key", key)
		}
		if rec.Sections(xsection.Thermal).FissionB != 0 {
			continue
		}
		checked++

		n := types.Nuclide{Z: rec.Z, A: rec.A}
		result := Calculate(table, n, Request{})
		if result.Status != types.StatusNonFissile {
			t.Errorf("%s: Status = %q, want %q", key, result.Status, types.StatusNonFissile)
		}
		if result.CriticalMassKg != 0 || result.Neutronics != nil {
			t.Errorf("%s: non-fissile result carries numbers", key)
		}
	}
	if checked < 5 {
		t.Fatalf("only %d non-fissile records exercised; dataset shrank?", checked)
	}
}

func TestCalculateMissingData(t *testing.T) {
	table := defaultTable(t)
	cf252 := types.Nuclide{Z: 98, A: 252}

	result := Calculate(table, cf252, Request{})
	if result.Status != types.StatusMissingData {
		t.Fatalf("Status = %q, want %q", result.Status, types.StatusMissingData)
	}
	if result.Note == "" {
		t.Error("missing-data result has no explanatory note")
	}
}

func TestCalculateDensityMonotonic(t *testing.T) {
	table := defaultTable(t)
	u235 := types.Nuclide{Z: 92, A: 235}
	densities := []float64{10000, 15000, 19050, 25000}

	var prevRadius, prevMass float64
	for i, density := range densities {
		result := Calculate(table, u235, Request{DensityKgM3: density})
		if result.Status != types.StatusOK {
			t.Fatalf("density %g: Status = %q", density, result.Status)
		}
		if i > 0 {
			if result.CriticalRadiusM >= prevRadius {
				t.Errorf("radius did not shrink from %g to %g kg/m^3: %g >= %g",
					densities[i-1], density, result.CriticalRadiusM, prevRadius)
			}
			if result.CriticalMassKg >= prevMass {
				t.Errorf("mass did not shrink from %g to %g kg/m^3: %g >= %g",
					densities[i-1], density, result.CriticalMassKg, prevMass)
			}
		}
		prevRadius = result.CriticalRadiusM
		prevMass = result.CriticalMassKg
	}
}

func TestCalculateReflector(t *testing.T) {
	table := defaultTable(t)
	pu239 := types.Nuclide{Z: 94, A: 239}

	bare := Calculate(table, pu239, Request{})
	reflected := Calculate(table, pu239, Request{Reflector: true})

	if bare.Status != types.StatusOK || reflected.Status != types.StatusOK {
		t.Fatalf("unexpected statuses %q / %q", bare.Status, reflected.Status)
	}
	wantRadius := bare.CriticalRadiusM * reflectorFactor
	if math.Abs(reflected.CriticalRadiusM-wantRadius) > 1e-12 {
		t.Errorf("reflected radius = %g, want bare * %g = %g",
			reflected.CriticalRadiusM, reflectorFactor, wantRadius)
	}
	if reflected.CriticalMassKg >= bare.CriticalMassKg {
		t.Errorf("reflected mass %g not below bare mass %g",
			reflected.CriticalMassKg, bare.CriticalMassKg)
	}
}

func TestCalculateGeometries(t *testing.T) {
	table := defaultTable(t)
	u235 := types.Nuclide{Z: 92, A: 235}

	sphere := Calculate(table, u235, Request{Geometry: types.GeometrySphere})
	cylinder := Calculate(table, u235, Request{Geometry: types.GeometryCylinder})
	slab := Calculate(table, u235, Request{Geometry: types.GeometrySlab})

	b2 := sphere.Neutronics.BucklingM2
	if cylinder.Neutronics.BucklingM2 != b2 || slab.Neutronics.BucklingM2 != b2 {
		t.Fatal("buckling should not depend on geometry")
	}

	wantCylRadius := cylinderBesselRoot / math.Sqrt(b2)
	if math.Abs(cylinder.CriticalRadiusM-wantCylRadius) > 1e-12 {
		t.Errorf("cylinder radius = %g, want %g", cylinder.CriticalRadiusM, wantCylRadius)
	}
	wantCylVolume := math.Pi * wantCylRadius * wantCylRadius * 2 * wantCylRadius
	if math.Abs(cylinder.CriticalVolumeM3-wantCylVolume) > 1e-12 {
		t.Errorf("cylinder volume = %g, want height-equals-diameter %g",
			cylinder.CriticalVolumeM3, wantCylVolume)
	}

	if math.Abs(slab.CriticalVolumeM3-2*slab.CriticalRadiusM) > 1e-15 {
		t.Errorf("slab volume = %g, want unit-area thickness %g",
			slab.CriticalVolumeM3, 2*slab.CriticalRadiusM)
	}
}

const weakFissileDataset = `
nuclides:
  X-240:
    name: Testium-240
    atomic_number: 93
    mass_number: 240
    density_kg_m3: 15000
    thermal_neutron:
      total: 115.0
      scattering: 5.0
      absorption: 110.0
      fission: 10.0
      capture: 100.0
    fast_neutron:
      total: 7.0
      scattering: 5.0
      absorption: 2.0
      fission: 1.0
      capture: 1.0
`

func TestCalculateSubcritical(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "weak.yaml")
	if err := os.WriteFile(path, []byte(weakFissileDataset), 0o644); err != nil {
		t.Fatal(err)
	}
	table := xsection.Load(path)
	if table.LoadErr != "" {
		t.Fatalf("loading test dataset: %s", table.LoadErr)
	}

	n := types.Nuclide{Z: 93, A: 240}
	result := Calculate(table, n, Request{})

	if result.Status != types.StatusSubcritical {
		t.Fatalf("Status = %q, want %q", result.Status, types.StatusSubcritical)
	}
	np := result.Neutronics
	if np == nil {
		t.Fatal("Neutronics is nil for a subcritical result")
	}
	if np.KInfinity >= 1.0 {
		t.Fatalf("KInfinity = %g, test material should be subcritical", np.KInfinity)
	}
	if np.KEffective != np.KInfinity {
		t.Errorf("KEffective = %g, want reported as bulk k_infinity %g", np.KEffective, np.KInfinity)
	}
	if !np.NuEstimated {
		t.Error("nu for an unlisted nuclide should be flagged as estimated")
	}
	if result.Note == "" {
		t.Error("subcritical result has no explanatory note")
	}
	if result.CriticalRadiusM <= 0 || math.IsNaN(result.CriticalRadiusM) {
		t.Errorf("CriticalRadiusM = %g, want a positive fallback figure", result.CriticalRadiusM)
	}
}

func TestNeutronsPerFission(t *testing.T) {
	tests := []struct {
		name      string
		nuclide   types.Nuclide
		want      float64
		estimated bool
	}{
		{"U-235 measured", types.Nuclide{Z: 92, A: 235}, 2.43, false},
		{"Pu-239 measured", types.Nuclide{Z: 94, A: 239}, 2.87, false},
		{"heavy fallback", types.Nuclide{Z: 92, A: 233}, 2.0 + 0.003*33, true},
		{"light fallback", types.Nuclide{Z: 26, A: 56}, 2.0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, estimated := neutronsPerFission(tt.nuclide)
			if math.Abs(got-tt.want) > 1e-12 || estimated != tt.estimated {
				t.Errorf("neutronsPerFission = (%g, %v), want (%g, %v)",
					got, estimated, tt.want, tt.estimated)
			}
		})
	}
}
