// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package xsection

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadEmbeddedDataset(t *testing.T) {
	table := Load("")
	if table.LoadErr != "" {
		t.Fatalf("LoadErr = %q, want clean load of the embedded dataset", table.LoadErr)
	}
	if table.Len() < 10 {
		t.Fatalf("Len = %d, want the full embedded dataset", table.Len())
	}

	rec, ok := table.Get(92, 235)
	if !ok {
		t.Fatal("Get(92, 235) missed")
	}
	if rec.Name != "Uranium-235" {
		t.Errorf("Name = %q, want Uranium-235", rec.Name)
	}

	thermal := rec.Sections(Thermal)
	if thermal.FissionB != 584.4 {
		t.Errorf("thermal fission = %g b, want 584.4", thermal.FissionB)
	}
	if thermal.AbsorptionB != 683.2 {
		t.Errorf("thermal absorption = %g b, want 683.2", thermal.AbsorptionB)
	}
	fast := rec.Sections(Fast)
	if fast.FissionB != 1.24 {
		t.Errorf("fast fission = %g b, want 1.24", fast.FissionB)
	}
	if rec.DensityKgM3 != 19050 {
		t.Errorf("density = %g, want 19050", rec.DensityKgM3)
	}
	if rec.Resonance == nil || rec.Resonance.FissionB != 275.0 {
		t.Errorf("resonance integral missing or wrong: %+v", rec.Resonance)
	}
}

func TestGetMiss(t *testing.T) {
	table := Load("")
	if _, ok := table.Get(98, 252); ok {
		t.Error("Get(98, 252) hit; Cf-252 should not be in the dataset")
	}
	if _, ok := table.Get(0, 0); ok {
		t.Error("Get(0, 0) hit")
	}
}

func TestFindByName(t *testing.T) {
	table := Load("")

	tests := []struct {
		query string
		wantZ int
		wantA int
		hit   bool
	}{
		{"U-235", 92, 235, true},
		{"u235", 92, 235, true},
		{"U 235", 92, 235, true},
		{"uranium-235", 92, 235, true},
		{"PLUTONIUM-239", 94, 239, true},
		{"pu-240", 94, 240, true},
		{"Xe-135", 54, 135, true},
		{"d-113", 48, 113, true},
		{"e-135", 54, 135, true},
		{"nonexistium-1", 0, 0, false},
		{"", 0, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			rec, ok := table.FindByName(tt.query)
			if ok != tt.hit {
				t.Fatalf("FindByName(%q) hit = %v, want %v", tt.query, ok, tt.hit)
			}
			if ok && (rec.Z != tt.wantZ || rec.A != tt.wantA) {
				t.Errorf("FindByName(%q) = Z=%d A=%d, want Z=%d A=%d",
					tt.query, rec.Z, rec.A, tt.wantZ, tt.wantA)
			}
		})
	}
}

func TestLoadCorruptDataset(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(path, []byte("nuclides: [not, a, map"), 0o644); err != nil {
		t.Fatal(err)
	}

	table := Load(path)
	if table.LoadErr == "" {
		t.Fatal("LoadErr empty for a corrupt dataset")
	}
	if table.Len() != 0 {
		t.Errorf("Len = %d, want empty table on corrupt input", table.Len())
	}
	if _, ok := table.Get(92, 235); ok {
		t.Error("Get hit on a corrupt-load table")
	}
	if _, ok := table.FindByName("U-235"); ok {
		t.Error("FindByName hit on a corrupt-load table")
	}
}

func TestLoadMissingFile(t *testing.T) {
	table := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if table.LoadErr == "" {
		t.Fatal("LoadErr empty for a missing file")
	}
	if table.Len() != 0 {
		t.Errorf("Len = %d, want 0", table.Len())
	}
}

func TestParseRegime(t *testing.T) {
	if r, err := ParseRegime("thermal"); err != nil || r != Thermal {
		t.Errorf("ParseRegime(thermal) = %q, %v", r, err)
	}
	if r, err := ParseRegime("fast"); err != nil || r != Fast {
		t.Errorf("ParseRegime(fast) = %q, %v", r, err)
	}
	if _, err := ParseRegime("epithermal"); err == nil {
		t.Error("ParseRegime(epithermal) accepted an unknown regime")
	}
}

func TestKeysSortedAndCopied(t *testing.T) {
	table := Load("")
	keys := table.Keys()
	for i := 1; i < len(keys); i++ {
		if keys[i-1] >= keys[i] {
			t.Fatalf("keys not sorted: %q before %q", keys[i-1], keys[i])
		}
	}
	keys[0] = "mutated"
	if table.Keys()[0] == "mutated" {
		t.Error("Keys returned the internal slice, not a copy")
	}
}
