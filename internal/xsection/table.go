// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package xsection loads the static neutron cross-section dataset and
// resolves nuclides to their cross-section records. The table is built
// once at startup and read-only afterwards, so lookups are safe from any
// number of goroutines without synchronization.
package xsection

import (
	_ "embed"
	"fmt"
	"os"
	"sort"
	"strings"

	"go.yaml.in/yaml/v3"
)

//go:embed data/cross_sections.yaml
var embeddedDataset []byte

// Regime names a neutron energy regime in the dataset.
type Regime string

const (
	Thermal Regime = "thermal_neutron"
	Fast    Regime = "fast_neutron"
)

// ParseRegime validates a regime name from the CLI or a config file.
// The short forms "thermal" and "fast" are accepted alongside the
// dataset key names.
func ParseRegime(s string) (Regime, error) {
	switch s {
	case "thermal", string(Thermal):
		return Thermal, nil
	case "fast", string(Fast):
		return Fast, nil
	}
	return "", fmt.Errorf("unknown energy regime %q: want thermal or fast", s)
}

// CrossSections holds the per-regime cross sections of a nuclide, in barns.
// All values are non-negative; a zero fission entry means the nuclide does
// not fission in that regime.
type CrossSections struct {
	TotalB      float64 `yaml:"total" json:"total_barn"`
	ScatteringB float64 `yaml:"scattering" json:"scattering_barn"`
	AbsorptionB float64 `yaml:"absorption" json:"absorption_barn"`
	FissionB    float64 `yaml:"fission" json:"fission_barn"`
	CaptureB    float64 `yaml:"capture" json:"capture_barn"`
}

// ResonanceIntegral holds the optional epithermal resonance integrals.
type ResonanceIntegral struct {
	FissionB float64 `yaml:"fission" json:"fission_barn"`
	CaptureB float64 `yaml:"capture" json:"capture_barn"`
}

// Record is the full dataset entry for one nuclide.
type Record struct {
	Name string `yaml:"name" json:"name"`
	Z    int    `yaml:"atomic_number" json:"atomic_number"`
	A    int    `yaml:"mass_number" json:"mass_number"`

	// DensityKgM3 is the reference material density, used as the default
	// when a caller does not supply one. Zero means no default is known.
	DensityKgM3 float64 `yaml:"density_kg_m3" json:"density_kg_m3,omitempty"`

	Thermal CrossSections `yaml:"thermal_neutron" json:"thermal_neutron"`
	Fast    CrossSections `yaml:"fast_neutron" json:"fast_neutron"`

	Resonance *ResonanceIntegral `yaml:"resonance_integral" json:"resonance_integral,omitempty"`
}

// Sections returns the cross sections for the requested regime.
func (r *Record) Sections(regime Regime) CrossSections {
	if regime == Fast {
		return r.Fast
	}
	return r.Thermal
}

// dataset is the on-disk YAML shape.
type dataset struct {
	Description string             `yaml:"description"`
	Nuclides    map[string]*Record `yaml:"nuclides"`
}

// Table resolves (Z, A) and name lookups against the loaded dataset.
type Table struct {
	records map[string]*Record
	byZA    map[[2]int]string
	keys    []string

	// LoadErr describes a failed or partial dataset load. A table with a
	// non-empty LoadErr is empty and every lookup misses; construction
	// never fails hard, per the "absence of a key means absence of data"
	// contract.
	LoadErr string
}

// Load builds the table from the YAML dataset at path, or from the
// embedded default dataset when path is empty.
func Load(path string) *Table {
	data := embeddedDataset
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return &Table{LoadErr: fmt.Sprintf("reading cross-section dataset: %v", err)}
		}
		data = b
	}

	var ds dataset
	if err := yaml.Unmarshal(data, &ds); err != nil {
		return &Table{LoadErr: fmt.Sprintf("parsing cross-section dataset: %v", err)}
	}

	t := &Table{
		records: make(map[string]*Record, len(ds.Nuclides)),
		byZA:    make(map[[2]int]string, len(ds.Nuclides)),
	}
	for key, rec := range ds.Nuclides {
		if rec == nil || rec.Z <= 0 || rec.A < rec.Z {
			continue
		}
		t.records[key] = rec
		t.byZA[[2]int{rec.Z, rec.A}] = key
		t.keys = append(t.keys, key)
	}
	sort.Strings(t.keys)
	return t
}

// Get resolves a nuclide by proton and mass number. A miss is a normal
// outcome, not an error: the dataset covers a small set of nuclides.
func (t *Table) Get(z, a int) (*Record, bool) {
	key, ok := t.byZA[[2]int{z, a}]
	if !ok {
		return nil, false
	}
	return t.records[key], true
}

// FindByName resolves a nuclide from a human-entered name such as
// "U-235", "u235", or "Uranium-235". Matching strips hyphens and spaces
// and is case-insensitive; an exact key match wins, then substrings of
// the key and the long name. Ties go to the first match in sorted key
// order, which is deterministic but otherwise not contractual.
func (t *Table) FindByName(name string) (*Record, bool) {
	want := normalizeName(name)
	if want == "" {
		return nil, false
	}
	// Exact first, so "U-235" cannot be claimed by "Pu-235".
	for _, key := range t.keys {
		if normalizeName(key) == want {
			return t.records[key], true
		}
	}
	for _, key := range t.keys {
		rec := t.records[key]
		keyNorm := normalizeName(key)
		recNorm := normalizeName(rec.Name)
		if strings.Contains(keyNorm, want) || strings.Contains(want, keyNorm) {
			return rec, true
		}
		if recNorm != "" && (strings.Contains(recNorm, want) || strings.Contains(want, recNorm)) {
			return rec, true
		}
	}
	return nil, false
}

// Keys returns the nuclide identifiers in the table, sorted. Used for
// diagnostics and enumeration only.
func (t *Table) Keys() []string {
	out := make([]string, len(t.keys))
	copy(out, t.keys)
	return out
}

// Len reports the number of loaded records.
func (t *Table) Len() int { return len(t.records) }

func normalizeName(s string) string {
	s = strings.ReplaceAll(s, "-", "")
	s = strings.ReplaceAll(s, " ", "")
	return strings.ToUpper(s)
}
