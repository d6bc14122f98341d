// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines the shared data structures exchanged between the
// calculation packages and the CLI surface.
package types

import "fmt"

// Nuclide identifies an isotope by proton and mass number. It is an
// immutable value type; derived quantities are computed on demand.
type Nuclide struct {
	// Z is the atomic number (protons).
	Z int `json:"atomic_number" yaml:"atomic_number"`

	// A is the mass number (protons + neutrons).
	A int `json:"mass_number" yaml:"mass_number"`
}

// N returns the neutron count A - Z.
func (n Nuclide) N() int { return n.A - n.Z }

// Validate checks the 0 < Z <= A invariant. The calculation packages
// assume validated input; callers reject bad nuclides here, at the
// boundary, before any formula runs.
func (n Nuclide) Validate() error {
	if n.Z <= 0 {
		return fmt.Errorf("atomic number must be positive, got %d", n.Z)
	}
	if n.A < n.Z {
		return fmt.Errorf("mass number %d smaller than atomic number %d", n.A, n.Z)
	}
	return nil
}

// Symbol returns the element symbol for Z, or "Z<n>" for elements
// beyond the table.
func (n Nuclide) Symbol() string {
	if s, ok := elementSymbols[n.Z]; ok {
		return s
	}
	return fmt.Sprintf("Z%d", n.Z)
}

// String renders the conventional "U-235" form.
func (n Nuclide) String() string {
	return fmt.Sprintf("%s-%d", n.Symbol(), n.A)
}

// elementSymbols maps atomic number to element symbol for Z = 1..118.
var elementSymbols = map[int]string{
	1: "H", 2: "He", 3: "Li", 4: "Be", 5: "B", 6: "C", 7: "N", 8: "O",
	9: "F", 10: "Ne", 11: "Na", 12: "Mg", 13: "Al", 14: "Si", 15: "P",
	16: "S", 17: "Cl", 18: "Ar", 19: "K", 20: "Ca", 21: "Sc", 22: "Ti",
	23: "V", 24: "Cr", 25: "Mn", 26: "Fe", 27: "Co", 28: "Ni", 29: "Cu",
	30: "Zn", 31: "Ga", 32: "Ge", 33: "As", 34: "Se", 35: "Br", 36: "Kr",
	37: "Rb", 38: "Sr", 39: "Y", 40: "Zr", 41: "Nb", 42: "Mo", 43: "Tc",
	44: "Ru", 45: "Rh", 46: "Pd", 47: "Ag", 48: "Cd", 49: "In", 50: "Sn",
	51: "Sb", 52: "Te", 53: "I", 54: "Xe", 55: "Cs", 56: "Ba", 57: "La",
	58: "Ce", 59: "Pr", 60: "Nd", 61: "Pm", 62: "Sm", 63: "Eu", 64: "Gd",
	65: "Tb", 66: "Dy", 67: "Ho", 68: "Er", 69: "Tm", 70: "Yb", 71: "Lu",
	72: "Hf", 73: "Ta", 74: "W", 75: "Re", 76: "Os", 77: "Ir", 78: "Pt",
	79: "Au", 80: "Hg", 81: "Tl", 82: "Pb", 83: "Bi", 84: "Po", 85: "At",
	86: "Rn", 87: "Fr", 88: "Ra", 89: "Ac", 90: "Th", 91: "Pa", 92: "U",
	93: "Np", 94: "Pu", 95: "Am", 96: "Cm", 97: "Bk", 98: "Cf", 99: "Es",
	100: "Fm", 101: "Md", 102: "No", 103: "Lr", 104: "Rf", 105: "Db",
	106: "Sg", 107: "Bh", 108: "Hs", 109: "Mt", 110: "Ds", 111: "Rg",
	112: "Cn", 113: "Nh", 114: "Fl", 115: "Mc", 116: "Lv", 117: "Ts", 118: "Og",
}

// Status tags the outcome of a calculation. Expected negative outcomes
// (missing reference data, non-fissile material, a medium that cannot go
// critical) are statuses, never Go errors: the caller always gets a
// structured result back.
type Status string

const (
	// StatusOK marks a complete, usable result.
	StatusOK Status = "ok"

	// StatusNonFissile marks a critical-mass request for a nuclide with
	// zero thermal fission cross section. No critical size exists.
	StatusNonFissile Status = "non-fissile"

	// StatusSubcritical marks a material whose k_infinity never exceeds 1;
	// the reported geometry figures come from the minimal-buckling fallback.
	StatusSubcritical Status = "subcritical"

	// StatusMissingData marks a nuclide absent from the cross-section table.
	StatusMissingData Status = "missing-data"
)

// Geometry selects the critical-assembly shape.
type Geometry string

const (
	GeometrySphere   Geometry = "sphere"
	GeometryCylinder Geometry = "cylinder"
	GeometrySlab     Geometry = "slab"
)

// ParseGeometry validates a geometry name from the CLI or a config file.
func ParseGeometry(s string) (Geometry, error) {
	switch Geometry(s) {
	case GeometrySphere, GeometryCylinder, GeometrySlab:
		return Geometry(s), nil
	}
	return "", fmt.Errorf("unknown geometry %q: want sphere, cylinder, or slab", s)
}
