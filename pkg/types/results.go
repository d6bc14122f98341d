// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// BindingEnergyTerms is the per-term breakdown of the semi-empirical
// mass formula, each in MeV with the sign it contributes to the total.
type BindingEnergyTerms struct {
	Volume    float64 `json:"volume" yaml:"volume"`
	Surface   float64 `json:"surface" yaml:"surface"`
	Coulomb   float64 `json:"coulomb" yaml:"coulomb"`
	Asymmetry float64 `json:"asymmetry" yaml:"asymmetry"`
	Pairing   float64 `json:"pairing" yaml:"pairing"`
}

// BindingEnergy is the liquid-drop binding energy of a nuclide.
type BindingEnergy struct {
	Nuclide Nuclide `json:"nuclide" yaml:"nuclide"`

	// TotalMeV is the total binding energy in MeV.
	TotalMeV float64 `json:"binding_energy_mev" yaml:"binding_energy_mev"`

	// PerNucleonMeV is TotalMeV / A.
	PerNucleonMeV float64 `json:"binding_energy_per_nucleon_mev" yaml:"binding_energy_per_nucleon_mev"`

	// MassDefectU is the equivalent mass defect in atomic mass units.
	MassDefectU float64 `json:"mass_defect_u" yaml:"mass_defect_u"`

	Terms BindingEnergyTerms `json:"terms" yaml:"terms"`
}

// FourFactors holds the factors of k_infinity = eta * epsilon * p * f.
// In the pure-fissile idealization epsilon, p, and f are pinned to 1.0.
type FourFactors struct {
	Eta                float64 `json:"eta" yaml:"eta"`
	FastFission        float64 `json:"epsilon" yaml:"epsilon"`
	ResonanceEscape    float64 `json:"p" yaml:"p"`
	ThermalUtilization float64 `json:"f" yaml:"f"`
}

// NeutronPhysics collects the diffusion-theory intermediates of a
// critical-mass calculation.
type NeutronPhysics struct {
	// NeutronsPerFission is nu, the average neutron yield per fission.
	NeutronsPerFission float64 `json:"neutrons_per_fission" yaml:"neutrons_per_fission"`

	// NuEstimated is true when nu came from the linear fallback rather
	// than the table of measured yields. Such results are low-confidence.
	NuEstimated bool `json:"nu_estimated" yaml:"nu_estimated"`

	FissionBarns    float64 `json:"fission_cross_section_barn" yaml:"fission_cross_section_barn"`
	AbsorptionBarns float64 `json:"absorption_cross_section_barn" yaml:"absorption_cross_section_barn"`
	ScatteringBarns float64 `json:"scattering_cross_section_barn" yaml:"scattering_cross_section_barn"`

	Factors    FourFactors `json:"four_factors" yaml:"four_factors"`
	KInfinity  float64     `json:"k_infinity" yaml:"k_infinity"`
	KEffective float64     `json:"k_effective" yaml:"k_effective"`

	MigrationAreaM2  float64 `json:"migration_area_m2" yaml:"migration_area_m2"`
	DiffusionLengthM float64 `json:"diffusion_length_m" yaml:"diffusion_length_m"`
	BucklingM2       float64 `json:"critical_buckling_m2" yaml:"critical_buckling_m2"`
}

// EnergyBookkeeping holds the illustrative order-of-magnitude energy
// figures attached to a critical-mass result. These follow from the
// textbook approximations, not from engineering data.
type EnergyBookkeeping struct {
	BindingPerAtomMeV  float64 `json:"binding_energy_per_atom_mev" yaml:"binding_energy_per_atom_mev"`
	TotalBindingMeV    float64 `json:"total_binding_energy_mev" yaml:"total_binding_energy_mev"`
	TotalBindingJ      float64 `json:"total_binding_energy_j" yaml:"total_binding_energy_j"`
	PerFissionMeV      float64 `json:"energy_per_fission_mev" yaml:"energy_per_fission_mev"`
	TotalFissionMeV    float64 `json:"total_fission_energy_mev" yaml:"total_fission_energy_mev"`
	TotalFissionJ      float64 `json:"total_fission_energy_j" yaml:"total_fission_energy_j"`
	TotalFissionKtTNT  float64 `json:"total_fission_energy_kt_tnt" yaml:"total_fission_energy_kt_tnt"`
	RestEnergyJ        float64 `json:"rest_energy_j" yaml:"rest_energy_j"`
	RestEnergyMeV      float64 `json:"rest_energy_mev" yaml:"rest_energy_mev"`
	MassDefectPerAtomU float64 `json:"mass_defect_per_atom_u" yaml:"mass_defect_per_atom_u"`
}

// CriticalMass is the outcome of a critical-mass/diffusion calculation.
// Status distinguishes the usable result from the defined negative
// outcomes; the numeric fields are only meaningful for StatusOK and
// StatusSubcritical.
type CriticalMass struct {
	Status Status `json:"status" yaml:"status"`

	// Note explains a non-ok status in one line.
	Note string `json:"note,omitempty" yaml:"note,omitempty"`

	Nuclide     Nuclide  `json:"nuclide" yaml:"nuclide"`
	Name        string   `json:"name,omitempty" yaml:"name,omitempty"`
	Geometry    Geometry `json:"geometry,omitempty" yaml:"geometry,omitempty"`
	Reflector   bool     `json:"reflector" yaml:"reflector"`
	DensityKgM3 float64  `json:"density_kg_m3,omitempty" yaml:"density_kg_m3,omitempty"`

	CriticalMassKg   float64 `json:"critical_mass_kg,omitempty" yaml:"critical_mass_kg,omitempty"`
	CriticalRadiusM  float64 `json:"critical_radius_m,omitempty" yaml:"critical_radius_m,omitempty"`
	CriticalVolumeM3 float64 `json:"critical_volume_m3,omitempty" yaml:"critical_volume_m3,omitempty"`

	Neutronics *NeutronPhysics    `json:"neutron_physics,omitempty" yaml:"neutron_physics,omitempty"`
	Energy     *EnergyBookkeeping `json:"energy_calculations,omitempty" yaml:"energy_calculations,omitempty"`
}

// AlphaDecay is the Gamow-model tunneling estimate for alpha emission.
type AlphaDecay struct {
	Nuclide Nuclide `json:"nuclide" yaml:"nuclide"`

	AlphaEnergyMeV    float64 `json:"alpha_energy_mev" yaml:"alpha_energy_mev"`
	CoulombBarrierMeV float64 `json:"coulomb_barrier_mev" yaml:"coulomb_barrier_mev"`
	GamowFactor       float64 `json:"gamow_factor" yaml:"gamow_factor"`

	// TunnelingProbability is the Gamow factor below the barrier and 1.0
	// in the classically allowed region.
	TunnelingProbability float64 `json:"tunneling_probability" yaml:"tunneling_probability"`

	HalfLifeSeconds float64 `json:"half_life_seconds" yaml:"half_life_seconds"`
	HalfLifeYears   float64 `json:"half_life_years" yaml:"half_life_years"`
}

// ShellModel classifies a nuclide against the magic numbers.
type ShellModel struct {
	Nuclide Nuclide `json:"nuclide" yaml:"nuclide"`

	ProtonMagic  bool `json:"proton_magic" yaml:"proton_magic"`
	NeutronMagic bool `json:"neutron_magic" yaml:"neutron_magic"`
	DoublyMagic  bool `json:"doubly_magic" yaml:"doubly_magic"`

	// StabilityFactor is 1.0 when either shell is closed, else 0.5.
	StabilityFactor float64 `json:"shell_stability_factor" yaml:"shell_stability_factor"`

	// PrincipalQuantumNumber is the harmonic-oscillator estimate (A/4)^(1/3).
	PrincipalQuantumNumber int `json:"principal_quantum_number" yaml:"principal_quantum_number"`
}

// Fragmentation is the liquid-drop fission-fragment analysis.
type Fragmentation struct {
	Nuclide Nuclide `json:"nuclide" yaml:"nuclide"`

	LightFragmentA float64 `json:"light_fragment_a" yaml:"light_fragment_a"`
	HeavyFragmentA float64 `json:"heavy_fragment_a" yaml:"heavy_fragment_a"`

	DeformationEnergyMeV float64 `json:"deformation_energy_mev" yaml:"deformation_energy_mev"`
	CoulombEnergyMeV     float64 `json:"coulomb_energy_mev" yaml:"coulomb_energy_mev"`
	FissionBarrierMeV    float64 `json:"fission_barrier_mev" yaml:"fission_barrier_mev"`
	Asymmetry            float64 `json:"fragmentation_asymmetry" yaml:"fragmentation_asymmetry"`
}

// Isomer is the Weisskopf-style half-life band estimate for a
// metastable excited state.
type Isomer struct {
	Nuclide Nuclide `json:"nuclide" yaml:"nuclide"`

	ExcitationMeV   float64 `json:"excitation_energy_mev" yaml:"excitation_energy_mev"`
	HalfLifeSeconds float64 `json:"half_life_seconds" yaml:"half_life_seconds"`
	SpinFactor      float64 `json:"spin_parity_factor" yaml:"spin_parity_factor"`

	// Kind is "metastable" above the microsecond threshold, else "short-lived".
	Kind string `json:"isomer_type" yaml:"isomer_type"`
}

// NuclearProperties aggregates the per-nuclide derived quantities the
// `nuclide` subcommand reports.
type NuclearProperties struct {
	Nuclide Nuclide `json:"nuclide" yaml:"nuclide"`

	Binding       BindingEnergy `json:"binding_energy" yaml:"binding_energy"`
	FissionQMeV   float64       `json:"fission_energy_mev" yaml:"fission_energy_mev"`
	Shell         ShellModel    `json:"shell_model" yaml:"shell_model"`
	Fragmentation Fragmentation `json:"fission_fragmentation" yaml:"fission_fragmentation"`
}

// StellarReaction is one step of a stellar burning process.
type StellarReaction struct {
	Reaction string  `json:"reaction" yaml:"reaction"`
	QMeV     float64 `json:"q_mev" yaml:"q_mev"`
}

// StellarProcess is a fixed reference table for a burning chain such as
// the CNO cycle or the triple-alpha process.
type StellarProcess struct {
	Name        string            `json:"name" yaml:"name"`
	NetReaction string            `json:"net_reaction" yaml:"net_reaction"`
	Reactions   []StellarReaction `json:"reactions" yaml:"reactions"`
	TotalQMeV   float64           `json:"total_q_mev" yaml:"total_q_mev"`
}
