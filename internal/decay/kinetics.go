// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package decay

import (
	"fmt"
	"sort"
)

// KineticsParams drives the one-group point-kinetics equation
//
//	dN/dt = ((k_eff - 1) / Lambda) * N - lambda * N
//
// with Lambda the mean neutron generation time and lambda an external
// loss constant. Delayed neutrons are not modeled.
type KineticsParams struct {
	KEff           float64 `yaml:"k_eff" json:"k_eff"`
	GenerationTime float64 `yaml:"generation_time_s" json:"generation_time_s"`
	LossLambda     float64 `yaml:"loss_lambda" json:"loss_lambda"`
	InitialDensity float64 `yaml:"initial_density" json:"initial_density"`
}

// KineticsResult samples the neutron population over time.
type KineticsResult struct {
	Times     []float64 `json:"time_s" yaml:"time_s"`
	Densities []float64 `json:"neutron_density" yaml:"neutron_density"`
}

// PointKinetics integrates the neutron population equation at the given
// sample times using the same adaptive integrator as the decay chains.
func PointKinetics(p KineticsParams, times []float64, opt Options) (*KineticsResult, error) {
	if p.GenerationTime <= 0 {
		return nil, fmt.Errorf("generation time must be positive, got %g", p.GenerationTime)
	}
	if len(times) == 0 {
		return nil, fmt.Errorf("no sample times given")
	}
	for _, t := range times {
		if t < 0 {
			return nil, fmt.Errorf("negative sample time %g", t)
		}
	}

	sorted := append([]float64(nil), times...)
	sort.Float64s(sorted)

	rate := (p.KEff-1.0)/p.GenerationTime - p.LossLambda
	deriv := func(_ float64, state, dst []float64) {
		dst[0] = rate * state[0]
	}

	y := []float64{p.InitialDensity}
	res := &KineticsResult{
		Times:     sorted,
		Densities: make([]float64, len(sorted)),
	}

	t := 0.0
	for i, target := range sorted {
		if err := integrate(deriv, y, t, target, opt); err != nil {
			return nil, fmt.Errorf("point kinetics at t=%g: %w", target, err)
		}
		t = target
		res.Densities[i] = y[0]
	}
	return res, nil
}
