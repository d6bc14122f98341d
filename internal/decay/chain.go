// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package decay integrates radioactive decay chains (the Bateman system)
// and the point-kinetics neutron population equation with an adaptive
// Dormand-Prince 5(4) integrator. Relative step control keeps the solver
// stable across half-lives from seconds to billions of years.
package decay

import (
	"fmt"
	"math"
	"os"
	"sort"

	"go.yaml.in/yaml/v3"
	"gonum.org/v1/gonum/mat"
)

// ChainNuclide is one link of an ordered decay chain.
type ChainNuclide struct {
	// Name identifies the nuclide, conventionally "Rn-222" form.
	Name string `yaml:"name" json:"name"`

	// HalfLifeS is the half-life in seconds. Must be positive; model a
	// stable end of chain with a very large half-life or by making the
	// stable nuclide the last link with no successor.
	HalfLifeS float64 `yaml:"half_life_s" json:"half_life_s"`

	// Branching is the fraction of the parent's decays that feed this
	// nuclide. Ignored for the first link. Defaults to 1.
	Branching float64 `yaml:"branching" json:"branching"`

	// Initial is the starting quantity in atoms.
	Initial float64 `yaml:"initial" json:"initial"`
}

// Chain is an ordered parent-to-daughter decay sequence.
type Chain []ChainNuclide

// Validate checks half-lives and branching fractions.
func (c Chain) Validate() error {
	if len(c) == 0 {
		return fmt.Errorf("empty decay chain")
	}
	for i, n := range c {
		if n.HalfLifeS <= 0 {
			return fmt.Errorf("nuclide %d (%s): half-life must be positive, got %g", i, n.Name, n.HalfLifeS)
		}
		if i > 0 && (n.Branching < 0 || n.Branching > 1) {
			return fmt.Errorf("nuclide %d (%s): branching fraction %g outside [0, 1]", i, n.Name, n.Branching)
		}
		if n.Initial < 0 {
			return fmt.Errorf("nuclide %d (%s): negative initial quantity", i, n.Name)
		}
	}
	return nil
}

// lambdas returns the decay constants ln2 / t_half.
func (c Chain) lambdas() []float64 {
	out := make([]float64, len(c))
	for i, n := range c {
		out[i] = math.Ln2 / n.HalfLifeS
	}
	return out
}

// matrix builds the lower-triangular Bateman matrix: diagonal -lambda_i,
// sub-diagonal branching_i * lambda_{i-1}.
func (c Chain) matrix() *mat.Dense {
	n := len(c)
	lambda := c.lambdas()
	m := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		m.Set(i, i, -lambda[i])
		if i > 0 {
			branching := c[i].Branching
			if branching == 0 {
				branching = 1.0
			}
			m.Set(i, i-1, branching*lambda[i-1])
		}
	}
	return m
}

// Solution holds concentrations and activities sampled at the requested
// times. Indexing is [nuclide][time point].
type Solution struct {
	Names          []string    `json:"nuclides" yaml:"nuclides"`
	Times          []float64   `json:"time_s" yaml:"time_s"`
	Concentrations [][]float64 `json:"concentrations" yaml:"concentrations"`
	Activities     [][]float64 `json:"activities_bq" yaml:"activities_bq"`
}

// Solve integrates dN/dt = Lambda * N from the chain's initial
// quantities and samples the state at each requested time. Times must be
// non-negative; they are evaluated in ascending order regardless of
// input order, and reported sorted.
func Solve(chain Chain, times []float64, opt Options) (*Solution, error) {
	if err := chain.Validate(); err != nil {
		return nil, err
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

	n := len(chain)
	lambdaMat := chain.matrix()
	lambda := chain.lambdas()

	y := make([]float64, n)
	for i, cn := range chain {
		y[i] = cn.Initial
	}

	deriv := func(_ float64, state, dst []float64) {
		out := mat.NewVecDense(n, dst)
		out.MulVec(lambdaMat, mat.NewVecDense(n, state))
	}

	sol := &Solution{
		Names:          make([]string, n),
		Times:          sorted,
		Concentrations: make([][]float64, n),
		Activities:     make([][]float64, n),
	}
	for i, cn := range chain {
		sol.Names[i] = cn.Name
		sol.Concentrations[i] = make([]float64, len(sorted))
		sol.Activities[i] = make([]float64, len(sorted))
	}

	t := 0.0
	for j, target := range sorted {
		if err := integrate(deriv, y, t, target, opt); err != nil {
			return nil, fmt.Errorf("decay chain at t=%g: %w", target, err)
		}
		t = target
		for i := 0; i < n; i++ {
			sol.Concentrations[i][j] = y[i]
			sol.Activities[i][j] = lambda[i] * y[i]
		}
	}
	return sol, nil
}

// ChainFile is the YAML input shape the CLI reads.
type ChainFile struct {
	Nuclides Chain     `yaml:"nuclides"`
	TimesS   []float64 `yaml:"times_s"`
}

// LoadChainFile reads and validates a decay-chain description.
func LoadChainFile(path string) (*ChainFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading chain file: %w", err)
	}
	var cf ChainFile
	if err := yaml.Unmarshal(data, &cf); err != nil {
		return nil, fmt.Errorf("parsing chain file %s: %w", path, err)
	}
	if err := cf.Nuclides.Validate(); err != nil {
		return nil, fmt.Errorf("chain file %s: %w", path, err)
	}
	if len(cf.TimesS) == 0 {
		return nil, fmt.Errorf("chain file %s: no times_s sample points", path)
	}
	return &cf, nil
}
