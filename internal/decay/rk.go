// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package decay

import (
	"fmt"
	"math"
)

// derivFunc evaluates dy/dt into dst.
type derivFunc func(t float64, y, dst []float64)

// Options controls the adaptive integrator. Zero values select the
// defaults; tests tighten or loosen tolerances through here.
type Options struct {
	RelTol   float64
	AbsTol   float64
	MaxSteps int
}

const (
	defaultRelTol   = 1e-8
	defaultAbsTol   = 1e-10
	defaultMaxSteps = 1_000_000
)

func (o Options) withDefaults() Options {
	if o.RelTol <= 0 {
		o.RelTol = defaultRelTol
	}
	if o.AbsTol <= 0 {
		o.AbsTol = defaultAbsTol
	}
	if o.MaxSteps <= 0 {
		o.MaxSteps = defaultMaxSteps
	}
	return o
}

// Dormand-Prince 5(4) coefficients.
var (
	dpC = [7]float64{0, 1.0 / 5, 3.0 / 10, 4.0 / 5, 8.0 / 9, 1, 1}
	dpA = [7][6]float64{
		{},
		{1.0 / 5},
		{3.0 / 40, 9.0 / 40},
		{44.0 / 45, -56.0 / 15, 32.0 / 9},
		{19372.0 / 6561, -25360.0 / 2187, 64448.0 / 6561, -212.0 / 729},
		{9017.0 / 3168, -355.0 / 33, 46732.0 / 5247, 49.0 / 176, -5103.0 / 18656},
		{35.0 / 384, 0, 500.0 / 1113, 125.0 / 192, -2187.0 / 6784, 11.0 / 84},
	}
	// dpB5 is the 5th-order solution; dpE is the embedded error weight
	// vector (b5 - b4).
	dpB5 = [7]float64{35.0 / 384, 0, 500.0 / 1113, 125.0 / 192, -2187.0 / 6784, 11.0 / 84, 0}
	dpE  = [7]float64{
		71.0 / 57600, 0, -71.0 / 16695, 71.0 / 1920,
		-17253.0 / 339200, 22.0 / 525, -1.0 / 40,
	}
)

// integrate advances y from t0 to t1 in place with adaptive
// Dormand-Prince 5(4) steps. Step size is controlled by the relative
// error against atol + rtol*|y|, which is what keeps the method usable
// across half-lives from seconds to billions of years: the error measure
// scales with the solution, not with absolute concentration.
func integrate(f derivFunc, y []float64, t0, t1 float64, opt Options) error {
	if t1 == t0 {
		return nil
	}
	if t1 < t0 {
		return fmt.Errorf("integration backwards in time (t0=%g, t1=%g)", t0, t1)
	}
	opt = opt.withDefaults()

	n := len(y)
	var k [7][]float64
	for i := range k {
		k[i] = make([]float64, n)
	}
	yTmp := make([]float64, n)
	yNext := make([]float64, n)
	errVec := make([]float64, n)

	t := t0
	h := initialStep(t0, t1)

	for step := 0; step < opt.MaxSteps; step++ {
		if t >= t1 {
			return nil
		}
		if t+h > t1 {
			h = t1 - t
		}

		// Seven stages; k[0] could reuse the previous step's k[6] (FSAL)
		// but the systems here are tiny, so recompute for clarity.
		f(t, y, k[0])
		for s := 1; s < 7; s++ {
			copy(yTmp, y)
			for j := 0; j < s; j++ {
				a := dpA[s][j]
				if a == 0 {
					continue
				}
				for i := 0; i < n; i++ {
					yTmp[i] += h * a * k[j][i]
				}
			}
			f(t+dpC[s]*h, yTmp, k[s])
		}

		for i := 0; i < n; i++ {
			var sum5, sumE float64
			for s := 0; s < 7; s++ {
				sum5 += dpB5[s] * k[s][i]
				sumE += dpE[s] * k[s][i]
			}
			yNext[i] = y[i] + h*sum5
			errVec[i] = h * sumE
		}

		errNorm := scaledErrorNorm(y, yNext, errVec, opt)
		if errNorm <= 1 {
			t += h
			copy(y, yNext)
		}

		// Standard fifth-order step-size controller with safety factor
		// and growth clamps.
		factor := 5.0
		if errNorm > 0 {
			factor = 0.9 * math.Pow(1.0/errNorm, 0.2)
		}
		factor = math.Min(5.0, math.Max(0.2, factor))
		h *= factor
		if h <= 0 || math.IsNaN(h) || math.IsInf(h, 0) {
			return fmt.Errorf("step size underflow at t=%g", t)
		}
	}

	return fmt.Errorf("integrator exceeded %d steps before reaching t=%g (stopped at t=%g)", opt.MaxSteps, t1, t)
}

func scaledErrorNorm(y, yNext, errVec []float64, opt Options) float64 {
	var sum float64
	for i := range errVec {
		scale := opt.AbsTol + opt.RelTol*math.Max(math.Abs(y[i]), math.Abs(yNext[i]))
		e := errVec[i] / scale
		sum += e * e
	}
	return math.Sqrt(sum / float64(len(errVec)))
}

// initialStep picks a conservative first step; the controller adapts
// from there within a few steps.
func initialStep(t0, t1 float64) float64 {
	span := t1 - t0
	h := span / 1000
	if h <= 0 {
		h = 1e-6
	}
	return h
}
