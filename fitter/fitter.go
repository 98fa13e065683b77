// Copyright 2026 The Autoquant Authors
// This file is part of Autoquant.
//
// Autoquant is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Autoquant is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with Autoquant. If not, see <http://www.gnu.org/licenses/>.

// Package fitter implements C7: a derivative-free Nelder-Mead fitter that
// drives the quantization loss (quanterror) over a model's parameter space
// (fit) for a given training CDF and quantization level.
package fitter

import (
	"math"

	"github.com/0xsoniclabs/autoquant/distribution"
	"github.com/0xsoniclabs/autoquant/fit"
	"github.com/0xsoniclabs/autoquant/logger"
	"github.com/0xsoniclabs/autoquant/quanterror"
	"github.com/op/go-logging"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/optimize"
)

// restarts is the number of jittered starting points tried per fit; the
// optimizer always keeps the best-scoring result across restarts (SPEC_FULL
// §4.7: "the optimizer always returns its best-so-far point").
const restarts = 3

// jitterStep scales how far successive restarts nudge away from the
// model's canonical starting point.
const jitterStep = 0.05

// Fitter drives the Nelder-Mead optimizer over the model library.
type Fitter struct {
	log *logging.Logger
	rng *rand.Rand
}

// New returns a Fitter seeded for reproducible multi-start restarts.
func New() *Fitter {
	return NewSeeded(1)
}

// NewSeeded returns a Fitter whose multi-start jitter is seeded
// deterministically from seed. A *Fitter carries a *rand.Rand that is not
// safe for concurrent use, so callers that fan out across goroutines must
// give each goroutine its own Fitter (e.g. one per bit count, seeded from
// the bit count) rather than share one.
func NewSeeded(seed uint64) *Fitter {
	return &Fitter{
		log: logger.NewLogger("INFO", "fitter"),
		rng: rand.New(rand.NewSource(seed)),
	}
}

// Fit finds parameters for model that minimize quanterror.Distribution
// against train at the given quantization level, and returns the resulting
// fit.Function. It never fails: a non-converging optimizer simply returns
// its best-known point (SPEC_FULL §7, "Optimization non-convergence").
func (fr *Fitter) Fit(model fit.Model, train distribution.CDF, level uint64) fit.Function {
	base, maxIter, simplexSize := seed(model)

	cost := func(p []float64) float64 {
		return quanterror.Distribution(train, fit.FromParams(model, p), level)
	}
	problem := optimize.Problem{Func: cost}
	settings := &optimize.Settings{MajorIterations: maxIter}

	var bestX []float64
	bestF := math.Inf(1)
	for attempt := 0; attempt < restarts; attempt++ {
		start := jitter(fr.rng, base, jitterStep*float64(attempt))
		method := &optimize.NelderMead{SimplexSize: simplexSize}

		result, err := optimize.Minimize(problem, start, settings, method)
		if err != nil {
			fr.log.Debugf("fit %s level=%d attempt=%d: optimizer error (kept as non-convergence): %v", model, level, attempt, err)
			continue
		}
		if result.F < bestF {
			bestF = result.F
			bestX = result.X
		}
	}
	if bestX == nil {
		// All restarts errored; fall back to the untouched starting point
		// rather than surface an error the caller cannot act on.
		bestX = base
	}
	fr.log.Debugf("fit %s level=%d: loss=%v params=%v", model, level, bestF, bestX)
	return fit.FromParams(model, bestX)
}

// seed returns the canonical starting point, iteration cap, and simplex
// size for a model, per the per-model budgets in SPEC_FULL.md §4.7 and the
// fit package's *InitialSimplex functions.
func seed(model fit.Model) (base []float64, maxIterations int, simplexSize float64) {
	switch model {
	case fit.ModelLinear:
		simplex := fit.LinearInitialSimplex()
		return simplex[0], 500, vertexSpread(simplex)
	case fit.ModelLog:
		simplex := fit.LogInitialSimplex()
		return simplex[0], 3000, vertexSpread(simplex)
	case fit.ModelPower:
		simplex := fit.PowerInitialSimplex()
		return simplex[0], 3000, vertexSpread(simplex)
	case fit.ModelExp:
		simplex := fit.ExpInitialSimplex()
		return simplex[0], 3000, vertexSpread(simplex)
	default:
		panic("fitter: model " + model.String() + " has no fitter seed")
	}
}

// vertexSpread derives gonum's single SimplexSize scalar from the
// model-specific initial simplex's vertex perturbation, so the imported
// optimizer reconstructs an equivalent simplex around the base point.
func vertexSpread(simplex [][]float64) float64 {
	base := simplex[0]
	maxDelta := 0.0
	for _, v := range simplex[1:] {
		for i := range v {
			d := math.Abs(v[i] - base[i])
			if d > maxDelta {
				maxDelta = d
			}
		}
	}
	if maxDelta == 0 {
		return 0.1
	}
	return maxDelta
}

func jitter(rng *rand.Rand, base []float64, amount float64) []float64 {
	out := make([]float64, len(base))
	copy(out, base)
	if amount == 0 {
		return out
	}
	for i := range out {
		out[i] += (rng.Float64()*2 - 1) * amount
	}
	return out
}
