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

// Package errorcurve implements C8: for a trained model and a given bit
// budget range, compute the quantization error at every bit count in
// parallel and collect the results in deterministic, index order.
package errorcurve

import (
	"sync"

	"github.com/0xsoniclabs/autoquant/distribution"
	"github.com/0xsoniclabs/autoquant/fit"
	"github.com/0xsoniclabs/autoquant/fitter"
	"github.com/0xsoniclabs/autoquant/logger"
	"github.com/0xsoniclabs/autoquant/quanterror"
)

// MaxBits is the default upper bound on the bit count swept per model
// (B_max in SPEC_FULL.md §4.8); curves run b = 0..MaxBits inclusive.
const MaxBits = 12

var log = logger.NewLogger("INFO", "errorcurve")

// Curve is a model's quantization error indexed by bit count: Curve[b] is
// the error at L = 1<<b levels. Non-increasing is expected but never
// enforced, since the fitter is heuristic.
type Curve []float64

// Calculate fits model on train at every level L=1<<b for b in 0..maxBits,
// and evaluates the resulting function's loss against test, returning one
// curve entry per bit count. The fan-out across bit counts is the module's
// only parallel region: one goroutine per bit count, each instantiating its
// own fitter (and thus its own *rand.Rand, which is not safe for concurrent
// use) seeded from b, writing into a disjoint slice index.
func Calculate(model fit.Model, train, test distribution.CDF, maxBits int) Curve {
	curve := make(Curve, maxBits+1)

	var wg sync.WaitGroup
	wg.Add(maxBits + 1)
	for b := 0; b <= maxBits; b++ {
		go func(b int) {
			defer wg.Done()
			fr := fitter.NewSeeded(uint64(b) + 1)
			level := uint64(1) << uint(b)
			fitted := fr.Fit(model, train, level)
			curve[b] = quanterror.Distribution(test, fitted, level)
		}(b)
	}
	wg.Wait()

	log.Debugf("calculated %s curve over %d bit counts", model, len(curve))
	return curve
}

// ModelCurve pairs a fitted model's name with its error curve, as exposed
// to external renderers.
type ModelCurve struct {
	Model fit.Model
	Name  string
	Curve Curve
}

// CalculateFor runs Calculate for each model in models, returning one
// ModelCurve per model in the same order. Each model's sweep runs in its
// own goroutine fan-out (via Calculate); the per-model results are
// collected afterward in models order, so output is deterministic
// regardless of which model's goroutines finish first.
func CalculateFor(models []fit.Model, train, test distribution.CDF, maxBits int) []ModelCurve {
	out := make([]ModelCurve, len(models))
	for i, m := range models {
		out[i] = ModelCurve{
			Model: m,
			Name:  m.String(),
			Curve: Calculate(m, train, test, maxBits),
		}
	}
	log.Infof("calculated error curves for %d models", len(out))
	return out
}

// CalculateAll runs CalculateFor over every model in fit.AllModels.
func CalculateAll(train, test distribution.CDF, maxBits int) []ModelCurve {
	return CalculateFor(fit.AllModels, train, test, maxBits)
}

// Best returns, for each bit count, the minimum error and the model that
// achieved it across curves. Used by the orchestrator (C10) to select a
// per-channel pointwise-minimum curve before handing it to the packer.
func Best(curves []ModelCurve) (Curve, []fit.Model) {
	if len(curves) == 0 {
		return nil, nil
	}
	n := len(curves[0].Curve)
	best := make(Curve, n)
	bestModel := make([]fit.Model, n)
	for b := 0; b < n; b++ {
		best[b] = curves[0].Curve[b]
		bestModel[b] = curves[0].Model
		for _, c := range curves[1:] {
			if c.Curve[b] < best[b] {
				best[b] = c.Curve[b]
				bestModel[b] = c.Model
			}
		}
	}
	return best, bestModel
}
