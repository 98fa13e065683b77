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

package fit

import "fmt"

// Linear is f(x) = a*x + b, the simplest warping: identity quantization
// when (a, b) = (1, 0).
type Linear struct {
	a, b float64
}

// LinearFromParams builds a Linear model from a 2-element parameter vector
// (a, b). It panics if p does not have exactly 2 elements, since that
// indicates a fitter/model mismatch bug.
func LinearFromParams(p []float64) Linear {
	mustLen(p, 2, "linear")
	return Linear{a: p[0], b: p[1]}
}

func (l Linear) Function(x float64) float64 { return l.a*x + l.b }
func (l Linear) Inverse(y float64) float64  { return (y - l.b) / l.a }
func (l Linear) Name() string               { return "linear" }
func (l Linear) Params() []float64          { return []float64{l.a, l.b} }

// LinearInitialSimplex returns the model-specific initial simplex used by
// the fitter: 3 vertices in the 2-dimensional (a, b)
// parameter space, seeded near the identity warping.
func LinearInitialSimplex() [][]float64 {
	return [][]float64{
		{1.0, 0.0},
		{1.1, 0.0},
		{1.0, 0.1},
	}
}

func mustLen(p []float64, n int, model string) {
	if len(p) != n {
		panic(fmt.Sprintf("fit: %s requires %d parameters, got %d", model, n, len(p)))
	}
}
