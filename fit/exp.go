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

import "math"

// Exp is f(x) = b*exp(a*x) + c.
type Exp struct {
	a, b, c float64
}

// ExpFromParams builds an Exp model from a 3-element parameter vector
// (a, b, c).
func ExpFromParams(p []float64) Exp {
	mustLen(p, 3, "exp")
	return Exp{a: p[0], b: p[1], c: p[2]}
}

func (e Exp) Function(x float64) float64 { return e.b*math.Exp(e.a*x) + e.c }
func (e Exp) Inverse(y float64) float64  { return math.Log((y-e.c)/e.b) / e.a }
func (e Exp) Name() string               { return "exp" }
func (e Exp) Params() []float64          { return []float64{e.a, e.b, e.c} }

// ExpInitialSimplex returns the model-specific initial simplex: 4 vertices
// in the 3-dimensional (a, b, c) parameter space.
func ExpInitialSimplex() [][]float64 {
	base := []float64{1.0, 1.0, 0.0}
	return perturbedSimplex(base, 0.1)
}
