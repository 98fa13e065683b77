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

// Power is f(x) = b*max(0,(x-a)*d)^e + c. The max(0, ...) clamp prevents
// fractional powers of negative bases during optimizer exploration.
type Power struct {
	a, b, c, d, e float64
}

// PowerFromParams builds a Power model from a 5-element parameter vector
// (a, b, c, d, e).
func PowerFromParams(p []float64) Power {
	mustLen(p, 5, "power")
	return Power{a: p[0], b: p[1], c: p[2], d: p[3], e: p[4]}
}

func (p Power) Function(x float64) float64 {
	base := math.Max(0, (x-p.a)*p.d)
	return p.b*math.Pow(base, p.e) + p.c
}

func (p Power) Inverse(y float64) float64 {
	return (math.Pow(math.Abs((y-p.c)/p.b), 1.0/p.e) + p.a*p.d) / p.d
}

func (p Power) Name() string      { return "power" }
func (p Power) Params() []float64 { return []float64{p.a, p.b, p.c, p.d, p.e} }

// PowerInitialSimplex returns the model-specific initial simplex: 6
// vertices in the 5-dimensional (a, b, c, d, e) parameter space.
func PowerInitialSimplex() [][]float64 {
	base := []float64{0.0, 1.0, 0.0, 1.0, 2.0}
	return perturbedSimplex(base, 0.1)
}
