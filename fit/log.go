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

// logBMin is the floor applied to the b parameter during evaluation, so
// that a simplex excursion with b near/below zero never produces a
// division by zero or a sign flip inside the logarithm's coefficient.
const logBMin = 0.01

// Log is f(x) = b*max(0, ln(max(0,(x+a)*d))) + c, with b clamped to
// >= logBMin and both the logarithm's argument and its result clamped to
// >= 0 during evaluation.
type Log struct {
	a, b, c, d float64
}

// LogFromParams builds a Log model from a 4-element parameter vector
// (a, b, c, d).
func LogFromParams(p []float64) Log {
	mustLen(p, 4, "log")
	return Log{a: p[0], b: p[1], c: p[2], d: p[3]}
}

func (l Log) Function(x float64) float64 {
	b := math.Max(l.b, logBMin)
	arg := math.Max(0, (x+l.a)*l.d)
	return b*math.Max(0, math.Log(arg)) + l.c
}

func (l Log) Inverse(y float64) float64 {
	b := math.Max(l.b, logBMin)
	return math.Exp(-l.c/b) * (math.Exp(y/b) - l.a*l.d*math.Exp(l.c/b)) / l.d
}

func (l Log) Name() string      { return "log" }
func (l Log) Params() []float64 { return []float64{l.a, l.b, l.c, l.d} }

// LogInitialSimplex returns the model-specific initial simplex: 5 vertices
// in the 4-dimensional (a, b, c, d) parameter space.
func LogInitialSimplex() [][]float64 {
	base := []float64{0.0, 1.0, 0.0, 1.0}
	return perturbedSimplex(base, 0.1)
}
