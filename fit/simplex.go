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

// perturbedSimplex builds the standard n+1 vertex Nelder-Mead initial
// simplex for an n-dimensional base point: the base point itself, plus one
// vertex per dimension with that dimension nudged by eps.
func perturbedSimplex(base []float64, eps float64) [][]float64 {
	n := len(base)
	simplex := make([][]float64, n+1)
	simplex[0] = append([]float64(nil), base...)
	for i := 0; i < n; i++ {
		v := append([]float64(nil), base...)
		v[i] += eps
		simplex[i+1] = v
	}
	return simplex
}
