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

// Package quanterror computes the probability-weighted round-trip
// quantization error of a fit.Function over an empirical CDF (C5), the
// loss that the fitter (C7) minimizes.
package quanterror

import (
	"math"

	"github.com/0xsoniclabs/autoquant/codec"
	"github.com/0xsoniclabs/autoquant/distribution"
	"github.com/0xsoniclabs/autoquant/fit"
	"github.com/0xsoniclabs/autoquant/sum"
)

// scale is the magnitude-conditioning constant applied to deviations
// before squaring. Preserved verbatim for comparability with prior error
// curves; see SPEC_FULL.md §9.
const scale = 100.0

// Distribution computes the quantization loss of f over cdf at level
// levels. Each term is the squared, scale-conditioned round-trip deviation
// at a CDF point weighted by that point's probability mass, accumulated
// with compensated summation before taking the square root.
//
// A non-finite term is a fatal implementation error: it means a model's
// Function/Inverse escaped its domain-protection clauses, which must never
// happen once the model library is correct.
func Distribution(cdf distribution.CDF, f fit.Function, level uint64) float64 {
	acc := sum.New()
	prevY := 0.0
	for _, p := range cdf {
		decoded := codec.Decode(codec.Encode(p.X, f, level), f, level)
		deviation := (decoded - p.X) * scale
		mass := p.Y - prevY
		term := deviation*deviation*mass
		if math.IsNaN(term) || math.IsInf(term, 0) {
			panic("quanterror: non-finite loss term; model escaped its domain-protection clauses")
		}
		acc.Add(term)
		prevY = p.Y
	}
	total := acc.Sum()
	return math.Sqrt(total)
}
