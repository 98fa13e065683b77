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

// Package sum implements compensated summation of float64 sequences so that
// the accumulated result stays exact (up to the final collapsing addition)
// even when terms span many orders of magnitude.
package sum

// Sum accumulates float64 terms as a list of non-overlapping partial sums.
// The zero value is ready to use.
type Sum struct {
	partials []float64
}

// New returns an empty compensated sum.
func New() *Sum {
	return &Sum{}
}

// Add inserts x into the running sum.
//
// This is the standard Shewchuk/Neumaier partials algorithm: x is folded
// into each existing partial in turn, keeping the rounded high part and
// re-inserting any non-zero round-off low part, so that the list of
// partials always sums (exactly, by construction) to the true total.
func (s *Sum) Add(x float64) {
	j := 0
	for i := range s.partials {
		y := s.partials[i]
		if absF64(x) < absF64(y) {
			x, y = y, x
		}
		hi := x + y
		lo := y - (hi - x)
		if lo != 0 {
			s.partials[j] = lo
			j++
		}
		x = hi
	}
	if j >= len(s.partials) {
		s.partials = append(s.partials[:j], x)
	} else {
		s.partials[j] = x
		s.partials = s.partials[:j+1]
	}
}

// AddAll inserts every element of xs into the running sum.
func (s *Sum) AddAll(xs []float64) {
	for _, x := range xs {
		s.Add(x)
	}
}

// Sum returns the current total as a plain left-to-right addition of the
// tracked partials.
func (s *Sum) Sum() float64 {
	total := 0.0
	for _, p := range s.partials {
		total += p
	}
	return total
}

// Of is a convenience constructor summing xs in one call.
func Of(xs []float64) float64 {
	s := New()
	s.AddAll(xs)
	return s.Sum()
}

func absF64(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
