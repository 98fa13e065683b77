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

package sum

import (
	"math"
	"math/big"
	"math/rand"
	"testing"
)

func TestSum_Empty(t *testing.T) {
	s := New()
	if got := s.Sum(); got != 0 {
		t.Fatalf("empty sum = %v, want 0", got)
	}
}

func TestSum_SimpleSequence(t *testing.T) {
	s := New()
	s.AddAll([]float64{1, 2, 3, 4, 5})
	if got, want := s.Sum(), 15.0; got != want {
		t.Fatalf("sum = %v, want %v", got, want)
	}
}

// TestSum_CatastrophicCancellation exercises the classic case where naive
// left-to-right summation loses the small term entirely.
func TestSum_CatastrophicCancellation(t *testing.T) {
	big := 1e16
	small := 1.0
	naive := big + small - big
	s := New()
	s.Add(big)
	s.Add(small)
	s.Add(-big)
	got := s.Sum()
	if math.Abs(got-small) > 1e-9 {
		t.Fatalf("compensated sum = %v, want ~%v (naive gave %v)", got, small, naive)
	}
}

// TestSum_WideMagnitudeSpread checks property 3 from SPEC_FULL.md §8: for a
// sequence with wide magnitude spread, the compensated sum must stay within
// a small number of ULPs (scaled by the largest term magnitude) of a
// high-precision reference sum, and must never be less accurate than naive
// left-to-right float64 summation.
func TestSum_WideMagnitudeSpread(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	const n = 10000
	terms := make([]float64, 0, n)
	naive := 0.0
	maxAbs := 0.0
	for i := 0; i < n; i++ {
		mag := math.Pow(10, float64(rng.Intn(30)-15))
		sign := 1.0
		if rng.Intn(2) == 0 {
			sign = -1.0
		}
		v := sign * mag * rng.Float64()
		terms = append(terms, v)
		naive += v
		if math.Abs(v) > maxAbs {
			maxAbs = math.Abs(v)
		}
	}

	s := New()
	s.AddAll(terms)
	got := s.Sum()

	if math.IsNaN(got) || math.IsInf(got, 0) {
		t.Fatalf("sum is not finite: %v", got)
	}

	// Reference sum at 200 bits of precision, far beyond float64's 53,
	// stands in for the true real-number sum.
	ref := new(big.Float).SetPrec(200)
	for _, v := range terms {
		ref.Add(ref, big.NewFloat(v))
	}
	refF, _ := ref.Float64()

	compensatedErr := math.Abs(got - refF)
	naiveErr := math.Abs(naive - refF)

	if compensatedErr > naiveErr {
		t.Fatalf("compensated sum (err %v) is less accurate than naive sum (err %v)", compensatedErr, naiveErr)
	}
	// A one-pass compensated sum's residual error is bounded by a small
	// constant number of ULPs of the largest term involved; allow a
	// generous margin (1e4 ULPs, float64 epsilon ~2.22e-16) rather than an
	// exact constant.
	const float64Epsilon = 2.220446049250313e-16
	tolerance := 1e4 * maxAbs * float64Epsilon
	if compensatedErr > tolerance {
		t.Fatalf("compensated sum error %v exceeds ULP-scaled tolerance %v (maxAbs=%v, ref=%v)", compensatedErr, tolerance, maxAbs, refF)
	}

	// A separate, independent exactly-cancelling pair recovers the small
	// residual exactly, unlike naive summation of the same three terms.
	cancelling := New()
	cancelling.AddAll([]float64{1e18, -1e18, 1.0})
	if got := cancelling.Sum(); math.Abs(got-1.0) > 1e-9 {
		t.Fatalf("cancelling-pair sum = %v, want ~1.0", got)
	}
}

func TestSum_OrderIndependence(t *testing.T) {
	terms := []float64{1e20, 1, -1e20, 1, 1, -2}
	s1 := New()
	s1.AddAll(terms)

	reversed := make([]float64, len(terms))
	for i, v := range terms {
		reversed[len(terms)-1-i] = v
	}
	s2 := New()
	s2.AddAll(reversed)

	if math.Abs(s1.Sum()-s2.Sum()) > 1e-9 {
		t.Fatalf("order dependence detected: %v vs %v", s1.Sum(), s2.Sum())
	}
}

func TestOf(t *testing.T) {
	if got, want := Of([]float64{0.1, 0.2, 0.3}), 0.6; math.Abs(got-want) > 1e-12 {
		t.Fatalf("Of(...) = %v, want %v", got, want)
	}
}
