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

// Package distribution builds, dedups and normalizes an empirical
// cumulative distribution function (CDF) from raw scalar samples.
package distribution

import (
	"sort"

	"github.com/cockroachdb/errors"
)

// ErrEmptyInput is returned when an operation that requires at least one
// sample or CDF point is given none.
var ErrEmptyInput = errors.New("distribution: empty input")

// Point is a single (x, cumulative probability) pair of an empirical CDF.
type Point struct {
	X float64
	Y float64
}

// CDF is an ordered sequence of Points. After Build, x is strictly
// increasing, y is strictly increasing, and the last point is (1, 1).
type CDF []Point

// Integrate sorts samples ascending and assigns each one its rank-based
// cumulative count, i.e. point i gets y = i+1 (1-indexed). Duplicate x
// values therefore appear as consecutive points with increasing y; use
// DropDuplicates to collapse them.
func Integrate(samples []float64) (CDF, error) {
	if len(samples) == 0 {
		return nil, ErrEmptyInput
	}
	sorted := append([]float64(nil), samples...)
	sort.Float64s(sorted)

	cdf := make(CDF, len(sorted))
	for i, v := range sorted {
		cdf[i] = Point{X: v, Y: float64(i + 1)}
	}
	return cdf, nil
}

// DropDuplicates collapses groups of equal x, keeping for each unique x the
// point with the largest y (the last occurrence of that x in ascending
// order). cdf is assumed sorted ascending by x, as produced by Integrate.
func DropDuplicates(cdf CDF) CDF {
	if len(cdf) == 0 {
		return cdf
	}
	out := make(CDF, 0, len(cdf))
	for i := 0; i < len(cdf); i++ {
		// Advance to the last point sharing this x.
		j := i
		for j+1 < len(cdf) && cdf[j+1].X == cdf[i].X {
			j++
		}
		out = append(out, cdf[j])
		i = j
	}
	return out
}

// Normalize divides every x by the maximum x and every y by the maximum y,
// so the CDF ends exactly at (1, 1); a coordinate whose maximum is 0 is left
// unscaled. It fails on an empty CDF.
func Normalize(cdf CDF) (CDF, error) {
	if len(cdf) == 0 {
		return nil, ErrEmptyInput
	}
	last := cdf[len(cdf)-1]
	xMax, yMax := last.X, last.Y
	out := make(CDF, len(cdf))
	for i, p := range cdf {
		x, y := p.X, p.Y
		if xMax != 0 {
			x = p.X / xMax
		}
		if yMax != 0 {
			y = p.Y / yMax
		}
		out[i] = Point{X: x, Y: y}
	}
	return out, nil
}

// Build runs the full pipeline: Integrate, DropDuplicates, Normalize.
func Build(samples []float64) (CDF, error) {
	raw, err := Integrate(samples)
	if err != nil {
		return nil, errors.Wrap(err, "distribution: build")
	}
	deduped := DropDuplicates(raw)
	normalized, err := Normalize(deduped)
	if err != nil {
		return nil, errors.Wrap(err, "distribution: build")
	}
	return normalized, nil
}

// Check verifies the CDF invariants: strictly increasing x and y, and a
// final point of (1, 1) (within a small floating-point tolerance).
func Check(cdf CDF) error {
	if len(cdf) == 0 {
		return ErrEmptyInput
	}
	for i := 1; i < len(cdf); i++ {
		if cdf[i].X <= cdf[i-1].X {
			return errors.Newf("distribution: x not strictly increasing at index %d (%v <= %v)", i, cdf[i].X, cdf[i-1].X)
		}
		if cdf[i].Y <= cdf[i-1].Y {
			return errors.Newf("distribution: y not strictly increasing at index %d (%v <= %v)", i, cdf[i].Y, cdf[i-1].Y)
		}
	}
	last := cdf[len(cdf)-1]
	const tol = 1e-9
	if absF64(last.X-1.0) > tol || absF64(last.Y-1.0) > tol {
		return errors.Newf("distribution: final point must be (1,1), got (%v,%v)", last.X, last.Y)
	}
	return nil
}

// AsPairs converts the CDF to the [][2]float64 shape used by external
// renderers that do not depend on this package's Point type.
func (cdf CDF) AsPairs() [][2]float64 {
	out := make([][2]float64, len(cdf))
	for i, p := range cdf {
		out[i] = [2]float64{p.X, p.Y}
	}
	return out
}

func absF64(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
