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

// Package codec implements the encode/decode primitives (C4) that map a
// real value to an integer code and back through a fit.Function at a given
// quantization level count.
package codec

import (
	"math"

	"github.com/0xsoniclabs/autoquant/fit"
)

// Encode maps value through fit's warping and quantizes the result to one
// of L+1 integer codes in [0, L].
//
// A non-finite warped value (NaN or ±Inf) is treated as 0 rather than
// propagated. Because a NaN is replaced by 0 before the NaN check below,
// that check does not fire for any input.
func Encode(value float64, f fit.Function, level uint64) uint64 {
	m := f.Function(value)
	if !isFinite(m) {
		m = 0
	}
	if math.IsNaN(m) {
		panic("codec: fit function produced NaN for a finite input; this is a model bug")
	}
	scaled := m * float64(level)
	if scaled < 0 {
		scaled = 0
	}
	if scaled > float64(level) {
		scaled = float64(level)
	}
	return uint64(scaled)
}

// Decode maps an integer code back to a real value through fit's inverse
// warping.
func Decode(code uint64, f fit.Function, level uint64) float64 {
	x := float64(code) / float64(level)
	if !isFinite(x) {
		x = 0
	}
	x = f.Inverse(x)
	if !isFinite(x) {
		x = 0
	}
	return x
}

func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
