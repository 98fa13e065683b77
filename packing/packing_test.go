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

package packing

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestMerge_TwoChannels is scenario S3 from SPEC_FULL.md §8.
func TestMerge_TwoChannels(t *testing.T) {
	f := ErrorFunction{1.0, 0.8, 0.6, 0.4, 0.4, 0.1, 0.1, 0.1}
	s := ErrorFunction{1.0, 0.9, 0.8, 0.8, 0.3, 0.2, 0.1, 0.0}

	alloc, err := Merge([]ErrorFunction{f, s}, 8)
	require.NoError(t, err)

	assert.InDelta(t, 0.7, alloc.Curve()[7], 1e-9)

	bits := alloc.Reconstruct(7)
	require.Len(t, bits, 2)
	assert.Equal(t, 7, bits[0]+bits[1])
	assert.InDelta(t, f[bits[0]]+s[bits[1]], alloc.Curve()[7], 1e-9)
}

// TestMerge_ThreeChannels is scenario S4 from SPEC_FULL.md §8.
func TestMerge_ThreeChannels(t *testing.T) {
	f := ErrorFunction{1.0, 0.8, 0.6, 0.4, 0.4, 0.1, 0.1, 0.1}
	s := ErrorFunction{1.0, 0.9, 0.8, 0.8, 0.3, 0.2, 0.1, 0.0}
	tr := ErrorFunction{1, 1, 1, 1, 1, 0.2, 0, 0}

	alloc, err := Merge([]ErrorFunction{f, s, tr}, 8)
	require.NoError(t, err)

	assert.InDelta(t, 1.7, alloc.Curve()[7], 1e-9)

	bits := alloc.Reconstruct(7)
	require.Len(t, bits, 3)
	sum := 0
	for _, b := range bits {
		sum += b
	}
	assert.Equal(t, 7, sum)
}

// bruteForceMerge computes the minimum of F[i]+S[j] over all i+j=k by
// exhaustive search, for comparison against Merge's DP result.
func bruteForceMerge(f, s ErrorFunction, k int) float64 {
	best := math.Inf(1)
	for i := 0; i <= k; i++ {
		v := at(f, i) + at(s, k-i)
		if v < best {
			best = v
		}
	}
	return best
}

// TestMerge_OptimalityAgainstBruteForce is universal property 6.
func TestMerge_OptimalityAgainstBruteForce(t *testing.T) {
	f := ErrorFunction{5, 4, 3, 2, 1, 1, 0.5, 0.5}
	s := ErrorFunction{6, 3, 2, 2, 1, 0.9, 0.1, 0.1}

	alloc, err := Merge([]ErrorFunction{f, s}, 8)
	require.NoError(t, err)

	for k := 0; k < 8; k++ {
		assert.InDelta(t, bruteForceMerge(f, s, k), alloc.Curve()[k], 1e-9, "mismatch at k=%d", k)
	}
}

// TestReconstruct_BitsSumToK is universal property 7.
func TestReconstruct_BitsSumToK(t *testing.T) {
	f := ErrorFunction{5, 4, 3, 2, 1, 1, 0.5, 0.5}
	s := ErrorFunction{6, 3, 2, 2, 1, 0.9, 0.1, 0.1}
	tr := ErrorFunction{4, 3, 3, 2, 2, 1, 0.5, 0}

	alloc, err := Merge([]ErrorFunction{f, s, tr}, 8)
	require.NoError(t, err)

	for k := 0; k < 8; k++ {
		bits := alloc.Reconstruct(k)
		sum := 0
		for _, b := range bits {
			sum += b
		}
		assert.Equal(t, k, sum, "bits for k=%d must sum to k", k)
	}
}

func TestMerge_InsufficientBudget(t *testing.T) {
	f := ErrorFunction{1.0}
	s := ErrorFunction{1.0}

	_, err := Merge([]ErrorFunction{f, s}, 8)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInsufficientBudget)
}

func TestMerge_NoChannels(t *testing.T) {
	_, err := Merge(nil, 4)
	require.Error(t, err)
}

func TestAt_OutOfRangeClamping(t *testing.T) {
	f := ErrorFunction{1, 2, 3}
	assert.Equal(t, 0.0, at(f, -1))
	assert.Equal(t, 1.0, at(f, 0))
	assert.Equal(t, 3.0, at(f, 2))
	assert.Equal(t, 3.0, at(f, 10))
}
