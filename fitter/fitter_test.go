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

package fitter

import (
	"math"
	"testing"

	"github.com/0xsoniclabs/autoquant/distribution"
	"github.com/0xsoniclabs/autoquant/fit"
	"github.com/0xsoniclabs/autoquant/quanterror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// linearCDF builds an exactly-linear CDF: x values uniformly spaced over
// [0,1], y the rank-based empirical fraction.
func linearCDF(n int) distribution.CDF {
	cdf := make(distribution.CDF, n)
	for i := 0; i < n; i++ {
		x := float64(i+1) / float64(n)
		cdf[i] = distribution.Point{X: x, Y: x}
	}
	return cdf
}

// TestFit_Linear is scenario S5: fitting the Linear model against a
// perfectly linear CDF should recover something close to the identity
// warping and drive the loss near zero.
func TestFit_Linear(t *testing.T) {
	cdf := linearCDF(64)
	fr := New()

	const level = 256
	before := quanterror.Distribution(cdf, fit.Identity{}, level)
	fitted := fr.Fit(fit.ModelLinear, cdf, level)
	after := quanterror.Distribution(cdf, fitted, level)

	require.Equal(t, "linear", fitted.Name())
	assert.LessOrEqual(t, after, before+1e-6)
}

// logShapedCDF builds a CDF whose x values grow logarithmically in rank,
// approximating samples drawn from a log-shaped source distribution.
func logShapedCDF(n int) distribution.CDF {
	cdf := make(distribution.CDF, n)
	denom := math.Log(float64(n) + 1)
	for i := 0; i < n; i++ {
		y := float64(i+1) / float64(n)
		x := math.Log(float64(i+1)+1) / denom
		cdf[i] = distribution.Point{X: x, Y: y}
	}
	return cdf
}

// TestFit_Log is scenario S6: fitting the Log model against a log-shaped
// CDF should out-perform (or match) the untrained identity warping.
func TestFit_Log(t *testing.T) {
	cdf := logShapedCDF(64)
	fr := New()

	const level = 256
	before := quanterror.Distribution(cdf, fit.Identity{}, level)
	fitted := fr.Fit(fit.ModelLog, cdf, level)
	after := quanterror.Distribution(cdf, fitted, level)

	require.Equal(t, "log", fitted.Name())
	assert.LessOrEqual(t, after, before+1e-6)
}

// TestFit_ErrorMonotoneInBitCount is a soft check on universal property 5:
// fitting the same model at successively higher quantization levels should
// not make the loss worse, since more codes can only shrink round-trip
// deviation.
func TestFit_ErrorMonotoneInBitCount(t *testing.T) {
	cdf := linearCDF(64)
	fr := New()

	var prev float64
	for i, level := range []uint64{4, 16, 64, 256} {
		fitted := fr.Fit(fit.ModelLinear, cdf, level)
		got := quanterror.Distribution(cdf, fitted, level)
		if i > 0 {
			assert.LessOrEqual(t, got, prev+1e-3, "loss should not increase with more levels")
		}
		prev = got
	}
}

func TestFit_PowerAndExpProduceValidFunctions(t *testing.T) {
	cdf := linearCDF(32)
	fr := New()

	power := fr.Fit(fit.ModelPower, cdf, 64)
	assert.Equal(t, "power", power.Name())
	assert.Len(t, power.Params(), 5)

	exp := fr.Fit(fit.ModelExp, cdf, 64)
	assert.Equal(t, "exp", exp.Name())
	assert.Len(t, exp.Params(), 3)
}
