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

package main

import (
	"errors"
	"testing"

	"github.com/0xsoniclabs/autoquant/fit"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseModels_Empty(t *testing.T) {
	models, err := parseModels(nil)
	require.NoError(t, err)
	assert.Nil(t, models)
}

func TestParseModels_Valid(t *testing.T) {
	models, err := parseModels([]string{"log", "LINEAR"})
	require.NoError(t, err)
	assert.Equal(t, []fit.Model{fit.ModelLog, fit.ModelLinear}, models)
}

func TestParseModels_UnknownName(t *testing.T) {
	_, err := parseModels([]string{"quadratic"})
	require.Error(t, err)
}

func TestSelectChannels_FiltersToRequested(t *testing.T) {
	channels := map[string][]float64{
		"r":  {1, 2},
		"g1": {3, 4},
		"g2": {5, 6},
		"b":  {7, 8},
	}
	out, err := selectChannels(channels, []string{"r", "b"})
	require.NoError(t, err)
	assert.Len(t, out, 2)
	assert.Equal(t, []float64{1, 2}, out["r"])
	assert.Equal(t, []float64{7, 8}, out["b"])
}

func TestSelectChannels_UnknownNameFails(t *testing.T) {
	channels := map[string][]float64{"r": {1, 2}}
	_, err := selectChannels(channels, []string{"x"})
	require.Error(t, err)
}

func TestExitCodeFor_UsageErrorIsTwo(t *testing.T) {
	assert.Equal(t, 2, exitCodeFor(usageError{errors.New("bad args")}))
}

func TestExitCodeFor_OtherErrorIsOne(t *testing.T) {
	assert.Equal(t, 1, exitCodeFor(errors.New("io failure")))
}
