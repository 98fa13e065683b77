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

// Package quant implements C10, the orchestrator: it drives per-channel
// CDF construction, error-curve production, and bit packing, and exposes
// the results to external renderers and the CLI.
package quant

import (
	"sort"

	"github.com/0xsoniclabs/autoquant/distribution"
	"github.com/0xsoniclabs/autoquant/errorcurve"
	"github.com/0xsoniclabs/autoquant/fit"
	"github.com/0xsoniclabs/autoquant/logger"
	"github.com/0xsoniclabs/autoquant/packing"
	"github.com/cockroachdb/errors"
)

var log = logger.NewLogger("INFO", "quant")

// ChannelResult holds everything the orchestrator produced for a single
// input channel: its CDF, per-model error curves, and the pointwise-best
// curve/model selection that feeds the packer.
type ChannelResult struct {
	Name       string
	CDF        distribution.CDF
	Curves     []errorcurve.ModelCurve
	BestCurve  errorcurve.Curve
	BestModels []fit.Model
}

// Result is the orchestrator's complete output for one run: per-channel
// results plus the cross-channel bit allocation.
type Result struct {
	Channels   []ChannelResult
	Allocation *packing.Allocation
}

// Run builds a CDF for each channel's raw samples, fits every model in
// models (fit.AllModels if empty) at every bit count up to maxBits,
// selects the per-channel pointwise-minimum curve, and packs the channels
// into a total budget of N bits (merged curve length N, target index
// N-1).
//
// channels maps a channel name to its raw, not-yet-normalized samples.
func Run(channels map[string][]float64, models []fit.Model, maxBits int, totalBits int) (*Result, error) {
	if len(models) == 0 {
		models = fit.AllModels
	}

	names := make([]string, 0, len(channels))
	for name := range channels {
		names = append(names, name)
	}
	sort.Strings(names)

	results := make([]ChannelResult, 0, len(names))
	curves := make([]packing.ErrorFunction, 0, len(names))

	for _, name := range names {
		cdf, err := distribution.Build(channels[name])
		if err != nil {
			return nil, errors.Wrapf(err, "building CDF for channel %q", name)
		}

		modelCurves := errorcurve.CalculateFor(models, cdf, cdf, maxBits)
		best, bestModels := errorcurve.Best(modelCurves)

		results = append(results, ChannelResult{
			Name:       name,
			CDF:        cdf,
			Curves:     modelCurves,
			BestCurve:  best,
			BestModels: bestModels,
		})
		curves = append(curves, packing.ErrorFunction(best))
		log.Infof("channel %q: fitted %d models over %d bit counts", name, len(modelCurves), len(best))
	}

	allocation, err := packing.Merge(curves, totalBits)
	if err != nil {
		return nil, errors.Wrap(err, "packing channel error curves")
	}

	log.Infof("packed %d channels into a %d-bit budget", len(results), totalBits)
	return &Result{Channels: results, Allocation: allocation}, nil
}

// BitAllocation returns the per-channel bit counts for a chosen total
// budget k (conventionally k = totalBits-1, the last index of the merged
// curve), in the same channel order Run produced Channels.
func (r *Result) BitAllocation(k int) map[string]int {
	bits := r.Allocation.Reconstruct(k)
	out := make(map[string]int, len(r.Channels))
	for i, ch := range r.Channels {
		out[ch.Name] = bits[i]
	}
	return out
}
