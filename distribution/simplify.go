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

package distribution

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/simplify"
)

// Simplify reduces a normalized CDF to at most maxPoints points using the
// Visvalingam-Whyatt algorithm, always keeping the first and last point.
// A maxPoints below 2 returns cdf unchanged.
// It is meant for display (e.g. render.Chart) only: fitting must always use
// the full-precision CDF.
func Simplify(cdf CDF, maxPoints int) CDF {
	if len(cdf) <= maxPoints || maxPoints < 2 {
		return cdf
	}
	ls := make(orb.LineString, len(cdf))
	for i, p := range cdf {
		ls[i] = orb.Point{p.X, p.Y}
	}
	simplifier := simplify.VisvalingamKeep(maxPoints)
	reduced := simplifier.Simplify(ls).(orb.LineString)

	out := make(CDF, len(reduced))
	for i, p := range reduced {
		out[i] = Point{X: p[0], Y: p[1]}
	}
	return out
}
