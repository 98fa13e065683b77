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

// Package fit defines the warping-function contract (C3) and the library
// of parametric warping models (C6). The Nelder-Mead fitter that searches
// a model's parameter space (C7) lives in the sibling fitter package, to
// avoid an import cycle through quanterror.
package fit

import (
	"strings"

	"github.com/cockroachdb/errors"
)

//go:generate mockgen -source fit.go -destination fit_mock.go -package fit

// Function is an invertible warping f: R -> [0,1] together with its
// inverse. Implementations are immutable once constructed.
type Function interface {
	// Function evaluates f(x).
	Function(x float64) float64
	// Inverse evaluates f^-1(y).
	Inverse(y float64) float64
	// Name identifies the model family, e.g. "linear", "log", "power", "exp".
	Name() string
	// Params returns the model's parameter vector. Callers must not mutate
	// the returned slice.
	Params() []float64
}

// Model identifies one of the warping families in the model library.
type Model int

const (
	ModelLinear Model = iota
	ModelLog
	ModelPower
	ModelExp
	ModelIdentity
)

// String returns the model's canonical name, matching Function.Name() for
// an instance of that model.
func (m Model) String() string {
	switch m {
	case ModelLinear:
		return "linear"
	case ModelLog:
		return "log"
	case ModelPower:
		return "power"
	case ModelExp:
		return "exp"
	case ModelIdentity:
		return "identity"
	default:
		return "unknown"
	}
}

// AllModels are the four fittable model families (Identity is excluded: it
// has no free parameters and is not driven by the fitter).
var AllModels = []Model{ModelLinear, ModelLog, ModelPower, ModelExp}

// ParseModel looks up a model by its canonical name (case-insensitive),
// for turning a CLI --model flag value into a Model.
func ParseModel(name string) (Model, error) {
	for _, m := range append(append([]Model{}, AllModels...), ModelIdentity) {
		if strings.EqualFold(m.String(), name) {
			return m, nil
		}
	}
	return 0, errors.Newf("fit: unknown model name %q", name)
}

// FromParams constructs a Function of the given model from a parameter
// vector, the same way a fitter would instantiate its best-known point.
func FromParams(m Model, p []float64) Function {
	switch m {
	case ModelLinear:
		return LinearFromParams(p)
	case ModelLog:
		return LogFromParams(p)
	case ModelPower:
		return PowerFromParams(p)
	case ModelExp:
		return ExpFromParams(p)
	case ModelIdentity:
		return Identity{}
	default:
		panic("fit: unknown model " + m.String())
	}
}

// Identity is the trivial warping f(x) = x, used as a baseline.
type Identity struct{}

func (Identity) Function(x float64) float64 { return x }
func (Identity) Inverse(y float64) float64  { return y }
func (Identity) Name() string               { return "identity" }
func (Identity) Params() []float64          { return nil }
