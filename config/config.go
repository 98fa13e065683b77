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

// Package config builds a run's Config from CLI flags, the same shape as
// the upstream utils.NewConfig(ctx, ...) constructor: package-level
// cli.Flag variables shared by commands, assembled into a single struct.
package config

import (
	"github.com/cockroachdb/errors"
	"github.com/urfave/cli/v2"
)

// Flags shared across the autoquant CLI surface.
var (
	ChannelsFlag = cli.StringSliceFlag{
		Name:  "channel",
		Usage: "channel name to extract from the input image (repeatable; default: all Bayer channels)",
	}
	BitBudgetFlag = cli.IntFlag{
		Name:  "bits",
		Usage: "total cross-channel bit budget N to allocate",
		Value: 24,
	}
	MaxBitsFlag = cli.IntFlag{
		Name:  "max-bits",
		Usage: "maximum per-channel bit depth B to sweep when building error curves",
		Value: 12,
	}
	ModelsFlag = cli.StringSliceFlag{
		Name:  "model",
		Usage: "restrict fitting to these model names (linear, log, power, exp; default: all)",
	}
	OutputFlag = cli.StringFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Usage:   "write a gzipped JSON report to this path",
	}
	LogLevelFlag = cli.StringFlag{
		Name:  "log",
		Usage: "log level (CRITICAL, ERROR, WARNING, NOTICE, INFO, DEBUG)",
		Value: "INFO",
	}
)

// Config is a single run's fully resolved configuration.
type Config struct {
	Input     string
	Channels  []string
	BitBudget int
	MaxBits   int
	Models    []string
	Output    string
	LogLevel  string
}

// NewConfig builds a Config from a cli.Context, requiring exactly one
// positional argument (the input image path).
func NewConfig(ctx *cli.Context) (*Config, error) {
	if ctx.NArg() != 1 {
		return nil, errors.Newf("expected exactly one input path argument, got %d", ctx.NArg())
	}

	cfg := &Config{
		Input:     ctx.Args().Get(0),
		Channels:  ctx.StringSlice(ChannelsFlag.Name),
		BitBudget: ctx.Int(BitBudgetFlag.Name),
		MaxBits:   ctx.Int(MaxBitsFlag.Name),
		Models:    ctx.StringSlice(ModelsFlag.Name),
		Output:    ctx.String(OutputFlag.Name),
		LogLevel:  ctx.String(LogLevelFlag.Name),
	}
	if cfg.BitBudget <= 0 {
		return nil, errors.Newf("bit budget must be positive, got %d", cfg.BitBudget)
	}
	if cfg.MaxBits < 0 {
		return nil, errors.Newf("max-bits must be non-negative, got %d", cfg.MaxBits)
	}
	return cfg, nil
}
