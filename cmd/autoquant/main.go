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

// Command autoquant fits a non-uniform scalar quantizer to a raw-sensor
// WebP capture's Bayer channels and prints the resulting cross-channel
// bit allocation.
package main

import (
	"fmt"
	"os"

	"github.com/0xsoniclabs/autoquant/config"
	"github.com/0xsoniclabs/autoquant/fit"
	"github.com/0xsoniclabs/autoquant/imagesrc"
	"github.com/0xsoniclabs/autoquant/logger"
	"github.com/0xsoniclabs/autoquant/quant"
	"github.com/0xsoniclabs/autoquant/report"
	"github.com/cockroachdb/errors"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:      "autoquant",
		HelpName:  "autoquant",
		Usage:     "fit a non-uniform scalar quantizer to a raw-sensor capture",
		ArgsUsage: "<input.webp>",
		Flags: []cli.Flag{
			&config.ChannelsFlag,
			&config.BitBudgetFlag,
			&config.MaxBitsFlag,
			&config.ModelsFlag,
			&config.OutputFlag,
			&config.LogLevelFlag,
		},
		Action: run,
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitCodeFor(err))
	}
}

// usageError marks an error that should cause exit code 2 (bad
// invocation) rather than 1 (I/O/decode failure).
type usageError struct{ err error }

func (u usageError) Error() string { return u.err.Error() }
func (u usageError) Unwrap() error { return u.err }

func exitCodeFor(err error) int {
	var u usageError
	if errors.As(err, &u) {
		return 2
	}
	return 1
}

func run(ctx *cli.Context) error {
	cfg, err := config.NewConfig(ctx)
	if err != nil {
		return usageError{err}
	}

	log := logger.NewLogger(cfg.LogLevel, "autoquant")

	file, err := os.Open(cfg.Input)
	if err != nil {
		return errors.Wrapf(err, "opening input %s", cfg.Input)
	}
	defer file.Close()

	channels, err := imagesrc.Channels(file)
	if err != nil {
		return errors.Wrapf(err, "decoding input %s", cfg.Input)
	}
	log.Infof("decoded %d channels from %s", len(channels), cfg.Input)

	if len(cfg.Channels) > 0 {
		channels, err = selectChannels(channels, cfg.Channels)
		if err != nil {
			return usageError{err}
		}
	}

	models, err := parseModels(cfg.Models)
	if err != nil {
		return usageError{err}
	}

	result, err := quant.Run(channels, models, cfg.MaxBits, cfg.BitBudget)
	if err != nil {
		return errors.Wrap(err, "fitting quantizer")
	}

	allocation := result.BitAllocation(cfg.BitBudget - 1)
	printAllocationTable(result, allocation)

	if cfg.Output != "" {
		if err := writeReport(cfg.Output, result, allocation); err != nil {
			return errors.Wrapf(err, "writing report to %s", cfg.Output)
		}
		log.Infof("wrote report to %s", cfg.Output)
	}
	return nil
}

// parseModels turns the --model flag's raw names into fit.Model values.
// An empty names slice means "all models" and is passed through unchanged,
// since quant.Run treats a nil/empty slice as fit.AllModels.
func parseModels(names []string) ([]fit.Model, error) {
	if len(names) == 0 {
		return nil, nil
	}
	models := make([]fit.Model, len(names))
	for i, name := range names {
		m, err := fit.ParseModel(name)
		if err != nil {
			return nil, err
		}
		models[i] = m
	}
	return models, nil
}

// selectChannels restricts a decoded channel map to the requested names,
// failing if a requested name was not present in the decoded image.
func selectChannels(channels map[string][]float64, names []string) (map[string][]float64, error) {
	out := make(map[string][]float64, len(names))
	for _, name := range names {
		samples, ok := channels[name]
		if !ok {
			return nil, errors.Newf("channel %q not present in input (have %v)", name, imagesrc.ChannelNames)
		}
		out[name] = samples
	}
	return out, nil
}

func printAllocationTable(result *quant.Result, allocation map[string]int) {
	t := table.NewWriter()
	t.AppendHeader(table.Row{"channel", "bits", "error"})

	total := 0
	for _, ch := range result.Channels {
		bits := allocation[ch.Name]
		total += bits
		t.AppendRow(table.Row{ch.Name, bits, ch.BestCurve[bits]})
	}
	t.AppendFooter(table.Row{"total", total, ""})
	fmt.Println(t.Render())
}

func writeReport(path string, result *quant.Result, allocation map[string]int) error {
	channels := make([]report.ChannelReport, len(result.Channels))
	for i, ch := range result.Channels {
		names := make([]string, len(ch.BestModels))
		for b, m := range ch.BestModels {
			names[b] = m.String()
		}
		channels[i] = report.ChannelReport{
			Name:       ch.Name,
			BestModels: names,
			BestCurve:  ch.BestCurve,
		}
	}
	return report.Write(path, &report.Report{
		Channels:    channels,
		MergedCurve: result.Allocation.Curve(),
		Allocation:  allocation,
	})
}
