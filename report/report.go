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

// Package report writes and reads the one-shot gzipped JSON artifact a run
// may optionally produce. Nothing written here is read back by a later
// invocation; it exists purely for downstream tooling.
package report

import (
	"encoding/json"
	"io"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/klauspost/compress/gzip"
)

// ChannelReport is one channel's fitted results: the best model name per
// bit count and its error curve.
type ChannelReport struct {
	Name       string    `json:"name"`
	BestModels []string  `json:"best_models"`
	BestCurve  []float64 `json:"best_curve"`
}

// Report is the complete artifact for a run: per-channel results plus the
// merged bit allocation at the configured budget.
type Report struct {
	Channels   []ChannelReport `json:"channels"`
	MergedCurve []float64      `json:"merged_curve"`
	Allocation map[string]int  `json:"allocation"`
}

// Write gzip-compresses report as JSON into path. It refuses to overwrite
// an existing file, matching the upstream file-writer collaborator's
// overwrite policy.
func Write(path string, report *Report) (err error) {
	if _, statErr := os.Stat(path); statErr == nil {
		return errors.Newf("report: file %s already exists", path)
	}

	file, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "creating report file %s", path)
	}
	defer func() {
		err = errors.CombineErrors(err, file.Close())
	}()

	gz := gzip.NewWriter(file)
	defer func() {
		err = errors.CombineErrors(err, gz.Close())
	}()

	if encErr := json.NewEncoder(gz).Encode(report); encErr != nil {
		return errors.Wrapf(encErr, "encoding report for %s", path)
	}
	return nil
}

// Read decompresses and decodes a report previously written by Write.
func Read(path string) (*Report, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "opening report file %s", path)
	}
	defer file.Close()

	gz, err := gzip.NewReader(file)
	if err != nil {
		return nil, errors.Wrapf(err, "reading gzip stream from %s", path)
	}
	defer gz.Close()

	var report Report
	if err := json.NewDecoder(gz).Decode(&report); err != nil {
		return nil, errors.Wrapf(err, "decoding report from %s", path)
	}
	return &report, nil
}

// ReadFrom decodes a gzipped JSON report directly from an already-open
// reader, for callers that hold the stream themselves (tests, pipes).
func ReadFrom(r io.Reader) (*Report, error) {
	gz, err := gzip.NewReader(r)
	if err != nil {
		return nil, errors.Wrap(err, "reading gzip stream")
	}
	defer gz.Close()

	var report Report
	if err := json.NewDecoder(gz).Decode(&report); err != nil {
		return nil, errors.Wrap(err, "decoding report")
	}
	return &report, nil
}
