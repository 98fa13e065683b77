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

// Package logger builds the op/go-logging loggers shared across the
// fitting pipeline and CLI, and converts elapsed durations into
// hour/minute/second triples.
package logger

import (
	"os"
	"time"

	"github.com/op/go-logging"
)

var format = logging.MustStringFormatter(
	`%{color}%{time:15:04:05.000} %{shortfunc} [%{level:.4s}]%{color:reset} %{module}: %{message}`,
)

// NewLogger returns a logger scoped to module, with level parsed from a
// textual level name (e.g. "DEBUG", "INFO", "WARNING"). An unparsable
// level falls back to INFO rather than failing the caller, since the log
// level is cosmetic, never load-bearing for correctness.
func NewLogger(level string, module string) *logging.Logger {
	backend := logging.NewLogBackend(os.Stderr, "", 0)
	formatted := logging.NewBackendFormatter(backend, format)
	leveled := logging.AddModuleLevel(formatted)

	parsed, err := logging.LogLevel(level)
	if err != nil {
		parsed = logging.INFO
	}
	leveled.SetLevel(parsed, module)

	log := logging.MustGetLogger(module)
	log.SetBackend(leveled)
	return log
}

// ParseTime splits a duration into whole hours, minutes, and seconds.
func ParseTime(elapsed time.Duration) (hours, minutes, seconds uint32) {
	total := uint32(elapsed.Seconds())
	hours = total / 3600
	minutes = (total % 3600) / 60
	seconds = total % 60
	return hours, minutes, seconds
}
