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

// Package render builds go-echarts line charts for CDFs, per-model error
// curves, and the merged bit-allocation curve the orchestrator produces.
package render

import (
	"io"

	"github.com/0xsoniclabs/autoquant/distribution"
	"github.com/0xsoniclabs/autoquant/errorcurve"
	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"
)

// maxCDFPlotPoints bounds how many points an echarts payload carries for a
// CDF series; larger CDFs are simplified before charting.
const maxCDFPlotPoints = 512

func convertPoints(data [][2]float64) []opts.LineData {
	items := make([]opts.LineData, 0, len(data))
	for _, pair := range data {
		items = append(items, opts.LineData{Value: pair})
	}
	return items
}

func baseLine(title, subtitle string) *charts.Line {
	chart := charts.NewLine()
	chart.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Theme: types.ThemeChalk}),
		charts.WithToolboxOpts(opts.Toolbox{
			Show: true,
			Feature: &opts.ToolBoxFeature{
				SaveAsImage: &opts.ToolBoxFeatureSaveAsImage{Show: true, Title: "Save"},
				DataZoom:    &opts.ToolBoxFeatureDataZoom{Show: true},
			},
		}),
		charts.WithLegendOpts(opts.Legend{Show: true}),
		charts.WithTitleOpts(opts.Title{Title: title, Subtitle: subtitle}),
	)
	return chart
}

// CDFChart renders a channel's empirical CDF as a line chart, simplifying
// it first when it exceeds maxCDFPlotPoints so the echarts payload stays
// small for large samples.
func CDFChart(channel string, cdf distribution.CDF) *charts.Line {
	plotted := distribution.Simplify(cdf, maxCDFPlotPoints)
	chart := baseLine("Empirical CDF", channel)
	chart.AddSeries(channel, convertPoints(plotted.AsPairs()))
	return chart
}

// ErrorCurveChart renders one line per model's error curve, indexed by bit
// count, so the curves can be compared visually before a model is chosen.
func ErrorCurveChart(channel string, curves []errorcurve.ModelCurve) *charts.Line {
	chart := baseLine("Quantization Error by Bit Count", channel)
	for _, c := range curves {
		series := make([][2]float64, len(c.Curve))
		for b, v := range c.Curve {
			series[b] = [2]float64{float64(b), v}
		}
		chart.AddSeries(c.Name, convertPoints(series))
	}
	return chart
}

// AllocationChart renders the merged, cross-channel error curve produced
// by the bit packer, one point per achievable total bit budget.
func AllocationChart(merged []float64) *charts.Line {
	chart := baseLine("Packed Error vs. Total Bit Budget", "")
	series := make([][2]float64, len(merged))
	for k, v := range merged {
		series[k] = [2]float64{float64(k), v}
	}
	chart.AddSeries("merged", convertPoints(series))
	return chart
}

// Write renders chart to w as a standalone HTML page.
func Write(w io.Writer, chart *charts.Line) error {
	return chart.Render(w)
}
