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

// Package imagesrc is the sample-source external collaborator (§6): it
// decodes a WebP-encoded raw sensor capture and de-interleaves its 2x2
// Bayer mosaic into one raw sample slice per channel, normalized to the
// sensor's own maximum so each slice lands in [0,1] before C2 sees it.
package imagesrc

import (
	"image"
	"io"

	"github.com/cockroachdb/errors"
	"github.com/deepteams/webp"
)

// ChannelNames are the four Bayer positions in row-major (x%2, y%2) order:
// the original Rust implementation's channel indices 0..3.
var ChannelNames = []string{"r", "g1", "g2", "b"}

// Channels de-interleaves a Bayer-mosaic image into one raw sample slice
// per channel, in ChannelNames order, each value the sensor's luma
// reading divided by the observed maximum across that channel.
func Channels(r io.Reader) (map[string][]float64, error) {
	img, err := webp.Decode(r)
	if err != nil {
		return nil, errors.Wrap(err, "decoding webp image")
	}
	return channelsFromImage(img), nil
}

func channelsFromImage(img image.Image) map[string][]float64 {
	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()

	raw := make([][]float64, 4)
	for i := range raw {
		raw[i] = make([]float64, 0, (width*height)/4+1)
	}

	for y := 0; y < height-1; y += 2 {
		for x := 0; x < width-1; x += 2 {
			for ch := 0; ch < 4; ch++ {
				xoffset := ch % 2
				yoffset := ch / 2
				raw[ch] = append(raw[ch], luma(img, bounds.Min.X+x+xoffset, bounds.Min.Y+y+yoffset))
			}
		}
	}

	out := make(map[string][]float64, 4)
	for ch, name := range ChannelNames {
		out[name] = normalize(raw[ch])
	}
	return out
}

// luma returns a pixel's 16-bit grayscale reading, the stand-in for a raw
// sensor's per-photosite integer value.
func luma(img image.Image, x, y int) float64 {
	r, g, b, _ := img.At(x, y).RGBA()
	return float64(r+g+b) / 3
}

// normalize divides every sample by the slice's observed maximum, so
// downstream CDF construction (C2) sees values already scaled toward
// [0,1]; a channel of all-zero samples is left untouched to avoid a
// division by zero.
func normalize(samples []float64) []float64 {
	max := 0.0
	for _, v := range samples {
		if v > max {
			max = v
		}
	}
	if max == 0 {
		return samples
	}
	out := make([]float64, len(samples))
	for i, v := range samples {
		out[i] = v / max
	}
	return out
}
