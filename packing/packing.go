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

// Package packing implements C9: the pairwise-associative dynamic-program
// that merges per-channel error curves into a single curve giving, at
// every total bit budget, the minimum summed error and the per-channel
// split that achieves it.
package packing

import (
	"math"

	"github.com/cockroachdb/errors"
)

// ErrInsufficientBudget is returned when the requested merged-curve length
// exceeds the total number of levels the channels can jointly supply.
var ErrInsufficientBudget = errors.New("packing: requested bit budget exceeds combined channel capacity")

// ErrorFunction is a single channel's error curve, indexed by bit count.
type ErrorFunction []float64

// at applies the out-of-range indexing rule from SPEC_FULL.md §4.9: below
// zero reads as a free allocation of 0 error, at-or-beyond the curve's end
// clamps to the last (monotone-extrapolated) entry.
func at(f ErrorFunction, i int) float64 {
	switch {
	case i < 0:
		return 0
	case i >= len(f):
		return f[len(f)-1]
	default:
		return f[i]
	}
}

// node is one level of the pairwise-merge tree. Leaves hold a single
// channel's curve; internal nodes hold the merged curve and, for each
// index k, the argmin split between their two children.
type node struct {
	curve ErrorFunction
	split []int
	left  *node
	right *node
}

func leaf(curve ErrorFunction) *node {
	return &node{curve: curve}
}

// push computes the merged curve of length n from two operand curves:
// merged[k] = min over i in [0, min(k, len(a)-1)] of a.at(i) + b.at(k-i),
// and records the argmin i as the split used for reconstruction. This is
// the O(n * len(a)) inner loop that makes the whole merge O(N^2).
func push(a, b ErrorFunction, n int) (ErrorFunction, []int) {
	merged := make(ErrorFunction, n)
	splits := make([]int, n)
	for k := 0; k < n; k++ {
		best := math.Inf(1)
		bestI := 0
		upper := k
		if upper > len(a)-1 {
			upper = len(a) - 1
		}
		for i := 0; i <= upper; i++ {
			v := at(a, i) + at(b, k-i)
			if v < best {
				best = v
				bestI = i
			}
		}
		merged[k] = best
		splits[k] = bestI
	}
	return merged, splits
}

// Allocation is the result of merging a set of channel error curves: a
// merged curve plus enough of the merge tree to reconstruct, for any
// index, the per-channel bit counts that achieve it.
type Allocation struct {
	root     *node
	channels int
}

// Curve returns the merged error curve, M[k] for k in [0, len(Curve)).
func (a *Allocation) Curve() ErrorFunction {
	return a.root.curve
}

// Channels reports how many channel curves were merged into this
// allocation.
func (a *Allocation) Channels() int {
	return a.channels
}

// Reconstruct returns the per-channel bit counts that achieve Curve()[k],
// in the same channel order the curves were passed to Merge. Each count is
// capped at its channel curve's last index, so where the merge read a
// channel's curve past its end (the clamping rule of at), the counts sum to
// less than k.
func (a *Allocation) Reconstruct(k int) []int {
	return reconstruct(a.root, k)
}

func reconstruct(n *node, k int) []int {
	if n.left == nil && n.right == nil {
		if k < 0 {
			k = 0
		}
		if k >= len(n.curve) {
			k = len(n.curve) - 1
		}
		return []int{k}
	}
	i := n.split[k]
	left := reconstruct(n.left, i)
	right := reconstruct(n.right, k-i)
	return append(left, right...)
}

// Merge builds the pairwise-merge tree over channels and produces a
// merged curve of length n. It returns ErrInsufficientBudget if the
// channels' curve lengths sum to less than n.
func Merge(channels []ErrorFunction, n int) (*Allocation, error) {
	if len(channels) == 0 {
		return nil, errors.New("packing: no channels to merge")
	}
	total := 0
	for _, c := range channels {
		total += len(c)
	}
	if total < n {
		return nil, errors.Wrapf(ErrInsufficientBudget, "need %d combined levels, have %d", n, total)
	}

	nodes := make([]*node, len(channels))
	for i, c := range channels {
		nodes[i] = leaf(c)
	}

	for len(nodes) > 1 {
		next := make([]*node, 0, (len(nodes)+1)/2)
		for i := 0; i+1 < len(nodes); i += 2 {
			a, b := nodes[i], nodes[i+1]
			curve, splits := push(a.curve, b.curve, n)
			next = append(next, &node{curve: curve, split: splits, left: a, right: b})
		}
		if len(nodes)%2 == 1 {
			next = append(next, nodes[len(nodes)-1])
		}
		nodes = next
	}
	return &Allocation{root: nodes[0], channels: len(channels)}, nil
}
