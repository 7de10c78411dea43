// Copyright 2024 Dominik Honnef and contributors
// SPDX-License-Identifier: Apache-2.0 OR MIT

// Package glmath provides the unsigned extent vectors and integer
// arithmetic used by the descriptor model.
package glmath

import "golang.org/x/exp/constraints"

// Uint2 is a two-dimensional extent.
type Uint2 struct {
	X uint32
	Y uint32
}

// Uint3 is a three-dimensional extent.
type Uint3 struct {
	X uint32
	Y uint32
	Z uint32
}

// DivideRoundUp divides n by div, rounding up.
func DivideRoundUp[T constraints.Integer](n, div T) T {
	return (n + div - 1) / div
}

// AlignByN rounds n up to the nearest multiple of alignment.
func AlignByN[T constraints.Integer](n, alignment T) T {
	return DivideRoundUp(n, alignment) * alignment
}
