// Copyright 2024 Dominik Honnef and contributors
// SPDX-License-Identifier: Apache-2.0 OR MIT

package glcompute

import "honnef.co/go/glcompute/glmath"

// Size is the size of a 1D, 2D or 3D object in elements, where a single
// element consists of 4 values.
type Size interface {
	// NumElements returns the product of the size's extents.
	NumElements() uint64
	isSize()
}

// Size1D is the element count of a 1D object.
type Size1D uint32

// Size2D is the extent of a 2D object.
type Size2D glmath.Uint2

// Size3D is the extent of a 3D object.
type Size3D glmath.Uint3

func (s Size1D) NumElements() uint64 { return uint64(s) }
func (s Size2D) NumElements() uint64 { return uint64(s.X) * uint64(s.Y) }
func (s Size3D) NumElements() uint64 { return uint64(s.X) * uint64(s.Y) * uint64(s.Z) }

func (Size1D) isSize() {}
func (Size2D) isSize() {}
func (Size3D) isSize() {}

// NumElements returns the number of elements a size describes.
func NumElements(size Size) uint64 {
	return size.NumElements()
}
