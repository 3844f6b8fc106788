// Copyright ©2024 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//
// Adapted from gonum.org/v1/gonum/spatial/curve's Hilbert2D: the rotation
// recursion is the same algorithm (see hilbert2DRot/hilbert2DIndex/
// hilbert2DCoord below), retargeted from int/[]int to uint32/Point and
// wired into this package's GridSpec-validated Hilbert type instead of a
// bare Order field.

package spacecurve

// hilbert2DIndex computes the linear Hilbert index of v (length 2, each
// coordinate in [0, 2^order)), mutating v in the process. This is the
// canonical 2D rotation-reflection recursion.
func hilbert2DIndex(order uint32, v []uint32) uint32 {
	var d uint32
	for n := int(order) - 1; n >= 0; n-- {
		rx := (v[0] >> uint32(n)) & 1
		ry := (v[1] >> uint32(n)) & 1
		rd := ry<<1 | (ry ^ rx)
		d += rd << (2 * uint32(n))
		hilbert2DRot(order, v, rd)
	}
	return d
}

// hilbert2DCoord is the inverse of hilbert2DIndex.
func hilbert2DCoord(order uint32, pos uint32) []uint32 {
	v := make([]uint32, 2)
	for n := uint32(0); n < order; n++ {
		e := pos & 3
		hilbert2DRot(n, v, e)

		ry := e >> 1
		rx := (e>>0 ^ e>>1) & 1
		v[0] += rx << n
		v[1] += ry << n
		pos >>= 2
	}
	return v
}

// hilbert2DRot applies the quadrant rotation/reflection for digit d at
// bit-width n.
func hilbert2DRot(n uint32, v []uint32, d uint32) {
	switch d {
	case 0:
		v[0], v[1] = v[1], v[0]
	case 3:
		mask := (uint32(1) << n) - 1
		v[0], v[1] = v[1]^mask, v[0]^mask
	}
}
