package spacecurve

// GridSpec is a validated (dimension, size) pair for an N-dimensional grid
// of side length size, along with values derived from it. It is the sole
// validation gate for every curve constructor: curves accept only an
// already-validated GridSpec (or build one internally via New/PowerOfTwo)
// and never re-check what GridSpec already guarantees.
type GridSpec struct {
	dimension    uint32
	size         uint32
	length       uint32
	order        uint32
	bitsPerAxis  uint32
	hasPowerInfo bool
}

// NewGridSpec validates dimension and size for a grid with no power-of-two
// requirement. dimension must be >= 1, size must be >= 1, and size^dimension
// must fit in a uint32.
func NewGridSpec(dimension, size uint32) (GridSpec, error) {
	if dimension == 0 {
		return GridSpec{}, shapeErrorf("dimension must be >= 1")
	}
	if size == 0 {
		return GridSpec{}, sizeErrorf("size must be >= 1")
	}

	length, ok := checkedPow(size, dimension)
	if !ok {
		return GridSpec{}, sizeErrorf("curve length (size^dimension) exceeds uint32 bounds")
	}

	return GridSpec{dimension: dimension, size: size, length: length}, nil
}

// NewGridSpecPowerOfTwo validates dimension and size, additionally
// requiring size to be a positive power of two, and populates Order and
// BitsPerAxis from size.TrailingZeros.
func NewGridSpecPowerOfTwo(dimension, size uint32) (GridSpec, error) {
	if size == 0 || !isPowerOfTwo(size) {
		return GridSpec{}, sizeErrorf("size must be a positive power of two")
	}

	spec, err := NewGridSpec(dimension, size)
	if err != nil {
		return GridSpec{}, err
	}

	order := trailingZeros32(size)
	spec.order = order
	spec.bitsPerAxis = order
	spec.hasPowerInfo = true
	return spec, nil
}

// RequireIndexBitsLt returns an error unless bitsPerAxis*dimension < limit.
// It is a no-op (always succeeds) when the spec has no power-of-two bit
// width information.
func (g GridSpec) RequireIndexBitsLt(limit uint32) error {
	if !g.hasPowerInfo {
		return nil
	}
	total := uint64(g.bitsPerAxis) * uint64(g.dimension)
	if total >= uint64(limit) {
		return sizeErrorf("index requires %d bits; must be < %d for uint32 indices", total, limit)
	}
	return nil
}

// Dimension returns the number of dimensions in the grid.
func (g GridSpec) Dimension() uint32 { return g.dimension }

// Size returns the side length per dimension.
func (g GridSpec) Size() uint32 { return g.size }

// Length returns the total number of points in the grid (size^dimension).
func (g GridSpec) Length() uint32 { return g.length }

// Order returns log2(size) and ok=true when size is a power of two and the
// spec was built with NewGridSpecPowerOfTwo; otherwise ok is false.
func (g GridSpec) Order() (order uint32, ok bool) {
	return g.order, g.hasPowerInfo
}

// BitsPerAxis returns the bit width per coordinate and ok=true under the
// same condition as Order.
func (g GridSpec) BitsPerAxis() (bits uint32, ok bool) {
	return g.bitsPerAxis, g.hasPowerInfo
}

func isPowerOfTwo(x uint32) bool {
	return x != 0 && x&(x-1) == 0
}

func trailingZeros32(x uint32) uint32 {
	if x == 0 {
		return 32
	}
	var n uint32
	for x&1 == 0 {
		x >>= 1
		n++
	}
	return n
}

// checkedPow computes base^exp, reporting overflow via ok=false.
func checkedPow(base, exp uint32) (result uint32, ok bool) {
	result = 1
	for i := uint32(0); i < exp; i++ {
		next, mulOK := checkedMul(result, base)
		if !mulOK {
			return 0, false
		}
		result = next
	}
	return result, true
}

// checkedMul multiplies a and b, reporting overflow via ok=false.
func checkedMul(a, b uint32) (result uint32, ok bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	result = a * b
	if result/a != b {
		return 0, false
	}
	return result, true
}
