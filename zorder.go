package spacecurve

// ZOrder is the Z-order (Morton) curve: it interleaves the bits of each
// coordinate to form a single key.
type ZOrder struct {
	dimension uint32
	bitwidth  uint32
	length    uint32
}

// NewZOrder constructs a Z-order curve over a size^dimension hypercube.
// size must be a positive power of two, and bitwidth*dimension must be
// less than 32 so indices fit in a uint32.
func NewZOrder(dimension, size uint32) (*ZOrder, error) {
	spec, err := NewGridSpecPowerOfTwo(dimension, size)
	if err != nil {
		return nil, err
	}
	if err := spec.RequireIndexBitsLt(32); err != nil {
		return nil, err
	}
	bits, _ := spec.BitsPerAxis()
	return &ZOrder{
		dimension: spec.Dimension(),
		bitwidth:  bits,
		length:    spec.Length(),
	}, nil
}

// Name implements SpaceCurve.
func (z *ZOrder) Name() string { return "Z-order (Morton)" }

// Info implements SpaceCurve.
func (z *ZOrder) Info() string {
	return "Interleaves coordinate bits to form keys (Morton code).\n" +
		"Extremely fast and pairs well with quad/oct-trees, but preserves\n" +
		"neighborhood worse than Hilbert/H-curve and may exhibit long jumps."
}

// Dimensions implements SpaceCurve.
func (z *ZOrder) Dimensions() uint32 { return z.dimension }

// Length implements SpaceCurve.
func (z *ZOrder) Length() uint32 { return z.length }

// Point implements SpaceCurve.
func (z *ZOrder) Point(index uint32) Point {
	requireIndexInRange(index, z.length, z.Name())
	return NewPointWithDimension(int(z.dimension), deinterleaveLSB(z.dimension, z.bitwidth, index))
}

// Index implements SpaceCurve.
func (z *ZOrder) Index(p Point) uint32 {
	requirePointDimension(p, z.dimension, z.Name())
	side := uint32(1) << z.bitwidth
	requirePointInRange(p, side, z.Name())
	return interleaveLSB(p.Coords(), z.bitwidth)
}
