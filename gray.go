package spacecurve

// Gray is a hypercube traversal using the binary reflected Gray code
// (BRGC): adjacent linear indices produce points that differ by one step
// in exactly one coordinate.
type Gray struct {
	dimension   uint32
	size        uint32
	bitsPerAxis uint32
	length      uint32
}

// NewGray constructs a Gray curve over a size^dimension hypercube. size
// must be a positive power of two, and bitsPerAxis*dimension must be less
// than 32.
func NewGray(dimension, size uint32) (*Gray, error) {
	spec, err := NewGridSpecPowerOfTwo(dimension, size)
	if err != nil {
		return nil, err
	}
	if err := spec.RequireIndexBitsLt(32); err != nil {
		return nil, err
	}
	bits, _ := spec.BitsPerAxis()
	return &Gray{
		dimension:   spec.Dimension(),
		size:        spec.Size(),
		bitsPerAxis: bits,
		length:      spec.Length(),
	}, nil
}

// Name implements SpaceCurve.
func (g *Gray) Name() string { return "Gray (BRGC)" }

// Info implements SpaceCurve.
func (g *Gray) Info() string {
	return "Hypercube traversal using Binary Reflected Gray Code so adjacent\n" +
		"indices differ by one bit. Requires power-of-two side lengths; fast,\n" +
		"but spatial locality is weaker than Hilbert/H-curve."
}

// Dimensions implements SpaceCurve.
func (g *Gray) Dimensions() uint32 { return g.dimension }

// Length implements SpaceCurve.
func (g *Gray) Length() uint32 { return g.length }

// Point implements SpaceCurve.
func (g *Gray) Point(index uint32) Point {
	requireIndexInRange(index, g.length, g.Name())
	grayIndex := grayCode(index)
	return NewPointWithDimension(int(g.dimension), deinterleaveLSB(g.dimension, g.bitsPerAxis, grayIndex))
}

// Index implements SpaceCurve.
func (g *Gray) Index(p Point) uint32 {
	requirePointDimension(p, g.dimension, g.Name())
	requirePointInRange(p, g.size, g.Name())
	grayIndex := interleaveLSB(p.Coords(), g.bitsPerAxis)
	return invGrayCode(grayIndex)
}
