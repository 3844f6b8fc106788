package spacecurve

// Hilbert is the classic Hilbert space-filling curve. It requires a
// power-of-two side length. The 2D case uses the canonical rotation-
// reflection recursion; N >= 3 uses the general Butz/Skilling transpose
// algorithm (see bitops.go), which specializes correctly to the same
// family of curves; N = 1 is the identity. Both require order*dimension < 32 so indices fit in a
// uint32.
type Hilbert struct {
	dimension uint32
	order     uint32
	size      uint32
	length    uint32
}

// NewHilbert constructs a Hilbert curve over a size^dimension hypercube.
func NewHilbert(dimension, size uint32) (*Hilbert, error) {
	spec, err := NewGridSpecPowerOfTwo(dimension, size)
	if err != nil {
		return nil, err
	}
	order, _ := spec.Order()
	if uint64(order)*uint64(dimension) >= 32 {
		return nil, sizeErrorf("Hilbert requires order * dimension < 32 for uint32 indices")
	}
	return &Hilbert{
		dimension: spec.Dimension(),
		order:     order,
		size:      spec.Size(),
		length:    spec.Length(),
	}, nil
}

// Name implements SpaceCurve.
func (h *Hilbert) Name() string { return "Hilbert" }

// Info implements SpaceCurve.
func (h *Hilbert) Info() string {
	return "Recursive rotation/reflection curve with strong locality.\n" +
		"Requires a power-of-two side length; the standard choice when\n" +
		"neighborhood preservation matters more than raw throughput."
}

// Dimensions implements SpaceCurve.
func (h *Hilbert) Dimensions() uint32 { return h.dimension }

// Length implements SpaceCurve.
func (h *Hilbert) Length() uint32 { return h.length }

// Point implements SpaceCurve.
func (h *Hilbert) Point(index uint32) Point {
	requireIndexInRange(index, h.length, h.Name())
	return NewPointWithDimension(int(h.dimension), h.pointCoords(index))
}

// Index implements SpaceCurve.
func (h *Hilbert) Index(p Point) uint32 {
	requirePointDimension(p, h.dimension, h.Name())
	requirePointInRange(p, h.size, h.Name())
	return h.indexCoords(p.Coords())
}

func (h *Hilbert) pointCoords(index uint32) []uint32 {
	switch {
	case h.dimension == 1:
		return []uint32{index}
	case h.order == 0:
		return make([]uint32, h.dimension)
	case h.dimension == 2:
		return hilbert2DCoord(h.order, index)
	default:
		x := unpackTransposeMSB(h.dimension, h.order, index)
		transposeToAxes(x, h.order)
		return x
	}
}

func (h *Hilbert) indexCoords(coords []uint32) uint32 {
	switch {
	case h.dimension == 1:
		return coords[0]
	case h.order == 0:
		return 0
	case h.dimension == 2:
		v := append([]uint32(nil), coords...)
		return hilbert2DIndex(h.order, v)
	default:
		x := append([]uint32(nil), coords...)
		axesToTranspose(x, h.order)
		return packTransposeMSB(x, h.order)
	}
}
