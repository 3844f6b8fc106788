package spacecurve

// HCurve is a Hilbert-like curve built from the same Butz/Skilling
// transpose core as Hilbert (see bitops.go), but applied to axes taken in
// reverse order with each coordinate complemented (x -> size-1-x) before
// and after the transform. The complement-and-reverse step is a bijective
// involution on [0,size)^dimension, so composing it with the (already
// bijective) transpose core yields a distinct, still-bijective
// enumeration of the grid — a separate curve family from Hilbert proper,
// per spec's requirement that H-curve be "Hilbert-like using BRGC and an
// orientation transform" while having its own name/info and its own N>=2
// floor.
type HCurve struct {
	dimension uint32
	order     uint32
	size      uint32
	length    uint32
}

// NewHCurve constructs an H-curve over a size^dimension hypercube.
// dimension must be >= 2 (and < 32), size must be a power of two, and
// order*dimension must be less than 32.
func NewHCurve(dimension, size uint32) (*HCurve, error) {
	if dimension < 2 {
		return nil, shapeErrorf("dimension must be >= 2")
	}
	spec, err := NewGridSpecPowerOfTwo(dimension, size)
	if err != nil {
		return nil, err
	}
	if dimension >= 32 {
		return nil, shapeErrorf("dimension must be < 32")
	}
	order, _ := spec.Order()
	if uint64(order)*uint64(dimension) >= 32 {
		return nil, sizeErrorf("curve size exceeds uint32 limits (order * dimension must be < 32)")
	}
	return &HCurve{
		dimension: spec.Dimension(),
		order:     order,
		size:      spec.Size(),
		length:    spec.Length(),
	}, nil
}

// Name implements SpaceCurve.
func (h *HCurve) Name() string { return "H-curve" }

// Info implements SpaceCurve.
func (h *HCurve) Info() string {
	return "Hilbert-like traversal using BRGC and a reversed-axis orientation\n" +
		"transform. Requires at least 2 dimensions and a power-of-two side\n" +
		"length; offers similar locality characteristics to Hilbert."
}

// Dimensions implements SpaceCurve.
func (h *HCurve) Dimensions() uint32 { return h.dimension }

// Length implements SpaceCurve.
func (h *HCurve) Length() uint32 { return h.length }

// Point implements SpaceCurve.
func (h *HCurve) Point(index uint32) Point {
	requireIndexInRange(index, h.length, h.Name())
	return NewPointWithDimension(int(h.dimension), h.pointCoords(index))
}

// Index implements SpaceCurve.
func (h *HCurve) Index(p Point) uint32 {
	requirePointDimension(p, h.dimension, h.Name())
	requirePointInRange(p, h.size, h.Name())
	return h.indexCoords(p.Coords())
}

func (h *HCurve) pointCoords(index uint32) []uint32 {
	if h.order == 0 {
		return make([]uint32, h.dimension)
	}
	x := unpackTransposeMSB(h.dimension, h.order, index)
	transposeToAxes(x, h.order)
	return h.reverseComplement(x)
}

func (h *HCurve) indexCoords(coords []uint32) uint32 {
	if h.order == 0 {
		return 0
	}
	x := h.reverseComplement(coords)
	axesToTranspose(x, h.order)
	return packTransposeMSB(x, h.order)
}

// reverseComplement maps coords[k] to out[dim-1-k] = size-1-coords[k]; it
// is its own inverse.
func (h *HCurve) reverseComplement(coords []uint32) []uint32 {
	n := h.dimension
	out := make([]uint32, n)
	for k := uint32(0); k < n; k++ {
		out[n-1-k] = (h.size - 1) - coords[k]
	}
	return out
}
