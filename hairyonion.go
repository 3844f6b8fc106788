package spacecurve

// HairyOnion is a continuous N-dimensional generalization of Onion: it
// relaxes the strict L-infinity layering that Onion uses (impossible to
// keep continuous once N >= 3) by tiling the space with continuous 2D
// onion spirals, connected tile-to-tile in snake order. It places no
// power-of-two or dimension restriction beyond GridSpec's own.
type HairyOnion struct {
	dimension uint32
	size      uint32
	length    uint32
}

// NewHairyOnion constructs a Hairy Onion curve over a size^dimension grid.
func NewHairyOnion(dimension, size uint32) (*HairyOnion, error) {
	spec, err := NewGridSpec(dimension, size)
	if err != nil {
		return nil, err
	}
	return &HairyOnion{dimension: spec.Dimension(), size: spec.Size(), length: spec.Length()}, nil
}

// Name implements SpaceCurve.
func (h *HairyOnion) Name() string { return "Hairy Onion" }

// Info implements SpaceCurve.
func (h *HairyOnion) Info() string {
	return "Tiles the grid with continuous 2D Onion spirals connected in\n" +
		"snake order across each pair of dimensions. Fully continuous\n" +
		"regardless of dimension count, at the cost of the strict\n" +
		"layer-by-layer structure Onion has in low dimensions."
}

// Dimensions implements SpaceCurve.
func (h *HairyOnion) Dimensions() uint32 { return h.dimension }

// Length implements SpaceCurve.
func (h *HairyOnion) Length() uint32 { return h.length }

// Point implements SpaceCurve.
func (h *HairyOnion) Point(index uint32) Point {
	requireIndexInRange(index, h.length, h.Name())
	return NewPointWithDimension(int(h.dimension), hairyOnionPoint(h.dimension, h.size, index))
}

// Index implements SpaceCurve.
func (h *HairyOnion) Index(p Point) uint32 {
	requirePointDimension(p, h.dimension, h.Name())
	requirePointInRange(p, h.size, h.Name())
	return hairyOnionIndex(h.dimension, h.size, p.Coords())
}

// hairyOnionIndex recursively peels off 2D tiles, combining each with a
// snake-reversal chosen by the parity of the index of the remaining
// (n-2)-D tile so that adjacent tiles connect continuously.
func hairyOnionIndex(n, l uint32, p []uint32) uint32 {
	if l <= 1 || n == 0 {
		return 0
	}
	if n == 1 {
		return p[0]
	}
	if n == 2 {
		return onionIndex2D(l, p)
	}

	p2D := p[0:2]
	pRest := p[2:]

	indexRest := hairyOnionIndex(n-2, l, pRest)
	index2D := onionIndex2D(l, p2D)
	volume2D := l * l

	index2DEffective := index2D
	if indexRest%2 == 1 {
		index2DEffective = (volume2D - 1) - index2D
	}

	return indexRest*volume2D + index2DEffective
}

// hairyOnionPoint is the inverse of hairyOnionIndex.
func hairyOnionPoint(n, l, index uint32) []uint32 {
	if n == 0 {
		return []uint32{}
	}
	if l == 1 {
		return make([]uint32, n)
	}
	if n == 1 {
		return []uint32{index}
	}
	if n == 2 {
		return onionPoint2D(l, index)
	}

	volume2D := l * l
	indexRest := index / volume2D
	index2DEffective := index % volume2D

	pRest := hairyOnionPoint(n-2, l, indexRest)

	index2D := index2DEffective
	if indexRest%2 == 1 {
		index2D = (volume2D - 1) - index2DEffective
	}

	p2D := onionPoint2D(l, index2D)
	return append(p2D, pRest...)
}
