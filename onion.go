package spacecurve

// OnionCurve peels an N-dimensional hypercube layer by layer, like an
// onion: the outermost L-infinity shell is enumerated first, then the
// next shell inward, and so on. Side length 2 uses a continuous Gray-code
// generalization; larger side lengths in more than two dimensions cannot
// be fully continuous (a shell's last cell and the next shell's first
// cell are not always grid-adjacent), but each shell still maximizes
// internal locality by using an onion ordering on its half-faces rather
// than a row-major stripe.
//
// See https://arxiv.org/abs/1801.07399 for the L-infinity shell
// construction this curve is built from.
type OnionCurve struct {
	dimension uint32
	size      uint32
	length    uint32
}

// NewOnionCurve constructs an Onion curve over a size^dimension grid.
func NewOnionCurve(dimension, size uint32) (*OnionCurve, error) {
	spec, err := NewGridSpec(dimension, size)
	if err != nil {
		return nil, err
	}
	if size == 2 && dimension > 31 {
		return nil, sizeErrorf("for size 2, dimension must be <= 31 (2^dimension must fit in uint32)")
	}
	return &OnionCurve{dimension: spec.Dimension(), size: spec.Size(), length: spec.Length()}, nil
}

// Name implements SpaceCurve.
func (o *OnionCurve) Name() string { return "Onion" }

// Info implements SpaceCurve.
func (o *OnionCurve) Info() string {
	return "Peels L-infinity shells from the outside in. Size 2 uses a\n" +
		"continuous Gray-code generalization; larger sizes in more than\n" +
		"two dimensions are discontinuous between shells but maximize\n" +
		"locality within each shell."
}

// Dimensions implements SpaceCurve.
func (o *OnionCurve) Dimensions() uint32 { return o.dimension }

// Length implements SpaceCurve.
func (o *OnionCurve) Length() uint32 { return o.length }

// Point implements SpaceCurve.
func (o *OnionCurve) Point(index uint32) Point {
	requireIndexInRange(index, o.length, o.Name())
	return NewPointWithDimension(int(o.dimension), onionPointND(o.dimension, o.size, index))
}

// Index implements SpaceCurve.
func (o *OnionCurve) Index(p Point) uint32 {
	requirePointDimension(p, o.dimension, o.Name())
	requirePointInRange(p, o.size, o.Name())
	return onionIndexND(o.dimension, o.size, p.Coords())
}
