// Package sortkey orders bounded spatial items along any curve registered
// in the root spacecurve package, generalizing the single-curve pivot
// helper gonum's spatial/rtree package uses for Hilbert R-tree bulk
// loading (spatial/rtree/hilbert.go's HilbertCurvePivot) to every curve
// family this module implements.
//
// Reducing a multi-dimensional bounding box to a scalar sort key is the
// classic trick behind Hilbert R-tree bulk loading and packing: quantize
// each item's center into the curve's grid, look up its linear index, and
// sort by that index. Items close together on the curve tend to be close
// together in space, which is what makes the resulting order a good
// starting point for grouping nearby items into tree nodes or storage
// pages.
package sortkey

import (
	"fmt"
	"sort"

	"github.com/cortesi/spacecurve"
)

// Bounded is a spatial item with an axis-aligned bounding box.
type Bounded interface {
	// Bounds returns the minimum and maximum corners of the item's
	// bounding box. Both slices must have the same length on every call
	// for a given Set.
	Bounds() (min, max []float64)
}

// Set is a mutable, indexable collection of Bounded items, modeled after
// sort.Interface plus random-access Get.
type Set interface {
	Len() int
	Get(i int) Bounded
	Swap(i, j int)
}

// Order sorts set in place by the linear index each item's bounding-box
// center receives along the named curve, after quantizing the whole
// set's extent onto a size^dimension grid (size = 2^order). It returns
// the midpoint index, a natural split point for bulk-loading a balanced
// spatial index the way HilbertCurvePivot does for gonum's R-tree.
//
// curveName must name a registered curve whose shape accepts
// (dimension, size) for dimension = len(set's bounds) and size = 1<<order;
// see spacecurve.CurveNames. order controls quantization precision: higher
// order distinguishes closer centers at the cost of a larger grid.
func Order(curveName string, order uint32, set Set) (pivot int, err error) {
	n := set.Len()
	if n < 2 {
		return 0, nil
	}

	dimension := uint32(len(firstBoundsMin(set)))
	size := uint32(1) << order

	curve, err := spacecurve.Construct(curveName, dimension, size)
	if err != nil {
		return 0, fmt.Errorf("sortkey: %w", err)
	}

	extent := boundingExtent(set)
	keys := make([]uint32, n)
	for i := 0; i < n; i++ {
		min, max := set.Get(i).Bounds()
		coords := quantizeCenter(extent, size, min, max)
		keys[i] = curve.Index(spacecurve.NewPoint(coords...))
	}

	sort.Sort(&bySortKey{set: set, keys: keys})

	return n / 2, nil
}

func firstBoundsMin(set Set) []float64 {
	min, _ := set.Get(0).Bounds()
	return min
}

// extent is the overall bounding box of every item in a Set.
type extent struct {
	min, max []float64
}

func boundingExtent(set Set) extent {
	min, max := set.Get(0).Bounds()
	e := extent{min: append([]float64(nil), min...), max: append([]float64(nil), max...)}
	for i := 1; i < set.Len(); i++ {
		bmin, bmax := set.Get(i).Bounds()
		for d := range e.min {
			if bmin[d] < e.min[d] {
				e.min[d] = bmin[d]
			}
			if bmax[d] > e.max[d] {
				e.max[d] = bmax[d]
			}
		}
	}
	return e
}

// quantizeCenter maps an item's bounding-box center into [0, size) grid
// coordinates relative to extent.
func quantizeCenter(e extent, size uint32, min, max []float64) []uint32 {
	coords := make([]uint32, len(min))
	for d := range coords {
		center := (min[d] + max[d]) / 2
		span := e.max[d] - e.min[d]

		var frac float64
		if span > 0 {
			frac = (center - e.min[d]) / span
		}

		q := uint32(frac * float64(size))
		if q >= size {
			q = size - 1
		}
		coords[d] = q
	}
	return coords
}

type bySortKey struct {
	set  Set
	keys []uint32
}

func (s *bySortKey) Len() int { return s.set.Len() }

func (s *bySortKey) Less(i, j int) bool { return s.keys[i] < s.keys[j] }

func (s *bySortKey) Swap(i, j int) {
	s.set.Swap(i, j)
	s.keys[i], s.keys[j] = s.keys[j], s.keys[i]
}
