// Package spacecurve implements bijections between a linear index and an
// N-dimensional integer grid point: Hilbert, Z-order (Morton), Gray (BRGC),
// H-curve, Scan (boustrophedon), Onion, and Hairy Onion.
//
// Every curve in this package satisfies the SpaceCurve interface and is
// reachable either directly (NewZOrder, NewGray, ...) or through the
// Registry by name (Construct("hilbert", dimension, size)). Callers
// outside this package — CLI renderers, GUI viewers, spatial indexes —
// are expected to consume curves only through SpaceCurve and the registry;
// see the sortkey subpackage for an example consumer.
package spacecurve

import "fmt"

// SpaceCurve is the capability every curve family in this package
// implements.
//
// Invariants and preconditions that apply to all implementations:
//   - Dimensions is fixed at construction and equals the arity every Point
//     passed to Index must have and every Point returned by Point has.
//   - Index expects a Point whose coordinates lie in [0, size) for the
//     curve's grid.
//   - Point expects index < Length().
//   - Constructors are responsible for validating dimensionality and
//     bounds (via GridSpec); callers must treat out-of-range inputs as a
//     programmer error. Implementations retain lightweight panics for
//     these cases rather than returning an error, matching the contract
//     that a validated curve's Point/Index never fail.
type SpaceCurve interface {
	// Name is a short, human-friendly identifier for this curve, for UI
	// display and logs.
	Name() string

	// Info is a concise, possibly multi-line description of the curve.
	Info() string

	// Dimensions is the number of axes this curve's points have.
	Dimensions() uint32

	// Length is the total number of points on the curve (size^dimensions).
	Length() uint32

	// Point returns the coordinates of the given linear index.
	Point(index uint32) Point

	// Index returns the linear index of the given point.
	Index(p Point) uint32
}

func requirePointDimension(p Point, dimension uint32, curveName string) {
	if uint32(p.Dim()) != dimension {
		panic(fmt.Sprintf("spacecurve: %s: point has %d dimensions, want %d", curveName, p.Dim(), dimension))
	}
}

func requirePointInRange(p Point, size uint32, curveName string) {
	for i := 0; i < p.Dim(); i++ {
		if p.At(i) >= size {
			panic(fmt.Sprintf("spacecurve: %s: coordinate %d=%d out of range [0,%d)", curveName, i, p.At(i), size))
		}
	}
}

func requireIndexInRange(index, length uint32, curveName string) {
	if index >= length {
		panic(fmt.Sprintf("spacecurve: %s: index %d out of range [0,%d)", curveName, index, length))
	}
}
