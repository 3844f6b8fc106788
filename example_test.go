package spacecurve_test

import (
	"errors"
	"fmt"

	"github.com/cortesi/spacecurve"
)

// ExampleScan dumps the full point sequence of a 2-dimension, size-3 Scan
// curve: a boustrophedon raster that reverses direction at each row.
func ExampleScan() {
	s, err := spacecurve.NewScan(2, 3)
	if err != nil {
		panic(err)
	}
	for i := uint32(0); i < s.Length(); i++ {
		fmt.Println(s.Point(i))
	}
	// Output:
	// [0 0]
	// [1 0]
	// [2 0]
	// [2 1]
	// [1 1]
	// [0 1]
	// [0 2]
	// [1 2]
	// [2 2]
}

// ExampleZOrder dumps the full point sequence of a 2D, side-4 Z-order
// (Morton) curve.
func ExampleZOrder() {
	z, err := spacecurve.NewZOrder(2, 4)
	if err != nil {
		panic(err)
	}
	for i := uint32(0); i < z.Length(); i++ {
		fmt.Println(z.Point(i))
	}
	// Output:
	// [0 0]
	// [1 0]
	// [0 1]
	// [1 1]
	// [2 0]
	// [3 0]
	// [2 1]
	// [3 1]
	// [0 2]
	// [1 2]
	// [0 3]
	// [1 3]
	// [2 2]
	// [3 2]
	// [2 3]
	// [3 3]
}

// ExampleGray dumps the full point sequence of a 2D, side-2 Gray (BRGC)
// curve: adjacent indices differ by one bit.
func ExampleGray() {
	g, err := spacecurve.NewGray(2, 2)
	if err != nil {
		panic(err)
	}
	for i := uint32(0); i < g.Length(); i++ {
		fmt.Println(g.Point(i))
	}
	// Output:
	// [0 0]
	// [1 0]
	// [1 1]
	// [0 1]
}

// ExampleOnionCurve dumps the full point sequence of a 2D, side-3 Onion
// curve: the outer ring traced as a continuous spiral, then the single
// center point.
func ExampleOnionCurve() {
	o, err := spacecurve.NewOnionCurve(2, 3)
	if err != nil {
		panic(err)
	}
	for i := uint32(0); i < o.Length(); i++ {
		fmt.Println(o.Point(i))
	}
	// Output:
	// [0 0]
	// [1 0]
	// [2 0]
	// [2 1]
	// [2 2]
	// [1 2]
	// [0 2]
	// [0 1]
	// [1 1]
}

// ExampleConstruct_rejections shows the registry reporting the Shape,
// Size and Unknown error kinds for malformed curve requests.
func ExampleConstruct_rejections() {
	report := func(key string, dimension, size uint32) {
		_, err := spacecurve.Construct(key, dimension, size)
		switch {
		case errors.Is(err, spacecurve.ErrShape):
			fmt.Println("Shape")
		case errors.Is(err, spacecurve.ErrSize):
			fmt.Println("Size")
		case errors.Is(err, spacecurve.ErrUnknown):
			fmt.Println("Unknown")
		default:
			fmt.Println("ok")
		}
	}

	report("hilbert", 2, 3)     // not a power of two -> Size
	report("zorder", 4, 256)    // 4 * 8 bits >= 32 -> Size
	report("hcurve", 1, 4)      // dimension < 2 -> Shape
	report("banana", 2, 4)      // unregistered key -> Unknown
	// Output:
	// Size
	// Size
	// Shape
	// Unknown
}
