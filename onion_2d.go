package spacecurve

// onionIndex2D computes the onion index for 2D using a continuous spiral:
// walk the bottom edge, then the right edge, then the top edge (reversed),
// then the left edge (reversed), then recurse into the interior square.
func onionIndex2D(l uint32, p []uint32) uint32 {
	if l <= 1 {
		return 0
	}
	x, y := p[0], p[1]

	switch {
	case y == 0:
		return x
	case x == l-1:
		return l - 1 + y
	case y == l-1:
		return 3*l - 3 - x
	case x == 0:
		return 4*l - 4 - y
	}

	outer := 4*l - 4
	return outer + onionIndex2D(l-2, []uint32{x - 1, y - 1})
}

// onionPoint2D is the inverse of onionIndex2D.
func onionPoint2D(l uint32, index uint32) []uint32 {
	if l == 1 {
		return []uint32{0, 0}
	}

	outerLayerSize := 4*l - 4
	if index >= outerLayerSize {
		pInner := onionPoint2D(l-2, index-outerLayerSize)
		return []uint32{pInner[0] + 1, pInner[1] + 1}
	}

	switch {
	case index < l:
		return []uint32{index, 0}
	case index < 2*l-1:
		return []uint32{l - 1, index - l + 1}
	case index < 3*l-2:
		return []uint32{3*l - 3 - index, l - 1}
	default:
		return []uint32{0, 4*l - 4 - index}
	}
}
