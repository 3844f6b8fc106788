package spacecurve

// onionIndexL2 computes the onion index for a side-length-2 shell using a
// continuous Gray-code generalization: O(n) = (O(n-1), 0) followed by
// (Reversed(O(n-1)), 1), with the last coordinate as discriminator. This
// matches the explicit L=2 curve on a single square/cube face: (0,0),
// (1,0), (1,1), (0,1) in 2D.
func onionIndexL2(n uint32, p []uint32) uint32 {
	if n == 0 {
		return 0
	}
	dimPrev := n - 1
	volumePrev := uint32(1) << dimPrev
	last := p[n-1]
	iPrev := onionIndexL2(dimPrev, p[:n-1])
	if last == 0 {
		return iPrev
	}
	return (volumePrev - 1) - iPrev + volumePrev
}

// onionPointL2 is the inverse of onionIndexL2.
func onionPointL2(n uint32, index uint32) []uint32 {
	if n == 0 {
		return []uint32{}
	}
	dimPrev := n - 1
	volumePrev := uint32(1) << dimPrev

	var last, iPrev uint32
	if index < volumePrev {
		last, iPrev = 0, index
	} else {
		idx := index - volumePrev
		last, iPrev = 1, (volumePrev-1)-idx
	}
	p := onionPointL2(dimPrev, iPrev)
	return append(p, last)
}
