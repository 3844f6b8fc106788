package spacecurve

// onionShell describes a single L-infinity shell within the onion
// traversal: level is how many layers have been peeled from the outside
// (0 is the outermost shell), side is the cube's side length after
// trimming level layers from each end, offset is the cumulative point
// count before this shell begins, and indexWithin is the index relative
// to the start of the shell (only meaningful when located by index).
type onionShell struct {
	level       uint32
	side        uint32
	offset      uint32
	indexWithin uint32
}

// shellSize returns the number of points on the outer shell of a
// side^dimension cube.
func shellSize(dimension, side uint32) uint32 {
	if side == 0 {
		return 0
	}
	inner := saturatingSub(side, 2)
	return mustPow(side, dimension) - mustPow(inner, dimension)
}

// shellForIndex locates the shell containing a linear onion index.
func shellForIndex(dimension, side, index uint32) onionShell {
	sideAtLevel := side
	var level, offset uint32
	for {
		size := shellSize(dimension, sideAtLevel)
		if index < size {
			return onionShell{level: level, side: sideAtLevel, offset: offset, indexWithin: index}
		}
		index -= size
		offset += size
		level++
		sideAtLevel = saturatingSub(sideAtLevel, 2)
	}
}

// shellForPoint locates the shell containing point, identified by its
// L-infinity distance from the cube's boundary.
func shellForPoint(dimension, side uint32, point []uint32) onionShell {
	level := side - 1
	for _, c := range point {
		d := c
		if side-1-c < d {
			d = side - 1 - c
		}
		if d < level {
			level = d
		}
	}
	sideAtLevel := side
	var offset uint32
	for i := uint32(0); i < level; i++ {
		offset += shellSize(dimension, sideAtLevel)
		sideAtLevel = saturatingSub(sideAtLevel, 2)
	}
	return onionShell{level: level, side: sideAtLevel, offset: offset}
}

// firstBoundary returns the first dimension at which local touches the
// shell's boundary (coordinate 0 or side-1), and whether it touched the
// high side.
func firstBoundary(local []uint32, side uint32) (dim int, highSide bool) {
	for i, c := range local {
		if c == 0 {
			return i, false
		}
		if c+1 == side {
			return i, true
		}
	}
	panic("onion shell: no boundary coordinate found")
}

// partitionSizes returns the size of each partition P_j on the shell,
// ordered by first-boundary dimension j.
func partitionSizes(dimension, side uint32) []uint32 {
	inner := saturatingSub(side, 2)
	sizes := make([]uint32, dimension)
	for j := uint32(0); j < dimension; j++ {
		pre := mustPow(inner, j)
		post := mustPow(side, dimension-1-j)
		sizes[j] = mustMul(2, mustMul(pre, post))
	}
	return sizes
}

// faceSizes returns the side lengths of the (N-1)-D half-face obtained by
// fixing boundaryDim.
func faceSizes(dimension, side uint32, boundaryDim int) []uint32 {
	inner := saturatingSub(side, 2)
	sizes := make([]uint32, 0, dimension-1)
	for i := 0; i < boundaryDim; i++ {
		sizes = append(sizes, inner)
	}
	for i := boundaryDim + 1; i < int(dimension); i++ {
		sizes = append(sizes, side)
	}
	return sizes
}

// faceCoordsFromPoint maps shell-local coordinates into face-local ones,
// dropping the fixed boundary dimension and shifting the pre-boundary
// coordinates inward by one.
func faceCoordsFromPoint(local []uint32, boundaryDim int) []uint32 {
	coords := make([]uint32, 0, len(local)-1)
	for _, c := range local[:boundaryDim] {
		coords = append(coords, saturatingSub(c, 1))
	}
	coords = append(coords, local[boundaryDim+1:]...)
	return coords
}

// rebuildFromFace is the inverse of faceCoordsFromPoint: it reinserts the
// fixed boundary coordinate and shifts the pre-boundary coordinates back
// outward.
func rebuildFromFace(faceCoords []uint32, boundaryDim int, side uint32, highSide bool) []uint32 {
	coords := make([]uint32, 0, len(faceCoords)+1)
	for i := 0; i < boundaryDim; i++ {
		coords = append(coords, faceCoords[i]+1)
	}
	if highSide {
		coords = append(coords, side-1)
	} else {
		coords = append(coords, 0)
	}
	coords = append(coords, faceCoords[boundaryDim:]...)
	return coords
}

// onionShellIndex computes the index of a shell-local point within its
// own shell (side is the shell's trimmed side length).
func onionShellIndex(dimension, side uint32, local []uint32) uint32 {
	switch {
	case side == 1:
		return 0
	case side == 2:
		return onionIndexL2(dimension, local)
	case dimension == 1:
		if local[0] == 0 {
			return 0
		}
		return 1
	case dimension == 2:
		return onionIndex2D(side, local)
	}

	boundaryDim, highSide := firstBoundary(local, side)
	offsets := partitionSizes(dimension, side)
	var offsetP uint32
	for _, o := range offsets[:boundaryDim] {
		offsetP += o
	}

	inner := saturatingSub(side, 2)
	subPartSize := mustMul(mustPow(inner, uint32(boundaryDim)), mustPow(side, dimension-1-uint32(boundaryDim)))
	var offsetSub uint32
	if highSide {
		offsetSub = subPartSize
	}

	sizes := faceSizes(dimension, side, boundaryDim)
	coords := faceCoordsFromPoint(local, boundaryDim)
	within := onionIndexRect(sizes, coords)

	return offsetP + offsetSub + within
}

// onionShellPoint is the inverse of onionShellIndex.
func onionShellPoint(dimension, side, index uint32) []uint32 {
	switch {
	case side == 1:
		return make([]uint32, dimension)
	case side == 2:
		return onionPointL2(dimension, index)
	case dimension == 1:
		if index == 0 {
			return []uint32{0}
		}
		return []uint32{side - 1}
	case dimension == 2:
		return onionPoint2D(side, index)
	}

	partitions := partitionSizes(dimension, side)
	boundaryDim := 0
	for j, size := range partitions {
		if index < size {
			boundaryDim = j
			break
		}
		index -= size
	}

	inner := saturatingSub(side, 2)
	subPartSize := mustMul(mustPow(inner, uint32(boundaryDim)), mustPow(side, dimension-1-uint32(boundaryDim)))

	var highSide bool
	if index >= subPartSize {
		index -= subPartSize
		highSide = true
	}

	sizes := faceSizes(dimension, side, boundaryDim)
	faceCoords := onionPointRect(sizes, index)

	return rebuildFromFace(faceCoords, boundaryDim, side, highSide)
}

// onionIndexND computes the full onion index for a point in an N-D cube.
func onionIndexND(dimension, side uint32, point []uint32) uint32 {
	if dimension == 0 || side == 0 {
		return 0
	}
	if dimension == 3 && side > 2 {
		return onionIndex3D(side, point)
	}
	shell := shellForPoint(dimension, side, point)
	local := make([]uint32, dimension)
	for i, c := range point {
		local[i] = c - shell.level
	}
	within := onionShellIndex(dimension, shell.side, local)
	return shell.offset + within
}

// onionPointND computes the full onion coordinates for an index in an N-D
// cube.
func onionPointND(dimension, side, index uint32) []uint32 {
	if dimension == 0 || side == 0 {
		return []uint32{}
	}
	if dimension == 3 && side > 2 {
		return onionPoint3D(side, index)
	}
	shell := shellForIndex(dimension, side, index)
	local := onionShellPoint(dimension, shell.side, shell.indexWithin)
	for i := range local {
		local[i] += shell.level
	}
	return local
}
