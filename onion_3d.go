package spacecurve

// onionIndex3D is a specialized outer-shell ordering for the 3D onion
// curve: each shell peels to six flat faces and four edge strips around
// the first face pair, avoiding the boustrophedon zig-zag that a naive
// partition-based composition would introduce.
func onionIndex3D(sideLength uint32, point []uint32) uint32 {
	var layer uint32 = sideLength - 1
	for _, c := range point {
		d := c
		if sideLength-1-c < d {
			d = sideLength - 1 - c
		}
		if d < layer {
			layer = d
		}
	}
	inner := sideLength - layer*2

	cubeVolume := func(side uint32) uint32 { return mustPow(side, 3) }

	if inner <= 1 {
		return cubeVolume(sideLength) - 1
	}

	local := [3]uint32{point[0] - layer, point[1] - layer, point[2] - layer}
	offset := cubeVolume(sideLength) - cubeVolume(inner)
	faceArea := mustPow(inner, 2)

	if local[0] == 0 {
		return offset + onionIndexND(2, inner, []uint32{local[1], local[2]})
	}
	offset += faceArea

	if local[0] == inner-1 {
		return offset + onionIndexND(2, inner, []uint32{local[1], local[2]})
	}
	offset += faceArea

	innerMinusTwo := saturatingSub(inner, 2)
	if innerMinusTwo == 0 {
		return offset
	}

	if local[1] == 0 && local[2] == 0 {
		return offset + (local[0] - 1)
	}
	offset += innerMinusTwo

	if local[1] == 0 && local[2] > 0 && local[2] < inner-1 {
		return offset + onionIndexND(2, innerMinusTwo, []uint32{local[0] - 1, local[2] - 1})
	}
	offset += mustPow(innerMinusTwo, 2)

	if local[1] == 0 && local[2] == inner-1 {
		return offset + (local[0] - 1)
	}
	offset += innerMinusTwo

	if local[1] == inner-1 && local[2] == 0 {
		return offset + (local[0] - 1)
	}
	offset += innerMinusTwo

	if local[1] == inner-1 && local[2] > 0 && local[2] < inner-1 {
		return offset + onionIndexND(2, innerMinusTwo, []uint32{local[0] - 1, local[2] - 1})
	}
	offset += mustPow(innerMinusTwo, 2)

	if local[1] == inner-1 && local[2] == inner-1 {
		return offset + (local[0] - 1)
	}
	offset += innerMinusTwo

	if local[2] == 0 {
		return offset + onionIndexND(2, innerMinusTwo, []uint32{local[0] - 1, local[1] - 1})
	}
	offset += mustPow(innerMinusTwo, 2)

	return offset + onionIndexND(2, innerMinusTwo, []uint32{local[0] - 1, local[1] - 1})
}

// onionPoint3D is the inverse of onionIndex3D.
func onionPoint3D(sideLength, index uint32) []uint32 {
	remaining := index
	var layer uint32
	currentLen := sideLength

	cubeVolume := func(side uint32) uint32 { return mustPow(side, 3) }

	for {
		nextLen := saturatingSub(currentLen, 2)
		size := cubeVolume(currentLen) - cubeVolume(nextLen)
		if remaining < size {
			break
		}
		remaining -= size
		layer++
		currentLen = nextLen
	}

	if currentLen <= 1 {
		return []uint32{layer, layer, layer}
	}

	inner := currentLen
	innerMinusTwo := saturatingSub(inner, 2)
	faceArea := mustPow(inner, 2)

	if remaining < faceArea {
		yz := onionPointND(2, inner, remaining)
		return []uint32{layer, yz[0] + layer, yz[1] + layer}
	}
	remaining -= faceArea

	if remaining < faceArea {
		yz := onionPointND(2, inner, remaining)
		return []uint32{layer + inner - 1, yz[0] + layer, yz[1] + layer}
	}
	remaining -= faceArea

	if innerMinusTwo == 0 {
		return []uint32{layer, layer, layer + inner - 1}
	}

	if remaining < innerMinusTwo {
		return []uint32{layer + 1 + remaining, layer, layer}
	}
	remaining -= innerMinusTwo

	rectArea := mustPow(innerMinusTwo, 2)

	if remaining < rectArea {
		coords := onionPointND(2, innerMinusTwo, remaining)
		return []uint32{layer + 1 + coords[0], layer, layer + 1 + coords[1]}
	}
	remaining -= rectArea

	if remaining < innerMinusTwo {
		return []uint32{layer + 1 + remaining, layer, layer + inner - 1}
	}
	remaining -= innerMinusTwo

	if remaining < innerMinusTwo {
		return []uint32{layer + 1 + remaining, layer + inner - 1, layer}
	}
	remaining -= innerMinusTwo

	if remaining < rectArea {
		coords := onionPointND(2, innerMinusTwo, remaining)
		return []uint32{layer + 1 + coords[0], layer + inner - 1, layer + 1 + coords[1]}
	}
	remaining -= rectArea

	if remaining < innerMinusTwo {
		return []uint32{layer + 1 + remaining, layer + inner - 1, layer + inner - 1}
	}
	remaining -= innerMinusTwo

	if remaining < rectArea {
		coords := onionPointND(2, innerMinusTwo, remaining)
		return []uint32{layer + 1 + coords[0], layer + 1 + coords[1], layer}
	}
	remaining -= rectArea

	coords := onionPointND(2, innerMinusTwo, remaining)
	return []uint32{layer + 1 + coords[0], layer + 1 + coords[1], layer + inner - 1}
}
