package spacecurve

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPointSmall(t *testing.T) {
	p := NewPoint(1, 2, 3)
	require.Equal(t, 3, p.Dim())
	assert.Equal(t, uint32(1), p.At(0))
	assert.Equal(t, uint32(2), p.At(1))
	assert.Equal(t, uint32(3), p.At(2))
	assert.Equal(t, "[1 2 3]", p.String())
}

func TestNewPointLargeFallsBackToHeap(t *testing.T) {
	coords := make([]uint32, smallPointDims+3)
	for i := range coords {
		coords[i] = uint32(i)
	}
	p := NewPoint(coords...)
	require.Equal(t, smallPointDims+3, p.Dim())
	for i := range coords {
		assert.Equal(t, uint32(i), p.At(i))
	}
}

func TestNewPointWithDimensionPads(t *testing.T) {
	p := NewPointWithDimension(4, []uint32{7, 8})
	require.Equal(t, 4, p.Dim())
	assert.Equal(t, []uint32{7, 8, 0, 0}, p.Coords())
}

func TestNewPointWithDimensionPanicsOnTooManyCoords(t *testing.T) {
	assert.Panics(t, func() {
		NewPointWithDimension(2, []uint32{1, 2, 3})
	})
}

func TestPointAtPanicsOutOfRange(t *testing.T) {
	p := NewPoint(1, 2)
	assert.Panics(t, func() { p.At(-1) })
	assert.Panics(t, func() { p.At(2) })
}

func TestPointWith(t *testing.T) {
	p := NewPoint(1, 2, 3)
	q := p.With(1, 99)
	assert.Equal(t, uint32(2), p.At(1), "original point must not mutate")
	assert.Equal(t, uint32(99), q.At(1))
}

func TestPointEqual(t *testing.T) {
	a := NewPoint(1, 2, 3)
	b := NewPoint(1, 2, 3)
	c := NewPoint(1, 2, 4)
	d := NewPoint(1, 2)

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
	assert.False(t, a.Equal(d))
}

func TestPointCoordsCopiesNotAliases(t *testing.T) {
	p := NewPoint(1, 2, 3)
	coords := p.Coords()
	coords[0] = 100
	assert.Equal(t, uint32(1), p.At(0))
}
