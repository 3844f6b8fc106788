package spacecurve

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHilbertRejectsNonPowerOfTwo(t *testing.T) {
	_, err := NewHilbert(2, 3)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrSize))
}

func TestNewHilbertRejectsIndexOverflow(t *testing.T) {
	// order=5 (size=32), dimension=7 => 35 bits, over the uint32 budget.
	_, err := NewHilbert(7, 32)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrSize))
}

func TestHilbert2DBottomRowOrder3(t *testing.T) {
	// The y=0 row of an order-3 2D Hilbert curve: 0,1,14,15,16,19,20,21.
	h, err := NewHilbert(2, 8)
	require.NoError(t, err)

	want := []uint32{0, 1, 14, 15, 16, 19, 20, 21}
	for x, w := range want {
		got := h.Index(NewPoint(uint32(x), 0))
		assert.Equal(t, w, got, "x=%d", x)
	}
}

func TestHilbertOneDimensionIsIdentity(t *testing.T) {
	h, err := NewHilbert(1, 8)
	require.NoError(t, err)
	for i := uint32(0); i < h.Length(); i++ {
		p := h.Point(i)
		assert.EqualValues(t, i, p.At(0))
	}
}

func TestHilbertSizeOneIsSinglePoint(t *testing.T) {
	h, err := NewHilbert(3, 1)
	require.NoError(t, err)
	require.EqualValues(t, 1, h.Length())
	p := h.Point(0)
	for d := 0; d < p.Dim(); d++ {
		assert.EqualValues(t, 0, p.At(d))
	}
}

func TestHilbertNDRoundtripAt3D(t *testing.T) {
	// Round-trip every index of a 3D, side-4 grid through the general
	// transpose-based path (used for N >= 3).
	h, err := NewHilbert(3, 4)
	require.NoError(t, err)
	for i := uint32(0); i < h.Length(); i++ {
		p := h.Point(i)
		assert.Equal(t, i, h.Index(p))
	}
}
