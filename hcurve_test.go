package spacecurve

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHCurveRejectsDimensionLessThanTwo(t *testing.T) {
	_, err := NewHCurve(1, 4)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrShape))
}

func TestNewHCurveRejectsNonPowerOfTwo(t *testing.T) {
	_, err := NewHCurve(2, 3)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrSize))
}

func TestNewHCurveRejectsIndexOverflow(t *testing.T) {
	_, err := NewHCurve(7, 32)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrSize))
}

func TestHCurveDistinctFromHilbertAboveOneDimension(t *testing.T) {
	hc, err := NewHCurve(2, 4)
	require.NoError(t, err)
	hb, err := NewHilbert(2, 4)
	require.NoError(t, err)

	differs := false
	for i := uint32(0); i < hc.Length(); i++ {
		if !hc.Point(i).Equal(hb.Point(i)) {
			differs = true
			break
		}
	}
	assert.True(t, differs, "H-curve should enumerate the grid differently from Hilbert")
}

func TestHCurveReverseComplementIsInvolution(t *testing.T) {
	hc := &HCurve{dimension: 3, size: 8}
	coords := []uint32{1, 5, 7}
	once := hc.reverseComplement(coords)
	twice := hc.reverseComplement(once)
	assert.Equal(t, coords, twice)
}
