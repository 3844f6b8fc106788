package spacecurve

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewScanAcceptsNonPowerOfTwoSize(t *testing.T) {
	s, err := NewScan(2, 5)
	require.NoError(t, err)
	assert.EqualValues(t, 25, s.Length())
}

func TestNewScanRejectsZeroDimension(t *testing.T) {
	_, err := NewScan(0, 4)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrShape))
}

func TestScanPointPanicsOutOfRange(t *testing.T) {
	s, err := NewScan(2, 3)
	require.NoError(t, err)
	assert.Panics(t, func() { s.Point(s.Length()) })
}
