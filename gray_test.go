package spacecurve

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGrayRejectsNonPowerOfTwo(t *testing.T) {
	_, err := NewGray(2, 3)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrSize))
}

func TestNewGrayRejectsIndexOverflow(t *testing.T) {
	_, err := NewGray(4, 256)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrSize))
}

func TestGrayIndexPanicsOnDimensionMismatch(t *testing.T) {
	g, err := NewGray(2, 4)
	require.NoError(t, err)
	assert.Panics(t, func() { g.Index(NewPoint(1, 2, 3)) })
}
