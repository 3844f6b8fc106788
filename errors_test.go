package spacecurve

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorUnwrapMatchesSentinel(t *testing.T) {
	err := shapeErrorf("dimension must be >= 2")
	assert.True(t, errors.Is(err, ErrShape))
	assert.False(t, errors.Is(err, ErrSize))

	err = sizeErrorf("size must be a power of two")
	assert.True(t, errors.Is(err, ErrSize))

	err = unknownErrorf("unknown pattern: %q", "banana")
	assert.True(t, errors.Is(err, ErrUnknown))
}

func TestErrorMessageIncludesDetail(t *testing.T) {
	err := sizeErrorf("order * dimension must be < 32")
	assert.Contains(t, err.Error(), "order * dimension must be < 32")
	assert.Contains(t, err.Error(), "size")
}

func TestErrorAsRecoversConcreteType(t *testing.T) {
	err := shapeErrorf("boom")
	var target *Error
	assert.True(t, errors.As(err, &target))
	assert.Equal(t, ErrShape, target.kind)
}
