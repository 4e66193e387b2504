package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVectorArithmetic(t *testing.T) {
	a := NewVector(1, 2)
	b := NewVector(3, 4)

	assert.True(t, a.Add(b).equals(NewVector(4, 6)))
	assert.True(t, a.Multiply(3).equals(NewVector(3, 6)))
	assert.Equal(t, 5.0, b.Length())
}

func TestVectorUnit(t *testing.T) {
	assert.True(t, NewVector(3, 4).Unit().equals(NewVector(0.6, 0.8)))
	assert.True(t, NewVector(0, 0).Unit().equals(NewVector(0, 0)))
}

func TestVectorPerpendicular(t *testing.T) {
	a := NewVector(1, 0)
	assert.True(t, a.Perpendicular().equals(NewVector(0, 1)))
	assert.True(t, a.Perpendicular().Perpendicular().equals(NewVector(-1, 0)))
}

func (a Vector) equals(other Vector) bool {
	return PrecisionCompare(a[0], other[0], PRECISION) == 0 &&
		PrecisionCompare(a[1], other[1], PRECISION) == 0
}
