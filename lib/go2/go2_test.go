package go2

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeref(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 2.5, Deref(nil, 2.5))
	assert.Equal(t, int64(7), Deref(Pointer[int64](7), 1))
	assert.Equal(t, "", Deref(Pointer(""), "fill"))
}

func TestMax(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 3, Max(3, -1))
	assert.Equal(t, 40.0, Max(12.0, 40.0))
}
