package prstgeom

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAdjustments(t *testing.T) {
	t.Parallel()

	var none Adjustments
	assert.Equal(t, 16667., none.Get("adj", 16667))
	assert.False(t, none.Has("adj"))

	a := Adjustments{"val": 50000, "adj2": -4000}
	assert.True(t, a.Has("adj"))
	assert.Equal(t, 0.5, a.Ratio("adj", 16667))
	assert.Equal(t, -0.04, a.Ratio("adj2", 0))
	assert.Equal(t, 0., a.Pinned("adj2", 0, 0, 100000))

	b := Adjustments{"adj": 7, "adj1": 9}
	assert.Equal(t, 9., b.Get("adj1", 0))
	assert.Equal(t, 7., b.Get("adj", 0))
	assert.Equal(t, 7., Adjustments{"adj": 7}.Get("adj1", 0))
	assert.Equal(t, 9., Adjustments{"adj1": 9}.Get("adj", 0))

	c := Adjustments{"adj1": 5400000}
	assert.Equal(t, 90., c.Degrees("adj1", 0))
	assert.InDelta(t, math.Pi/2, c.Angle("adj1", 0), 1e-12)
}

func TestSweep(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 270., normAngle(-90))
	assert.Equal(t, 0., normAngle(720))
	assert.Equal(t, 270., sweepCW(0, 270))
	assert.Equal(t, 90., sweepCW(270, 0))
	assert.Equal(t, 360., sweepCW(45, 45))
}
