package svg

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"oss.terrastruct.com/prstgeom/lib/geo"
)

func TestFlatten(t *testing.T) {
	t.Parallel()

	cmds, err := Parse("M 0 0 L 10 0 L 10 10 Z M 20 0 Q 30 0 30 10 M 0 20 A 5 5 0 0 1 10 20")
	require.NoError(t, err)

	lines := Flatten(cmds, 4)
	require.Len(t, lines, 3)

	assert.Equal(t, []*geo.Point{
		geo.NewPoint(0, 0), geo.NewPoint(10, 0), geo.NewPoint(10, 10), geo.NewPoint(0, 0),
	}, lines[0])

	assert.Len(t, lines[1], 5)
	assert.True(t, lines[1][4].ApproxEquals(geo.NewPoint(30, 10), geo.PRECISION))

	// a half circle is two quarter cubics
	assert.Len(t, lines[2], 9)
	for _, p := range lines[2] {
		assert.InDelta(t, 5, geo.NewPoint(5, 20).VectorTo(p).Length(), 0.01, *p)
	}
	assert.True(t, lines[2][8].ApproxEquals(geo.NewPoint(10, 20), geo.PRECISION))
}

func TestCubicControls(t *testing.T) {
	t.Parallel()

	cur := geo.NewPoint(10, 10)
	c1, c2 := CubicControls(Command{Op: 'S', Args: []float64{20, 0, 30, 10}}, cur, geo.NewPoint(5, 0))
	assert.Equal(t, geo.Point{X: 15, Y: 20}, *c1)
	assert.Equal(t, geo.Point{X: 20, Y: 0}, *c2)

	c1, _ = CubicControls(Command{Op: 'S', Args: []float64{20, 0, 30, 10}}, cur, nil)
	assert.Equal(t, cur, c1)
}
