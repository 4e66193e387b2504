package prstgeom

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"oss.terrastruct.com/prstgeom/lib/svg"
)

func TestPrimitives(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name string
		path string
		exp  string
	}{
		{
			name: "rect",
			path: RectPath(10, 20, 30, 40),
			exp:  "M 10 20 L 40 20 L 40 60 L 10 60 Z",
		},
		{
			name: "square_corners",
			path: RoundedRectOutline(30, 40, 0),
			exp:  "M 0 0 L 30 0 L 30 40 L 0 40 L 0 0 Z",
		},
		{
			name: "rounded",
			path: RoundedRectOutline(30, 40, 5),
			exp:  "M 5 0 L 25 0 A 5 5 0 0 1 30 5 L 30 35 A 5 5 0 0 1 25 40 L 5 40 A 5 5 0 0 1 0 35 L 0 5 A 5 5 0 0 1 5 0 Z",
		},
		{
			name: "ellipse",
			path: EllipsePath(50, 25, 50, 25),
			exp:  "M 100 25 A 50 25 0 0 1 0 25 A 50 25 0 0 1 100 25 Z",
		},
		{
			name: "square_polygon",
			path: RegularPolygon(4, 100, 100, 0),
			exp:  "M 100 50 L 50 100 L 0 50 L 50 0 Z",
		},
		{
			name: "no_sides",
			path: RegularPolygon(0, 100, 100, 0),
			exp:  "",
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.exp, tc.path)
		})
	}
}

func TestStarVertices(t *testing.T) {
	t.Parallel()

	for _, n := range []int{4, 5, 6, 7, 8, 10, 12, 16, 24, 32} {
		vs := StarVertices(n, 100, 100, DefaultStarInnerRatio, 0)
		assert.Len(t, vs, 2*n)
		for i, v := range vs {
			r := math.Hypot(v.X-50, v.Y-50)
			if i%2 == 0 {
				assert.InDelta(t, 50, r, 1e-9)
			} else {
				assert.InDelta(t, 50*0.375, r, 1e-9)
			}
		}
	}

	vs := StarVertices(5, 100, 100, DefaultStarInnerRatio, 0)
	assert.InDelta(t, 50, vs[0].X, 1e-9)
	assert.InDelta(t, 0, vs[0].Y, 1e-9)

	rotated := StarVertices(4, 100, 100, 0.5, 90*60000)
	assert.InDelta(t, 100, rotated[0].X, 1e-9)
	assert.InDelta(t, 50, rotated[0].Y, 1e-9)

	assert.Nil(t, StarVertices(0, 100, 100, 0.5, 0))
}

func TestStarAdjustment(t *testing.T) {
	t.Parallel()

	res, _ := Generate("star4", 100, 100, Adjustments{"adj": 25000})
	cmds, err := svg.Parse(res.Path)
	assert.NoError(t, err)
	inner := cmds[1].End()
	assert.InDelta(t, 25, math.Hypot(inner.X-50, inner.Y-50), 1e-3)
}

func TestStarPath(t *testing.T) {
	t.Parallel()

	d := StarPath(4, 100, 100, 0.5, 0)
	assert.Equal(t, "M 50 0 L 67.6777 32.3223 L 100 50 L 67.6777 67.6777 L 50 100 L 32.3223 67.6777 L 0 50 L 32.3223 32.3223 Z", d)

	res, _ := Generate("star4", 100, 100, Adjustments{"adj": 25000})
	assert.Equal(t, d, res.Path)
	assert.Empty(t, StarPath(0, 100, 100, 0.5, 0))
}

func TestPolygonWinding(t *testing.T) {
	t.Parallel()

	cw := []float64{0, 0, 10, 0, 10, 10, 0, 10}
	assert.Equal(t, 100., signedArea(cw))
	assert.Equal(t, -100., signedArea(reversed(cw)))

	pc := svg.NewPath()
	polygonCCW(pc, cw...)
	assert.Equal(t, "M 0 10 L 10 10 L 10 0 L 0 0 Z", pc.PathData())

	pc = svg.NewPath()
	polygonCW(pc, reversed(cw)...)
	assert.Equal(t, "M 0 0 L 10 0 L 10 10 L 0 10 Z", pc.PathData())
}

func TestView(t *testing.T) {
	t.Parallel()

	draw := func(swap, flipX, flipY bool) string {
		pc := svg.NewPath()
		v := newView(pc, 40, 20, swap, flipX, flipY)
		v.M(0, 0)
		v.L(10, 0)
		v.ArcTo(5, 5, 270, 90)
		return pc.PathData()
	}
	assert.Equal(t, "M 0 0 L 10 0 A 5 5 0 0 1 15 5", draw(false, false, false))
	assert.Equal(t, "M 40 0 L 30 0 A 5 5 0 0 0 25 5", draw(false, true, false))
	assert.Equal(t, "M 0 0 L 0 10 A 5 5 0 0 0 5 15", draw(true, false, false))

	pc := svg.NewPath()
	v := newView(pc, 40, 20, true, false, false)
	w, h := v.size()
	assert.Equal(t, 20., w)
	assert.Equal(t, 40., h)
}
