package svg

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"oss.terrastruct.com/prstgeom/lib/geo"
)

func TestPathData(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name string
		draw func(pc *SvgPathContext)
		exp  string
	}{
		{
			name: "polygon",
			draw: func(pc *SvgPathContext) {
				pc.Polygon(0, 0, 100, 0, 100, 50, 0, 50)
			},
			exp: "M 0 0 L 100 0 L 100 50 L 0 50 Z",
		},
		{
			name: "horizontal_vertical_emit_lines",
			draw: func(pc *SvgPathContext) {
				pc.M(10, 10)
				pc.H(false, 30)
				pc.V(true, 5)
			},
			exp: "M 10 10 L 30 10 L 30 15",
		},
		{
			name: "negative_zero",
			draw: func(pc *SvgPathContext) {
				pc.M(-0.00001, 0.33333333)
			},
			exp: "M 0 0.3333",
		},
		{
			name: "non_finite",
			draw: func(pc *SvgPathContext) {
				pc.M(math.NaN(), math.Inf(1))
			},
			exp: "M 0 0",
		},
		{
			name: "quarter_arc",
			draw: func(pc *SvgPathContext) {
				pc.M(100, 50)
				pc.ArcToDeg(50, 50, 0, 90)
			},
			exp: "M 100 50 A 50 50 0 0 1 50 100",
		},
		{
			name: "full_arc_splits",
			draw: func(pc *SvgPathContext) {
				pc.M(100, 50)
				pc.ArcToDeg(50, 50, 0, 360)
				pc.Z()
			},
			exp: "M 100 50 A 50 50 0 0 1 0 50 A 50 50 0 0 1 100 50 Z",
		},
		{
			name: "counter_clockwise_large",
			draw: func(pc *SvgPathContext) {
				pc.M(100, 50)
				pc.ArcToDeg(50, 50, 0, -270)
			},
			exp: "M 100 50 A 50 50 0 1 0 50 100",
		},
		{
			name: "flat_arc_is_line",
			draw: func(pc *SvgPathContext) {
				pc.M(0, 0)
				pc.ArcToDeg(0, 10, 90, 90)
			},
			exp: "M 0 0 L 0 -10",
		},
		{
			name: "zero_length_dropped",
			draw: func(pc *SvgPathContext) {
				pc.M(50, 0)
				pc.L(false, 50, 0)
				pc.L(false, 50.00001, 0)
				pc.H(false, 50)
				pc.V(true, 0)
				pc.ArcToDeg(0, 0, 0, 90)
				pc.A(false, 5, 5, 0, false, true, 50, 0)
				pc.L(false, 60, 0)
				pc.Z()
			},
			exp: "M 50 0 L 60 0 Z",
		},
		{
			name: "curves",
			draw: func(pc *SvgPathContext) {
				pc.M(0, 0)
				pc.C(false, 1, 2, 3, 4, 5, 6)
				pc.S(false, 7, 8, 9, 10)
				pc.Q(true, 1, 1, 2, 2)
			},
			exp: "M 0 0 C 1 2 3 4 5 6 S 7 8 9 10 Q 10 11 11 12",
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			pc := NewPath()
			tc.draw(pc)
			assert.Equal(t, tc.exp, pc.PathData())
		})
	}
}

func TestScaledContext(t *testing.T) {
	pc := NewSVGPathContext(geo.NewPoint(10, 20), 2, 3)
	pc.M(1, 1)
	pc.L(true, 1, 1)
	pc.A(false, 1, 1, 0, false, true, 0, 0)
	assert.Equal(t, "M 12 23 L 14 26 A 2 3 0 0 1 10 20", pc.PathData())
}

func TestAppend(t *testing.T) {
	a := NewPath()
	a.Polygon(0, 0, 1, 0, 1, 1)
	b := NewPath()
	b.Polyline(5, 5, 6, 6)
	a.Append(b)
	a.Append(nil)
	assert.Equal(t, "M 0 0 L 1 0 L 1 1 Z M 5 5 L 6 6", a.PathData())
	assert.Equal(t, Point(6, 6), *a.Current)
}

func Point(x, y float64) geo.Point {
	return geo.Point{X: x, Y: y}
}
