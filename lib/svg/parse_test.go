package svg

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"oss.terrastruct.com/prstgeom/lib/geo"
)

func TestParse(t *testing.T) {
	cmds, err := Parse("M 0 0 L 10 0 L 10,10 C 1 2 3 4 5 6 A 5 5 0 1 0 0 0 Z M 20 20 L 30 30 40 40")
	assert.NoError(t, err)
	ops := ""
	for _, c := range cmds {
		ops += string(c.Op)
	}
	assert.Equal(t, "MLLCAZMLL", ops)
	assert.Equal(t, []float64{5, 5, 0, 1, 0, 0, 0}, cmds[4].Args)

	figs := Figures(cmds)
	assert.Len(t, figs, 2)
	assert.True(t, figs[0].Closed)
	assert.Equal(t, Point(0, 0), *figs[0].End)
	assert.False(t, figs[1].Closed)
	assert.Equal(t, Point(40, 40), *figs[1].End)
}

func TestParseRoundTrip(t *testing.T) {
	pc := NewPath()
	pc.M(0.5, 1e-3)
	pc.C(false, -1.25, 2, 3, 4, 5, 6)
	pc.ArcToDeg(3, 4, 10, 200)
	pc.Z()

	cmds, err := Parse(pc.PathData())
	assert.NoError(t, err)
	s := ""
	for i, c := range cmds {
		if i > 0 {
			s += " "
		}
		s += c.String()
	}
	assert.Equal(t, pc.PathData(), s)
}

func TestParseErrors(t *testing.T) {
	for _, d := range []string{
		"",
		"L 0 0",
		"M 1",
		"M 0 0 X 1 1",
		"M 0 0 H 10",
		"M 0 0 A 1 1 0 2 0 3 3",
		"M 0 0 L 1 # 2",
		"M 0 0 L - 2",
		"M 0 0 L 1 1 1",
		"M 0 0 C 1 2 3 4",
	} {
		_, err := Parse(d)
		assert.Error(t, err, "%q should not parse", d)
	}
}

func TestArcToCubics(t *testing.T) {
	segs := ArcToCubics(geo.NewPoint(100, 50), 50, 50, 0, false, true, geo.NewPoint(50, 100))
	assert.Len(t, segs, 1)
	k := 4.0 / 3.0 * math.Tan(math.Pi/8) * 50
	assert.True(t, segs[0][0].ApproxEquals(geo.NewPoint(100, 50+k), geo.PRECISION), *segs[0][0])
	assert.True(t, segs[0][1].ApproxEquals(geo.NewPoint(50+k, 100), geo.PRECISION), *segs[0][1])
	assert.Equal(t, Point(50, 100), *segs[0][2])

	// half circle, large arc flag irrelevant
	segs = ArcToCubics(geo.NewPoint(100, 50), 50, 50, 0, false, true, geo.NewPoint(0, 50))
	assert.Len(t, segs, 2)
	assert.True(t, segs[0][2].ApproxEquals(geo.NewPoint(50, 100), geo.PRECISION), *segs[0][2])

	// radii too small are scaled up
	segs = ArcToCubics(geo.NewPoint(0, 0), 1, 1, 0, false, true, geo.NewPoint(10, 0))
	assert.Len(t, segs, 2)

	assert.Nil(t, ArcToCubics(geo.NewPoint(1, 1), 5, 5, 0, false, true, geo.NewPoint(1, 1)))
	assert.Len(t, ArcToCubics(geo.NewPoint(0, 0), 0, 5, 0, false, true, geo.NewPoint(1, 1)), 1)
}

func TestBounds(t *testing.T) {
	cmds, err := Parse("M 100 50 A 50 50 0 0 1 0 50 A 50 50 0 0 1 100 50 Z")
	assert.NoError(t, err)
	b := Bounds(cmds)
	assert.Equal(t, 0, geo.PrecisionCompare(b.TopLeft.X, 0, geo.PRECISION))
	assert.Equal(t, 0, geo.PrecisionCompare(b.Width, 100, geo.PRECISION))
	// control points of a circle's cubic approximation stay within the box
	assert.Equal(t, 0, geo.PrecisionCompare(b.Height, 100, geo.PRECISION))
}
