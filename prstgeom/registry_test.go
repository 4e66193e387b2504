package prstgeom

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"oss.terrastruct.com/diff"

	"oss.terrastruct.com/prstgeom/lib/svg"
)

func TestGenerateScenarios(t *testing.T) {
	t.Parallel()

	t.Run("rect", func(t *testing.T) {
		res, ok := Generate("rect", 100, 50, nil)
		assert.True(t, ok)
		assert.Equal(t, "M 0 0 L 100 0 L 100 50 L 0 50 Z", res.Path)
		assert.False(t, res.NoFill)
		assert.False(t, res.HasStroke())
	})

	t.Run("straightConnector1", func(t *testing.T) {
		res, ok := Generate("straightConnector1", 100, 100, nil)
		assert.True(t, ok)
		assert.Equal(t, "M 0 0 L 100 100", res.Path)
		assert.True(t, res.NoFill)
	})

	t.Run("star5", func(t *testing.T) {
		res, ok := Generate("star5", 100, 100, Adjustments{})
		assert.True(t, ok)
		cmds, err := svg.Parse(res.Path)
		assert.NoError(t, err)
		assert.Len(t, cmds, 11)
		assert.Equal(t, "M 50 0", cmds[0].String())
		assert.Equal(t, byte('Z'), cmds[10].Op)
	})

	t.Run("roundRect_full", func(t *testing.T) {
		res, ok := Generate("roundRect", 100, 100, Adjustments{"val": 50000})
		assert.True(t, ok)
		assert.Equal(t, "M 50 0 A 50 50 0 0 1 100 50 A 50 50 0 0 1 50 100 A 50 50 0 0 1 0 50 A 50 50 0 0 1 50 0 Z", res.Path)
		_, err := svg.Parse(res.Path)
		assert.NoError(t, err)
	})

	t.Run("unknown", func(t *testing.T) {
		res, ok := Generate("no-such-name", 10, 10, nil)
		assert.False(t, ok)
		assert.Equal(t, PathResult{}, res)
	})

	t.Run("leftBracket", func(t *testing.T) {
		res, ok := Generate("leftBracket", 40, 100, Adjustments{"adj": 8333})
		assert.True(t, ok)
		assert.True(t, res.NoFill)
		cmds, err := svg.Parse(res.Path)
		assert.NoError(t, err)
		figs := svg.Figures(cmds)
		assert.Len(t, figs, 1)
		assert.False(t, figs[0].Closed)
		assert.Equal(t, "M 40 0", cmds[0].String())
		assert.Equal(t, 40., figs[0].End.X)
		assert.Equal(t, 100., figs[0].End.Y)
	})
}

func TestLineFallback(t *testing.T) {
	t.Parallel()

	res, ok := Generate("line", 30, 40, nil)
	assert.True(t, ok)
	assert.Equal(t, PathResult{Path: "M 0 0 L 30 40", NoFill: true}, res)
	assert.Equal(t, "connectors", Family("line"))
	assert.True(t, Has("line"))
}

func TestNames(t *testing.T) {
	t.Parallel()

	names := Names()
	assert.Greater(t, len(names), 180)
	assert.IsIncreasing(t, names)

	known := map[string]bool{}
	for _, f := range Families() {
		known[f] = true
	}
	for _, name := range names {
		assert.True(t, known[Family(name)], name)
	}

	for _, name := range []string{
		"rect", "roundRect", "star32", "mathMultiply", "curvedConnector5",
		"bracePair", "accentBorderCallout3", "leftRightCircularArrow",
		"flowChartMagneticDrum", "actionButtonMovie",
	} {
		assert.True(t, Has(name), name)
	}
	assert.False(t, Has("star9"))
	assert.Equal(t, "", Family("star9"))

	names[0] = "mutated"
	assert.NotEqual(t, "mutated", Names()[0])
}

func TestPathResultTestdata(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name string
		w, h float64
	}{
		{"rect", 100, 60},
		{"line", 30, 40},
		{"callout1", 100, 60},
		{"uturnArrow", 100, 100},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			res, ok := Generate(tc.name, tc.w, tc.h, nil)
			require.True(t, ok)
			err := diff.TestdataJSON(filepath.Join("testdata", t.Name()), res)
			require.NoError(t, err)
		})
	}
}
