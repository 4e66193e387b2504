package prstcli

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"oss.terrastruct.com/prstgeom/lib/log"
	"oss.terrastruct.com/prstgeom/prstgeom"
)

func TestParseBatch(t *testing.T) {
	t.Parallel()

	bf, err := parseBatch([]byte(`
shapes:
  - name: star5
    width: 200
    height: 120
    adj: {adj: 19098}
    out: star5.svg
  - name: line
`))
	require.NoError(t, err)
	require.Len(t, bf.Shapes, 2)
	assert.Equal(t, 200., *bf.Shapes[0].Width)
	assert.Equal(t, int64(19098), bf.Shapes[0].Adj["adj"])
	assert.Equal(t, formatSVG, bf.Shapes[0].format(formatPath))
	assert.Nil(t, bf.Shapes[1].Width)
	assert.Nil(t, bf.Shapes[1].Adj)
	assert.Equal(t, formatJSON, bf.Shapes[1].format(formatJSON))

	testCases := []struct {
		name string
		yaml string
	}{
		{"empty", ``},
		{"no_shapes", `shapes: []`},
		{"unknown_field", "shapes:\n  - name: rect\n    colour: red\n"},
		{"unknown_shape", "shapes:\n  - name: star9\n"},
		{"missing_name", "shapes:\n  - width: 10\n"},
		{"stdout", "shapes:\n  - name: rect\n    out: '-'\n"},
		{"bad_format", "shapes:\n  - name: rect\n    format: pdf\n"},
		{"negative", "shapes:\n  - name: rect\n    width: -4\n"},
		{"fractional_adj", "shapes:\n  - name: rect\n    adj: {adj: 0.5}\n"},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := parseBatch([]byte(tc.yaml))
			assert.Error(t, err)
		})
	}
}

func TestParseBatchFractionalAdjustment(t *testing.T) {
	t.Parallel()

	_, err := parseBatch([]byte("shapes:\n  - name: roundRect\n    adj: {adj: 16667, adj2: 0.5}\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), `adj "adj2": 0.5 is not an integer`)

	bf, err := parseBatch([]byte("shapes:\n  - name: roundRect\n    adj: {adj: 5e4, adj2: -100}\n"))
	require.NoError(t, err)
	assert.Equal(t, prstgeom.Adjustments{"adj": 50000, "adj2": -100}, bf.Shapes[0].Adj)
}

func TestBatchCmd(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	fp := filepath.Join(dir, "shapes.yaml")
	err := os.WriteFile(fp, []byte(`
shapes:
  - name: star5
    out: out/star5.svg
  - name: rightArrow
    width: 160
    height: 80
    format: json
  - name: donut
    out: donut.png
`), 0644)
	require.NoError(t, err)

	r := run(t, nil, nil, "", "--batch", fp)
	require.NoError(t, r.err)
	for _, out := range []string{"out/star5.svg", "rightArrow.json", "donut.png"} {
		_, err := os.Stat(filepath.Join(dir, out))
		assert.NoError(t, err, out)
	}

	r = run(t, nil, nil, "shapes:\n  - name: nope\n", "--batch", "-")
	assertUsageError(t, r.err)
}

func TestBatchCmdCanceled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(log.WithTB(context.Background(), t, nil))
	cancel()
	r := run(t, ctx, nil, "shapes:\n  - name: rect\n    out: rect.txt\n", "--batch", "-")
	assert.ErrorIs(t, r.err, context.Canceled)
	_, err := os.Stat("rect.txt")
	assert.True(t, os.IsNotExist(err))
}
