package prstraster

import (
	"bytes"
	"context"
	"image"
	imgcolor "image/color"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"oss.terrastruct.com/prstgeom/lib/go2"
	"oss.terrastruct.com/prstgeom/lib/log"
	"oss.terrastruct.com/prstgeom/prstgeom"
)

func fillOnly(fill string) *RasterOpts {
	return &RasterOpts{
		Pad:         go2.Pointer[int64](0),
		Fill:        fill,
		Stroke:      "#000000",
		StrokeWidth: go2.Pointer(0.),
	}
}

func generate(t *testing.T, name string, w, h float64) prstgeom.PathResult {
	t.Helper()
	res, ok := prstgeom.Generate(name, w, h, nil)
	assert.True(t, ok, name)
	return res
}

func TestRasterizeRectFillsBox(t *testing.T) {
	t.Parallel()
	ctx := log.WithTB(context.Background(), t, nil)

	img, err := Rasterize(ctx, generate(t, "rect", 100, 50), 100, 50, fillOnly("#ff0000"))
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 100, 50), img.Bounds())
	red := imgcolor.RGBA{R: 255, A: 255}
	for _, p := range []image.Point{{0, 0}, {50, 25}, {99, 49}} {
		assert.Equal(t, red, img.RGBAAt(p.X, p.Y), p)
	}
}

func TestRasterizeWinding(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name   string
		filled []image.Point
		empty  []image.Point
	}{
		{
			name:   "ellipse",
			filled: []image.Point{{50, 50}, {50, 5}},
			empty:  []image.Point{{1, 1}, {98, 98}},
		},
		{
			name:   "donut",
			filled: []image.Point{{50, 10}, {10, 50}},
			empty:  []image.Point{{50, 50}},
		},
		{
			name:   "frame",
			filled: []image.Point{{5, 5}, {95, 50}},
			empty:  []image.Point{{50, 50}},
		},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			ctx := log.WithTB(context.Background(), t, nil)
			img, err := Rasterize(ctx, generate(t, tc.name, 100, 100), 100, 100, fillOnly("#0000ff"))
			require.NoError(t, err)
			for _, p := range tc.filled {
				assert.Equal(t, uint8(255), img.RGBAAt(p.X, p.Y).A, p)
			}
			for _, p := range tc.empty {
				assert.Equal(t, uint8(0), img.RGBAAt(p.X, p.Y).A, p)
			}
		})
	}
}

func TestRasterizeStroke(t *testing.T) {
	t.Parallel()
	ctx := log.WithTB(context.Background(), t, nil)

	res := generate(t, "straightConnector1", 100, 100)
	img, err := Rasterize(ctx, res, 100, 100, fillOnly("#0000ff"))
	require.NoError(t, err)
	assert.Equal(t, uint8(0), img.RGBAAt(50, 50).A)

	img, err = Rasterize(ctx, res, 100, 100, &RasterOpts{
		Pad:         go2.Pointer[int64](0),
		Stroke:      "#00ff00",
		StrokeWidth: go2.Pointer(4.),
		Background:  "white",
	})
	require.NoError(t, err)
	assert.Equal(t, imgcolor.RGBA{G: 255, A: 255}, img.RGBAAt(50, 50))
	assert.Equal(t, imgcolor.RGBA{R: 255, G: 255, B: 255, A: 255}, img.RGBAAt(90, 10))
}

func TestRasterizeErrors(t *testing.T) {
	t.Parallel()
	ctx := log.WithTB(context.Background(), t, nil)
	res := generate(t, "rect", 10, 10)

	_, err := Rasterize(ctx, res, 10, 10, &RasterOpts{Scale: go2.Pointer(0.)})
	assert.Error(t, err)
	_, err = Rasterize(ctx, res, 1e6, 10, nil)
	assert.Error(t, err)
	_, err = Rasterize(ctx, res, 10, 10, &RasterOpts{Fill: "bogus"})
	assert.Error(t, err)
	_, err = Rasterize(ctx, prstgeom.PathResult{Path: "L 1 1"}, 10, 10, nil)
	assert.Error(t, err)
}

func TestEncodePNG(t *testing.T) {
	t.Parallel()
	ctx := log.WithTB(context.Background(), t, nil)

	b, err := EncodePNG(ctx, generate(t, "star5", 64, 64), 64, 64, &RasterOpts{Scale: go2.Pointer(2.)})
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(b, []byte("\x89PNG\r\n\x1a\n")))
}

func TestEncodePNGRect(t *testing.T) {
	t.Parallel()
	ctx := log.WithTB(context.Background(), t, nil)

	res := generate(t, "rect", 40, 20)
	assert.False(t, res.HasStroke())
	b, err := EncodePNG(ctx, res, 40, 20, fillOnly("#ff0000"))
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(b))
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 40, 20), img.Bounds())
	r, g, b2, a := img.At(20, 10).RGBA()
	assert.Equal(t, []uint32{0xffff, 0, 0, 0xffff}, []uint32{r, g, b2, a})
}

func TestRasterizeEveryPreset(t *testing.T) {
	t.Parallel()
	ctx := log.WithTB(context.Background(), t, nil)

	for _, name := range prstgeom.Names() {
		res := generate(t, name, 48, 32)
		img, err := Rasterize(ctx, res, 48, 32, nil)
		if assert.NoError(t, err, name) {
			assert.Equal(t, image.Rect(0, 0, 56, 40), img.Bounds(), name)
		}
	}
}
