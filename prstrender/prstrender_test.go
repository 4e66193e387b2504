package prstrender

import (
	"bytes"
	"context"
	"encoding/xml"
	"errors"
	"io"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"oss.terrastruct.com/diff"

	"oss.terrastruct.com/prstgeom/lib/go2"
	"oss.terrastruct.com/prstgeom/lib/log"
	"oss.terrastruct.com/prstgeom/prstgeom"
)

func bareOpts() *RenderOpts {
	return &RenderOpts{
		Stroke:      "#000",
		NoXMLTag:    go2.Pointer(true),
		OmitVersion: go2.Pointer(true),
	}
}

func TestRenderShape(t *testing.T) {
	t.Parallel()
	ctx := log.WithTB(context.Background(), t, nil)

	out, err := RenderShape(ctx, "rect", 100, 50, nil, bareOpts())
	assert.NoError(t, err)
	assert.Equal(t,
		`<svg xmlns="http://www.w3.org/2000/svg" width="120" height="70" viewBox="-10 -10 120 70">`+
			`<path d="M 0 0 L 100 0 L 100 50 L 0 50 Z" fill="#7FA7E0" fill-rule="nonzero" stroke="#000" stroke-width="2" class="shape" style="stroke-linejoin:round;stroke-linecap:round;" />`+
			`</svg>`,
		string(out))
}

func TestRenderShapeVariants(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		shape    string
		opts     func() *RenderOpts
		contains []string
		excludes []string
	}{
		{
			name:     "open",
			shape:    "straightConnector1",
			opts:     bareOpts,
			contains: []string{`fill="none"`, `d="M 0 0 L 100 100"`},
			excludes: []string{`fill-rule`},
		},
		{
			name:     "detail_lines",
			shape:    "can",
			opts:     bareOpts,
			contains: []string{`class="shape"`, `class="shape-stroke"`},
		},
		{
			name:  "darkened_stroke",
			shape: "ellipse",
			opts: func() *RenderOpts {
				opts := bareOpts()
				opts.Stroke = ""
				opts.Fill = "#ffffff"
				return opts
			},
			contains: []string{`fill="#ffffff"`, `stroke="#e`},
		},
		{
			name:  "gradient",
			shape: "roundRect",
			opts: func() *RenderOpts {
				opts := bareOpts()
				opts.Fill = "linear-gradient(90deg, #fff, #000)"
				return opts
			},
			contains: []string{`<defs><linearGradient id="grad-`, `fill="url('#grad-`, `<stop offset="100.00%" stop-color="#000" />`},
		},
		{
			name:  "dashed",
			shape: "rect",
			opts: func() *RenderOpts {
				opts := bareOpts()
				opts.StrokeDash = go2.Pointer(4.)
				return opts
			},
			contains: []string{`stroke-dasharray:4.000000,8.000000;`},
		},
		{
			name:  "header",
			shape: "rect",
			opts: func() *RenderOpts {
				return &RenderOpts{OmitVersion: go2.Pointer(true)}
			},
			contains: []string{`<?xml version="1.0" encoding="utf-8"?><svg`},
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			ctx := log.WithTB(context.Background(), t, nil)
			out, err := RenderShape(ctx, tc.shape, 100, 100, nil, tc.opts())
			if !assert.NoError(t, err) {
				return
			}
			for _, s := range tc.contains {
				assert.Contains(t, string(out), s)
			}
			for _, s := range tc.excludes {
				assert.NotContains(t, string(out), s)
			}
			assertWellFormed(t, out)
		})
	}
}

func TestRenderShapeTestdata(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name string
		w, h float64
	}{
		{"callout1", 100, 60},
		{"uturnArrow", 100, 100},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			ctx := log.WithTB(context.Background(), t, nil)
			out, err := RenderShape(ctx, tc.name, tc.w, tc.h, nil, bareOpts())
			require.NoError(t, err)
			err = diff.Testdata(filepath.Join("testdata", t.Name()), ".svg", out)
			require.NoError(t, err)
		})
	}
}

func TestRenderShapeErrors(t *testing.T) {
	t.Parallel()
	ctx := log.WithTB(context.Background(), t, nil)

	_, err := RenderShape(ctx, "nope", 10, 10, nil, nil)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unknown preset shape")

	_, err = RenderShape(ctx, "rect", 10, 10, nil, &RenderOpts{Fill: "not-a-color"})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not-a-color")
}

func TestRenderGallery(t *testing.T) {
	t.Parallel()
	ctx := log.WithTB(context.Background(), t, nil)

	out, err := RenderGallery(ctx, &RenderOpts{OmitVersion: go2.Pointer(true)})
	if !assert.NoError(t, err) {
		return
	}
	s := string(out)
	assert.Equal(t, len(prstgeom.Names()), strings.Count(s, `class="shape"`))
	assert.Equal(t, len(prstgeom.Families()), strings.Count(s, `class="family"`))
	assert.Contains(t, s, ">accentBorderCallout3</text>")
	assertWellFormed(t, out)

	again, err := RenderGallery(ctx, &RenderOpts{OmitVersion: go2.Pointer(true)})
	assert.NoError(t, err)
	assert.True(t, bytes.Equal(out, again))
}

func TestRenderGalleryTestdata(t *testing.T) {
	t.Parallel()
	ctx := log.WithTB(context.Background(), t, nil)

	opts := bareOpts()
	opts.Fill = "#ffffff"
	opts.Columns = go2.Pointer(int64(2))
	opts.Shapes = []string{"triangle", "diamond"}
	out, err := RenderGallery(ctx, opts)
	require.NoError(t, err)
	assertWellFormed(t, out)
	err = diff.Testdata(filepath.Join("testdata", t.Name()), ".svg", out)
	require.NoError(t, err)

	opts.Shapes = []string{"star9"}
	_, err = RenderGallery(ctx, opts)
	assert.ErrorIs(t, err, ErrUnknownShape)
}

func assertWellFormed(t *testing.T, doc []byte) {
	t.Helper()
	dec := xml.NewDecoder(bytes.NewReader(doc))
	for {
		_, err := dec.Token()
		if errors.Is(err, io.EOF) {
			return
		}
		if !assert.NoError(t, err) {
			return
		}
	}
}
