// Package prstraster rasterizes preset geometry with golang.org/x/image/vector.
//
// Filled figures accumulate signed coverage, so figures wound against their
// enclosing outline cut holes. Outlines are stroked by filling one thin quad
// per flattened segment plus a square at every joint.
package prstraster

import (
	"context"
	"fmt"
	"image"
	"image/draw"
	"math"

	"cdr.dev/slog"
	"golang.org/x/image/vector"
	"oss.terrastruct.com/xdefer"

	"oss.terrastruct.com/prstgeom/lib/color"
	"oss.terrastruct.com/prstgeom/lib/go2"
	"oss.terrastruct.com/prstgeom/lib/log"
	"oss.terrastruct.com/prstgeom/lib/png"
	"oss.terrastruct.com/prstgeom/lib/svg"
	"oss.terrastruct.com/prstgeom/prstgeom"
)

const (
	DEFAULT_SCALE        = 1
	DEFAULT_PADDING      = 4
	DEFAULT_STROKE_WIDTH = 2

	// curves are flattened into this many segments when stroked
	flattenSteps = 16
	maxPixels    = 8192
)

type RasterOpts struct {
	// Scale is pixels per unit of the shape box.
	Scale *float64
	Pad   *int64

	Fill        string
	Stroke      string
	StrokeWidth *float64
	// Background is painted first. Empty leaves the image transparent.
	Background string
}

// Rasterize draws res, generated for a w by h box, into a new image.
func Rasterize(ctx context.Context, res prstgeom.PathResult, w, h float64, opts *RasterOpts) (_ *image.RGBA, err error) {
	defer xdefer.Errorf(&err, "failed to rasterize")

	if opts == nil {
		opts = &RasterOpts{}
	}
	scale := go2.Deref(opts.Scale, DEFAULT_SCALE)
	if scale <= 0 || math.IsNaN(scale) {
		return nil, fmt.Errorf("invalid scale %v", scale)
	}
	pad := float64(go2.Deref(opts.Pad, DEFAULT_PADDING))
	width := int(math.Ceil((w + 2*pad) * scale))
	height := int(math.Ceil((h + 2*pad) * scale))
	if width <= 0 || height <= 0 || width > maxPixels || height > maxPixels {
		return nil, fmt.Errorf("invalid image size %dx%d", width, height)
	}

	fill, stroke, err := paints(opts)
	if err != nil {
		return nil, err
	}

	cmds, err := svg.Parse(res.Path)
	if err != nil {
		return nil, err
	}
	var detail []svg.Command
	if res.HasStroke() {
		detail, err = svg.Parse(res.StrokePath)
		if err != nil {
			return nil, err
		}
	}

	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	if opts.Background != "" {
		bg, err := rgba(opts.Background)
		if err != nil {
			return nil, err
		}
		draw.Draw(dst, dst.Bounds(), image.NewUniform(bg), image.Point{}, draw.Src)
	}

	t := transform{pad: pad, scale: scale}
	if !res.NoFill {
		z := vector.NewRasterizer(width, height)
		fillPath(z, t, cmds)
		z.Draw(dst, dst.Bounds(), fill, image.Point{})
	}

	hw := go2.Deref(opts.StrokeWidth, DEFAULT_STROKE_WIDTH) * scale / 2
	if hw > 0 {
		z := vector.NewRasterizer(width, height)
		segments := 0
		for _, c := range [][]svg.Command{cmds, detail} {
			for _, line := range svg.Flatten(c, flattenSteps) {
				segments += strokeLine(z, t, line, hw)
			}
		}
		z.Draw(dst, dst.Bounds(), stroke, image.Point{})
		log.Debug(ctx, "stroked outline", slog.F("segments", segments), slog.F("halfWidth", hw))
	}

	log.Debug(ctx, "rasterized", slog.F("width", width), slog.F("height", height), slog.F("noFill", res.NoFill))
	return dst, nil
}

// EncodePNG rasterizes res and encodes it as PNG.
func EncodePNG(ctx context.Context, res prstgeom.PathResult, w, h float64, opts *RasterOpts) ([]byte, error) {
	img, err := Rasterize(ctx, res, w, h, opts)
	if err != nil {
		return nil, err
	}
	return png.Export(img)
}

func paints(opts *RasterOpts) (fill, stroke image.Image, err error) {
	f := opts.Fill
	if f == "" {
		f = color.DefaultFill
	}
	s := opts.Stroke
	if s == "" {
		s, err = color.Darken(f)
		if err != nil {
			return nil, nil, fmt.Errorf("invalid fill %q: %w", f, err)
		}
	}
	if color.IsGradient(f) {
		g, err := color.ParseGradient(f)
		if err != nil {
			return nil, nil, err
		}
		f = g.FirstColor()
	}
	fc, err := rgba(f)
	if err != nil {
		return nil, nil, err
	}
	sc, err := rgba(s)
	if err != nil {
		return nil, nil, err
	}
	return image.NewUniform(fc), image.NewUniform(sc), nil
}
