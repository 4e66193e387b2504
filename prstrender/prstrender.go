// Package prstrender writes preset geometry as standalone SVG documents.
package prstrender

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"math"

	"cdr.dev/slog"
	"oss.terrastruct.com/xdefer"

	"oss.terrastruct.com/prstgeom/lib/color"
	"oss.terrastruct.com/prstgeom/lib/env"
	"oss.terrastruct.com/prstgeom/lib/go2"
	"oss.terrastruct.com/prstgeom/lib/log"
	"oss.terrastruct.com/prstgeom/lib/svg/style"
	"oss.terrastruct.com/prstgeom/lib/version"
	"oss.terrastruct.com/prstgeom/prstgeom"
)

const (
	DEFAULT_PADDING      = 10
	DEFAULT_STROKE_WIDTH = 2
	DEFAULT_COLUMNS      = 10
	DEFAULT_CELL         = 120
)

var ErrUnknownShape = errors.New("unknown preset shape")

type RenderOpts struct {
	Pad *int64
	// Fill is a CSS color or gradient. Gallery cells are colored by family
	// when it is empty.
	Fill string
	// Stroke defaults to Fill darkened.
	Stroke      string
	StrokeWidth *float64
	StrokeDash  *float64

	// gallery only
	Columns *int64
	Cell    *int64
	// Shapes limits the gallery to the named presets when not empty.
	Shapes []string

	NoXMLTag    *bool
	OmitVersion *bool
}

type paint struct {
	fill   string
	stroke string
	width  float64
	dash   float64
	defs   string
}

func resolvePaint(opts *RenderOpts, fill string) (paint, error) {
	p := paint{
		fill:   fill,
		stroke: opts.Stroke,
		width:  go2.Deref(opts.StrokeWidth, DEFAULT_STROKE_WIDTH),
		dash:   go2.Deref(opts.StrokeDash, 0),
	}
	if opts.Fill != "" {
		p.fill = opts.Fill
	}
	if p.stroke == "" {
		stroke, err := color.Darken(p.fill)
		if err != nil {
			return paint{}, fmt.Errorf("invalid fill %q: %w", p.fill, err)
		}
		p.stroke = stroke
	}
	if color.IsGradient(p.fill) {
		g, err := color.ParseGradient(p.fill)
		if err != nil {
			return paint{}, err
		}
		p.defs = g.SVG()
		p.fill = g.URL()
	}
	return p, nil
}

// shapeElements renders the outline of res followed by its stroke-only
// detail lines.
func shapeElements(res prstgeom.PathResult, p paint) string {
	el := style.NewElement("path")
	el.D = res.Path
	el.Fill = p.fill
	el.FillRule = "nonzero"
	if res.NoFill {
		el.Fill = color.None
		el.FillRule = ""
	}
	el.Stroke = p.stroke
	el.StrokeWidth = p.width
	el.ClassName = "shape"
	el.Style = style.StrokeStyle(p.width, p.dash)
	out := el.Render()

	if res.HasStroke() {
		detail := style.NewElement("path")
		detail.D = res.StrokePath
		detail.Fill = color.None
		detail.Stroke = p.stroke
		detail.StrokeWidth = p.width
		detail.ClassName = "shape-stroke"
		detail.Style = style.StrokeStyle(p.width, p.dash)
		out += detail.Render()
	}
	return out
}

// RenderShape generates the named preset in a w by h box and renders it.
func RenderShape(ctx context.Context, name string, w, h float64, adj prstgeom.Adjustments, opts *RenderOpts) (_ []byte, err error) {
	defer xdefer.Errorf(&err, "failed to render %s", name)

	res, ok := prstgeom.Generate(name, w, h, adj)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownShape, name)
	}
	log.Debug(ctx, "generated preset",
		slog.F("name", name),
		slog.F("width", w),
		slog.F("height", h),
		slog.F("adj", adj),
		slog.F("noFill", res.NoFill),
	)
	return RenderResult(res, w, h, opts)
}

// RenderResult renders an already generated result.
func RenderResult(res prstgeom.PathResult, w, h float64, opts *RenderOpts) ([]byte, error) {
	if opts == nil {
		opts = &RenderOpts{}
	}
	p, err := resolvePaint(opts, color.DefaultFill)
	if err != nil {
		return nil, err
	}

	pad := float64(go2.Deref(opts.Pad, DEFAULT_PADDING))
	buf := &bytes.Buffer{}
	if p.defs != "" {
		fmt.Fprintf(buf, "<defs>%s</defs>", p.defs)
	}
	buf.WriteString(shapeElements(res, p))
	return document(opts, -pad, -pad, w+2*pad, h+2*pad, buf.String()), nil
}

func document(opts *RenderOpts, left, top, w, h float64, content string) []byte {
	xmlTag := ""
	if opts.NoXMLTag == nil || !*opts.NoXMLTag {
		xmlTag = `<?xml version="1.0" encoding="utf-8"?>`
	}
	versionAttr := ""
	if !env.Test() && (opts.OmitVersion == nil || !*opts.OmitVersion) {
		versionAttr = fmt.Sprintf(` data-prstgeom-version="%s"`, version.Version)
	}
	width := int(math.Ceil(w))
	height := int(math.Ceil(h))
	return []byte(fmt.Sprintf(`%s<svg xmlns="http://www.w3.org/2000/svg"%s width="%d" height="%d" viewBox="%v %v %v %v">%s</svg>`,
		xmlTag,
		versionAttr,
		width, height,
		left, top, w, h,
		content,
	))
}
