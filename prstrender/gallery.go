package prstrender

import (
	"bytes"
	"context"
	"fmt"

	"cdr.dev/slog"
	"oss.terrastruct.com/xdefer"

	"oss.terrastruct.com/prstgeom/lib/color"
	"oss.terrastruct.com/prstgeom/lib/go2"
	"oss.terrastruct.com/prstgeom/lib/log"
	"oss.terrastruct.com/prstgeom/lib/svg/style"
	"oss.terrastruct.com/prstgeom/prstgeom"
)

const (
	headerHeight  = 22
	labelHeight   = 16
	labelFontSize = 11
)

// RenderGallery renders every preset with default adjustments in a grid,
// one band per family. Cells within a band follow Names order. A fill given
// in opts colors the bands too.
func RenderGallery(ctx context.Context, opts *RenderOpts) (_ []byte, err error) {
	defer xdefer.Errorf(&err, "failed to render gallery")

	if opts == nil {
		opts = &RenderOpts{}
	}
	cols := int(go2.Max(go2.Deref(opts.Columns, DEFAULT_COLUMNS), 1))
	cell := float64(go2.Max(go2.Deref(opts.Cell, DEFAULT_CELL), 40))
	inset := cell / 8

	only := make(map[string]bool, len(opts.Shapes))
	for _, name := range opts.Shapes {
		if !prstgeom.Has(name) {
			return nil, fmt.Errorf("%w: %q", ErrUnknownShape, name)
		}
		only[name] = true
	}

	byFamily := make(map[string][]string)
	for _, name := range prstgeom.Names() {
		if len(only) > 0 && !only[name] {
			continue
		}
		f := prstgeom.Family(name)
		byFamily[f] = append(byFamily[f], name)
	}

	families := prstgeom.Families()
	palette := color.Palette(len(families))
	buf := &bytes.Buffer{}
	defs := make(map[string]struct{})
	body := &bytes.Buffer{}
	y := 0.
	count := 0
	for i, family := range families {
		names := byFamily[family]
		if len(names) == 0 {
			continue
		}
		p, err := resolvePaint(opts, palette[i])
		if err != nil {
			return nil, err
		}
		if p.defs != "" {
			if _, ok := defs[p.defs]; !ok {
				defs[p.defs] = struct{}{}
				fmt.Fprintf(buf, "<defs>%s</defs>", p.defs)
			}
		}

		bandFill := palette[i]
		if opts.Fill != "" && !color.IsGradient(opts.Fill) {
			bandFill = opts.Fill
		}
		band := style.NewElement("rect")
		band.X = 0
		band.Y = y
		band.Width = float64(cols) * cell
		band.Height = headerHeight
		band.Fill = bandFill
		band.ClassName = "family"
		body.WriteString(band.Render())
		body.WriteString(text(8, y+headerHeight-7, "start", style.LabelColor(bandFill), family))
		y += headerHeight

		for j, name := range names {
			x := float64(j%cols) * cell
			top := y + float64(j/cols)*cell
			w := cell - 2*inset
			h := cell - 2*inset - labelHeight
			res, _ := prstgeom.Generate(name, w, h, nil)

			g := style.NewElement("g")
			g.SetTranslate(x+inset, top+inset)
			g.Content = shapeElements(res, p)
			body.WriteString(g.Render())
			body.WriteString(text(x+cell/2, top+cell-inset/2, "middle", "#0A0F25", name))
			count++
		}
		y += float64((len(names)+cols-1)/cols) * cell
		log.Debug(ctx, "rendered family", slog.F("family", family), slog.F("shapes", len(names)))
	}
	buf.Write(body.Bytes())

	log.Info(ctx, "rendered gallery", slog.F("shapes", count), slog.F("families", len(families)))
	return document(opts, 0, 0, float64(cols)*cell, y, buf.String()), nil
}

func text(x, y float64, anchor, fill, s string) string {
	el := style.NewElement("text")
	el.X = x
	el.Y = y
	el.Fill = fill
	el.Attributes = fmt.Sprintf(`text-anchor="%s" font-family="sans-serif" font-size="%d"`, anchor, labelFontSize)
	el.SetText(s)
	return el.Render()
}
