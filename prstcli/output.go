package prstcli

import (
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"cdr.dev/slog"
	"oss.terrastruct.com/xdefer"

	"oss.terrastruct.com/prstgeom/lib/log"
	"oss.terrastruct.com/prstgeom/prstgeom"
	"oss.terrastruct.com/prstgeom/prstraster"
	"oss.terrastruct.com/prstgeom/prstrender"
)

type format string

const (
	formatPath format = "path"
	formatJSON format = "json"
	formatSVG  format = "svg"
	formatPNG  format = "png"
)

var formats = []format{formatPath, formatJSON, formatSVG, formatPNG}

func parseFormat(s string) (format, error) {
	for _, f := range formats {
		if strings.EqualFold(s, string(f)) {
			return f, nil
		}
	}
	return "", fmt.Errorf("unsupported format %q, expected one of path, json, svg or png", s)
}

func formatFromPath(fp string) (format, bool) {
	switch strings.ToLower(filepath.Ext(fp)) {
	case ".svg":
		return formatSVG, true
	case ".png":
		return formatPNG, true
	case ".json":
		return formatJSON, true
	case ".txt", ".path":
		return formatPath, true
	}
	return "", false
}

type outputConfig struct {
	format format
	render *prstrender.RenderOpts
	raster *prstraster.RasterOpts
}

// parseAdjustments reads key=value pairs. Later pairs win.
func parseAdjustments(pairs []string) (prstgeom.Adjustments, error) {
	if len(pairs) == 0 {
		return nil, nil
	}
	adj := make(prstgeom.Adjustments, len(pairs))
	for _, p := range pairs {
		k, v, ok := strings.Cut(p, "=")
		k = strings.TrimSpace(k)
		if !ok || k == "" {
			return nil, fmt.Errorf("invalid adjustment %q, expected key=value", p)
		}
		i, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid adjustment %q: value must be an integer", p)
		}
		adj[k] = i
	}
	return adj, nil
}

type jsonShape struct {
	Name        string               `json:"name"`
	Family      string               `json:"family"`
	Width       float64              `json:"width"`
	Height      float64              `json:"height"`
	Adjustments prstgeom.Adjustments `json:"adj,omitempty"`
	prstgeom.PathResult
}

func generate(ctx context.Context, name string, w, h float64, adj prstgeom.Adjustments, cfg outputConfig) (_ []byte, err error) {
	defer xdefer.Errorf(&err, "failed to generate %s as %s", name, cfg.format)

	if w == 0 || h == 0 {
		log.Warn(ctx, "degenerate shape box", slog.F("name", name), slog.F("width", w), slog.F("height", h))
	}

	if cfg.format == formatSVG {
		return prstrender.RenderShape(ctx, name, w, h, adj, cfg.render)
	}
	res, ok := prstgeom.Generate(name, w, h, adj)
	if !ok {
		return nil, fmt.Errorf("unknown shape %q", name)
	}
	switch cfg.format {
	case formatJSON:
		b, err := json.MarshalIndent(jsonShape{
			Name:        name,
			Family:      prstgeom.Family(name),
			Width:       w,
			Height:      h,
			Adjustments: adj,
			PathResult:  res,
		}, "", "  ")
		if err != nil {
			return nil, err
		}
		return append(b, '\n'), nil
	case formatPNG:
		return prstraster.EncodePNG(ctx, res, w, h, cfg.raster)
	default:
		out := res.Path + "\n"
		if res.HasStroke() {
			out += res.StrokePath + "\n"
		}
		return []byte(out), nil
	}
}
