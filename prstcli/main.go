// Package prstcli implements the prstgeom command.
package prstcli

import (
	"context"
	"errors"
	"fmt"
	"math"

	"cdr.dev/slog"
	"github.com/spf13/pflag"

	"oss.terrastruct.com/prstgeom/lib/go2"
	"oss.terrastruct.com/prstgeom/lib/log"
	"oss.terrastruct.com/prstgeom/lib/version"
	"oss.terrastruct.com/prstgeom/lib/xmain"
	"oss.terrastruct.com/prstgeom/prstgeom"
	"oss.terrastruct.com/prstgeom/prstraster"
	"oss.terrastruct.com/prstgeom/prstrender"
)

func Run(ctx context.Context, ms *xmain.State) (err error) {
	widthFlag, err := ms.Opts.Float64("PRSTGEOM_WIDTH", "width", "w", 100, "width of the shape box")
	if err != nil {
		return err
	}
	heightFlag, err := ms.Opts.Float64("PRSTGEOM_HEIGHT", "height", "h", 100, "height of the shape box")
	if err != nil {
		return err
	}
	adjFlag := ms.Opts.StringArray("PRSTGEOM_ADJ", "adj", "a", nil, "adjustment handle as key=value, e.g. adj1=25000. May be repeated. Ratios are in 1/100000 and angles in 1/60000 of a degree")
	formatFlag := ms.Opts.String("PRSTGEOM_FORMAT", "format", "f", string(formatPath), "output format: path, json, svg or png")
	fillFlag := ms.Opts.String("PRSTGEOM_FILL", "fill", "", "", "CSS fill color or gradient for svg and png output")
	strokeFlag := ms.Opts.String("PRSTGEOM_STROKE", "stroke", "", "", "CSS stroke color for svg and png output. Defaults to the fill darkened")
	strokeWidthFlag, err := ms.Opts.Float64("PRSTGEOM_STROKE_WIDTH", "stroke-width", "", prstrender.DEFAULT_STROKE_WIDTH, "stroke width for svg and png output")
	if err != nil {
		return err
	}
	padFlag, err := ms.Opts.Int64("PRSTGEOM_PAD", "pad", "", prstrender.DEFAULT_PADDING, "padding around the shape box for svg and png output")
	if err != nil {
		return err
	}
	scaleFlag, err := ms.Opts.Float64("PRSTGEOM_SCALE", "scale", "", prstraster.DEFAULT_SCALE, "pixels per unit for png output")
	if err != nil {
		return err
	}
	galleryFlag, err := ms.Opts.Bool("", "gallery", "", false, "render every preset into one svg")
	if err != nil {
		return err
	}
	onlyFlag := ms.Opts.StringArray("", "only", "", nil, "with --gallery, render just the named preset. May be repeated")
	listFlag, err := ms.Opts.Bool("", "list", "l", false, "list preset names with their family")
	if err != nil {
		return err
	}
	batchFlag := ms.Opts.String("", "batch", "b", "", "render every shape listed in a yaml batch file")
	debugFlag, err := ms.Opts.Bool("DEBUG", "debug", "d", false, "print debug logs.")
	if err != nil {
		ms.Log.Warn.Printf("Invalid DEBUG flag value ignored")
		debugFlag = go2.Pointer(false)
	}
	versionFlag, err := ms.Opts.Bool("", "version", "v", false, "get the version")
	if err != nil {
		return err
	}

	err = ms.Opts.Flags.Parse(ms.Opts.Args)
	if !errors.Is(err, pflag.ErrHelp) && err != nil {
		return xmain.UsageErrorf("failed to parse flags: %v", err)
	}
	if errors.Is(err, pflag.ErrHelp) {
		help(ms)
		return nil
	}

	if *debugFlag {
		ctx = log.Leveled(ctx, slog.LevelDebug)
	}
	if *versionFlag {
		fmt.Fprintln(ms.Stdout, version.Version)
		return nil
	}

	f, err := parseFormat(*formatFlag)
	if err != nil {
		return xmain.UsageErrorf("%v", err)
	}
	cfg := outputConfig{
		format: f,
		render: &prstrender.RenderOpts{
			Pad:         padFlag,
			Fill:        *fillFlag,
			Stroke:      *strokeFlag,
			StrokeWidth: strokeWidthFlag,
		},
		raster: &prstraster.RasterOpts{
			Scale:       scaleFlag,
			Pad:         padFlag,
			Fill:        *fillFlag,
			Stroke:      *strokeFlag,
			StrokeWidth: strokeWidthFlag,
		},
	}

	args := ms.Opts.Flags.Args()
	switch {
	case *listFlag:
		listCmd(ms)
		return nil
	case *galleryFlag:
		for _, name := range *onlyFlag {
			if !prstgeom.Has(name) {
				return xmain.UsageErrorf("unknown shape %q. Run with --list to see the available shapes", name)
			}
		}
		cfg.render.Shapes = *onlyFlag
		return galleryCmd(ctx, ms, cfg, args)
	case *batchFlag != "":
		if len(args) > 0 {
			return xmain.UsageErrorf("--batch takes no arguments")
		}
		if err := checkSize(*widthFlag, *heightFlag); err != nil {
			return xmain.UsageErrorf("%v", err)
		}
		return batchCmd(ctx, ms, *batchFlag, *widthFlag, *heightFlag, cfg)
	}

	if len(args) == 0 {
		help(ms)
		return nil
	} else if len(args) > 2 {
		return xmain.UsageErrorf("too many arguments passed")
	}

	name := args[0]
	if !prstgeom.Has(name) {
		return xmain.UsageErrorf("unknown shape %q. Run with --list to see the available shapes", name)
	}
	adj, err := parseAdjustments(*adjFlag)
	if err != nil {
		return xmain.UsageErrorf("%v", err)
	}
	if err := checkSize(*widthFlag, *heightFlag); err != nil {
		return xmain.UsageErrorf("%v", err)
	}

	outputPath := "-"
	if len(args) == 2 {
		outputPath = args[1]
	}
	if outputPath != "-" {
		if inferred, ok := formatFromPath(outputPath); ok && !ms.Opts.Flags.Changed("format") {
			cfg.format = inferred
		}
	}

	out, err := generate(ctx, name, *widthFlag, *heightFlag, adj, cfg)
	if err != nil {
		return err
	}
	return ms.WritePath(outputPath, out)
}

func checkSize(w, h float64) error {
	if w < 0 || h < 0 || math.IsNaN(w) || math.IsNaN(h) || math.IsInf(w, 0) || math.IsInf(h, 0) {
		return fmt.Errorf("invalid size %vx%v: width and height must be finite and not negative", w, h)
	}
	return nil
}

func galleryCmd(ctx context.Context, ms *xmain.State, cfg outputConfig, args []string) error {
	if len(args) > 1 {
		return xmain.UsageErrorf("--gallery takes at most one output path")
	}
	if cfg.format != formatSVG && ms.Opts.Flags.Changed("format") {
		return xmain.UsageErrorf("--gallery only renders svg")
	}
	outputPath := "-"
	if len(args) == 1 {
		outputPath = args[0]
	}
	out, err := prstrender.RenderGallery(ctx, cfg.render)
	if err != nil {
		return err
	}
	return ms.WritePath(outputPath, out)
}
