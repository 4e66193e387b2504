package prstcli

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"path/filepath"
	"runtime"
	"sync/atomic"

	"cdr.dev/slog"
	"github.com/dustin/go-humanize"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	"oss.terrastruct.com/prstgeom/lib/go2"
	"oss.terrastruct.com/prstgeom/lib/log"
	"oss.terrastruct.com/prstgeom/lib/xmain"
	"oss.terrastruct.com/prstgeom/prstgeom"
)

type batchFile struct {
	Shapes []batchShape `yaml:"shapes"`
}

// batchShape is one entry of a batch file. Unset sizes fall back to the
// --width and --height flags; an unset format is taken from the extension
// of out, then from --format.
type batchShape struct {
	Name   string             `yaml:"name"`
	Width  *float64           `yaml:"width"`
	Height *float64           `yaml:"height"`
	RawAdj map[string]float64 `yaml:"adj"`
	Format string             `yaml:"format"`
	Out    string             `yaml:"out"`

	Adj prstgeom.Adjustments `yaml:"-"`
}

// adjustments checks that every raw adjustment is a whole number. YAML
// would otherwise truncate 0.5 to 0 on its way into an int64.
func adjustments(raw map[string]float64) (prstgeom.Adjustments, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	adj := make(prstgeom.Adjustments, len(raw))
	for k, v := range raw {
		if v != math.Trunc(v) || math.Abs(v) >= 1<<53 {
			return nil, fmt.Errorf("adj %q: %v is not an integer", k, v)
		}
		adj[k] = int64(v)
	}
	return adj, nil
}

func parseBatch(b []byte) (*batchFile, error) {
	var bf batchFile
	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)
	err := dec.Decode(&bf)
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}
	if len(bf.Shapes) == 0 {
		return nil, errors.New("no shapes listed")
	}
	for i := range bf.Shapes {
		s := &bf.Shapes[i]
		if s.Name == "" {
			return nil, fmt.Errorf("shapes[%d]: missing name", i)
		}
		if !prstgeom.Has(s.Name) {
			return nil, fmt.Errorf("shapes[%d]: unknown shape %q", i, s.Name)
		}
		if s.Out == "-" {
			return nil, fmt.Errorf("shapes[%d]: batch output cannot be written to stdout", i)
		}
		if s.Format != "" {
			if _, err := parseFormat(s.Format); err != nil {
				return nil, fmt.Errorf("shapes[%d]: %w", i, err)
			}
		}
		if err := checkSize(go2.Deref(s.Width, 0), go2.Deref(s.Height, 0)); err != nil {
			return nil, fmt.Errorf("shapes[%d]: %w", i, err)
		}
		adj, err := adjustments(s.RawAdj)
		if err != nil {
			return nil, fmt.Errorf("shapes[%d]: %w", i, err)
		}
		s.Adj = adj
	}
	return &bf, nil
}

func (s batchShape) format(def format) format {
	if s.Format != "" {
		f, _ := parseFormat(s.Format)
		return f
	}
	if f, ok := formatFromPath(s.Out); ok {
		return f
	}
	return def
}

func extension(f format) string {
	if f == formatPath {
		return "txt"
	}
	return string(f)
}

// batchCmd renders every entry of the batch file at fp, up to GOMAXPROCS
// entries at a time. Relative output paths are resolved against the
// directory of the batch file. The first failing entry cancels the rest.
func batchCmd(ctx context.Context, ms *xmain.State, fp string, w, h float64, cfg outputConfig) error {
	b, err := ms.ReadPath(fp)
	if err != nil {
		return err
	}
	bf, err := parseBatch(b)
	if err != nil {
		return xmain.UsageErrorf("invalid batch file %s: %v", fp, err)
	}

	dir := "."
	if fp != "-" {
		dir = filepath.Dir(fp)
	}

	var written int64
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, s := range bf.Shapes {
		i, s := i, s
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			ctx := log.WithFields(ctx, slog.F("index", i), slog.F("name", s.Name))
			entry := cfg
			entry.format = s.format(cfg.format)
			out := s.Out
			if out == "" {
				out = fmt.Sprintf("%s.%s", s.Name, extension(entry.format))
			}
			if !filepath.IsAbs(out) {
				out = filepath.Join(dir, out)
			}

			data, err := generate(ctx, s.Name, go2.Deref(s.Width, w), go2.Deref(s.Height, h), s.Adj, entry)
			if err != nil {
				return fmt.Errorf("shapes[%d]: %w", i, err)
			}
			if err := ms.WritePath(out, data); err != nil {
				return err
			}
			atomic.AddInt64(&written, int64(len(data)))
			log.Debug(ctx, "wrote batch entry", slog.F("out", out), slog.F("bytes", len(data)))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	ms.Log.Success.Printf("rendered %d shapes (%s) from %v", len(bf.Shapes), humanize.Bytes(uint64(written)), fp)
	return nil
}
