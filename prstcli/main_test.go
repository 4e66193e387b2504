package prstcli

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"oss.terrastruct.com/xos"

	"oss.terrastruct.com/prstgeom/lib/log"
	"oss.terrastruct.com/prstgeom/lib/version"
	"oss.terrastruct.com/prstgeom/lib/xmain"
	"oss.terrastruct.com/prstgeom/prstgeom"
)

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error { return nil }

type testRun struct {
	stdout *bytes.Buffer
	err    error
}

func run(t *testing.T, ctx context.Context, environ []string, stdin string, args ...string) testRun {
	t.Helper()
	stdout := &bytes.Buffer{}
	ms := xmain.NewState("prstgeom", args, xos.NewEnv(environ), strings.NewReader(stdin), nopCloser{stdout}, nopCloser{io.Discard})
	if ctx == nil {
		ctx = log.WithTB(context.Background(), t, nil)
	}
	return testRun{stdout: stdout, err: Run(ctx, ms)}
}

func assertUsageError(t *testing.T, err error) {
	t.Helper()
	var uerr xmain.UsageError
	assert.True(t, errors.As(err, &uerr), "expected usage error, got %v", err)
}

func TestRun(t *testing.T) {
	t.Parallel()

	t.Run("path", func(t *testing.T) {
		t.Parallel()
		r := run(t, nil, nil, "", "rect", "-w", "100", "-h", "50")
		assert.NoError(t, r.err)
		assert.Equal(t, "M 0 0 L 100 0 L 100 50 L 0 50 Z\n", r.stdout.String())
	})

	t.Run("adjustments", func(t *testing.T) {
		t.Parallel()
		r := run(t, nil, nil, "", "roundRect", "--adj", "val=50000")
		assert.NoError(t, r.err)
		exp, _ := prstgeom.Generate("roundRect", 100, 100, prstgeom.Adjustments{"val": 50000})
		assert.Equal(t, exp.Path+"\n", r.stdout.String())
	})

	t.Run("stroke_path_line", func(t *testing.T) {
		t.Parallel()
		r := run(t, nil, nil, "", "can")
		assert.NoError(t, r.err)
		assert.Len(t, strings.Split(strings.TrimSpace(r.stdout.String()), "\n"), 2)
	})

	t.Run("json", func(t *testing.T) {
		t.Parallel()
		r := run(t, nil, nil, "", "--format=json", "line", "-w", "30", "-h", "40")
		require.NoError(t, r.err)
		var got jsonShape
		require.NoError(t, json.Unmarshal(r.stdout.Bytes(), &got))
		assert.Equal(t, "line", got.Name)
		assert.Equal(t, "connectors", got.Family)
		assert.True(t, got.NoFill)
		assert.Equal(t, "M 0 0 L 30 40", got.Path)
	})

	t.Run("env_format", func(t *testing.T) {
		t.Parallel()
		r := run(t, nil, []string{"PRSTGEOM_FORMAT=svg", "PRSTGEOM_FILL=#ff0000"}, "", "star5")
		assert.NoError(t, r.err)
		assert.Contains(t, r.stdout.String(), "<svg")
		assert.Contains(t, r.stdout.String(), `fill="#ff0000"`)
	})

	t.Run("png", func(t *testing.T) {
		t.Parallel()
		r := run(t, nil, nil, "", "-f", "png", "heart")
		require.NoError(t, r.err)
		assert.True(t, bytes.HasPrefix(r.stdout.Bytes(), []byte("\x89PNG")))
	})

	t.Run("format_from_extension", func(t *testing.T) {
		t.Parallel()
		out := filepath.Join(t.TempDir(), "cloud.svg")
		r := run(t, nil, nil, "", "cloud", out)
		require.NoError(t, r.err)
		b, err := os.ReadFile(out)
		require.NoError(t, err)
		assert.Contains(t, string(b), "<svg")
	})

	t.Run("list", func(t *testing.T) {
		t.Parallel()
		r := run(t, nil, nil, "", "--list")
		assert.NoError(t, r.err)
		lines := strings.Split(strings.TrimSpace(r.stdout.String()), "\n")
		assert.Len(t, lines, len(prstgeom.Names()))
		assert.Contains(t, r.stdout.String(), "star5")
		assert.Contains(t, r.stdout.String(), "actionbuttons")
	})

	t.Run("gallery", func(t *testing.T) {
		t.Parallel()
		r := run(t, nil, nil, "", "--gallery")
		assert.NoError(t, r.err)
		assert.Equal(t, len(prstgeom.Names()), strings.Count(r.stdout.String(), `class="shape"`))
	})

	t.Run("gallery_only", func(t *testing.T) {
		t.Parallel()
		r := run(t, nil, nil, "", "--gallery", "--only", "star5", "--only", "rect")
		require.NoError(t, r.err)
		assert.Equal(t, 2, strings.Count(r.stdout.String(), `class="shape"`))
		assert.Contains(t, r.stdout.String(), ">star5</text>")
	})

	t.Run("version", func(t *testing.T) {
		t.Parallel()
		r := run(t, nil, nil, "", "--version")
		assert.NoError(t, r.err)
		assert.Equal(t, version.Version+"\n", r.stdout.String())
	})

	t.Run("help", func(t *testing.T) {
		t.Parallel()
		r := run(t, nil, nil, "", "--help")
		assert.NoError(t, r.err)
		assert.Contains(t, r.stdout.String(), "--width")
		assert.Contains(t, r.stdout.String(), "$PRSTGEOM_WIDTH")
	})
}

func TestRunUsageErrors(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name    string
		environ []string
		args    []string
	}{
		{name: "unknown_shape", args: []string{"star9"}},
		{name: "bad_adj", args: []string{"rect", "--adj", "adj1"}},
		{name: "bad_adj_value", args: []string{"rect", "--adj", "adj1=1.5"}},
		{name: "bad_format", args: []string{"rect", "-f", "pdf"}},
		{name: "negative_size", args: []string{"rect", "-w", "-1"}},
		{name: "too_many_args", args: []string{"rect", "a", "b"}},
		{name: "bad_flag", args: []string{"--nope"}},
		{name: "gallery_png", args: []string{"--gallery", "-f", "png"}},
		{name: "gallery_only_unknown", args: []string{"--gallery", "--only", "star9"}},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			r := run(t, nil, tc.environ, "", tc.args...)
			assertUsageError(t, r.err)
			assert.Empty(t, r.stdout.String())
		})
	}

	r := run(t, nil, []string{"PRSTGEOM_WIDTH=wide"}, "", "rect")
	assert.Error(t, r.err)
}
