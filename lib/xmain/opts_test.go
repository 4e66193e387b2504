package xmain

import (
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"oss.terrastruct.com/cmdlog"
	"oss.terrastruct.com/xos"
)

func newOpts(environ []string, args ...string) *Opts {
	env := xos.NewEnv(environ)
	return NewOpts(env, cmdlog.Log(env, io.Discard), args)
}

func TestOptsEnvFallback(t *testing.T) {
	t.Parallel()

	o := newOpts([]string{"W=12.5", "N=3", "B=1", "S=x", "A=adj1=1,adj2=2"}, "--n", "4")
	w, err := o.Float64("W", "w", "", 1, "")
	assert.NoError(t, err)
	n, err := o.Int64("N", "n", "", 1, "")
	assert.NoError(t, err)
	b, err := o.Bool("B", "b", "", false, "")
	assert.NoError(t, err)
	s := o.String("S", "s", "", "", "")
	a := o.StringArray("A", "a", "", nil, "")

	assert.NoError(t, o.Flags.Parse(o.Args))
	assert.Equal(t, 12.5, *w)
	assert.Equal(t, int64(4), *n)
	assert.True(t, *b)
	assert.Equal(t, "x", *s)
	assert.Equal(t, []string{"adj1=1", "adj2=2"}, *a)
}

func TestOptsInvalidEnv(t *testing.T) {
	t.Parallel()

	o := newOpts([]string{"W=wide", "B=maybe"})
	_, err := o.Float64("W", "w", "", 1, "")
	assert.Error(t, err)
	_, err = o.Bool("B", "b", "", false, "")
	assert.Error(t, err)
}

func TestDefaults(t *testing.T) {
	t.Parallel()

	o := newOpts(nil)
	_, _ = o.Float64("PRSTGEOM_WIDTH", "width", "w", 100, "width of the shape box")
	o.String("", "fill", "", "", "fill color")
	d := o.Defaults()
	assert.Contains(t, d, "  -w, --width float")
	assert.Contains(t, d, "width of the shape box (default 100)")
	assert.Contains(t, d, "      --fill string")
	assert.Contains(t, d, "- $PRSTGEOM_WIDTH")
}

func TestWrap(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "short usage", wrap(8, 80, "short usage"))
	assert.Equal(t, "aaaa bbbb\n  cccc", wrap(2, 12, "aaaa bbbb cccc"))
	assert.Equal(t, "toolongforaline\n  x", wrap(2, 8, "toolongforaline x"))
}
