package xmain

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"syscall"
	"testing"

	"github.com/stretchr/testify/assert"
	"oss.terrastruct.com/xos"
)

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error { return nil }

func testState(stdin string, stdout io.Writer) *State {
	return NewState("prstgeom", nil, xos.NewEnv(nil), strings.NewReader(stdin), nopCloser{stdout}, nopCloser{io.Discard})
}

func TestExitStatus(t *testing.T) {
	t.Parallel()

	code, msg := exitStatus(nil)
	assert.Equal(t, 0, code)
	assert.Equal(t, "", msg)

	code, msg = exitStatus(ExitErrorf(3, "gone %d", 1))
	assert.Equal(t, 3, code)
	assert.Equal(t, "gone 1", msg)

	code, msg = exitStatus(UsageErrorf("missing shape"))
	assert.Equal(t, 1, code)
	assert.Equal(t, "bad usage: missing shape\nRun with --help to see usage.", msg)

	code, msg = exitStatus(errors.New("boom"))
	assert.Equal(t, 1, code)
	assert.Equal(t, "boom", msg)
}

func TestMainReturns(t *testing.T) {
	t.Parallel()

	ms := testState("", io.Discard)
	err := ms.Main(context.Background(), nil, func(ctx context.Context, ms *State) error {
		return UsageErrorf("nope")
	})
	var uerr UsageError
	assert.True(t, errors.As(err, &uerr))
}

func TestMainSignal(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		sig    os.Signal
		expErr bool
	}{
		{sig: syscall.SIGTERM},
		{sig: os.Interrupt, expErr: true},
	} {
		tc := tc
		t.Run(tc.sig.String(), func(t *testing.T) {
			t.Parallel()

			sigs := make(chan os.Signal, 1)
			sigs <- tc.sig
			ms := testState("", io.Discard)
			err := ms.Main(context.Background(), sigs, func(ctx context.Context, ms *State) error {
				<-ctx.Done()
				return ctx.Err()
			})
			if tc.expErr {
				assert.Equal(t, ExitError{Code: 1}, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestPaths(t *testing.T) {
	t.Parallel()

	stdout := &bytes.Buffer{}
	ms := testState("from stdin", stdout)

	b, err := ms.ReadPath("-")
	assert.NoError(t, err)
	assert.Equal(t, "from stdin", string(b))

	assert.NoError(t, ms.WritePath("-", []byte("M 0 0")))
	assert.Equal(t, "M 0 0", stdout.String())

	fp := filepath.Join(t.TempDir(), "a", "b", "shape.svg")
	assert.NoError(t, ms.WritePath(fp, []byte("<svg />")))
	b, err = ms.ReadPath(fp)
	assert.NoError(t, err)
	assert.Equal(t, "<svg />", string(b))
}
