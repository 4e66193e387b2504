// Package xmain runs a command: it sets up logging and flags, turns
// signals into context cancellation and maps returned errors to exit codes.
package xmain

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"oss.terrastruct.com/cmdlog"
	"oss.terrastruct.com/xos"

	"oss.terrastruct.com/prstgeom/lib/log"
)

// ShutdownTimeout bounds how long a canceled run may take to return.
var ShutdownTimeout = 30 * time.Second

type RunFunc func(context.Context, *State) error

func Main(run RunFunc) {
	args := []string(nil)
	name := ""
	if len(os.Args) > 0 {
		name = filepath.Base(os.Args[0])
		args = os.Args[1:]
	}

	ms := NewState(name, args, xos.NewEnv(os.Environ()), os.Stdin, os.Stdout, os.Stderr)

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, os.Interrupt, syscall.SIGTERM)

	err := ms.Main(log.Stderr(context.Background()), sigs, run)
	code, msg := exitStatus(err)
	if msg != "" {
		ms.Log.Error.Print(msg)
	}
	if code != 0 {
		os.Exit(code)
	}
}

// exitStatus maps the error a run returned to a process exit code and the
// message to print.
func exitStatus(err error) (int, string) {
	if err == nil {
		return 0, ""
	}
	var eerr ExitError
	if errors.As(err, &eerr) {
		return eerr.Code, eerr.Message
	}
	var uerr UsageError
	if errors.As(err, &uerr) {
		return 1, fmt.Sprintf("%s\n%s", err.Error(), "Run with --help to see usage.")
	}
	return 1, err.Error()
}

type State struct {
	Name string

	Stdin  io.Reader
	Stdout io.WriteCloser
	Stderr io.WriteCloser

	Log  *cmdlog.Logger
	Env  *xos.Env
	Opts *Opts
}

func NewState(name string, args []string, env *xos.Env, stdin io.Reader, stdout, stderr io.WriteCloser) *State {
	ms := &State{
		Name:   name,
		Stdin:  stdin,
		Stdout: stdout,
		Stderr: stderr,
		Env:    env,
	}
	ms.Log = cmdlog.Log(env, stderr)
	ms.Opts = NewOpts(env, ms.Log, args)
	return ms
}

// Main calls run and waits for it. The first signal cancels run's context;
// run then has ShutdownTimeout to return.
func (ms *State) Main(ctx context.Context, sigs <-chan os.Signal, run RunFunc) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	done := make(chan error, 1)
	go func() {
		defer close(done)
		done <- run(ctx, ms)
	}()

	select {
	case err := <-done:
		return err
	case sig := <-sigs:
		ms.Log.Warn.Printf("received signal %v: shutting down...", sig)
		cancel()
		select {
		case err := <-done:
			if err != nil && !errors.Is(err, context.Canceled) {
				return fmt.Errorf("failed to shutdown: %w", err)
			}
			if sig == syscall.SIGTERM {
				return nil
			}
			return ExitError{Code: 1}
		case <-time.After(ShutdownTimeout):
			return ExitErrorf(1, "took longer than %v to shutdown: exiting forcefully", ShutdownTimeout)
		}
	}
}

type ExitError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func ExitErrorf(code int, msg string, v ...interface{}) ExitError {
	return ExitError{
		Code:    code,
		Message: fmt.Sprintf(msg, v...),
	}
}

func (ee ExitError) Error() string {
	s := fmt.Sprintf("exiting with code %d", ee.Code)
	if ee.Message != "" {
		s += ": " + ee.Message
	}
	return s
}

type UsageError struct {
	Message string `json:"message"`
}

func UsageErrorf(msg string, v ...interface{}) UsageError {
	return UsageError{
		Message: fmt.Sprintf(msg, v...),
	}
}

func (ue UsageError) Error() string {
	return fmt.Sprintf("bad usage: %s", ue.Message)
}

// ReadPath reads fp, or stdin when fp is "-".
func (ms *State) ReadPath(fp string) ([]byte, error) {
	if fp == "-" {
		return io.ReadAll(ms.Stdin)
	}
	return os.ReadFile(fp)
}

// WritePath writes p to fp, creating missing parent directories. "-" writes
// to stdout and closes it, so it can only be used once per run.
func (ms *State) WritePath(fp string, p []byte) error {
	if fp == "-" {
		_, err := ms.Stdout.Write(p)
		if err != nil {
			return err
		}
		return ms.Stdout.Close()
	}
	if err := os.MkdirAll(filepath.Dir(fp), 0755); err != nil {
		return err
	}
	return os.WriteFile(fp, p, 0644)
}
