// Package cmd executes external programs and captures their output.
//
// gwm shells out to the git, gh and glab CLIs rather than linking API
// clients. The [Runner] interface is the single subprocess boundary, so
// everything above it can be tested with a fake implementation that never
// spawns a process.
package cmd

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"github.com/gwm-cli/gwm/internal/log"
)

// Result holds the captured outcome of one external command.
type Result struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// Runner executes an external program in a working directory and waits
// for it to exit. A non-nil error means the command could not be run at
// all (e.g. binary not found); a non-zero exit is reported through
// Result.ExitCode and left to the caller to interpret.
type Runner interface {
	Run(ctx context.Context, dir, name string, args ...string) (Result, error)
}

// System is the Runner backed by os/exec.
type System struct{}

// Run executes the command, blocking until it exits.
func (System) Run(ctx context.Context, dir, name string, args ...string) (Result, error) {
	log.FromContext(ctx).Command(name, args...)

	c := exec.CommandContext(ctx, name, args...)
	c.Dir = dir

	var stdout, stderr bytes.Buffer
	c.Stdout = &stdout
	c.Stderr = &stderr

	err := c.Run()
	res := Result{Stdout: stdout.String(), Stderr: stderr.String()}
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			res.ExitCode = exitErr.ExitCode()
			return res, nil
		}
		return res, err
	}
	return res, nil
}

// Output runs the command and returns trimmed stdout.
// A non-zero exit becomes an error carrying the trimmed stderr.
func Output(ctx context.Context, r Runner, dir, name string, args ...string) (string, error) {
	res, err := r.Run(ctx, dir, name, args...)
	if err != nil {
		return "", err
	}
	if res.ExitCode != 0 {
		return "", ExitError(name, res)
	}
	return strings.TrimSpace(res.Stdout), nil
}

// Run executes the command, returning an error on spawn failure or
// non-zero exit.
func Run(ctx context.Context, r Runner, dir, name string, args ...string) error {
	_, err := Output(ctx, r, dir, name, args...)
	return err
}

// ExitError builds an error for a non-zero exit, preferring the
// command's stderr as the message.
func ExitError(name string, res Result) error {
	if msg := strings.TrimSpace(res.Stderr); msg != "" {
		return fmt.Errorf("%s", msg)
	}
	return fmt.Errorf("%s exited with status %d", name, res.ExitCode)
}
