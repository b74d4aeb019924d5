// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package proc locates external tools on PATH and runs them with their
// standard streams passed through to the caller.
package proc

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
)

// Runner runs an external process to completion.
type Runner interface {
	// Run executes name with args in dir and blocks until it exits. It returns
	// the exit code; err is non-nil only when the process could not be started.
	Run(dir, name string, args ...string) (exitCode int, err error)
}

// executor abstracts command execution for testing.
type executor interface {
	LookPath(file string) (string, error)
	Run(cmd *exec.Cmd) error
}

// osExecutor is the production executor backed by os/exec.
type osExecutor struct{}

func (o *osExecutor) LookPath(file string) (string, error) {
	return exec.LookPath(file)
}

func (o *osExecutor) Run(cmd *exec.Cmd) error {
	return cmd.Run()
}

var defaultExec executor = &osExecutor{}

// Locate searches PATH for an executable named name. Nothing is cached: every
// call probes PATH again.
func Locate(name string) (string, bool) {
	return locate(defaultExec, name)
}

func locate(exec executor, name string) (string, bool) {
	path, err := exec.LookPath(name)
	if err != nil {
		return "", false
	}
	return path, true
}

// PassthroughRunner is the production Runner. The child's stdout and stderr
// are connected to Stdout and Stderr without buffering or rewriting.
type PassthroughRunner struct {
	Stdout io.Writer
	Stderr io.Writer

	exec executor
}

// NewPassthroughRunner returns a runner wired to the process's own stdout and stderr.
func NewPassthroughRunner() *PassthroughRunner {
	return &PassthroughRunner{Stdout: os.Stdout, Stderr: os.Stderr, exec: defaultExec}
}

func (r *PassthroughRunner) Run(dir, name string, args ...string) (int, error) {
	cmd := exec.Command(name, args...)
	cmd.Dir = dir
	cmd.Stdout = r.Stdout
	cmd.Stderr = r.Stderr

	ex := r.exec
	if ex == nil {
		ex = defaultExec
	}

	err := ex.Run(cmd)
	if err == nil {
		return 0, nil
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode(), nil
	}
	return -1, fmt.Errorf("running %s: %w", CommandLine(name, args...), err)
}

// CommandLine renders name and args as a single space-separated string for
// diagnostics.
func CommandLine(name string, args ...string) string {
	parts := make([]string, 0, len(args)+1)
	parts = append(parts, name)
	parts = append(parts, args...)
	return strings.Join(parts, " ")
}
