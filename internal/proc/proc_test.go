// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package proc

import (
	"bytes"
	"errors"
	"os/exec"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockExecutor resolves binaries from a fixed set and records commands.
type mockExecutor struct {
	availableBins map[string]bool
	runFunc       func(cmd *exec.Cmd) error
	ran           []*exec.Cmd
}

func (m *mockExecutor) LookPath(file string) (string, error) {
	if m.availableBins[file] {
		return "/usr/bin/" + file, nil
	}
	return "", errors.New("not found: " + file)
}

func (m *mockExecutor) Run(cmd *exec.Cmd) error {
	m.ran = append(m.ran, cmd)
	if m.runFunc != nil {
		return m.runFunc(cmd)
	}
	return nil
}

func TestLocate(t *testing.T) {
	tests := []struct {
		name     string
		bins     map[string]bool
		lookup   string
		wantPath string
		wantOK   bool
	}{
		{
			name:     "tool on PATH",
			bins:     map[string]bool{"pandoc": true},
			lookup:   "pandoc",
			wantPath: "/usr/bin/pandoc",
			wantOK:   true,
		},
		{
			name:   "tool missing",
			bins:   map[string]bool{"pandoc": true},
			lookup: "weasyprint",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path, ok := locate(&mockExecutor{availableBins: tt.bins}, tt.lookup)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantPath, path)
		})
	}
}

func TestLocate_NotCached(t *testing.T) {
	ex := &mockExecutor{availableBins: map[string]bool{}}

	_, ok := locate(ex, "pymarkdownlnt")
	require.False(t, ok)

	ex.availableBins["pymarkdownlnt"] = true
	_, ok = locate(ex, "pymarkdownlnt")
	assert.True(t, ok, "a tool installed between lookups should be found")
}

func TestPassthroughRunner_WiresCommand(t *testing.T) {
	var stdout, stderr bytes.Buffer
	ex := &mockExecutor{}
	r := &PassthroughRunner{Stdout: &stdout, Stderr: &stderr, exec: ex}

	code, err := r.Run("/work", "pymarkdownlnt", "scan", "report.md")
	require.NoError(t, err)
	assert.Equal(t, 0, code)

	require.Len(t, ex.ran, 1)
	cmd := ex.ran[0]
	assert.Equal(t, "/work", cmd.Dir)
	assert.Equal(t, []string{"pymarkdownlnt", "scan", "report.md"}, cmd.Args)
	assert.Same(t, &stdout, cmd.Stdout)
	assert.Same(t, &stderr, cmd.Stderr)
}

func TestPassthroughRunner_StartFailure(t *testing.T) {
	ex := &mockExecutor{runFunc: func(*exec.Cmd) error {
		return errors.New("exec format error")
	}}
	r := &PassthroughRunner{exec: ex}

	code, err := r.Run("", "pandoc", "-o", "out.pdf")
	require.Error(t, err)
	assert.Equal(t, -1, code)
	assert.Contains(t, err.Error(), "pandoc -o out.pdf")
}

func TestPassthroughRunner_ExitCode(t *testing.T) {
	if _, ok := Locate("sh"); !ok {
		t.Skip("sh not available")
	}
	var stdout bytes.Buffer
	r := NewPassthroughRunner()
	r.Stdout = &stdout

	code, err := r.Run(t.TempDir(), "sh", "-c", "echo linted; exit 3")
	require.NoError(t, err)
	assert.Equal(t, 3, code)
	assert.Equal(t, "linted\n", stdout.String())

	code, err = r.Run(t.TempDir(), "sh", "-c", "exit 0")
	require.NoError(t, err)
	assert.Equal(t, 0, code)
}

func TestCommandLine(t *testing.T) {
	assert.Equal(t, "pandoc", CommandLine("pandoc"))
	assert.Equal(t, "pymarkdownlnt scan report.md", CommandLine("pymarkdownlnt", "scan", "report.md"))
}
