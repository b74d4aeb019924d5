// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package check runs an ordered set of independent verification cases
// against a working directory. Each case is gated by preconditions (tools on
// PATH, files on disk); an unmet precondition fails the case without running
// its body. Every failure is captured as a types.Result, nothing propagates.
package check

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pdiddy/submission-check/internal/proc"
	"github.com/pdiddy/submission-check/pkg/types"
)

// Env is what a case sees while it runs.
type Env struct {
	// Dir is the working directory; relative paths are resolved against it.
	Dir string

	// Locate resolves an executable name on PATH.
	Locate func(name string) (string, bool)

	// Proc runs external tools.
	Proc proc.Runner
}

// Path resolves rel against the working directory.
func (e *Env) Path(rel string) string {
	if filepath.IsAbs(rel) {
		return rel
	}
	return filepath.Join(e.Dir, rel)
}

// Failure is a classified case failure. Check bodies return it to control the
// kind and hint reported; any other error is reported as an external tool failure.
type Failure struct {
	Kind    types.FailureKind
	Message string
	Hint    string
}

func (f *Failure) Error() string {
	return f.Message
}

// Failf builds a Failure with a formatted message.
func Failf(kind types.FailureKind, format string, args ...any) *Failure {
	return &Failure{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// Precondition gates a case body.
type Precondition interface {
	// Describe names the precondition for listings (e.g. "tool pandoc").
	Describe() string

	// Evaluate returns nil when the precondition holds, or a *Failure.
	Evaluate(env *Env) error
}

// ToolAvailable requires an executable on PATH.
type ToolAvailable struct {
	Name string
	Hint string
}

func (t ToolAvailable) Describe() string { return "tool " + t.Name }

func (t ToolAvailable) Evaluate(env *Env) error {
	if _, ok := env.Locate(t.Name); ok {
		return nil
	}
	return &Failure{
		Kind:    types.KindMissingDependency,
		Message: fmt.Sprintf("%s is not installed or not on PATH - cannot run checks requiring it", t.Name),
		Hint:    t.Hint,
	}
}

// FileExists requires a regular file.
type FileExists struct {
	Path string
}

func (f FileExists) Describe() string { return "file " + f.Path }

func (f FileExists) Evaluate(env *Env) error {
	if IsFile(env.Path(f.Path)) {
		return nil
	}
	return Failf(types.KindMissingFile, "file %s is required for this check but does not exist", f.Path)
}

// IsFile reports whether path names an existing regular file.
func IsFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

// Case is one named verification unit.
type Case struct {
	Name          string
	Preconditions []Precondition
	Check         func(env *Env) error
}

// Runner evaluates cases against one environment.
type Runner struct {
	env   *Env
	cases []Case
}

// NewRunner returns a runner for cases. A nil Locate defaults to proc.Locate
// and a nil Proc to proc.NewPassthroughRunner.
func NewRunner(env Env, cases []Case) *Runner {
	if env.Locate == nil {
		env.Locate = proc.Locate
	}
	if env.Proc == nil {
		env.Proc = proc.NewPassthroughRunner()
	}
	return &Runner{env: &env, cases: cases}
}

// Cases returns the registered cases in run order.
func (r *Runner) Cases() []Case {
	return r.cases
}

// RunAll evaluates every case in order and aggregates the results. A failing
// case never stops the run.
func (r *Runner) RunAll() types.AggregateResult {
	results := make([]types.Result, 0, len(r.cases))
	for _, c := range r.cases {
		results = append(results, r.RunCase(c))
	}
	return types.NewAggregateResult(results)
}

// RunCase evaluates one case: preconditions first, in order, then the body.
func (r *Runner) RunCase(c Case) types.Result {
	for _, p := range c.Preconditions {
		if err := p.Evaluate(r.env); err != nil {
			return failed(c.Name, err)
		}
	}
	if err := runBody(c, r.env); err != nil {
		return failed(c.Name, err)
	}
	return types.Result{Case: c.Name, Status: types.StatusPass}
}

// runBody calls the case body, turning a panic into an error.
func runBody(c Case, env *Env) (err error) {
	defer func() {
		if v := recover(); v != nil {
			err = fmt.Errorf("check %q panicked: %v", c.Name, v)
		}
	}()
	if c.Check == nil {
		return nil
	}
	return c.Check(env)
}

func failed(name string, err error) types.Result {
	res := types.Result{
		Case:    name,
		Status:  types.StatusFail,
		Kind:    types.KindExternalToolFailure,
		Message: err.Error(),
	}
	var f *Failure
	if errors.As(err, &f) {
		res.Kind = f.Kind
		res.Message = f.Message
		res.Hint = f.Hint
	}
	return res
}
