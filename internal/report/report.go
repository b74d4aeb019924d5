// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package report prints check results as human-readable text.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/pdiddy/submission-check/internal/check"
	"github.com/pdiddy/submission-check/pkg/types"
)

// Printer writes coloured result lines to w.
type Printer struct {
	w io.Writer

	success   func(a ...interface{}) string
	failure   func(a ...interface{}) string
	highlight func(a ...interface{}) string
	warning   func(a ...interface{}) string
}

// NewPrinter returns a Printer writing to w. Colour follows color.NoColor,
// which fatih/color sets when stdout is not a terminal.
func NewPrinter(w io.Writer) *Printer {
	return &Printer{
		w:         w,
		success:   color.New(color.FgGreen).SprintFunc(),
		failure:   color.New(color.FgRed).SprintFunc(),
		highlight: color.New(color.FgCyan).SprintFunc(),
		warning:   color.New(color.FgYellow).SprintFunc(),
	}
}

// Start announces a case before it runs, so tool output that follows is
// attributed to it.
func (p *Printer) Start(name string) {
	fmt.Fprintf(p.w, "%s %s\n", p.highlight("==>"), name)
}

// Result prints one case outcome with its diagnostic and hint.
func (p *Printer) Result(r types.Result) {
	if r.Passed() {
		fmt.Fprintf(p.w, "%s %s\n", p.success("PASS"), r.Case)
		return
	}
	fmt.Fprintf(p.w, "%s %s [%s]\n", p.failure("FAIL"), r.Case, r.Kind)
	if r.Message != "" {
		fmt.Fprintf(p.w, "     %s\n", r.Message)
	}
	if r.Hint != "" {
		fmt.Fprintf(p.w, "     %s %s\n", p.warning("hint:"), r.Hint)
	}
}

// Summary prints the closing totals. skipped counts cases not run because
// the run stopped early.
func (p *Printer) Summary(agg types.AggregateResult, skipped int) {
	status := p.success("SUCCESS")
	if !agg.Success {
		status = p.failure("FAILURE")
	}
	fmt.Fprintln(p.w, strings.Repeat("-", 60))
	fmt.Fprintf(p.w, "%s: %d passed, %d failed", status, agg.Passed(), agg.Failed())
	if skipped > 0 {
		fmt.Fprintf(p.w, ", %d not run", skipped)
	}
	fmt.Fprintf(p.w, " (total: %d)\n", len(agg.Results)+skipped)
}

// Cases lists cases and their preconditions.
func (p *Printer) Cases(cases []check.Case) {
	for i, c := range cases {
		fmt.Fprintf(p.w, "%d. %s\n", i+1, p.highlight(c.Name))
		if len(c.Preconditions) == 0 {
			fmt.Fprintln(p.w, "   requires: nothing")
			continue
		}
		reqs := make([]string, len(c.Preconditions))
		for j, pre := range c.Preconditions {
			reqs[j] = pre.Describe()
		}
		fmt.Fprintf(p.w, "   requires: %s\n", strings.Join(reqs, ", "))
	}
}

// Tool prints the lookup outcome for one external tool.
func (p *Printer) Tool(tool types.ToolConfig, path string, found bool) {
	if found {
		fmt.Fprintf(p.w, "%s %-15s %s\n", p.success("found  "), tool.Bin, path)
		return
	}
	fmt.Fprintf(p.w, "%s %-15s %s\n", p.failure("missing"), tool.Bin, tool.Hint)
}
