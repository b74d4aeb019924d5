// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package submission defines the coursework acceptance checks: README
// presence and header, report presence, report lint, and report-to-PDF
// conversion.
package submission

import (
	"bufio"
	"bytes"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/pdiddy/submission-check/internal/check"
	"github.com/pdiddy/submission-check/internal/proc"
	"github.com/pdiddy/submission-check/pkg/types"
)

// Case names, in run order.
const (
	CaseReadmeExists = "readme exists"
	CaseReadmeHeader = "readme starts with group line"
	CaseReportExists = "report exists"
	CaseReportLint   = "report passes linter"
	CaseReportToPDF  = "report converts to pdf"
)

// headerPattern is the required first non-blank line of the README.
var headerPattern = regexp.MustCompile(`^# Group [1-9][0-9]? README$`)

// HeaderMatches reports whether line, after trimming surrounding whitespace,
// is "# Group N README" with N in 1..99 and no leading zero.
func HeaderMatches(line string) bool {
	return headerPattern.MatchString(strings.TrimSpace(line))
}

// PDFPath derives the conversion output path by replacing the report's extension.
func PDFPath(report string) string {
	return strings.TrimSuffix(report, filepath.Ext(report)) + ".pdf"
}

// LintArgs returns the linter arguments for report.
func LintArgs(report string) []string {
	return []string{"scan", report}
}

// ConvertArgs returns the converter arguments that render report to PDF
// with engine as the PDF backend. The first heading becomes the title.
func ConvertArgs(report, engine string) []string {
	return []string{
		"--shift-heading-level-by=-1",
		"--from=gfm",
		"-o", PDFPath(report),
		"--pdf-engine=" + engine,
		report,
	}
}

// Cases builds the acceptance checks for cfg in run order.
func Cases(cfg types.CheckConfig) []check.Case {
	linter := check.ToolAvailable{Name: cfg.Linter.Bin, Hint: cfg.Linter.Hint}
	converter := check.ToolAvailable{Name: cfg.Converter.Bin, Hint: cfg.Converter.Hint}
	engine := check.ToolAvailable{Name: cfg.PDFEngine.Bin, Hint: cfg.PDFEngine.Hint}
	readme := check.FileExists{Path: cfg.Readme}
	report := check.FileExists{Path: cfg.Report}

	return []check.Case{
		{
			Name:  CaseReadmeExists,
			Check: fileExists(cfg.Readme),
		},
		{
			Name:          CaseReadmeHeader,
			Preconditions: []check.Precondition{readme},
			Check:         readmeHeader(cfg.Readme),
		},
		{
			Name:  CaseReportExists,
			Check: fileExists(cfg.Report),
		},
		{
			Name:          CaseReportLint,
			Preconditions: []check.Precondition{linter, report},
			Check:         runTool(cfg.Linter.Bin, LintArgs(cfg.Report)),
		},
		{
			Name:          CaseReportToPDF,
			Preconditions: []check.Precondition{converter, engine, report},
			Check:         runTool(cfg.Converter.Bin, ConvertArgs(cfg.Report, cfg.PDFEngine.Bin)),
		},
	}
}

func fileExists(path string) func(*check.Env) error {
	return func(env *check.Env) error {
		if check.IsFile(env.Path(path)) {
			return nil
		}
		return check.Failf(types.KindMissingFile, "expected %s to exist in the repository root", path)
	}
}

func readmeHeader(path string) func(*check.Env) error {
	return func(env *check.Env) error {
		f, err := os.Open(env.Path(path))
		if err != nil {
			return check.Failf(types.KindMissingFile, "opening %s: %v", path, err)
		}
		defer f.Close()

		line, err := firstNonBlankLine(f)
		if err != nil {
			return check.Failf(types.KindMissingFile, "reading %s: %v", path, err)
		}
		if line == "" {
			return check.Failf(types.KindFormatMismatch, "%s is empty or contains only whitespace", path)
		}
		if !HeaderMatches(line) {
			return check.Failf(types.KindFormatMismatch,
				"first non-empty line of %s should be of the form '# Group N README', "+
					"where N is a number from 1 to 99. Got: %q", path, line)
		}
		return nil
	}
}

// maxLineSize bounds a single README line.
const maxLineSize = 1 << 20

// firstNonBlankLine returns the first line of r that is not all whitespace,
// trimmed. It returns "" when there is none.
func firstNonBlankLine(r io.Reader) (string, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 4096), maxLineSize)
	sc.Split(scanUniversalLines)
	for sc.Scan() {
		if s := strings.TrimSpace(sc.Text()); s != "" {
			return s, nil
		}
	}
	return "", sc.Err()
}

// scanUniversalLines is a bufio.SplitFunc that ends a line at "\n", "\r\n"
// or a bare "\r". Line terminators are not returned.
func scanUniversalLines(data []byte, atEOF bool) (advance int, token []byte, err error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}
	if i := bytes.IndexAny(data, "\r\n"); i >= 0 {
		if data[i] == '\n' {
			return i + 1, data[:i], nil
		}
		// A trailing '\r' may be the first half of "\r\n".
		if i+1 == len(data) && !atEOF {
			return 0, nil, nil
		}
		if i+1 < len(data) && data[i+1] == '\n' {
			return i + 2, data[:i], nil
		}
		return i + 1, data[:i], nil
	}
	if atEOF {
		return len(data), data, nil
	}
	return 0, nil, nil
}

// runTool runs bin with args in the working directory. The tool's own output
// goes straight to the caller's streams; only the exit code is inspected.
func runTool(bin string, args []string) func(*check.Env) error {
	return func(env *check.Env) error {
		code, err := env.Proc.Run(env.Dir, bin, args...)
		if err != nil {
			return err
		}
		if code != 0 {
			return check.Failf(types.KindExternalToolFailure,
				"'%s' failed with exit code %d. See above for output.", proc.CommandLine(bin, args...), code)
		}
		return nil
	}
}
