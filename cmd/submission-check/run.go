// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/pdiddy/submission-check/internal/check"
	"github.com/pdiddy/submission-check/internal/report"
	"github.com/pdiddy/submission-check/internal/submission"
	"github.com/pdiddy/submission-check/pkg/types"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run every submission check",
	Long: `Run executes the checks in order against the working directory and
exits non-zero if any check fails. A failing check does not stop the run
unless --exit-first is given.

Checks that need an external tool fail with an install hint when the tool
is not on PATH, without attempting the check itself.`,
	RunE: runChecks,
}

func runChecks(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	dir, _ := cmd.Flags().GetString("dir")
	exitFirst, _ := cmd.Flags().GetBool("exit-first")
	if noColor, _ := cmd.Flags().GetBool("no-color"); noColor {
		color.NoColor = true
	}

	abs, err := filepath.Abs(dir)
	if err != nil {
		return fmt.Errorf("resolving %s: %w", dir, err)
	}

	runner := check.NewRunner(check.Env{Dir: abs}, submission.Cases(cfg))
	p := report.NewPrinter(cmd.OutOrStdout())

	cases := runner.Cases()
	results := make([]types.Result, 0, len(cases))
	skipped := 0
	for i, c := range cases {
		p.Start(c.Name)
		res := runner.RunCase(c)
		p.Result(res)
		results = append(results, res)
		if exitFirst && !res.Passed() {
			skipped = len(cases) - i - 1
			break
		}
	}

	agg := types.NewAggregateResult(results)
	p.Summary(agg, skipped)
	if !agg.Success {
		return fmt.Errorf("%d of %d check(s) failed", agg.Failed(), len(cases))
	}
	return nil
}

func init() {
	runCmd.Flags().String("dir", ".", "repository directory to check")
	runCmd.Flags().BoolP("exit-first", "x", false, "stop after the first failing check")
	runCmd.Flags().Bool("no-color", false, "disable coloured output")

	rootCmd.AddCommand(runCmd)
}
