// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdiddy/submission-check/internal/proc"
	"github.com/pdiddy/submission-check/internal/report"
)

var toolsCmd = &cobra.Command{
	Use:   "tools",
	Short: "Show where each external tool resolves on PATH",
	Long: `Tools looks up the linter, the converter and the PDF engine on PATH and
prints the resolved path, or the install hint for tools that are missing.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		p := report.NewPrinter(cmd.OutOrStdout())
		missing := 0
		for _, tool := range cfg.Tools() {
			path, ok := proc.Locate(tool.Bin)
			if !ok {
				missing++
			}
			p.Tool(tool, path, ok)
		}
		if missing > 0 {
			return fmt.Errorf("%d tool(s) not found on PATH", missing)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(toolsCmd)
}
