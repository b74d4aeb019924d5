// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"github.com/spf13/cobra"

	"github.com/pdiddy/submission-check/internal/report"
	"github.com/pdiddy/submission-check/internal/submission"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the checks and what each one requires",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		report.NewPrinter(cmd.OutOrStdout()).Cases(submission.Cases(cfg))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
