// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/submission-check/pkg/types"
)

var initCmd = &cobra.Command{
	Use:   "init [path]",
	Short: "Write the default config file",
	Long: `Init writes the default configuration to submission-check.yaml (or the
given path) so file names, tool binaries and install hints can be edited.
An existing file is left untouched.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := configName + ".yaml"
		if len(args) == 1 {
			path = args[0]
		}
		written, err := writeDefaultConfig(path)
		if err != nil {
			return err
		}
		if !written {
			fmt.Fprintf(os.Stderr, "skipped: %s (already exists)\n", path)
			return nil
		}
		fmt.Printf("wrote %s\n", path)
		return nil
	},
}

// writeDefaultConfig writes the default config as YAML to path unless a file
// already exists there.
func writeDefaultConfig(path string) (bool, error) {
	if _, err := os.Stat(path); err == nil {
		return false, nil
	}
	cfg := types.DefaultCheckConfig()
	data, err := yaml.Marshal(&cfg)
	if err != nil {
		return false, fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return false, fmt.Errorf("writing %s: %w", path, err)
	}
	return true, nil
}

func init() {
	rootCmd.AddCommand(initCmd)
}
