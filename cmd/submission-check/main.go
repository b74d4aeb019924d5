// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the submission-check CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/submission-check/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

const configName = "submission-check"

// rootCmd is the base command for the submission-check CLI.
var rootCmd = &cobra.Command{
	Use:   "submission-check",
	Short: "Acceptance checks for a coursework submission",
	Long: `submission-check verifies a coursework repository: the README exists and
starts with a "# Group N README" line, the phase report exists, the report
passes the markdown linter, and the report converts to PDF.

Linting and conversion are delegated to external tools found on PATH; their
output is shown as-is and only their exit codes decide the outcome.`,
	SilenceUsage: true,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: submission-check.yaml in . or ~/.config/submission-check/)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	configureViper(cfgFile)
}

// configureViper points viper at cfgFile, or at the default search paths
// when cfgFile is empty, and reads it if present.
func configureViper(cfgFile string) {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName(configName)
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", configName))
		}
	}

	setDefaults(types.DefaultCheckConfig())

	viper.SetEnvPrefix("SUBMISSION_CHECK")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// setDefaults registers every config key so environment overrides apply
// even without a config file.
func setDefaults(d types.CheckConfig) {
	viper.SetDefault("readme", d.Readme)
	viper.SetDefault("report", d.Report)
	for key, tool := range map[string]types.ToolConfig{
		"linter":     d.Linter,
		"converter":  d.Converter,
		"pdf_engine": d.PDFEngine,
	} {
		viper.SetDefault(key+".bin", tool.Bin)
		viper.SetDefault(key+".hint", tool.Hint)
	}
}

// loadConfig returns the effective check configuration.
func loadConfig() (types.CheckConfig, error) {
	var cfg types.CheckConfig
	if err := viper.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("decoding config: %w", err)
	}
	return cfg, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
