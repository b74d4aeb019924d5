// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/submission-check/pkg/types"
)

func TestWriteDefaultConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "submission-check.yaml")

	written, err := writeDefaultConfig(path)
	require.NoError(t, err)
	assert.True(t, written)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "report: project-phase1-report.md")
	assert.Contains(t, string(data), "pdf_engine:")

	require.NoError(t, os.WriteFile(path, []byte("readme: KEEP.md\n"), 0o644))
	written, err = writeDefaultConfig(path)
	require.NoError(t, err)
	assert.False(t, written, "existing config must not be overwritten")
}

func TestLoadConfig(t *testing.T) {
	tests := []struct {
		name   string
		file   string
		env    map[string]string
		modify func(*types.CheckConfig)
	}{
		{
			name:   "defaults without config file",
			modify: func(*types.CheckConfig) {},
		},
		{
			name: "config file overrides",
			file: "report: phase2-report.md\nlinter:\n  bin: markdownlint\n",
			modify: func(c *types.CheckConfig) {
				c.Report = "phase2-report.md"
				c.Linter.Bin = "markdownlint"
			},
		},
		{
			name: "environment overrides nested keys",
			env:  map[string]string{"SUBMISSION_CHECK_PDF_ENGINE_BIN": "wkhtmltopdf"},
			modify: func(c *types.CheckConfig) {
				c.PDFEngine.Bin = "wkhtmltopdf"
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			viper.Reset()
			t.Cleanup(viper.Reset)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			cfgFile := filepath.Join(t.TempDir(), "missing.yaml")
			if tt.file != "" {
				require.NoError(t, os.WriteFile(cfgFile, []byte(tt.file), 0o644))
			}
			configureViper(cfgFile)

			got, err := loadConfig()
			require.NoError(t, err)

			want := types.DefaultCheckConfig()
			tt.modify(&want)
			assert.Equal(t, want, got)
		})
	}
}

func TestConfigFlagUsageNamesSearchedFile(t *testing.T) {
	usage := rootCmd.PersistentFlags().Lookup("config").Usage

	assert.Contains(t, usage, configName+".yaml")
	assert.Contains(t, usage, filepath.Join("~", ".config", configName))
	assert.NotContains(t, usage, "config.yaml")
}
