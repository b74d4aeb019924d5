package types

// ToolConfig names an external executable and how to install it.
type ToolConfig struct {
	// Bin is the executable name looked up on PATH (e.g. "pandoc").
	Bin string `json:"bin" yaml:"bin" mapstructure:"bin"`

	// Hint is the remediation shown when Bin cannot be found
	// (e.g. "install with e.g. sudo apt install pandoc").
	Hint string `json:"hint" yaml:"hint" mapstructure:"hint"`
}

// CheckConfig holds the file names and external tools the submission checks use.
// Paths are relative to the directory the checks run in.
type CheckConfig struct {
	// Readme is the README path (default "README.md").
	Readme string `json:"readme" yaml:"readme" mapstructure:"readme"`

	// Report is the phase report path (default "project-phase1-report.md").
	Report string `json:"report" yaml:"report" mapstructure:"report"`

	// Linter is the markdown linter, invoked as "<bin> scan <report>".
	Linter ToolConfig `json:"linter" yaml:"linter" mapstructure:"linter"`

	// Converter is the document converter that produces the PDF.
	Converter ToolConfig `json:"converter" yaml:"converter" mapstructure:"converter"`

	// PDFEngine is the rendering backend the converter uses for PDF output.
	PDFEngine ToolConfig `json:"pdf_engine" yaml:"pdf_engine" mapstructure:"pdf_engine"`
}

// DefaultCheckConfig returns the configuration used when no config file
// overrides it.
func DefaultCheckConfig() CheckConfig {
	return CheckConfig{
		Readme: "README.md",
		Report: "project-phase1-report.md",
		Linter: ToolConfig{
			Bin:  "pymarkdownlnt",
			Hint: "install with e.g. pip install pymarkdownlnt",
		},
		Converter: ToolConfig{
			Bin:  "pandoc",
			Hint: "install with e.g. sudo apt install pandoc",
		},
		PDFEngine: ToolConfig{
			Bin:  "weasyprint",
			Hint: "install with e.g. sudo apt install weasyprint",
		},
	}
}

// Tools returns the external tools in the order the checks need them.
func (c CheckConfig) Tools() []ToolConfig {
	return []ToolConfig{c.Linter, c.Converter, c.PDFEngine}
}
