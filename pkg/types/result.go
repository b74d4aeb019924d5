package types

// Status is the outcome of a single check.
type Status string

const (
	StatusPass Status = "pass"
	StatusFail Status = "fail"
)

// FailureKind classifies why a check failed.
type FailureKind string

const (
	// KindMissingDependency means a required external tool is not on PATH.
	KindMissingDependency FailureKind = "missing-dependency"
	// KindMissingFile means a required file does not exist.
	KindMissingFile FailureKind = "missing-file"
	// KindFormatMismatch means file content does not match the expected pattern.
	KindFormatMismatch FailureKind = "format-mismatch"
	// KindExternalToolFailure means an external tool exited non-zero or could
	// not be started. Details are in the tool's own output.
	KindExternalToolFailure FailureKind = "external-tool-failure"
)

// Result is the outcome of one check. Kind and Hint are empty for passing checks.
type Result struct {
	Case    string
	Status  Status
	Kind    FailureKind
	Message string
	Hint    string
}

// Passed reports whether the check passed.
func (r Result) Passed() bool {
	return r.Status == StatusPass
}

// AggregateResult holds every Result of one run.
type AggregateResult struct {
	Results []Result
	Success bool
}

// NewAggregateResult builds an AggregateResult whose Success is true iff every
// result passed. An empty run is a success.
func NewAggregateResult(results []Result) AggregateResult {
	agg := AggregateResult{Results: results, Success: true}
	for _, r := range results {
		if !r.Passed() {
			agg.Success = false
			break
		}
	}
	return agg
}

// Passed returns the number of passing results.
func (a AggregateResult) Passed() int {
	return len(a.Results) - a.Failed()
}

// Failed returns the number of failing results.
func (a AggregateResult) Failed() int {
	n := 0
	for _, r := range a.Results {
		if !r.Passed() {
			n++
		}
	}
	return n
}
