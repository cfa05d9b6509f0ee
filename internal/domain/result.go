package domain

import "time"

// TestResult represents the output captured from one execution
type TestResult struct {
	Test   Test   // The test that was executed
	Output string // Captured stdout, line endings normalized
}

// VerdictKind classifies the outcome of comparing a result to its baseline
type VerdictKind string

const (
	// VerdictPass means captured output matched the baseline.
	VerdictPass VerdictKind = "pass"
	// VerdictMismatch means a baseline exists and the output differs.
	VerdictMismatch VerdictKind = "mismatch"
	// VerdictRecorded means no baseline existed; the output was recorded
	// as the new baseline and the test is reported as failing until the
	// recording is reviewed and committed.
	VerdictRecorded VerdictKind = "recorded"
	// VerdictError means the runtime process failed or could not be launched.
	VerdictError VerdictKind = "error"
)

// Verdict is the per-test outcome of one harness execution
type Verdict struct {
	Spec     Spec
	Kind     VerdictKind
	Expected string // Baseline text (mismatch only)
	Actual   string // Captured text (mismatch/recorded)
	Message  string // Diagnostic text (error/recorded)
}

// Failed reports whether the verdict counts as a failure.
func (v Verdict) Failed() bool {
	return v.Kind != VerdictPass
}

// RunMeta contains metadata about a harness run
type RunMeta struct {
	TotalTests      int     `json:"total_tests"`
	PassedTests     int     `json:"passed_tests"`
	FailedTests     int     `json:"failed_tests"`
	RecordedTests   int     `json:"recorded_tests"`
	Duration        string  `json:"duration"`
	DurationSeconds float64 `json:"duration_seconds"`
	RunDir          string  `json:"run_dir"`
	Timestamp       string  `json:"timestamp"`
}

// Failure is one failed test case as persisted for the faills viewer
type Failure struct {
	Identifier string `json:"identifier"`
	CaseName   string `json:"case_name"`
	Kind       string `json:"kind"`
	Expected   string `json:"expected,omitempty"`
	Actual     string `json:"actual,omitempty"`
	Message    string `json:"message,omitempty"`
	Resolved   bool   `json:"resolved,omitempty"`
}

// RunOutput is the complete persisted record of one harness run
type RunOutput struct {
	Meta    RunMeta   `json:"meta"`
	Details []Failure `json:"details"`
}

// Summarize builds a RunOutput from a slice of verdicts.
func Summarize(verdicts []Verdict, duration time.Duration, runDir string) RunOutput {
	var passed, failed, recorded int
	var details []Failure
	for _, v := range verdicts {
		switch v.Kind {
		case VerdictPass:
			passed++
			continue
		case VerdictRecorded:
			recorded++
		}
		failed++
		details = append(details, Failure{
			Identifier: v.Spec.Test.Identifier,
			CaseName:   v.Spec.CaseName,
			Kind:       string(v.Kind),
			Expected:   v.Expected,
			Actual:     v.Actual,
			Message:    v.Message,
		})
	}
	return RunOutput{
		Meta: RunMeta{
			TotalTests:      len(verdicts),
			PassedTests:     passed,
			FailedTests:     failed,
			RecordedTests:   recorded,
			Duration:        duration.String(),
			DurationSeconds: duration.Seconds(),
			RunDir:          runDir,
			Timestamp:       time.Now().Format(time.RFC3339),
		},
		Details: details,
	}
}
