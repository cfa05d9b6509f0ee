package harness

import (
	"fmt"
	"strings"

	"nat/internal/domain"
)

// Execute runs one test specification and produces its verdict. Execution
// and comparison failures are scoped to this spec; sibling specs always run.
//
// Verdict policy: with a baseline, captured output is compared to it after
// trimming both sides. Without a baseline the captured output is recorded
// as the new baseline and the test still fails, so a first run can never
// silently pass before a human has reviewed the recording.
func (r *Run) Execute(spec domain.Spec) domain.Verdict {
	result, err := r.runner.Run(spec.Test)
	if err != nil {
		return domain.Verdict{
			Spec:    spec,
			Kind:    domain.VerdictError,
			Message: err.Error(),
		}
	}

	test := spec.Test
	if !test.HasBaseline {
		if err := r.harness.repo.WriteBaseline(test.Identifier, result.Output); err != nil {
			return domain.Verdict{
				Spec:    spec,
				Kind:    domain.VerdictError,
				Message: err.Error(),
			}
		}
		return domain.Verdict{
			Spec:   spec,
			Kind:   domain.VerdictRecorded,
			Actual: result.Output,
			Message: fmt.Sprintf(
				"no baseline existed for %s; captured output was recorded as outs/%s.out — review it and commit it to the test repository",
				test.Identifier, test.Identifier),
		}
	}

	expected := strings.TrimSpace(test.Baseline)
	actual := strings.TrimSpace(result.Output)
	if expected == actual {
		return domain.Verdict{Spec: spec, Kind: domain.VerdictPass}
	}
	return domain.Verdict{
		Spec:     spec,
		Kind:     domain.VerdictMismatch,
		Expected: test.Baseline,
		Actual:   result.Output,
		Message:  "outputs are mismatched",
	}
}
