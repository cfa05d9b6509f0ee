package ui

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"nat/internal/config"
	"nat/internal/domain"
)

// Formatter formats and displays harness output
type Formatter struct {
	config *config.Config
}

// NewFormatter creates a new Formatter
func NewFormatter(cfg *config.Config) *Formatter {
	return &Formatter{config: cfg}
}

// PrintVerdict prints one per-test console line, colored by outcome.
func (f *Formatter) PrintVerdict(v domain.Verdict) {
	switch v.Kind {
	case domain.VerdictPass:
		color.Green("✓ %s", v.Spec.CaseName)
	case domain.VerdictRecorded:
		color.Yellow("● %s", v.Spec.CaseName)
		color.Yellow("  RECORDED: %s", v.Message)
	case domain.VerdictMismatch:
		color.Red("✗ %s", v.Spec.CaseName)
		color.Red("  FAILED: outputs are mismatched")
		f.printTextBlock("expected", v.Expected)
		f.printTextBlock("actual", v.Actual)
	case domain.VerdictError:
		color.Red("✗ %s", v.Spec.CaseName)
		for _, line := range strings.Split(strings.TrimRight(v.Message, "\n"), "\n") {
			color.Red("  %s", line)
		}
	}
}

func (f *Formatter) printTextBlock(label, text string) {
	color.Yellow("  %s:", label)
	for _, line := range strings.Split(strings.TrimRight(text, "\n"), "\n") {
		fmt.Printf("    %s\n", line)
	}
}

// FormatSummary renders the run summary table.
func (f *Formatter) FormatSummary(output *domain.RunOutput) string {
	meta := output.Meta
	var b strings.Builder

	row := func(name, value string) {
		fmt.Fprintf(&b, "│ %-31s │ %-27s │\n", name, value)
	}
	sep := "├─────────────────────────────────┼─────────────────────────────┤\n"

	b.WriteString("\n")
	b.WriteString("╔═══════════════════════════════════════════════════════════════╗\n")
	b.WriteString("║                     Agent Test Statistics                     ║\n")
	b.WriteString("╚═══════════════════════════════════════════════════════════════╝\n\n")
	b.WriteString("┌─────────────────────────────────┬─────────────────────────────┐\n")
	row("Total Tests", fmt.Sprintf("%d", meta.TotalTests))
	b.WriteString(sep)
	row("Passed Tests", fmt.Sprintf("%d", meta.PassedTests))
	b.WriteString(sep)
	row("Failed Tests", fmt.Sprintf("%d", meta.FailedTests))
	b.WriteString(sep)
	row("Recorded Baselines", fmt.Sprintf("%d", meta.RecordedTests))
	b.WriteString(sep)
	row("Duration", fmt.Sprintf("%.2fs", meta.DurationSeconds))
	b.WriteString(sep)
	row("Run Directory", meta.RunDir)
	b.WriteString("└─────────────────────────────────┴─────────────────────────────┘\n")

	return b.String()
}

// PrintSummary displays the run summary table and a closing status line.
func (f *Formatter) PrintSummary(output *domain.RunOutput) {
	fmt.Print(f.FormatSummary(output))
	fmt.Println()

	meta := output.Meta
	switch {
	case meta.FailedTests == 0:
		color.Green("✓ All tests passed!")
	case meta.RecordedTests > 0:
		color.Red("✗ %d test(s) failed, %d new baseline(s) recorded — review and commit them", meta.FailedTests, meta.RecordedTests)
	default:
		color.Red("✗ %d test(s) failed", meta.FailedTests)
	}
}

// PrintTestList prints discovered test identifiers. Tests without a
// recorded baseline are marked, since their next run will record one.
func (f *Formatter) PrintTestList(tests []domain.Test) {
	color.Green("Found %d test(s):\n", len(tests))

	for i, test := range tests {
		marker := ""
		if !test.HasBaseline {
			marker = " " + color.YellowString("[no baseline]")
		}
		if i == len(tests)-1 {
			color.Cyan("└── %s%s", test.Identifier, marker)
		} else {
			color.Cyan("├── %s%s", test.Identifier, marker)
		}
	}
}
