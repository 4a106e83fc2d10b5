package report

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/cinematicwebworks/seokit/internal/model"
)

const ruleWidth = 60

// SimpleWriter outputs human-readable console reports.
// Markers are colored with lipgloss when the output is a terminal and
// plain otherwise, so the output can be piped to files.
type SimpleWriter struct {
	baseWriter
	styles styles

	// verbose lists perfect pages and passed checks as well.
	verbose bool
}

// SimpleWriterOption configures a SimpleWriter.
type SimpleWriterOption func(*SimpleWriter)

// WithVerbose enables verbose output with additional details.
func WithVerbose(verbose bool) SimpleWriterOption {
	return func(w *SimpleWriter) {
		w.verbose = verbose
	}
}

// NewSimpleWriter creates a SimpleWriter that outputs to the given writer.
func NewSimpleWriter(output io.Writer, opts ...SimpleWriterOption) *SimpleWriter {
	w := &SimpleWriter{
		baseWriter: newBaseWriter(output),
		styles:     newStyles(output),
	}

	for _, opt := range opts {
		opt(w)
	}

	return w
}

// WriteValidation outputs the validator report.
func (w *SimpleWriter) WriteValidation(summary *model.ValidationSummary) (int, error) {
	var sb strings.Builder

	sb.WriteString(w.styles.title.Render("🔍 SEO Validation"))
	sb.WriteString("\n\n")
	sb.WriteString(strings.Repeat("═", ruleWidth))
	sb.WriteString("\n\n")
	fmt.Fprintf(&sb, "%s Scanning %d HTML files...\n\n", markFile, summary.TotalPages)

	if w.verbose {
		for _, r := range summary.Results {
			if r.IsPerfect() {
				fmt.Fprintf(&sb, "%s %s\n", markPass, w.styles.success.Render(r.File))
			}
		}
	}

	problems := summary.ProblemResults()
	if len(problems) > 0 {
		sb.WriteString("\n📋 ")
		sb.WriteString(w.styles.heading.Render("PAGES WITH ISSUES:"))
		sb.WriteString("\n")
		for _, r := range problems {
			w.writeValidationResult(&sb, r)
		}
	}

	w.writeValidationSummary(&sb, summary)

	return w.output.Write([]byte(sb.String()))
}

func (w *SimpleWriter) writeValidationResult(sb *strings.Builder, r *model.ValidationResult) {
	fmt.Fprintf(sb, "\n%s %s\n", markFile, w.styles.heading.Render(r.File))
	sb.WriteString(strings.Repeat("─", 50))
	sb.WriteString("\n")
	for _, issue := range r.Issues {
		fmt.Fprintf(sb, "   %s %s\n", markFail, w.styles.failure.Render(issue))
	}
	for _, warning := range r.Warnings {
		fmt.Fprintf(sb, "   %s %s\n", markWarn, w.styles.warning.Render(warning))
	}
	if w.verbose {
		for _, passed := range r.Passed {
			fmt.Fprintf(sb, "   %s %s\n", markPass, w.styles.muted.Render(passed))
		}
	}
}

func (w *SimpleWriter) writeValidationSummary(sb *strings.Builder, s *model.ValidationSummary) {
	sb.WriteString("\n")
	sb.WriteString(strings.Repeat("═", ruleWidth))
	sb.WriteString("\n\n")
	fmt.Fprintf(sb, "%s %s\n\n", markChart, w.styles.heading.Render("SUMMARY"))
	fmt.Fprintf(sb, "   Total pages:     %d\n", s.TotalPages)
	fmt.Fprintf(sb, "   Perfect pages:   %d (%d%%)\n", s.PerfectPages, s.PerfectPercent())
	fmt.Fprintf(sb, "   Pages w/ issues: %d\n", s.ProblemPages)
	fmt.Fprintf(sb, "   Total errors:    %d\n", s.TotalIssues)
	fmt.Fprintf(sb, "   Total warnings:  %d\n", s.TotalWarnings)

	if s.Passed() {
		fmt.Fprintf(sb, "\n%s %s\n", markPass, w.styles.success.Render("All pages pass required SEO checks!"))
	} else {
		fmt.Fprintf(sb, "\n%s %s\n", markFail,
			w.styles.failure.Render(fmt.Sprintf("%d critical issues need fixing", s.TotalIssues)))
	}
	if s.TotalWarnings > 0 {
		fmt.Fprintf(sb, "%s %s\n", markWarn,
			w.styles.warning.Render(fmt.Sprintf("%d warnings to review", s.TotalWarnings)))
	}
	sb.WriteString("\n")
}

// WriteAudit outputs the audit results table and summary.
func (w *SimpleWriter) WriteAudit(run *model.AuditRun) (int, error) {
	var sb strings.Builder

	sb.WriteString("\n")
	sb.WriteString(strings.Repeat("═", ruleWidth))
	sb.WriteString("\n\n")
	fmt.Fprintf(&sb, "%s %s\n\n", markChart, w.styles.heading.Render("RESULTS"))

	for _, r := range run.Results {
		sb.WriteString("   ")
		sb.WriteString(w.AuditLine(r, run.Thresholds))
		sb.WriteString("\n")
	}
	sb.WriteString("\n")

	s := run.Summary
	fmt.Fprintf(&sb, "   Pages audited: %d\n", s.Total)
	fmt.Fprintf(&sb, "   Successful:    %d\n", s.Successful)
	fmt.Fprintf(&sb, "   Avg Performance: %d\n", s.AvgPerformance)
	fmt.Fprintf(&sb, "   Avg SEO Score:   %d\n", s.AvgSEO)
	if w.verbose {
		fmt.Fprintf(&sb, "   Avg Accessibility:  %d\n", s.AvgAccessibility)
		fmt.Fprintf(&sb, "   Avg Best Practices: %d\n", s.AvgBestPractices)
		fmt.Fprintf(&sb, "   Run ID: %s\n", w.styles.muted.Render(run.ID))
		fmt.Fprintf(&sb, "   Duration: %s\n", run.Duration.Round(time.Millisecond))
	}
	if run.ReportsDir != "" {
		fmt.Fprintf(&sb, "\n   Report saved: %s\n", ReportPath(run.ReportsDir))
		fmt.Fprintf(&sb, "   HTML reports: %s/\n", run.ReportsDir)
	}
	sb.WriteString("\n")

	return w.output.Write([]byte(sb.String()))
}

// AuditLine formats the one-line progress entry for a page.
func (w *SimpleWriter) AuditLine(r *model.AuditResult, t model.Thresholds) string {
	switch {
	case r.Succeeded():
		parts := make([]string, 0, len(model.Categories))
		for _, c := range model.Categories {
			score := r.Scores.Score(c)
			text := fmt.Sprintf("%s:%d", shortLabel(c), score)
			parts = append(parts, w.styles.score(model.Evaluate(score, t.For(c)), text))
		}
		return fmt.Sprintf("%s %s: %s", markPass, r.Page, strings.Join(parts, " "))
	case r.ParseFailed:
		return fmt.Sprintf("%s %s: %s", markWarn, r.Page,
			w.styles.warning.Render("Completed but couldn't parse results"))
	default:
		msg := r.Error
		if msg == "" {
			msg = "Failed"
		}
		return fmt.Sprintf("%s %s: %s", markFail, r.Page, w.styles.failure.Render(truncateString(msg, 80)))
	}
}

// WriteHistory outputs a table of saved runs.
func (w *SimpleWriter) WriteHistory(runs []*model.AuditRun) (int, error) {
	var sb strings.Builder

	if len(runs) == 0 {
		sb.WriteString("No saved audit runs.\n")
		return w.output.Write([]byte(sb.String()))
	}

	fmt.Fprintf(&sb, "%-20s  %-36s  %5s  %4s  %4s  %4s\n", "STARTED", "ID", "PAGES", "OK", "PERF", "SEO")
	for _, run := range runs {
		s := run.Summary
		fmt.Fprintf(&sb, "%-20s  %-36s  %5d  %4d  %4d  %4d\n",
			run.StartedAt.UTC().Format("2006-01-02 15:04:05"),
			run.ID, s.Total, s.Successful, s.AvgPerformance, s.AvgSEO)
	}

	return w.output.Write([]byte(sb.String()))
}

// shortLabel returns the compact category name used in progress lines.
func shortLabel(c model.Category) string {
	switch c {
	case model.CategoryPerformance:
		return "P"
	case model.CategoryAccessibility:
		return "A"
	case model.CategoryBestPractices:
		return "BP"
	case model.CategorySEO:
		return "SEO"
	default:
		return string(c)
	}
}

// truncateString truncates a string to maxLen characters with ellipsis.
func truncateString(s string, maxLen int) string {
	r := []rune(s)
	if len(r) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return string(r[:maxLen])
	}
	return string(r[:maxLen-3]) + "..."
}
