package report

import (
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/cinematicwebworks/seokit/internal/model"
	"github.com/nao1215/markdown"
	"github.com/nao1215/markdown/mermaid/piechart"
)

// ReportFileName is the aggregated audit summary written to the reports dir.
const ReportFileName = "REPORT.md"

// ReportPath returns the location of the audit summary in reportsDir.
func ReportPath(reportsDir string) string {
	return filepath.Join(reportsDir, ReportFileName)
}

// MarkdownWriter outputs reports in Markdown format.
type MarkdownWriter struct {
	baseWriter

	// site names the site in document titles.
	site string
}

// MarkdownWriterOption configures a MarkdownWriter.
type MarkdownWriterOption func(*MarkdownWriter)

// WithSiteName sets the site name used in titles.
func WithSiteName(name string) MarkdownWriterOption {
	return func(w *MarkdownWriter) {
		if name != "" {
			w.site = name
		}
	}
}

// NewMarkdownWriter creates a MarkdownWriter that outputs to the given writer.
func NewMarkdownWriter(output io.Writer, opts ...MarkdownWriterOption) *MarkdownWriter {
	w := &MarkdownWriter{
		baseWriter: newBaseWriter(output),
		site:       "CWW",
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// WriteValidation outputs the validator report in Markdown format.
func (w *MarkdownWriter) WriteValidation(summary *model.ValidationSummary) (int, error) {
	md := markdown.NewMarkdown(w.output)

	md.H1f("SEO Validation Report - %s", w.site)
	md.PlainText("")

	md.H2("Summary")
	md.PlainText("")
	md.Table(markdown.TableSet{
		Header: []string{"Metric", "Value"},
		Rows: [][]string{
			{"Total pages", strconv.Itoa(summary.TotalPages)},
			{"Perfect pages", fmt.Sprintf("%d (%d%%)", summary.PerfectPages, summary.PerfectPercent())},
			{"Pages with issues", strconv.Itoa(summary.ProblemPages)},
			{"Total errors", strconv.Itoa(summary.TotalIssues)},
			{"Total warnings", strconv.Itoa(summary.TotalWarnings)},
		},
	})
	md.PlainText("")

	if summary.TotalPages > 0 {
		w.writePageChart(md, summary)
	}
	w.writeValidationAlert(md, summary)

	problems := summary.ProblemResults()
	md.H2("Pages With Issues")
	md.PlainText("")
	if len(problems) == 0 {
		md.PlainText("No pages with issues.")
		md.PlainText("")
	}
	for _, r := range problems {
		md.H3("`" + r.File + "`")
		md.PlainText("")
		rows := make([][]string, 0, len(r.Issues)+len(r.Warnings))
		for _, issue := range r.Issues {
			rows = append(rows, []string{"❌ Error", escapeCell(issue)})
		}
		for _, warning := range r.Warnings {
			rows = append(rows, []string{"⚠️ Warning", escapeCell(warning)})
		}
		md.Table(markdown.TableSet{
			Header: []string{"Level", "Message"},
			Rows:   rows,
		})
		md.PlainText("")
		if len(r.Passed) > 0 {
			md.Details("Passed checks", strings.Join(r.Passed, "<br>"))
			md.PlainText("")
		}
	}

	return len(md.String()), md.Build()
}

// writePageChart writes a mermaid pie chart of perfect vs problem pages.
func (w *MarkdownWriter) writePageChart(md *markdown.Markdown, s *model.ValidationSummary) {
	chart := piechart.NewPieChart(
		io.Discard,
		piechart.WithTitle("Page Status"),
		piechart.WithShowData(true),
	)
	if s.PerfectPages > 0 {
		chart.LabelAndIntValue("Perfect", uint64(s.PerfectPages))
	}
	if s.ProblemPages > 0 {
		chart.LabelAndIntValue("With issues", uint64(s.ProblemPages))
	}

	md.CodeBlocks(markdown.SyntaxHighlightMermaid, chart.String())
	md.PlainText("")
}

func (w *MarkdownWriter) writeValidationAlert(md *markdown.Markdown, s *model.ValidationSummary) {
	switch {
	case s.TotalIssues > 0:
		md.Cautionf("%d critical issues need fixing.", s.TotalIssues)
	case s.TotalWarnings > 0:
		md.Warningf("All pages pass required SEO checks, with %d warnings to review.", s.TotalWarnings)
	default:
		md.Tip("All pages pass required SEO checks!")
	}
	md.PlainText("")
}

// WriteAudit outputs the audit summary document (REPORT.md).
func (w *MarkdownWriter) WriteAudit(run *model.AuditRun) (int, error) {
	md := markdown.NewMarkdown(w.output)

	md.H1f("Lighthouse Audit Report - %s", w.site)
	md.PlainTextf("Generated: %s", run.StartedAt.UTC().Format(time.RFC3339))
	md.PlainText("")

	md.H2("Summary")
	md.PlainText("")
	header := []string{"Page"}
	for _, c := range model.Categories {
		header = append(header, c.Label())
	}
	rows := make([][]string, 0, len(run.Results))
	for _, r := range run.Results {
		if !r.Succeeded() {
			rows = append(rows, []string{r.Page, "❌ Error", "-", "-", "-"})
			continue
		}
		row := []string{r.Page}
		for _, c := range model.Categories {
			score := r.Scores.Score(c)
			ind := model.Evaluate(score, run.Thresholds.For(c))
			row = append(row, fmt.Sprintf("%s %d", ind.Emoji(), score))
		}
		rows = append(rows, row)
	}
	md.Table(markdown.TableSet{Header: header, Rows: rows})
	md.PlainText("")

	md.H2("Core Web Vitals")
	md.PlainText("")
	vitals := make([][]string, 0, len(run.Results))
	for _, r := range run.Results {
		if r.Succeeded() {
			vitals = append(vitals, []string{r.Page, r.Scores.LCP, r.Scores.FID, r.Scores.CLS, r.Scores.TTFB})
		}
	}
	md.Table(markdown.TableSet{
		Header: []string{"Page", "LCP", "FID", "CLS", "TTFB"},
		Rows:   vitals,
	})
	md.PlainText("")

	md.H2("Averages")
	md.PlainText("")
	s := run.Summary
	md.PlainTextf("%d of %d pages scored.", s.Successful, s.Total)
	md.PlainText("")
	avg := make([]string, 0, len(model.Categories))
	for _, c := range model.Categories {
		avg = append(avg, fmt.Sprintf("%s: %d", c.Label(), s.Average(c)))
	}
	md.BulletList(avg...)
	md.PlainText("")

	md.H2("Thresholds")
	md.PlainText("")
	limits := make([]string, 0, len(model.Categories))
	for _, c := range model.Categories {
		limits = append(limits, fmt.Sprintf("%s: %d+", c.Label(), run.Thresholds.For(c)))
	}
	md.BulletList(limits...)
	md.PlainText("")

	md.H2("Files")
	md.PlainText("")
	md.PlainTextf("HTML reports saved to: `%s/`", filepath.ToSlash(run.ReportsDir))

	return len(md.String()), md.Build()
}

// WriteHistory outputs the saved runs as a Markdown table.
func (w *MarkdownWriter) WriteHistory(runs []*model.AuditRun) (int, error) {
	md := markdown.NewMarkdown(w.output)

	md.H1f("Audit History - %s", w.site)
	md.PlainText("")

	if len(runs) == 0 {
		md.Note("No saved audit runs.")
		return len(md.String()), md.Build()
	}

	rows := make([][]string, 0, len(runs))
	for _, run := range runs {
		s := run.Summary
		rows = append(rows, []string{
			run.StartedAt.UTC().Format("2006-01-02 15:04:05"),
			"`" + run.ID + "`",
			fmt.Sprintf("%d/%d", s.Successful, s.Total),
			strconv.Itoa(s.AvgPerformance),
			strconv.Itoa(s.AvgAccessibility),
			strconv.Itoa(s.AvgBestPractices),
			strconv.Itoa(s.AvgSEO),
		})
	}
	md.Table(markdown.TableSet{
		Header: []string{"Started (UTC)", "Run", "Scored", "Performance", "Accessibility", "Best Practices", "SEO"},
		Rows:   rows,
	})

	return len(md.String()), md.Build()
}

// escapeCell keeps pipes in messages from splitting table cells.
func escapeCell(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}
