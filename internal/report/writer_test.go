package report

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/cinematicwebworks/seokit/internal/model"
)

// createValidationSummary creates a summary with one perfect and one
// problem page.
func createValidationSummary() *model.ValidationSummary {
	good := model.NewValidationResult("index.html")
	good.AddPassed("Page title")

	bad := model.NewValidationResult("blog.html")
	bad.AddIssue("Missing Canonical URL")
	bad.AddWarning("Only 1 internal links (recommend 3+)")
	bad.AddWarning("Page title too long (70/60 chars) | tail")
	bad.AddPassed("H1 heading")

	return model.NewValidationSummary([]*model.ValidationResult{good, bad})
}

// createAuditRun creates a run with one passing, one weak and one failed page.
func createAuditRun() *model.AuditRun {
	results := []*model.AuditResult{
		{
			Page: "/",
			URL:  "https://cinematicwebworks.com/",
			Scores: &model.Scores{
				Performance: 92, Accessibility: 95, BestPractices: 100, SEO: 100,
				LCP: "1.1 s", FID: "40 ms", CLS: "0", TTFB: "Root document took 120 ms",
			},
		},
		{
			Page: "/blog.html",
			URL:  "https://cinematicwebworks.com/blog.html",
			Scores: &model.Scores{
				Performance: 72, Accessibility: 60, BestPractices: 80, SEO: 89,
				LCP: "3.9 s", FID: "N/A", CLS: "0.2", TTFB: "N/A",
			},
		},
		{
			Page:  "/down.html",
			URL:   "https://cinematicwebworks.com/down.html",
			Error: "audit tool failed for https://cinematicwebworks.com/down.html (exit 1): Chrome crashed",
		},
	}
	return &model.AuditRun{
		ID:         "5f1c2a3e-4b5d-4e6f-8a9b-0c1d2e3f4a5b",
		BaseURL:    "https://cinematicwebworks.com",
		StartedAt:  time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC),
		Duration:   95 * time.Second,
		ReportsDir: "reports/lighthouse",
		Thresholds: model.DefaultThresholds(),
		Results:    results,
		Summary: model.AuditSummary{
			Total: 3, Successful: 2, Failed: 1,
			AvgPerformance: 82, AvgAccessibility: 78, AvgBestPractices: 90, AvgSEO: 95,
		},
	}
}

// TestSimpleWriter tests the console report writer.
func TestSimpleWriter(t *testing.T) {
	t.Parallel()

	t.Run("writes validation problems and summary", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		w := NewSimpleWriter(&buf)

		_, err := w.WriteValidation(createValidationSummary())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		output := buf.String()
		for _, want := range []string{
			"Scanning 2 HTML files",
			"PAGES WITH ISSUES",
			"blog.html",
			"❌ Missing Canonical URL",
			"Only 1 internal links (recommend 3+)",
			"Total pages:     2",
			"Perfect pages:   1 (50%)",
			"Pages w/ issues: 1",
			"Total errors:    1",
			"Total warnings:  2",
			"1 critical issues need fixing",
			"2 warnings to review",
		} {
			if !strings.Contains(output, want) {
				t.Errorf("expected output to contain %q\n%s", want, output)
			}
		}
		if strings.Contains(output, "✅ index.html") {
			t.Error("perfect pages should only be listed in verbose mode")
		}
		if strings.Contains(output, "H1 heading") {
			t.Error("passed checks should only be listed in verbose mode")
		}
	})

	t.Run("verbose lists perfect pages and passed checks", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		w := NewSimpleWriter(&buf, WithVerbose(true))

		if _, err := w.WriteValidation(createValidationSummary()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		output := buf.String()
		if !strings.Contains(output, "✅ index.html") {
			t.Error("expected perfect page to be listed")
		}
		if !strings.Contains(output, "✅ H1 heading") {
			t.Error("expected passed check to be listed")
		}
	})

	t.Run("clean run reports success", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		w := NewSimpleWriter(&buf)
		summary := model.NewValidationSummary([]*model.ValidationResult{model.NewValidationResult("index.html")})

		if _, err := w.WriteValidation(summary); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		output := buf.String()
		if !strings.Contains(output, "All pages pass required SEO checks!") {
			t.Errorf("expected success line, got:\n%s", output)
		}
		if strings.Contains(output, "PAGES WITH ISSUES") {
			t.Error("did not expect problem section")
		}
		if strings.Contains(output, "warnings to review") {
			t.Error("did not expect warnings line")
		}
	})

	t.Run("writes audit results", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		w := NewSimpleWriter(&buf)

		if _, err := w.WriteAudit(createAuditRun()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		output := buf.String()
		for _, want := range []string{
			"✅ /: P:92 A:95 BP:100 SEO:100",
			"❌ /down.html:",
			"Pages audited: 3",
			"Successful:    2",
			"Avg Performance: 82",
			"Avg SEO Score:   95",
			filepath.Join("reports/lighthouse", "REPORT.md"),
		} {
			if !strings.Contains(output, want) {
				t.Errorf("expected output to contain %q\n%s", want, output)
			}
		}
	})

	t.Run("audit line for unparsable output", func(t *testing.T) {
		t.Parallel()

		w := NewSimpleWriter(&bytes.Buffer{})
		line := w.AuditLine(&model.AuditResult{Page: "/x.html", ParseFailed: true, Error: "bad"}, model.DefaultThresholds())
		if !strings.Contains(line, "Completed but couldn't parse results") {
			t.Errorf("unexpected line: %s", line)
		}
	})

	t.Run("writes empty history", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		if _, err := NewSimpleWriter(&buf).WriteHistory(nil); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(buf.String(), "No saved audit runs.") {
			t.Errorf("unexpected output: %s", buf.String())
		}
	})

	t.Run("writes history rows", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		if _, err := NewSimpleWriter(&buf).WriteHistory([]*model.AuditRun{createAuditRun()}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		output := buf.String()
		if !strings.Contains(output, "2026-03-14 09:30:00") || !strings.Contains(output, "5f1c2a3e") {
			t.Errorf("unexpected output: %s", output)
		}
	})
}

// TestJSONWriter tests the JSON report writer.
func TestJSONWriter(t *testing.T) {
	t.Parallel()

	t.Run("writes validation verdict", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		w := NewJSONWriter(&buf)

		if _, err := w.WriteValidation(createValidationSummary()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		var got ValidationReport
		if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
			t.Fatalf("invalid JSON: %v", err)
		}
		if got.Passed {
			t.Error("expected passed to be false")
		}
		if got.ExitCode != 1 {
			t.Errorf("expected exit code 1, got %d", got.ExitCode)
		}
		if got.Summary.TotalWarnings != 2 {
			t.Errorf("expected 2 warnings, got %d", got.Summary.TotalWarnings)
		}
	})

	t.Run("compact output by default", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		if _, err := NewJSONWriter(&buf).WriteAudit(createAuditRun()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if strings.Count(buf.String(), "\n") != 1 {
			t.Error("expected single-line JSON")
		}
	})

	t.Run("pretty print", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		if _, err := NewJSONWriter(&buf, WithPrettyPrint()).WriteAudit(createAuditRun()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(buf.String(), "\n  \"id\": ") {
			t.Errorf("expected indented JSON, got:\n%s", buf.String())
		}

		var run model.AuditRun
		if err := json.Unmarshal(buf.Bytes(), &run); err != nil {
			t.Fatalf("invalid JSON: %v", err)
		}
		if run.Results[2].Scores != nil {
			t.Error("failed page should have null scores")
		}
	})

	t.Run("empty history is an array", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		if _, err := NewJSONWriter(&buf).WriteHistory(nil); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if strings.TrimSpace(buf.String()) != "[]" {
			t.Errorf("expected [], got %s", buf.String())
		}
	})
}

// TestMarkdownWriter tests the Markdown report writer.
func TestMarkdownWriter(t *testing.T) {
	t.Parallel()

	t.Run("writes audit report", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		w := NewMarkdownWriter(&buf)

		if _, err := w.WriteAudit(createAuditRun()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		output := buf.String()
		for _, want := range []string{
			"# Lighthouse Audit Report - CWW",
			"Generated: 2026-03-14T09:30:00Z",
			"## Summary",
			"| Page | Performance | Accessibility | Best Practices | SEO |",
			"| / | ✅ 92 | ✅ 95 | ✅ 100 | ✅ 100 |",
			"| /blog.html | ⚠️ 72 | ❌ 60 | ✅ 80 | ⚠️ 89 |",
			"| /down.html | ❌ Error | - | - | - |",
			"## Core Web Vitals",
			"| /blog.html | 3.9 s | N/A | 0.2 | N/A |",
			"- Performance: 80+",
			"- Accessibility: 90+",
			"- Best Practices: 80+",
			"- SEO: 90+",
			"HTML reports saved to: `reports/lighthouse/`",
		} {
			if !strings.Contains(output, want) {
				t.Errorf("expected output to contain %q\n%s", want, output)
			}
		}
		if strings.Contains(output, "| /down.html | N/A") {
			t.Error("failed pages must not appear in the vitals table")
		}
	})

	t.Run("writes validation report", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		w := NewMarkdownWriter(&buf, WithSiteName("Example"))

		if _, err := w.WriteValidation(createValidationSummary()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		output := buf.String()
		for _, want := range []string{
			"# SEO Validation Report - Example",
			"| Perfect pages | 1 (50%) |",
			"```mermaid",
			"[!CAUTION]",
			"### `blog.html`",
			"| ❌ Error | Missing Canonical URL |",
			`(70/60 chars) \| tail`,
		} {
			if !strings.Contains(output, want) {
				t.Errorf("expected output to contain %q\n%s", want, output)
			}
		}
		if strings.Contains(output, "### `index.html`") {
			t.Error("perfect pages should not get a section")
		}
	})

	t.Run("writes history", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		if _, err := NewMarkdownWriter(&buf).WriteHistory([]*model.AuditRun{createAuditRun()}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(buf.String(), "| 2026-03-14 09:30:00 | `5f1c2a3e-4b5d-4e6f-8a9b-0c1d2e3f4a5b` | 2/3 | 82 | 78 | 90 | 95 |") {
			t.Errorf("unexpected output:\n%s", buf.String())
		}
	})
}

// TestMultiWriter tests writing to several writers at once.
func TestMultiWriter(t *testing.T) {
	t.Parallel()

	var text, js bytes.Buffer
	mw := NewMultiWriter(NewSimpleWriter(&text), NewJSONWriter(&js))

	n, err := mw.WriteValidation(createValidationSummary())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n != text.Len()+js.Len() {
		t.Errorf("expected %d bytes, got %d", text.Len()+js.Len(), n)
	}
	if text.Len() == 0 || js.Len() == 0 {
		t.Error("expected both writers to receive output")
	}
}

// TestNew tests format selection.
func TestNew(t *testing.T) {
	t.Parallel()

	tests := []struct {
		format Format
		check  func(Writer) bool
	}{
		{FormatText, func(w Writer) bool { _, ok := w.(*SimpleWriter); return ok }},
		{FormatJSON, func(w Writer) bool { _, ok := w.(*JSONWriter); return ok }},
		{FormatMarkdown, func(w Writer) bool { _, ok := w.(*MarkdownWriter); return ok }},
		{Format("xml"), func(w Writer) bool { _, ok := w.(*SimpleWriter); return ok }},
	}

	for _, tt := range tests {
		t.Run(string(tt.format), func(t *testing.T) {
			t.Parallel()
			if !tt.check(New(tt.format, &bytes.Buffer{}, false)) {
				t.Errorf("unexpected writer for %s", tt.format)
			}
		})
	}
}

// TestWriteMetricsFile tests the Prometheus textfile export.
func TestWriteMetricsFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "seokit.prom")
	if err := WriteMetricsFile(path, createAuditRun()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read metrics: %v", err)
	}
	output := string(data)

	for _, want := range []string{
		`seokit_audit_score{category="performance",page="/"} 92`,
		`seokit_audit_score{category="accessibility",page="/blog.html"} 60`,
		`seokit_audit_score_passing{category="accessibility",page="/blog.html"} 0`,
		`seokit_audit_average_score{category="seo"} 95`,
		`seokit_audit_threshold{category="accessibility"} 90`,
		`seokit_audit_pages{status="failed"} 1`,
		`seokit_audit_duration_seconds 95`,
	} {
		if !strings.Contains(output, want) {
			t.Errorf("expected metrics to contain %q\n%s", want, output)
		}
	}
	if strings.Contains(output, `page="/down.html"`) {
		t.Error("failed pages must not export scores")
	}
}

// TestTruncateString tests string truncation.
func TestTruncateString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input  string
		maxLen int
		want   string
	}{
		{"short", 10, "short"},
		{"exactly ten", 11, "exactly ten"},
		{"this is too long", 10, "this is..."},
		{"abc", 2, "ab"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()
			if got := truncateString(tt.input, tt.maxLen); got != tt.want {
				t.Errorf("truncateString(%q, %d) = %q, want %q", tt.input, tt.maxLen, got, tt.want)
			}
		})
	}
}
