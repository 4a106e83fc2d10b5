package model

import "time"

// Category identifies one of the scored audit categories.
type Category string

// Audited categories, keyed the way the audit tool names them.
const (
	CategoryPerformance   Category = "performance"
	CategoryAccessibility Category = "accessibility"
	CategoryBestPractices Category = "best-practices"
	CategorySEO           Category = "seo"
)

// Categories lists every category in report column order.
var Categories = []Category{
	CategoryPerformance,
	CategoryAccessibility,
	CategoryBestPractices,
	CategorySEO,
}

// Label returns the human-readable column name for the category.
func (c Category) Label() string {
	switch c {
	case CategoryPerformance:
		return "Performance"
	case CategoryAccessibility:
		return "Accessibility"
	case CategoryBestPractices:
		return "Best Practices"
	case CategorySEO:
		return "SEO"
	default:
		return string(c)
	}
}

// Scores holds the category scores (0-100) and Core Web Vitals of one page.
type Scores struct {
	Performance   int `json:"performance"`
	Accessibility int `json:"accessibility"`
	BestPractices int `json:"best_practices"`
	SEO           int `json:"seo"`

	// Metric display values as reported by the audit tool, or "N/A".
	LCP  string `json:"lcp"`
	FID  string `json:"fid"`
	CLS  string `json:"cls"`
	TTFB string `json:"ttfb"`
}

// Score returns the score for category c.
func (s *Scores) Score(c Category) int {
	switch c {
	case CategoryPerformance:
		return s.Performance
	case CategoryAccessibility:
		return s.Accessibility
	case CategoryBestPractices:
		return s.BestPractices
	case CategorySEO:
		return s.SEO
	default:
		return 0
	}
}

// AuditResult is the outcome of auditing a single page.
type AuditResult struct {
	// Page is the site-relative path that was audited (e.g. "/blog.html").
	Page string `json:"page"`

	// URL is the absolute URL passed to the audit tool.
	URL string `json:"url"`

	// Scores is nil when the audit failed or its output could not be parsed.
	Scores *Scores `json:"scores"`

	// Error describes the failure when Scores is nil.
	Error string `json:"error,omitempty"`

	// ParseFailed is set when the tool finished but its report could not
	// be read.
	ParseFailed bool `json:"parse_failed,omitempty"`

	// Duration is how long the audit took.
	Duration time.Duration `json:"duration"`
}

// Succeeded reports whether the audit produced scores.
func (r *AuditResult) Succeeded() bool {
	return r.Scores != nil
}

// Indicator is a score's position relative to its pass threshold.
type Indicator int

const (
	// IndicatorPass means the score met the threshold.
	IndicatorPass Indicator = iota

	// IndicatorNear means the score is within 10 points below the threshold.
	IndicatorNear

	// IndicatorFail means the score is more than 10 points below the threshold.
	IndicatorFail
)

// NearThresholdMargin is how far below a threshold a score may fall and
// still be reported as near rather than failing.
const NearThresholdMargin = 10

// String returns a lower-case name for the indicator.
func (i Indicator) String() string {
	switch i {
	case IndicatorPass:
		return "pass"
	case IndicatorNear:
		return "near"
	case IndicatorFail:
		return "fail"
	default:
		return "unknown"
	}
}

// Emoji returns the marker used in console and Markdown tables.
func (i Indicator) Emoji() string {
	switch i {
	case IndicatorPass:
		return "✅"
	case IndicatorNear:
		return "⚠️"
	default:
		return "❌"
	}
}

// Thresholds holds the minimum passing score per category.
type Thresholds struct {
	Performance   int `yaml:"performance" json:"performance"`
	Accessibility int `yaml:"accessibility" json:"accessibility"`
	BestPractices int `yaml:"bestPractices" json:"best_practices"`
	SEO           int `yaml:"seo" json:"seo"`
}

// DefaultThresholds returns the pass thresholds used when none are configured.
func DefaultThresholds() Thresholds {
	return Thresholds{
		Performance:   80,
		Accessibility: 90,
		BestPractices: 80,
		SEO:           90,
	}
}

// For returns the threshold for category c.
func (t Thresholds) For(c Category) int {
	switch c {
	case CategoryPerformance:
		return t.Performance
	case CategoryAccessibility:
		return t.Accessibility
	case CategoryBestPractices:
		return t.BestPractices
	case CategorySEO:
		return t.SEO
	default:
		return 0
	}
}

// Evaluate classifies score against threshold.
func Evaluate(score, threshold int) Indicator {
	switch {
	case score >= threshold:
		return IndicatorPass
	case score >= threshold-NearThresholdMargin:
		return IndicatorNear
	default:
		return IndicatorFail
	}
}

// AuditSummary aggregates a batch of audit results.
type AuditSummary struct {
	Total      int `json:"total"`
	Successful int `json:"successful"`
	Failed     int `json:"failed"`

	// Averages are over the successfully scored pages only, rounded.
	// They are zero when no page was scored.
	AvgPerformance   int `json:"avg_performance"`
	AvgAccessibility int `json:"avg_accessibility"`
	AvgBestPractices int `json:"avg_best_practices"`
	AvgSEO           int `json:"avg_seo"`
}

// Average returns the average for category c.
func (s AuditSummary) Average(c Category) int {
	switch c {
	case CategoryPerformance:
		return s.AvgPerformance
	case CategoryAccessibility:
		return s.AvgAccessibility
	case CategoryBestPractices:
		return s.AvgBestPractices
	case CategorySEO:
		return s.AvgSEO
	default:
		return 0
	}
}

// AuditRun is one invocation of the audit over a set of pages.
type AuditRun struct {
	// ID uniquely identifies the run in the history database.
	ID string `json:"id"`

	BaseURL    string         `json:"base_url"`
	StartedAt  time.Time      `json:"started_at"`
	Duration   time.Duration  `json:"duration"`
	ReportsDir string         `json:"reports_dir"`
	Thresholds Thresholds     `json:"thresholds"`
	Results    []*AuditResult `json:"results"`
	Summary    AuditSummary   `json:"summary"`
}
