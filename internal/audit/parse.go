package audit

import (
	"encoding/json"
	"fmt"
	"math"
	"os"

	"github.com/cinematicwebworks/seokit/internal/model"
)

// NotAvailable is the display value used when a metric is absent.
const NotAvailable = "N/A"

// Metric audit IDs in the Lighthouse report.
const (
	AuditLCP  = "largest-contentful-paint"
	AuditFID  = "max-potential-fid"
	AuditCLS  = "cumulative-layout-shift"
	AuditTTFB = "server-response-time"
)

type lighthouseReport struct {
	Categories map[string]struct {
		Score *float64 `json:"score"`
	} `json:"categories"`
	Audits map[string]struct {
		DisplayValue string `json:"displayValue"`
	} `json:"audits"`
}

// ParseReport extracts scores and metrics from a Lighthouse JSON report.
// A category with a null score counts as 0. A missing category is an error.
func ParseReport(data []byte) (*model.Scores, error) {
	var lr lighthouseReport
	if err := json.Unmarshal(data, &lr); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParseReport, err)
	}

	scores := make(map[model.Category]int, len(model.Categories))
	for _, c := range model.Categories {
		cat, ok := lr.Categories[string(c)]
		if !ok {
			return nil, fmt.Errorf("%w: missing category %q", ErrParseReport, c)
		}
		if cat.Score != nil {
			scores[c] = int(math.Round(*cat.Score * 100))
		}
	}

	display := func(id string) string {
		if a, ok := lr.Audits[id]; ok && a.DisplayValue != "" {
			return a.DisplayValue
		}
		return NotAvailable
	}

	return &model.Scores{
		Performance:   scores[model.CategoryPerformance],
		Accessibility: scores[model.CategoryAccessibility],
		BestPractices: scores[model.CategoryBestPractices],
		SEO:           scores[model.CategorySEO],
		LCP:           display(AuditLCP),
		FID:           display(AuditFID),
		CLS:           display(AuditCLS),
		TTFB:          display(AuditTTFB),
	}, nil
}

// ReadReport parses the JSON report at path.
func ReadReport(path string) (*model.Scores, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParseReport, err)
	}
	return ParseReport(data)
}
