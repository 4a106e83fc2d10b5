package audit

import (
	"math"

	"github.com/cinematicwebworks/seokit/internal/model"
)

// Summarize counts results and averages the scored subset.
func Summarize(results []*model.AuditResult) model.AuditSummary {
	s := model.AuditSummary{Total: len(results)}
	var perf, a11y, bp, seo int
	for _, r := range results {
		if !r.Succeeded() {
			s.Failed++
			continue
		}
		s.Successful++
		perf += r.Scores.Performance
		a11y += r.Scores.Accessibility
		bp += r.Scores.BestPractices
		seo += r.Scores.SEO
	}
	if s.Successful == 0 {
		return s
	}
	n := float64(s.Successful)
	s.AvgPerformance = int(math.Round(float64(perf) / n))
	s.AvgAccessibility = int(math.Round(float64(a11y) / n))
	s.AvgBestPractices = int(math.Round(float64(bp) / n))
	s.AvgSEO = int(math.Round(float64(seo) / n))
	return s
}

// Passed reports whether every page was scored and meets every threshold.
func Passed(results []*model.AuditResult, t model.Thresholds) bool {
	for _, r := range results {
		if !r.Succeeded() {
			return false
		}
		for _, c := range model.Categories {
			if model.Evaluate(r.Scores.Score(c), t.For(c)) != model.IndicatorPass {
				return false
			}
		}
	}
	return true
}
