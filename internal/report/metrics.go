package report

import (
	"fmt"

	"github.com/cinematicwebworks/seokit/internal/model"
	"github.com/prometheus/client_golang/prometheus"
)

const metricsNamespace = "seokit"

// NewAuditRegistry returns a registry holding gauges for run: per-page
// category scores, per-category averages and page counts.
func NewAuditRegistry(run *model.AuditRun) (*prometheus.Registry, error) {
	reg := prometheus.NewRegistry()

	score := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: metricsNamespace,
		Subsystem: "audit",
		Name:      "score",
		Help:      "Lighthouse category score (0-100) per audited page.",
	}, []string{"page", "category"})
	passing := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: metricsNamespace,
		Subsystem: "audit",
		Name:      "score_passing",
		Help:      "1 when the page's category score meets its threshold, else 0.",
	}, []string{"page", "category"})
	average := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: metricsNamespace,
		Subsystem: "audit",
		Name:      "average_score",
		Help:      "Average category score over successfully audited pages.",
	}, []string{"category"})
	threshold := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: metricsNamespace,
		Subsystem: "audit",
		Name:      "threshold",
		Help:      "Configured pass threshold per category.",
	}, []string{"category"})
	pages := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: metricsNamespace,
		Subsystem: "audit",
		Name:      "pages",
		Help:      "Number of audited pages by outcome.",
	}, []string{"status"})
	lastRun := prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: metricsNamespace,
		Subsystem: "audit",
		Name:      "last_run_timestamp_seconds",
		Help:      "Unix time the audit run started.",
	})
	duration := prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: metricsNamespace,
		Subsystem: "audit",
		Name:      "duration_seconds",
		Help:      "Wall-clock duration of the audit run.",
	})

	for _, c := range []prometheus.Collector{score, passing, average, threshold, pages, lastRun, duration} {
		if err := reg.Register(c); err != nil {
			return nil, fmt.Errorf("failed to register audit metric: %w", err)
		}
	}

	for _, r := range run.Results {
		if !r.Succeeded() {
			continue
		}
		for _, c := range model.Categories {
			v := r.Scores.Score(c)
			score.WithLabelValues(r.Page, string(c)).Set(float64(v))
			ok := 0.0
			if model.Evaluate(v, run.Thresholds.For(c)) == model.IndicatorPass {
				ok = 1
			}
			passing.WithLabelValues(r.Page, string(c)).Set(ok)
		}
	}
	for _, c := range model.Categories {
		threshold.WithLabelValues(string(c)).Set(float64(run.Thresholds.For(c)))
		if run.Summary.Successful > 0 {
			average.WithLabelValues(string(c)).Set(float64(run.Summary.Average(c)))
		}
	}
	pages.WithLabelValues("successful").Set(float64(run.Summary.Successful))
	pages.WithLabelValues("failed").Set(float64(run.Summary.Failed))
	lastRun.Set(float64(run.StartedAt.Unix()))
	duration.Set(run.Duration.Seconds())

	return reg, nil
}

// WriteMetricsFile writes run to path in the Prometheus text exposition
// format, for pickup by the node_exporter textfile collector. The file is
// replaced atomically.
func WriteMetricsFile(path string, run *model.AuditRun) error {
	reg, err := NewAuditRegistry(run)
	if err != nil {
		return err
	}
	if err := prometheus.WriteToTextfile(path, reg); err != nil {
		return fmt.Errorf("failed to write metrics file %s: %w", path, err)
	}
	return nil
}
