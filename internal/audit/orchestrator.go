package audit

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"sync"
	"time"

	"github.com/cinematicwebworks/seokit/internal/model"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// ProgressFunc is called after each page finishes. With concurrency above
// one it is called from several goroutines, one call at a time.
type ProgressFunc func(result *model.AuditResult, index, total int)

// Orchestrator audits a list of pages with a Runner.
type Orchestrator struct {
	runner      Runner
	baseURL     string
	reportsDir  string
	concurrency int
	thresholds  model.Thresholds
	progress    ProgressFunc
	logger      *slog.Logger
	now         func() time.Time

	mu sync.Mutex
}

// Option configures an Orchestrator.
type Option func(*Orchestrator)

// WithConcurrency sets how many pages are audited at once. Default is 1.
func WithConcurrency(n int) Option {
	return func(o *Orchestrator) {
		if n > 0 {
			o.concurrency = n
		}
	}
}

// WithThresholds sets the thresholds recorded on each run.
func WithThresholds(t model.Thresholds) Option {
	return func(o *Orchestrator) {
		o.thresholds = t
	}
}

// WithProgress sets a callback invoked after each page.
func WithProgress(fn ProgressFunc) Option {
	return func(o *Orchestrator) {
		o.progress = fn
	}
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(o *Orchestrator) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// NewOrchestrator creates an Orchestrator that resolves pages against
// baseURL and writes reports into reportsDir.
func NewOrchestrator(runner Runner, baseURL, reportsDir string, opts ...Option) *Orchestrator {
	o := &Orchestrator{
		runner:      runner,
		baseURL:     baseURL,
		reportsDir:  reportsDir,
		concurrency: 1,
		thresholds:  model.DefaultThresholds(),
		logger:      slog.Default(),
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Run audits every page and returns one result per page in input order.
// A page that fails is recorded with nil scores and the batch continues.
// The returned error is non-nil only when the reports directory cannot be
// created or ctx is cancelled; results gathered so far are still returned.
func (o *Orchestrator) Run(ctx context.Context, pages []string) ([]*model.AuditResult, error) {
	if err := os.MkdirAll(o.reportsDir, 0o750); err != nil {
		return nil, fmt.Errorf("failed to create reports directory %s: %w", o.reportsDir, err)
	}

	o.logger.Info("starting audit",
		"pages", len(pages),
		"concurrency", o.concurrency,
	)
	start := o.now()

	results := make([]*model.AuditResult, len(pages))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(o.concurrency)

	for i, page := range pages {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			result := o.auditPage(ctx, page)

			o.mu.Lock()
			results[i] = result
			if o.progress != nil {
				o.progress(result, i, len(pages))
			}
			o.mu.Unlock()

			// per-page failures are recorded on the result
			return nil
		})
	}

	err := g.Wait()

	o.logger.Info("audit complete",
		"pages", len(pages),
		"elapsed", time.Since(start),
	)

	if err != nil {
		return compact(results), err
	}
	return results, nil
}

// Execute runs the audit and packages the results as a run with a fresh ID
// and summary. On cancellation the partial run is returned with the error.
func (o *Orchestrator) Execute(ctx context.Context, pages []string) (*model.AuditRun, error) {
	started := o.now()
	results, err := o.Run(ctx, pages)
	if results == nil && err != nil {
		return nil, err
	}
	run := &model.AuditRun{
		ID:         uuid.NewString(),
		BaseURL:    o.baseURL,
		StartedAt:  started,
		Duration:   o.now().Sub(started),
		ReportsDir: o.reportsDir,
		Thresholds: o.thresholds,
		Results:    results,
		Summary:    Summarize(results),
	}
	return run, err
}

func (o *Orchestrator) auditPage(ctx context.Context, page string) *model.AuditResult {
	url := PageURL(o.baseURL, page)
	base := OutputBase(o.reportsDir, page)
	result := &model.AuditResult{Page: page, URL: url}

	o.logger.Debug("auditing page", "page", page, "url", url, "output", base)

	started := o.now()
	err := o.runner.Run(ctx, url, base)
	result.Duration = time.Since(started)
	if err != nil {
		o.logger.Warn("audit failed", "page", page, "error", err)
		result.Error = err.Error()
		return result
	}

	scores, err := ReadReport(base + JSONReportSuffix)
	if err != nil {
		o.logger.Warn("audit output unreadable", "page", page, "error", err)
		result.Error = err.Error()
		result.ParseFailed = true
		return result
	}
	result.Scores = scores
	return result
}

// compact drops pages that never started because the run was cancelled.
func compact(results []*model.AuditResult) []*model.AuditResult {
	out := make([]*model.AuditResult, 0, len(results))
	for _, r := range results {
		if r != nil {
			out = append(out, r)
		}
	}
	return out
}
