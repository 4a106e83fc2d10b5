package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/cinematicwebworks/seokit/internal/audit"
	"github.com/cinematicwebworks/seokit/internal/config"
	"github.com/cinematicwebworks/seokit/internal/database"
	"github.com/cinematicwebworks/seokit/internal/model"
	"github.com/cinematicwebworks/seokit/internal/report"
	"github.com/spf13/cobra"
)

// NewAuditCmd creates the audit command.
func NewAuditCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "audit",
		Short: "Run Lighthouse audits against the live site",
		Long: `Audit runs Lighthouse (through npx) on the priority pages of the site
and collects performance, accessibility, best-practices and SEO scores
plus Core Web Vitals.

For every page, Lighthouse writes <name>.report.json and
<name>.report.html into the reports directory. A summary is written to
REPORT.md in the same directory. A page that fails to audit is reported
as an error and the remaining pages still run.

Pages are audited one at a time by default, because parallel Chrome
instances skew performance scores. Requires Node.js and Lighthouse
(npm install -g lighthouse).

Examples:
  # Audit the configured priority pages
  seokit audit

  # Audit a single page
  seokit audit --url https://cinematicwebworks.com/blog.html

  # Keep history and export metrics for the node_exporter textfile collector
  seokit audit --save --metrics-file /var/lib/node_exporter/seokit.prom`,
		Args: cobra.NoArgs,
		RunE: runAuditCmd,
	}

	cmd.Flags().StringP("base-url", "b", config.DefaultBaseURL, "Absolute base URL of the site")
	cmd.Flags().StringP("url", "u", "",
		"Audit only this URL instead of the configured pages")
	cmd.Flags().StringP("reports-dir", "d", config.DefaultReportsDir,
		"Directory for Lighthouse reports and REPORT.md")
	cmd.Flags().IntP("concurrency", "n", config.DefaultConcurrency,
		"Number of pages audited at once")
	cmd.Flags().DurationP("timeout", "t", config.DefaultAuditTimeout,
		"Time limit for each Lighthouse run")
	cmd.Flags().BoolP("save", "s", false,
		"Save the run to the history database")
	cmd.Flags().String("db-dir", config.XDGDataDir(),
		"Directory of the history database")
	cmd.Flags().String("metrics-file", "",
		"Write scores as a Prometheus textfile to this path")
	cmd.Flags().BoolP("json", "j", false,
		"Print the run as JSON instead of the text summary")
	cmd.Flags().Bool("strict", false,
		"Exit with status 1 when any page fails or scores below a threshold")
	cmd.Flags().String("command", "npx",
		"Launcher used to start Lighthouse")

	return cmd
}

// runAuditCmd executes the audit command.
func runAuditCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := buildAuditConfig(cmd)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	logger := setupLogger(cfg.Verbose)
	ctx, cancel := signalContext(logger)
	defer cancel()

	launcher, err := cmd.Flags().GetString("command")
	if err != nil {
		return err
	}
	runner := audit.NewLighthouseRunner(
		audit.WithCommand(launcher),
		audit.WithTimeout(cfg.Timeout),
		audit.WithRunnerLogger(logger),
	)

	singleURL, err := cmd.Flags().GetString("url")
	if err != nil {
		return err
	}
	pages := auditPages(cfg, singleURL)

	out := cmd.OutOrStdout()
	run, runErr := runAudit(ctx, cfg, runner, pages, out, logger)
	if run == nil {
		return runErr
	}

	if err := writeAuditOutputs(ctx, cfg, run, logger); err != nil {
		return err
	}

	if _, err := report.New(reportFormat(cfg), out, cfg.Verbose).WriteAudit(run); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}

	if runErr != nil {
		return runErr
	}

	strict, err := cmd.Flags().GetBool("strict")
	if err != nil {
		return err
	}
	if strict && !audit.Passed(run.Results, run.Thresholds) {
		return &ExitError{Code: 1}
	}
	return nil
}

// buildAuditConfig applies the audit flags on top of the loaded config.
func buildAuditConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}

	if err := applyStringFlag(cmd, "reports-dir", &cfg.ReportsDir); err != nil {
		return nil, err
	}
	if err := applyStringFlag(cmd, "metrics-file", &cfg.MetricsFile); err != nil {
		return nil, err
	}
	if err := applyStringFlag(cmd, "db-dir", &cfg.DBDir); err != nil {
		return nil, err
	}
	if f := cmd.Flags().Lookup("concurrency"); f != nil && f.Changed {
		if cfg.Concurrency, err = cmd.Flags().GetInt("concurrency"); err != nil {
			return nil, err
		}
	}
	if f := cmd.Flags().Lookup("timeout"); f != nil && f.Changed {
		if cfg.Timeout, err = cmd.Flags().GetDuration("timeout"); err != nil {
			return nil, err
		}
	}
	if cfg.SaveToDB, err = cmd.Flags().GetBool("save"); err != nil {
		return nil, err
	}
	if cfg.JSONReport, err = cmd.Flags().GetBool("json"); err != nil {
		return nil, err
	}
	return cfg, nil
}

// auditPages returns the pages to audit: the --url override, the
// configured pages, or the built-in priority pages.
func auditPages(cfg *config.Config, singleURL string) []string {
	if singleURL != "" {
		return []string{audit.PageFromURL(cfg.BaseURL, singleURL)}
	}
	if len(cfg.Pages) > 0 {
		return cfg.Pages
	}
	return audit.DefaultPages
}

// runAudit checks the tool, runs the orchestrator and prints a progress
// line per page.
func runAudit(ctx context.Context, cfg *config.Config, runner *audit.LighthouseRunner, pages []string, out io.Writer, logger *slog.Logger) (*model.AuditRun, error) {
	// no progress lines with --json
	progressOut := out
	if cfg.JSONReport {
		progressOut = io.Discard
	}

	fmt.Fprintln(progressOut, "🔦 Lighthouse Audit Runner")
	fmt.Fprintln(progressOut)
	fmt.Fprintln(progressOut, strings.Repeat("═", 60))
	fmt.Fprintln(progressOut)

	if err := runner.Available(ctx); err != nil {
		return nil, fmt.Errorf("%w (install it with: npm install -g lighthouse)", err)
	}

	fmt.Fprintf(progressOut, "📄 Auditing %d page(s)...\n\n", len(pages))

	lines := report.NewSimpleWriter(progressOut)
	orch := audit.NewOrchestrator(runner, cfg.BaseURL, cfg.ReportsDir,
		audit.WithConcurrency(cfg.Concurrency),
		audit.WithThresholds(cfg.Thresholds),
		audit.WithLogger(logger),
		audit.WithProgress(func(r *model.AuditResult, _, _ int) {
			fmt.Fprintf(progressOut, "   %s\n", lines.AuditLine(r, cfg.Thresholds))
		}),
	)

	run, err := orch.Execute(ctx, pages)
	if err != nil && errors.Is(err, context.Canceled) {
		logger.Warn("audit cancelled", "completed", len(resultsOf(run)))
	}
	return run, err
}

func resultsOf(run *model.AuditRun) []*model.AuditResult {
	if run == nil {
		return nil
	}
	return run.Results
}

// writeAuditOutputs writes REPORT.md, the optional metrics file and the
// optional history row.
func writeAuditOutputs(ctx context.Context, cfg *config.Config, run *model.AuditRun, logger *slog.Logger) error {
	f, err := createOutputFile(report.ReportPath(cfg.ReportsDir))
	if err != nil {
		return err
	}
	_, err = report.NewMarkdownWriter(f).WriteAudit(run)
	closeQuietly(f, logger)
	if err != nil {
		return fmt.Errorf("failed to write %s: %w", report.ReportFileName, err)
	}

	if cfg.MetricsFile != "" {
		if err := report.WriteMetricsFile(cfg.MetricsFile, run); err != nil {
			return fmt.Errorf("failed to write metrics file: %w", err)
		}
		logger.Info("metrics written", "path", cfg.MetricsFile)
	}

	if cfg.SaveToDB {
		// saved even when the run was cancelled
		if err := saveAuditRun(context.WithoutCancel(ctx), cfg.DBDir, run, logger); err != nil {
			return err
		}
	}
	return nil
}

// saveAuditRun stores run in the history database under dbDir.
func saveAuditRun(ctx context.Context, dbDir string, run *model.AuditRun, logger *slog.Logger) error {
	db, err := database.Open(dbDir, database.DefaultOptions())
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer closeQuietly(db, logger)

	if err := db.SaveAuditRun(ctx, run); err != nil {
		return fmt.Errorf("failed to save audit run: %w", err)
	}
	logger.Info("audit run saved to database", "id", run.ID, "path", db.Path())
	return nil
}
