package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/cinematicwebworks/seokit/internal/config"
	"github.com/cinematicwebworks/seokit/internal/database"
	"github.com/cinematicwebworks/seokit/internal/report"
	"github.com/spf13/cobra"
)

// NewHistoryCmd creates the history command.
// This command lists audit runs saved with 'seokit audit --save'.
func NewHistoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show saved audit runs",
		Long: `History lists audit runs saved with 'seokit audit --save', newest first.

Examples:
  # List the latest runs
  seokit history

  # Show one run in full
  seokit history --id 3f2b9c1e-...

  # Score trend for one page
  seokit history --page /blog.html

  # Drop runs older than 90 days
  seokit history --prune 2160h`,
		Args: cobra.NoArgs,
		RunE: runHistoryCmd,
	}

	cmd.Flags().IntP("limit", "l", config.DefaultHistoryLimit,
		"Maximum number of runs to show (0 for all)")
	cmd.Flags().StringP("id", "i", "",
		"Show the full result of one run")
	cmd.Flags().StringP("page", "p", "",
		"Show the score history of one page")
	cmd.Flags().Duration("prune", 0,
		"Delete runs older than this duration before listing")
	cmd.Flags().String("db-dir", config.XDGDataDir(),
		"Directory of the history database")
	cmd.Flags().BoolP("json", "j", false,
		"Output JSON (mutually exclusive with --markdown)")
	cmd.Flags().BoolP("markdown", "m", false,
		"Output Markdown (mutually exclusive with --json)")

	return cmd
}

// runHistoryCmd executes the history command.
func runHistoryCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if err := applyStringFlag(cmd, "db-dir", &cfg.DBDir); err != nil {
		return err
	}
	if cfg.JSONReport, err = cmd.Flags().GetBool("json"); err != nil {
		return err
	}
	if cfg.MarkdownReport, err = cmd.Flags().GetBool("markdown"); err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	limit, err := cmd.Flags().GetInt("limit")
	if err != nil {
		return err
	}
	if limit < 0 {
		return errors.New("limit must be non-negative")
	}
	runID, err := cmd.Flags().GetString("id")
	if err != nil {
		return err
	}
	page, err := cmd.Flags().GetString("page")
	if err != nil {
		return err
	}
	prune, err := cmd.Flags().GetDuration("prune")
	if err != nil {
		return err
	}

	logger := setupLogger(cfg.Verbose)
	ctx := cmd.Context()

	db, err := database.Open(cfg.DBDir, database.DefaultOptions())
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer closeQuietly(db, logger)

	out := cmd.OutOrStdout()
	writer := report.New(reportFormat(cfg), out, cfg.Verbose)

	if prune > 0 {
		n, err := db.DeleteRunsBefore(ctx, time.Now().Add(-prune))
		if err != nil {
			return err
		}
		logger.Info("pruned audit history", "deleted", n, "olderThan", prune)
		if !cfg.JSONReport {
			fmt.Fprintf(out, "Deleted %d run(s) older than %s.\n\n", n, prune)
		}
	}

	switch {
	case runID != "":
		run, err := db.GetAuditRun(ctx, runID)
		if err != nil {
			return err
		}
		if run == nil {
			return fmt.Errorf("no audit run with ID %q", runID)
		}
		_, err = writer.WriteAudit(run)
		return err

	case page != "":
		return writePageHistory(ctx, db, out, page, limit)

	default:
		runs, err := db.ListAuditRuns(ctx, limit)
		if err != nil {
			return err
		}
		_, err = writer.WriteHistory(runs)
		return err
	}
}

// writePageHistory prints the score trend of one page.
func writePageHistory(ctx context.Context, db *database.HistoryDB, out io.Writer, page string, limit int) error {
	scores, err := db.PageHistory(ctx, page, limit)
	if err != nil {
		return err
	}
	if len(scores) == 0 {
		fmt.Fprintf(out, "No saved results for %s.\n", page)
		return nil
	}

	fmt.Fprintf(out, "%-20s  %4s  %4s  %4s  %4s  %s\n", "STARTED", "PERF", "A11Y", "BP", "SEO", "RUN")
	for _, ps := range scores {
		started := ps.StartedAt.UTC().Format("2006-01-02 15:04:05")
		if ps.Scores == nil {
			fmt.Fprintf(out, "%-20s  %4s  %4s  %4s  %4s  %s  %s\n", started, "-", "-", "-", "-", ps.RunID, ps.Error)
			continue
		}
		s := ps.Scores
		fmt.Fprintf(out, "%-20s  %4d  %4d  %4d  %4d  %s\n",
			started, s.Performance, s.Accessibility, s.BestPractices, s.SEO, ps.RunID)
	}
	return nil
}
