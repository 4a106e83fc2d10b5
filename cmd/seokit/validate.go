package main

import (
	"fmt"

	"github.com/cinematicwebworks/seokit/internal/config"
	"github.com/cinematicwebworks/seokit/internal/report"
	"github.com/cinematicwebworks/seokit/internal/scanner"
	"github.com/cinematicwebworks/seokit/internal/validator"
	"github.com/spf13/cobra"
)

// NewValidateCmd creates the validate command.
func NewValidateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check every HTML page for required SEO markup",
		Long: `Validate scans the site root for .html pages and checks each one for:
- Title and meta description (present, within length limits)
- Exactly one <h1>
- Canonical link, Open Graph tags, schema.org JSON-LD
- Viewport, UTF-8 charset and lang attribute
- Internal links, image alt text, the WhatsApp call-to-action and
  cross-links to sister sites

Missing required markup is an issue; everything else is a warning.
The command exits with status 1 when any page has an issue, so it can
gate a CI pipeline.

Examples:
  # Validate the current directory
  seokit validate

  # Show passed checks and perfect pages too
  seokit validate -v

  # Write a Markdown report for a pull request comment
  seokit validate --markdown -o seo-report.md`,
		Args: cobra.NoArgs,
		RunE: runValidateCmd,
	}

	cmd.Flags().StringP("root", "r", config.DefaultRoot, "Site root directory")
	cmd.Flags().BoolP("json", "j", false,
		"Output JSON report (mutually exclusive with --markdown)")
	cmd.Flags().BoolP("markdown", "m", false,
		"Output Markdown report (mutually exclusive with --json)")
	cmd.Flags().StringP("output", "o", "",
		"Also write the report to this file path (creates directories if needed)")

	return cmd
}

// runValidateCmd executes the validate command.
func runValidateCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
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

	logger := setupLogger(cfg.Verbose)

	exclusions, err := validatorExclusions(cfg)
	if err != nil {
		return err
	}
	files, err := scanner.New(scanner.WithExclusions(exclusions), scanner.WithLogger(logger)).Scan(cfg.Root)
	if err != nil {
		return err
	}

	opts, err := validatorOptions(cfg, logger)
	if err != nil {
		return err
	}
	summary := validator.New(opts...).ValidateAll(files)

	writer := report.New(reportFormat(cfg), cmd.OutOrStdout(), cfg.Verbose)
	reportFile, err := cmd.Flags().GetString("output")
	if err != nil {
		return err
	}
	if reportFile != "" {
		f, err := createOutputFile(reportFile)
		if err != nil {
			return err
		}
		defer closeQuietly(f, logger)
		writer = report.NewMultiWriter(
			report.NewSimpleWriter(cmd.OutOrStdout(), report.WithVerbose(cfg.Verbose)),
			report.New(reportFormat(cfg), f, cfg.Verbose),
		)
	}

	if _, err := writer.WriteValidation(summary); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}

	if !summary.Passed() {
		return &ExitError{Code: summary.ExitCode()}
	}
	return nil
}
