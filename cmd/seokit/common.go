package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"regexp"
	"syscall"

	"github.com/cinematicwebworks/seokit/internal/config"
	"github.com/cinematicwebworks/seokit/internal/log"
	"github.com/cinematicwebworks/seokit/internal/model"
	"github.com/cinematicwebworks/seokit/internal/report"
	"github.com/cinematicwebworks/seokit/internal/scanner"
	"github.com/cinematicwebworks/seokit/internal/schema"
	"github.com/cinematicwebworks/seokit/internal/sitemap"
	"github.com/cinematicwebworks/seokit/internal/validator"
	"github.com/spf13/cobra"
)

// getVerboseFlag retrieves the verbose flag from the command or its parent.
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		verbose, err = cmd.Root().PersistentFlags().GetBool("verbose")
		if err != nil {
			return false
		}
	}
	return verbose
}

// getConfigFlag retrieves the config file path from the command or its parent.
func getConfigFlag(cmd *cobra.Command) string {
	path, err := cmd.Flags().GetString("config")
	if err != nil {
		path, err = cmd.Root().PersistentFlags().GetString("config")
		if err != nil {
			return ""
		}
	}
	return path
}

// loadConfig builds the configuration from the config file, .env and the
// flags shared by every command. Command-specific flags are applied by
// the caller before Validate.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(getConfigFlag(cmd))
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	cfg.Verbose = getVerboseFlag(cmd)

	if err := applyStringFlag(cmd, "root", &cfg.Root); err != nil {
		return nil, err
	}
	if err := applyStringFlag(cmd, "base-url", &cfg.BaseURL); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyStringFlag overwrites dst with the flag value when the flag exists
// on cmd and was set by the user.
func applyStringFlag(cmd *cobra.Command, name string, dst *string) error {
	f := cmd.Flags().Lookup(name)
	if f == nil || !f.Changed {
		return nil
	}
	v, err := cmd.Flags().GetString(name)
	if err != nil {
		return err
	}
	*dst = v
	return nil
}

// setupLogger creates the redacting logger and installs it as the default.
func setupLogger(verbose bool) *slog.Logger {
	logger := log.NewLogger(os.Stderr, verbose)
	slog.SetDefault(logger)
	return logger
}

// signalContext returns a context cancelled on SIGINT or SIGTERM.
func signalContext(logger *slog.Logger) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(context.Background())

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		select {
		case <-sigCh:
			logger.Info("received shutdown signal, cancelling...")
			cancel()
		case <-ctx.Done():
		}
		signal.Stop(sigCh)
	}()

	return ctx, cancel
}

// reportFormat maps the --json/--markdown flags to a report format.
func reportFormat(cfg *config.Config) report.Format {
	switch {
	case cfg.JSONReport:
		return report.FormatJSON
	case cfg.MarkdownReport:
		return report.FormatMarkdown
	default:
		return report.FormatText
	}
}

// scannerExclusions returns the exclusion rules for the sitemap scan.
func scannerExclusions(cfg *config.Config) (scanner.ExclusionRules, error) {
	patterns := scanner.DefaultExclusions
	if cfg.File != nil && len(cfg.File.Exclusions) > 0 {
		patterns = cfg.File.Exclusions
	}
	return scanner.NewExclusionRules(patterns...)
}

// validatorExclusions returns the exclusion rules for the validator scan.
// They fall back to the scanner exclusions.
func validatorExclusions(cfg *config.Config) (scanner.ExclusionRules, error) {
	if cfg.File != nil && len(cfg.File.Validator.Exclusions) > 0 {
		return scanner.NewExclusionRules(cfg.File.Validator.Exclusions...)
	}
	return scannerExclusions(cfg)
}

// classifier builds the sitemap classifier from the config file rules, or
// the built-in rules when none are configured.
func classifier(cfg *config.Config) (*sitemap.Classifier, error) {
	if cfg.File == nil || len(cfg.File.Rules) == 0 {
		return sitemap.NewDefaultClassifier(), nil
	}
	rules := make([]sitemap.ClassificationRule, 0, len(cfg.File.Rules))
	for _, rc := range cfg.File.Rules {
		rule, err := sitemap.NewRule(rc.Pattern, rc.Priority, model.ChangeFrequency(rc.ChangeFreq))
		if err != nil {
			return nil, err
		}
		rules = append(rules, rule)
	}
	return sitemap.NewClassifier(rules...), nil
}

// business returns the schema facts with config file overrides applied.
func business(cfg *config.Config) schema.Business {
	b := schema.DefaultBusiness()
	if cfg.File != nil {
		b = b.Merge(cfg.File.Business)
	}
	return b
}

// validatorOptions translates the config file into validator options.
// Partner domains come from the business sister sites unless listed
// explicitly.
func validatorOptions(cfg *config.Config, logger *slog.Logger) ([]validator.Option, error) {
	opts := []validator.Option{validator.WithLogger(logger)}
	if cfg.File == nil {
		return opts, nil
	}

	vc := cfg.File.Validator
	if vc.MinInternalLinks > 0 {
		opts = append(opts, validator.WithMinInternalLinks(vc.MinInternalLinks))
	}
	if vc.ContactPattern != "" {
		re, err := regexp.Compile(vc.ContactPattern)
		if err != nil {
			return nil, fmt.Errorf("invalid contactPattern: %w", err)
		}
		opts = append(opts, validator.WithContactPattern(re))
	}
	switch {
	case vc.PartnerDomains != nil:
		opts = append(opts, validator.WithPartnerDomains(vc.PartnerDomains))
	case len(cfg.File.Business.SisterSites) > 0:
		opts = append(opts, validator.WithPartnerDomains(business(cfg).SisterDomains()))
	}
	return opts, nil
}

// createOutputFile creates path and its parent directories for a report.
func createOutputFile(path string) (*os.File, error) {
	if err := ensureParentDir(path); err != nil {
		return nil, err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644) //nolint:gosec // Reports are meant to be shared
	if err != nil {
		return nil, fmt.Errorf("failed to create output file: %w", err)
	}
	return f, nil
}

// ensureParentDir creates the directory that will hold path.
func ensureParentDir(path string) error {
	dir := filepath.Dir(path)
	if dir == "" || dir == "." {
		return nil
	}
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	return nil
}

// closeQuietly closes c and logs a failure.
func closeQuietly(c io.Closer, logger *slog.Logger) {
	if err := c.Close(); err != nil {
		logger.Warn("close failed", "error", err)
	}
}
