package audit

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os/exec"
	"strings"
	"time"
)

// Runner invokes the audit tool for one URL. On success the tool must have
// written outputBase+".report.json" and outputBase+".report.html".
type Runner interface {
	Run(ctx context.Context, url, outputBase string) error
}

// DefaultTimeout bounds a single Lighthouse run.
const DefaultTimeout = 3 * time.Minute

// LighthouseCategories are the categories passed to --only-categories.
const LighthouseCategories = "performance,accessibility,best-practices,seo"

// LighthouseRunner runs Lighthouse through npx.
type LighthouseRunner struct {
	command string
	timeout time.Duration
	logger  *slog.Logger
}

// LighthouseOption configures a LighthouseRunner.
type LighthouseOption func(*LighthouseRunner)

// WithCommand replaces the launcher binary (default "npx").
func WithCommand(command string) LighthouseOption {
	return func(r *LighthouseRunner) {
		if command != "" {
			r.command = command
		}
	}
}

// WithTimeout sets the per-URL timeout. Zero disables it.
func WithTimeout(d time.Duration) LighthouseOption {
	return func(r *LighthouseRunner) {
		r.timeout = d
	}
}

// WithRunnerLogger sets the logger.
func WithRunnerLogger(logger *slog.Logger) LighthouseOption {
	return func(r *LighthouseRunner) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// NewLighthouseRunner creates a runner that launches `npx lighthouse`.
func NewLighthouseRunner(opts ...LighthouseOption) *LighthouseRunner {
	r := &LighthouseRunner{
		command: "npx",
		timeout: DefaultTimeout,
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// LighthouseArgs returns the launcher arguments for auditing url.
// The process is started without a shell, so the Chrome flags are passed
// as one argument without quotes.
func LighthouseArgs(url, outputBase string) []string {
	return []string{
		"lighthouse",
		url,
		"--output=json",
		"--output=html",
		"--output-path=" + outputBase,
		"--chrome-flags=--headless --no-sandbox",
		"--quiet",
		"--only-categories=" + LighthouseCategories,
	}
}

// Run audits url and writes the reports next to outputBase.
func (r *LighthouseRunner) Run(ctx context.Context, url, outputBase string) error {
	if r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}

	args := LighthouseArgs(url, outputBase)
	cmd := exec.CommandContext(ctx, r.command, args...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	r.logger.Debug("running lighthouse", "command", r.command, "args", strings.Join(args, " "))

	start := time.Now()
	err := cmd.Run()
	r.logger.Debug("lighthouse finished", "url", url, "elapsed", time.Since(start), "error", err)
	if err == nil {
		return nil
	}

	toolErr := &ToolError{URL: url, Stderr: stderr.String(), Err: err}
	var exitErr *exec.ExitError
	switch {
	case errors.As(err, &exitErr):
		toolErr.ExitCode = exitErr.ExitCode()
	case errors.Is(err, exec.ErrNotFound):
		toolErr.Err = fmt.Errorf("%w: %w", ErrToolUnavailable, err)
	}
	if ctxErr := ctx.Err(); ctxErr != nil {
		toolErr.Err = fmt.Errorf("%w: %w", ctxErr, err)
	}
	return toolErr
}

// Available reports whether `npx lighthouse --version` succeeds.
func (r *LighthouseRunner) Available(ctx context.Context) error {
	cmd := exec.CommandContext(ctx, r.command, "lighthouse", "--version")
	out, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("%w: %s lighthouse --version: %w", ErrToolUnavailable, r.command, err)
	}
	r.logger.Debug("lighthouse available", "version", strings.TrimSpace(string(out)))
	return nil
}
