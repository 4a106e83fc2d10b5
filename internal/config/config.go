package config

import (
	"net/url"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
	"github.com/cinematicwebworks/seokit/internal/model"
)

// AppName is the application name used for XDG directories.
const AppName = "seokit"

// Default configuration values.
const (
	// DefaultBaseURL is the production origin of the site.
	// Sitemap URLs and audit targets are built on top of it.
	DefaultBaseURL = "https://cinematicwebworks.com"

	// DefaultRoot is the site root directory scanned for .html files.
	DefaultRoot = "."

	// DefaultSitemapFile is the sitemap file name, written under Root
	// unless Output says otherwise.
	DefaultSitemapFile = "sitemap.xml"

	// DefaultReportsDir is where the audit tool writes its per-page reports
	// and where REPORT.md is placed.
	DefaultReportsDir = "reports/lighthouse"

	// DefaultAuditTimeout is the time limit for one audit tool invocation.
	// A full Lighthouse run with a cold Chrome takes 20-60 seconds.
	DefaultAuditTimeout = 3 * time.Minute

	// DefaultConcurrency is the number of pages audited at once.
	// Audits are sequential by default because parallel Chrome instances
	// skew the performance scores.
	DefaultConcurrency = 1

	// DefaultHistoryLimit is the number of runs shown by the history command.
	DefaultHistoryLimit = 20
)

// Config holds the settings for one seokit invocation.
// It is built from NewConfig defaults, then the config file, then the
// environment, then command-line flags, in increasing precedence.
type Config struct {
	// BaseURL is the absolute origin of the site (scheme and host).
	BaseURL string

	// Root is the site root directory.
	Root string

	// Output is the sitemap output path. Empty means Root/sitemap.xml.
	Output string

	// ReportsDir is the directory for audit reports.
	ReportsDir string

	// Pages are the site-relative paths audited by default.
	// Empty means the built-in priority page list.
	Pages []string

	// Thresholds are the minimum passing audit scores.
	Thresholds model.Thresholds

	// Concurrency is the number of pages audited at once.
	Concurrency int

	// Timeout is the time limit for one audit tool invocation.
	Timeout time.Duration

	// Verbose enables detailed log output using slog.LevelDebug.
	// When false, only warnings and errors are logged.
	Verbose bool

	// ConfigFilePath is the path to the configuration file.
	// If empty, FindConfigFile searches the default locations.
	ConfigFilePath string

	// File holds the loaded configuration file, or nil when none was found.
	File *File

	// JSONReport enables JSON report output.
	// Mutually exclusive with MarkdownReport.
	JSONReport bool

	// MarkdownReport enables Markdown report output.
	// Mutually exclusive with JSONReport.
	MarkdownReport bool

	// MetricsFile is the Prometheus textfile written after an audit.
	// Empty disables the export.
	MetricsFile string

	// DBDir is the directory holding the audit history database.
	// Defaults to the XDG data directory (~/.local/share/seokit on Linux).
	DBDir string

	// SaveToDB stores the audit run in the history database.
	SaveToDB bool
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		BaseURL:     DefaultBaseURL,
		Root:        DefaultRoot,
		ReportsDir:  DefaultReportsDir,
		Thresholds:  model.DefaultThresholds(),
		Concurrency: DefaultConcurrency,
		Timeout:     DefaultAuditTimeout,
		DBDir:       XDGDataDir(),
	}
}

// XDGDataDir returns the XDG data directory for seokit.
// On Linux: ~/.local/share/seokit
// On macOS: ~/Library/Application Support/seokit
// On Windows: %LOCALAPPDATA%\seokit
func XDGDataDir() string {
	return filepath.Join(xdg.DataHome, AppName)
}

// XDGConfigDir returns the XDG config directory for seokit.
// On Linux: ~/.config/seokit
func XDGConfigDir() string {
	return filepath.Join(xdg.ConfigHome, AppName)
}

// SitemapPath returns where the sitemap is written.
func (c *Config) SitemapPath() string {
	if c.Output != "" {
		return c.Output
	}
	return filepath.Join(c.Root, DefaultSitemapFile)
}

// ApplyFile copies every value set in f onto c.
// Flags applied afterwards still win.
func (c *Config) ApplyFile(f *File) {
	if f == nil {
		return
	}
	c.File = f
	if f.BaseURL != "" {
		c.BaseURL = f.BaseURL
	}
	if f.Root != "" {
		c.Root = f.Root
	}
	if f.Output != "" {
		c.Output = f.Output
	}
	if f.ReportsDir != "" {
		c.ReportsDir = f.ReportsDir
	}
	if len(f.Audit.Pages) > 0 {
		c.Pages = append([]string(nil), f.Audit.Pages...)
	}
	if f.Audit.Concurrency > 0 {
		c.Concurrency = f.Audit.Concurrency
	}
	if f.Audit.Timeout > 0 {
		c.Timeout = f.Audit.Timeout
	}
	c.Thresholds = f.Audit.Thresholds.Merge(c.Thresholds)
}

// Validate checks if the configuration is valid.
// It returns the first problem found, or nil if the configuration is usable.
func (c *Config) Validate() error {
	if !isAbsoluteHTTPURL(c.BaseURL) {
		return ErrInvalidBaseURL
	}

	if c.Root == "" {
		return ErrEmptyRoot
	}

	if c.Timeout <= 0 {
		return ErrInvalidTimeout
	}

	if c.Concurrency <= 0 {
		return ErrInvalidConcurrency
	}

	// JSON and Markdown are mutually exclusive
	if c.JSONReport && c.MarkdownReport {
		return ErrConflictingReportFormats
	}

	for _, cat := range model.Categories {
		if t := c.Thresholds.For(cat); t < 0 || t > 100 {
			return ErrInvalidThreshold
		}
	}

	if c.File != nil {
		return c.File.Validate()
	}
	return nil
}

func isAbsoluteHTTPURL(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
