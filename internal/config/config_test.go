package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/cinematicwebworks/seokit/internal/model"
)

// TestNewConfig verifies that NewConfig returns a Config with all expected default values.
// Changes to defaults should be intentional, so each one is pinned here.
func TestNewConfig(t *testing.T) {
	t.Parallel()

	cfg := NewConfig()

	t.Run("default BaseURL is the production origin", func(t *testing.T) {
		t.Parallel()
		if cfg.BaseURL != "https://cinematicwebworks.com" {
			t.Errorf("expected BaseURL to be 'https://cinematicwebworks.com', got '%s'", cfg.BaseURL)
		}
	})

	t.Run("default Root is the current directory", func(t *testing.T) {
		t.Parallel()
		if cfg.Root != "." {
			t.Errorf("expected Root to be '.', got '%s'", cfg.Root)
		}
	})

	t.Run("default ReportsDir is reports/lighthouse", func(t *testing.T) {
		t.Parallel()
		if cfg.ReportsDir != "reports/lighthouse" {
			t.Errorf("expected ReportsDir to be 'reports/lighthouse', got '%s'", cfg.ReportsDir)
		}
	})

	t.Run("default Timeout is 3 minutes", func(t *testing.T) {
		t.Parallel()
		if cfg.Timeout != 3*time.Minute {
			t.Errorf("expected Timeout to be 3m, got %v", cfg.Timeout)
		}
	})

	t.Run("default Concurrency is 1", func(t *testing.T) {
		t.Parallel()
		if cfg.Concurrency != 1 {
			t.Errorf("expected Concurrency to be 1, got %d", cfg.Concurrency)
		}
	})

	t.Run("default thresholds", func(t *testing.T) {
		t.Parallel()
		if cfg.Thresholds != model.DefaultThresholds() {
			t.Errorf("expected default thresholds, got %+v", cfg.Thresholds)
		}
	})

	t.Run("default DBDir is the XDG data dir", func(t *testing.T) {
		t.Parallel()
		if cfg.DBDir != XDGDataDir() {
			t.Errorf("expected DBDir %q, got %q", XDGDataDir(), cfg.DBDir)
		}
	})

	t.Run("default config is valid", func(t *testing.T) {
		t.Parallel()
		if err := cfg.Validate(); err != nil {
			t.Errorf("expected nil error, got: %v", err)
		}
	})
}

// TestConfigValidate tests the Validate method with various configurations.
// Each test case is designed to test one specific validation rule.
func TestConfigValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr error
	}{
		{name: "valid config returns nil", modify: func(*Config) {}},
		{name: "http base URL is valid", modify: func(c *Config) { c.BaseURL = "http://localhost:8080" }},
		{name: "relative base URL", modify: func(c *Config) { c.BaseURL = "cinematicwebworks.com" }, wantErr: ErrInvalidBaseURL},
		{name: "ftp base URL", modify: func(c *Config) { c.BaseURL = "ftp://example.com" }, wantErr: ErrInvalidBaseURL},
		{name: "empty base URL", modify: func(c *Config) { c.BaseURL = "" }, wantErr: ErrInvalidBaseURL},
		{name: "empty root", modify: func(c *Config) { c.Root = "" }, wantErr: ErrEmptyRoot},
		{name: "zero timeout", modify: func(c *Config) { c.Timeout = 0 }, wantErr: ErrInvalidTimeout},
		{name: "negative timeout", modify: func(c *Config) { c.Timeout = -time.Second }, wantErr: ErrInvalidTimeout},
		{name: "zero concurrency", modify: func(c *Config) { c.Concurrency = 0 }, wantErr: ErrInvalidConcurrency},
		{
			name:    "json and markdown both enabled",
			modify:  func(c *Config) { c.JSONReport, c.MarkdownReport = true, true },
			wantErr: ErrConflictingReportFormats,
		},
		{name: "json only is valid", modify: func(c *Config) { c.JSONReport = true }},
		{name: "markdown only is valid", modify: func(c *Config) { c.MarkdownReport = true }},
		{name: "threshold above 100", modify: func(c *Config) { c.Thresholds.SEO = 101 }, wantErr: ErrInvalidThreshold},
		{
			name:    "invalid file rule",
			modify:  func(c *Config) { c.File = &File{Rules: []RuleConfig{{Pattern: "x", Priority: 2, ChangeFreq: "weekly"}}} },
			wantErr: ErrInvalidRule,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := NewConfig()
			tt.modify(cfg)
			err := cfg.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("expected nil error, got: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("expected %v, got: %v", tt.wantErr, err)
			}
		})
	}
}

func TestSitemapPath(t *testing.T) {
	t.Parallel()

	t.Run("defaults to root/sitemap.xml", func(t *testing.T) {
		t.Parallel()
		cfg := NewConfig()
		cfg.Root = "public"
		if got := cfg.SitemapPath(); got != filepath.Join("public", "sitemap.xml") {
			t.Errorf("unexpected sitemap path %q", got)
		}
	})

	t.Run("output overrides", func(t *testing.T) {
		t.Parallel()
		cfg := NewConfig()
		cfg.Output = "/tmp/out.xml"
		if got := cfg.SitemapPath(); got != "/tmp/out.xml" {
			t.Errorf("unexpected sitemap path %q", got)
		}
	})
}

func TestApplyFile(t *testing.T) {
	t.Parallel()

	t.Run("nil file is a no-op", func(t *testing.T) {
		t.Parallel()
		cfg := NewConfig()
		cfg.ApplyFile(nil)
		if cfg.File != nil || cfg.BaseURL != DefaultBaseURL {
			t.Error("expected config unchanged")
		}
	})

	t.Run("set values override defaults", func(t *testing.T) {
		t.Parallel()
		cfg := NewConfig()
		cfg.ApplyFile(&File{
			BaseURL:    "https://staging.example.com",
			Root:       "site",
			Output:     "out/sitemap.xml",
			ReportsDir: "out/lh",
			Audit: AuditConfig{
				Pages:       []string{"/", "/blog.html"},
				Concurrency: 2,
				Timeout:     time.Minute,
				Thresholds:  ThresholdConfig{SEO: 95},
			},
		})

		if cfg.BaseURL != "https://staging.example.com" {
			t.Errorf("unexpected BaseURL %q", cfg.BaseURL)
		}
		if cfg.Root != "site" || cfg.Output != "out/sitemap.xml" || cfg.ReportsDir != "out/lh" {
			t.Errorf("unexpected paths: %q %q %q", cfg.Root, cfg.Output, cfg.ReportsDir)
		}
		if len(cfg.Pages) != 2 {
			t.Errorf("expected 2 pages, got %d", len(cfg.Pages))
		}
		if cfg.Concurrency != 2 || cfg.Timeout != time.Minute {
			t.Errorf("unexpected audit settings: %d %v", cfg.Concurrency, cfg.Timeout)
		}
		if cfg.Thresholds.SEO != 95 {
			t.Errorf("expected SEO threshold 95, got %d", cfg.Thresholds.SEO)
		}
		if cfg.Thresholds.Performance != 80 {
			t.Errorf("expected unset threshold to keep default 80, got %d", cfg.Thresholds.Performance)
		}
		if cfg.File == nil {
			t.Error("expected File to be recorded")
		}
	})

	t.Run("empty values keep defaults", func(t *testing.T) {
		t.Parallel()
		cfg := NewConfig()
		cfg.ApplyFile(&File{})
		if cfg.BaseURL != DefaultBaseURL || cfg.Root != DefaultRoot || cfg.Concurrency != DefaultConcurrency {
			t.Errorf("expected defaults to be kept, got %+v", cfg)
		}
	})
}

func TestFileValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		file    File
		wantErr bool
	}{
		{name: "empty file", file: File{}},
		{name: "valid rule", file: File{Rules: []RuleConfig{{Pattern: `^blog/`, Priority: 0.8, ChangeFreq: "monthly"}}}},
		{name: "negative priority", file: File{Rules: []RuleConfig{{Pattern: "x", Priority: -0.1, ChangeFreq: "weekly"}}}, wantErr: true},
		{name: "unknown changefreq", file: File{Rules: []RuleConfig{{Pattern: "x", Priority: 0.5, ChangeFreq: "fortnightly"}}}, wantErr: true},
		{name: "bad rule regex", file: File{Rules: []RuleConfig{{Pattern: "(", Priority: 0.5, ChangeFreq: "weekly"}}}, wantErr: true},
		{name: "negative min links", file: File{Validator: ValidatorConfig{MinInternalLinks: -1}}, wantErr: true},
		{name: "bad contact regex", file: File{Validator: ValidatorConfig{ContactPattern: "["}}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := tt.file.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

// TestLoadConfigFile tests the LoadConfigFile function.
func TestLoadConfigFile(t *testing.T) {
	t.Parallel()

	t.Run("returns ErrConfigNotFound for non-existent file", func(t *testing.T) {
		t.Parallel()

		cfg, err := LoadConfigFile("/nonexistent/path/.seokit.yaml")
		if !errors.Is(err, ErrConfigNotFound) {
			t.Fatalf("expected ErrConfigNotFound, got: %v", err)
		}
		if cfg != nil {
			t.Error("expected nil config when file not found")
		}
	})

	t.Run("loads valid YAML config", func(t *testing.T) {
		t.Parallel()

		configPath := filepath.Join(t.TempDir(), ".seokit.yaml")
		content := `baseUrl: https://example.com
root: public
exclusions:
  - "_*"
  - "drafts/**"
rules:
  - pattern: "^index\\.html$"
    priority: 1.0
    changefreq: daily
validator:
  minInternalLinks: 5
  partnerDomains: []
audit:
  pages:
    - /
  timeout: 90s
  thresholds:
    performance: 70
business:
  name: Example Studio
  address:
    addressCountry: BH
`
		if err := os.WriteFile(configPath, []byte(content), 0o600); err != nil {
			t.Fatalf("failed to write test config: %v", err)
		}

		cf, err := LoadConfigFile(configPath)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if cf.BaseURL != "https://example.com" || cf.Root != "public" {
			t.Errorf("unexpected base fields: %q %q", cf.BaseURL, cf.Root)
		}
		if len(cf.Exclusions) != 2 {
			t.Errorf("expected 2 exclusions, got %d", len(cf.Exclusions))
		}
		if len(cf.Rules) != 1 || cf.Rules[0].ChangeFreq != "daily" || cf.Rules[0].Priority != 1.0 {
			t.Errorf("unexpected rules: %+v", cf.Rules)
		}
		if cf.Validator.MinInternalLinks != 5 {
			t.Errorf("expected minInternalLinks 5, got %d", cf.Validator.MinInternalLinks)
		}
		if cf.Validator.PartnerDomains == nil || len(cf.Validator.PartnerDomains) != 0 {
			t.Errorf("expected explicit empty partner list, got %#v", cf.Validator.PartnerDomains)
		}
		if cf.Audit.Timeout != 90*time.Second {
			t.Errorf("expected 90s timeout, got %v", cf.Audit.Timeout)
		}
		if cf.Audit.Thresholds.Performance != 70 {
			t.Errorf("expected performance threshold 70, got %d", cf.Audit.Thresholds.Performance)
		}
		if cf.Business.Name != "Example Studio" || cf.Business.Address.AddressCountry != "BH" {
			t.Errorf("unexpected business: %+v", cf.Business)
		}
		if err := cf.Validate(); err != nil {
			t.Errorf("expected loaded file to validate, got: %v", err)
		}
	})

	t.Run("omitted partner list stays nil", func(t *testing.T) {
		t.Parallel()

		configPath := filepath.Join(t.TempDir(), ".seokit.yaml")
		if err := os.WriteFile(configPath, []byte("root: site\n"), 0o600); err != nil {
			t.Fatalf("failed to write test config: %v", err)
		}
		cf, err := LoadConfigFile(configPath)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cf.Validator.PartnerDomains != nil {
			t.Errorf("expected nil partner list, got %#v", cf.Validator.PartnerDomains)
		}
	})

	t.Run("returns error for invalid YAML", func(t *testing.T) {
		t.Parallel()

		configPath := filepath.Join(t.TempDir(), ".seokit.yaml")
		if err := os.WriteFile(configPath, []byte(`invalid: yaml: content: [}`), 0o600); err != nil {
			t.Fatalf("failed to write test config: %v", err)
		}
		if _, err := LoadConfigFile(configPath); err == nil {
			t.Error("expected error for invalid YAML")
		}
	})
}

// TestFindConfigFile tests the FindConfigFile function.
func TestFindConfigFile(t *testing.T) {
	t.Run("returns explicit path if exists", func(t *testing.T) {
		configPath := filepath.Join(t.TempDir(), "custom.yaml")
		if err := os.WriteFile(configPath, []byte("root: ."), 0o600); err != nil {
			t.Fatalf("failed to write test config: %v", err)
		}

		if result := FindConfigFile(configPath); result != configPath {
			t.Errorf("expected %q, got %q", configPath, result)
		}
	})

	t.Run("returns empty for non-existent explicit path", func(t *testing.T) {
		if result := FindConfigFile("/nonexistent/path/config.yaml"); result != "" {
			t.Errorf("expected empty string, got %q", result)
		}
	})

	t.Run("finds config in current directory", func(t *testing.T) {
		dir := t.TempDir()
		if err := os.WriteFile(filepath.Join(dir, DefaultConfigFile), []byte("root: ."), 0o600); err != nil {
			t.Fatalf("failed to write test config: %v", err)
		}
		t.Chdir(dir)

		result := FindConfigFile("")
		if !strings.HasSuffix(result, DefaultConfigFile) {
			t.Errorf("expected %s to be found, got %q", DefaultConfigFile, result)
		}
	})
}

func TestLoad(t *testing.T) {
	t.Run("explicit missing file is an error", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
		if !errors.Is(err, ErrConfigNotFound) {
			t.Fatalf("expected ErrConfigNotFound, got: %v", err)
		}
	})

	t.Run("file then environment", func(t *testing.T) {
		configPath := filepath.Join(t.TempDir(), "seokit.yaml")
		content := "baseUrl: https://from-file.example.com\nroot: from-file\n"
		if err := os.WriteFile(configPath, []byte(content), 0o600); err != nil {
			t.Fatalf("failed to write test config: %v", err)
		}
		t.Setenv(EnvRoot, "from-env")

		cfg, err := Load(configPath)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.BaseURL != "https://from-file.example.com" {
			t.Errorf("expected file base URL, got %q", cfg.BaseURL)
		}
		if cfg.Root != "from-env" {
			t.Errorf("expected environment root to win, got %q", cfg.Root)
		}
		if cfg.ConfigFilePath != configPath {
			t.Errorf("expected ConfigFilePath %q, got %q", configPath, cfg.ConfigFilePath)
		}
	})

	t.Run("dotenv file is loaded", func(t *testing.T) {
		dir := t.TempDir()
		if err := os.WriteFile(filepath.Join(dir, ".env"), []byte(EnvBaseURL+"=https://dotenv.example.com\n"), 0o600); err != nil {
			t.Fatalf("failed to write .env: %v", err)
		}
		t.Chdir(dir)
		// Register cleanup of the variable godotenv sets.
		t.Setenv(EnvBaseURL, "")
		if err := os.Unsetenv(EnvBaseURL); err != nil {
			t.Fatalf("unsetenv: %v", err)
		}

		cfg, err := Load("")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.BaseURL != "https://dotenv.example.com" {
			t.Errorf("expected .env base URL, got %q", cfg.BaseURL)
		}
	})

	t.Run("malformed dotenv file is an error", func(t *testing.T) {
		dir := t.TempDir()
		if err := os.WriteFile(filepath.Join(dir, ".env"), []byte("BAD-KEY=1\n"), 0o600); err != nil {
			t.Fatalf("failed to write .env: %v", err)
		}
		t.Chdir(dir)

		if _, err := Load(""); err == nil {
			t.Fatal("expected error for malformed .env")
		}
	})

	t.Run("missing dotenv file is not an error", func(t *testing.T) {
		t.Chdir(t.TempDir())

		if err := LoadEnv(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

// TestXDGDirs tests XDG directory functions.
func TestXDGDirs(t *testing.T) {
	t.Parallel()

	for name, fn := range map[string]func() string{
		"data":   XDGDataDir,
		"config": XDGConfigDir,
	} {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			dir := fn()
			if dir == "" {
				t.Errorf("expected non-empty XDG %s dir", name)
			}
			if filepath.Base(dir) != AppName {
				t.Errorf("expected dir to end in %s, got %q", AppName, dir)
			}
		})
	}
}
