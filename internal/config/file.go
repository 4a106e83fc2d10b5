package config

import (
	"fmt"
	"regexp"
	"time"

	"github.com/cinematicwebworks/seokit/internal/model"
	"github.com/cinematicwebworks/seokit/internal/schema"
)

// RuleConfig is one sitemap classification rule from the config file.
type RuleConfig struct {
	// Pattern is a regular expression tested against the relative path.
	Pattern string `yaml:"pattern"`

	// Priority is the sitemap priority, 0.0 to 1.0.
	Priority float64 `yaml:"priority"`

	// ChangeFreq is the sitemap changefreq value, e.g. "weekly".
	ChangeFreq string `yaml:"changefreq"`
}

// ValidatorConfig tunes the content checks of the validate command.
type ValidatorConfig struct {
	// Exclusions replace the scanner exclusions for the validator only.
	Exclusions []string `yaml:"exclusions,omitempty"`

	// MinInternalLinks is the number of internal links a page should have.
	// Zero keeps the default.
	MinInternalLinks int `yaml:"minInternalLinks,omitempty"`

	// ContactPattern is a regular expression for the call-to-action link.
	ContactPattern string `yaml:"contactPattern,omitempty"`

	// PartnerDomains are the sister sites a page should link to.
	// nil keeps the default; an explicit empty list disables the check.
	PartnerDomains []string `yaml:"partnerDomains"`
}

// ThresholdConfig holds score thresholds from the config file.
// Zero fields keep the current value.
type ThresholdConfig struct {
	Performance   int `yaml:"performance,omitempty"`
	Accessibility int `yaml:"accessibility,omitempty"`
	BestPractices int `yaml:"bestPractices,omitempty"`
	SEO           int `yaml:"seo,omitempty"`
}

// Merge returns base with the non-zero thresholds of t applied.
func (t ThresholdConfig) Merge(base model.Thresholds) model.Thresholds {
	if t.Performance != 0 {
		base.Performance = t.Performance
	}
	if t.Accessibility != 0 {
		base.Accessibility = t.Accessibility
	}
	if t.BestPractices != 0 {
		base.BestPractices = t.BestPractices
	}
	if t.SEO != 0 {
		base.SEO = t.SEO
	}
	return base
}

// AuditConfig configures the audit command.
type AuditConfig struct {
	// Pages are site-relative paths to audit, e.g. "/blog.html".
	Pages []string `yaml:"pages,omitempty"`

	Concurrency int             `yaml:"concurrency,omitempty"`
	Timeout     time.Duration   `yaml:"timeout,omitempty"`
	Thresholds  ThresholdConfig `yaml:"thresholds,omitempty"`
}

// File represents the structure of the .seokit.yaml configuration file.
type File struct {
	BaseURL    string `yaml:"baseUrl,omitempty"`
	Root       string `yaml:"root,omitempty"`
	Output     string `yaml:"output,omitempty"`
	ReportsDir string `yaml:"reportsDir,omitempty"`

	// Exclusions replace the default scanner exclusion globs.
	Exclusions []string `yaml:"exclusions,omitempty"`

	// Rules replace the built-in sitemap classification rules.
	// A catch-all rule is always appended after them.
	Rules []RuleConfig `yaml:"rules,omitempty"`

	Validator ValidatorConfig `yaml:"validator,omitempty"`
	Audit     AuditConfig     `yaml:"audit,omitempty"`

	// Business overrides the facts used by the schema generators.
	// Empty fields keep the built-in values.
	Business schema.Business `yaml:"business,omitempty"`
}

// Validate checks the values that can be checked without the
// packages that consume them.
func (f *File) Validate() error {
	for i, r := range f.Rules {
		if r.Priority < 0 || r.Priority > 1 {
			return fmt.Errorf("%w: rules[%d]: priority %.2f out of range 0.0-1.0", ErrInvalidRule, i, r.Priority)
		}
		if _, err := model.ParseChangeFrequency(r.ChangeFreq); err != nil {
			return fmt.Errorf("%w: rules[%d]: %w", ErrInvalidRule, i, err)
		}
		if _, err := regexp.Compile(r.Pattern); err != nil {
			return fmt.Errorf("%w: rules[%d]: %w", ErrInvalidRule, i, err)
		}
	}
	if f.Validator.MinInternalLinks < 0 {
		return ErrInvalidMinInternalLinks
	}
	if f.Validator.ContactPattern != "" {
		if _, err := regexp.Compile(f.Validator.ContactPattern); err != nil {
			return fmt.Errorf("invalid contactPattern: %w", err)
		}
	}
	return nil
}
