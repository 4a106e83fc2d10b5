package validator

import (
	"fmt"
	"log/slog"
	"os"
	"regexp"
	"strings"

	"github.com/cinematicwebworks/seokit/internal/model"
	"golang.org/x/text/unicode/norm"
)

const (
	// DefaultMinInternalLinks is the number of internal links a page should have.
	DefaultMinInternalLinks = 3

	// DefaultContactPattern matches the WhatsApp call-to-action link.
	DefaultContactPattern = `(?i)wa\.me/97339007750`
)

// DefaultPartnerDomains lists the sister sites a page should link to.
var DefaultPartnerDomains = []string{
	"bahrainnights.com",
	"filmproductionbahrain.com",
	"eventsbahrain.com",
}

var (
	anchorPattern = regexp.MustCompile(`(?i)<a\s+href=["']([^"']+)["']`)
	imgPattern    = regexp.MustCompile(`(?i)<img[^>]+>`)
	altPattern    = regexp.MustCompile(`(?i)alt=["']([^"']*)["']`)
)

// externalPrefixes are href prefixes that do not count as internal links.
var externalPrefixes = []string{"http://", "https://", "mailto:", "tel:", "#"}

// Validator checks page content against the requirement registry and
// the content checks.
type Validator struct {
	requirements     []Requirement
	minInternalLinks int
	contactPattern   *regexp.Regexp
	partnerDomains   []string
	logger           *slog.Logger
}

// Option configures a Validator.
type Option func(*Validator)

// WithMinInternalLinks sets the internal link threshold.
func WithMinInternalLinks(n int) Option {
	return func(v *Validator) {
		v.minInternalLinks = n
	}
}

// WithContactPattern replaces the contact link pattern.
func WithContactPattern(re *regexp.Regexp) Option {
	return func(v *Validator) {
		if re != nil {
			v.contactPattern = re
		}
	}
}

// WithPartnerDomains replaces the partner domains. An empty list disables
// the partner link check.
func WithPartnerDomains(domains []string) Option {
	return func(v *Validator) {
		v.partnerDomains = append([]string(nil), domains...)
	}
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(v *Validator) {
		if logger != nil {
			v.logger = logger
		}
	}
}

// New creates a Validator with the built-in registry.
func New(opts ...Option) *Validator {
	v := &Validator{
		requirements:     Registry(),
		minInternalLinks: DefaultMinInternalLinks,
		contactPattern:   regexp.MustCompile(DefaultContactPattern),
		partnerDomains:   append([]string(nil), DefaultPartnerDomains...),
		logger:           slog.Default(),
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Validate checks content and returns the result for file.
func (v *Validator) Validate(file, content string) *model.ValidationResult {
	result := model.NewValidationResult(file)

	for _, req := range v.requirements {
		v.checkRequirement(result, req, content)
	}

	v.checkInternalLinks(result, content)
	v.checkImages(result, content)
	v.checkContact(result, content)
	v.checkPartners(result, content)
	checkStructuredData(result, content)
	checkLanguage(result, content)

	v.logger.Debug("validated page",
		"file", file,
		"issues", len(result.Issues),
		"warnings", len(result.Warnings))
	return result
}

// ValidateFile reads a content file and validates it. A read failure is
// recorded as a single issue on the result.
func (v *Validator) ValidateFile(file model.ContentFile) *model.ValidationResult {
	data, err := os.ReadFile(file.AbsolutePath)
	if err != nil {
		result := model.NewValidationResult(file.RelativePath)
		result.ReadError = err.Error()
		result.AddIssue(fmt.Sprintf("Could not read file: %v", err))
		v.logger.Warn("failed to read page", "file", file.RelativePath, "error", err)
		return result
	}
	return v.Validate(file.RelativePath, string(data))
}

// ValidateAll validates every file in order and tallies the results.
func (v *Validator) ValidateAll(files []model.ContentFile) *model.ValidationSummary {
	results := make([]*model.ValidationResult, 0, len(files))
	for _, f := range files {
		results = append(results, v.ValidateFile(f))
	}
	return model.NewValidationSummary(results)
}

func (v *Validator) checkRequirement(result *model.ValidationResult, req Requirement, content string) {
	match := req.Pattern.FindStringSubmatch(content)
	if match == nil {
		if req.Required {
			result.AddIssue("Missing " + req.Description)
		}
		return
	}

	// Multi-occurrence requirements are counted, not measured.
	value := ""
	if len(match) > 1 && req.MaxOccurrences == 0 {
		value = match[1]
	}
	n := Length(value)
	switch {
	case req.MaxLength > 0 && n > req.MaxLength:
		result.AddWarning(fmt.Sprintf("%s too long (%d/%d chars)", req.Description, n, req.MaxLength))
	case req.MinLength > 0 && n < req.MinLength:
		result.AddWarning(fmt.Sprintf("%s too short (%d/%d chars)", req.Description, n, req.MinLength))
	}

	if req.MaxOccurrences > 0 {
		count := len(req.Pattern.FindAllStringIndex(content, -1))
		if count > req.MaxOccurrences {
			result.AddIssue(fmt.Sprintf("Multiple %s found (%d) - should have only %d",
				req.Description, count, req.MaxOccurrences))
			return
		}
	}
	result.AddPassed(req.Description)
}

func (v *Validator) checkInternalLinks(result *model.ValidationResult, content string) {
	n := CountInternalLinks(content)
	if n < v.minInternalLinks {
		result.AddWarning(fmt.Sprintf("Only %d internal links (recommend %d+)", n, v.minInternalLinks))
		return
	}
	result.AddPassed(fmt.Sprintf("%d internal links", n))
}

func (v *Validator) checkImages(result *model.ValidationResult, content string) {
	images := imgPattern.FindAllString(content, -1)
	missing := 0
	for _, img := range images {
		alt := altPattern.FindStringSubmatch(img)
		if alt == nil || strings.TrimSpace(alt[1]) == "" {
			missing++
		}
	}
	switch {
	case missing > 0:
		result.AddWarning(fmt.Sprintf("%d image(s) missing alt text", missing))
	case len(images) > 0:
		result.AddPassed(fmt.Sprintf("All %d images have alt text", len(images)))
	}
}

func (v *Validator) checkContact(result *model.ValidationResult, content string) {
	if !v.contactPattern.MatchString(content) {
		result.AddWarning("Missing WhatsApp CTA link")
		return
	}
	result.AddPassed("WhatsApp CTA present")
}

func (v *Validator) checkPartners(result *model.ValidationResult, content string) {
	if len(v.partnerDomains) == 0 {
		return
	}
	for _, domain := range v.partnerDomains {
		if strings.Contains(content, domain) {
			result.AddPassed("Sister site cross-links present")
			return
		}
	}
	result.AddWarning("No cross-links to sister sites")
}

// CountInternalLinks counts anchors whose href is site-relative.
func CountInternalLinks(content string) int {
	n := 0
	for _, m := range anchorPattern.FindAllStringSubmatch(content, -1) {
		if isInternalHref(m[1]) {
			n++
		}
	}
	return n
}

func isInternalHref(href string) bool {
	lower := strings.ToLower(href)
	for _, p := range externalPrefixes {
		if strings.HasPrefix(lower, p) {
			return false
		}
	}
	return true
}

// Length returns the number of characters in s after NFC normalisation.
func Length(s string) int {
	return len([]rune(norm.NFC.String(s)))
}
