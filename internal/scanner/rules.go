package scanner

import (
	"fmt"

	"github.com/bmatcuk/doublestar/v4"
)

// DefaultExclusions are the glob patterns that keep build output, tooling
// directories, hidden entries and non-content pages out of a scan.
var DefaultExclusions = []string{
	"_*",            // _next, _error, ...
	"node_modules*", // dependencies
	"scripts*",      // tooling
	"templates*",    // page templates
	".*",            // hidden files and directories
	"**/*404.html",  // error pages
	"**/*test.html", // scratch pages
}

// ExclusionRule is a single glob pattern tested against a relative path.
type ExclusionRule struct {
	Pattern string
}

// Matches reports whether relPath (slash separated) matches the rule.
func (r ExclusionRule) Matches(relPath string) bool {
	ok, err := doublestar.Match(r.Pattern, relPath)
	return err == nil && ok
}

// ExclusionRules is a set of rules. A path is excluded if any rule matches.
type ExclusionRules []ExclusionRule

// NewExclusionRules validates patterns and builds a rule set.
func NewExclusionRules(patterns ...string) (ExclusionRules, error) {
	rules := make(ExclusionRules, 0, len(patterns))
	for _, p := range patterns {
		if !doublestar.ValidatePattern(p) {
			return nil, fmt.Errorf("%w: %q", ErrInvalidPattern, p)
		}
		rules = append(rules, ExclusionRule{Pattern: p})
	}
	return rules, nil
}

// MustExclusionRules is like NewExclusionRules but panics on an invalid
// pattern. It is meant for package-level defaults.
func MustExclusionRules(patterns ...string) ExclusionRules {
	rules, err := NewExclusionRules(patterns...)
	if err != nil {
		panic(err)
	}
	return rules
}

// Excludes reports whether any rule matches relPath.
func (rs ExclusionRules) Excludes(relPath string) bool {
	for _, r := range rs {
		if r.Matches(relPath) {
			return true
		}
	}
	return false
}

// Patterns returns the glob pattern of every rule.
func (rs ExclusionRules) Patterns() []string {
	out := make([]string, len(rs))
	for i, r := range rs {
		out[i] = r.Pattern
	}
	return out
}
