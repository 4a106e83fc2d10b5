package sitemap

import (
	"errors"
	"fmt"
	"regexp"

	"github.com/cinematicwebworks/seokit/internal/model"
)

// ErrInvalidRule is returned when a classification rule cannot be built.
var ErrInvalidRule = errors.New("invalid classification rule")

// Properties are the crawl hints assigned to a page.
type Properties struct {
	Priority        float64
	ChangeFrequency model.ChangeFrequency
}

// DefaultProperties apply to paths that no explicit rule matches.
var DefaultProperties = Properties{Priority: 0.5, ChangeFrequency: model.ChangeMonthly}

// catchAllPattern matches every path.
const catchAllPattern = `.*`

// ClassificationRule maps paths matching Pattern to Properties.
type ClassificationRule struct {
	Pattern *regexp.Regexp
	Properties
}

// NewRule compiles pattern and validates the properties.
func NewRule(pattern string, priority float64, freq model.ChangeFrequency) (ClassificationRule, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return ClassificationRule{}, fmt.Errorf("%w: pattern %q: %v", ErrInvalidRule, pattern, err)
	}
	if priority < 0 || priority > 1 {
		return ClassificationRule{}, fmt.Errorf("%w: priority %v out of range [0,1]", ErrInvalidRule, priority)
	}
	if !freq.IsValid() {
		return ClassificationRule{}, fmt.Errorf("%w: change frequency %q", ErrInvalidRule, freq)
	}
	return ClassificationRule{
		Pattern:    re,
		Properties: Properties{Priority: priority, ChangeFrequency: freq},
	}, nil
}

// MustRule is like NewRule but panics on error.
func MustRule(pattern string, priority float64, freq model.ChangeFrequency) ClassificationRule {
	r, err := NewRule(pattern, priority, freq)
	if err != nil {
		panic(err)
	}
	return r
}

// DefaultRules returns the built-in rule list in evaluation order.
func DefaultRules() []ClassificationRule {
	return []ClassificationRule{
		MustRule(`^index\.html$`, 1.0, model.ChangeWeekly),
		MustRule(`^blog\.html$`, 0.9, model.ChangeWeekly),
		MustRule(`^blog/`, 0.8, model.ChangeMonthly),
		MustRule(`web-development-bahrain`, 0.9, model.ChangeMonthly),
		MustRule(`web-design-bahrain`, 0.9, model.ChangeMonthly),
		MustRule(`cinematic-websites`, 0.9, model.ChangeMonthly),
		MustRule(`ecommerce`, 0.8, model.ChangeMonthly),
		MustRule(`restaurant|real-estate|corporate`, 0.8, model.ChangeMonthly),
		MustRule(`services/`, 0.8, model.ChangeMonthly),
		MustRule(`industries`, 0.8, model.ChangeMonthly),
		MustRule(`web-development-`, 0.7, model.ChangeMonthly), // location pages
		MustRule(`\.html$`, 0.7, model.ChangeMonthly),
	}
}

// Classifier evaluates an ordered rule list terminated by a catch-all.
type Classifier struct {
	rules []ClassificationRule
}

// NewClassifier creates a classifier from rules, in order. A catch-all rule
// with DefaultProperties is appended.
func NewClassifier(rules ...ClassificationRule) *Classifier {
	all := make([]ClassificationRule, 0, len(rules)+1)
	all = append(all, rules...)
	all = append(all, ClassificationRule{
		Pattern:    regexp.MustCompile(catchAllPattern),
		Properties: DefaultProperties,
	})
	return &Classifier{rules: all}
}

// NewDefaultClassifier returns a classifier over DefaultRules.
func NewDefaultClassifier() *Classifier {
	return NewClassifier(DefaultRules()...)
}

// Match returns the first rule matching relPath and its index. The
// catch-all guarantees a match.
func (c *Classifier) Match(relPath string) (ClassificationRule, int) {
	for i, r := range c.rules {
		if r.Pattern.MatchString(relPath) {
			return r, i
		}
	}
	// unreachable: the last rule matches everything
	last := len(c.rules) - 1
	return c.rules[last], last
}

// Classify returns the properties of the first rule matching relPath.
func (c *Classifier) Classify(relPath string) Properties {
	r, _ := c.Match(relPath)
	return r.Properties
}
