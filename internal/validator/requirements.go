package validator

import "regexp"

// Requirement describes one element a page is expected to contain.
type Requirement struct {
	// Key identifies the requirement (e.g. "metaDescription").
	Key string

	// Required makes a missing element an issue. Optional elements that
	// are missing are not reported.
	Required bool

	// Pattern finds the element. The first capture group, if any, is the
	// value whose length is checked.
	Pattern *regexp.Regexp

	// MinLength and MaxLength bound the captured value in characters.
	// Zero means unbounded.
	MinLength int
	MaxLength int

	// MaxOccurrences caps how many times the element may appear.
	// Zero means uncapped.
	MaxOccurrences int

	// Description names the element in report messages.
	Description string
}

// Requirement keys.
const (
	KeyTitle           = "title"
	KeyMetaDescription = "metaDescription"
	KeyH1              = "h1"
	KeyCanonical       = "canonical"
	KeyOGTitle         = "ogTitle"
	KeyOGDescription   = "ogDescription"
	KeyOGImage         = "ogImage"
	KeySchemaMarkup    = "schemaMarkup"
	KeyViewport        = "viewport"
	KeyCharset         = "charset"
	KeyLangAttribute   = "langAttribute"
)

var registry = []Requirement{
	{
		Key:         KeyTitle,
		Required:    true,
		Pattern:     regexp.MustCompile(`(?i)<title>([^<]+)</title>`),
		MinLength:   20,
		MaxLength:   60,
		Description: "Page title",
	},
	{
		Key:         KeyMetaDescription,
		Required:    true,
		Pattern:     regexp.MustCompile(`(?i)<meta\s+name=["']description["']\s+content=["']([^"']+)["']`),
		MinLength:   50,
		MaxLength:   160,
		Description: "Meta description",
	},
	{
		Key:      KeyH1,
		Required: true,
		// inner markup such as <em> is allowed
		Pattern:        regexp.MustCompile(`(?is)<h1[^>]*>(.+?)</h1>`),
		MaxOccurrences: 1,
		Description:    "H1 heading",
	},
	{
		Key:         KeyCanonical,
		Required:    true,
		Pattern:     regexp.MustCompile(`(?i)<link\s+rel=["']canonical["']\s+href=["']([^"']+)["']`),
		Description: "Canonical URL",
	},
	{
		Key:         KeyOGTitle,
		Required:    true,
		Pattern:     regexp.MustCompile(`(?i)<meta\s+property=["']og:title["']\s+content=["']([^"']+)["']`),
		Description: "Open Graph title",
	},
	{
		Key:         KeyOGDescription,
		Required:    true,
		Pattern:     regexp.MustCompile(`(?i)<meta\s+property=["']og:description["']\s+content=["']([^"']+)["']`),
		Description: "Open Graph description",
	},
	{
		Key:         KeyOGImage,
		Required:    true,
		Pattern:     regexp.MustCompile(`(?i)<meta\s+property=["']og:image["']\s+content=["']([^"']+)["']`),
		Description: "Open Graph image",
	},
	{
		Key:         KeySchemaMarkup,
		Required:    true,
		Pattern:     regexp.MustCompile(`(?i)<script\s+type=["']application/ld\+json["']>`),
		Description: "Schema.org JSON-LD markup",
	},
	{
		Key:         KeyViewport,
		Required:    true,
		Pattern:     regexp.MustCompile(`(?i)<meta\s+name=["']viewport["']`),
		Description: "Viewport meta tag",
	},
	{
		Key:         KeyCharset,
		Required:    true,
		Pattern:     regexp.MustCompile(`(?i)<meta\s+charset=["']UTF-8["']`),
		Description: "UTF-8 charset",
	},
	{
		Key:         KeyLangAttribute,
		Required:    true,
		Pattern:     regexp.MustCompile(`(?i)<html[^>]*\s+lang=["']([^"']+)["']`),
		Description: "HTML lang attribute",
	},
}

// Registry returns a copy of the built-in requirements in evaluation order.
func Registry() []Requirement {
	out := make([]Requirement, len(registry))
	copy(out, registry)
	return out
}

// Lookup returns the built-in requirement with key.
func Lookup(key string) (Requirement, bool) {
	for _, r := range registry {
		if r.Key == key {
			return r, true
		}
	}
	return Requirement{}, false
}
