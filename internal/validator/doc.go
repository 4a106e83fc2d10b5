// Package validator checks HTML pages for the SEO elements the site needs.
//
// Every page is evaluated against a fixed registry of requirements (title,
// meta description, h1, canonical link, Open Graph tags, JSON-LD, viewport,
// charset, lang) and a set of content checks (internal links, image alt
// text, contact link, partner-site links).
//
// Matching is done with regular expressions over the raw text, not a DOM.
// Overlapping or malformed markup can therefore yield false positives or
// negatives. A markup parser could replace the expressions without changing
// the requirement keys or the pass/warn/fail semantics. Only the JSON-LD
// syntax check tokenizes the markup, since it has to isolate script bodies.
//
// Missing required elements are issues and make a run fail. Length, link
// and image problems are warnings and never affect the exit status.
package validator
