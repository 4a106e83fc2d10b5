// Package model defines the data structures shared by the seokit tools.
//
// This package contains the following main types:
//   - ContentFile: an HTML file found by the scanner
//   - SitemapEntry: one <url> element of a sitemap
//   - ValidationResult: the pass/warn/fail sets for one validated file
//   - AuditResult: the category scores reported for one audited page
//
// The types live in their own package so that the scanner, sitemap,
// validator, audit, report and database packages can share them without
// import cycles. None of them is mutated after the producing tool returns it.
package model
