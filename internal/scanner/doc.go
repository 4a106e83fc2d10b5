// Package scanner finds the HTML content files of a static site.
//
// Scan walks a root directory depth-first and returns every ".html" file
// whose path, relative to the root, matches none of the exclusion rules.
// Exclusion rules are doublestar glob patterns (e.g. "node_modules*",
// "**/*404.html"). They are tested against every directory and file before
// it is visited, so an excluded directory is never descended into.
//
// The scan is all-or-nothing: any error below the root aborts the whole
// scan with a *ScanError naming the offending path.
package scanner
