// Package sitemap builds sitemap-protocol XML documents from scanned files.
//
// Each file is classified by an ordered list of regular-expression rules:
// the first rule whose pattern matches the file's relative path decides its
// priority and change frequency. The list always ends with a catch-all rule,
// so classification never falls through. Rule order is behaviour: a narrow
// rule placed after a broad one never fires.
//
// Entries are ordered root index first, then by descending priority, then by
// ascending URL, and serialized in memory before being written with a
// single write.
package sitemap
