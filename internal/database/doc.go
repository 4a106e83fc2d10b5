// Package database provides SQLite-based storage for audit history.
//
// Each saved audit run is stored twice: once as a JSON document for exact
// replay in reports, and once as per-page score rows so a page's trend can
// be queried without decoding every run.
//
// modernc.org/sqlite is CGO-free, so the binary cross-compiles without a C
// toolchain. The database is a single file under the XDG data directory.
package database
