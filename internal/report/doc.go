// Package report renders validation results, audit runs and audit history.
//
// This package contains writers for different output formats:
//   - SimpleWriter: human-readable console output with styled markers
//   - JSONWriter: structured JSON output for tool integration
//   - MarkdownWriter: Markdown documents, including the audit REPORT.md
//
// Writers implement the Writer interface, allowing them to be used
// interchangeably and composed for multi-format output. Prometheus textfile
// export of audit runs lives in metrics.go.
package report
