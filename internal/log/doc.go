// Package log provides structured logging for seokit with automatic
// redaction of secrets, built on top of the standard slog package.
//
// The RedactingHandler masks:
//   - attributes whose key looks like a credential (token, password, key)
//   - string values that look like a credential (bearer tokens, JWTs)
//   - credential query parameters inside URL values, such as the PageSpeed
//     Insights "key" parameter
//
// Even in verbose mode, secrets are masked so logs from CI runs can be
// shared as-is.
//
// # Usage
//
//	logger := log.NewLogger(os.Stderr, verbose)
//	logger.Debug("auditing page", "url", "https://example.com/?key=abc")
//	// url=https://example.com/?key=%2A%2A%2AREDACTED%2A%2A%2A
package log
