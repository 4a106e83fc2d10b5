package config

import "errors"

// Configuration validation errors.
// These errors are returned by Config.Validate() and File.Validate() so
// callers can use errors.Is() while still getting a readable message.
var (
	// ErrInvalidBaseURL is returned when the base URL is not an absolute http(s) URL.
	ErrInvalidBaseURL = errors.New("invalid base URL: must be an absolute http(s) URL")

	// ErrEmptyRoot is returned when no site root directory is configured.
	ErrEmptyRoot = errors.New("no site root specified: use --root")

	// ErrInvalidTimeout is returned when the audit timeout is not positive.
	ErrInvalidTimeout = errors.New("invalid timeout: must be positive")

	// ErrInvalidConcurrency is returned when the audit concurrency is not positive.
	// A concurrency of zero would never start an audit.
	ErrInvalidConcurrency = errors.New("invalid concurrency: must be positive")

	// ErrConflictingReportFormats is returned when both --json and --markdown
	// are specified. Only one output format can be used at a time.
	ErrConflictingReportFormats = errors.New("conflicting report formats: --json and --markdown cannot be used together")

	// ErrInvalidThreshold is returned when a score threshold is outside 0-100.
	ErrInvalidThreshold = errors.New("invalid threshold: must be between 0 and 100")

	// ErrInvalidRule is returned when a classification rule in the config
	// file has an out-of-range priority or an unknown change frequency.
	ErrInvalidRule = errors.New("invalid classification rule")

	// ErrInvalidMinInternalLinks is returned when minInternalLinks is negative.
	ErrInvalidMinInternalLinks = errors.New("invalid minInternalLinks: must be non-negative")
)
