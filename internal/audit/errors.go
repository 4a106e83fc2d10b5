package audit

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrToolUnavailable is returned when the audit tool cannot be started.
	ErrToolUnavailable = errors.New("audit tool unavailable")

	// ErrToolFailed is returned when the audit tool exits unsuccessfully.
	ErrToolFailed = errors.New("audit tool failed")

	// ErrParseReport is returned when the tool's JSON output cannot be read.
	ErrParseReport = errors.New("failed to parse audit report")
)

// maxStderr caps how much tool output is kept in a ToolError message.
const maxStderr = 200

// ToolError describes a failed invocation of the audit tool for one URL.
type ToolError struct {
	URL      string
	ExitCode int
	Stderr   string
	Err      error
}

// Error implements the error interface.
func (e *ToolError) Error() string {
	msg := fmt.Sprintf("%s for %s", ErrToolFailed, e.URL)
	if e.ExitCode != 0 {
		msg += fmt.Sprintf(" (exit %d)", e.ExitCode)
	}
	if s := truncate(strings.TrimSpace(e.Stderr), maxStderr); s != "" {
		msg += ": " + s
	} else if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Unwrap returns the underlying error.
func (e *ToolError) Unwrap() error {
	return e.Err
}

// Is reports whether target is ErrToolFailed.
func (e *ToolError) Is(target error) bool {
	return target == ErrToolFailed
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n]) + "..."
}
