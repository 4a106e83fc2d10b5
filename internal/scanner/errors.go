package scanner

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidRoot is matched by errors.Is for every *InvalidRootError.
	ErrInvalidRoot = errors.New("invalid scan root")

	// ErrScan is matched by errors.Is for every *ScanError.
	ErrScan = errors.New("scan failed")

	// ErrInvalidPattern is returned when an exclusion glob cannot be parsed.
	ErrInvalidPattern = errors.New("invalid exclusion pattern")
)

// InvalidRootError is returned when the scan root does not exist or is not
// a directory.
type InvalidRootError struct {
	Root string
	Err  error
}

// Error implements error.
func (e *InvalidRootError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("invalid scan root %s: %v", e.Root, e.Err)
	}
	return fmt.Sprintf("invalid scan root %s: not a directory", e.Root)
}

// Unwrap returns the underlying filesystem error, if any.
func (e *InvalidRootError) Unwrap() error { return e.Err }

// Is reports whether target is ErrInvalidRoot.
func (e *InvalidRootError) Is(target error) bool { return target == ErrInvalidRoot }

// ScanError is returned when a directory or file below the root cannot be
// read. Path is the offending absolute path.
type ScanError struct {
	Path string
	Err  error
}

// Error implements error.
func (e *ScanError) Error() string {
	return fmt.Sprintf("scan failed at %s: %v", e.Path, e.Err)
}

// Unwrap returns the underlying filesystem error.
func (e *ScanError) Unwrap() error { return e.Err }

// Is reports whether target is ErrScan.
func (e *ScanError) Is(target error) bool { return target == ErrScan }
