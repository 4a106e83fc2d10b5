package sitemap

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ErrWrite is matched by errors.Is for every *WriteError.
var ErrWrite = errors.New("failed to write sitemap")

// WriteError is returned when the sitemap cannot be written.
type WriteError struct {
	Path string
	Err  error
}

// Error implements error.
func (e *WriteError) Error() string {
	return fmt.Sprintf("failed to write sitemap to %s: %v", e.Path, e.Err)
}

// Unwrap returns the underlying error.
func (e *WriteError) Unwrap() error { return e.Err }

// Is reports whether target is ErrWrite.
func (e *WriteError) Is(target error) bool { return target == ErrWrite }

// WriteFile writes an already serialized document to path in one write.
// The parent directory must exist.
func WriteFile(path string, data []byte) error {
	if err := os.WriteFile(filepath.Clean(path), data, 0o644); err != nil { //nolint:gosec // sitemap is public
		return &WriteError{Path: path, Err: err}
	}
	return nil
}
