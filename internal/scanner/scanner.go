package scanner

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/cinematicwebworks/seokit/internal/model"
)

// DefaultExtension is the file extension collected by a scan.
const DefaultExtension = ".html"

// Scanner enumerates content files under a root directory.
type Scanner struct {
	// exclusions are tested against every relative path before it is visited.
	exclusions ExclusionRules

	logger *slog.Logger
}

// Option configures a Scanner.
type Option func(*Scanner)

// WithExclusions replaces the default exclusion rules.
func WithExclusions(rules ExclusionRules) Option {
	return func(s *Scanner) {
		s.exclusions = rules
	}
}

// WithLogger sets the logger used for debug output.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Scanner) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// New creates a Scanner with DefaultExclusions unless overridden.
func New(opts ...Option) *Scanner {
	s := &Scanner{
		exclusions: MustExclusionRules(DefaultExclusions...),
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Scan returns every content file under root that no exclusion rule
// matches, in directory traversal order.
func (s *Scanner) Scan(root string) ([]model.ContentFile, error) {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, &InvalidRootError{Root: root, Err: err}
	}

	info, err := os.Stat(absRoot)
	if err != nil {
		return nil, &InvalidRootError{Root: root, Err: err}
	}
	if !info.IsDir() {
		return nil, &InvalidRootError{Root: root}
	}

	files := make([]model.ContentFile, 0)
	if err := s.walk(absRoot, absRoot, &files); err != nil {
		return nil, err
	}

	s.logger.Debug("scan complete", "root", absRoot, "files", len(files))
	return files, nil
}

// walk descends into dir, appending content files to files.
func (s *Scanner) walk(root, dir string, files *[]model.ContentFile) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return &ScanError{Path: dir, Err: err}
	}

	for _, entry := range entries {
		fullPath := filepath.Join(dir, entry.Name())
		relPath, err := filepath.Rel(root, fullPath)
		if err != nil {
			return &ScanError{Path: fullPath, Err: err}
		}
		relPath = filepath.ToSlash(relPath)

		if s.exclusions.Excludes(relPath) {
			s.logger.Debug("excluded", "path", relPath)
			continue
		}

		// Stat follows symlinks, so linked directories are scanned too.
		info, err := os.Stat(fullPath)
		if err != nil {
			return &ScanError{Path: fullPath, Err: err}
		}

		if info.IsDir() {
			if err := s.walk(root, fullPath, files); err != nil {
				return err
			}
			continue
		}

		if info.Mode().IsRegular() && strings.HasSuffix(entry.Name(), DefaultExtension) {
			*files = append(*files, model.ContentFile{
				RelativePath: relPath,
				AbsolutePath: fullPath,
			})
		}
	}

	return nil
}

// Scan is a shorthand for New(WithExclusions(rules)).Scan(root).
func Scan(root string, rules ExclusionRules) ([]model.ContentFile, error) {
	return New(WithExclusions(rules)).Scan(root)
}
