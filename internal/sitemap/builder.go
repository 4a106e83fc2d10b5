package sitemap

import (
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/cinematicwebworks/seokit/internal/model"
)

// ErrInvalidBaseURL is returned when the base URL is not absolute.
var ErrInvalidBaseURL = errors.New("invalid base URL: must be absolute (e.g. https://example.com)")

// Builder turns scanned files into sorted sitemap entries.
type Builder struct {
	// baseURL has no trailing slash.
	baseURL    string
	classifier *Classifier
	now        func() time.Time
	stat       func(string) (os.FileInfo, error)
	logger     *slog.Logger
}

// BuilderOption configures a Builder.
type BuilderOption func(*Builder)

// WithClassifier replaces the default classifier.
func WithClassifier(c *Classifier) BuilderOption {
	return func(b *Builder) {
		if c != nil {
			b.classifier = c
		}
	}
}

// WithClock sets the clock used for the last-modified fallback.
func WithClock(now func() time.Time) BuilderOption {
	return func(b *Builder) {
		if now != nil {
			b.now = now
		}
	}
}

// WithBuilderLogger sets the logger.
func WithBuilderLogger(logger *slog.Logger) BuilderOption {
	return func(b *Builder) {
		if logger != nil {
			b.logger = logger
		}
	}
}

// withStat overrides os.Stat in tests.
func withStat(stat func(string) (os.FileInfo, error)) BuilderOption {
	return func(b *Builder) {
		b.stat = stat
	}
}

// NewBuilder creates a Builder for the site at baseURL.
func NewBuilder(baseURL string, opts ...BuilderOption) (*Builder, error) {
	normalized, err := NormalizeBaseURL(baseURL)
	if err != nil {
		return nil, err
	}

	b := &Builder{
		baseURL:    normalized,
		classifier: NewDefaultClassifier(),
		now:        time.Now,
		stat:       os.Stat,
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b, nil
}

// NormalizeBaseURL checks that raw is an absolute http(s) URL and strips
// trailing slashes.
func NormalizeBaseURL(raw string) (string, error) {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidBaseURL, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return "", fmt.Errorf("%w: %q", ErrInvalidBaseURL, raw)
	}
	return strings.TrimRight(u.String(), "/"), nil
}

// BaseURL returns the normalized base URL.
func (b *Builder) BaseURL() string {
	return b.baseURL
}

// URLFor maps a relative path to its absolute URL. The root index maps to
// the base URL with a single trailing slash. Each path segment is
// percent-encoded, so spaces and reserved characters stay in the path.
func (b *Builder) URLFor(relPath string) string {
	p := strings.TrimPrefix(strings.ReplaceAll(relPath, `\`, "/"), "/")
	if (model.ContentFile{RelativePath: p}).IsRootIndex() {
		return b.baseURL + "/"
	}
	segments := strings.Split(p, "/")
	for i, seg := range segments {
		segments[i] = url.PathEscape(seg)
	}
	return b.baseURL + "/" + strings.Join(segments, "/")
}

// lastModified returns the file's modification date, or today when the
// file cannot be stat'd.
func (b *Builder) lastModified(path string) time.Time {
	info, err := b.stat(path)
	if err != nil {
		b.logger.Debug("stat failed, using current date", "path", path, "error", err)
		return model.TruncateToDate(b.now())
	}
	return model.TruncateToDate(info.ModTime())
}

// Entry builds the sitemap entry for one file.
func (b *Builder) Entry(f model.ContentFile) model.SitemapEntry {
	props := b.classifier.Classify(f.RelativePath)
	return model.SitemapEntry{
		File:            f.RelativePath,
		URL:             b.URLFor(f.RelativePath),
		LastModified:    b.lastModified(f.AbsolutePath),
		ChangeFrequency: props.ChangeFrequency,
		Priority:        props.Priority,
	}
}

// Build maps files to entries and sorts them.
func (b *Builder) Build(files []model.ContentFile) []model.SitemapEntry {
	entries := make([]model.SitemapEntry, 0, len(files))
	for _, f := range files {
		entries = append(entries, b.Entry(f))
	}
	SortEntries(entries)
	return entries
}

// SortEntries orders entries root index first, then by descending priority,
// then by ascending URL.
func SortEntries(entries []model.SitemapEntry) {
	sort.SliceStable(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]
		aRoot, bRoot := isRootEntry(a), isRootEntry(b)
		if aRoot != bRoot {
			return aRoot
		}
		if a.Priority != b.Priority {
			return a.Priority > b.Priority
		}
		return a.URL < b.URL
	})
}

// isRootEntry reports whether e was built from the root index page.
func isRootEntry(e model.SitemapEntry) bool {
	return model.ContentFile{RelativePath: e.File}.IsRootIndex()
}

// PriorityGroup lists the files that share a priority.
type PriorityGroup struct {
	Priority float64
	Files    []string
}

// GroupByPriority groups entries by priority, highest first. Files keep
// their order within a group.
func GroupByPriority(entries []model.SitemapEntry) []PriorityGroup {
	index := make(map[float64]int)
	groups := make([]PriorityGroup, 0)
	for _, e := range entries {
		i, ok := index[e.Priority]
		if !ok {
			i = len(groups)
			index[e.Priority] = i
			groups = append(groups, PriorityGroup{Priority: e.Priority})
		}
		groups[i].Files = append(groups[i].Files, e.File)
	}
	sort.SliceStable(groups, func(i, j int) bool {
		return groups[i].Priority > groups[j].Priority
	})
	return groups
}
