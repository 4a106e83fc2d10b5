package sitemap

import (
	"context"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/cinematicwebworks/seokit/internal/scanner"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatcher(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "node_modules"), 0o750))

	var rebuilds atomic.Int32
	w, err := NewWatcher(root, scanner.MustExclusionRules(scanner.DefaultExclusions...),
		func(context.Context) error {
			rebuilds.Add(1)
			return nil
		},
		WithDebounce(20*time.Millisecond),
	)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()
	t.Cleanup(func() {
		cancel()
		<-done
	})

	// Give the watcher time to register its directories.
	time.Sleep(100 * time.Millisecond)

	require.NoError(t, os.WriteFile(filepath.Join(root, "node_modules", "x.html"), []byte("x"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(root, "notes.txt"), []byte("x"), 0o600))
	time.Sleep(100 * time.Millisecond)
	assert.Equal(t, int32(0), rebuilds.Load(), "non-content changes must not rebuild")

	require.NoError(t, os.WriteFile(filepath.Join(root, "about.html"), []byte("<html></html>"), 0o600))
	require.Eventually(t, func() bool { return rebuilds.Load() >= 1 }, 5*time.Second, 10*time.Millisecond)
}

func TestNewWatcherErrors(t *testing.T) {
	t.Parallel()

	noop := func(context.Context) error { return nil }

	_, err := NewWatcher(filepath.Join(t.TempDir(), "missing"), nil, noop)
	assert.ErrorIs(t, err, scanner.ErrInvalidRoot)

	_, err = NewWatcher(t.TempDir(), nil, nil)
	assert.Error(t, err)
}
