package docsite

import (
	"context"
	"os"
	"path/filepath"
	"slices"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eringen/docsite/views"
)

func TestWatcherInvalidatesOnChange(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "intro.md"), []byte("# Intro\n"), 0o644))

	loader := &countingLoader{docs: []views.Doc{{Slug: "intro"}}}
	cache := NewDocCache(loader.load, time.Hour)

	w, err := NewWatcher(dir, cache)
	require.NoError(t, err)
	w.debounce = 20 * time.Millisecond
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(func() {
		cancel()
		w.Close()
	})
	require.NoError(t, w.Start(ctx))

	_, err = cache.ListDocs()
	require.NoError(t, err)
	require.Equal(t, 1, loader.count())

	require.NoError(t, os.WriteFile(filepath.Join(dir, "intro.md"), []byte("# Intro, again\n"), 0o644))
	assert.Eventually(t, func() bool {
		_, _ = cache.ListDocs()
		return loader.count() >= 2
	}, 3*time.Second, 25*time.Millisecond)

	sub := filepath.Join(dir, "guides")
	require.NoError(t, os.Mkdir(sub, 0o755))
	assert.Eventually(t, func() bool {
		return slices.Contains(w.watcher.WatchList(), sub)
	}, 3*time.Second, 25*time.Millisecond)

	_, err = cache.ListDocs()
	require.NoError(t, err)
	before := loader.count()
	require.NoError(t, os.WriteFile(filepath.Join(sub, "deploy.md"), []byte("# Deploy\n"), 0o644))
	assert.Eventually(t, func() bool {
		_, _ = cache.ListDocs()
		return loader.count() > before
	}, 3*time.Second, 25*time.Millisecond)
}

func TestWatcherMissingDir(t *testing.T) {
	cache := NewDocCache(func() ([]views.Doc, error) { return nil, nil }, time.Hour)
	w, err := NewWatcher(filepath.Join(t.TempDir(), "nope"), cache)
	require.NoError(t, err)
	defer w.Close()

	assert.Error(t, w.Start(context.Background()))
}

func TestAppWatch(t *testing.T) {
	dir := t.TempDir()
	docs := filepath.Join(dir, "docs")
	require.NoError(t, os.Mkdir(docs, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(docs, "intro.md"), []byte("# Intro\n"), 0o644))

	cfg := testSiteConfig()
	cfg.DocsDir = docs
	app := New(cfg)
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(func() {
		cancel()
		app.Close()
	})
	require.NoError(t, app.Watch(ctx, docs))

	list, err := app.Cache.ListDocs()
	require.NoError(t, err)
	require.Len(t, list, 1)

	require.NoError(t, os.WriteFile(filepath.Join(docs, "install.md"), []byte("# Install\n"), 0o644))
	assert.Eventually(t, func() bool {
		list, err := app.Cache.ListDocs()
		return err == nil && len(list) == 2
	}, 3*time.Second, 25*time.Millisecond)
}

func TestWatcherCloseConcurrently(t *testing.T) {
	cache := NewDocCache(func() ([]views.Doc, error) { return nil, nil }, time.Hour)
	w, err := NewWatcher(t.TempDir(), cache)
	require.NoError(t, err)
	require.NoError(t, w.Start(context.Background()))

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, w.Close())
		}()
	}
	wg.Wait()
	assert.NoError(t, w.Close())
}
