package docsite

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/eringen/docsite/log"
)

// Watcher invalidates a DocCache whenever files below a directory change.
type Watcher struct {
	dir      string
	cache    *DocCache
	watcher  *fsnotify.Watcher
	debounce time.Duration

	mu        sync.Mutex
	timer     *time.Timer
	done      chan struct{}
	closeOnce sync.Once
	closeErr  error
}

// NewWatcher creates a Watcher for dir. Call Start to begin watching.
func NewWatcher(dir string, cache *DocCache) (*Watcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("docsite: create file watcher: %w", err)
	}
	absDir, err := filepath.Abs(dir)
	if err != nil {
		watcher.Close()
		return nil, fmt.Errorf("docsite: resolve docs dir: %w", err)
	}
	return &Watcher{
		dir:      absDir,
		cache:    cache,
		watcher:  watcher,
		debounce: 200 * time.Millisecond,
		done:     make(chan struct{}),
	}, nil
}

// Start adds dir and its subdirectories to the watch list and processes
// events until ctx is cancelled or Close is called.
func (w *Watcher) Start(ctx context.Context) error {
	err := filepath.WalkDir(w.dir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return w.watcher.Add(p)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("docsite: watch %s: %w", w.dir, err)
	}

	log.S().Infow("watching docs", "dir", w.dir)
	go w.loop(ctx)
	return nil
}

func (w *Watcher) loop(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case <-w.done:
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			w.handle(event)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			log.S().Warnw("docs watcher error", "error", err)
		}
	}
}

func (w *Watcher) handle(event fsnotify.Event) {
	if event.Has(fsnotify.Create) {
		if fi, err := os.Stat(event.Name); err == nil && fi.IsDir() {
			if err := w.watcher.Add(event.Name); err != nil {
				log.S().Warnw("cannot watch new directory", "dir", event.Name, "error", err)
			}
		}
	}
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) &&
		!event.Has(fsnotify.Remove) && !event.Has(fsnotify.Rename) {
		return
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(w.debounce, func() {
		log.S().Debugw("docs changed, invalidating cache", "path", event.Name)
		w.cache.Invalidate()
	})
}

// Close stops watching. It is safe to call more than once.
func (w *Watcher) Close() error {
	w.closeOnce.Do(func() {
		w.mu.Lock()
		if w.timer != nil {
			w.timer.Stop()
		}
		w.mu.Unlock()

		close(w.done)
		w.closeErr = w.watcher.Close()
	})
	return w.closeErr
}
