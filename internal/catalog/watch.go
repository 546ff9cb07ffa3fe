package catalog

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/hasbyte1/go-utilkit/fn"
)

// DefaultQuiet is the settle time [Watch] waits after the last filesystem
// event before reloading.
const DefaultQuiet = 100 * time.Millisecond

// Watcher reloads a catalog file whenever it changes on disk.
type Watcher struct {
	path     string
	quiet    time.Duration
	onChange func(*Catalog, error)
	fsw      *fsnotify.Watcher
}

// NewWatcher starts watching path. The parent directory is watched so that
// editors replacing the file by rename are noticed. onChange receives the
// reloaded catalog, or the load error, once events have been quiet for
// quiet.
func NewWatcher(path string, quiet time.Duration, onChange func(*Catalog, error)) (*Watcher, error) {
	if _, err := FormatOf(path); err != nil {
		return nil, err
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("catalog: watch: %w", err)
	}
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("catalog: watch: %w", err)
	}
	if err := fsw.Add(filepath.Dir(abs)); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("catalog: watch %s: %w", filepath.Dir(abs), err)
	}
	return &Watcher{path: abs, quiet: quiet, onChange: onChange, fsw: fsw}, nil
}

// Run delivers reloads until ctx is done or the watcher fails. It closes
// the underlying watcher before returning and returns nil on cancellation.
// A reload already in progress finishes before Run returns; none start
// afterwards.
func (w *Watcher) Run(ctx context.Context) error {
	defer w.fsw.Close()

	var (
		mu       sync.Mutex
		stopped  bool
		inflight sync.WaitGroup
	)
	reload := fn.Debounce(func(path string) {
		mu.Lock()
		if stopped {
			mu.Unlock()
			return
		}
		inflight.Add(1)
		mu.Unlock()
		defer inflight.Done()
		w.onChange(Load(path))
	}, w.quiet, fn.DefaultDebounceOptions())
	defer func() {
		reload.Cancel()
		mu.Lock()
		stopped = true
		mu.Unlock()
		inflight.Wait()
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-w.fsw.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename) {
				reload.Call(w.path)
			}

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return nil
			}
			return fmt.Errorf("catalog: watch: %w", err)
		}
	}
}

// Watch is [NewWatcher] followed by [Watcher.Run] with [DefaultQuiet].
func Watch(ctx context.Context, path string, onChange func(*Catalog, error)) error {
	w, err := NewWatcher(path, DefaultQuiet, onChange)
	if err != nil {
		return err
	}
	return w.Run(ctx)
}
