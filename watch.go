package timepick

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Editors often write a file in several steps; changes closer together than this
// are reloaded once.
var reloadDebounce = 250 * time.Millisecond

// ReloadFunc receives the constraints read after each change to a watched file,
// or the error that prevented reading them.
type ReloadFunc func(*Constraints, error)

// ConstraintsWatcher reloads a YAML constraint file whenever it changes on disk.
//
// onReload runs on the watcher's own goroutine, one call at a time, and never after
// Close has returned. Since a Picker is not safe for concurrent use, hand the new
// constraints to the goroutine that owns the picker before calling SetConstraints.
type ConstraintsWatcher struct {
	path     string
	watcher  *fsnotify.Watcher
	onReload ReloadFunc

	ctx    context.Context
	cancel context.CancelFunc
	done   chan struct{}

	closeOnce sync.Once
	closeErr  error
}

// WatchConstraints starts watching path. The file does not need to exist yet, but
// its directory does. Watching stops when ctx is cancelled or Close is called.
func WatchConstraints(ctx context.Context, path string, onReload ReloadFunc) (*ConstraintsWatcher, error) {
	if onReload == nil {
		return nil, fmt.Errorf("%w: nil reload callback", ErrInvalidArgs)
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve constraints path: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}

	// the directory is watched so that files replaced by rename are still seen
	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", filepath.Dir(abs), err)
	}

	ctx, cancel := context.WithCancel(ctx)
	w := &ConstraintsWatcher{
		path:     abs,
		watcher:  watcher,
		onReload: onReload,
		ctx:      ctx,
		cancel:   cancel,
		done:     make(chan struct{}),
	}

	slog.Info("Watching constraints file", "path", abs)
	go w.loop()

	return w, nil
}

func (w *ConstraintsWatcher) loop() {
	defer close(w.done)

	// nil until a change is pending
	var debounce <-chan time.Time

	for {
		select {
		case <-w.ctx.Done():
			return
		case <-debounce:
			debounce = nil
			w.reload()
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}

			slog.Debug("Constraints file changed", "path", w.path, "op", event.Op.String())
			debounce = time.After(reloadDebounce)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			slog.Error("Constraints watcher error", "path", w.path, "error", err)
		}
	}
}

func (w *ConstraintsWatcher) reload() {
	if w.ctx.Err() != nil {
		return
	}

	constraints, err := LoadConstraints(w.path)
	if err != nil {
		slog.Warn("Failed to reload constraints", "path", w.path, "error", err)
	} else {
		slog.Info("Reloaded constraints", "path", w.path)
	}
	w.onReload(constraints, err)
}

// Close stops the watcher and waits for its goroutine to exit, including a reload
// callback that is still running.
func (w *ConstraintsWatcher) Close() error {
	w.closeOnce.Do(func() {
		w.cancel()
		<-w.done
		w.closeErr = w.watcher.Close()
	})
	return w.closeErr
}
