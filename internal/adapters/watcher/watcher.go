package watcher

import (
	"context"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.trai.ch/smolbuf/internal/core/domain"
	"go.trai.ch/smolbuf/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Watcher = (*Watcher)(nil)

// Watcher implements ports.Watcher using fsnotify.
type Watcher struct {
	logger ports.Logger
	window time.Duration
}

// NewWatcher creates a watcher that coalesces events within
// DefaultDebounceWindow.
func NewWatcher(log ports.Logger) *Watcher {
	return &Watcher{logger: log, window: DefaultDebounceWindow}
}

// WithWindow sets the debounce window.
func (w *Watcher) WithWindow(window time.Duration) *Watcher {
	w.window = window
	return w
}

// Watch calls onChange after path is written, created or renamed over, until
// ctx is done. The parent directory is watched rather than the file itself so
// that editors replacing the file are noticed. Rewrites that leave the
// content unchanged are ignored.
func (w *Watcher) Watch(ctx context.Context, path string, onChange func()) error {
	target, err := filepath.Abs(path)
	if err != nil {
		return zerr.With(zerr.Wrap(domain.ErrWatchFailed, err.Error()), "path", path)
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return zerr.Wrap(err, domain.ErrWatchFailed.Error())
	}
	defer func() { _ = fsw.Close() }()

	if err := fsw.Add(filepath.Dir(target)); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrWatchFailed.Error()), "path", path)
	}

	content := newContentTracker(target)
	d := NewDebouncer(w.window, func([]string) {
		if content.changed() {
			onChange()
		}
	})
	defer d.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-fsw.Events:
			if !ok {
				return nil
			}
			if isChange(event, target) {
				d.Add(event.Name)
			}
		case err, ok := <-fsw.Errors:
			if !ok {
				return nil
			}
			if w.logger != nil {
				w.logger.Warn("watcher: file system error: " + err.Error())
			}
		}
	}
}

// isChange reports whether event touches target in a way that changes its
// contents.
func isChange(event fsnotify.Event, target string) bool {
	if filepath.Clean(event.Name) != target {
		return false
	}
	return event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename)
}
