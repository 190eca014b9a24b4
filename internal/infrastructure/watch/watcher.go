package watch

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// ChangeEvent represents a change to a watched document.
type ChangeEvent struct {
	Path       string
	ChangeType string // "create", "write", "remove", "rename"
}

// FSWatcher watches task log documents for changes using fsnotify.
type FSWatcher struct {
	watcher  *fsnotify.Watcher
	debounce time.Duration
	filter   *PatternFilter
	onChange func(ChangeEvent)
	logger   *slog.Logger
}

// NewFSWatcher creates a new document watcher. A zero debounce uses 500ms.
func NewFSWatcher(debounce time.Duration, onChange func(ChangeEvent), logger *slog.Logger) (*FSWatcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create fsnotify watcher: %w", err)
	}
	if debounce == 0 {
		debounce = 500 * time.Millisecond
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &FSWatcher{
		watcher:  w,
		debounce: debounce,
		filter:   NewPatternFilter(TaskLogPatterns, nil),
		onChange: onChange,
		logger:   logger,
	}, nil
}

// WatchFile restricts the watcher to a single document. The parent
// directory is watched so that editors replacing the file are noticed.
func (w *FSWatcher) WatchFile(path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("resolve %s: %w", path, err)
	}
	if err := w.watcher.Add(filepath.Dir(abs)); err != nil {
		return fmt.Errorf("watch %s: %w", filepath.Dir(abs), err)
	}
	w.filter = NewPatternFilter([]string{filepath.Base(abs)}, nil)
	return nil
}

// WatchDir watches every task log document in dir.
func (w *FSWatcher) WatchDir(dir string) error {
	if err := w.watcher.Add(dir); err != nil {
		return fmt.Errorf("watch %s: %w", dir, err)
	}
	return nil
}

// Run starts the event loop. It blocks until the context is cancelled.
func (w *FSWatcher) Run(ctx context.Context) error {
	defer w.watcher.Close()

	debouncer := NewDebouncer(w.debounce, func(ev ChangeEvent) {
		if w.onChange != nil {
			w.onChange(ev)
		}
	})
	defer debouncer.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			changeType := opToChangeType(event.Op)
			if changeType == "" || !w.filter.Matches(event.Name) {
				continue
			}
			w.logger.Debug("task log changed", "path", event.Name, "change", changeType)
			debouncer.Trigger(ChangeEvent{Path: event.Name, ChangeType: changeType})

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			return fmt.Errorf("watcher error: %w", err)
		}
	}
}

func opToChangeType(op fsnotify.Op) string {
	switch {
	case op.Has(fsnotify.Create):
		return "create"
	case op.Has(fsnotify.Write):
		return "write"
	case op.Has(fsnotify.Remove):
		return "remove"
	case op.Has(fsnotify.Rename):
		return "rename"
	default:
		return ""
	}
}
