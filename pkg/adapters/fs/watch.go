package fs

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/aretw0/lifecycle"
	"github.com/bmatcuk/doublestar/v4"
	"github.com/fsnotify/fsnotify"

	"github.com/aretw0/gitrs/pkg/core"
)

// Watch emits events for control-directory entries matching pattern until
// ctx is done. An empty pattern subscribes to everything. The returned
// channel is closed after shutdown once in-flight events have drained.
func (s *Store) Watch(ctx context.Context, pattern string) (<-chan core.Event, error) {
	if pattern == "" {
		pattern = "**"
	}
	if !doublestar.ValidatePattern(pattern) {
		return nil, fmt.Errorf("invalid watch pattern %q", pattern)
	}
	if _, err := os.Stat(s.handle.ControlRoot()); err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", core.ErrNoRepository, s.handle.ControlRoot())
		}
		return nil, fmt.Errorf("failed to stat control directory: %w", err)
	}

	events := make(chan core.Event, s.config.EventBuffer)
	w := newWatchWorker(s, pattern, events)

	if err := w.Start(ctx); err != nil {
		close(events)
		return nil, err
	}

	// Close the channel once the context ends. The worker gets a bounded
	// window to flush in-flight events first.
	lifecycle.Go(ctx, func(ctx context.Context) error {
		<-ctx.Done()

		stopCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := w.Stop(stopCtx); err != nil && s.config.Logger != nil {
			s.config.Logger.Debug("watcher stop", "error", err)
		}
		close(events)
		return nil
	}, lifecycle.WithErrorHandler(func(err error) {
		if s.config.ErrorHandler != nil {
			s.config.ErrorHandler(err)
		} else if s.config.Logger != nil {
			s.config.Logger.Error("watcher shutdown", "error", err)
		}
	}))

	return events, nil
}

// recursiveAdd registers the control root and every directory below it with
// the fsnotify watcher.
func (s *Store) recursiveAdd(watcher *fsnotify.Watcher) error {
	return filepath.WalkDir(s.handle.ControlRoot(), func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if err := watcher.Add(path); err != nil {
				return fmt.Errorf("failed to watch %s: %w", path, err)
			}
		}
		return nil
	})
}

// relPath converts an absolute event path into the slash-separated
// control-root-relative form. Paths outside the control root report ok
// false.
func (s *Store) relPath(name string) (string, bool) {
	rel, err := filepath.Rel(s.handle.ControlRoot(), name)
	if err != nil {
		return "", false
	}
	if rel == "." || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", false
	}
	return filepath.ToSlash(rel), true
}

// shouldIgnore filters out in-flight temp files and entries outside the
// subscription pattern. rel is control-root-relative, slash-separated.
func (s *Store) shouldIgnore(rel, pattern string) bool {
	base := rel
	if i := strings.LastIndex(rel, "/"); i >= 0 {
		base = rel[i+1:]
	}
	if strings.HasPrefix(base, TempFilePrefix) {
		return true
	}

	ok, err := doublestar.Match(pattern, rel)
	return err != nil || !ok
}

// mapEventType folds fsnotify's op bitmask into the event taxonomy. Chmod
// is dropped: permission flips do not change stored content.
func mapEventType(event fsnotify.Event) core.EventType {
	switch {
	case event.Has(fsnotify.Create):
		return core.EventCreate
	case event.Has(fsnotify.Write):
		return core.EventModify
	case event.Has(fsnotify.Remove), event.Has(fsnotify.Rename):
		return core.EventDelete
	default:
		return ""
	}
}

var _ core.Watchable = (*Store)(nil)
