package fs

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/aretw0/lifecycle"
	"github.com/bmatcuk/doublestar/v4"
	"github.com/fsnotify/fsnotify"

	"github.com/aretw0/mdnotes/pkg/core"
)

// debounceWindow coalesces the event bursts editors produce on save.
const debounceWindow = 100 * time.Millisecond

// Watch observes the notes directory and emits an event for every change
// to a file whose base name matches the glob pattern. The channel is
// closed when ctx is done. The event loop runs under lifecycle.Go so the
// goroutine is tracked and panic-safe.
func (s *Store) Watch(ctx context.Context, pattern string) (<-chan core.Event, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}
	if err := watcher.Add(s.path); err != nil {
		_ = watcher.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", s.path, err)
	}

	events := make(chan core.Event, 16)
	s.setWatcherActive(true)

	lifecycle.Go(ctx, func(ctx context.Context) error {
		defer s.setWatcherActive(false)
		defer watcher.Close()
		defer close(events)

		deb := newDebouncer(debounceWindow)
		for {
			select {
			case <-ctx.Done():
				return nil

			case raw, ok := <-watcher.Events:
				if !ok {
					return nil
				}
				e, ok := mapEvent(raw, pattern)
				if !ok {
					continue
				}

				if !deb.allow(string(e.Type)+" "+e.File, time.Now()) {
					continue
				}

				select {
				case events <- e:
				case <-ctx.Done():
					return nil
				}

			case werr, ok := <-watcher.Errors:
				if !ok {
					return nil
				}
				s.logger.Error("fsnotify error", "error", werr)
			}
		}
	})

	return events, nil
}

// debouncer coalesces per-key event bursts, dropping stale entries so a
// long-running watch does not accumulate one entry per file forever.
type debouncer struct {
	window time.Duration
	seen   map[string]time.Time
}

func newDebouncer(window time.Duration) *debouncer {
	return &debouncer{window: window, seen: make(map[string]time.Time)}
}

// allow reports whether an event for key should pass, recording it when
// it does. Entries older than the window are pruned on every pass.
func (d *debouncer) allow(key string, now time.Time) bool {
	if at, ok := d.seen[key]; ok && now.Sub(at) < d.window {
		return false
	}
	d.seen[key] = now
	for k, at := range d.seen {
		if now.Sub(at) >= d.window {
			delete(d.seen, k)
		}
	}
	return true
}

func (d *debouncer) len() int { return len(d.seen) }

// mapEvent converts a filesystem notification into a store event,
// filtering out non-matching files and operations we do not report.
func mapEvent(raw fsnotify.Event, pattern string) (core.Event, bool) {
	name := filepath.Base(raw.Name)
	ok, err := doublestar.Match(pattern, name)
	if err != nil || !ok {
		return core.Event{}, false
	}

	var t core.EventType
	switch {
	case raw.Has(fsnotify.Create):
		t = core.EventCreate
	case raw.Has(fsnotify.Write):
		t = core.EventModify
	case raw.Has(fsnotify.Remove), raw.Has(fsnotify.Rename):
		t = core.EventDelete
	default:
		return core.Event{}, false
	}

	return core.Event{Type: t, File: name, Timestamp: time.Now().Unix()}, true
}

var _ core.Watchable = (*Store)(nil)
