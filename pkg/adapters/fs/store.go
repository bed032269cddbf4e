// Package fs implements core.Repository on a flat directory of markdown
// files plus a JSON counter file. The directory is the sole source of
// truth: there is no index, no cache, and no locking. Writes are plain
// and non-atomic; two concurrent processes can race on the counter or
// overwrite same-second filenames. The tool accepts both as a
// single-user, low-contention utility.
package fs

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/aretw0/mdnotes/pkg/core"
)

// NoteExt is the file suffix that marks a note.
const NoteExt = ".md"

// Config holds the configuration for the filesystem store.
type Config struct {
	Path   string
	Logger *slog.Logger
}

// Store implements core.Repository over a notes directory.
type Store struct {
	path    string
	counter *counter
	logger  *slog.Logger

	mu            sync.RWMutex
	watcherActive bool
}

// NewStore creates a new filesystem-backed store.
func NewStore(config Config) *Store {
	logger := config.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{
		path:    config.Path,
		counter: newCounter(filepath.Join(config.Path, counterFilename)),
		logger:  logger,
	}
}

// Path returns the store's directory.
func (s *Store) Path() string {
	return s.path
}

// Initialize ensures the notes directory and counter file exist. It is
// idempotent and called on every invocation.
func (s *Store) Initialize(ctx context.Context) error {
	if err := os.MkdirAll(s.path, 0755); err != nil {
		return fmt.Errorf("failed to create notes directory: %w", err)
	}
	if err := s.counter.ensure(); err != nil {
		return fmt.Errorf("failed to seed counter file: %w", err)
	}
	return nil
}

// NextID allocates the next note ID. The counter read-modify-write is
// not atomic; under concurrent invocations the last writer wins.
func (s *Store) NextID(ctx context.Context) (int, error) {
	if err := s.Initialize(ctx); err != nil {
		return 0, err
	}
	return s.counter.next()
}

// Save writes a rendered note under filename, overwriting any existing
// file, and returns the resolved path.
func (s *Store) Save(ctx context.Context, filename string, data []byte) (string, error) {
	path := filepath.Join(s.path, filename)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write note: %w", err)
	}
	return path, nil
}

// List enumerates every note file in the directory. Files that cannot be
// read are logged and skipped; malformed headers parse to empty fields.
// Order is whatever the filesystem reports.
func (s *Store) List(ctx context.Context) ([]core.NoteInfo, error) {
	entries, err := os.ReadDir(s.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read notes directory: %w", err)
	}

	var notes []core.NoteInfo
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), NoteExt) {
			continue
		}
		info, err := s.readInfo(entry.Name())
		if err != nil {
			s.logger.Warn("failed to read note during list", "file", entry.Name(), "error", err)
			continue
		}
		notes = append(notes, info)
	}
	return notes, nil
}

// readInfo loads one note file into a NoteInfo record.
func (s *Store) readInfo(name string) (core.NoteInfo, error) {
	path := filepath.Join(s.path, name)
	data, err := os.ReadFile(path)
	if err != nil {
		return core.NoteInfo{}, err
	}
	stat, err := os.Stat(path)
	if err != nil {
		return core.NoteInfo{}, err
	}

	raw := string(data)
	h := core.ParseHeader(raw)
	return core.NoteInfo{
		File:     name,
		Path:     path,
		Title:    h.Title,
		Created:  h.Created,
		ID:       h.ID,
		Tags:     h.Tags,
		Size:     stat.Size(),
		Modified: stat.ModTime(),
		Raw:      raw,
	}, nil
}

// Resolve maps a pattern to exactly one note, in priority order: exact
// match of the ID header field, exact filename, then a *pattern*.md glob
// against filenames. Zero partial matches yield core.ErrNotFound, two or
// more a *core.AmbiguousError listing the candidates.
func (s *Store) Resolve(ctx context.Context, pattern string) (core.NoteInfo, error) {
	notes, err := s.List(ctx)
	if err != nil {
		return core.NoteInfo{}, err
	}

	// Tier 1: ID header field.
	for _, n := range notes {
		if n.ID == pattern {
			return n, nil
		}
	}

	// Tier 2: exact filename.
	for _, n := range notes {
		if n.File == pattern {
			return n, nil
		}
	}

	// Tier 3: substring glob against filenames.
	glob := "*" + pattern + "*" + NoteExt
	var matches []core.NoteInfo
	for _, n := range notes {
		ok, err := doublestar.Match(glob, n.File)
		if err != nil {
			return core.NoteInfo{}, fmt.Errorf("bad pattern %q: %w", pattern, err)
		}
		if ok {
			matches = append(matches, n)
		}
	}

	switch len(matches) {
	case 0:
		return core.NoteInfo{}, fmt.Errorf("%w: %s", core.ErrNotFound, pattern)
	case 1:
		return matches[0], nil
	default:
		names := make([]string, 0, len(matches))
		for _, m := range matches {
			names = append(names, m.File)
		}
		return core.NoteInfo{}, &core.AmbiguousError{Pattern: pattern, Matches: names}
	}
}

// Remove resolves a pattern and deletes the single matching note file.
func (s *Store) Remove(ctx context.Context, pattern string) (core.NoteInfo, error) {
	info, err := s.Resolve(ctx, pattern)
	if err != nil {
		return core.NoteInfo{}, err
	}
	if err := os.Remove(info.Path); err != nil {
		return core.NoteInfo{}, fmt.Errorf("failed to delete note: %w", err)
	}
	return info, nil
}

var _ core.Repository = (*Store)(nil)
