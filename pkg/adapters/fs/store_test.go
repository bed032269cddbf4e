package fs

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/mdnotes/pkg/core"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store := NewStore(Config{Path: t.TempDir()})
	require.NoError(t, store.Initialize(context.Background()))
	return store
}

// seedNote writes a rendered note file directly into the store.
func seedNote(t *testing.T, store *Store, filename string, n core.Note) {
	t.Helper()
	_, err := store.Save(context.Background(), filename, []byte(core.RenderNote(n)))
	require.NoError(t, err)
}

func TestStore_InitializeIsIdempotent(t *testing.T) {
	store := NewStore(Config{Path: filepath.Join(t.TempDir(), "notes")})
	ctx := context.Background()

	require.NoError(t, store.Initialize(ctx))
	require.NoError(t, store.Initialize(ctx))

	info, err := os.Stat(store.Path())
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	_, err = os.Stat(filepath.Join(store.Path(), counterFilename))
	assert.NoError(t, err, "counter file should be seeded")
}

func TestStore_NextID(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	for want := 1; want <= 5; want++ {
		got, err := store.NextID(ctx)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
}

func TestStore_List(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	created := time.Date(2026, 8, 26, 8, 0, 0, 0, time.UTC)
	seedNote(t, store, "20260826-080000-alpha.md", core.Note{
		ID: 1, Title: "alpha", Tags: []string{"work"}, Created: created,
	})
	seedNote(t, store, "20260826-080001-beta.md", core.Note{
		ID: 2, Title: "beta", Created: created,
	})

	// Non-note files are ignored (the counter file already is one).
	require.NoError(t, os.WriteFile(filepath.Join(store.Path(), "scratch.txt"), []byte("x"), 0644))

	notes, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, notes, 2)

	byFile := map[string]core.NoteInfo{}
	for _, n := range notes {
		byFile[n.File] = n
	}

	alpha := byFile["20260826-080000-alpha.md"]
	assert.Equal(t, "alpha", alpha.Title)
	assert.Equal(t, "1", alpha.ID)
	assert.Equal(t, "work", alpha.Tags)
	assert.Equal(t, created.Format(time.RFC3339), alpha.Created)
	assert.Greater(t, alpha.Size, int64(0))
	assert.False(t, alpha.Modified.IsZero())
	assert.Contains(t, alpha.Raw, "## Content")

	beta := byFile["20260826-080001-beta.md"]
	assert.Equal(t, core.NoTags, beta.Tags)
}

func TestStore_List_MalformedFile(t *testing.T) {
	store := newTestStore(t)

	// A two-line file: title and created present, id and tags absent.
	short := "# stub\nCreated: 2026-01-01T00:00:00Z"
	require.NoError(t, os.WriteFile(filepath.Join(store.Path(), "stub.md"), []byte(short), 0644))

	notes, err := store.List(context.Background())
	require.NoError(t, err, "malformed files must not fail enumeration")
	require.Len(t, notes, 1)
	assert.Equal(t, "stub", notes[0].Title)
	assert.Equal(t, "", notes[0].ID)
	assert.Equal(t, "", notes[0].Tags)
}

func TestStore_Resolve(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	created := time.Now()

	seedNote(t, store, "20260826-080000-groceries.md", core.Note{ID: 1, Title: "groceries", Created: created})
	seedNote(t, store, "20260826-080001-meeting.md", core.Note{ID: 2, Title: "meeting", Created: created})
	seedNote(t, store, "20260826-080002-meeting-prep.md", core.Note{ID: 3, Title: "meeting prep", Created: created})

	t.Run("by ID header field", func(t *testing.T) {
		info, err := store.Resolve(ctx, "1")
		require.NoError(t, err)
		assert.Equal(t, "20260826-080000-groceries.md", info.File)
	})

	t.Run("by exact filename", func(t *testing.T) {
		info, err := store.Resolve(ctx, "20260826-080001-meeting.md")
		require.NoError(t, err)
		assert.Equal(t, "2", info.ID)
	})

	t.Run("by unique partial filename", func(t *testing.T) {
		info, err := store.Resolve(ctx, "groceries")
		require.NoError(t, err)
		assert.Equal(t, "1", info.ID)
	})

	t.Run("not found", func(t *testing.T) {
		_, err := store.Resolve(ctx, "nope")
		assert.True(t, errors.Is(err, core.ErrNotFound), "expected ErrNotFound, got: %v", err)
	})

	t.Run("ambiguous lists all candidates", func(t *testing.T) {
		_, err := store.Resolve(ctx, "meeting")
		var ambiguous *core.AmbiguousError
		require.True(t, errors.As(err, &ambiguous), "expected AmbiguousError, got: %v", err)
		assert.Len(t, ambiguous.Matches, 2)
		assert.Contains(t, ambiguous.Matches, "20260826-080001-meeting.md")
		assert.Contains(t, ambiguous.Matches, "20260826-080002-meeting-prep.md")
	})
}

func TestStore_Remove(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	seedNote(t, store, "20260826-080000-keep.md", core.Note{ID: 1, Title: "keep", Created: time.Now()})
	seedNote(t, store, "20260826-080001-drop.md", core.Note{ID: 2, Title: "drop", Created: time.Now()})

	info, err := store.Remove(ctx, "2")
	require.NoError(t, err)
	assert.Equal(t, "20260826-080001-drop.md", info.File)

	notes, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, notes, 1)
	assert.Equal(t, "20260826-080000-keep.md", notes[0].File)

	_, err = store.Remove(ctx, "2")
	assert.True(t, errors.Is(err, core.ErrNotFound))
}

func TestStore_SaveOverwrites(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	// Same-second same-title creations collide on filename; the second
	// write silently wins.
	seedNote(t, store, "20260826-080000-dup.md", core.Note{ID: 1, Title: "dup", Created: time.Now()})
	seedNote(t, store, "20260826-080000-dup.md", core.Note{ID: 2, Title: "dup", Created: time.Now()})

	notes, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, notes, 1)
	assert.Equal(t, "2", notes[0].ID)
}
