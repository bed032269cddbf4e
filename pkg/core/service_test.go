package core_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/aretw0/mdnotes/pkg/core"
)

// MockRepository implements core.Repository in memory. It deliberately
// does NOT implement core.Watchable to test the unsupported path.
type MockRepository struct {
	nextID int
	files  map[string]string
}

func NewMockRepository() *MockRepository {
	return &MockRepository{files: make(map[string]string)}
}

func (m *MockRepository) Initialize(ctx context.Context) error { return nil }

func (m *MockRepository) NextID(ctx context.Context) (int, error) {
	m.nextID++
	return m.nextID, nil
}

func (m *MockRepository) Save(ctx context.Context, filename string, data []byte) (string, error) {
	m.files[filename] = string(data)
	return "/notes/" + filename, nil
}

func (m *MockRepository) List(ctx context.Context) ([]core.NoteInfo, error) {
	var notes []core.NoteInfo
	for name, raw := range m.files {
		h := core.ParseHeader(raw)
		notes = append(notes, core.NoteInfo{
			File:  name,
			Title: h.Title,
			ID:    h.ID,
			Tags:  h.Tags,
			Raw:   raw,
		})
	}
	return notes, nil
}

func (m *MockRepository) Resolve(ctx context.Context, pattern string) (core.NoteInfo, error) {
	notes, _ := m.List(ctx)
	for _, n := range notes {
		if n.ID == pattern || n.File == pattern {
			return n, nil
		}
	}
	return core.NoteInfo{}, core.ErrNotFound
}

func (m *MockRepository) Remove(ctx context.Context, pattern string) (core.NoteInfo, error) {
	info, err := m.Resolve(ctx, pattern)
	if err != nil {
		return core.NoteInfo{}, err
	}
	delete(m.files, info.File)
	return info, nil
}

func fixedClock() time.Time {
	return time.Date(2026, 8, 26, 9, 0, 0, 0, time.UTC)
}

func TestService_CreateNote(t *testing.T) {
	repo := NewMockRepository()
	service := core.NewService(repo, core.WithClock(fixedClock))
	ctx := context.TODO()

	created, err := service.CreateNote(ctx, "Groceries #shopping #home", "milk")
	if err != nil {
		t.Fatalf("CreateNote failed: %v", err)
	}

	if created.Filename != "20260826-090000-Groceries--.md" {
		t.Errorf("unexpected filename: %s", created.Filename)
	}
	if len(created.Tags) != 2 || created.Tags[0] != "shopping" || created.Tags[1] != "home" {
		t.Errorf("unexpected tags: %v", created.Tags)
	}

	raw, ok := repo.files[created.Filename]
	if !ok {
		t.Fatal("note was not saved")
	}
	h := core.ParseHeader(raw)
	if h.Title != "Groceries  " {
		t.Errorf("expected cleaned title, got %q", h.Title)
	}
	if h.ID != "1" {
		t.Errorf("expected ID 1, got %q", h.ID)
	}
	if h.Tags != "shopping, home" {
		t.Errorf("expected joined tags, got %q", h.Tags)
	}
	if !strings.Contains(raw, "\n\n## Content\n\nmilk\n") {
		t.Errorf("content body missing: %q", raw)
	}
}

func TestService_CreateNote_EmptyTitle(t *testing.T) {
	service := core.NewService(NewMockRepository())
	if _, err := service.CreateNote(context.TODO(), "", ""); err == nil {
		t.Error("expected error for empty title")
	}
}

func TestService_SequentialIDs(t *testing.T) {
	repo := NewMockRepository()
	service := core.NewService(repo, core.WithClock(fixedClock))
	ctx := context.TODO()

	// Distinct titles keep same-second filenames from colliding.
	titles := []string{"first", "second", "third"}
	for _, title := range titles {
		if _, err := service.CreateNote(ctx, title, ""); err != nil {
			t.Fatalf("CreateNote(%s) failed: %v", title, err)
		}
	}

	notes, _ := service.ListNotes(ctx, core.ListOptions{})
	seen := map[string]bool{}
	for _, n := range notes {
		seen[n.ID] = true
	}
	for _, id := range []string{"1", "2", "3"} {
		if !seen[id] {
			t.Errorf("missing ID %s in %v", id, notes)
		}
	}
}

func TestService_DeleteNote(t *testing.T) {
	repo := NewMockRepository()
	service := core.NewService(repo, core.WithClock(fixedClock))
	ctx := context.TODO()

	created, err := service.CreateNote(ctx, "to remove", "")
	if err != nil {
		t.Fatalf("CreateNote failed: %v", err)
	}

	info, err := service.DeleteNote(ctx, "1")
	if err != nil {
		t.Fatalf("DeleteNote failed: %v", err)
	}
	if info.File != created.Filename {
		t.Errorf("deleted wrong file: %s", info.File)
	}

	if _, err := service.ResolveNote(ctx, "1"); !errors.Is(err, core.ErrNotFound) {
		t.Errorf("expected ErrNotFound after deletion, got %v", err)
	}
}

func TestService_Watch_Unsupported(t *testing.T) {
	service := core.NewService(NewMockRepository())
	if _, err := service.Watch(context.TODO(), "*.md"); err == nil {
		t.Error("expected error for non-watchable repository")
	}
}
