package core

import (
	"context"
	"errors"
	"log/slog"
	"time"
)

// Service handles the business logic for notes on top of a Repository.
type Service struct {
	repo   Repository
	logger *slog.Logger
	now    func() time.Time
}

// ServiceOption configures a Service.
type ServiceOption func(*Service)

// WithClock overrides the time source used for creation timestamps and
// filename derivation. Useful for tests.
func WithClock(now func() time.Time) ServiceOption {
	return func(s *Service) {
		s.now = now
	}
}

// WithLogger sets the logger for the service.
func WithLogger(logger *slog.Logger) ServiceOption {
	return func(s *Service) {
		s.logger = logger
	}
}

// NewService creates a new Service.
func NewService(repo Repository, opts ...ServiceOption) *Service {
	s := &Service{
		repo:   repo,
		logger: slog.Default(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// CreateNote creates a note from raw title text (which may embed #tag
// tokens) and optional content. Tags are extracted first, then the title
// is cleaned, an ID allocated, the filename derived from the creation
// timestamp, and the rendered note written to the store.
func (s *Service) CreateNote(ctx context.Context, rawTitle, content string) (CreatedNote, error) {
	if rawTitle == "" {
		return CreatedNote{}, errors.New("note title cannot be empty")
	}

	tags := ExtractTags(rawTitle)
	title := CleanTitle(rawTitle)

	id, err := s.repo.NextID(ctx)
	if err != nil {
		return CreatedNote{}, err
	}

	created := s.now()
	filename := Filename(title, created)
	data := RenderNote(Note{
		ID:      id,
		Title:   title,
		Tags:    tags,
		Created: created,
		Content: content,
	})

	path, err := s.repo.Save(ctx, filename, []byte(data))
	if err != nil {
		return CreatedNote{}, err
	}

	s.logger.Debug("note created", "id", id, "file", filename)
	return CreatedNote{Filename: filename, Path: path, Tags: tags}, nil
}

// ListNotes enumerates the store and applies the list pipeline.
func (s *Service) ListNotes(ctx context.Context, opts ListOptions) ([]NoteInfo, error) {
	notes, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return FilterNotes(notes, opts), nil
}

// SearchNotes returns the notes matching a query, in enumeration order.
func (s *Service) SearchNotes(ctx context.Context, query string, tagOnly bool) ([]NoteInfo, error) {
	notes, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	var results []NoteInfo
	for _, n := range notes {
		if MatchNote(n, query, tagOnly) {
			results = append(results, n)
		}
	}
	return results, nil
}

// ResolveNote maps a pattern to exactly one note.
func (s *Service) ResolveNote(ctx context.Context, pattern string) (NoteInfo, error) {
	if pattern == "" {
		return NoteInfo{}, errors.New("pattern cannot be empty")
	}
	return s.repo.Resolve(ctx, pattern)
}

// DeleteNote resolves a pattern and removes the single matching note.
func (s *Service) DeleteNote(ctx context.Context, pattern string) (NoteInfo, error) {
	if pattern == "" {
		return NoteInfo{}, errors.New("pattern cannot be empty")
	}
	info, err := s.repo.Remove(ctx, pattern)
	if err != nil {
		return NoteInfo{}, err
	}
	s.logger.Debug("note deleted", "file", info.File)
	return info, nil
}

// Stats aggregates statistics over the whole store.
func (s *Service) Stats(ctx context.Context) (Stats, error) {
	notes, err := s.repo.List(ctx)
	if err != nil {
		return Stats{}, err
	}
	return ComputeStats(notes), nil
}

// Watch observes changes in the repository if supported.
func (s *Service) Watch(ctx context.Context, pattern string) (<-chan Event, error) {
	w, ok := s.repo.(Watchable)
	if !ok {
		return nil, errors.New("repository does not support watching")
	}
	return w.Watch(ctx, pattern)
}
