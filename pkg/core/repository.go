package core

import "context"

// Repository defines the contract for storing and retrieving notes.
// Adhering to this interface keeps the core independent of the underlying
// storage mechanism (the default adapter is a flat directory of files).
type Repository interface {
	// Initialize ensures the underlying storage is ready (directory and
	// counter file exist). It is idempotent and safe on every invocation.
	Initialize(ctx context.Context) error

	// NextID allocates the next note ID by incrementing the persisted
	// counter. Not atomic: concurrent processes can race and obtain the
	// same ID. That is an accepted limitation of the store.
	NextID(ctx context.Context) (int, error)

	// Save writes a rendered note under the given filename, overwriting
	// any existing file, and returns the resolved path.
	Save(ctx context.Context, filename string, data []byte) (string, error)

	// List enumerates every note in the store. Order is
	// filesystem-dependent; callers re-sort as needed.
	List(ctx context.Context) ([]NoteInfo, error)

	// Resolve maps a pattern to exactly one note via three tiers: ID
	// header match, exact filename, then *pattern*.md substring glob.
	// Zero matches yield ErrNotFound, two or more an *AmbiguousError.
	Resolve(ctx context.Context, pattern string) (NoteInfo, error)

	// Remove resolves a pattern like Resolve and deletes the single hit.
	Remove(ctx context.Context, pattern string) (NoteInfo, error)
}

// Watchable is implemented by repositories that can emit change events.
type Watchable interface {
	// Watch observes the store and reports changes to files whose names
	// match the glob pattern until ctx is done.
	Watch(ctx context.Context, pattern string) (<-chan Event, error)
}
