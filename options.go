package mdnotes

import (
	"log/slog"
	"time"

	"github.com/aretw0/mdnotes/pkg/core"
)

// options holds the internal configuration for the mdnotes service.
type options struct {
	logger     *slog.Logger
	repository core.Repository
	now        func() time.Time
}

// Option defines a functional option for configuring mdnotes.
type Option func(*options)

// defaultOptions returns the default configuration.
func defaultOptions() *options {
	return &options{
		logger: slog.Default(),
	}
}

// WithLogger sets the logger for the service and the store.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithRepository allows injecting a custom storage adapter (e.g. a mock).
// If provided, directory resolution and the filesystem store are skipped.
func WithRepository(repo core.Repository) Option {
	return func(o *options) {
		o.repository = repo
	}
}

// WithClock overrides the time source used for creation timestamps.
// Useful for testing filename derivation.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		o.now = now
	}
}
