package mdnotes

import (
	"context"
	"os"
	"path/filepath"

	"github.com/aretw0/mdnotes/pkg/adapters/fs"
	"github.com/aretw0/mdnotes/pkg/core"
)

// EnvDir overrides the notes directory when set.
const EnvDir = "MDNOTES_DIR"

// DefaultDirName is the notes directory created under the user's home.
const DefaultDirName = ".md-notes"

// New builds a ready-to-use note service rooted at dir. An empty dir is
// resolved via ResolveDir. The store is initialized (directory and
// counter file created if absent) before the service is returned.
func New(dir string, opts ...Option) (*core.Service, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	// If a custom repository is injected via options, use it directly.
	repo := o.repository
	if repo == nil {
		path, err := ResolveDir(dir)
		if err != nil {
			return nil, err
		}
		repo = fs.NewStore(fs.Config{
			Path:   path,
			Logger: o.logger,
		})
	}

	if err := repo.Initialize(context.Background()); err != nil {
		return nil, err
	}

	svcOpts := []core.ServiceOption{core.WithLogger(o.logger)}
	if o.now != nil {
		svcOpts = append(svcOpts, core.WithClock(o.now))
	}
	return core.NewService(repo, svcOpts...), nil
}

// ResolveDir determines the notes directory: the explicit argument wins,
// then the MDNOTES_DIR environment variable, then the settings file, then
// the per-user default.
func ResolveDir(dir string) (string, error) {
	if dir != "" {
		return dir, nil
	}
	if env := os.Getenv(EnvDir); env != "" {
		return env, nil
	}
	if settings, err := LoadSettings(); err == nil && settings.NotesDir != "" {
		return settings.NotesDir, nil
	}
	return DefaultDir()
}

// DefaultDir returns the per-user notes directory, ~/.md-notes.
func DefaultDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, DefaultDirName), nil
}
