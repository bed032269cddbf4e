package mdnotes

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadSettingsFile(t *testing.T) {
	t.Run("missing file is not an error", func(t *testing.T) {
		s, err := loadSettingsFile(filepath.Join(t.TempDir(), "settings.yaml"))
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if s != (Settings{}) {
			t.Errorf("expected zero settings, got %+v", s)
		}
	})

	t.Run("fields decode", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "settings.yaml")
		content := "notes_dir: /tmp/notes\neditor: vim\nrecent: 5\n"
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatal(err)
		}

		s, err := loadSettingsFile(path)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if s.NotesDir != "/tmp/notes" || s.Editor != "vim" || s.Recent != 5 {
			t.Errorf("unexpected settings: %+v", s)
		}
	})

	t.Run("malformed file is reported", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "settings.yaml")
		if err := os.WriteFile(path, []byte(":\n\t:"), 0644); err != nil {
			t.Fatal(err)
		}
		if _, err := loadSettingsFile(path); err == nil {
			t.Error("expected error for malformed yaml")
		}
	})
}

func TestResolveDir(t *testing.T) {
	t.Run("explicit argument wins", func(t *testing.T) {
		t.Setenv(EnvDir, "/env/notes")
		dir, err := ResolveDir("/my/notes")
		if err != nil {
			t.Fatal(err)
		}
		if dir != "/my/notes" {
			t.Errorf("expected /my/notes, got %q", dir)
		}
	})

	t.Run("environment variable next", func(t *testing.T) {
		t.Setenv(EnvDir, "/env/notes")
		dir, err := ResolveDir("")
		if err != nil {
			t.Fatal(err)
		}
		if dir != "/env/notes" {
			t.Errorf("expected /env/notes, got %q", dir)
		}
	})
}
