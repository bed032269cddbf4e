package editor

import "testing"

func TestResolve(t *testing.T) {
	t.Run("EDITOR wins", func(t *testing.T) {
		t.Setenv("EDITOR", "nano")
		if got := Resolve("vim"); got != "nano" {
			t.Errorf("expected nano, got %q", got)
		}
	})

	t.Run("override when EDITOR unset", func(t *testing.T) {
		t.Setenv("EDITOR", "")
		if got := Resolve("vim"); got != "vim" {
			t.Errorf("expected vim, got %q", got)
		}
	})

	t.Run("platform default as last resort", func(t *testing.T) {
		t.Setenv("EDITOR", "")
		if got := Resolve(""); got == "" {
			t.Error("expected a platform default editor")
		}
	})
}
