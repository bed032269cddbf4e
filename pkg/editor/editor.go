// Package editor launches the user's preferred text editor on a file.
package editor

import (
	"os"
	"os/exec"
	"runtime"
)

// Resolve picks the editor program: the EDITOR environment variable wins,
// then the caller-supplied override (typically from the settings file),
// then a platform default.
func Resolve(override string) string {
	if e := os.Getenv("EDITOR"); e != "" {
		return e
	}
	if override != "" {
		return override
	}
	if runtime.GOOS == "windows" {
		return "notepad"
	}
	return "code"
}

// Open launches the editor on path with the terminal's standard streams
// attached and waits for it to exit. Callers fall back to printing the
// file content when the launch fails.
func Open(editor, path string) error {
	cmd := exec.Command(editor, path)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}
