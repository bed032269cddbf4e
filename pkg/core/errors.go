package core

import (
	"errors"
	"fmt"
	"strings"
)

// Common errors.
var (
	// ErrNotFound reports that a pattern resolved to no note.
	ErrNotFound = errors.New("note not found")
)

// AmbiguousError reports that a pattern resolved to more than one note.
// Callers are expected to render the candidate list to the user.
type AmbiguousError struct {
	Pattern string
	Matches []string
}

func (e *AmbiguousError) Error() string {
	return fmt.Sprintf("pattern %q matches multiple notes: %s",
		e.Pattern, strings.Join(e.Matches, ", "))
}
