package core

import (
	"regexp"
	"strings"
	"time"
)

// tagPattern matches an inline tag token: '#' followed by word characters.
var tagPattern = regexp.MustCompile(`#(\w+)`)

// Note is the central entity of the domain: one markdown file on disk.
type Note struct {
	ID      int
	Title   string
	Tags    []string
	Created time.Time
	Content string
}

// NoteInfo is the read-side view of a note as enumerated from the store.
// Header fields are kept as raw strings exactly as parsed; a file with
// fewer header lines yields empty fields rather than an error.
type NoteInfo struct {
	File     string // filename within the store directory
	Path     string // absolute path on disk
	Title    string
	Created  string
	ID       string
	Tags     string // comma-joined tags field, or "none"
	Size     int64
	Modified time.Time
	Raw      string // full file text
}

// CreatedNote reports the outcome of a successful creation.
type CreatedNote struct {
	Filename string
	Path     string
	Tags     []string
}

// ExtractTags scans text for #word tokens and returns the tag names in
// order of first appearance. Duplicates are kept.
func ExtractTags(text string) []string {
	matches := tagPattern.FindAllStringSubmatch(text, -1)
	if len(matches) == 0 {
		return nil
	}
	tags := make([]string, 0, len(matches))
	for _, m := range matches {
		tags = append(tags, m[1])
	}
	return tags
}

// CleanTitle removes #tag tokens and any stray '#' characters from a raw
// title. Re-extracting tags from the result always yields nothing.
func CleanTitle(text string) string {
	clean := tagPattern.ReplaceAllString(text, "")
	return strings.ReplaceAll(clean, "#", "")
}

// maxFilenameTitle bounds how much of the title ends up in the filename.
const maxFilenameTitle = 30

// Filename derives the durable on-disk name for a note created at ts:
// a second-granularity sortable timestamp plus the first 30 runes of the
// clean title with spaces replaced by hyphens. Two notes created in the
// same second with the same title prefix collide; the second write wins.
func Filename(title string, ts time.Time) string {
	name := title
	if r := []rune(name); len(r) > maxFilenameTitle {
		name = string(r[:maxFilenameTitle])
	}
	name = strings.ReplaceAll(name, " ", "-")
	return ts.Format("20060102-150405") + "-" + name + ".md"
}
