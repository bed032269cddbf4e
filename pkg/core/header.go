package core

import (
	"fmt"
	"strings"
	"time"
)

// Every note file starts with the same four header lines, then a blank
// line, the content heading, a blank line, and the body. RenderNote and
// ParseHeader are the single inverse pair all readers and writers use;
// nothing else in the codebase touches the line layout.
const (
	titlePrefix   = "# "
	createdPrefix = "Created: "
	idPrefix      = "ID: "
	tagsPrefix    = "Tags: "

	// NoTags is the literal written to the tags line of an untagged note.
	NoTags = "none"

	contentHeading = "## Content"

	// DefaultContent is the body placeholder when no content is supplied.
	DefaultContent = "Start writing here..."
)

// Header holds the four positional header fields as raw strings.
type Header struct {
	Title   string
	Created string
	ID      string
	Tags    string
}

// ParseHeader reads the four header fields positionally from raw file
// text. Missing lines leave the corresponding field empty; a line that
// does not carry the expected prefix is taken as-is.
func ParseHeader(raw string) Header {
	lines := strings.Split(raw, "\n")
	var h Header
	if len(lines) > 0 {
		h.Title = strings.TrimPrefix(lines[0], titlePrefix)
	}
	if len(lines) > 1 {
		h.Created = strings.TrimPrefix(lines[1], createdPrefix)
	}
	if len(lines) > 2 {
		h.ID = strings.TrimPrefix(lines[2], idPrefix)
	}
	if len(lines) > 3 {
		h.Tags = strings.TrimPrefix(lines[3], tagsPrefix)
	}
	return h
}

// RenderNote serializes a note to its on-disk text form. The created
// timestamp is RFC 3339 so it round-trips independent of locale.
func RenderNote(n Note) string {
	tags := NoTags
	if len(n.Tags) > 0 {
		tags = strings.Join(n.Tags, ", ")
	}
	body := n.Content
	if body == "" {
		body = DefaultContent
	}
	return fmt.Sprintf("%s%s\n%s%s\n%s%d\n%s%s\n\n%s\n\n%s\n",
		titlePrefix, n.Title,
		createdPrefix, n.Created.Format(time.RFC3339),
		idPrefix, n.ID,
		tagsPrefix, tags,
		contentHeading,
		body,
	)
}
