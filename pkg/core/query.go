package core

import (
	"sort"
	"strings"
)

// ListOptions controls the list pipeline: an optional tag filter and an
// optional recency limit applied after sorting.
type ListOptions struct {
	Tags   []string
	Recent int
}

// FilterNotes applies the list pipeline to an enumeration: tag filter,
// sort descending by modified time, recency limit.
//
// The tag filter is a substring test against the whole comma-joined tags
// field, not an exact membership test: filtering for "go" also retains a
// note tagged "golang".
func FilterNotes(notes []NoteInfo, opts ListOptions) []NoteInfo {
	filtered := notes
	if len(opts.Tags) > 0 {
		filtered = nil
		for _, n := range notes {
			for _, tag := range opts.Tags {
				if strings.Contains(n.Tags, tag) {
					filtered = append(filtered, n)
					break
				}
			}
		}
	}

	sorted := make([]NoteInfo, len(filtered))
	copy(sorted, filtered)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Modified.After(sorted[j].Modified)
	})

	if opts.Recent > 0 && opts.Recent < len(sorted) {
		sorted = sorted[:opts.Recent]
	}
	return sorted
}

// MatchNote reports whether a note matches a search query: a
// case-insensitive substring test against the full raw text, or against
// only the tags header line (the file's fourth line, prefix included)
// when tagOnly is set. A file too short to have a tags line never
// matches in tag-only mode.
func MatchNote(n NoteInfo, query string, tagOnly bool) bool {
	q := strings.ToLower(query)
	if tagOnly {
		return strings.Contains(strings.ToLower(tagsLine(n.Raw)), q)
	}
	return strings.Contains(strings.ToLower(n.Raw), q)
}

// tagsLine returns the raw fourth line of a note file, or the empty
// string when the file has fewer lines.
func tagsLine(raw string) string {
	lines := strings.Split(raw, "\n")
	if len(lines) > 3 {
		return lines[3]
	}
	return ""
}

// TagCount pairs a tag with the number of notes carrying it.
type TagCount struct {
	Tag   string
	Count int
}

// Stats aggregates the whole note collection.
type Stats struct {
	TotalNotes int
	TotalSize  int64
	Oldest     NoteInfo
	Newest     NoteInfo
	TagCounts  []TagCount // descending by count, first-seen order among ties
}

// TopTags returns at most n of the most frequent tags.
func (s Stats) TopTags(n int) []TagCount {
	if n > len(s.TagCounts) {
		n = len(s.TagCounts)
	}
	return s.TagCounts[:n]
}

// ComputeStats aggregates counts, sizes, oldest/newest by modified time,
// and tag frequency over an enumeration. An empty enumeration yields a
// zero Stats; callers take the "no notes" path without looking further.
func ComputeStats(notes []NoteInfo) Stats {
	stats := Stats{TotalNotes: len(notes)}
	if len(notes) == 0 {
		return stats
	}

	stats.Oldest = notes[0]
	stats.Newest = notes[0]
	counts := make(map[string]int)
	var order []string

	for _, n := range notes {
		stats.TotalSize += n.Size
		if n.Modified.Before(stats.Oldest.Modified) {
			stats.Oldest = n
		}
		if n.Modified.After(stats.Newest.Modified) {
			stats.Newest = n
		}

		if n.Tags == NoTags {
			continue
		}
		for _, tag := range strings.Split(n.Tags, ",") {
			tag = strings.TrimSpace(tag)
			if tag == "" {
				continue
			}
			if _, seen := counts[tag]; !seen {
				order = append(order, tag)
			}
			counts[tag]++
		}
	}

	stats.TagCounts = make([]TagCount, 0, len(order))
	for _, tag := range order {
		stats.TagCounts = append(stats.TagCounts, TagCount{Tag: tag, Count: counts[tag]})
	}
	sort.SliceStable(stats.TagCounts, func(i, j int) bool {
		return stats.TagCounts[i].Count > stats.TagCounts[j].Count
	})
	return stats
}
