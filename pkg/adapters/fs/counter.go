package fs

import (
	"encoding/json"
	"fmt"
	"os"
)

// counterFilename is the JSON file holding the persisted note counter.
const counterFilename = "config.json"

// counterFile mirrors the on-disk layout. The tags field is written for
// compatibility but never read back.
type counterFile struct {
	Tags       []string `json:"tags"`
	NotesCount int      `json:"notes_count"`
}

// counter owns the persisted notes_count integer.
type counter struct {
	path string
}

func newCounter(path string) *counter {
	return &counter{path: path}
}

// ensure seeds the counter file with a zero count if it does not exist.
func (c *counter) ensure() error {
	if _, err := os.Stat(c.path); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return err
	}
	return c.write(counterFile{Tags: []string{}})
}

// next increments the persisted count and returns the new value. The
// read-modify-write sequence has no lock; last writer wins.
func (c *counter) next() (int, error) {
	data, err := os.ReadFile(c.path)
	if err != nil {
		return 0, fmt.Errorf("failed to read counter file: %w", err)
	}

	var cf counterFile
	if err := json.Unmarshal(data, &cf); err != nil {
		return 0, fmt.Errorf("failed to parse counter file: %w", err)
	}
	if cf.Tags == nil {
		cf.Tags = []string{}
	}

	cf.NotesCount++
	if err := c.write(cf); err != nil {
		return 0, err
	}
	return cf.NotesCount, nil
}

func (c *counter) write(cf counterFile) error {
	data, err := json.MarshalIndent(cf, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode counter file: %w", err)
	}
	if err := os.WriteFile(c.path, data, 0644); err != nil {
		return fmt.Errorf("failed to write counter file: %w", err)
	}
	return nil
}
