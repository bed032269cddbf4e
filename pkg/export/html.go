// Package export renders note markdown to other formats.
package export

import (
	"bytes"

	"github.com/yuin/goldmark"
)

var mdRenderer = goldmark.New()

// HTML converts markdown source to an HTML fragment.
func HTML(markdown []byte) ([]byte, error) {
	var buf bytes.Buffer
	if err := mdRenderer.Convert(markdown, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
