package topics

import "strings"

// Renderer turns raw topic content into terminal output. format is the
// topic file extension, dot included.
type Renderer interface {
	Render(content string, format string) string
}

// PlainRenderer prints topics as written, ending with exactly one newline.
type PlainRenderer struct{}

// Render returns content with trailing blank lines collapsed.
func (r *PlainRenderer) Render(content string, format string) string {
	return strings.TrimRight(content, "\n") + "\n"
}
