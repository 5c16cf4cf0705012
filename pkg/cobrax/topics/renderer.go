package topics

import "strings"

// Renderer turns raw topic content into terminal output. format is the
// topic file's extension, e.g. ".md".
type Renderer interface {
	Render(content string, format string) string
}

// RendererFunc adapts a function to Renderer.
type RendererFunc func(content, format string) string

// Render calls f.
func (f RendererFunc) Render(content, format string) string {
	return f(content, format)
}

// PlainRenderer prints topics verbatim, newline-terminated.
type PlainRenderer struct{}

func (r *PlainRenderer) Render(content string, format string) string {
	if content == "" || strings.HasSuffix(content, "\n") {
		return content
	}
	return content + "\n"
}
