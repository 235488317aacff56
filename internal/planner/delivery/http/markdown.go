package http

import (
	"bytes"
	"html/template"
)

// renderMarkdown converts the model's intro text to HTML. goldmark drops raw
// HTML by default, so the output is safe to embed. Falls back to escaped text.
func (h *handler) renderMarkdown(src string) template.HTML {
	if src == "" {
		return ""
	}

	var buf bytes.Buffer
	if err := h.md.Convert([]byte(src), &buf); err != nil {
		return template.HTML(template.HTMLEscapeString(src))
	}
	return template.HTML(buf.String())
}
