// Package markdown provides the structured Markdown-to-HTML
// rendering backend, built on goldmark with GitHub Flavored
// Markdown extensions.
package markdown

import (
	"bytes"
	"context"
	"fmt"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	ghtml "github.com/yuin/goldmark/renderer/html"

	"github.com/inkwell-labs/inkwell-cli/internal/core/ports/driven"
)

// Ensure Renderer implements the interface.
var _ driven.MarkdownRenderer = (*Renderer)(nil)

// Renderer renders Markdown source to an HTML fragment.
type Renderer struct {
	md goldmark.Markdown
}

// New creates a Markdown renderer.
func New() *Renderer {
	return &Renderer{
		md: goldmark.New(
			goldmark.WithExtensions(extension.GFM),
			// Raw HTML passes through; converted documents are the
			// user's own content, not untrusted input.
			goldmark.WithRendererOptions(ghtml.WithUnsafe()),
		),
	}
}

// RenderHTML converts Markdown source to an HTML fragment.
func (r *Renderer) RenderHTML(_ context.Context, markdown string) (string, error) {
	var buf bytes.Buffer
	if err := r.md.Convert([]byte(markdown), &buf); err != nil {
		return "", fmt.Errorf("rendering markdown: %w", err)
	}
	return buf.String(), nil
}
