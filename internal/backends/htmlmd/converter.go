// Package htmlmd provides the structured HTML-to-Markdown
// conversion backend.
package htmlmd

import (
	"context"
	"fmt"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"

	"github.com/inkwell-labs/inkwell-cli/internal/core/ports/driven"
)

// Ensure Converter implements the interface.
var _ driven.HTMLMarkdownConverter = (*Converter)(nil)

// Converter converts HTML documents to Markdown.
type Converter struct{}

// New creates an HTML-to-Markdown converter.
func New() *Converter {
	return &Converter{}
}

// ConvertMarkdown converts an HTML document to Markdown.
func (c *Converter) ConvertMarkdown(_ context.Context, html string) (string, error) {
	markdown, err := htmltomarkdown.ConvertString(html)
	if err != nil {
		return "", fmt.Errorf("converting HTML to markdown: %w", err)
	}
	return markdown, nil
}
