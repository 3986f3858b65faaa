package docx

import (
	"bytes"
	"context"
	"fmt"

	godocx "github.com/fumiama/go-docx"

	"github.com/inkwell-labs/inkwell-cli/internal/core/domain"
	"github.com/inkwell-labs/inkwell-cli/internal/core/ports/driven"
)

// Run sizes in half-points: 12pt body text, 14pt headings.
const (
	bodySize    = "24"
	headingSize = "28"
)

// Ensure Generator implements the interface.
var _ driven.DocxGenerator = (*Generator)(nil)

// Generator emits DOCX documents from plain paragraphs.
type Generator struct{}

// NewGenerator creates a DOCX generator.
func NewGenerator() *Generator {
	return &Generator{}
}

// Generate emits one run per paragraph. Heading paragraphs are bold
// at a larger point size; everything else is body text.
func (g *Generator) Generate(_ context.Context, paragraphs []domain.DocxParagraph) ([]byte, error) {
	doc := godocx.New().WithDefaultTheme()

	for _, para := range paragraphs {
		run := doc.AddParagraph().AddText(para.Text)
		if para.Heading {
			run.Size(headingSize).Bold()
		} else {
			run.Size(bodySize)
		}
	}

	var buf bytes.Buffer
	if _, err := doc.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("writing docx: %w", err)
	}
	return buf.Bytes(), nil
}
