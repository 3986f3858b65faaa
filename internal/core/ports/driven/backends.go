package driven

import (
	"context"

	"github.com/inkwell-labs/inkwell-cli/internal/core/domain"
)

// MarkdownRenderer renders Markdown source to an HTML fragment.
type MarkdownRenderer interface {
	RenderHTML(ctx context.Context, markdown string) (string, error)
}

// HTMLMarkdownConverter converts an HTML document to Markdown.
type HTMLMarkdownConverter interface {
	ConvertMarkdown(ctx context.Context, html string) (string, error)
}

// DocxExtractor extracts plain text from DOCX bytes.
type DocxExtractor interface {
	ExtractText(ctx context.Context, data []byte) (string, error)
}

// DocxGenerator emits a DOCX document from plain paragraphs.
type DocxGenerator interface {
	Generate(ctx context.Context, paragraphs []domain.DocxParagraph) ([]byte, error)
}

// PDFExtractor extracts plain text from PDF bytes.
type PDFExtractor interface {
	ExtractText(ctx context.Context, data []byte) (string, error)
}

// PDFRenderer renders a full HTML document to PDF bytes in an
// offscreen browser context. Implementations acquire and release
// their rendering engine within a single call: never reused across
// calls, never shared across requests.
type PDFRenderer interface {
	RenderPDF(ctx context.Context, html string) ([]byte, error)
}

// Backends aggregates the optional conversion backends. Nil fields
// mean the backend is absent; the capability registry reports the
// same information by name.
type Backends struct {
	Markdown     MarkdownRenderer
	HTMLMarkdown HTMLMarkdownConverter
	DocxExtract  DocxExtractor
	DocxGenerate DocxGenerator
	PDFExtract   PDFExtractor
	PDFRender    PDFRenderer
}

// Availability derives the backend-availability mapping from the
// wired backends.
func (b *Backends) Availability() domain.Availability {
	if b == nil {
		b = &Backends{}
	}
	return domain.Availability{
		domain.BackendMarkdown:     b.Markdown != nil,
		domain.BackendHTMLMarkdown: b.HTMLMarkdown != nil,
		domain.BackendDocxExtract:  b.DocxExtract != nil,
		domain.BackendDocxGenerate: b.DocxGenerate != nil,
		domain.BackendPDFExtract:   b.PDFExtract != nil,
		domain.BackendPDFRender:    b.PDFRender != nil,
	}
}
