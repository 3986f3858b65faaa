package services

import (
	"context"

	"github.com/inkwell-labs/inkwell-cli/internal/core/domain"
)

// mockMarkdownRenderer is a mock implementation of driven.MarkdownRenderer.
type mockMarkdownRenderer struct {
	out string
	err error
}

func (m *mockMarkdownRenderer) RenderHTML(_ context.Context, _ string) (string, error) {
	return m.out, m.err
}

// mockHTMLMarkdown is a mock implementation of driven.HTMLMarkdownConverter.
type mockHTMLMarkdown struct {
	out string
	err error
}

func (m *mockHTMLMarkdown) ConvertMarkdown(_ context.Context, _ string) (string, error) {
	return m.out, m.err
}

// mockExtractor is a mock implementation of both extractor ports.
type mockExtractor struct {
	out string
	err error
}

func (m *mockExtractor) ExtractText(_ context.Context, _ []byte) (string, error) {
	return m.out, m.err
}

// mockDocxGenerator is a mock implementation of driven.DocxGenerator.
// It records the paragraphs it was handed.
type mockDocxGenerator struct {
	got []domain.DocxParagraph
	out []byte
	err error
}

func (m *mockDocxGenerator) Generate(_ context.Context, paragraphs []domain.DocxParagraph) ([]byte, error) {
	m.got = paragraphs
	return m.out, m.err
}

// mockPDFRenderer is a mock implementation of driven.PDFRenderer.
// It records the HTML it was asked to render.
type mockPDFRenderer struct {
	gotHTML string
	out     []byte
	err     error
}

func (m *mockPDFRenderer) RenderPDF(_ context.Context, html string) ([]byte, error) {
	m.gotHTML = html
	return m.out, m.err
}
