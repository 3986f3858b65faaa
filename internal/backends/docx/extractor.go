// Package docx provides the DOCX backends: OOXML text extraction
// and document generation.
package docx

import (
	"archive/zip"
	"bytes"
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"strings"

	"github.com/inkwell-labs/inkwell-cli/internal/core/ports/driven"
)

// Ensure Extractor implements the interface.
var _ driven.DocxExtractor = (*Extractor)(nil)

// Extractor extracts plain text from DOCX bytes by reading
// word/document.xml out of the OOXML archive.
type Extractor struct{}

// NewExtractor creates a DOCX extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// ExtractText extracts the paragraph text of a DOCX document, one
// line per paragraph.
func (e *Extractor) ExtractText(_ context.Context, data []byte) (string, error) {
	reader, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("opening docx archive: %w", err)
	}

	for _, file := range reader.File {
		if file.Name != "word/document.xml" {
			continue
		}

		rc, err := file.Open()
		if err != nil {
			return "", fmt.Errorf("opening document.xml: %w", err)
		}

		content, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			return "", fmt.Errorf("reading document.xml: %w", err)
		}

		return parseDocumentXML(content)
	}

	return "", fmt.Errorf("docx archive has no word/document.xml")
}

// documentXML represents the structure of word/document.xml.
// Element names match by local name, so OOXML namespaces are
// irrelevant here.
type documentXML struct {
	Body struct {
		Paragraphs []paragraph `xml:"p"`
	} `xml:"body"`
}

type paragraph struct {
	Runs []run `xml:"r"`
}

type run struct {
	Text []textElement `xml:"t"`
}

type textElement struct {
	Content string `xml:",chardata"`
}

// parseDocumentXML extracts text content from the document XML.
func parseDocumentXML(content []byte) (string, error) {
	var doc documentXML
	if err := xml.Unmarshal(content, &doc); err != nil {
		return "", fmt.Errorf("parsing document.xml: %w", err)
	}

	var result strings.Builder
	for i, para := range doc.Body.Paragraphs {
		if i > 0 {
			result.WriteString("\n")
		}
		for _, r := range para.Runs {
			for _, text := range r.Text {
				result.WriteString(text.Content)
			}
		}
	}

	return strings.TrimSpace(result.String()), nil
}
