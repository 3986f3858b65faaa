package services

import (
	"fmt"
	"strings"

	"github.com/inkwell-labs/inkwell-cli/internal/core/domain"
	"github.com/inkwell-labs/inkwell-cli/internal/core/ports/driving"
)

// Ensure Capabilities implements the interface.
var _ driving.CapabilityService = (*Capabilities)(nil)

// Capabilities reports the declared format sets and the live
// backend-availability mapping. Pure query; absence of a backend is
// a normal state, not an error.
type Capabilities struct {
	avail domain.Availability
}

// NewCapabilities creates a capability service over an availability
// mapping computed at startup.
func NewCapabilities(avail domain.Availability) *Capabilities {
	return &Capabilities{avail: avail}
}

// Availability returns the backend-availability mapping.
func (c *Capabilities) Availability() domain.Availability {
	return c.avail
}

// backendPurposes describes each backend in the capability report.
var backendPurposes = map[string]string{
	domain.BackendMarkdown:     "Markdown to HTML rendering",
	domain.BackendHTMLMarkdown: "HTML to Markdown conversion",
	domain.BackendDocxExtract:  "DOCX text extraction",
	domain.BackendDocxGenerate: "DOCX generation",
	domain.BackendPDFExtract:   "PDF text extraction",
	domain.BackendPDFRender:    "PDF rendering",
}

// Report renders the deterministic capability listing with
// installation guidance.
func (c *Capabilities) Report() string {
	var b strings.Builder
	b.WriteString("Document Converter - Supported Formats\n")
	b.WriteString(strings.Repeat("=", 40) + "\n\n")

	fmt.Fprintf(&b, "Input Formats: %s\n", domain.FormatNames(domain.InputFormats()))
	fmt.Fprintf(&b, "Output Formats: %s\n\n", domain.FormatNames(domain.OutputFormats()))

	b.WriteString("Conversion Backends:\n")
	b.WriteString(strings.Repeat("-", 20) + "\n")
	for _, name := range domain.BackendNames {
		status := "✗ not available"
		if c.avail.Has(name) {
			status = "✓ available"
		}
		fmt.Fprintf(&b, "%s (%s): %s\n", name, backendPurposes[name], status)
	}

	b.WriteString("\nInstallation Guidance:\n")
	b.WriteString(strings.Repeat("-", 20) + "\n")
	b.WriteString("pdftotext: install poppler-utils (apt install poppler-utils / brew install poppler)\n")
	b.WriteString("headless-chromium: install Chrome or Chromium, or set backends.browser_path in config\n")

	b.WriteString("\nNotes:\n")
	b.WriteString("- Binary formats (pdf, docx) require base64-encoded content\n")
	b.WriteString("- Conversions without a structured backend fall back to lossy heuristics\n")
	b.WriteString("- RTF output is not implemented\n")

	return b.String()
}
