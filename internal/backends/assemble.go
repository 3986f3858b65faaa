// Package backends assembles the optional conversion backends.
// Probing happens exactly once, at process start; the resulting
// backend set (and the availability map derived from it) is treated
// as immutable for the process lifetime.
package backends

import (
	"os"
	"os/exec"

	"github.com/go-rod/rod/lib/launcher"

	"github.com/inkwell-labs/inkwell-cli/internal/backends/docx"
	"github.com/inkwell-labs/inkwell-cli/internal/backends/htmlmd"
	"github.com/inkwell-labs/inkwell-cli/internal/backends/markdown"
	"github.com/inkwell-labs/inkwell-cli/internal/backends/pdf"
	"github.com/inkwell-labs/inkwell-cli/internal/core/domain"
	"github.com/inkwell-labs/inkwell-cli/internal/core/ports/driven"
	"github.com/inkwell-labs/inkwell-cli/internal/logger"
)

// Options configures backend assembly.
type Options struct {
	// Disabled lists backend names to leave unwired regardless of
	// probe results.
	Disabled []string

	// PdftotextPath overrides the pdftotext binary (default: search
	// PATH).
	PdftotextPath string

	// BrowserPath overrides the Chrome/Chromium binary (default: the
	// rod launcher's lookup).
	BrowserPath string
}

// Assemble probes the environment and wires the available backends.
// Compiled-in backends are always present unless disabled; the
// external ones (pdftotext, a browser binary) are best-effort probed
// and simply left unwired when absent.
func Assemble(opts Options) *driven.Backends {
	disabled := make(map[string]bool, len(opts.Disabled))
	for _, name := range opts.Disabled {
		disabled[name] = true
	}

	logger.Section("Backend Probe")
	b := &driven.Backends{}

	if !disabled[domain.BackendMarkdown] {
		b.Markdown = markdown.New()
	}
	if !disabled[domain.BackendHTMLMarkdown] {
		b.HTMLMarkdown = htmlmd.New()
	}
	if !disabled[domain.BackendDocxExtract] {
		b.DocxExtract = docx.NewExtractor()
	}
	if !disabled[domain.BackendDocxGenerate] {
		b.DocxGenerate = docx.NewGenerator()
	}

	if !disabled[domain.BackendPDFExtract] {
		bin := opts.PdftotextPath
		if bin == "" {
			bin = "pdftotext"
		}
		if resolved, err := exec.LookPath(bin); err == nil {
			b.PDFExtract = pdf.NewExtractor(resolved)
		} else {
			logger.Warn("pdftotext not found, PDF input disabled\n%s", pdf.InstallInstructions())
		}
	}

	if !disabled[domain.BackendPDFRender] {
		if bin, ok := findBrowser(opts.BrowserPath); ok {
			b.PDFRender = pdf.NewRenderer(bin)
		} else {
			logger.Warn("no Chrome/Chromium binary found, PDF output disabled")
		}
	}

	for name, present := range b.Availability() {
		logger.Debug("backend %s: present=%t", name, present)
	}
	return b
}

// findBrowser resolves the browser binary, honouring an explicit
// override before the launcher's own search.
func findBrowser(override string) (string, bool) {
	if override != "" {
		if _, err := os.Stat(override); err == nil {
			return override, true
		}
		logger.Warn("configured browser %s not found", override)
		return "", false
	}
	return launcher.LookPath()
}
