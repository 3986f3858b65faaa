// Package pdf provides the PDF backends: text extraction via the
// pdftotext command and rendering via headless Chromium.
package pdf

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/inkwell-labs/inkwell-cli/internal/core/ports/driven"
)

// Ensure Extractor implements the interface.
var _ driven.PDFExtractor = (*Extractor)(nil)

// Extractor extracts plain text from PDF bytes by shelling out to
// pdftotext. The binary's presence is probed at startup; an
// Extractor is only constructed when the probe succeeds.
type Extractor struct {
	runner driven.CommandRunner
	bin    string
}

// NewExtractor creates a PDF extractor using the given pdftotext
// binary (empty means "pdftotext" on PATH).
func NewExtractor(bin string) *Extractor {
	return NewExtractorWithRunner(ExecRunner{}, bin)
}

// NewExtractorWithRunner creates an extractor with an explicit
// command runner. Used in tests.
func NewExtractorWithRunner(runner driven.CommandRunner, bin string) *Extractor {
	if bin == "" {
		bin = "pdftotext"
	}
	return &Extractor{runner: runner, bin: bin}
}

// ExtractText writes the PDF to a temporary file, runs pdftotext
// against it, and returns the captured stdout.
func (e *Extractor) ExtractText(ctx context.Context, data []byte) (string, error) {
	tmp, err := os.CreateTemp("", "inkwell-*.pdf")
	if err != nil {
		return "", fmt.Errorf("creating temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return "", fmt.Errorf("writing temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return "", fmt.Errorf("closing temp file: %w", err)
	}

	// "-" sends the extracted text to stdout.
	out, err := e.runner.Run(ctx, e.bin, "-layout", "-enc", "UTF-8", tmp.Name(), "-")
	if err != nil {
		return "", fmt.Errorf("pdftotext: %w", err)
	}
	return strings.TrimSpace(string(out)), nil
}

// InstallInstructions describes how to install pdftotext.
func InstallInstructions() string {
	return strings.Join([]string{
		"pdftotext is part of the poppler utilities:",
		"  macOS:  brew install poppler",
		"  Debian: apt install poppler-utils",
		"  Fedora: dnf install poppler-utils",
	}, "\n")
}

// ExecRunner runs commands with os/exec.
type ExecRunner struct{}

// Run executes the command and returns its stdout.
func (ExecRunner) Run(ctx context.Context, name string, args ...string) ([]byte, error) {
	return exec.CommandContext(ctx, name, args...).Output()
}
