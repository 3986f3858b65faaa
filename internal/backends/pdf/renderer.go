package pdf

import (
	"context"
	"fmt"
	"io"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"

	"github.com/inkwell-labs/inkwell-cli/internal/core/ports/driven"
)

// A4 paper size in inches, with 1-inch margins.
const (
	paperWidthIn  = 8.27
	paperHeightIn = 11.69
	marginIn      = 1.0
)

// Ensure Renderer implements the interface.
var _ driven.PDFRenderer = (*Renderer)(nil)

// Renderer renders HTML to PDF in an offscreen Chromium context.
// Each call launches its own browser and tears it down before
// returning, on success and failure alike; instances are never
// reused across calls or shared across requests.
type Renderer struct {
	bin string
}

// NewRenderer creates a PDF renderer using the given browser binary
// (empty means the launcher's own lookup).
func NewRenderer(bin string) *Renderer {
	return &Renderer{bin: bin}
}

// RenderPDF loads the HTML document into a headless page sized to A4
// with 1-inch margins and returns the printed PDF bytes.
func (r *Renderer) RenderPDF(ctx context.Context, html string) ([]byte, error) {
	l := launcher.New().Headless(true)
	if r.bin != "" {
		l = l.Bin(r.bin)
	}

	controlURL, err := l.Launch()
	if err != nil {
		return nil, fmt.Errorf("launching browser: %w", err)
	}
	defer l.Cleanup()

	browser := rod.New().ControlURL(controlURL).Context(ctx)
	if err := browser.Connect(); err != nil {
		return nil, fmt.Errorf("connecting to browser: %w", err)
	}
	defer browser.Close() //nolint:errcheck

	page, err := browser.Page(proto.TargetCreateTarget{})
	if err != nil {
		return nil, fmt.Errorf("opening page: %w", err)
	}
	defer page.Close() //nolint:errcheck

	if err := page.SetDocumentContent(html); err != nil {
		return nil, fmt.Errorf("loading document: %w", err)
	}
	if err := page.WaitLoad(); err != nil {
		return nil, fmt.Errorf("waiting for document: %w", err)
	}

	in := func(v float64) *float64 { return &v }
	stream, err := page.PDF(&proto.PagePrintToPDF{
		PrintBackground: true,
		PaperWidth:      in(paperWidthIn),
		PaperHeight:     in(paperHeightIn),
		MarginTop:       in(marginIn),
		MarginBottom:    in(marginIn),
		MarginLeft:      in(marginIn),
		MarginRight:     in(marginIn),
	})
	if err != nil {
		return nil, fmt.Errorf("printing to PDF: %w", err)
	}
	defer stream.Close() //nolint:errcheck

	data, err := io.ReadAll(stream)
	if err != nil {
		return nil, fmt.Errorf("reading PDF stream: %w", err)
	}
	return data, nil
}
