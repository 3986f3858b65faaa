package services

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/inkwell-labs/inkwell-cli/internal/core/domain"
	"github.com/inkwell-labs/inkwell-cli/internal/core/ports/driven"
	"github.com/inkwell-labs/inkwell-cli/internal/core/ports/driving"
	"github.com/inkwell-labs/inkwell-cli/internal/logger"
)

// Ensure Converter implements the interface.
var _ driving.ConversionService = (*Converter)(nil)

// Converter converts documents between the supported formats by
// normalising input onto one of three working kinds and converting
// that to the target format. Optional backends are consulted through
// the driven ports; where a backend is absent the converter degrades
// to a heuristic or fails with domain.ErrBackendUnavailable.
type Converter struct {
	backends *driven.Backends
	avail    domain.Availability
}

// NewConverter creates a converter over the given backends. The
// availability mapping is derived once here and never mutated.
func NewConverter(backends *driven.Backends) *Converter {
	if backends == nil {
		backends = &driven.Backends{}
	}
	return &Converter{
		backends: backends,
		avail:    backends.Availability(),
	}
}

// Availability returns the backend-availability mapping the
// converter was constructed with.
func (c *Converter) Availability() domain.Availability {
	return c.avail
}

// Convert converts a single document.
//
// Both format identifiers are validated before anything else; an
// identity conversion of an unsupported identifier is an error, not
// a passthrough. When input and output formats match, the content is
// returned unchanged, byte for byte, without touching normalisation
// or any backend. Every failure below this boundary is re-wrapped
// into one of the domain sentinel errors.
func (c *Converter) Convert(ctx context.Context, req domain.ConversionRequest) (string, error) {
	inFmt, err := domain.ParseFormat(string(req.InputFormat))
	if err != nil {
		return "", fmt.Errorf("input format: %w", err)
	}
	outFmt, err := domain.ParseFormat(string(req.OutputFormat))
	if err != nil {
		return "", fmt.Errorf("output format: %w", err)
	}

	id := uuid.New().String()[:8]
	logger.Debug("[%s] convert %s -> %s (%s)", id, inFmt, outFmt, displayName(req.Filename))

	if inFmt == outFmt {
		logger.Debug("[%s] identity conversion, short-circuit", id)
		return req.Content, nil
	}

	rep, err := c.normalise(ctx, req.Content, inFmt)
	if err != nil {
		return "", wrapConversionErr(err)
	}
	logger.Debug("[%s] normalised %s to kind %s", id, inFmt, rep.Kind)

	out, err := c.render(ctx, rep, outFmt)
	if err != nil {
		return "", wrapConversionErr(err)
	}
	logger.Debug("[%s] produced %d bytes of %s", id, len(out), outFmt)
	return out, nil
}

// normalise maps raw input content onto one of the three canonical
// working kinds, extracting text from binary formats first.
func (c *Converter) normalise(ctx context.Context, content string, format domain.Format) (domain.WorkingRep, error) {
	switch format {
	case domain.FormatTxt:
		return domain.WorkingRep{Kind: domain.KindText, Content: content}, nil
	case domain.FormatMd:
		return domain.WorkingRep{Kind: domain.KindMarkdown, Content: content}, nil
	case domain.FormatHTML:
		return domain.WorkingRep{Kind: domain.KindHTML, Content: content}, nil
	case domain.FormatDocx:
		if c.backends.DocxExtract == nil {
			return domain.WorkingRep{}, fmt.Errorf("%w: DOCX input requires the %s backend",
				domain.ErrBackendUnavailable, domain.BackendDocxExtract)
		}
		data, err := decodeBinary(content)
		if err != nil {
			return domain.WorkingRep{}, err
		}
		text, err := c.backends.DocxExtract.ExtractText(ctx, data)
		if err != nil {
			return domain.WorkingRep{}, err
		}
		return domain.WorkingRep{Kind: domain.KindText, Content: text}, nil
	case domain.FormatPDF:
		if c.backends.PDFExtract == nil {
			return domain.WorkingRep{}, fmt.Errorf("%w: PDF input requires the %s backend",
				domain.ErrBackendUnavailable, domain.BackendPDFExtract)
		}
		data, err := decodeBinary(content)
		if err != nil {
			return domain.WorkingRep{}, err
		}
		text, err := c.backends.PDFExtract.ExtractText(ctx, data)
		if err != nil {
			return domain.WorkingRep{}, err
		}
		return domain.WorkingRep{Kind: domain.KindText, Content: text}, nil
	case domain.FormatRTF:
		// No structured RTF extraction; treat as opaque text.
		return domain.WorkingRep{Kind: domain.KindText, Content: content}, nil
	default:
		return domain.WorkingRep{}, fmt.Errorf("%w: '%s'", domain.ErrUnsupportedFormat, format)
	}
}

// render converts a working representation to the target format.
func (c *Converter) render(ctx context.Context, rep domain.WorkingRep, target domain.Format) (string, error) {
	switch target {
	case domain.FormatTxt:
		return c.toText(rep), nil
	case domain.FormatMd:
		return c.toMarkdown(ctx, rep)
	case domain.FormatHTML:
		return c.toHTML(ctx, rep)
	case domain.FormatPDF:
		return c.toPDF(ctx, rep)
	case domain.FormatDocx:
		return c.toDocx(ctx, rep)
	case domain.FormatRTF:
		return "", fmt.Errorf("%w: RTF output is not supported", domain.ErrNotImplemented)
	default:
		return "", fmt.Errorf("%w: '%s'", domain.ErrUnsupportedFormat, target)
	}
}

// toText reduces a working representation to plain text. There is no
// structured backend for this path; both the HTML and Markdown
// reductions are heuristic by design.
func (c *Converter) toText(rep domain.WorkingRep) string {
	switch rep.Kind {
	case domain.KindHTML:
		return stripHTMLToText(rep.Content)
	case domain.KindMarkdown:
		return markdownToText(rep.Content)
	default:
		return rep.Content
	}
}

// toMarkdown converts a working representation to Markdown, using
// the structured HTML backend when present.
func (c *Converter) toMarkdown(ctx context.Context, rep domain.WorkingRep) (string, error) {
	switch rep.Kind {
	case domain.KindText:
		return textToMarkdown(rep.Content), nil
	case domain.KindHTML:
		if c.backends.HTMLMarkdown != nil {
			return c.backends.HTMLMarkdown.ConvertMarkdown(ctx, rep.Content)
		}
		// Degrade: strip to text, then re-run the heading heuristic.
		return textToMarkdown(stripHTMLToText(rep.Content)), nil
	default:
		return rep.Content, nil
	}
}

// toHTML converts a working representation to a full HTML document.
func (c *Converter) toHTML(ctx context.Context, rep domain.WorkingRep) (string, error) {
	switch rep.Kind {
	case domain.KindMarkdown:
		if c.backends.Markdown != nil {
			fragment, err := c.backends.Markdown.RenderHTML(ctx, rep.Content)
			if err != nil {
				return "", err
			}
			return wrapHTMLDocument(fragment), nil
		}
		return wrapHTMLDocument(fallbackMarkdownHTML(rep.Content)), nil
	case domain.KindText:
		return textToHTML(rep.Content), nil
	default:
		return rep.Content, nil
	}
}

// toPDF renders the working representation as a PDF via the headless
// rendering backend, reusing the HTML path for text and Markdown
// kinds. The result is base64-encoded.
func (c *Converter) toPDF(ctx context.Context, rep domain.WorkingRep) (string, error) {
	if c.backends.PDFRender == nil {
		return "", fmt.Errorf("%w: PDF output requires the %s backend; install Chrome or Chromium",
			domain.ErrBackendUnavailable, domain.BackendPDFRender)
	}

	html := rep.Content
	if rep.Kind != domain.KindHTML {
		var err error
		html, err = c.toHTML(ctx, rep)
		if err != nil {
			return "", err
		}
	}

	data, err := c.backends.PDFRender.RenderPDF(ctx, html)
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(data), nil
}

// toDocx emits the working representation as a DOCX document via the
// generation backend. The result is base64-encoded.
func (c *Converter) toDocx(ctx context.Context, rep domain.WorkingRep) (string, error) {
	if c.backends.DocxGenerate == nil {
		return "", fmt.Errorf("%w: DOCX output requires the %s backend",
			domain.ErrBackendUnavailable, domain.BackendDocxGenerate)
	}

	data, err := c.backends.DocxGenerate.Generate(ctx, docxParagraphs(rep))
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(data), nil
}

// decodeBinary decodes the base64 payload of a binary input format.
func decodeBinary(content string) ([]byte, error) {
	data, err := base64.StdEncoding.DecodeString(content)
	if err != nil {
		return nil, fmt.Errorf("%w: binary formats require base64-encoded content", domain.ErrConversionFailed)
	}
	return data, nil
}

// wrapConversionErr normalises an arbitrary failure into one of the
// domain sentinel errors. Errors already carrying a sentinel pass
// through; everything else becomes ErrConversionFailed.
func wrapConversionErr(err error) error {
	if err == nil {
		return nil
	}
	for _, sentinel := range []error{
		domain.ErrUnsupportedFormat,
		domain.ErrBackendUnavailable,
		domain.ErrNotImplemented,
		domain.ErrConversionFailed,
	} {
		if errors.Is(err, sentinel) {
			return err
		}
	}
	return fmt.Errorf("%w: %v", domain.ErrConversionFailed, err)
}

// displayName returns a filename for log lines, or a placeholder.
func displayName(filename string) string {
	if filename == "" {
		return "unnamed"
	}
	return filename
}
