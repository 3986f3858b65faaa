package services

import (
	"context"
	"encoding/base64"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inkwell-labs/inkwell-cli/internal/core/domain"
	"github.com/inkwell-labs/inkwell-cli/internal/core/ports/driven"
)

func convert(t *testing.T, c *Converter, content, in, out string) (string, error) {
	t.Helper()
	return c.Convert(context.Background(), domain.ConversionRequest{
		Content:      content,
		InputFormat:  domain.Format(in),
		OutputFormat: domain.Format(out),
	})
}

func TestConvert_IdentityReturnsContentUnchanged(t *testing.T) {
	// No backends at all: identity conversion must still work for
	// every format, byte for byte.
	c := NewConverter(nil)
	content := "raw \x00 content\nwith lines\n"

	for _, f := range []string{"txt", "md", "html", "docx", "pdf", "rtf"} {
		t.Run(f, func(t *testing.T) {
			out, err := convert(t, c, content, f, f)
			require.NoError(t, err)
			assert.Equal(t, content, out)
		})
	}
}

func TestConvert_ValidatesFormatsBeforeIdentity(t *testing.T) {
	c := NewConverter(nil)

	_, err := convert(t, c, "data", "doc", "doc")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUnsupportedFormat)
	assert.Contains(t, err.Error(), "txt, md, html, docx, pdf, rtf")
}

func TestConvert_UnsupportedFormats(t *testing.T) {
	c := NewConverter(nil)

	t.Run("input", func(t *testing.T) {
		_, err := convert(t, c, "x", "xml", "txt")
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrUnsupportedFormat)
		assert.Contains(t, err.Error(), "input format")
		assert.Contains(t, err.Error(), "'xml'")
	})

	t.Run("output", func(t *testing.T) {
		_, err := convert(t, c, "x", "txt", "epub")
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrUnsupportedFormat)
		assert.Contains(t, err.Error(), "output format")
	})
}

func TestConvert_NormalisesFormatCase(t *testing.T) {
	c := NewConverter(nil)

	out, err := convert(t, c, "plain", " TXT ", "MD")
	require.NoError(t, err)
	assert.Equal(t, "plain", out)
}

func TestConvert_TextToMarkdownRoundTrip(t *testing.T) {
	c := NewConverter(nil)

	md, err := convert(t, c, "Summary:", "txt", "md")
	require.NoError(t, err)
	assert.Equal(t, "## Summary", md)

	// Converting back strips the heading marks; the heading
	// semantics are lost, which is expected and non-reversible.
	text, err := convert(t, c, md, "md", "txt")
	require.NoError(t, err)
	assert.Equal(t, "Summary", text)
}

func TestConvert_ToTextIdempotent(t *testing.T) {
	c := NewConverter(nil)
	plain := "just a plain line\n\nand another"

	once := c.toText(domain.WorkingRep{Kind: domain.KindText, Content: plain})
	twice := c.toText(domain.WorkingRep{Kind: domain.KindText, Content: once})
	assert.Equal(t, plain, once)
	assert.Equal(t, once, twice)
}

func TestConvert_HTMLToTextWithoutBackends(t *testing.T) {
	c := NewConverter(nil)

	out, err := convert(t, c, "<p>Hello &amp; welcome</p>", "html", "txt")
	require.NoError(t, err)
	assert.Equal(t, "Hello & welcome", out)
}

func TestConvert_HTMLToMarkdown(t *testing.T) {
	t.Run("prefers structured backend", func(t *testing.T) {
		c := NewConverter(&driven.Backends{
			HTMLMarkdown: &mockHTMLMarkdown{out: "# Structured"},
		})

		out, err := convert(t, c, "<h1>Anything</h1>", "html", "md")
		require.NoError(t, err)
		assert.Equal(t, "# Structured", out)
	})

	t.Run("falls back to strip and heuristic", func(t *testing.T) {
		c := NewConverter(nil)

		out, err := convert(t, c, "<p>OVERVIEW</p>", "html", "md")
		require.NoError(t, err)
		assert.Equal(t, "# Overview", out)
	})
}

func TestConvert_MarkdownToHTML(t *testing.T) {
	t.Run("structured backend output is wrapped in template", func(t *testing.T) {
		c := NewConverter(&driven.Backends{
			Markdown: &mockMarkdownRenderer{out: "<h1>Title</h1>\n"},
		})

		out, err := convert(t, c, "# Title", "md", "html")
		require.NoError(t, err)
		assert.Contains(t, out, "<!DOCTYPE html>")
		assert.Contains(t, out, `<meta charset="utf-8">`)
		assert.Contains(t, out, "<h1>Title</h1>")
		assert.Contains(t, out, "blockquote")
	})

	t.Run("fallback renders headings and bold", func(t *testing.T) {
		c := NewConverter(nil)

		out, err := convert(t, c, "# Title\n\nSome **bold** text", "md", "html")
		require.NoError(t, err)
		assert.Contains(t, out, "<h1>Title</h1>")
		assert.Contains(t, out, "<strong>bold</strong>")
		assert.Contains(t, out, "<!DOCTYPE html>")
	})
}

func TestConvert_TextToHTML(t *testing.T) {
	c := NewConverter(nil)

	out, err := convert(t, c, "a < b\nsecond line\n\nnext para", "txt", "html")
	require.NoError(t, err)
	assert.Contains(t, out, "<p>a &lt; b<br>second line</p>")
	assert.Contains(t, out, "<p>next para</p>")
	assert.Contains(t, out, "<!DOCTYPE html>")
}

func TestConvert_DocxInput(t *testing.T) {
	t.Run("backend missing", func(t *testing.T) {
		c := NewConverter(nil)

		_, err := convert(t, c, base64.StdEncoding.EncodeToString([]byte("x")), "docx", "txt")
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrBackendUnavailable)
		assert.Contains(t, err.Error(), domain.BackendDocxExtract)
	})

	t.Run("malformed base64 wraps into conversion failure", func(t *testing.T) {
		c := NewConverter(&driven.Backends{DocxExtract: &mockExtractor{out: "text"}})

		_, err := convert(t, c, "not-base64!!!", "docx", "txt")
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrConversionFailed)
		assert.Contains(t, err.Error(), "base64")
	})

	t.Run("extracted text flows through conversion", func(t *testing.T) {
		c := NewConverter(&driven.Backends{DocxExtract: &mockExtractor{out: "CHAPTER ONE"}})

		out, err := convert(t, c, base64.StdEncoding.EncodeToString([]byte("zip")), "docx", "md")
		require.NoError(t, err)
		assert.Equal(t, "# Chapter One", out)
	})
}

func TestConvert_PDFInput(t *testing.T) {
	t.Run("backend missing", func(t *testing.T) {
		c := NewConverter(nil)

		_, err := convert(t, c, base64.StdEncoding.EncodeToString([]byte("x")), "pdf", "txt")
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrBackendUnavailable)
		assert.Contains(t, err.Error(), domain.BackendPDFExtract)
	})

	t.Run("extraction error is wrapped", func(t *testing.T) {
		c := NewConverter(&driven.Backends{PDFExtract: &mockExtractor{err: errors.New("boom")}})

		_, err := convert(t, c, base64.StdEncoding.EncodeToString([]byte("x")), "pdf", "txt")
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrConversionFailed)
		assert.Contains(t, err.Error(), "boom")
	})
}

func TestConvert_PDFOutput(t *testing.T) {
	t.Run("backend missing names the backend", func(t *testing.T) {
		c := NewConverter(nil)

		_, err := convert(t, c, "content", "txt", "pdf")
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrBackendUnavailable)
		assert.Contains(t, err.Error(), domain.BackendPDFRender)
	})

	t.Run("markdown goes through the HTML path first", func(t *testing.T) {
		renderer := &mockPDFRenderer{out: []byte("%PDF-1.4 fake")}
		c := NewConverter(&driven.Backends{PDFRender: renderer})

		out, err := convert(t, c, "# Title", "md", "pdf")
		require.NoError(t, err)
		assert.Equal(t, base64.StdEncoding.EncodeToString([]byte("%PDF-1.4 fake")), out)
		assert.Contains(t, renderer.gotHTML, "<h1>Title</h1>")
		assert.Contains(t, renderer.gotHTML, "<!DOCTYPE html>")
	})

	t.Run("html kind is rendered directly", func(t *testing.T) {
		renderer := &mockPDFRenderer{out: []byte("pdf")}
		c := NewConverter(&driven.Backends{PDFRender: renderer})

		_, err := convert(t, c, "<html><body>x</body></html>", "html", "pdf")
		require.NoError(t, err)
		assert.Equal(t, "<html><body>x</body></html>", renderer.gotHTML)
	})
}

func TestConvert_DocxOutput(t *testing.T) {
	t.Run("backend missing", func(t *testing.T) {
		c := NewConverter(nil)

		_, err := convert(t, c, "content", "txt", "docx")
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrBackendUnavailable)
		assert.Contains(t, err.Error(), domain.BackendDocxGenerate)
	})

	t.Run("paragraph reduction marks headings", func(t *testing.T) {
		gen := &mockDocxGenerator{out: []byte("docx")}
		c := NewConverter(&driven.Backends{DocxGenerate: gen})

		out, err := convert(t, c, "INTRODUCTION\n\n"+strings.Repeat("body text ", 10), "txt", "docx")
		require.NoError(t, err)
		assert.Equal(t, base64.StdEncoding.EncodeToString([]byte("docx")), out)

		require.Len(t, gen.got, 2)
		assert.True(t, gen.got[0].Heading)
		assert.Equal(t, "INTRODUCTION", gen.got[0].Text)
		assert.False(t, gen.got[1].Heading)
	})
}

func TestConvert_RTF(t *testing.T) {
	t.Run("input is opaque text", func(t *testing.T) {
		c := NewConverter(nil)

		out, err := convert(t, c, "Notes:", "rtf", "md")
		require.NoError(t, err)
		assert.Equal(t, "## Notes", out)
	})

	t.Run("output is not implemented", func(t *testing.T) {
		c := NewConverter(nil)

		_, err := convert(t, c, "anything", "txt", "rtf")
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrNotImplemented)
	})
}

func TestConvert_BackendFaultNeverPropagatesRaw(t *testing.T) {
	c := NewConverter(&driven.Backends{
		Markdown: &mockMarkdownRenderer{err: errors.New("renderer exploded")},
	})

	_, err := convert(t, c, "# x", "md", "html")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrConversionFailed)
	assert.Contains(t, err.Error(), "renderer exploded")
}

func TestAvailability_DerivedFromBackends(t *testing.T) {
	c := NewConverter(&driven.Backends{Markdown: &mockMarkdownRenderer{}})

	avail := c.Availability()
	assert.True(t, avail.Has(domain.BackendMarkdown))
	assert.False(t, avail.Has(domain.BackendPDFRender))
	assert.Len(t, avail, len(domain.BackendNames))
}
