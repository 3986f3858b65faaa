package services

import (
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"

	"github.com/inkwell-labs/inkwell-cli/internal/core/domain"
)

// blockSelector lists the elements treated as paragraph boundaries
// when reducing HTML for document generation.
const blockSelector = "p, h1, h2, h3, h4, h5, h6, li, pre, blockquote, td"

// docxParagraphs reduces a working representation to the plain
// paragraphs handed to the DOCX generator. Content is split on
// blank-line boundaries; paragraphs under 50 characters that are
// all-uppercase or carry a heading marker are flagged as headings.
func docxParagraphs(rep domain.WorkingRep) []domain.DocxParagraph {
	content := rep.Content
	if rep.Kind == domain.KindHTML {
		content = htmlToParagraphText(content)
	}

	var paras []domain.DocxParagraph
	for _, para := range strings.Split(content, "\n\n") {
		para = strings.TrimSpace(para)
		if para == "" {
			continue
		}

		heading := utf8.RuneCountInString(para) < 50 &&
			(para == strings.ToUpper(para) && para != strings.ToLower(para) || strings.HasPrefix(para, "#"))

		text := para
		if rep.Kind == domain.KindMarkdown {
			text = markdownToText(text)
		}
		if heading {
			text = strings.TrimSpace(strings.TrimLeft(text, "# "))
		}
		paras = append(paras, domain.DocxParagraph{Text: text, Heading: heading})
	}
	return paras
}

// htmlToParagraphText extracts readable text from HTML with
// blank-line paragraph separation, preferring the DOM over regex
// stripping so block structure survives the reduction.
func htmlToParagraphText(content string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(content))
	if err != nil {
		return stripHTMLToText(content)
	}

	doc.Find("script, style, noscript").Remove()

	var blocks []string
	doc.Find(blockSelector).Each(func(_ int, sel *goquery.Selection) {
		// Skip containers that hold other blocks, to avoid duplicates.
		if sel.Find(blockSelector).Length() > 0 {
			return
		}
		if text := strings.TrimSpace(sel.Text()); text != "" {
			blocks = append(blocks, text)
		}
	})

	if len(blocks) == 0 {
		return strings.TrimSpace(doc.Text())
	}
	return strings.Join(blocks, "\n\n")
}
