package services

import (
	"fmt"
	"html"
	"regexp"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Pre-compiled regular expressions for the heuristic paths.
var (
	scriptTag   = regexp.MustCompile(`(?is)<script[^>]*>.*?</script>`)
	styleTag    = regexp.MustCompile(`(?is)<style[^>]*>.*?</style>`)
	allTags     = regexp.MustCompile(`<[^>]+>`)
	whitespace  = regexp.MustCompile(`\s+`)
	spacesTabs  = regexp.MustCompile(`[ \t]+`)
	fencedCode  = regexp.MustCompile("(?s)```[a-zA-Z0-9]*\n?(.*?)```")
	inlineCode  = regexp.MustCompile("`([^`]+)`")
	boldText    = regexp.MustCompile(`\*\*([^*]+)\*\*`)
	italicText  = regexp.MustCompile(`\*([^*]+)\*`)
	mdStripping = strings.NewReplacer("#", "", "*", "", "_", "", "`", "", "[", "", "]", "", "(", "", ")", "")
)

// entitySubs is the fixed, ordered entity decode sequence applied
// after tag stripping. Only these five standard entities (plus
// nbsp) are decoded; anything else passes through untouched.
var entitySubs = []struct{ from, to string }{
	{"&nbsp;", " "},
	{"&amp;", "&"},
	{"&lt;", "<"},
	{"&gt;", ">"},
	{"&quot;", `"`},
	{"&#39;", "'"},
}

// titleCaser title-cases promoted headings. English rules are close
// enough for a lossy heuristic.
var titleCaser = cases.Title(language.English)

// isShoutingLine reports whether a line is entirely uppercase and
// longer than 3 characters. Such lines are promoted to level-1
// headings. The length bound is strict: "ABC" is not a heading,
// "TEST" is.
func isShoutingLine(s string) bool {
	if utf8.RuneCountInString(s) <= 3 {
		return false
	}
	return s == strings.ToUpper(s) && s != strings.ToLower(s)
}

// isLabelLine reports whether a line ends in a colon. Such lines are
// promoted to level-2 headings with the colon removed.
func isLabelLine(s string) bool {
	return s != "" && strings.HasSuffix(s, ":")
}

// textToMarkdown applies the heading heuristic to plain text. Lines
// are trimmed; blank lines stay blank; shouting lines become level-1
// headings with title-cased text; label lines become level-2
// headings; everything else passes through verbatim.
func textToMarkdown(text string) string {
	lines := strings.Split(text, "\n")
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSpace(line)
		switch {
		case line == "":
			out = append(out, "")
		case isShoutingLine(line):
			out = append(out, "# "+titleCaser.String(line))
		case isLabelLine(line):
			out = append(out, "## "+strings.TrimSuffix(line, ":"))
		default:
			out = append(out, line)
		}
	}
	return strings.Join(out, "\n")
}

// markdownToText strips Markdown punctuation and collapses
// horizontal whitespace, preserving line structure. Heading
// semantics are lost; this is lossy by design.
func markdownToText(md string) string {
	stripped := mdStripping.Replace(md)
	lines := strings.Split(stripped, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(spacesTabs.ReplaceAllString(line, " "))
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}

// stripHTMLToText reduces HTML to plain text via a fixed ordered
// sequence of substitutions: drop script and style blocks, strip the
// remaining tags, decode the five standard entities, then collapse
// whitespace runs to single spaces and trim.
func stripHTMLToText(content string) string {
	content = scriptTag.ReplaceAllString(content, "")
	content = styleTag.ReplaceAllString(content, "")
	content = allTags.ReplaceAllString(content, "")
	for _, sub := range entitySubs {
		content = strings.ReplaceAll(content, sub.from, sub.to)
	}
	content = whitespace.ReplaceAllString(content, " ")
	return strings.TrimSpace(content)
}

// htmlDocumentTemplate wraps converted fragments into a standalone
// document. The inline stylesheet covers the elements the Markdown
// renderer emits.
const htmlDocumentTemplate = `<!DOCTYPE html>
<html>
<head>
    <meta charset="utf-8">
    <title>Converted Document</title>
    <style>
        body { font-family: Arial, sans-serif; margin: 40px; line-height: 1.6; }
        code { background-color: #f4f4f4; padding: 2px 4px; border-radius: 3px; }
        pre { background-color: #f4f4f4; padding: 10px; border-radius: 5px; overflow-x: auto; }
        blockquote { border-left: 4px solid #ddd; margin: 0; padding-left: 20px; color: #666; }
    </style>
</head>
<body>
%s
</body>
</html>`

// wrapHTMLDocument embeds an HTML fragment in the fixed document
// template.
func wrapHTMLDocument(fragment string) string {
	return fmt.Sprintf(htmlDocumentTemplate, strings.TrimRight(fragment, "\n"))
}

// textToHTML escapes plain text, folds blank-line separated chunks
// into paragraphs with internal newlines as line breaks, and wraps
// the result in the document template.
func textToHTML(text string) string {
	escaped := html.EscapeString(text)
	var paragraphs []string
	for _, para := range strings.Split(escaped, "\n\n") {
		if strings.TrimSpace(para) == "" {
			continue
		}
		paragraphs = append(paragraphs, "<p>"+strings.ReplaceAll(para, "\n", "<br>")+"</p>")
	}
	return wrapHTMLDocument(strings.Join(paragraphs, "\n"))
}

// fallbackMarkdownHTML is the minimal substitution pass used when
// the structured Markdown renderer is absent. It handles #/##/###
// headings, bold, italic, fenced and inline code, and paragraph
// folding. Fidelity is intentionally lower than the real renderer.
func fallbackMarkdownHTML(md string) string {
	// Lift fenced code out first so its newlines survive the
	// paragraph folding below.
	var codeBlocks []string
	out := fencedCode.ReplaceAllStringFunc(md, func(m string) string {
		sub := fencedCode.FindStringSubmatch(m)
		codeBlocks = append(codeBlocks, "<pre><code>"+sub[1]+"</code></pre>")
		return fmt.Sprintf("\x00code%d\x00", len(codeBlocks)-1)
	})
	out = inlineCode.ReplaceAllString(out, "<code>$1</code>")
	out = boldText.ReplaceAllString(out, "<strong>$1</strong>")
	out = italicText.ReplaceAllString(out, "<em>$1</em>")

	var blocks []string
	for _, para := range strings.Split(out, "\n\n") {
		para = strings.TrimSpace(para)
		if para == "" {
			continue
		}
		lines := strings.Split(para, "\n")
		var rendered []string
		var body []string
		flush := func() {
			if len(body) > 0 {
				rendered = append(rendered, "<p>"+strings.Join(body, "<br>")+"</p>")
				body = nil
			}
		}
		for _, line := range lines {
			switch {
			case strings.HasPrefix(line, "### "):
				flush()
				rendered = append(rendered, "<h3>"+strings.TrimPrefix(line, "### ")+"</h3>")
			case strings.HasPrefix(line, "## "):
				flush()
				rendered = append(rendered, "<h2>"+strings.TrimPrefix(line, "## ")+"</h2>")
			case strings.HasPrefix(line, "# "):
				flush()
				rendered = append(rendered, "<h1>"+strings.TrimPrefix(line, "# ")+"</h1>")
			case strings.HasPrefix(line, "\x00code"):
				flush()
				rendered = append(rendered, line)
			default:
				body = append(body, line)
			}
		}
		flush()
		blocks = append(blocks, strings.Join(rendered, "\n"))
	}

	result := strings.Join(blocks, "\n")
	for i, block := range codeBlocks {
		result = strings.ReplaceAll(result, fmt.Sprintf("\x00code%d\x00", i), block)
	}
	return result
}
