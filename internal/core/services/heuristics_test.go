package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsShoutingLine(t *testing.T) {
	tests := []struct {
		name     string
		line     string
		expected bool
	}{
		{name: "four uppercase characters", line: "TEST", expected: true},
		{name: "exactly three characters is not a heading", line: "ABC", expected: false},
		{name: "uppercase words", line: "TABLE OF CONTENTS", expected: true},
		{name: "mixed case", line: "Test", expected: false},
		{name: "lowercase", line: "test", expected: false},
		{name: "digits only have no case", line: "1234", expected: false},
		{name: "uppercase with digits", line: "PART 2", expected: true},
		{name: "empty", line: "", expected: false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, isShoutingLine(tc.line))
		})
	}
}

func TestIsLabelLine(t *testing.T) {
	assert.True(t, isLabelLine("Summary:"))
	assert.True(t, isLabelLine("Background info:"))
	assert.False(t, isLabelLine("Summary"))
	assert.False(t, isLabelLine(""))
	assert.False(t, isLabelLine("not: really"))
}

func TestTextToMarkdown(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "shouting line becomes level-1 heading",
			input:    "TEST",
			expected: "# Test",
		},
		{
			name:     "three-character shout passes through",
			input:    "ABC",
			expected: "ABC",
		},
		{
			name:     "label line becomes level-2 heading",
			input:    "Summary:",
			expected: "## Summary",
		},
		{
			name:     "blank lines stay blank",
			input:    "one\n\ntwo",
			expected: "one\n\ntwo",
		},
		{
			name:     "lines are trimmed",
			input:    "  indented  ",
			expected: "indented",
		},
		{
			name:     "mixed document",
			input:    "PROJECT NOTES\n\nGoals:\nship the thing",
			expected: "# Project Notes\n\n## Goals\nship the thing",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, textToMarkdown(tc.input))
		})
	}
}

func TestMarkdownToText(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "heading marks stripped", input: "## Summary", expected: "Summary"},
		{name: "emphasis stripped", input: "some **bold** and *italic* and `code`", expected: "some bold and italic and code"},
		{name: "links reduced to text", input: "[label](https://example.com)", expected: "labelhttps://example.com"},
		{name: "lines preserved", input: "# One\n\ntwo", expected: "One\n\ntwo"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, markdownToText(tc.input))
		})
	}
}

func TestStripHTMLToText(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "entities decoded",
			input:    "<p>Hello &amp; welcome</p>",
			expected: "Hello & welcome",
		},
		{
			name:     "script and style blocks removed entirely",
			input:    "<script>alert(1)</script><style>body{}</style><p>kept</p>",
			expected: "kept",
		},
		{
			name:     "whitespace collapsed",
			input:    "<div>a</div>\n\n  <div>b</div>",
			expected: "a b",
		},
		{
			name:     "remaining entities",
			input:    "1 &lt; 2 &gt; 0,&nbsp;&quot;q&quot;, it&#39;s",
			expected: `1 < 2 > 0, "q", it's`,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, stripHTMLToText(tc.input))
		})
	}
}

func TestStripHTMLToText_Idempotent(t *testing.T) {
	once := stripHTMLToText("<p>plain enough</p>")
	assert.Equal(t, once, stripHTMLToText(once))
}

func TestFallbackMarkdownHTML(t *testing.T) {
	out := fallbackMarkdownHTML("# H1\n## H2\n### H3\n\npara with `code` and *em*\n\n```\nblock\n```")

	assert.Contains(t, out, "<h1>H1</h1>")
	assert.Contains(t, out, "<h2>H2</h2>")
	assert.Contains(t, out, "<h3>H3</h3>")
	assert.Contains(t, out, "<code>code</code>")
	assert.Contains(t, out, "<em>em</em>")
	assert.Contains(t, out, "<pre><code>block\n</code></pre>")
}

func TestTextToHTML(t *testing.T) {
	out := textToHTML("x & y\nline two\n\nsecond para")

	assert.Contains(t, out, "<p>x &amp; y<br>line two</p>")
	assert.Contains(t, out, "<p>second para</p>")
	assert.Contains(t, out, "<title>Converted Document</title>")
}
