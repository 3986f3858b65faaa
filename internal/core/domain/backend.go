package domain

// Backend names as reported by the capability registry. Each names
// the concrete mechanism behind an optional conversion path.
const (
	BackendMarkdown     = "goldmark"          // Markdown -> HTML rendering
	BackendHTMLMarkdown = "html-to-markdown"  // HTML -> Markdown conversion
	BackendDocxExtract  = "docx-extract"      // OOXML text extraction
	BackendDocxGenerate = "go-docx"           // DOCX generation
	BackendPDFExtract   = "pdftotext"         // PDF text extraction
	BackendPDFRender    = "headless-chromium" // HTML -> PDF rendering
)

// BackendNames lists all backend names in report order.
var BackendNames = []string{
	BackendMarkdown,
	BackendHTMLMarkdown,
	BackendDocxExtract,
	BackendDocxGenerate,
	BackendPDFExtract,
	BackendPDFRender,
}

// Availability maps backend names to their probed presence. It is
// computed once at process start and treated as immutable for the
// process lifetime; conversion paths consult it to choose between a
// structured backend and a heuristic fallback.
type Availability map[string]bool

// Has reports whether the named backend was probed as present.
func (a Availability) Has(name string) bool {
	return a[name]
}
