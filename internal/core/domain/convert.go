package domain

// ConversionRequest describes a single document conversion.
// Content is raw text for textual formats and base64-encoded bytes
// for binary formats (docx, pdf); this encoding is part of the wire
// contract, not negotiated.
type ConversionRequest struct {
	Content      string
	InputFormat  Format
	OutputFormat Format

	// Filename is optional context for logging and reports.
	Filename string
}

// BatchFile is one entry of a batch conversion, as received on the
// wire. InputFormat and Filename are raw strings because both are
// optional: a missing input format defaults to txt and a missing
// filename to file_<1-based index>.
type BatchFile struct {
	Content     string
	InputFormat string
	Filename    string
}

// BatchStatus is the outcome of one batch item.
type BatchStatus string

// Batch item outcomes.
const (
	BatchSuccess BatchStatus = "success"
	BatchError   BatchStatus = "error"
)

// BatchItemResult records the outcome of converting one batch file.
// Results are order-preserving and independent of sibling failures.
type BatchItemResult struct {
	Filename string
	Status   BatchStatus

	// Preview holds the first 100 characters of converted content
	// (with a truncation marker) when Status is BatchSuccess.
	Preview string

	// Message holds the failure message when Status is BatchError.
	Message string
}

// DocxParagraph is one paragraph handed to the DOCX generation
// backend. Heading paragraphs are emitted bold at a larger point
// size.
type DocxParagraph struct {
	Text    string
	Heading bool
}
