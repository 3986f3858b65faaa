package driving

import (
	"context"

	"github.com/inkwell-labs/inkwell-cli/internal/core/domain"
)

// ConversionService converts documents between supported formats.
type ConversionService interface {
	// Convert converts a single document. The result is raw text for
	// textual output formats and base64-encoded bytes for binary
	// ones. All failures wrap one of the domain sentinel errors.
	Convert(ctx context.Context, req domain.ConversionRequest) (string, error)

	// ConvertBatch converts an ordered list of files to one output
	// format and renders the fixed-format textual report. One file's
	// failure never aborts or affects later files.
	ConvertBatch(ctx context.Context, files []domain.BatchFile, outputFormat string) (string, error)
}

// CapabilityService reports supported formats and live backend
// availability.
type CapabilityService interface {
	// Availability returns the immutable backend-availability
	// mapping computed at startup.
	Availability() domain.Availability

	// Report renders the human-readable capability listing with
	// installation guidance.
	Report() string
}
