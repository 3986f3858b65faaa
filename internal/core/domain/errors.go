package domain

import "errors"

// Domain errors represent conversion-pipeline failures.
// Every error leaving the conversion orchestrator wraps exactly one
// of these sentinels; nothing below that boundary propagates raw.
var (
	// ErrUnsupportedFormat indicates a format identifier outside the
	// registry.
	ErrUnsupportedFormat = errors.New("unsupported format")

	// ErrBackendUnavailable indicates a required optional backend is
	// not installed or could not be probed at startup.
	ErrBackendUnavailable = errors.New("backend unavailable")

	// ErrNotImplemented indicates a declared but unbuilt conversion
	// path, such as RTF output.
	ErrNotImplemented = errors.New("not implemented")

	// ErrConversionFailed wraps any lower-level fault raised during
	// normalisation or conversion, including malformed base64 input.
	ErrConversionFailed = errors.New("conversion failed")
)
