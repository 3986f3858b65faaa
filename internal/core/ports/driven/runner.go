package driven

import "context"

// CommandRunner executes an external command and returns its stdout.
// Backends that shell out to external tools (pdftotext) depend on
// this interface so tests can substitute a double.
type CommandRunner interface {
	Run(ctx context.Context, name string, args ...string) ([]byte, error)
}
