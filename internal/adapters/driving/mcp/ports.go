package mcp

import (
	"github.com/inkwell-labs/inkwell-cli/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP
// server. This provides a single injection point for dependency
// injection.
type Ports struct {
	// Conversion converts documents between formats.
	Conversion driving.ConversionService

	// Capability reports supported formats and backend availability.
	Capability driving.CapabilityService
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Conversion == nil {
		return ErrMissingConversionService
	}
	if p.Capability == nil {
		return ErrMissingCapabilityService
	}
	return nil
}
