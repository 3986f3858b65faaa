package mcp

import (
	"context"

	"github.com/inkwell-labs/inkwell-cli/internal/core/domain"
)

// mockConversionService is a mock implementation of driving.ConversionService.
type mockConversionService struct {
	result string
	report string
	err    error

	gotRequest domain.ConversionRequest
	gotFiles   []domain.BatchFile
	gotTarget  string
}

func (m *mockConversionService) Convert(_ context.Context, req domain.ConversionRequest) (string, error) {
	m.gotRequest = req
	return m.result, m.err
}

func (m *mockConversionService) ConvertBatch(_ context.Context, files []domain.BatchFile, outputFormat string) (string, error) {
	m.gotFiles = files
	m.gotTarget = outputFormat
	return m.report, m.err
}

// mockCapabilityService is a mock implementation of driving.CapabilityService.
type mockCapabilityService struct {
	avail  domain.Availability
	report string
}

func (m *mockCapabilityService) Availability() domain.Availability {
	return m.avail
}

func (m *mockCapabilityService) Report() string {
	return m.report
}
