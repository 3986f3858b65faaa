package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/inkwell-labs/inkwell-cli/internal/core/domain"
)

// ConvertDocumentInput is the input schema for the convert-document tool.
type ConvertDocumentInput struct {
	Content      string `json:"content" jsonschema:"document content, raw text for textual formats or base64 for binary formats"`
	InputFormat  string `json:"input_format" jsonschema:"input document format (txt, md, html, docx, pdf, rtf)"`
	OutputFormat string `json:"output_format" jsonschema:"output document format (txt, md, html, docx, pdf, rtf)"`
	Filename     string `json:"filename,omitempty" jsonschema:"optional filename for context"`
}

// BatchFileInput is one file of a convert-file-batch invocation.
type BatchFileInput struct {
	Content     string `json:"content" jsonschema:"document content"`
	InputFormat string `json:"input_format,omitempty" jsonschema:"input format, defaults to txt"`
	Filename    string `json:"filename,omitempty" jsonschema:"optional filename"`
}

// ConvertFileBatchInput is the input schema for the convert-file-batch tool.
type ConvertFileBatchInput struct {
	Files        []BatchFileInput `json:"files" jsonschema:"files to convert, in order"`
	OutputFormat string           `json:"output_format" jsonschema:"target output format for all files"`
}

// ListSupportedFormatsInput is the (empty) input schema for the
// list-supported-formats tool.
type ListSupportedFormatsInput struct{}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "convert-document",
		Description: "Convert a document from one format to another",
	}, s.handleConvertDocument)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "list-supported-formats",
		Description: "List all supported input and output formats and available conversion backends",
	}, s.handleListSupportedFormats)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "convert-file-batch",
		Description: "Convert multiple files to the same output format",
	}, s.handleConvertFileBatch)
}

// handleConvertDocument handles the convert-document tool invocation.
// Conversion failures are reported in-band as error text, never as
// protocol faults.
func (s *Server) handleConvertDocument(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input ConvertDocumentInput,
) (*mcp.CallToolResult, any, error) {
	result, err := s.ports.Conversion.Convert(ctx, domain.ConversionRequest{
		Content:      input.Content,
		InputFormat:  domain.Format(input.InputFormat),
		OutputFormat: domain.Format(input.OutputFormat),
		Filename:     input.Filename,
	})
	if err != nil {
		return errorResult(err), nil, nil
	}
	return textResult(result), nil, nil
}

// handleListSupportedFormats handles the list-supported-formats tool
// invocation.
func (s *Server) handleListSupportedFormats(
	_ context.Context,
	_ *mcp.CallToolRequest,
	_ ListSupportedFormatsInput,
) (*mcp.CallToolResult, any, error) {
	return textResult(s.ports.Capability.Report()), nil, nil
}

// handleConvertFileBatch handles the convert-file-batch tool
// invocation. Per-file failures are part of the report; only a
// failure to produce the report at all is an error result.
func (s *Server) handleConvertFileBatch(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input ConvertFileBatchInput,
) (*mcp.CallToolResult, any, error) {
	files := make([]domain.BatchFile, len(input.Files))
	for i, f := range input.Files {
		files[i] = domain.BatchFile{
			Content:     f.Content,
			InputFormat: f.InputFormat,
			Filename:    f.Filename,
		}
	}

	report, err := s.ports.Conversion.ConvertBatch(ctx, files, input.OutputFormat)
	if err != nil {
		return errorResult(err), nil, nil
	}
	return textResult(report), nil, nil
}

// textResult wraps a text payload in a tool result.
func textResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: text}},
	}
}

// errorResult renders a tool-level failure as in-band error text.
func errorResult(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: "Error: " + err.Error()}},
		IsError: true,
	}
}
