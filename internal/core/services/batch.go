package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/inkwell-labs/inkwell-cli/internal/core/domain"
	"github.com/inkwell-labs/inkwell-cli/internal/logger"
)

// previewLimit is the number of characters of converted content
// shown per file in the batch report.
const previewLimit = 100

// ConvertBatch converts an ordered list of files to one output
// format and renders the report. Files are processed strictly
// sequentially in input order; a missing input format defaults to
// txt and a missing filename to file_<1-based index>. One file's
// failure is captured into its result block and never aborts the
// rest.
func (c *Converter) ConvertBatch(ctx context.Context, files []domain.BatchFile, outputFormat string) (string, error) {
	target := strings.ToLower(strings.TrimSpace(outputFormat))
	logger.Section("Batch Conversion")
	logger.Info("converting %d files to %s", len(files), target)

	results := make([]domain.BatchItemResult, 0, len(files))
	for i, file := range files {
		inputFormat := file.InputFormat
		if strings.TrimSpace(inputFormat) == "" {
			inputFormat = string(domain.FormatTxt)
		}
		filename := file.Filename
		if filename == "" {
			filename = fmt.Sprintf("file_%d", i+1)
		}

		converted, err := c.Convert(ctx, domain.ConversionRequest{
			Content:      file.Content,
			InputFormat:  domain.Format(inputFormat),
			OutputFormat: domain.Format(target),
			Filename:     filename,
		})
		if err != nil {
			logger.Warn("batch item %s failed: %v", filename, err)
			results = append(results, domain.BatchItemResult{
				Filename: filename,
				Status:   domain.BatchError,
				Message:  err.Error(),
			})
			continue
		}

		results = append(results, domain.BatchItemResult{
			Filename: filename,
			Status:   domain.BatchSuccess,
			Preview:  previewOf(converted),
		})
	}

	return formatBatchReport(results, len(files), target), nil
}

// previewOf truncates converted content to the first previewLimit
// characters, marking truncation with an ellipsis.
func previewOf(content string) string {
	runes := []rune(content)
	if len(runes) <= previewLimit {
		return content
	}
	return string(runes[:previewLimit]) + "..."
}

// formatBatchReport renders the fixed-format textual report: a
// header naming file count and target format, then one block per
// file in input order.
func formatBatchReport(results []domain.BatchItemResult, fileCount int, target string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Batch Conversion Results (%d files to %s)\n", fileCount, target)
	b.WriteString(strings.Repeat("=", 50) + "\n\n")

	for _, res := range results {
		fmt.Fprintf(&b, "File: %s\n", res.Filename)
		fmt.Fprintf(&b, "Status: %s\n", res.Status)
		if res.Status == domain.BatchError {
			fmt.Fprintf(&b, "Error: %s\n", res.Message)
		} else {
			fmt.Fprintf(&b, "Content Preview: %s\n", res.Preview)
		}
		b.WriteString(strings.Repeat("-", 30) + "\n")
	}

	return b.String()
}
