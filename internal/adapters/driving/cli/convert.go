package cli

import (
	"context"
	"encoding/base64"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/inkwell-labs/inkwell-cli/internal/core/domain"
)

var (
	convertFrom   string
	convertTo     string
	convertOutput string
)

var convertCmd = &cobra.Command{
	Use:   "convert [file]",
	Short: "Convert a document on disk",
	Long: `Convert a single document without starting a server.

Input and output formats are detected from file extensions and can be
overridden with --from and --to. With no --output, the converted
content is written to stdout (textual formats only).`,
	Args: cobra.ExactArgs(1),
	RunE: runConvert,
}

func init() {
	convertCmd.Flags().StringVar(&convertFrom, "from", "", "input format (default: from file extension)")
	convertCmd.Flags().StringVar(&convertTo, "to", "", "output format (default: from --output extension)")
	convertCmd.Flags().StringVarP(&convertOutput, "output", "o", "", "output file path")
	rootCmd.AddCommand(convertCmd)
}

func runConvert(cmd *cobra.Command, args []string) error {
	inputPath := args[0]

	inFmt, err := resolveFormat(convertFrom, inputPath)
	if err != nil {
		return fmt.Errorf("input format: %w", err)
	}
	outFmt, err := resolveFormat(convertTo, convertOutput)
	if err != nil {
		return fmt.Errorf("output format: %w", err)
	}

	data, err := os.ReadFile(inputPath)
	if err != nil {
		return fmt.Errorf("reading %s: %w", inputPath, err)
	}

	content := string(data)
	if inFmt.Binary() {
		content = base64.StdEncoding.EncodeToString(data)
	}

	result, err := conversionService.Convert(context.Background(), domain.ConversionRequest{
		Content:      content,
		InputFormat:  inFmt,
		OutputFormat: outFmt,
		Filename:     inputPath,
	})
	if err != nil {
		return err
	}

	out := []byte(result)
	if outFmt.Binary() {
		out, err = base64.StdEncoding.DecodeString(result)
		if err != nil {
			return fmt.Errorf("decoding converted content: %w", err)
		}
	}

	if convertOutput == "" {
		if outFmt.Binary() {
			return fmt.Errorf("binary output requires --output")
		}
		cmd.Println(result)
		return nil
	}

	if err := os.WriteFile(convertOutput, out, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", convertOutput, err)
	}
	cmd.Printf("Wrote %s\n", convertOutput)
	return nil
}

// resolveFormat picks an explicit format flag over a filename
// extension.
func resolveFormat(flag, path string) (domain.Format, error) {
	if flag != "" {
		return domain.ParseFormat(flag)
	}
	if f, ok := domain.FormatFromFilename(path); ok {
		return f, nil
	}
	return "", fmt.Errorf("%w: cannot detect format from '%s'; use --from/--to", domain.ErrUnsupportedFormat, path)
}
