package cli

import (
	"encoding/base64"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/inkwell-labs/inkwell-cli/internal/core/domain"
	"github.com/inkwell-labs/inkwell-cli/internal/logger"
)

var (
	watchTo  string
	watchOut string
)

var watchCmd = &cobra.Command{
	Use:   "watch [dir]",
	Short: "Watch a directory and convert new files",
	Long: `Watch a directory and convert files as they appear.

Each created or modified file with a recognised extension is
converted to the target format and written next to the original
(or into --out) with the target extension. Files already in the
target format are left alone. Runs until interrupted.`,
	Args: cobra.ExactArgs(1),
	RunE: runWatch,
}

func init() {
	watchCmd.Flags().StringVar(&watchTo, "to", "md", "target output format")
	watchCmd.Flags().StringVar(&watchOut, "out", "", "output directory (default: alongside input)")
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	dir := args[0]

	target, err := domain.ParseFormat(watchTo)
	if err != nil {
		return err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("watching %s: %w", dir, err)
	}

	fmt.Fprintf(cmd.ErrOrStderr(), "Watching %s, converting to %s (Ctrl-C to stop)\n", dir, target)

	ctx := cmd.Context()
	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) {
				continue
			}
			if err := convertWatched(cmd, event.Name, target); err != nil {
				logger.Warn("watch: %s: %v", event.Name, err)
			}
		case werr, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watch: %v", werr)
		}
	}
}

// convertWatched converts one file event. Files without a recognised
// extension, directories, and files already in the target format are
// skipped silently.
func convertWatched(cmd *cobra.Command, path string, target domain.Format) error {
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return nil
	}

	inFmt, ok := domain.FormatFromFilename(path)
	if !ok || inFmt == target {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	content := string(data)
	if inFmt.Binary() {
		content = base64.StdEncoding.EncodeToString(data)
	}

	result, err := conversionService.Convert(cmd.Context(), domain.ConversionRequest{
		Content:      content,
		InputFormat:  inFmt,
		OutputFormat: target,
		Filename:     path,
	})
	if err != nil {
		return err
	}

	out := []byte(result)
	if target.Binary() {
		if out, err = base64.StdEncoding.DecodeString(result); err != nil {
			return err
		}
	}

	base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	outDir := watchOut
	if outDir == "" {
		outDir = filepath.Dir(path)
	}
	outPath := filepath.Join(outDir, base+"."+string(target))

	if err := os.WriteFile(outPath, out, 0o644); err != nil {
		return err
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "Converted %s -> %s\n", path, outPath)
	return nil
}
