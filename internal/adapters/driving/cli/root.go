// Package cli implements the Inkwell command line interface.
// Commands are thin: they wire configuration, backends and services
// together and delegate to the driving ports.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/inkwell-labs/inkwell-cli/internal/adapters/driven/config/file"
	"github.com/inkwell-labs/inkwell-cli/internal/backends"
	"github.com/inkwell-labs/inkwell-cli/internal/core/ports/driving"
	"github.com/inkwell-labs/inkwell-cli/internal/core/services"
	"github.com/inkwell-labs/inkwell-cli/internal/logger"
)

var version = "0.1.0"

var (
	verboseFlag bool
	configDir   string

	// Services shared by all commands, wired in initServices.
	configStore       *file.ConfigStore
	conversionService driving.ConversionService
	capabilityService driving.CapabilityService
)

var rootCmd = &cobra.Command{
	Use:   "inkwell",
	Short: "Document format conversion tools",
	Long: `Inkwell converts documents between txt, md, html, docx, pdf and rtf,
and exposes the same conversions as MCP tools over stdio or HTTP.

Conversions route through a canonical working representation (text,
markdown or html). Structured backends are probed at startup; where
one is missing, Inkwell degrades to a lossy heuristic or reports the
backend as unavailable.`,
	PersistentPreRunE: initServices,
	SilenceUsage:      true,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "enable verbose logging to stderr")
	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir", "", "config directory (default ~/.inkwell)")
}

// initServices loads configuration, probes backends once, and builds
// the core services every command shares.
func initServices(_ *cobra.Command, _ []string) error {
	logger.SetVerbose(verboseFlag)

	store, err := file.NewConfigStore(configDir)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	configStore = store

	b := backends.Assemble(backends.Options{
		Disabled:      store.DisabledBackends(),
		PdftotextPath: store.PdftotextPath(),
		BrowserPath:   store.BrowserPath(),
	})

	converter := services.NewConverter(b)
	conversionService = converter
	capabilityService = services.NewCapabilities(converter.Availability())
	return nil
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
