package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/inkwell-labs/inkwell-cli/internal/adapters/driving/mcp"
	"github.com/inkwell-labs/inkwell-cli/internal/core/domain"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the MCP server",
	Long: `Start the Model Context Protocol server exposing the document
conversion tools.

By default, the server communicates over stdio using JSON-RPC and can
be used with Claude Desktop and other MCP-compatible AI assistants.

Use --port (or server.addr in the config file) to start an HTTP
server instead, which serves the MCP endpoint at /mcp and a liveness
check at /health. The flag wins over the config file.

Examples:
  # Stdio mode (default, for Claude Desktop)
  inkwell serve

  # HTTP mode (for MCP Inspector, remote access)
  inkwell serve --port 8124

Claude Desktop configuration (claude_desktop_config.json):
  {
    "mcpServers": {
      "inkwell": {
        "command": "/path/to/inkwell",
        "args": ["serve"]
      }
    }
  }`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().IntP("port", "p", 0, "HTTP port (0 = use stdio)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	port, err := cmd.Flags().GetInt("port")
	if err != nil {
		return fmt.Errorf("getting port flag: %w", err)
	}

	ports := &mcp.Ports{
		Conversion: conversionService,
		Capability: capabilityService,
	}

	server, err := mcp.NewServer(ports)
	if err != nil {
		return err
	}

	if addr, ok := resolveServeAddr(port, configStore.ServerAddr()); ok {
		fmt.Fprintf(cmd.ErrOrStderr(), "MCP server listening on http://localhost%s/mcp\n", addr)
		return server.RunHTTP(cmd.Context(), addr)
	}

	// Startup notes go to stderr so they never interfere with the
	// stdio protocol on stdout.
	fmt.Fprintln(cmd.ErrOrStderr(), "Starting Inkwell MCP server (stdio transport)")
	for _, line := range backendStatusLines(capabilityService.Availability()) {
		fmt.Fprintln(cmd.ErrOrStderr(), line)
	}
	return server.Run(cmd.Context())
}

// resolveServeAddr picks the HTTP listen address: an explicit --port
// wins over a configured server.addr; with neither, the server runs
// on stdio.
func resolveServeAddr(port int, cfgAddr string) (string, bool) {
	if port > 0 {
		return fmt.Sprintf(":%d", port), true
	}
	if cfgAddr != "" {
		return cfgAddr, true
	}
	return "", false
}

// backendStatusLines renders the startup backend listing in the same
// order as the capability report.
func backendStatusLines(avail domain.Availability) []string {
	lines := make([]string, 0, len(domain.BackendNames))
	for _, name := range domain.BackendNames {
		marker := "✗"
		if avail.Has(name) {
			marker = "✓"
		}
		lines = append(lines, fmt.Sprintf("  %s %s", marker, name))
	}
	return lines
}
