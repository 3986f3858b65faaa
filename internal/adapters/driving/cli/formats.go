package cli

import (
	"github.com/spf13/cobra"
)

var formatsCmd = &cobra.Command{
	Use:   "formats",
	Short: "List supported formats and available backends",
	Run: func(cmd *cobra.Command, _ []string) {
		cmd.Print(capabilityService.Report())
	},
}

func init() {
	rootCmd.AddCommand(formatsCmd)
}
