package cmd

import (
	"github.com/spf13/cobra"

	"github.com/atomer-tools/anaconf/internal/domain"
	m "github.com/atomer-tools/anaconf/internal/model"
)

// extractCmd represents the extract command.
var extractCmd = newExtractCmd()

func newExtractCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "extract <report.json>",
		Short: "Print the function names extracted from a single report",
		Long: `Extract decodes one Atomer report and prints the function names found
in its qualifier fields, sorted one per line. Unlike generate, a report
that fails to decode is an error here.`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return workflow.Extract(domain.ExtractArgs{Report: m.Path(args[0])})
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(extractCmd)
}
