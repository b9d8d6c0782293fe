package cmd

import (
	"github.com/spf13/cobra"
)

// generateCmd represents the generate command.
var generateCmd = newGenerateCmd()

func newGenerateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate [atomer-outputs-dir base-config-dir result-config-dir]",
		Short: "Generate one ANaConDA config per Atomer report",
		Long: `Generate processes every .json report in the Atomer outputs directory.
For each one it recreates <result-config-dir>/<name>_conf from the base
template and writes the extracted function names into the
filters/functions/include filter, sorted one per line.

A report that fails to decode still gets a config directory, with an empty
include filter; the run continues with the next report.`,
		Args: cobra.RangeArgs(0, 3),
		RunE: runGenerate,
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(generateCmd)
}
