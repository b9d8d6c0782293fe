package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/atomer-tools/anaconf/internal/config"
	"github.com/atomer-tools/anaconf/internal/domain"
	m "github.com/atomer-tools/anaconf/internal/model"
)

// listCmd represents the list command.
var listCmd = newListCmd()

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list [atomer-outputs-dir]",
		Short: "List Atomer reports and extracted function counts",
		Long: `List shows every .json report in the Atomer outputs directory together
with the number of function names its findings would contribute to the
include filter. Nothing is written; reports that fail to decode are
marked and counted as zero.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			settings, err := config.Load(configFlag)
			if err != nil {
				return err
			}

			dir := settings.AtomerOutputsDir
			if len(args) > 0 {
				dir = args[0]
			}

			if dir == "" {
				return fmt.Errorf("atomer-outputs-dir must be given as an argument or setting")
			}

			return workflow.List(domain.ListArgs{AtomerOutputs: m.Path(dir)})
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(listCmd)
}
