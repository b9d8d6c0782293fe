// Package cmd provides the root command and CLI setup for anaconf.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/atomer-tools/anaconf/internal/adapter"
	"github.com/atomer-tools/anaconf/internal/config"
	"github.com/atomer-tools/anaconf/internal/controller"
	"github.com/atomer-tools/anaconf/internal/domain"
	m "github.com/atomer-tools/anaconf/internal/model"
)

var reportStore adapter.ReportStore
var configFS adapter.ConfigFS
var workflow domain.Workflow
var logger *zap.Logger

var configFlag string
var verboseFlag bool

func init() {
	reportStore = adapter.NewReportStore()
	configFS = adapter.NewConfigFS()
}

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "anaconf [atomer-outputs-dir base-config-dir result-config-dir]",
		Short: "Generate ANaConDA configs from Atomer reports",
		Long: `Anaconf converts the JSON output of the Atomer static analyser into
configuration directories for the ANaConDA dynamic analyser.

For each report <name>.json it copies the base configuration template to
<result-config-dir>/<name>_conf and writes the function names implicated
in the report's findings into the filters/functions/include filter, so
ANaConDA restricts its analysis to those functions.

The three directories can also come from a .anaconf.yaml settings file or
ANACONF_* environment variables; command-line arguments win.`,
		Args: cobra.RangeArgs(0, 3),
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			zapConfig := zap.NewProductionConfig()
			if verboseFlag {
				zapConfig.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
			}

			var err error

			logger, err = zapConfig.Build()
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}

			// Tests pre-wire a mock workflow; only build the real one when
			// nothing is wired yet.
			if workflow == nil {
				ui := controller.NewUI(cmd, controller.IsTTY(os.Stdout))
				workflow = domain.NewWorkflow(reportStore, configFS, ui, logger)
			}

			return nil
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if logger != nil {
				_ = logger.Sync()
			}
		},
		RunE: runGenerate,
	}
	cmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "settings file (default .anaconf.yaml when present)")
	cmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "enable debug logging")

	return cmd
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

// runGenerate backs both the bare root invocation and the generate
// subcommand.
func runGenerate(_ *cobra.Command, args []string) error {
	settings, err := config.Load(configFlag)
	if err != nil {
		return err
	}

	genArgs, err := resolveGenerateArgs(settings, args)
	if err != nil {
		return err
	}

	// Collaborator contract: the result root exists before the core runs.
	if err := configFS.EnsureDir(genArgs.ResultConfig); err != nil {
		return err
	}

	return workflow.Generate(genArgs)
}

func resolveGenerateArgs(settings config.Settings, args []string) (domain.GenerateArgs, error) {
	outputs := settings.AtomerOutputsDir
	base := settings.BaseConfigDir
	result := settings.ResultConfigDir

	if len(args) > 0 {
		outputs = args[0]
	}

	if len(args) > 1 {
		base = args[1]
	}

	if len(args) > 2 {
		result = args[2]
	}

	if outputs == "" || base == "" || result == "" {
		return domain.GenerateArgs{}, fmt.Errorf("atomer-outputs-dir, base-config-dir and result-config-dir must be given as arguments or settings")
	}

	return domain.GenerateArgs{
		AtomerOutputs: m.Path(outputs),
		BaseConfig:    m.Path(base),
		ResultConfig:  m.Path(result),
	}, nil
}
