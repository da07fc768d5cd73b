// =============================================================================
// Triangle Accumulator - Root Command
// =============================================================================
//
// This file defines the root command for the Cobra CLI. The root command is
// the base command the others attach to:
//
//   triangles
//   ├── accumulate   (triangles accumulate <input.txt> <output.txt>)
//   ├── validate     (triangles validate <input.txt>)
//   ├── export       (triangles export <input.txt> <output.xlsx>)
//   └── version      (triangles version)
//
// The root command owns the global flags (--config, --verbose) and the
// construction of the configuration and logger every subcommand shares.
//
// =============================================================================

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ginjaninja78/triangle-accumulator/internal/config"
	"github.com/ginjaninja78/triangle-accumulator/internal/logging"
)

// cfgFile holds the path to the configuration file.
// This can be overridden using the --config flag.
var cfgFile string

// verbose enables debug logging when set to true.
var verbose bool

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "triangles",
	Short: "Triangle Accumulator - Roll incremental claim payments into loss-development triangles",
	Long: `Triangle Accumulator converts a comma-separated text file of incremental
claim-payment records into cumulative loss-development triangles, one triangle
per product, written to a flat output file for reserving workflows.

The input file must have exactly the columns Product, Origin Year,
Development Year and Incremental Value, in any column order. The output file
is never overwritten: a run either writes a complete new file or fails before
writing anything.

Example Usage:
  triangles accumulate claims.txt triangles.txt
  triangles validate claims.txt
  triangles export claims.txt triangles.xlsx`,

	// If no subcommand is provided, print the help message.
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// init sets up the global flags.
func init() {
	rootCmd.PersistentFlags().StringVar(
		&cfgFile,
		"config",
		"config.yaml",
		"Path to the configuration file (default is config.yaml)",
	)

	rootCmd.PersistentFlags().BoolVarP(
		&verbose,
		"verbose",
		"v",
		false,
		"Enable verbose output for debugging",
	)
}

// setup loads the configuration and builds the process logger shared by the
// subcommands.
func setup() (*config.Config, *zap.Logger, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	logger, err := logging.New(cfg.LogLevel, verbose)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to build logger: %w", err)
	}

	return cfg, logger, nil
}
