// =============================================================================
// Triangle Accumulator - Accumulate Command
// =============================================================================
//
// This file defines the 'accumulate' command, the main command of the tool.
// It runs the full pipeline for one input/output pair and prints a summary.
//
// COMMAND USAGE:
//   triangles accumulate <input.txt> <output.txt>
//
// EXIT BEHAVIOR:
//   - 0 on success
//   - non-zero when any input or output contract is violated, with the
//     failing condition's message on stderr
//
// =============================================================================

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ginjaninja78/triangle-accumulator/internal/pipeline"
)

// accumulateCmd represents the 'accumulate' command.
var accumulateCmd = &cobra.Command{
	Use:   "accumulate <input> <output>",
	Short: "Accumulate incremental claim payments into triangles",
	Long: `The accumulate command reads incremental claim-payment records from the
input text file, rolls them up into cumulative loss-development triangles
(one per product) and writes the result to the output text file.

The input file must be a comma-separated .txt file with the columns Product,
Origin Year, Development Year and Incremental Value. The output file must be
a .txt path that does not already exist.`,
	Args: cobra.ExactArgs(2),

	// RunE is preferred for commands that can fail, so Cobra handles the
	// error and the process exits non-zero.
	RunE: func(cmd *cobra.Command, args []string) error {
		return runAccumulate(args[0], args[1])
	},
}

// init registers the accumulate command with the root command.
func init() {
	rootCmd.AddCommand(accumulateCmd)
}

// runAccumulate executes one run and prints the summary.
func runAccumulate(inputPath, outputPath string) error {
	cfg, logger, err := setup()
	if err != nil {
		return err
	}
	defer logger.Sync()

	result, err := pipeline.New(cfg, logger).Run(inputPath, outputPath)
	if err != nil {
		return err
	}

	fmt.Println("=== Accumulation Complete ===")
	fmt.Printf("Records read:        %d\n", result.Stats.RecordsRead)
	fmt.Printf("Products:            %d\n", result.Stats.Products)
	fmt.Printf("Values accumulated:  %d\n", result.Stats.ValuesAccumulated)
	fmt.Printf("Output file:         %s\n", result.OutputFile)
	if result.ArchivedFile != "" {
		fmt.Printf("Archived input:      %s\n", result.ArchivedFile)
	}
	fmt.Printf("Time elapsed:        %s\n", result.Stats.ProcessingTime)

	return nil
}
