// =============================================================================
// Triangle Accumulator - Validate Command
// =============================================================================
//
// This file defines the 'validate' command, which runs the ingestion checks
// and the accumulation against an input file without writing any output.
//
// COMMAND USAGE:
//   triangles validate <input.txt>
//
// =============================================================================

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ginjaninja78/triangle-accumulator/internal/pipeline"
)

// validateCmd represents the 'validate' command.
var validateCmd = &cobra.Command{
	Use:   "validate <input>",
	Short: "Validate an input file without writing output",
	Long: `The validate command checks an input file against the full ingestion
contract (extension, existence, columns, column types, non-empty data) and
runs the accumulation in memory, reporting what a real run would produce.
Nothing is written.`,
	Args: cobra.ExactArgs(1),

	RunE: func(cmd *cobra.Command, args []string) error {
		return runValidate(args[0])
	},
}

// init registers the validate command with the root command.
func init() {
	rootCmd.AddCommand(validateCmd)
}

// runValidate checks the file and prints what a run would produce.
func runValidate(inputPath string) error {
	cfg, logger, err := setup()
	if err != nil {
		return err
	}
	defer logger.Sync()

	result, accumulated, err := pipeline.New(cfg, logger).Validate(inputPath)
	if err != nil {
		return err
	}

	fmt.Println("=== Input Valid ===")
	fmt.Printf("Records read:        %d\n", result.Stats.RecordsRead)
	fmt.Printf("Products:            %d\n", result.Stats.Products)
	fmt.Printf("Min origin year:     %d\n", accumulated.MinOriginYear)
	fmt.Printf("Development years:   %d\n", accumulated.NDevelopmentYears)
	fmt.Printf("Values accumulated:  %d\n", result.Stats.ValuesAccumulated)

	return nil
}
