// =============================================================================
// Triangle Accumulator - Export Command
// =============================================================================
//
// This file defines the 'export' command, which accumulates an input file
// and lays the triangles out as an XLSX workbook, one worksheet per product.
//
// COMMAND USAGE:
//   triangles export <input.txt> <output.xlsx>
//
// =============================================================================

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ginjaninja78/triangle-accumulator/internal/pipeline"
	"github.com/ginjaninja78/triangle-accumulator/internal/workbook"
)

// exportCmd represents the 'export' command.
var exportCmd = &cobra.Command{
	Use:   "export <input> <output>",
	Short: "Export accumulated triangles to an XLSX workbook",
	Long: `The export command reads incremental claim-payment records from the input
text file, accumulates them and writes the triangles to an XLSX workbook with
one worksheet per product: origin years down the side, development years
across the top. The destination must be an .xlsx path that does not already
exist.`,
	Args: cobra.ExactArgs(2),

	RunE: func(cmd *cobra.Command, args []string) error {
		return runExport(args[0], args[1])
	},
}

// init registers the export command with the root command.
func init() {
	rootCmd.AddCommand(exportCmd)
}

// runExport accumulates the input and writes the workbook.
func runExport(inputPath, outputPath string) error {
	cfg, logger, err := setup()
	if err != nil {
		return err
	}
	defer logger.Sync()

	// Validate the destination before doing any work.
	exporter, err := workbook.New(outputPath, cfg.Export.SheetPrefix)
	if err != nil {
		return err
	}

	result, accumulated, err := pipeline.New(cfg, logger).Validate(inputPath)
	if err != nil {
		return err
	}

	if err := exporter.Export(accumulated); err != nil {
		return err
	}

	fmt.Println("=== Export Complete ===")
	fmt.Printf("Records read:        %d\n", result.Stats.RecordsRead)
	fmt.Printf("Worksheets written:  %d\n", result.Stats.Products)
	fmt.Printf("Workbook:            %s\n", exporter.Filename())

	return nil
}
