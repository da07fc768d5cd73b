// =============================================================================
// Triangle Accumulator - Main Entry Point
// =============================================================================
//
// This is the main entry point for the Triangle Accumulator CLI application.
// It initializes the Cobra CLI framework and delegates command execution to
// the cmd package.
//
// USAGE:
//   triangles accumulate <input.txt> <output.txt>  - Accumulate incremental data
//   triangles validate <input.txt>                 - Validate an input file
//   triangles export <input.txt> <output.xlsx>     - Export triangles to a workbook
//   triangles version                              - Display the application version
//
// ARCHITECTURE:
//   - cmd/           : CLI command definitions (Cobra)
//   - internal/      : Core business logic (not for external import)
//   - pkg/           : Shared utilities
//
// =============================================================================

package main

import (
	"github.com/ginjaninja78/triangle-accumulator/cmd"
)

// main is the entry point of the application.
// It simply calls the Execute function from the cmd package, which
// initializes and runs the Cobra CLI.
func main() {
	cmd.Execute()
}
