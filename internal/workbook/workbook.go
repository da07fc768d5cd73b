// =============================================================================
// Triangle Accumulator - Workbook Export
// =============================================================================
//
// This module lays accumulated triangles out as an XLSX workbook, one
// worksheet per product. Rows are origin years, columns are development
// years, and each cell holds the cumulative value for that (origin,
// development) point. Cells below the diagonal (development year before the
// origin year) are left empty.
//
// The same safety rule applies as for the text output: the destination must
// not already exist.
//
// =============================================================================

package workbook

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/ginjaninja78/triangle-accumulator/internal/checks"
	"github.com/ginjaninja78/triangle-accumulator/internal/triangle"
	"github.com/ginjaninja78/triangle-accumulator/pkg/fileutil"
)

// sheetNameLimit is the worksheet name length excel accepts.
const sheetNameLimit = 31

// Exporter writes an AccumulatedResult to one XLSX workbook.
type Exporter struct {
	// filename is the validated destination path.
	filename string

	// sheetPrefix is prepended to each per-product worksheet name.
	sheetPrefix string
}

// New validates the destination path and returns an Exporter for it.
func New(filename, sheetPrefix string) (*Exporter, error) {
	suffixes := fileutil.Suffixes(filename)

	if err := checks.Condition(checks.OutputContract, len(suffixes) == 1, "filename has one extension"); err != nil {
		return nil, err
	}
	if err := checks.Condition(checks.OutputContract, suffixes[0] == ".xlsx", "filename has .xlsx extension"); err != nil {
		return nil, err
	}
	if err := checks.Condition(checks.OutputContract, !fileutil.Exists(filename), "%s does not already exist", filename); err != nil {
		return nil, err
	}

	return &Exporter{filename: filename, sheetPrefix: sheetPrefix}, nil
}

// Export writes one worksheet per product and saves the workbook.
func (e *Exporter) Export(result *triangle.AccumulatedResult) error {
	f := excelize.NewFile()
	defer f.Close()

	for i, product := range result.Products() {
		sheetName := e.sheetName(product)

		if i == 0 {
			// Rename the default sheet rather than leaving it empty.
			if err := f.SetSheetName(f.GetSheetName(0), sheetName); err != nil {
				return fmt.Errorf("failed to name sheet for product %s: %w", product, err)
			}
		} else {
			if _, err := f.NewSheet(sheetName); err != nil {
				return fmt.Errorf("failed to create sheet for product %s: %w", product, err)
			}
		}

		if err := writeTriangle(f, sheetName, result, product); err != nil {
			return err
		}
	}

	if err := f.SaveAs(e.filename); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}

	return nil
}

// Filename returns the validated destination path.
func (e *Exporter) Filename() string {
	return e.filename
}

// writeTriangle fills one worksheet with a product's triangle.
func writeTriangle(f *excelize.File, sheetName string, result *triangle.AccumulatedResult, product string) error {
	maxDevelopmentYear := result.MinOriginYear + result.NDevelopmentYears - 1

	// Header row: development years across the top.
	for d := 0; d < result.NDevelopmentYears; d++ {
		cell, err := excelize.CoordinatesToCellName(d+2, 1)
		if err != nil {
			return fmt.Errorf("failed to address header cell: %w", err)
		}
		if err := f.SetCellValue(sheetName, cell, result.MinOriginYear+d); err != nil {
			return fmt.Errorf("failed to write header cell: %w", err)
		}
	}

	// One row per origin year, values from the flattened sequence.
	values := result.Values(product)
	next := 0

	for row, originYear := 0, result.MinOriginYear; originYear <= maxDevelopmentYear; row, originYear = row+1, originYear+1 {
		cell, err := excelize.CoordinatesToCellName(1, row+2)
		if err != nil {
			return fmt.Errorf("failed to address origin-year cell: %w", err)
		}
		if err := f.SetCellValue(sheetName, cell, originYear); err != nil {
			return fmt.Errorf("failed to write origin-year cell: %w", err)
		}

		for developmentYear := originYear; developmentYear <= maxDevelopmentYear; developmentYear++ {
			col := developmentYear - result.MinOriginYear + 2

			cell, err := excelize.CoordinatesToCellName(col, row+2)
			if err != nil {
				return fmt.Errorf("failed to address value cell: %w", err)
			}

			value, _ := values[next].Float64()
			if err := f.SetCellValue(sheetName, cell, value); err != nil {
				return fmt.Errorf("failed to write value cell: %w", err)
			}
			next++
		}
	}

	return nil
}

// sheetName builds a worksheet name excel accepts for a product.
func (e *Exporter) sheetName(product string) string {
	name := e.sheetPrefix + product

	// Strip the characters excel forbids in worksheet names.
	replacer := strings.NewReplacer(
		":", "", "\\", "", "/", "", "?", "", "*", "", "[", "", "]", "",
	)
	name = replacer.Replace(name)

	if name == "" {
		name = "triangle"
	}
	if len(name) > sheetNameLimit {
		name = name[:sheetNameLimit]
	}

	return name
}
