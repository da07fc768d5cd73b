// =============================================================================
// Triangle Accumulator - Record Ingestion
// =============================================================================
//
// This module reads and validates the incremental-data input file. It is the
// ingestion collaborator of the accumulation engine: the engine never sees
// malformed input, because every contract below is checked before a single
// record is handed over.
//
// INPUT CONTRACT:
//   - The path has exactly one extension, and that extension is ".txt"
//   - The file exists
//   - The file is comma-separated with a single header row containing the
//     four schema columns (in any column order; extra columns are ignored)
//   - The file has at least one data row
//   - Every column value parses as the kind the schema descriptor declares
//
// SORT GUARANTEE:
//   Records are delivered sorted ascending by Product, then Origin Year,
//   then Development Year. The accumulator does not need this order (it
//   groups and iterates explicitly), but it is a documented upstream
//   guarantee other collaborators may rely on.
//
// =============================================================================

package reader

import (
	"encoding/csv"
	"fmt"
	"os"
	"sort"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/ginjaninja78/triangle-accumulator/internal/checks"
	"github.com/ginjaninja78/triangle-accumulator/internal/schema"
	"github.com/ginjaninja78/triangle-accumulator/internal/triangle"
	"github.com/ginjaninja78/triangle-accumulator/pkg/fileutil"
)

// Reader reads one comma-separated incremental-data text file.
type Reader struct {
	// filename is the validated input path.
	filename string

	// descriptor declares the required columns and their kinds.
	descriptor schema.Descriptor
}

// New validates the input path and returns a Reader for it.
//
// RETURNS:
//   - A Reader, if the path satisfies the input contract.
//   - A *checks.Error naming the unmet condition otherwise.
func New(filename string, descriptor schema.Descriptor) (*Reader, error) {
	suffixes := fileutil.Suffixes(filename)

	if err := checks.Condition(checks.InputContract, len(suffixes) == 1, "filename has one extension"); err != nil {
		return nil, err
	}
	if err := checks.Condition(checks.InputContract, suffixes[0] == ".txt", "filename has .txt extension"); err != nil {
		return nil, err
	}
	if err := checks.Condition(checks.InputContract, fileutil.Exists(filename), "%s exists", filename); err != nil {
		return nil, err
	}

	return &Reader{filename: filename, descriptor: descriptor}, nil
}

// Read parses the input file, validates it against the schema descriptor
// and returns the records sorted by product, origin year and development
// year.
func (r *Reader) Read() ([]triangle.IncrementalRecord, error) {
	file, err := os.Open(r.filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	csvReader := csv.NewReader(file)
	csvReader.TrimLeadingSpace = true

	rows, err := csvReader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV: %w", err)
	}

	if err := checks.Condition(checks.InputContract, len(rows) > 1, "incremental data has rows"); err != nil {
		return nil, err
	}

	// Resolve each required column to its position in the header row.
	positions, err := r.resolveColumns(rows[0])
	if err != nil {
		return nil, err
	}

	// Type-check whole columns before building any records, so a dtype
	// failure is reported against the column rather than a row.
	if err := r.checkColumnKinds(rows[1:], positions); err != nil {
		return nil, err
	}

	records, err := buildRecords(rows[1:], positions)
	if err != nil {
		return nil, err
	}

	sortRecords(records)

	return records, nil
}

// Filename returns the validated input path.
func (r *Reader) Filename() string {
	return r.filename
}

// resolveColumns maps each schema column to its index in the header row.
// Column order in the file is free; extra columns are ignored.
func (r *Reader) resolveColumns(header []string) (map[string]int, error) {
	positions := make(map[string]int, len(header))
	for i, name := range header {
		positions[name] = i
	}

	resolved := make(map[string]int, len(r.descriptor.Fields))
	for _, field := range r.descriptor.Fields {
		pos, found := positions[field.Name]
		if err := checks.Condition(checks.InputContract, found, "%s column is present", field.Name); err != nil {
			return nil, err
		}
		resolved[field.Name] = pos
	}

	return resolved, nil
}

// checkColumnKinds verifies every value of every schema column against the
// declared kind.
func (r *Reader) checkColumnKinds(dataRows [][]string, positions map[string]int) error {
	for _, field := range r.descriptor.Fields {
		ok := columnMatchesKind(dataRows, positions[field.Name], field.Kind)
		if err := checks.Condition(checks.InputContract, ok, "%s column is %s type", field.Name, field.Kind); err != nil {
			return err
		}
	}
	return nil
}

// columnMatchesKind reports whether one column satisfies a field kind.
// A Text column fails when every value is numeric, mirroring how a numeric
// identifier column would be read as a numeric dtype rather than text.
func columnMatchesKind(dataRows [][]string, pos int, kind schema.FieldKind) bool {
	numericCount := 0

	for _, row := range dataRows {
		if pos >= len(row) {
			return false
		}
		value := row[pos]

		switch kind {
		case schema.Integer:
			if _, err := strconv.Atoi(value); err != nil {
				return false
			}
		case schema.Numeric:
			if _, err := decimal.NewFromString(value); err != nil {
				return false
			}
		case schema.Text:
			if _, err := decimal.NewFromString(value); err == nil {
				numericCount++
			}
		}
	}

	if kind == schema.Text && numericCount == len(dataRows) {
		return false
	}

	return true
}

// buildRecords converts validated data rows into records.
func buildRecords(dataRows [][]string, positions map[string]int) ([]triangle.IncrementalRecord, error) {
	records := make([]triangle.IncrementalRecord, 0, len(dataRows))

	for i, row := range dataRows {
		originYear, err := strconv.Atoi(row[positions[schema.ColumnOriginYear]])
		if err != nil {
			return nil, fmt.Errorf("row %d: invalid origin year: %w", i+2, err)
		}

		developmentYear, err := strconv.Atoi(row[positions[schema.ColumnDevelopmentYear]])
		if err != nil {
			return nil, fmt.Errorf("row %d: invalid development year: %w", i+2, err)
		}

		incrementalValue, err := decimal.NewFromString(row[positions[schema.ColumnIncrementalValue]])
		if err != nil {
			return nil, fmt.Errorf("row %d: invalid incremental value: %w", i+2, err)
		}

		records = append(records, triangle.IncrementalRecord{
			Product:          row[positions[schema.ColumnProduct]],
			OriginYear:       originYear,
			DevelopmentYear:  developmentYear,
			IncrementalValue: incrementalValue,
		})
	}

	return records, nil
}

// sortRecords sorts ascending by product, then origin year, then
// development year.
func sortRecords(records []triangle.IncrementalRecord) {
	sort.SliceStable(records, func(i, j int) bool {
		if records[i].Product != records[j].Product {
			return records[i].Product < records[j].Product
		}
		if records[i].OriginYear != records[j].OriginYear {
			return records[i].OriginYear < records[j].OriginYear
		}
		return records[i].DevelopmentYear < records[j].DevelopmentYear
	})
}
