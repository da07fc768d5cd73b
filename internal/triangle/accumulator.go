// =============================================================================
// Triangle Accumulator - Accumulation Engine
// =============================================================================
//
// This file contains the core accumulation algorithm: grouping incremental
// records by product and rolling them up into cumulative loss-development
// triangles.
//
// NUMERIC CONTRACT:
//   - The running total is rounded to 2 decimal places at every accumulation
//     step, not only at the end. The serialized value at every development
//     point is the authoritative cumulative figure to 2 decimal places.
//   - A cell with no matching records contributes exactly 0: the cumulative
//     value repeats the prior running total.
//
// ORDERING CONTRACT:
//   - Origin years ascend from the overall minimum origin year to the overall
//     maximum development year; development years ascend from the origin year
//     to the overall maximum development year. The flattened output order is
//     observable and must not change.
//
// =============================================================================

package triangle

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// roundPlaces is the number of decimal places the running total is rounded
// to at each accumulation step.
const roundPlaces = 2

// AccumulatedResult is the output of one accumulation run. It is created
// once, consumed by the formatter, then discarded.
type AccumulatedResult struct {
	// MinOriginYear is the minimum origin year across all input records.
	MinOriginYear int

	// NDevelopmentYears is the number of development periods:
	// (max development year across all records) - MinOriginYear + 1.
	NDevelopmentYears int

	// products holds the product names in first-seen input order.
	products []string

	// accumulated maps each product to its flattened cumulative sequence.
	accumulated map[string][]decimal.Decimal
}

// Products returns the product names in first-seen input order.
func (r *AccumulatedResult) Products() []string {
	return r.products
}

// Values returns the flattened cumulative sequence for one product.
func (r *AccumulatedResult) Values(product string) []decimal.Decimal {
	return r.accumulated[product]
}

// Accumulate transforms a flat collection of incremental records into an
// AccumulatedResult.
//
// PARAMETERS:
//   - records: The input rows. Need not be sorted; grouping and iteration
//     are explicit. Must be non-empty.
//
// RETURNS:
//   - The accumulated result.
//   - An error if records is empty, which is a caller contract violation:
//     the ingestion collaborator rejects empty input before this point.
//
// ALGORITHM:
//   For each product, in first-seen order:
//     for originYear in minOriginYear..maxDevelopmentYear ascending:
//       runningTotal = 0
//       for developmentYear in originYear..maxDevelopmentYear ascending:
//         runningTotal = round2(runningTotal + sum of records matching
//                               (originYear, developmentYear))
//         append runningTotal
//
//   The outer loop deliberately runs to the overall maximum development
//   year, not the maximum origin year, so the triangle spans the full
//   development horizon even for origin years with no late-development
//   data. Origin year minOriginYear contributes NDevelopmentYears values,
//   each following origin year one fewer, down to a single value.
func Accumulate(records []IncrementalRecord) (*AccumulatedResult, error) {
	if len(records) == 0 {
		return nil, fmt.Errorf("no records to accumulate")
	}

	minOriginYear := records[0].OriginYear
	maxDevelopmentYear := records[0].DevelopmentYear
	for _, r := range records {
		if r.OriginYear < minOriginYear {
			minOriginYear = r.OriginYear
		}
		if r.DevelopmentYear > maxDevelopmentYear {
			maxDevelopmentYear = r.DevelopmentYear
		}
	}

	result := &AccumulatedResult{
		MinOriginYear:     minOriginYear,
		NDevelopmentYears: maxDevelopmentYear - minOriginYear + 1,
		accumulated:       make(map[string][]decimal.Decimal),
	}

	set := NewTriangleSet(records)
	result.products = set.Products()

	for _, product := range set.Products() {
		result.accumulated[product] = accumulateProduct(
			set.Records(product), minOriginYear, maxDevelopmentYear,
		)
	}

	return result, nil
}

// accumulateProduct computes the flattened cumulative sequence for the
// records of a single product.
func accumulateProduct(records []IncrementalRecord, minOriginYear, maxDevelopmentYear int) []decimal.Decimal {
	var values []decimal.Decimal

	for originYear := minOriginYear; originYear <= maxDevelopmentYear; originYear++ {
		runningTotal := decimal.Zero

		for developmentYear := originYear; developmentYear <= maxDevelopmentYear; developmentYear++ {
			matched := decimal.Zero
			for _, r := range records {
				if r.OriginYear == originYear && r.DevelopmentYear == developmentYear {
					matched = matched.Add(r.IncrementalValue)
				}
			}

			runningTotal = runningTotal.Add(matched).Round(roundPlaces)
			values = append(values, runningTotal)
		}
	}

	return values
}
