// =============================================================================
// Triangle Accumulator - Output Formatter
// =============================================================================
//
// This file converts an AccumulatedResult into the canonical line-based
// output representation:
//
//   {minOriginYear},{nDevelopmentYears}
//   {product},{v1},{v2},...,{vN}        (one line per product)
//
// Lines carry no trailing separators; newline termination is an emission
// concern, not a formatting one.
//
// =============================================================================

package triangle

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Lines renders the result as its ordered output lines. The first line holds
// the minimum origin year and the number of development years as two
// comma-separated integers; each following line holds one product in
// first-seen input order.
//
// NUMERIC RENDERING:
//   Values render via decimal.Decimal.String, which trims trailing zeros:
//   integral values render without a decimal point ("9", never "9.00"),
//   non-integral values with at most 2 fractional digits. This is the
//   canonical serialization rule for the output format.
//
// A product with zero accumulated values renders as "{product}," with a
// trailing comma and an empty value list.
func (r *AccumulatedResult) Lines() []string {
	lines := make([]string, 0, len(r.products)+1)
	lines = append(lines, fmt.Sprintf("%d,%d", r.MinOriginYear, r.NDevelopmentYears))

	for _, product := range r.products {
		lines = append(lines, formatProductLine(product, r.accumulated[product]))
	}

	return lines
}

// formatProductLine joins a product name and its cumulative values with
// comma separators.
func formatProductLine(product string, values []decimal.Decimal) string {
	parts := make([]string, 0, len(values)+1)
	parts = append(parts, product)
	for _, v := range values {
		parts = append(parts, v.String())
	}
	return strings.Join(parts, ",")
}
