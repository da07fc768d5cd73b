// =============================================================================
// Triangle Accumulator - Record Types
// =============================================================================
//
// This file defines the record types shared between the reader and the
// accumulation engine: a single incremental claim-payment row, and the
// per-product grouping of those rows that one accumulation run works over.
//
// =============================================================================

package triangle

import "github.com/shopspring/decimal"

// IncrementalRecord is one input row: a payment amount recorded for one
// (product, origin year, development year) cell. Records are immutable once
// read; multiple records may share the same cell and are summed.
type IncrementalRecord struct {
	// Product is the grouping key identifying an independent triangle.
	Product string

	// OriginYear is the year the underlying claim occurred.
	OriginYear int

	// DevelopmentYear is the year the payment was made. A record with
	// DevelopmentYear < OriginYear matches no accumulation cell and is
	// silently excluded from all sums.
	DevelopmentYear int

	// IncrementalValue is the payment amount for the cell.
	IncrementalValue decimal.Decimal
}

// TriangleSet groups records by product, preserving the order in which
// products are first seen in the input. It is derived once per run and
// discarded after accumulation.
type TriangleSet struct {
	// products holds the product names in first-seen order.
	products []string

	// records maps each product to its rows.
	records map[string][]IncrementalRecord
}

// NewTriangleSet groups records by product.
func NewTriangleSet(records []IncrementalRecord) *TriangleSet {
	ts := &TriangleSet{
		records: make(map[string][]IncrementalRecord),
	}

	for _, r := range records {
		// Maintain order of first occurrence.
		if _, exists := ts.records[r.Product]; !exists {
			ts.products = append(ts.products, r.Product)
		}
		ts.records[r.Product] = append(ts.records[r.Product], r)
	}

	return ts
}

// Products returns the product names in first-seen order.
func (ts *TriangleSet) Products() []string {
	return ts.products
}

// Records returns the rows belonging to one product.
func (ts *TriangleSet) Records(product string) []IncrementalRecord {
	return ts.records[product]
}
