// =============================================================================
// Triangle Accumulator - Input Schema Descriptor
// =============================================================================
//
// This package defines the schema descriptor for the incremental-data input
// file: the ordered list of required columns and the kind of value each must
// hold. The descriptor is passed explicitly into the reader rather than
// shared as package-level constants, so the contract between the collaborators
// is an inspectable value.
//
// =============================================================================

package schema

// FieldKind is the kind of value a schema column must hold.
type FieldKind int

const (
	// Text accepts any value, but rejects a column that is entirely
	// numeric (a numeric column is taken to be a mistyped identifier).
	Text FieldKind = iota

	// Integer requires every value in the column to parse as an integer.
	Integer

	// Numeric requires every value in the column to parse as a decimal
	// number (integer or fractional).
	Numeric
)

// String returns the name of the kind as used in condition messages.
func (k FieldKind) String() string {
	switch k {
	case Text:
		return "object"
	case Integer:
		return "integer"
	case Numeric:
		return "numeric"
	default:
		return "unknown"
	}
}

// Field is one required column of the input file.
type Field struct {
	// Name is the exact column header.
	Name string

	// Kind is the kind of value every cell in the column must hold.
	Kind FieldKind
}

// Descriptor is the ordered set of required columns. Column order in the
// file itself is free; the descriptor order is the canonical record order
// (product, origin year, development year, incremental value).
type Descriptor struct {
	Fields []Field
}

// Canonical column headers of the incremental-data schema.
const (
	ColumnProduct          = "Product"
	ColumnOriginYear       = "Origin Year"
	ColumnDevelopmentYear  = "Development Year"
	ColumnIncrementalValue = "Incremental Value"
)

// Incremental returns the descriptor for the incremental claim-payment
// input file.
func Incremental() Descriptor {
	return Descriptor{
		Fields: []Field{
			{Name: ColumnProduct, Kind: Text},
			{Name: ColumnOriginYear, Kind: Integer},
			{Name: ColumnDevelopmentYear, Kind: Integer},
			{Name: ColumnIncrementalValue, Kind: Numeric},
		},
	}
}

// Names returns the column headers in descriptor order.
func (d Descriptor) Names() []string {
	names := make([]string, len(d.Fields))
	for i, f := range d.Fields {
		names[i] = f.Name
	}
	return names
}
