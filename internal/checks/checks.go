// =============================================================================
// Triangle Accumulator - Contract Checks
// =============================================================================
//
// This package provides the structured precondition checks used on the
// ingestion and emission boundaries. A failed check carries an error kind
// (which side of the pipeline rejected the run) plus the text of the unmet
// condition, so the CLI can exit non-zero and surface exactly which contract
// was violated.
//
// ERROR HANDLING STRATEGY:
//   - Checks fail fast: the first unmet condition aborts the run
//   - No partial results: all input checks pass before accumulation starts,
//     all output checks pass before any byte is written
//
// =============================================================================

package checks

import "fmt"

// Kind classifies which boundary contract a failed check belongs to.
type Kind int

const (
	// InputContract covers ingestion-side violations: bad extension,
	// missing file, missing or mistyped columns, empty data.
	InputContract Kind = iota

	// OutputContract covers emission-side violations: bad extension,
	// destination already exists.
	OutputContract
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case InputContract:
		return "input contract"
	case OutputContract:
		return "output contract"
	default:
		return "unknown contract"
	}
}

// Error is a failed boundary check.
type Error struct {
	// Kind is the boundary contract that was violated.
	Kind Kind

	// Condition is the text of the condition that was not met,
	// e.g. "filename has one extension".
	Condition string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("condition: [%s] not met", e.Condition)
}

// Condition verifies that ok holds and returns a contract error naming the
// unmet condition if it does not.
//
// PARAMETERS:
//   - kind: The boundary contract the condition belongs to.
//   - ok: The outcome of evaluating the condition.
//   - condition: Text describing the condition, named positively
//     (what must be true), optionally with printf-style arguments.
func Condition(kind Kind, ok bool, condition string, args ...interface{}) error {
	if ok {
		return nil
	}
	return &Error{
		Kind:      kind,
		Condition: fmt.Sprintf(condition, args...),
	}
}
