package query

import "errors"

// Error kinds surfaced by parsing and evaluation. Callers match them with
// errors.Is; the wrapped message carries the detail.
var (
	// ErrInvalidSyntax is returned for a structurally invalid statement or
	// condition: too few tokens, an unknown operator, a malformed group, or
	// a comparison mixing a numeric operand with a non-numeric one.
	ErrInvalidSyntax = errors.New("invalid syntax")

	// ErrMissingData is returned when evaluation needs something the input
	// does not have: a referenced field absent from the row, or a binary
	// condition without its left operand.
	ErrMissingData = errors.New("missing data")

	// ErrInvalidColumn is returned when a statement references a column the
	// table does not have.
	ErrInvalidColumn = errors.New("invalid column")
)
