package query

import "fmt"

// Statement is one executable statement produced by ParseStatement.
type Statement interface {
	// TableName reports the table the statement operates on.
	TableName() string
}

// ParseStatement dispatches on the leading keyword of a tokenized statement
// and hands the full token slice to the matching builder.
func ParseStatement(tokens []string) (Statement, error) {
	if len(tokens) == 0 {
		return nil, fmt.Errorf("%w: empty statement", ErrInvalidSyntax)
	}

	switch tokens[0] {
	case "SELECT":
		return NewSelect(tokens)
	case "INSERT":
		return NewInsert(tokens)
	case "UPDATE":
		return NewUpdate(tokens)
	case "DELETE":
		return NewDelete(tokens)
	default:
		return nil, fmt.Errorf("%w: unknown statement %q", ErrInvalidSyntax, tokens[0])
	}
}

func contains(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}
	return false
}
