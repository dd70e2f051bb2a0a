package query

import "fmt"

// Where filters rows with a boolean condition.
type Where struct {
	Condition Condition
}

// NewWhere builds the clause from tokens beginning at the WHERE keyword.
// The condition must consume every remaining token.
func NewWhere(tokens []string) (*Where, error) {
	if len(tokens) < 4 {
		return nil, fmt.Errorf("%w: WHERE clause needs a condition", ErrInvalidSyntax)
	}

	pos := 1 // skip WHERE
	condition, err := ParseCondition(tokens, &pos)
	if err != nil {
		return nil, err
	}
	if pos != len(tokens) {
		return nil, fmt.Errorf("%w: unexpected token %q after condition", ErrInvalidSyntax, tokens[pos])
	}

	return &Where{Condition: condition}, nil
}

// Matches evaluates the condition against one row.
func (w *Where) Matches(row map[string]string) (bool, error) {
	return w.Condition.Evaluate(row)
}
