package query

import (
	"fmt"
	"strconv"
)

// CompareOp is the comparison operator of a simple condition.
type CompareOp int

const (
	Equal CompareOp = iota
	Greater
	Lesser
)

func (op CompareOp) String() string {
	switch op {
	case Equal:
		return "="
	case Greater:
		return ">"
	case Lesser:
		return "<"
	default:
		return "?"
	}
}

// LogicalOp combines two subtrees in a binary condition. Negation is its own
// node shape (Not) rather than an operator value.
type LogicalOp int

const (
	And LogicalOp = iota
	Or
)

func (op LogicalOp) String() string {
	if op == Or {
		return "OR"
	}
	return "AND"
}

// Condition is one node of a boolean filter tree, evaluated against a single
// row of named string values. Trees are built once by the parser and never
// mutated afterwards.
type Condition interface {
	Evaluate(row map[string]string) (bool, error)
}

// Simple is a leaf comparing one field of the row against a literal value.
type Simple struct {
	Field    string
	Operator CompareOp
	Value    string
}

// Binary combines two subtrees with AND or OR. Left must be set; a tree
// built by the parser always has it, and a hand-built node without it fails
// evaluation with ErrMissingData.
type Binary struct {
	Left     Condition
	Operator LogicalOp
	Right    Condition
}

// Not negates its operand.
type Not struct {
	Right Condition
}

// isNumber reports whether s parses as a 32-bit signed integer.
func isNumber(s string) bool {
	_, err := strconv.ParseInt(s, 10, 32)
	return err == nil
}

// Evaluate looks the field up in the row and compares its value against the
// literal. A field absent from the row is ErrMissingData. Both sides must be
// numeric or both non-numeric, otherwise the comparison is rejected with
// ErrInvalidSyntax.
//
// Ordering is string ordering even when both operands look numeric, so
// "9" > "18" holds. Numeric-looking operands gate the type check only; they
// are never converted before comparing.
func (c *Simple) Evaluate(row map[string]string) (bool, error) {
	have, ok := row[c.Field]
	if !ok {
		return false, fmt.Errorf("%w: field %q not in row", ErrMissingData, c.Field)
	}

	if isNumber(have) != isNumber(c.Value) {
		return false, fmt.Errorf("%w: cannot compare %q with %q", ErrInvalidSyntax, have, c.Value)
	}

	switch c.Operator {
	case Equal:
		return have == c.Value, nil
	case Greater:
		return have > c.Value, nil
	case Lesser:
		return have < c.Value, nil
	default:
		return false, fmt.Errorf("%w: unknown comparison operator", ErrInvalidSyntax)
	}
}

// Evaluate evaluates both subtrees and combines the results. There is no
// short-circuit: an error on the right side surfaces even when the left side
// already decides the result.
func (c *Binary) Evaluate(row map[string]string) (bool, error) {
	if c.Left == nil {
		return false, fmt.Errorf("%w: %s condition without left operand", ErrMissingData, c.Operator)
	}

	left, err := c.Left.Evaluate(row)
	if err != nil {
		return false, err
	}
	right, err := c.Right.Evaluate(row)
	if err != nil {
		return false, err
	}

	if c.Operator == Or {
		return left || right, nil
	}
	return left && right, nil
}

// Evaluate negates the operand's result.
func (c *Not) Evaluate(row map[string]string) (bool, error) {
	result, err := c.Right.Evaluate(row)
	if err != nil {
		return false, err
	}
	return !result, nil
}
