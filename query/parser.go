package query

import "fmt"

// ParseCondition builds a condition tree from tokens, starting at *pos.
//
// The grammar, loosest binding first:
//
//	expr    := and ( "OR" and )*
//	and     := unary ( "AND" unary )*
//	unary   := "NOT" unary | primary
//	primary := group | field op value      op is "=", ">" or "<"
//
// Repeated AND/OR chains fold into a left-leaning tree. The cursor is
// advanced past every consumed token and left at the offending token when
// parsing fails; no partial tree is returned.
func ParseCondition(tokens []string, pos *int) (Condition, error) {
	return parseOr(tokens, pos)
}

// parseOr parses OR chains (lowest precedence).
func parseOr(tokens []string, pos *int) (Condition, error) {
	left, err := parseAnd(tokens, pos)
	if err != nil {
		return nil, err
	}

	for *pos < len(tokens) && tokens[*pos] == "OR" {
		*pos++
		right, err := parseAnd(tokens, pos)
		if err != nil {
			return nil, err
		}
		left = &Binary{Left: left, Operator: Or, Right: right}
	}

	return left, nil
}

// parseAnd parses AND chains (binds tighter than OR).
func parseAnd(tokens []string, pos *int) (Condition, error) {
	left, err := parseUnary(tokens, pos)
	if err != nil {
		return nil, err
	}

	for *pos < len(tokens) && tokens[*pos] == "AND" {
		*pos++
		right, err := parseUnary(tokens, pos)
		if err != nil {
			return nil, err
		}
		left = &Binary{Left: left, Operator: And, Right: right}
	}

	return left, nil
}

// parseUnary parses NOT prefixes. NOT is right-associative and binds tighter
// than AND.
func parseUnary(tokens []string, pos *int) (Condition, error) {
	if *pos < len(tokens) && tokens[*pos] == "NOT" {
		*pos++
		right, err := parseUnary(tokens, pos)
		if err != nil {
			return nil, err
		}
		return &Not{Right: right}, nil
	}
	return parsePrimary(tokens, pos)
}

// parsePrimary parses a grouped sub-expression or a simple comparison.
//
// A parenthesized group survives scanning as one token holding the whole
// span, so re-scanning the current token tells a group apart from a plain
// field name: a field re-scans to itself, a group re-scans to the tokens of
// the enclosed expression.
func parsePrimary(tokens []string, pos *int) (Condition, error) {
	if *pos >= len(tokens) {
		return nil, fmt.Errorf("%w: expected condition, found end of statement", ErrInvalidSyntax)
	}

	group := Tokenize(tokens[*pos])
	if len(group) > 1 {
		inner := 0
		cond, err := ParseCondition(group, &inner)
		if err != nil {
			return nil, err
		}
		if inner != len(group) {
			return nil, fmt.Errorf("%w: trailing tokens in grouped condition %q", ErrInvalidSyntax, tokens[*pos])
		}
		*pos++
		return cond, nil
	}

	return parseSimple(tokens, pos)
}

// parseSimple consumes exactly three tokens: field, operator, value.
func parseSimple(tokens []string, pos *int) (Condition, error) {
	if len(tokens)-*pos < 3 {
		return nil, fmt.Errorf("%w: condition needs field, operator and value", ErrInvalidSyntax)
	}

	field := tokens[*pos]
	*pos++

	var op CompareOp
	switch tokens[*pos] {
	case "=":
		op = Equal
	case ">":
		op = Greater
	case "<":
		op = Lesser
	default:
		return nil, fmt.Errorf("%w: unknown operator %q", ErrInvalidSyntax, tokens[*pos])
	}
	*pos++

	value := tokens[*pos]
	*pos++

	return &Simple{Field: field, Operator: op, Value: value}, nil
}
