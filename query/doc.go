// Package query provides SQL statement parsing and row filtering for CSV tables.
//
// It implements a small SQL dialect with SELECT, INSERT, UPDATE and DELETE
// statements, WHERE clauses with comparison operators and boolean logic
// (AND/OR/NOT with parenthesized grouping), and ORDER BY sorting. The package
// includes a tokenizer, a recursive-descent condition parser, and per-row
// condition evaluation.
//
// Example usage:
//
//	tokens := query.Tokenize("SELECT * FROM clients WHERE age > 18")
//	stmt, err := query.ParseStatement(tokens)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	result, err := stmt.(*query.Select).Apply(tbl)
//
// All values are strings: comparisons use string ordering, and a comparison
// that mixes a numeric-looking operand with a non-numeric one is rejected.
package query
