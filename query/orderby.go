package query

import (
	"fmt"
	"sort"

	"github.com/vegasq/tablecat/table"
)

// OrderBy sorts result rows by one or more columns using string ordering.
type OrderBy struct {
	Columns []string
	Desc    bool
}

// NewOrderBy builds the clause from tokens beginning at the ORDER keyword:
// ORDER BY col [col ...] [ASC|DESC]. The scanner has already eaten the
// commas between column names. Without a direction the sort is ascending.
func NewOrderBy(tokens []string) (*OrderBy, error) {
	if len(tokens) < 3 {
		return nil, fmt.Errorf("%w: ORDER BY clause needs a column", ErrInvalidSyntax)
	}
	if tokens[0] != "ORDER" || tokens[1] != "BY" {
		return nil, fmt.Errorf("%w: expected ORDER BY, got %q %q", ErrInvalidSyntax, tokens[0], tokens[1])
	}

	clause := &OrderBy{}
	i := 2
	for i < len(tokens) && tokens[i] != "ASC" && tokens[i] != "DESC" {
		clause.Columns = append(clause.Columns, tokens[i])
		i++
	}
	if len(clause.Columns) == 0 {
		return nil, fmt.Errorf("%w: ORDER BY clause needs a column", ErrInvalidSyntax)
	}
	if i < len(tokens) {
		clause.Desc = tokens[i] == "DESC"
	}

	return clause, nil
}

// Sort orders rows in place. Later columns break ties left by earlier ones;
// a row missing a sort column compares equal on that column.
func (o *OrderBy) Sort(rows []table.Row) {
	sort.SliceStable(rows, func(i, j int) bool {
		for _, col := range o.Columns {
			a, aok := rows[i][col]
			b, bok := rows[j][col]
			if !aok || !bok || a == b {
				continue
			}
			if o.Desc {
				return a > b
			}
			return a < b
		}
		return false
	})
}
