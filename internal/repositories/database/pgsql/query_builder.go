package pgsql

import (
	"fmt"
	"strings"

	"github.com/SscSPs/workplace_services/internal/core/domain"
)

// table describes a store table: its name and the columns a query may touch.
// columns is also the select list, in scan order.
type table struct {
	name    string
	columns []string
}

func (t table) allows(column string) bool {
	for _, c := range t.columns {
		if c == column {
			return true
		}
	}
	return false
}

func (t table) columnList() string {
	return strings.Join(t.columns, ", ")
}

var sqlOperators = map[domain.Operator]string{
	domain.OpEq:  "=",
	domain.OpGte: ">=",
	domain.OpLte: "<=",
}

// whereSQL renders q's conditions and search, numbering placeholders from first.
// It returns "" when q has no filter.
func (t table) whereSQL(q domain.Query, first int) (string, []any, error) {
	var (
		clauses []string
		args    []any
	)
	next := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", first+len(args)-1)
	}

	for _, c := range q.Conditions {
		if !t.allows(c.Column) {
			return "", nil, fmt.Errorf("%s: unknown column %q", t.name, c.Column)
		}
		op, ok := sqlOperators[c.Op]
		if !ok {
			return "", nil, fmt.Errorf("%s: unsupported operator %q", t.name, c.Op)
		}
		clauses = append(clauses, fmt.Sprintf("%s %s %s", c.Column, op, next(c.Value)))
	}

	if s := q.Search; s != nil {
		for _, c := range s.Columns {
			if !t.allows(c) {
				return "", nil, fmt.Errorf("%s: unknown column %q", t.name, c)
			}
		}
		p := next("%" + escapeLike(s.Term) + "%")
		clauses = append(clauses, fmt.Sprintf("(%s ILIKE %s OR %s ILIKE %s)", s.Columns[0], p, s.Columns[1], p))
	}

	if len(clauses) == 0 {
		return "", nil, nil
	}
	return " WHERE " + strings.Join(clauses, " AND "), args, nil
}

// selectSQL renders a full select for q.
func (t table) selectSQL(q domain.Query) (string, []any, error) {
	where, args, err := t.whereSQL(q, 1)
	if err != nil {
		return "", nil, err
	}

	order := q.SortColumn()
	if !t.allows(order) {
		return "", nil, fmt.Errorf("%s: unknown order column %q", t.name, order)
	}
	dir := "DESC"
	if q.Ascending {
		dir = "ASC"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "SELECT %s FROM %s%s ORDER BY %s %s, %s %s", t.columnList(), t.name, where, order, dir, domain.ColumnID, dir)
	if q.Limit > 0 {
		fmt.Fprintf(&b, " LIMIT %d", q.Limit)
	}
	return b.String(), args, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
