package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Operator is a comparison supported by the record store.
type Operator string

const (
	OpEq  Operator = "eq"
	OpGte Operator = "gte"
	OpLte Operator = "lte"
)

// Condition restricts a query to rows whose Column compares to Value.
type Condition struct {
	Column string
	Op     Operator
	Value  any
}

// Search is a case-insensitive substring match over two columns joined by OR.
type Search struct {
	Term    string
	Columns [2]string
}

// Query describes a select against a single table: filter, ordering and limit.
// The zero value selects every row ordered by created_at descending.
type Query struct {
	Conditions []Condition
	Search     *Search
	OrderBy    string // Defaults to created_at
	Ascending  bool
	Limit      int // 0 means no limit
}

// NewQuery returns a query ordered by created_at descending.
func NewQuery() Query {
	return Query{OrderBy: ColumnCreatedAt}
}

func (q Query) where(column string, op Operator, value any) Query {
	conds := make([]Condition, len(q.Conditions), len(q.Conditions)+1)
	copy(conds, q.Conditions)
	q.Conditions = append(conds, Condition{Column: column, Op: op, Value: value})
	return q
}

// Eq adds an equality condition.
func (q Query) Eq(column string, value any) Query { return q.where(column, OpEq, value) }

// Gte adds a greater-or-equal condition.
func (q Query) Gte(column string, value any) Query { return q.where(column, OpGte, value) }

// Lte adds a less-or-equal condition.
func (q Query) Lte(column string, value any) Query { return q.where(column, OpLte, value) }

// WithSearch matches term against either column. An empty term is ignored.
func (q Query) WithSearch(term, first, second string) Query {
	term = strings.TrimSpace(term)
	if term == "" {
		q.Search = nil
		return q
	}
	q.Search = &Search{Term: term, Columns: [2]string{first, second}}
	return q
}

// OrderedBy sets the sort column and direction.
func (q Query) OrderedBy(column string, ascending bool) Query {
	q.OrderBy = column
	q.Ascending = ascending
	return q
}

// WithLimit caps the number of returned rows.
func (q Query) WithLimit(limit int) Query {
	q.Limit = limit
	return q
}

// SortColumn returns the effective order column.
func (q Query) SortColumn() string {
	if q.OrderBy == "" {
		return ColumnCreatedAt
	}
	return q.OrderBy
}

// Key renders the query as a stable string, used to build cache keys.
func (q Query) Key() string {
	var b strings.Builder
	for _, c := range q.Conditions {
		fmt.Fprintf(&b, "%s.%s=%s;", c.Column, c.Op, formatValue(c.Value))
	}
	if q.Search != nil {
		fmt.Fprintf(&b, "search(%s|%s)=%s;", q.Search.Columns[0], q.Search.Columns[1], strings.ToLower(q.Search.Term))
	}
	dir := "desc"
	if q.Ascending {
		dir = "asc"
	}
	fmt.Fprintf(&b, "order=%s.%s;limit=%d", q.SortColumn(), dir, q.Limit)
	return b.String()
}

func formatValue(v any) string {
	switch val := v.(type) {
	case time.Time:
		return val.UTC().Format(time.RFC3339Nano)
	case decimal.Decimal:
		return val.String()
	case fmt.Stringer:
		return val.String()
	default:
		return fmt.Sprint(val)
	}
}
