// Package memory is an in-process record store evaluating domain.Query on
// structs. It backs STORE_DRIVER=memory and behavioural tests.
package memory

import (
	"cmp"
	"fmt"
	"reflect"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/SscSPs/workplace_services/internal/apperrors"
	"github.com/SscSPs/workplace_services/internal/core/domain"
	"github.com/shopspring/decimal"
)

// fieldFunc returns the value of column for a record. ok is false for unknown columns.
// A nil value stands for NULL.
type fieldFunc[T any] func(rec T, column string) (value any, ok bool)

type table[T any] struct {
	mu    sync.RWMutex
	name  string
	rows  map[string]T
	id    func(T) string
	field fieldFunc[T]
}

func newTable[T any](name string, id func(T) string, field fieldFunc[T]) *table[T] {
	return &table[T]{name: name, rows: make(map[string]T), id: id, field: field}
}

func (t *table[T]) list(q domain.Query) ([]T, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	out := make([]T, 0, len(t.rows))
	for _, rec := range t.rows {
		ok, err := t.matches(rec, q)
		if err != nil {
			return nil, err
		}
		if ok {
			out = append(out, rec)
		}
	}

	order := q.SortColumn()
	var sortErr error
	slices.SortStableFunc(out, func(a, b T) int {
		av, _ := t.field(a, order)
		bv, _ := t.field(b, order)
		c, err := compare(av, bv)
		if err != nil {
			sortErr = err
		}
		if c == 0 {
			c = strings.Compare(t.id(a), t.id(b))
		}
		if !q.Ascending {
			c = -c
		}
		return c
	})
	if sortErr != nil {
		return nil, sortErr
	}

	if q.Limit > 0 && len(out) > q.Limit {
		out = out[:q.Limit]
	}
	return out, nil
}

func (t *table[T]) count(q domain.Query) (int64, error) {
	rows, err := t.list(q.WithLimit(0))
	if err != nil {
		return 0, err
	}
	return int64(len(rows)), nil
}

func (t *table[T]) find(id string) (T, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	rec, ok := t.rows[id]
	if !ok {
		var zero T
		return zero, apperrors.ErrNotFound
	}
	return rec, nil
}

func (t *table[T]) insert(rec T) (T, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	id := t.id(rec)
	if _, exists := t.rows[id]; exists {
		var zero T
		return zero, apperrors.NewFetchError("insert "+t.name, fmt.Errorf("duplicate id %s", id))
	}
	t.rows[id] = rec
	return rec, nil
}

func (t *table[T]) update(id string, apply func(*T)) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	rec, ok := t.rows[id]
	if !ok {
		return apperrors.ErrNotFound
	}
	apply(&rec)
	t.rows[id] = rec
	return nil
}

func (t *table[T]) delete(id string) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if _, ok := t.rows[id]; !ok {
		return apperrors.ErrNotFound
	}
	delete(t.rows, id)
	return nil
}

func (t *table[T]) matches(rec T, q domain.Query) (bool, error) {
	for _, c := range q.Conditions {
		v, ok := t.field(rec, c.Column)
		if !ok {
			return false, fmt.Errorf("%s: unknown column %q", t.name, c.Column)
		}
		if v == nil || c.Value == nil {
			return false, nil
		}
		r, err := compare(v, c.Value)
		if err != nil {
			return false, err
		}
		switch c.Op {
		case domain.OpEq:
			if r != 0 {
				return false, nil
			}
		case domain.OpGte:
			if r < 0 {
				return false, nil
			}
		case domain.OpLte:
			if r > 0 {
				return false, nil
			}
		default:
			return false, fmt.Errorf("%s: unsupported operator %q", t.name, c.Op)
		}
	}

	if s := q.Search; s != nil {
		term := strings.ToLower(s.Term)
		hit := false
		for _, col := range s.Columns {
			v, ok := t.field(rec, col)
			if !ok {
				return false, fmt.Errorf("%s: unknown column %q", t.name, col)
			}
			if str, isStr := v.(string); isStr && strings.Contains(strings.ToLower(str), term) {
				hit = true
				break
			}
		}
		if !hit {
			return false, nil
		}
	}
	return true, nil
}

// compare orders two column values. NULL sorts first.
func compare(a, b any) (int, error) {
	switch {
	case a == nil && b == nil:
		return 0, nil
	case a == nil:
		return -1, nil
	case b == nil:
		return 1, nil
	}

	switch av := a.(type) {
	case time.Time:
		if bv, ok := b.(time.Time); ok {
			return av.Compare(bv), nil
		}
	case decimal.Decimal:
		if bv, ok := b.(decimal.Decimal); ok {
			return av.Cmp(bv), nil
		}
	}

	ra, rb := reflect.ValueOf(a), reflect.ValueOf(b)
	switch {
	case ra.Kind() == reflect.String && rb.Kind() == reflect.String:
		return strings.Compare(ra.String(), rb.String()), nil
	case ra.CanInt() && rb.CanInt():
		return cmp.Compare(ra.Int(), rb.Int()), nil
	}
	return 0, fmt.Errorf("cannot compare %T with %T", a, b)
}

// dateOrNil turns an optional date into a column value.
func dateOrNil(t *time.Time) any {
	if t == nil {
		return nil
	}
	return *t
}
