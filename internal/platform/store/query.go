package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/medrec/medrec/internal/platform/apperr"
)

// Query is a lazy, composable query over all rows of T. Where, SortBy, Skip
// and Take each return a new value and never touch the store; only the
// terminal methods (All, Count, Page) execute SQL. The select list is the
// entity's scalar column projection; relations are never fetched.
type Query[T any] struct {
	sess    Session
	meta    Meta[T]
	conds   []Cond
	orderBy string
	skip    int
	take    int
	hasSkip bool
	hasTake bool
}

// Where narrows the query with additional predicates, combined conjunctively.
func (q Query[T]) Where(conds ...Cond) Query[T] {
	q.conds = append(append([]Cond(nil), q.conds...), conds...)
	return q
}

// SortBy applies exactly one sort key chosen from the allow-list. The key is
// matched case-insensitively against allowed (sort key -> column); an
// unrecognized or empty key falls back to defaultCol. The surrogate id is
// always appended as a secondary key so pagination over equal values is
// deterministic across calls.
func (q Query[T]) SortBy(key string, allowed map[string]string, defaultCol string, desc bool) Query[T] {
	col, ok := allowed[strings.ToLower(key)]
	if !ok {
		col = defaultCol
	}
	dir := "ASC"
	if desc {
		dir = "DESC"
	}
	q.orderBy = col + " " + dir
	if col != "id" {
		q.orderBy += ", id ASC"
	}
	return q
}

// Skip offsets the result set by n rows.
func (q Query[T]) Skip(n int) Query[T] {
	q.skip = n
	q.hasSkip = true
	return q
}

// Take limits the result set to n rows.
func (q Query[T]) Take(n int) Query[T] {
	q.take = n
	q.hasTake = true
	return q
}

func (q Query[T]) whereSQL(start int) (string, []any, int) {
	var sb strings.Builder
	var args []any
	n := start
	for _, c := range q.conds {
		sb.WriteString(" AND ")
		expr, next := renumber(c.expr, n)
		sb.WriteString(expr)
		args = append(args, c.args...)
		n = next
	}
	return sb.String(), args, n
}

func (q Query[T]) countSQL() (string, []any) {
	where, args, _ := q.whereSQL(1)
	return "SELECT COUNT(*) FROM " + q.meta.Table + " WHERE 1=1" + where, args
}

func (q Query[T]) dataSQL() (string, []any) {
	where, args, n := q.whereSQL(1)
	sql := "SELECT " + q.meta.Columns + " FROM " + q.meta.Table + " WHERE 1=1" + where
	if q.orderBy != "" {
		sql += " ORDER BY " + q.orderBy
	}
	if q.hasTake {
		sql += fmt.Sprintf(" LIMIT $%d", n)
		args = append(args, q.take)
		n++
	}
	if q.hasSkip {
		sql += fmt.Sprintf(" OFFSET $%d", n)
		args = append(args, q.skip)
	}
	return sql, args
}

// Count materializes the number of rows matching the query's predicates,
// ignoring Skip and Take.
func (q Query[T]) Count(ctx context.Context) (int, error) {
	sql, args := q.countSQL()
	var total int
	if err := q.sess.QueryRow(ctx, sql, args...).Scan(&total); err != nil {
		return 0, apperr.Store(err)
	}
	return total, nil
}

// All materializes every row matching the query.
func (q Query[T]) All(ctx context.Context) ([]*T, error) {
	sql, args := q.dataSQL()
	rows, err := q.sess.Query(ctx, sql, args...)
	if err != nil {
		return nil, apperr.Store(err)
	}
	defer rows.Close()
	var items []*T
	for rows.Next() {
		item, err := q.meta.Scan(rows)
		if err != nil {
			return nil, apperr.Store(err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, apperr.Store(err)
	}
	return items, nil
}

// Page runs the count-then-page tail of the pipeline: total is computed
// before pagination, then one page of rows is fetched with
// skip = (pageNumber-1) * pageSize. Both values must be positive; the
// HTTP layer clamps them before they get here.
func (q Query[T]) Page(ctx context.Context, pageNumber, pageSize int) ([]*T, int, error) {
	if pageNumber < 1 || pageSize < 1 {
		return nil, 0, fmt.Errorf("page number and page size must be positive, got %d/%d", pageNumber, pageSize)
	}
	total, err := q.Count(ctx)
	if err != nil {
		return nil, 0, err
	}
	items, err := q.Skip((pageNumber - 1) * pageSize).Take(pageSize).All(ctx)
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}
