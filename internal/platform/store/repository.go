// Package store is the generic data-access core: a type-parameterized
// repository instantiated once per entity, composable lazy queries, and a
// transactional unit of work that owns the underlying session.
package store

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/medrec/medrec/internal/platform/apperr"
)

// Meta describes how an entity type maps onto its table: the scalar column
// projection, how a row scans into the entity, and how identity and
// insert/update values are accessed.
type Meta[T any] struct {
	Table   string
	Columns string
	Scan    func(row pgx.Row) (*T, error)
	ID      func(*T) int64
	SetID   func(*T, int64)

	// InsertColumns excludes the id column; the store assigns identity on
	// first persist. Values and InsertColumns share one order, used for
	// both INSERT and UPDATE statements.
	InsertColumns []string
	Values        func(*T) []any
}

// Repository gives a single entity type its store access: point lookup,
// predicate search, a composable query handle, and staged writes. All
// repositories built over one unit of work share its session and its
// pending-change list.
type Repository[T any] struct {
	uow  *UnitOfWork
	meta Meta[T]
}

func NewRepository[T any](uow *UnitOfWork, meta Meta[T]) *Repository[T] {
	return &Repository[T]{uow: uow, meta: meta}
}

// GetByID looks up an entity by surrogate identity. Absence is (nil, nil),
// never a zero-valued entity; callers decide whether absence is an error.
func (r *Repository[T]) GetByID(ctx context.Context, id int64) (*T, error) {
	row := r.uow.sess.QueryRow(ctx,
		"SELECT "+r.meta.Columns+" FROM "+r.meta.Table+" WHERE id = $1", id)
	e, err := r.meta.Scan(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, apperr.Store(err)
	}
	return e, nil
}

// GetAll materializes every row. Intended for small, administrative reads.
func (r *Repository[T]) GetAll(ctx context.Context) ([]*T, error) {
	return r.Query().All(ctx)
}

// FindWhere returns all entities satisfying the predicates, pushed down as a
// SQL filter.
func (r *Repository[T]) FindWhere(ctx context.Context, conds ...Cond) ([]*T, error) {
	return r.Query().Where(conds...).All(ctx)
}

// Query returns an unexecuted query over all rows of T.
func (r *Repository[T]) Query() Query[T] {
	return Query[T]{sess: r.uow.sess, meta: r.meta}
}

// Add stages a pending insert. The entity must not carry an identity yet;
// the store assigns one at commit and it is written back to the entity.
func (r *Repository[T]) Add(e *T) {
	meta := r.meta
	r.uow.stage(func(ctx context.Context, tx pgx.Tx) (int64, error) {
		placeholders := make([]string, len(meta.InsertColumns))
		for i := range placeholders {
			placeholders[i] = fmt.Sprintf("$%d", i+1)
		}
		sql := "INSERT INTO " + meta.Table +
			" (" + strings.Join(meta.InsertColumns, ", ") + ")" +
			" VALUES (" + strings.Join(placeholders, ", ") + ") RETURNING id"
		var id int64
		if err := tx.QueryRow(ctx, sql, meta.Values(e)...).Scan(&id); err != nil {
			return 0, err
		}
		meta.SetID(e, id)
		return 1, nil
	})
}

// Update stages a pending in-place modification. A target row absent at
// commit time fails the commit with NotFound.
func (r *Repository[T]) Update(e *T) {
	meta := r.meta
	r.uow.stage(func(ctx context.Context, tx pgx.Tx) (int64, error) {
		sets := make([]string, len(meta.InsertColumns))
		for i, col := range meta.InsertColumns {
			sets[i] = fmt.Sprintf("%s = $%d", col, i+2)
		}
		sql := "UPDATE " + meta.Table + " SET " + strings.Join(sets, ", ") + " WHERE id = $1"
		args := append([]any{meta.ID(e)}, meta.Values(e)...)
		tag, err := tx.Exec(ctx, sql, args...)
		if err != nil {
			return 0, err
		}
		if tag.RowsAffected() == 0 {
			return 0, apperr.NotFound("record not found")
		}
		return tag.RowsAffected(), nil
	})
}

// Delete stages a pending removal. A target row absent at commit time fails
// the commit with NotFound.
func (r *Repository[T]) Delete(e *T) {
	meta := r.meta
	r.uow.stage(func(ctx context.Context, tx pgx.Tx) (int64, error) {
		tag, err := tx.Exec(ctx, "DELETE FROM "+meta.Table+" WHERE id = $1", meta.ID(e))
		if err != nil {
			return 0, err
		}
		if tag.RowsAffected() == 0 {
			return 0, apperr.NotFound("record not found")
		}
		return tag.RowsAffected(), nil
	})
}
