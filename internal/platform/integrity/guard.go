// Package integrity enforces uniqueness and referential invariants before a
// write is staged. The checks are advisory: the store's own constraints are
// the authoritative backstop, and a constraint violation at commit time maps
// to the same Conflict outcome.
package integrity

import (
	"context"
	"fmt"

	"github.com/medrec/medrec/internal/platform/apperr"
	"github.com/medrec/medrec/internal/platform/store"
)

// Finder is the predicate-search slice of a repository.
type Finder[T any] interface {
	FindWhere(ctx context.Context, conds ...store.Cond) ([]*T, error)
}

// Getter is the point-lookup slice of a repository.
type Getter[T any] interface {
	GetByID(ctx context.Context, id int64) (*T, error)
}

// CheckUnique fails with Conflict when any row already carries value in col.
// Used on create paths.
func CheckUnique[T any](ctx context.Context, f Finder[T], col string, value any, label string) error {
	existing, err := f.FindWhere(ctx, store.Eq(col, value))
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return apperr.Conflict(fmt.Sprintf("%s already exists.", label))
	}
	return nil
}

// CheckUniqueExcluding is the update-path variant: the row's own identity is
// excluded so an unchanged value passes.
func CheckUniqueExcluding[T any](ctx context.Context, f Finder[T], col string, value any, selfID int64, label string) error {
	existing, err := f.FindWhere(ctx, store.Eq(col, value), store.Ne("id", selfID))
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return apperr.Conflict(fmt.Sprintf("%s already exists.", label))
	}
	return nil
}

// CheckReference fails with InvalidReference when id does not resolve to an
// existing row.
func CheckReference[T any](ctx context.Context, g Getter[T], id int64, msg string) error {
	e, err := g.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if e == nil {
		return apperr.InvalidReference(msg)
	}
	return nil
}

// CheckIDMatch fails with Conflict when the path-supplied identity differs
// from the payload identity. Runs before any store access.
func CheckIDMatch(pathID, bodyID int64) error {
	if pathID != bodyID {
		return apperr.Conflict("ID mismatch.")
	}
	return nil
}
