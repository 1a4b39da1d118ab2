package user

import (
	"context"

	"github.com/medrec/medrec/internal/platform/store"
)

// Repository gives the service access to stored accounts. Add stages on the
// owning unit of work; nothing is written until it commits.
type Repository interface {
	GetByID(ctx context.Context, id int64) (*User, error)
	FindWhere(ctx context.Context, conds ...store.Cond) ([]*User, error)
	FindByUsername(ctx context.Context, username string) (*User, error)
	Add(u *User)
}
