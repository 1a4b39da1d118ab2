package user

import (
	"context"

	"github.com/medrec/medrec/internal/platform/store"
)

type pgRepository struct {
	store *store.Repository[User]
}

// NewPGRepository binds a user repository to the unit of work's session.
func NewPGRepository(uow *store.UnitOfWork) Repository {
	return &pgRepository{store: store.NewRepository(uow, meta)}
}

func (r *pgRepository) GetByID(ctx context.Context, id int64) (*User, error) {
	return r.store.GetByID(ctx, id)
}

func (r *pgRepository) FindWhere(ctx context.Context, conds ...store.Cond) ([]*User, error) {
	return r.store.FindWhere(ctx, conds...)
}

func (r *pgRepository) FindByUsername(ctx context.Context, username string) (*User, error) {
	users, err := r.store.FindWhere(ctx, store.Eq("username", username))
	if err != nil {
		return nil, err
	}
	if len(users) == 0 {
		return nil, nil
	}
	return users[0], nil
}

func (r *pgRepository) Add(u *User) { r.store.Add(u) }
