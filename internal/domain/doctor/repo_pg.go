package doctor

import (
	"context"

	"github.com/medrec/medrec/internal/platform/store"
	"github.com/medrec/medrec/pkg/pagination"
)

type pgRepository struct {
	store *store.Repository[Doctor]
}

// NewPGRepository binds a doctor repository to the unit of work's session.
func NewPGRepository(uow *store.UnitOfWork) Repository {
	return &pgRepository{store: store.NewRepository(uow, meta)}
}

func (r *pgRepository) GetByID(ctx context.Context, id int64) (*Doctor, error) {
	return r.store.GetByID(ctx, id)
}

func (r *pgRepository) FindWhere(ctx context.Context, conds ...store.Cond) ([]*Doctor, error) {
	return r.store.FindWhere(ctx, conds...)
}

func (r *pgRepository) List(ctx context.Context, f Filter, page pagination.Request) ([]*Doctor, int, error) {
	items, total, err := r.store.Query().
		Where(f.conds()...).
		SortBy(page.SortBy, sortColumns, defaultSortColumn, page.SortDescending).
		Page(ctx, page.PageNumber, page.PageSize)
	if err != nil {
		return nil, 0, err
	}
	if items == nil {
		items = []*Doctor{}
	}
	return items, total, nil
}

func (r *pgRepository) Add(d *Doctor)    { r.store.Add(d) }
func (r *pgRepository) Update(d *Doctor) { r.store.Update(d) }
func (r *pgRepository) Delete(d *Doctor) { r.store.Delete(d) }
