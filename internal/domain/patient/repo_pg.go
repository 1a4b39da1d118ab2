package patient

import (
	"context"

	"github.com/medrec/medrec/internal/platform/store"
	"github.com/medrec/medrec/pkg/pagination"
)

type pgRepository struct {
	store *store.Repository[Patient]
}

// NewPGRepository binds a patient repository to the unit of work's session.
func NewPGRepository(uow *store.UnitOfWork) Repository {
	return &pgRepository{store: store.NewRepository(uow, meta)}
}

func (r *pgRepository) GetByID(ctx context.Context, id int64) (*Patient, error) {
	return r.store.GetByID(ctx, id)
}

func (r *pgRepository) FindWhere(ctx context.Context, conds ...store.Cond) ([]*Patient, error) {
	return r.store.FindWhere(ctx, conds...)
}

func (r *pgRepository) List(ctx context.Context, f Filter, page pagination.Request) ([]*Patient, int, error) {
	items, total, err := r.store.Query().
		Where(f.conds()...).
		SortBy(page.SortBy, sortColumns, defaultSortColumn, page.SortDescending).
		Page(ctx, page.PageNumber, page.PageSize)
	if err != nil {
		return nil, 0, err
	}
	if items == nil {
		items = []*Patient{}
	}
	return items, total, nil
}

func (r *pgRepository) Add(p *Patient)    { r.store.Add(p) }
func (r *pgRepository) Update(p *Patient) { r.store.Update(p) }
func (r *pgRepository) Delete(p *Patient) { r.store.Delete(p) }
