package medicalhistory

import (
	"context"

	"github.com/medrec/medrec/internal/platform/store"
	"github.com/medrec/medrec/pkg/pagination"
)

type pgRepository struct {
	store *store.Repository[MedicalHistory]
}

// NewPGRepository binds a medical history repository to the unit of work's
// session.
func NewPGRepository(uow *store.UnitOfWork) Repository {
	return &pgRepository{store: store.NewRepository(uow, meta)}
}

func (r *pgRepository) GetByID(ctx context.Context, id int64) (*MedicalHistory, error) {
	return r.store.GetByID(ctx, id)
}

func (r *pgRepository) FindWhere(ctx context.Context, conds ...store.Cond) ([]*MedicalHistory, error) {
	return r.store.FindWhere(ctx, conds...)
}

func (r *pgRepository) List(ctx context.Context, f Filter, page pagination.Request) ([]*MedicalHistory, int, error) {
	items, total, err := r.store.Query().
		Where(f.conds()...).
		SortBy(page.SortBy, sortColumns, defaultSortColumn, page.SortDescending).
		Page(ctx, page.PageNumber, page.PageSize)
	if err != nil {
		return nil, 0, err
	}
	if items == nil {
		items = []*MedicalHistory{}
	}
	return items, total, nil
}

func (r *pgRepository) Add(h *MedicalHistory)    { r.store.Add(h) }
func (r *pgRepository) Update(h *MedicalHistory) { r.store.Update(h) }
func (r *pgRepository) Delete(h *MedicalHistory) { r.store.Delete(h) }
