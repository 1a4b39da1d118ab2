package patient

import (
	"context"

	"github.com/medrec/medrec/internal/platform/store"
	"github.com/medrec/medrec/pkg/pagination"
)

// Repository gives the service access to stored patients. Add, Update and
// Delete stage changes on the owning unit of work; nothing is written until
// it commits.
type Repository interface {
	GetByID(ctx context.Context, id int64) (*Patient, error)
	FindWhere(ctx context.Context, conds ...store.Cond) ([]*Patient, error)
	List(ctx context.Context, f Filter, page pagination.Request) ([]*Patient, int, error)
	Add(p *Patient)
	Update(p *Patient)
	Delete(p *Patient)
}
