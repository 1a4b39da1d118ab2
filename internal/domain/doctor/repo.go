package doctor

import (
	"context"

	"github.com/medrec/medrec/internal/platform/store"
	"github.com/medrec/medrec/pkg/pagination"
)

// Repository gives the service access to stored doctors. Add, Update and
// Delete stage changes on the owning unit of work; nothing is written until
// it commits.
type Repository interface {
	GetByID(ctx context.Context, id int64) (*Doctor, error)
	FindWhere(ctx context.Context, conds ...store.Cond) ([]*Doctor, error)
	List(ctx context.Context, f Filter, page pagination.Request) ([]*Doctor, int, error)
	Add(d *Doctor)
	Update(d *Doctor)
	Delete(d *Doctor)
}
