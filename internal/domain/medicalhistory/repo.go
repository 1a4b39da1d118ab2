package medicalhistory

import (
	"context"

	"github.com/medrec/medrec/internal/platform/store"
	"github.com/medrec/medrec/pkg/pagination"
)

// Repository gives the service access to stored medical histories. Add,
// Update and Delete stage changes on the owning unit of work; nothing is
// written until it commits.
type Repository interface {
	GetByID(ctx context.Context, id int64) (*MedicalHistory, error)
	FindWhere(ctx context.Context, conds ...store.Cond) ([]*MedicalHistory, error)
	List(ctx context.Context, f Filter, page pagination.Request) ([]*MedicalHistory, int, error)
	Add(h *MedicalHistory)
	Update(h *MedicalHistory)
	Delete(h *MedicalHistory)
}
