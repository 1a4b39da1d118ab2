package doctor

import (
	"context"

	"github.com/medrec/medrec/internal/platform/apperr"
	"github.com/medrec/medrec/internal/platform/integrity"
	"github.com/medrec/medrec/pkg/pagination"
)

// Committer is the commit slice of the unit of work the service's
// repository is bound to.
type Committer interface {
	Commit(ctx context.Context) (int64, error)
}

type Service struct {
	repo Repository
	uow  Committer
}

func NewService(repo Repository, uow Committer) *Service {
	return &Service{repo: repo, uow: uow}
}

func (s *Service) List(ctx context.Context, f Filter, page pagination.Request) ([]*Doctor, int, error) {
	return s.repo.List(ctx, f, page)
}

func (s *Service) Get(ctx context.Context, id int64) (*Doctor, error) {
	d, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if d == nil {
		return nil, apperr.NotFound("Doctor not found.")
	}
	return d, nil
}

// Create persists a new doctor. The license number must not be in use; the
// store's unique constraint backs this check up at commit.
func (s *Service) Create(ctx context.Context, d *Doctor) error {
	// The store assigns identity on commit.
	d.ID = 0
	if err := integrity.CheckUnique[Doctor](ctx, s.repo, "license_number", d.LicenseNumber, "LicenseNumber"); err != nil {
		return err
	}
	s.repo.Add(d)
	_, err := s.uow.Commit(ctx)
	return err
}

// Update replaces the stored doctor identified by id. The payload identity
// must match the path identity.
func (s *Service) Update(ctx context.Context, id int64, d *Doctor) error {
	if err := integrity.CheckIDMatch(id, d.ID); err != nil {
		return err
	}
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if existing == nil {
		return apperr.NotFound("Doctor not found.")
	}
	if err := integrity.CheckUniqueExcluding[Doctor](ctx, s.repo, "license_number", d.LicenseNumber, id, "LicenseNumber"); err != nil {
		return err
	}
	s.repo.Update(d)
	_, err = s.uow.Commit(ctx)
	return err
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if existing == nil {
		return apperr.NotFound("Doctor not found.")
	}
	s.repo.Delete(existing)
	_, err = s.uow.Commit(ctx)
	return err
}
