package patient

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

func (s *Service) List(ctx context.Context, f Filter, page pagination.Request) ([]*Patient, int, error) {
	return s.repo.List(ctx, f, page)
}

func (s *Service) Get(ctx context.Context, id int64) (*Patient, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, apperr.NotFound("Patient not found.")
	}
	return p, nil
}

// Create persists a new patient. The identity document number must not be in
// use; the store's unique constraint backs this check up at commit.
func (s *Service) Create(ctx context.Context, p *Patient) error {
	// The store assigns identity on commit.
	p.ID = 0
	if err := integrity.CheckUnique[Patient](ctx, s.repo, "id_number", p.IDNumber, "IdNumber"); err != nil {
		return err
	}
	s.repo.Add(p)
	_, err := s.uow.Commit(ctx)
	return err
}

// Update replaces the stored patient identified by id. The payload identity
// must match the path identity.
func (s *Service) Update(ctx context.Context, id int64, p *Patient) error {
	if err := integrity.CheckIDMatch(id, p.ID); err != nil {
		return err
	}
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if existing == nil {
		return apperr.NotFound("Patient not found.")
	}
	if err := integrity.CheckUniqueExcluding[Patient](ctx, s.repo, "id_number", p.IDNumber, id, "IdNumber"); err != nil {
		return err
	}
	s.repo.Update(p)
	_, err = s.uow.Commit(ctx)
	return err
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if existing == nil {
		return apperr.NotFound("Patient not found.")
	}
	s.repo.Delete(existing)
	_, err = s.uow.Commit(ctx)
	return err
}
