package medicalhistory

import (
	"context"

	"github.com/medrec/medrec/internal/domain/doctor"
	"github.com/medrec/medrec/internal/domain/patient"
	"github.com/medrec/medrec/internal/platform/apperr"
	"github.com/medrec/medrec/internal/platform/integrity"
	"github.com/medrec/medrec/pkg/pagination"
)

// Committer is the commit slice of the unit of work the service's
// repositories are bound to.
type Committer interface {
	Commit(ctx context.Context) (int64, error)
}

// Service validates that referenced patients and doctors exist before a
// history is written. The patient reference is checked before the doctor
// reference, so a payload with two broken references reports the patient.
type Service struct {
	repo     Repository
	patients integrity.Getter[patient.Patient]
	doctors  integrity.Getter[doctor.Doctor]
	uow      Committer
}

func NewService(repo Repository, patients integrity.Getter[patient.Patient], doctors integrity.Getter[doctor.Doctor], uow Committer) *Service {
	return &Service{repo: repo, patients: patients, doctors: doctors, uow: uow}
}

func (s *Service) List(ctx context.Context, f Filter, page pagination.Request) ([]*MedicalHistory, int, error) {
	return s.repo.List(ctx, f, page)
}

func (s *Service) Get(ctx context.Context, id int64) (*MedicalHistory, error) {
	h, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if h == nil {
		return nil, apperr.NotFound("Medical history not found.")
	}
	return h, nil
}

func (s *Service) checkReferences(ctx context.Context, h *MedicalHistory) error {
	if err := integrity.CheckReference(ctx, s.patients, h.PatientID, "Invalid PatientId."); err != nil {
		return err
	}
	return integrity.CheckReference(ctx, s.doctors, h.DoctorID, "Invalid DoctorId.")
}

// Create persists a new history record after resolving both references. The
// store's foreign keys back these checks up at commit.
func (s *Service) Create(ctx context.Context, h *MedicalHistory) error {
	// The store assigns identity on commit.
	h.ID = 0
	if err := s.checkReferences(ctx, h); err != nil {
		return err
	}
	s.repo.Add(h)
	_, err := s.uow.Commit(ctx)
	return err
}

// Update replaces the stored history identified by id. References are
// re-validated because the payload may point the record at different rows.
func (s *Service) Update(ctx context.Context, id int64, h *MedicalHistory) error {
	if err := integrity.CheckIDMatch(id, h.ID); err != nil {
		return err
	}
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if existing == nil {
		return apperr.NotFound("Medical history not found.")
	}
	if err := s.checkReferences(ctx, h); err != nil {
		return err
	}
	s.repo.Update(h)
	_, err = s.uow.Commit(ctx)
	return err
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if existing == nil {
		return apperr.NotFound("Medical history not found.")
	}
	s.repo.Delete(existing)
	_, err = s.uow.Commit(ctx)
	return err
}
