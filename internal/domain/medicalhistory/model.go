package medicalhistory

import (
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/medrec/medrec/internal/platform/store"
)

// MedicalHistory is one clinical encounter: a diagnosis and treatment
// recorded by a doctor for a patient on a given date. Only the foreign
// identities are stored; the related entities are never fetched with it.
type MedicalHistory struct {
	ID        int64     `json:"id"`
	PatientID int64     `json:"patientId"`
	DoctorID  int64     `json:"doctorId"`
	Date      time.Time `json:"date"`
	Diagnosis string    `json:"diagnosis"`
	Treatment string    `json:"treatment"`
}

// Filter narrows list queries. Nil and zero-valued fields are ignored; the
// date bounds are inclusive.
type Filter struct {
	PatientID *int64
	DoctorID  *int64
	StartDate *time.Time
	EndDate   *time.Time
	Diagnosis string
}

func (f Filter) conds() []store.Cond {
	var conds []store.Cond
	if f.PatientID != nil {
		conds = append(conds, store.Eq("patient_id", *f.PatientID))
	}
	if f.DoctorID != nil {
		conds = append(conds, store.Eq("doctor_id", *f.DoctorID))
	}
	if f.StartDate != nil {
		conds = append(conds, store.Gte("date", *f.StartDate))
	}
	if f.EndDate != nil {
		conds = append(conds, store.Lte("date", *f.EndDate))
	}
	if f.Diagnosis != "" {
		conds = append(conds, store.ContainsFold("diagnosis", f.Diagnosis))
	}
	return conds
}

var sortColumns = map[string]string{
	"date":      "date",
	"diagnosis": "diagnosis",
}

const defaultSortColumn = "date"

var meta = store.Meta[MedicalHistory]{
	Table:   "medical_histories",
	Columns: "id, patient_id, doctor_id, date, diagnosis, treatment",
	Scan: func(row pgx.Row) (*MedicalHistory, error) {
		var h MedicalHistory
		if err := row.Scan(&h.ID, &h.PatientID, &h.DoctorID, &h.Date, &h.Diagnosis, &h.Treatment); err != nil {
			return nil, err
		}
		return &h, nil
	},
	ID:            func(h *MedicalHistory) int64 { return h.ID },
	SetID:         func(h *MedicalHistory, id int64) { h.ID = id },
	InsertColumns: []string{"patient_id", "doctor_id", "date", "diagnosis", "treatment"},
	Values: func(h *MedicalHistory) []any {
		return []any{h.PatientID, h.DoctorID, h.Date, h.Diagnosis, h.Treatment}
	},
}
