package patient

import (
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/medrec/medrec/internal/platform/store"
)

// Patient is a person receiving care. IDNumber is the national identity
// document and is unique across patients.
type Patient struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	IDNumber  string    `json:"idNumber"`
	Email     string    `json:"email"`
	BirthDate time.Time `json:"birthDate"`
}

// Filter narrows list queries. Zero-valued fields are ignored.
type Filter struct {
	Name     string
	IDNumber string
}

func (f Filter) conds() []store.Cond {
	var conds []store.Cond
	if f.Name != "" {
		conds = append(conds, store.ContainsFold("name", f.Name))
	}
	if f.IDNumber != "" {
		conds = append(conds, store.Contains("id_number", f.IDNumber))
	}
	return conds
}

// Sort keys accepted by list queries; anything else falls back to name.
var sortColumns = map[string]string{
	"name":      "name",
	"birthdate": "birth_date",
}

const defaultSortColumn = "name"

var meta = store.Meta[Patient]{
	Table:   "patients",
	Columns: "id, name, id_number, email, birth_date",
	Scan: func(row pgx.Row) (*Patient, error) {
		var p Patient
		if err := row.Scan(&p.ID, &p.Name, &p.IDNumber, &p.Email, &p.BirthDate); err != nil {
			return nil, err
		}
		return &p, nil
	},
	ID:            func(p *Patient) int64 { return p.ID },
	SetID:         func(p *Patient, id int64) { p.ID = id },
	InsertColumns: []string{"name", "id_number", "email", "birth_date"},
	Values: func(p *Patient) []any {
		return []any{p.Name, p.IDNumber, p.Email, p.BirthDate}
	},
}
