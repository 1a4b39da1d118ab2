package doctor

import (
	"github.com/jackc/pgx/v5"

	"github.com/medrec/medrec/internal/platform/store"
)

// Doctor is a practitioner who authors medical history records. The license
// number is unique across doctors.
type Doctor struct {
	ID            int64  `json:"id"`
	Name          string `json:"name"`
	LicenseNumber string `json:"licenseNumber"`
	Specialty     string `json:"specialty"`
	Email         string `json:"email"`
}

// Filter narrows list queries. Zero-valued fields are ignored.
type Filter struct {
	Name          string
	LicenseNumber string
	Specialty     string
}

func (f Filter) conds() []store.Cond {
	var conds []store.Cond
	if f.Name != "" {
		conds = append(conds, store.ContainsFold("name", f.Name))
	}
	if f.LicenseNumber != "" {
		conds = append(conds, store.Contains("license_number", f.LicenseNumber))
	}
	if f.Specialty != "" {
		conds = append(conds, store.ContainsFold("specialty", f.Specialty))
	}
	return conds
}

var sortColumns = map[string]string{
	"name":      "name",
	"specialty": "specialty",
}

const defaultSortColumn = "name"

var meta = store.Meta[Doctor]{
	Table:   "doctors",
	Columns: "id, name, license_number, specialty, email",
	Scan: func(row pgx.Row) (*Doctor, error) {
		var d Doctor
		if err := row.Scan(&d.ID, &d.Name, &d.LicenseNumber, &d.Specialty, &d.Email); err != nil {
			return nil, err
		}
		return &d, nil
	},
	ID:            func(d *Doctor) int64 { return d.ID },
	SetID:         func(d *Doctor, id int64) { d.ID = id },
	InsertColumns: []string{"name", "license_number", "specialty", "email"},
	Values: func(d *Doctor) []any {
		return []any{d.Name, d.LicenseNumber, d.Specialty, d.Email}
	},
}
