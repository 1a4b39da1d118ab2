package user

import (
	"github.com/jackc/pgx/v5"

	"github.com/medrec/medrec/internal/platform/store"
)

// User is an API account. The password hash never leaves the server; there
// is no self-registration, accounts are provisioned from the CLI.
type User struct {
	ID           int64  `json:"id"`
	Username     string `json:"username"`
	PasswordHash string `json:"-"`
	Role         string `json:"role"`
}

var meta = store.Meta[User]{
	Table:   "users",
	Columns: "id, username, password_hash, role",
	Scan: func(row pgx.Row) (*User, error) {
		var u User
		if err := row.Scan(&u.ID, &u.Username, &u.PasswordHash, &u.Role); err != nil {
			return nil, err
		}
		return &u, nil
	},
	ID:            func(u *User) int64 { return u.ID },
	SetID:         func(u *User, id int64) { u.ID = id },
	InsertColumns: []string{"username", "password_hash", "role"},
	Values: func(u *User) []any {
		return []any{u.Username, u.PasswordHash, u.Role}
	},
}
