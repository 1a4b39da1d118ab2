package user

import (
	"context"
	"errors"

	"github.com/medrec/medrec/internal/platform/auth"
	"github.com/medrec/medrec/internal/platform/integrity"
)

// ErrInvalidCredentials covers both unknown usernames and wrong passwords,
// so login responses never reveal which part failed.
var ErrInvalidCredentials = errors.New("Invalid credentials.")

// Committer is the commit slice of the unit of work the service's
// repository is bound to.
type Committer interface {
	Commit(ctx context.Context) (int64, error)
}

type Service struct {
	repo Repository
	uow  Committer
	jwt  auth.Config
}

func NewService(repo Repository, uow Committer, jwt auth.Config) *Service {
	return &Service{repo: repo, uow: uow, jwt: jwt}
}

// Login verifies the credentials and issues a signed token carrying the
// account's username and role.
func (s *Service) Login(ctx context.Context, username, password string) (string, error) {
	u, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		return "", err
	}
	if u == nil || !auth.VerifyPassword(u.PasswordHash, password) {
		return "", ErrInvalidCredentials
	}
	return auth.GenerateToken(s.jwt, u.Username, u.Role)
}

// Create provisions a new account with a bcrypt-hashed password. The
// username must not be in use.
func (s *Service) Create(ctx context.Context, u *User, password string) error {
	// The store assigns identity on commit.
	u.ID = 0
	if err := integrity.CheckUnique[User](ctx, s.repo, "username", u.Username, "Username"); err != nil {
		return err
	}
	hash, err := auth.HashPassword(password)
	if err != nil {
		return err
	}
	u.PasswordHash = hash
	s.repo.Add(u)
	_, err = s.uow.Commit(ctx)
	return err
}
