package user

import (
	"context"
	"errors"
	"testing"

	"github.com/golang-jwt/jwt/v5"

	"github.com/medrec/medrec/internal/platform/apperr"
	"github.com/medrec/medrec/internal/platform/auth"
	"github.com/medrec/medrec/internal/platform/store"
)

type mockRepo struct {
	records map[string]*User
	nextID  int64
	found   []*User
}

func newMockRepo() *mockRepo {
	return &mockRepo{records: make(map[string]*User)}
}

func (m *mockRepo) GetByID(_ context.Context, id int64) (*User, error) {
	for _, u := range m.records {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

func (m *mockRepo) FindWhere(_ context.Context, _ ...store.Cond) ([]*User, error) {
	return m.found, nil
}

func (m *mockRepo) FindByUsername(_ context.Context, username string) (*User, error) {
	return m.records[username], nil
}

func (m *mockRepo) Add(u *User) {
	m.nextID++
	u.ID = m.nextID
	m.records[u.Username] = u
}

type fakeUOW struct {
	commits   int
	commitErr error
}

func (f *fakeUOW) Commit(context.Context) (int64, error) {
	f.commits++
	return 1, f.commitErr
}

var testJWT = auth.Config{Secret: []byte("test-secret"), Issuer: "medrec"}

func newTestService() (*Service, *mockRepo, *fakeUOW) {
	repo := newMockRepo()
	uow := &fakeUOW{}
	return NewService(repo, uow, testJWT), repo, uow
}

func TestCreate_HashesPassword(t *testing.T) {
	svc, repo, uow := newTestService()
	u := &User{Username: "admin", Role: "admin"}
	if err := svc.Create(context.Background(), u, "s3cret"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	stored := repo.records["admin"]
	if stored.PasswordHash == "" || stored.PasswordHash == "s3cret" {
		t.Error("expected a hashed password to be stored")
	}
	if !auth.VerifyPassword(stored.PasswordHash, "s3cret") {
		t.Error("stored hash does not verify against the password")
	}
	if uow.commits != 1 {
		t.Errorf("expected 1 commit, got %d", uow.commits)
	}
}

func TestCreate_DuplicateUsername(t *testing.T) {
	svc, repo, _ := newTestService()
	repo.found = []*User{{ID: 1, Username: "admin"}}
	err := svc.Create(context.Background(), &User{Username: "admin"}, "s3cret")
	if apperr.KindOf(err) != apperr.KindConflict {
		t.Fatalf("expected conflict, got %v", err)
	}
	if err.Error() != "Username already exists." {
		t.Errorf("unexpected message: %q", err.Error())
	}
}

func TestLogin_IssuesToken(t *testing.T) {
	svc, _, _ := newTestService()
	if err := svc.Create(context.Background(), &User{Username: "admin", Role: "admin"}, "s3cret"); err != nil {
		t.Fatalf("create: %v", err)
	}
	token, err := svc.Login(context.Background(), "admin", "s3cret")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var claims auth.Claims
	_, err = jwt.ParseWithClaims(token, &claims, func(*jwt.Token) (any, error) {
		return testJWT.Secret, nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	if err != nil {
		t.Fatalf("issued token does not verify: %v", err)
	}
	if claims.Subject != "admin" || claims.Role != "admin" {
		t.Errorf("unexpected claims: sub=%q role=%q", claims.Subject, claims.Role)
	}
	if claims.ID == "" {
		t.Error("expected a jti claim")
	}
}

func TestLogin_UnknownUser(t *testing.T) {
	svc, _, _ := newTestService()
	_, err := svc.Login(context.Background(), "ghost", "whatever")
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected invalid credentials, got %v", err)
	}
}

func TestLogin_WrongPassword(t *testing.T) {
	svc, _, _ := newTestService()
	svc.Create(context.Background(), &User{Username: "admin", Role: "admin"}, "s3cret")
	_, err := svc.Login(context.Background(), "admin", "wrong")
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected invalid credentials, got %v", err)
	}
}
