package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
)

func TestKindOf(t *testing.T) {
	if got := KindOf(NotFound("Patient not found.")); got != KindNotFound {
		t.Errorf("expected KindNotFound, got %v", got)
	}
	if got := KindOf(Conflict("ID mismatch.")); got != KindConflict {
		t.Errorf("expected KindConflict, got %v", got)
	}
	if got := KindOf(InvalidReference("Invalid PatientId.")); got != KindInvalidReference {
		t.Errorf("expected KindInvalidReference, got %v", got)
	}
	if got := KindOf(errors.New("plain")); got != KindUnknown {
		t.Errorf("expected KindUnknown for foreign error, got %v", got)
	}
}

func TestKindOf_Wrapped(t *testing.T) {
	err := fmt.Errorf("create patient: %w", Conflict("IdNumber already exists."))
	if got := KindOf(err); got != KindConflict {
		t.Errorf("expected KindConflict through wrapping, got %v", got)
	}
}

func TestFromPG_UniqueViolation(t *testing.T) {
	pgErr := &pgconn.PgError{Code: "23505", ConstraintName: "patients_id_number_key"}
	e := FromPG(pgErr)
	if e.Kind != KindConflict {
		t.Errorf("expected KindConflict for 23505, got %v", e.Kind)
	}
	if !errors.Is(e, error(pgErr)) && !errors.As(error(e), &pgErr) {
		t.Error("expected original pg error to remain unwrappable")
	}
}

func TestFromPG_ForeignKeyViolation(t *testing.T) {
	e := FromPG(&pgconn.PgError{Code: "23503"})
	if e.Kind != KindInvalidReference {
		t.Errorf("expected KindInvalidReference for 23503, got %v", e.Kind)
	}
}

func TestFromPG_OtherError(t *testing.T) {
	e := FromPG(errors.New("connection refused"))
	if e.Kind != KindStore {
		t.Errorf("expected KindStore, got %v", e.Kind)
	}
}

func TestHTTPStatus(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{NotFound("x"), http.StatusNotFound},
		{Conflict("x"), http.StatusConflict},
		{InvalidReference("x"), http.StatusBadRequest},
		{Store(errors.New("x")), http.StatusInternalServerError},
		{errors.New("x"), http.StatusInternalServerError},
	}
	for _, c := range cases {
		if got := HTTPStatus(c.err); got != c.want {
			t.Errorf("HTTPStatus(%v) = %d, want %d", c.err, got, c.want)
		}
	}
}

func TestErrorMessage(t *testing.T) {
	if msg := NotFound("Doctor not found.").Error(); msg != "Doctor not found." {
		t.Errorf("unexpected message %q", msg)
	}
	wrapped := Store(errors.New("broken pipe"))
	if wrapped.Error() != "store operation failed" {
		t.Errorf("store error message should stay generic, got %q", wrapped.Error())
	}
}
