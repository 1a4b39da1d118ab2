// Package apperr defines the error kinds surfaced by the data-access core:
// NotFound, Conflict, InvalidReference and Store. Components return these
// directly; HTTP status codes are derived only at the transport boundary.
package apperr

import (
	"errors"
	"net/http"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/labstack/echo/v4"
)

type Kind int

const (
	KindUnknown Kind = iota
	// KindNotFound: a point lookup or update/delete target is absent.
	KindNotFound
	// KindConflict: uniqueness violation or path/payload identity mismatch.
	KindConflict
	// KindInvalidReference: a foreign identity does not resolve to a row.
	KindInvalidReference
	// KindStore: an I/O or transport failure from the durable store.
	KindStore
)

// Error carries a kind, a caller-facing message and an optional cause.
type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Msg != "" {
		return e.Msg
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

func (e *Error) Unwrap() error { return e.Err }

func NotFound(msg string) *Error         { return &Error{Kind: KindNotFound, Msg: msg} }
func Conflict(msg string) *Error         { return &Error{Kind: KindConflict, Msg: msg} }
func InvalidReference(msg string) *Error { return &Error{Kind: KindInvalidReference, Msg: msg} }

// Store wraps a store failure. The message stays generic so transport
// details never leak to callers.
func Store(err error) *Error {
	return &Error{Kind: KindStore, Msg: "store operation failed", Err: err}
}

// KindOf returns the kind of err, or KindUnknown for foreign errors.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

// Postgres error codes that map onto the taxonomy.
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// FromPG translates a pgx-level error into the taxonomy. Unique-constraint
// violations become Conflict so the store backstop reports the same outcome
// as the pre-write check; foreign-key violations become InvalidReference.
// Anything else is a Store error.
func FromPG(err error) *Error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			return &Error{Kind: KindConflict, Msg: "value already exists", Err: err}
		case pgForeignKeyViolation:
			return &Error{Kind: KindInvalidReference, Msg: "invalid reference", Err: err}
		}
	}
	return Store(err)
}

// HTTPError converts an error into its transport representation. Handlers
// call this at the boundary; nothing inside the core consumes status codes.
func HTTPError(err error) *echo.HTTPError {
	return echo.NewHTTPError(HTTPStatus(err), err.Error())
}

// HTTPStatus maps an error kind to a transport status code.
func HTTPStatus(err error) int {
	switch KindOf(err) {
	case KindNotFound:
		return http.StatusNotFound
	case KindConflict:
		return http.StatusConflict
	case KindInvalidReference:
		return http.StatusBadRequest
	case KindStore:
		return http.StatusInternalServerError
	}
	return http.StatusInternalServerError
}
