package store

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/medrec/medrec/internal/platform/apperr"
)

// Session is the store capability a unit of work needs from its underlying
// connection. *pgxpool.Conn satisfies it; tests substitute fakes.
type Session interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Begin(ctx context.Context) (pgx.Tx, error)
}

type stagedOp func(ctx context.Context, tx pgx.Tx) (int64, error)

// UnitOfWork binds repositories to a single session and commits their staged
// changes atomically. One unit of work is scoped to one request/operation; it
// is not safe for concurrent use and must be Closed on every exit path.
type UnitOfWork struct {
	sess    Session
	release func()
	pending []stagedOp
	closed  bool
}

// NewUnitOfWork acquires a connection from the pool and takes ownership of
// it until Close.
func NewUnitOfWork(ctx context.Context, pool *pgxpool.Pool) (*UnitOfWork, error) {
	conn, err := pool.Acquire(ctx)
	if err != nil {
		return nil, apperr.Store(err)
	}
	return &UnitOfWork{sess: conn, release: conn.Release}, nil
}

// NewUnitOfWorkSession builds a unit of work over an existing session.
// release may be nil.
func NewUnitOfWorkSession(sess Session, release func()) *UnitOfWork {
	return &UnitOfWork{sess: sess, release: release}
}

// Scope opens a fresh unit of work for one request or operation. Handlers
// hold a Scope rather than the pool so tests can substitute fake sessions.
type Scope func(ctx context.Context) (*UnitOfWork, error)

// PoolScope returns a Scope that acquires each unit of work's session from
// the pool.
func PoolScope(pool *pgxpool.Pool) Scope {
	return func(ctx context.Context) (*UnitOfWork, error) {
		return NewUnitOfWork(ctx, pool)
	}
}

// SessionScope returns a Scope over a fixed session, used by the CLI and by
// tests.
func SessionScope(sess Session) Scope {
	return func(context.Context) (*UnitOfWork, error) {
		return NewUnitOfWorkSession(sess, nil), nil
	}
}

func (u *UnitOfWork) stage(op stagedOp) {
	u.pending = append(u.pending, op)
}

// Pending reports the number of staged, uncommitted changes.
func (u *UnitOfWork) Pending() int { return len(u.pending) }

// Commit applies every staged change in one transaction and returns the
// total number of affected rows. On any failure the transaction is rolled
// back, the staged changes are discarded, and the error surfaces with its
// taxonomy kind (constraint violations translate to Conflict or
// InvalidReference). No retry is performed.
func (u *UnitOfWork) Commit(ctx context.Context) (int64, error) {
	if u.closed {
		return 0, apperr.Store(errors.New("unit of work is closed"))
	}
	if len(u.pending) == 0 {
		return 0, nil
	}
	ops := u.pending
	u.pending = nil

	tx, err := u.sess.Begin(ctx)
	if err != nil {
		return 0, apperr.Store(err)
	}
	var affected int64
	for _, op := range ops {
		n, err := op(ctx, tx)
		if err != nil {
			_ = tx.Rollback(ctx)
			if apperr.KindOf(err) != apperr.KindUnknown {
				return 0, err
			}
			return 0, apperr.FromPG(err)
		}
		affected += n
	}
	if err := tx.Commit(ctx); err != nil {
		return 0, apperr.FromPG(err)
	}
	return affected, nil
}

// Close releases the session. Further operations on the unit of work or its
// repositories are invalid afterwards.
func (u *UnitOfWork) Close() {
	if u.closed {
		return
	}
	u.closed = true
	u.pending = nil
	if u.release != nil {
		u.release()
	}
}
