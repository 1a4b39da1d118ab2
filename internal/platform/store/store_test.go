package store

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// item is the entity used by the package tests.
type item struct {
	ID   int64
	Name string
	Code string
	Date time.Time
}

var itemMeta = Meta[item]{
	Table:   "items",
	Columns: "id, name, code, date",
	Scan: func(row pgx.Row) (*item, error) {
		var it item
		err := row.Scan(&it.ID, &it.Name, &it.Code, &it.Date)
		return &it, err
	},
	ID:            func(it *item) int64 { return it.ID },
	SetID:         func(it *item, id int64) { it.ID = id },
	InsertColumns: []string{"name", "code", "date"},
	Values:        func(it *item) []any { return []any{it.Name, it.Code, it.Date} },
}

func assign(dst, src any) error {
	switch d := dst.(type) {
	case *int64:
		switch s := src.(type) {
		case int64:
			*d = s
		case int:
			*d = int64(s)
		default:
			return fmt.Errorf("cannot assign %T to *int64", src)
		}
	case *int:
		switch s := src.(type) {
		case int:
			*d = s
		case int64:
			*d = int(s)
		default:
			return fmt.Errorf("cannot assign %T to *int", src)
		}
	case *string:
		s, ok := src.(string)
		if !ok {
			return fmt.Errorf("cannot assign %T to *string", src)
		}
		*d = s
	case *time.Time:
		s, ok := src.(time.Time)
		if !ok {
			return fmt.Errorf("cannot assign %T to *time.Time", src)
		}
		*d = s
	default:
		return fmt.Errorf("unsupported scan destination %T", dst)
	}
	return nil
}

type fakeRow struct {
	vals []any
	err  error
}

func (r *fakeRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	if len(dest) != len(r.vals) {
		return fmt.Errorf("scan expected %d destinations, got %d", len(r.vals), len(dest))
	}
	for i, d := range dest {
		if err := assign(d, r.vals[i]); err != nil {
			return err
		}
	}
	return nil
}

type fakeRows struct {
	rows [][]any
	idx  int
	err  error
}

func (r *fakeRows) Close()                                       {}
func (r *fakeRows) Err() error                                   { return r.err }
func (r *fakeRows) CommandTag() pgconn.CommandTag                { return pgconn.CommandTag{} }
func (r *fakeRows) FieldDescriptions() []pgconn.FieldDescription { return nil }
func (r *fakeRows) Next() bool {
	if r.idx >= len(r.rows) {
		return false
	}
	r.idx++
	return true
}
func (r *fakeRows) Scan(dest ...any) error {
	row := &fakeRow{vals: r.rows[r.idx-1]}
	return row.Scan(dest...)
}
func (r *fakeRows) Values() ([]any, error)  { return r.rows[r.idx-1], nil }
func (r *fakeRows) RawValues() [][]byte     { return nil }
func (r *fakeRows) Conn() *pgx.Conn         { return nil }

type recorded struct {
	sql  string
	args []any
}

// fakeSession scripts query results and records every statement.
type fakeSession struct {
	stmts     []recorded
	rowQueue  []pgx.Row
	rowsQueue []pgx.Rows
	beginErr  error
	tx        *fakeTx
}

func (s *fakeSession) record(sql string, args []any) {
	s.stmts = append(s.stmts, recorded{sql: sql, args: args})
}

func (s *fakeSession) Query(_ context.Context, sql string, args ...any) (pgx.Rows, error) {
	s.record(sql, args)
	if len(s.rowsQueue) == 0 {
		return &fakeRows{}, nil
	}
	rows := s.rowsQueue[0]
	s.rowsQueue = s.rowsQueue[1:]
	return rows, nil
}

func (s *fakeSession) QueryRow(_ context.Context, sql string, args ...any) pgx.Row {
	s.record(sql, args)
	if len(s.rowQueue) == 0 {
		return &fakeRow{err: pgx.ErrNoRows}
	}
	row := s.rowQueue[0]
	s.rowQueue = s.rowQueue[1:]
	return row
}

func (s *fakeSession) Exec(_ context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	s.record(sql, args)
	return pgconn.NewCommandTag("EXEC 1"), nil
}

func (s *fakeSession) Begin(context.Context) (pgx.Tx, error) {
	if s.beginErr != nil {
		return nil, s.beginErr
	}
	if s.tx == nil {
		s.tx = &fakeTx{}
	}
	return s.tx, nil
}

// fakeTx implements the Exec/Query/QueryRow/Commit/Rollback subset the unit
// of work uses; the embedded interface panics on anything else.
type fakeTx struct {
	pgx.Tx
	stmts      []recorded
	rowQueue   []pgx.Row
	execTags   []pgconn.CommandTag
	execErrs   []error
	committed  bool
	rolledBack bool
}

func (t *fakeTx) record(sql string, args []any) {
	t.stmts = append(t.stmts, recorded{sql: sql, args: args})
}

func (t *fakeTx) QueryRow(_ context.Context, sql string, args ...any) pgx.Row {
	t.record(sql, args)
	if len(t.rowQueue) == 0 {
		return &fakeRow{err: pgx.ErrNoRows}
	}
	row := t.rowQueue[0]
	t.rowQueue = t.rowQueue[1:]
	return row
}

func (t *fakeTx) Exec(_ context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	t.record(sql, args)
	var err error
	if len(t.execErrs) > 0 {
		err = t.execErrs[0]
		t.execErrs = t.execErrs[1:]
	}
	tag := pgconn.NewCommandTag("EXEC 1")
	if len(t.execTags) > 0 {
		tag = t.execTags[0]
		t.execTags = t.execTags[1:]
	}
	if err != nil {
		return pgconn.CommandTag{}, err
	}
	return tag, nil
}

func (t *fakeTx) Commit(context.Context) error {
	t.committed = true
	return nil
}

func (t *fakeTx) Rollback(context.Context) error {
	t.rolledBack = true
	return nil
}

func newTestUOW(sess *fakeSession) *UnitOfWork {
	return NewUnitOfWorkSession(sess, nil)
}
