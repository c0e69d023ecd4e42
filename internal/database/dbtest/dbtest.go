// Package dbtest provides in-memory fakes for the database.DBTX and
// database.TxBeginner interfaces so query code can be tested without a
// live Postgres instance.
package dbtest

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Call records one statement sent to the fake
type Call struct {
	SQL  string
	Args []any
}

// FakeDB returns canned rows keyed by a substring of the SQL statement.
// The longest matching key wins. Unmatched statements return no rows.
type FakeDB struct {
	Rows     map[string][][]any
	Errs     map[string]error
	BeginErr error
	Calls    []Call
}

func (f *FakeDB) match(sql string) (rows [][]any, err error) {
	var best string
	for key := range f.Errs {
		if strings.Contains(sql, key) && len(key) > len(best) {
			best = key
		}
	}
	if best != "" {
		return nil, f.Errs[best]
	}
	for key := range f.Rows {
		if strings.Contains(sql, key) && len(key) > len(best) {
			best = key
			rows = f.Rows[key]
		}
	}
	return rows, nil
}

func (f *FakeDB) record(sql string, args []any) {
	f.Calls = append(f.Calls, Call{SQL: sql, Args: args})
}

// Exec implements database.DBTX
func (f *FakeDB) Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error) {
	f.record(sql, arguments)
	_, err := f.match(sql)
	return pgconn.CommandTag{}, err
}

// Query implements database.DBTX
func (f *FakeDB) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	f.record(sql, args)
	rows, err := f.match(sql)
	if err != nil {
		return nil, err
	}
	return &FakeRows{rows: rows, idx: -1}, nil
}

// QueryRow implements database.DBTX
func (f *FakeDB) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	f.record(sql, args)
	rows, err := f.match(sql)
	if err != nil {
		return &fakeRow{err: err}
	}
	if len(rows) == 0 {
		return &fakeRow{err: pgx.ErrNoRows}
	}
	return &fakeRow{values: rows[0]}
}

// Begin implements database.TxBeginner
func (f *FakeDB) Begin(ctx context.Context) (pgx.Tx, error) {
	if f.BeginErr != nil {
		return nil, f.BeginErr
	}
	return &FakeTx{db: f}, nil
}

// scanInto copies canned values into scan destinations
func scanInto(values []any, dest []any) error {
	if len(values) != len(dest) {
		return fmt.Errorf("dbtest: scan expected %d destinations, got %d", len(values), len(dest))
	}
	for i, v := range values {
		switch d := dest[i].(type) {
		case *string:
			s, ok := v.(string)
			if !ok {
				return fmt.Errorf("dbtest: column %d is %T, want string", i, v)
			}
			*d = s
		case *int64:
			switch n := v.(type) {
			case int64:
				*d = n
			case int:
				*d = int64(n)
			default:
				return fmt.Errorf("dbtest: column %d is %T, want int64", i, v)
			}
		case *int:
			n, ok := v.(int)
			if !ok {
				return fmt.Errorf("dbtest: column %d is %T, want int", i, v)
			}
			*d = n
		default:
			return fmt.Errorf("dbtest: unsupported scan destination %T", d)
		}
	}
	return nil
}

// FakeRows implements pgx.Rows over canned values
type FakeRows struct {
	rows    [][]any
	idx     int
	scanErr error
}

func (r *FakeRows) Close()                                       {}
func (r *FakeRows) Err() error                                   { return nil }
func (r *FakeRows) CommandTag() pgconn.CommandTag                { return pgconn.CommandTag{} }
func (r *FakeRows) FieldDescriptions() []pgconn.FieldDescription { return nil }
func (r *FakeRows) RawValues() [][]byte                          { return nil }
func (r *FakeRows) Conn() *pgx.Conn                              { return nil }

func (r *FakeRows) Next() bool {
	r.idx++
	return r.idx < len(r.rows)
}

func (r *FakeRows) Scan(dest ...any) error {
	if r.scanErr != nil {
		return r.scanErr
	}
	return scanInto(r.rows[r.idx], dest)
}

func (r *FakeRows) Values() ([]any, error) {
	return r.rows[r.idx], nil
}

type fakeRow struct {
	values []any
	err    error
}

func (r *fakeRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	return scanInto(r.values, dest)
}

// FakeTx implements pgx.Tx by delegating statements to the FakeDB
type FakeTx struct {
	db         *FakeDB
	Committed  bool
	RolledBack bool
}

func (t *FakeTx) Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error) {
	return t.db.Exec(ctx, sql, arguments...)
}

func (t *FakeTx) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return t.db.Query(ctx, sql, args...)
}

func (t *FakeTx) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	return t.db.QueryRow(ctx, sql, args...)
}

func (t *FakeTx) Commit(ctx context.Context) error {
	t.Committed = true
	return nil
}

func (t *FakeTx) Rollback(ctx context.Context) error {
	if !t.Committed {
		t.RolledBack = true
	}
	return nil
}

func (t *FakeTx) Begin(ctx context.Context) (pgx.Tx, error) {
	return nil, fmt.Errorf("dbtest: nested transactions not supported")
}

func (t *FakeTx) CopyFrom(ctx context.Context, tableName pgx.Identifier, columnNames []string, rowSrc pgx.CopyFromSource) (int64, error) {
	return 0, fmt.Errorf("dbtest: CopyFrom not supported")
}

func (t *FakeTx) SendBatch(ctx context.Context, b *pgx.Batch) pgx.BatchResults {
	panic("dbtest: SendBatch not supported")
}

func (t *FakeTx) LargeObjects() pgx.LargeObjects {
	panic("dbtest: LargeObjects not supported")
}

func (t *FakeTx) Prepare(ctx context.Context, name, sql string) (*pgconn.StatementDescription, error) {
	return nil, fmt.Errorf("dbtest: Prepare not supported")
}

func (t *FakeTx) Conn() *pgx.Conn { return nil }
