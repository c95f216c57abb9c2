//go:build unit

package readstore_test

import (
	"context"
	"testing"
	"time"

	"clinic-booking/internal/infra/readstore"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingDB captures the SQL handed to the pool without executing it.
type recordingDB struct {
	sql string
}

func (r *recordingDB) Exec(_ context.Context, sql string, _ ...any) (pgconn.CommandTag, error) {
	r.sql = sql
	return pgconn.CommandTag{}, nil
}

func (r *recordingDB) Query(_ context.Context, sql string, _ ...any) (pgx.Rows, error) {
	r.sql = sql
	return emptyRows{}, nil
}

func (r *recordingDB) QueryRow(_ context.Context, sql string, _ ...any) pgx.Row {
	r.sql = sql
	return noRow{}
}

type emptyRows struct{}

func (emptyRows) Close()                                       {}
func (emptyRows) Err() error                                   { return nil }
func (emptyRows) CommandTag() pgconn.CommandTag                { return pgconn.CommandTag{} }
func (emptyRows) FieldDescriptions() []pgconn.FieldDescription { return nil }
func (emptyRows) Next() bool                                   { return false }
func (emptyRows) Scan(...any) error                            { return nil }
func (emptyRows) Values() ([]any, error)                       { return nil, nil }
func (emptyRows) RawValues() [][]byte                          { return nil }
func (emptyRows) Conn() *pgx.Conn                              { return nil }

type noRow struct{}

func (noRow) Scan(...any) error { return pgx.ErrNoRows }

func TestFindAvailableByDateOrdering(t *testing.T) {
	dbtx := &recordingDB{}
	store := readstore.NewSlotReadStore(dbtx)

	_, err := store.FindAvailableByDate(context.Background(), time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	// Day listings are sorted by consultation start time, names break ties.
	assert.Contains(t, dbtx.sql, "ORDER BY s.start_time, h.name, d.name")
}
