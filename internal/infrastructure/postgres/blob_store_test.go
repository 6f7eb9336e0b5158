package postgres_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/subguard-api/internal/infrastructure/postgres"
)

// fakeQuerier simula la tabla kv_blobs en memoria interpretando las tres sentencias del adaptador.
type fakeQuerier struct {
	rows    map[string]string
	execErr error
	stmts   []string
}

func newFakeQuerier() *fakeQuerier { return &fakeQuerier{rows: map[string]string{}} }

func (f *fakeQuerier) Exec(_ context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	f.stmts = append(f.stmts, strings.TrimSpace(sql))
	if f.execErr != nil {
		return pgconn.CommandTag{}, f.execErr
	}
	switch {
	case strings.Contains(sql, "INSERT INTO kv_blobs"):
		f.rows[args[0].(string)] = args[1].(string)
		return pgconn.NewCommandTag("INSERT 0 1"), nil
	case strings.Contains(sql, "DELETE FROM kv_blobs"):
		delete(f.rows, args[0].(string))
		return pgconn.NewCommandTag("DELETE 1"), nil
	}
	return pgconn.NewCommandTag("CREATE TABLE"), nil
}

func (f *fakeQuerier) QueryRow(_ context.Context, _ string, args ...any) pgx.Row {
	v, ok := f.rows[args[0].(string)]
	return fakeRow{value: v, found: ok}
}

type fakeRow struct {
	value string
	found bool
}

func (r fakeRow) Scan(dest ...any) error {
	if !r.found {
		return pgx.ErrNoRows
	}
	*(dest[0].(*string)) = r.value
	return nil
}

func TestBlobStore_Ciclo(t *testing.T) {
	ctx := context.Background()
	q := newFakeQuerier()
	s := postgres.NewBlobStore(q)

	require.NoError(t, s.EnsureSchema(ctx))
	assert.Contains(t, q.stmts[0], "CREATE TABLE IF NOT EXISTS kv_blobs")

	_, found, err := s.Get(ctx, "subguard_assets")
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, s.Set(ctx, "subguard_assets", `[]`))
	v, found, err := s.Get(ctx, "subguard_assets")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, `[]`, v)

	require.NoError(t, s.Remove(ctx, "subguard_assets"))
	_, found, _ = s.Get(ctx, "subguard_assets")
	assert.False(t, found)
}

func TestBlobStore_PropagaErrores(t *testing.T) {
	q := newFakeQuerier()
	q.execErr = errors.New("conexión cerrada")
	s := postgres.NewBlobStore(q)

	err := s.Set(context.Background(), "k", "v")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "conexión cerrada")
}
