package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/jhoicas/subguard-api/internal/domain/repository"
)

var _ repository.BlobStore = (*BlobStore)(nil)

// Querier subconjunto de pgxpool.Pool / pgx.Tx que usa el adaptador.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

const (
	createBlobTableSQL = `
		CREATE TABLE IF NOT EXISTS kv_blobs (
			key        TEXT PRIMARY KEY,
			value      TEXT NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`
	selectBlobSQL = `SELECT value FROM kv_blobs WHERE key = $1`
	upsertBlobSQL = `
		INSERT INTO kv_blobs (key, value, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = now()`
	deleteBlobSQL = `DELETE FROM kv_blobs WHERE key = $1`
)

// BlobStore implementación del puerto BlobStore sobre la tabla kv_blobs.
type BlobStore struct {
	q Querier
}

// NewBlobStore construye el adaptador con un pool o una transacción.
func NewBlobStore(q Querier) *BlobStore {
	return &BlobStore{q: q}
}

// EnsureSchema crea la tabla si no existe.
func (s *BlobStore) EnsureSchema(ctx context.Context) error {
	if _, err := s.q.Exec(ctx, createBlobTableSQL); err != nil {
		return fmt.Errorf("crear tabla kv_blobs: %w", err)
	}
	return nil
}

func (s *BlobStore) Get(ctx context.Context, key string) (string, bool, error) {
	var value string
	err := s.q.QueryRow(ctx, selectBlobSQL, key).Scan(&value)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("get blob %s: %w", key, err)
	}
	return value, true, nil
}

func (s *BlobStore) Set(ctx context.Context, key, value string) error {
	if _, err := s.q.Exec(ctx, upsertBlobSQL, key, value); err != nil {
		return fmt.Errorf("upsert blob %s: %w", key, err)
	}
	return nil
}

func (s *BlobStore) Remove(ctx context.Context, key string) error {
	if _, err := s.q.Exec(ctx, deleteBlobSQL, key); err != nil {
		return fmt.Errorf("delete blob %s: %w", key, err)
	}
	return nil
}
