package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/jhoicas/subguard-api/internal/application/audit"
	"github.com/jhoicas/subguard-api/internal/application/ports"
	"github.com/jhoicas/subguard-api/internal/domain/entity"
	"github.com/jhoicas/subguard-api/internal/domain/repository"
	"github.com/jhoicas/subguard-api/internal/infrastructure/blobstore"
	"github.com/jhoicas/subguard-api/internal/infrastructure/storage"
)

var testNow = time.Date(2025, 11, 20, 10, 0, 0, 0, time.UTC)

var testClock = ports.ClockFunc(func() time.Time { return testNow })

// env registro en memoria con datos semilla compartido por los casos de uso.
type env struct {
	store repository.BlobStore
	audit *audit.Writer
}

func newEnv() *env {
	store := blobstore.NewMemoryStore()
	return &env{
		store: store,
		audit: audit.NewWriter(storage.NewAuditLogRepository(store), testClock),
	}
}

func (e *env) logs(t *testing.T) []entity.AuditLog {
	t.Helper()
	logs, err := storage.NewAuditLogRepository(e.store).Load(context.Background())
	require.NoError(t, err)
	return logs
}

func (e *env) assets(t *testing.T) []entity.Asset {
	t.Helper()
	assets, err := storage.NewAssetRepository(e.store).Load(context.Background())
	require.NoError(t, err)
	return assets
}

// failingStore falla las escrituras de una clave mientras err no sea nil.
type failingStore struct {
	repository.BlobStore
	key string
	err error
}

func (s *failingStore) Set(ctx context.Context, key, value string) error {
	if key == s.key && s.err != nil {
		return s.err
	}
	return s.BlobStore.Set(ctx, key, value)
}
