package blobstore_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/subguard-api/internal/domain"
	"github.com/jhoicas/subguard-api/internal/domain/repository"
	"github.com/jhoicas/subguard-api/internal/infrastructure/blobstore"
)

// exerciseStore valida el contrato común del puerto BlobStore.
func exerciseStore(t *testing.T, s repository.BlobStore) {
	t.Helper()
	ctx := context.Background()

	_, found, err := s.Get(ctx, "assets")
	require.NoError(t, err)
	assert.False(t, found, "clave inexistente")

	require.NoError(t, s.Set(ctx, "assets", `[{"id":"1"}]`))
	v, found, err := s.Get(ctx, "assets")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, `[{"id":"1"}]`, v)

	require.NoError(t, s.Set(ctx, "assets", `[]`))
	v, _, _ = s.Get(ctx, "assets")
	assert.Equal(t, `[]`, v, "Set reemplaza el documento completo")

	require.NoError(t, s.Remove(ctx, "assets"))
	_, found, err = s.Get(ctx, "assets")
	require.NoError(t, err)
	assert.False(t, found)

	assert.NoError(t, s.Remove(ctx, "assets"), "eliminar una clave inexistente no falla")
}

func TestMemoryStore_Contrato(t *testing.T) {
	exerciseStore(t, blobstore.NewMemoryStore())
}

func TestFileStore_Contrato(t *testing.T) {
	s, err := blobstore.NewFileStore(t.TempDir())
	require.NoError(t, err)
	exerciseStore(t, s)
}

func TestFileStore_UnArchivoPorClave(t *testing.T) {
	dir := t.TempDir()
	s, err := blobstore.NewFileStore(dir)
	require.NoError(t, err)
	require.NoError(t, s.Set(context.Background(), "subguard_config", `{}`))

	raw, err := os.ReadFile(filepath.Join(dir, "subguard_config.json"))
	require.NoError(t, err)
	assert.Equal(t, `{}`, string(raw))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "no quedan archivos temporales")
}

func TestFileStore_ClaveInvalida(t *testing.T) {
	s, err := blobstore.NewFileStore(t.TempDir())
	require.NoError(t, err)
	err = s.Set(context.Background(), "../fuera", "x")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestWithPrefix_AntepuestoAClaves(t *testing.T) {
	inner := blobstore.NewMemoryStore()
	s := blobstore.WithPrefix(inner, "")
	exerciseStore(t, s)

	require.NoError(t, s.Set(context.Background(), "logs", "[]"))
	_, found, _ := inner.Get(context.Background(), "subguard_logs")
	assert.True(t, found)
}

func TestRedisStore_Contrato(t *testing.T) {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		t.Skip("REDIS_ADDR no definido")
	}
	s, err := blobstore.NewRedisStore(context.Background(), blobstore.RedisOptions{Addr: addr})
	require.NoError(t, err)
	defer s.Close()
	exerciseStore(t, blobstore.WithPrefix(s, "subguard_test_"))
}
