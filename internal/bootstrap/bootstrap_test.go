package bootstrap_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/subguard-api/internal/bootstrap"
	"github.com/jhoicas/subguard-api/internal/domain/repository"
	"github.com/jhoicas/subguard-api/pkg/config"
	"github.com/jhoicas/subguard-api/pkg/logger"
)

func TestOpenStore_ArchivoConPrefijo(t *testing.T) {
	dir := t.TempDir()
	cfg := &config.Config{Storage: config.StorageConfig{Backend: config.StorageFile, Dir: dir, Prefix: "subguard_"}}

	store, closeFn, err := bootstrap.OpenStore(context.Background(), cfg)
	require.NoError(t, err)
	defer closeFn()

	require.NoError(t, store.Set(context.Background(), repository.KeyAssets, "[]"))
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Contains(t, filepath.Base(entries[0].Name()), "subguard_assets")
}

func TestOpenStore_BackendDesconocido(t *testing.T) {
	cfg := &config.Config{Storage: config.StorageConfig{Backend: "s3"}}
	_, closeFn, err := bootstrap.OpenStore(context.Background(), cfg)
	assert.Error(t, err)
	assert.NotPanics(t, closeFn)
}

func TestBuild_RegistroSemillaCompartido(t *testing.T) {
	cfg := &config.Config{Storage: config.StorageConfig{Backend: config.StorageMemory}}
	store, closeFn, err := bootstrap.OpenStore(context.Background(), cfg)
	require.NoError(t, err)
	defer closeFn()

	svc := bootstrap.Build(store, bootstrap.Options{})
	all, err := svc.Assets.All(context.Background())
	require.NoError(t, err)
	assert.Len(t, all, 5)

	_, err = svc.Assets.QuickRenew(context.Background(), "Tester", "1")
	require.NoError(t, err)

	// Otra composición sobre el mismo almacén ve el cambio.
	again := bootstrap.Build(store, bootstrap.Options{})
	a, err := again.Assets.Get(context.Background(), "1")
	require.NoError(t, err)
	assert.Equal(t, "2026-01-12", a.NextRenewal)
}

func TestNewCompleter_SinCredencialesDeshabilitaIA(t *testing.T) {
	llm, closeFn := bootstrap.NewCompleter(context.Background(), config.AIConfig{Provider: config.AIProviderAnthropic}, logger.Nop())
	defer closeFn()
	assert.Nil(t, llm)

	llm, closeFn2 := bootstrap.NewCompleter(context.Background(), config.AIConfig{Provider: config.AIProviderNone}, logger.Nop())
	defer closeFn2()
	assert.Nil(t, llm)
}
