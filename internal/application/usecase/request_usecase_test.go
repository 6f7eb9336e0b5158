package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/subguard-api/internal/application/usecase"
	"github.com/jhoicas/subguard-api/internal/domain"
	"github.com/jhoicas/subguard-api/internal/domain/entity"
	"github.com/jhoicas/subguard-api/internal/domain/repository"
	"github.com/jhoicas/subguard-api/internal/infrastructure/storage"
	"github.com/jhoicas/subguard-api/pkg/logger"
)

func newRequestUC(e *env) *usecase.RequestUseCase {
	return usecase.NewRequestUseCase(storage.NewRequestRepository(e.store), newAssetUC(e), e.audit, testClock, logger.Nop())
}

func TestDecide_RechazoUnaSolaEntrada(t *testing.T) {
	ctx := context.Background()
	e := newEnv()
	uc := newRequestUC(e)

	req, asset, err := uc.Decide(ctx, "Acme", "r2", entity.RequestRejected)
	require.NoError(t, err)
	assert.Nil(t, asset)
	assert.Equal(t, entity.RequestRejected, req.Status)

	logs := e.logs(t)
	require.Len(t, logs, 5)
	assert.Equal(t, "Request Rejected", logs[0].Action)
	assert.Equal(t, "Zoom Enterprise", logs[0].Target)
	assert.Equal(t, "Rejected request for Zoom Enterprise (Rp 5.500.000)", logs[0].Details)

	pending, err := uc.PendingCount(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, pending)
}

func TestDecide_MismaDecisionEsIdempotente(t *testing.T) {
	ctx := context.Background()
	e := newEnv()
	uc := newRequestUC(e)

	_, _, err := uc.Decide(ctx, "Acme", "r2", entity.RequestRejected)
	require.NoError(t, err)
	_, _, err = uc.Decide(ctx, "Acme", "r2", entity.RequestRejected)
	require.NoError(t, err)
	assert.Len(t, e.logs(t), 5, "sin entrada nueva")
}

func TestDecide_DecisionContrariaEsConflicto(t *testing.T) {
	ctx := context.Background()
	uc := newRequestUC(newEnv())

	_, _, err := uc.Decide(ctx, "Acme", "r3", entity.RequestRejected)
	assert.ErrorIs(t, err, domain.ErrConflict, "r3 ya está aprobada")
}

func TestDecide_Errores(t *testing.T) {
	ctx := context.Background()
	uc := newRequestUC(newEnv())

	_, _, err := uc.Decide(ctx, "Acme", "r1", entity.RequestPending)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, _, err = uc.Decide(ctx, "Acme", "zzz", entity.RequestApproved)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDecide_AprobarAltaRegistraActivo(t *testing.T) {
	ctx := context.Background()
	e := newEnv()
	uc := newRequestUC(e)

	req, asset, err := uc.Decide(ctx, "Acme", "r1", entity.RequestApproved)
	require.NoError(t, err)
	assert.Equal(t, entity.RequestApproved, req.Status)
	require.NotNil(t, asset)
	assert.Equal(t, "Jira Premium License", asset.Name)
	assert.Equal(t, entity.StatusApproved, asset.Status)
	assert.Equal(t, entity.CycleOneTime, asset.BillingCycle)
	assert.True(t, decimal.NewFromInt(15_000_000).Equal(asset.Amount))
	assert.Equal(t, "Engineering", asset.Department)
	assert.Equal(t, "2025-11-20", asset.PurchaseDate)

	assert.Len(t, e.assets(t), 6)
	logs := e.logs(t)
	assert.Equal(t, "Request Approved", logs[0].Action)
	assert.Equal(t, "Asset Registered", logs[1].Action)
}

func TestDecide_FalloAlRegistrarDejaPendiente(t *testing.T) {
	ctx := context.Background()
	e := newEnv()
	failing := &failingStore{BlobStore: e.store, key: repository.KeyAssets, err: errors.New("disk full")}
	uc := usecase.NewRequestUseCase(
		storage.NewRequestRepository(e.store),
		usecase.NewAssetUseCase(storage.NewAssetRepository(failing), e.audit),
		e.audit, testClock, logger.Nop(),
	)

	_, _, err := uc.Decide(ctx, "Acme", "r1", entity.RequestApproved)
	require.Error(t, err)

	pending, err := uc.List(ctx, "Pending")
	require.NoError(t, err)
	assert.Len(t, pending, 2, "r1 sigue pendiente")
	assert.Len(t, e.assets(t), 5)

	failing.err = nil
	req, asset, err := uc.Decide(ctx, "Acme", "r1", entity.RequestApproved)
	require.NoError(t, err)
	assert.Equal(t, entity.RequestApproved, req.Status)
	require.NotNil(t, asset)
	assert.Equal(t, "Jira Premium License", asset.Name)
	assert.Len(t, e.assets(t), 6)
}

func TestDecide_ReintentoReutilizaActivoRegistrado(t *testing.T) {
	ctx := context.Background()
	e := newEnv()
	failing := &failingStore{BlobStore: e.store, key: repository.KeyRequests, err: errors.New("disk full")}
	uc := usecase.NewRequestUseCase(storage.NewRequestRepository(failing), newAssetUC(e), e.audit, testClock, logger.Nop())

	_, _, err := uc.Decide(ctx, "Acme", "r1", entity.RequestApproved)
	require.Error(t, err)
	assert.Len(t, e.assets(t), 6, "el activo quedó registrado")

	failing.err = nil
	_, asset, err := uc.Decide(ctx, "Acme", "r1", entity.RequestApproved)
	require.NoError(t, err)
	require.NotNil(t, asset)
	assert.Len(t, e.assets(t), 6, "sin duplicar el activo")
}

func TestDecide_AprobarRenovacionNoCreaActivo(t *testing.T) {
	e := newEnv()
	_, asset, err := newRequestUC(e).Decide(context.Background(), "Acme", "r2", entity.RequestApproved)
	require.NoError(t, err)
	assert.Nil(t, asset)
	assert.Len(t, e.assets(t), 5)
}

func TestListRequests_FiltroPorEstado(t *testing.T) {
	uc := newRequestUC(newEnv())
	all, err := uc.List(context.Background(), "All")
	require.NoError(t, err)
	assert.Len(t, all, 3)

	approved, err := uc.List(context.Background(), "Approved")
	require.NoError(t, err)
	require.Len(t, approved, 1)
	assert.Equal(t, "r3", approved[0].ID)
}
