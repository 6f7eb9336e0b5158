package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/subguard-api/internal/application/audit"
	"github.com/jhoicas/subguard-api/internal/application/dto"
	"github.com/jhoicas/subguard-api/internal/application/usecase"
	"github.com/jhoicas/subguard-api/internal/domain"
	"github.com/jhoicas/subguard-api/internal/domain/entity"
	"github.com/jhoicas/subguard-api/internal/infrastructure/storage"
)

func TestProfileUpdate_UsuarioRegistrado(t *testing.T) {
	ctx := context.Background()
	e := newEnv()
	users := storage.NewCredentialRepository(e.store)
	require.NoError(t, users.Save(ctx, []entity.Credential{
		{User: entity.User{ID: "u-1", Email: "cfo@acme.id", BusinessName: "Acme"}, PasswordHash: "h"},
		{User: entity.User{ID: "u-2", Email: "ops@acme.id", BusinessName: "Ops"}, PasswordHash: "h"},
	}))
	session := storage.NewSessionRepository(e.store)
	uc := usecase.NewProfileUseCase(users, session, e.audit)

	current := entity.User{ID: "u-1", Email: "cfo@acme.id", BusinessName: "Acme"}
	u, err := uc.Update(ctx, current, dto.ProfileUpdateRequest{BusinessName: "Acme Holdings"})
	require.NoError(t, err)
	assert.Equal(t, "Acme Holdings", u.BusinessName)
	assert.Equal(t, "cfo@acme.id", u.Email, "campo vacío se conserva")

	stored, err := users.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Acme Holdings", stored[0].BusinessName)
	assert.Equal(t, "h", stored[0].PasswordHash)

	s, err := session.Current(ctx)
	require.NoError(t, err)
	assert.Equal(t, *u, *s)

	log := e.logs(t)[0]
	assert.Equal(t, audit.ActionProfileUpdated, log.Action)
	assert.Equal(t, "Acme Holdings", log.Actor)

	_, err = uc.Update(ctx, *u, dto.ProfileUpdateRequest{Email: "OPS@acme.id"})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestProfileUpdate_Invitado(t *testing.T) {
	ctx := context.Background()
	e := newEnv()
	uc := usecase.NewProfileUseCase(storage.NewCredentialRepository(e.store), storage.NewSessionRepository(e.store), e.audit)

	guest := entity.User{ID: entity.GuestUserID, Email: entity.GuestEmail, BusinessName: entity.GuestName}
	u, err := uc.Update(ctx, guest, dto.ProfileUpdateRequest{BusinessName: "Demo Corp"})
	require.NoError(t, err)
	assert.Equal(t, "Demo Corp", u.BusinessName)
}
