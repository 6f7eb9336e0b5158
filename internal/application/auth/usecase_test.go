package auth_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/subguard-api/internal/application/auth"
	"github.com/jhoicas/subguard-api/internal/application/dto"
	"github.com/jhoicas/subguard-api/internal/domain"
	"github.com/jhoicas/subguard-api/internal/domain/entity"
	"github.com/jhoicas/subguard-api/internal/domain/repository"
	"github.com/jhoicas/subguard-api/internal/infrastructure/blobstore"
	"github.com/jhoicas/subguard-api/internal/infrastructure/storage"
	"github.com/jhoicas/subguard-api/pkg/jwt"
)

const secret = "test-secret"

func newAuth(t *testing.T) (*auth.AuthUseCase, repository.BlobStore) {
	t.Helper()
	store := blobstore.NewMemoryStore()
	uc := auth.NewAuthUseCase(
		storage.NewCredentialRepository(store),
		storage.NewSessionRepository(store),
		auth.Config{Secret: secret, ExpMinutes: 5, Issuer: "subguard", ResetCode: "1234"},
	)
	return uc, store
}

func TestSignUp_InicioDeSesionAutomatico(t *testing.T) {
	ctx := context.Background()
	uc, store := newAuth(t)

	res, err := uc.SignUp(ctx, dto.SignUpRequest{Email: "cfo@acme.id", Password: "secreto1", BusinessName: "Acme"})
	require.NoError(t, err)
	assert.Equal(t, "Acme", res.User.BusinessName)

	id, err := jwt.Parse(secret, res.Token)
	require.NoError(t, err)
	assert.Equal(t, res.User.ID, id.UserID)
	assert.Equal(t, "Acme", id.BusinessName)

	raw, _, err := store.Get(ctx, repository.KeyUsers)
	require.NoError(t, err)
	assert.NotContains(t, raw, "secreto1", "nunca se guarda la contraseña en claro")

	me, err := uc.Me(ctx)
	require.NoError(t, err)
	assert.Equal(t, res.User, *me)
}

func TestSignUp_EmailDuplicadoSinDistinguirMayusculas(t *testing.T) {
	ctx := context.Background()
	uc, _ := newAuth(t)
	_, err := uc.SignUp(ctx, dto.SignUpRequest{Email: "cfo@acme.id", Password: "secreto1", BusinessName: "Acme"})
	require.NoError(t, err)

	_, err = uc.SignUp(ctx, dto.SignUpRequest{Email: "CFO@acme.id", Password: "secreto2", BusinessName: "Otra"})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestSignUp_ContraseñaCorta(t *testing.T) {
	uc, _ := newAuth(t)
	_, err := uc.SignUp(context.Background(), dto.SignUpRequest{Email: "a@b.c", Password: "123", BusinessName: "X"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestSignIn(t *testing.T) {
	ctx := context.Background()
	uc, _ := newAuth(t)
	_, err := uc.SignUp(ctx, dto.SignUpRequest{Email: "cfo@acme.id", Password: "secreto1", BusinessName: "Acme"})
	require.NoError(t, err)
	require.NoError(t, uc.Logout(ctx))

	_, err = uc.SignIn(ctx, dto.LoginRequest{Email: "cfo@acme.id", Password: "mal"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
	_, err = uc.SignIn(ctx, dto.LoginRequest{Email: "nadie@acme.id", Password: "secreto1"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	res, err := uc.SignIn(ctx, dto.LoginRequest{Email: "Cfo@Acme.id", Password: "secreto1"})
	require.NoError(t, err)
	assert.Equal(t, "cfo@acme.id", res.User.Email)
}

func TestGuest(t *testing.T) {
	uc, _ := newAuth(t)
	res, err := uc.Guest(context.Background())
	require.NoError(t, err)
	assert.Equal(t, entity.GuestUserID, res.User.ID)
	assert.Equal(t, entity.GuestName, res.User.BusinessName)

	id, err := jwt.Parse(secret, res.Token)
	require.NoError(t, err)
	assert.True(t, id.Guest)
}

func TestLogout_SinSesion(t *testing.T) {
	ctx := context.Background()
	uc, _ := newAuth(t)
	_, err := uc.Guest(ctx)
	require.NoError(t, err)
	require.NoError(t, uc.Logout(ctx))

	_, err = uc.Me(ctx)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestResetPassword(t *testing.T) {
	ctx := context.Background()
	uc, _ := newAuth(t)
	_, err := uc.SignUp(ctx, dto.SignUpRequest{Email: "cfo@acme.id", Password: "secreto1", BusinessName: "Acme"})
	require.NoError(t, err)

	assert.True(t, uc.ForgotPassword(ctx, dto.ForgotPasswordRequest{Email: "desconocido@x.io"}).Sent,
		"la respuesta no revela si la cuenta existe")

	for _, code := range []string{"0000", "12345", "abcd", ""} {
		err := uc.ResetPassword(ctx, dto.ResetPasswordRequest{Email: "cfo@acme.id", Code: code, NewPassword: "nuevo123"})
		assert.ErrorIs(t, err, domain.ErrInvalidInput, code)
	}

	err = uc.ResetPassword(ctx, dto.ResetPasswordRequest{Email: "nadie@acme.id", Code: "1234", NewPassword: "nuevo123"})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)

	require.NoError(t, uc.ResetPassword(ctx, dto.ResetPasswordRequest{Email: "cfo@acme.id", Code: "1234", NewPassword: "nuevo123"}))
	_, err = uc.SignIn(ctx, dto.LoginRequest{Email: "cfo@acme.id", Password: "nuevo123"})
	assert.NoError(t, err)
}
