// Package auth implementa la autenticación simulada: registro, login, sesión de
// invitado y recuperación con código fijo. No es un modelo de seguridad real.
package auth

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"sync"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/subguard-api/internal/application/dto"
	"github.com/jhoicas/subguard-api/internal/domain"
	"github.com/jhoicas/subguard-api/internal/domain/entity"
	"github.com/jhoicas/subguard-api/internal/domain/repository"
	"github.com/jhoicas/subguard-api/pkg/jwt"
)

// MinPasswordLength longitud mínima de contraseña.
const MinPasswordLength = 6

var resetCodePattern = regexp.MustCompile(`^[0-9]{4}$`)

// Config configuración para tokens y código de recuperación.
type Config struct {
	Secret     string
	ExpMinutes int
	Issuer     string
	ResetCode  string
}

// AuthUseCase casos de uso de autenticación.
type AuthUseCase struct {
	users   repository.CredentialRepository
	session repository.SessionRepository
	cfg     Config
	mu      sync.Mutex
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(users repository.CredentialRepository, session repository.SessionRepository, cfg Config) *AuthUseCase {
	return &AuthUseCase{users: users, session: session, cfg: cfg}
}

// SignUp registra un usuario (email único sin distinguir mayúsculas, bcrypt) e inicia sesión.
func (uc *AuthUseCase) SignUp(ctx context.Context, in dto.SignUpRequest) (*dto.LoginResponse, error) {
	email := strings.TrimSpace(in.Email)
	if email == "" || strings.TrimSpace(in.BusinessName) == "" {
		return nil, fmt.Errorf("email y business_name son obligatorios: %w", domain.ErrInvalidInput)
	}
	if len(in.Password) < MinPasswordLength {
		return nil, fmt.Errorf("la contraseña debe tener al menos %d caracteres: %w", MinPasswordLength, domain.ErrInvalidInput)
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	users, err := uc.users.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("cargar usuarios: %w", err)
	}
	if findByEmail(users, email) >= 0 {
		return nil, domain.ErrEmailAlreadyExists
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash contraseña: %w", err)
	}
	cred := entity.Credential{
		User: entity.User{
			ID:           uuid.New().String(),
			Email:        email,
			BusinessName: strings.TrimSpace(in.BusinessName),
		},
		PasswordHash: string(hash),
	}
	if err := uc.users.Save(ctx, append(users, cred)); err != nil {
		return nil, fmt.Errorf("guardar usuarios: %w", err)
	}
	return uc.startSession(ctx, cred.User)
}

// SignIn verifica email/password y devuelve token + usuario.
func (uc *AuthUseCase) SignIn(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	users, err := uc.users.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("cargar usuarios: %w", err)
	}
	i := findByEmail(users, in.Email)
	if i < 0 {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(users[i].PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	return uc.startSession(ctx, users[i].User)
}

// Guest inicia la sesión de invitado.
func (uc *AuthUseCase) Guest(ctx context.Context) (*dto.LoginResponse, error) {
	return uc.startSession(ctx, entity.User{
		ID:           entity.GuestUserID,
		Email:        entity.GuestEmail,
		BusinessName: entity.GuestName,
	})
}

// ForgotPassword simula el envío del código. La respuesta no revela si la cuenta existe.
func (uc *AuthUseCase) ForgotPassword(_ context.Context, in dto.ForgotPasswordRequest) dto.ForgotPasswordResponse {
	return dto.ForgotPasswordResponse{Sent: true, Email: strings.TrimSpace(in.Email)}
}

// ResetPassword valida el código de 4 dígitos y reemplaza la contraseña.
func (uc *AuthUseCase) ResetPassword(ctx context.Context, in dto.ResetPasswordRequest) error {
	if !resetCodePattern.MatchString(in.Code) || in.Code != uc.cfg.ResetCode {
		return fmt.Errorf("código de recuperación inválido: %w", domain.ErrInvalidInput)
	}
	if len(in.NewPassword) < MinPasswordLength {
		return fmt.Errorf("la contraseña debe tener al menos %d caracteres: %w", MinPasswordLength, domain.ErrInvalidInput)
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	users, err := uc.users.Load(ctx)
	if err != nil {
		return fmt.Errorf("cargar usuarios: %w", err)
	}
	i := findByEmail(users, in.Email)
	if i < 0 {
		return domain.ErrUserNotFound
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash contraseña: %w", err)
	}
	users[i].PasswordHash = string(hash)
	if err := uc.users.Save(ctx, users); err != nil {
		return fmt.Errorf("guardar usuarios: %w", err)
	}
	return nil
}

// Logout cierra la sesión persistida.
func (uc *AuthUseCase) Logout(ctx context.Context) error {
	return uc.session.Clear(ctx)
}

// Me devuelve el usuario de la sesión persistida o ErrUnauthorized.
func (uc *AuthUseCase) Me(ctx context.Context) (*entity.User, error) {
	u, err := uc.session.Current(ctx)
	if err != nil {
		return nil, fmt.Errorf("cargar sesión: %w", err)
	}
	if u == nil {
		return nil, domain.ErrUnauthorized
	}
	return u, nil
}

// Token firma un token para el usuario (p. ej. tras actualizar el perfil).
func (uc *AuthUseCase) Token(u entity.User) (string, error) {
	return jwt.Generate(uc.cfg.Secret, uc.cfg.Issuer, jwt.Identity{
		UserID:       u.ID,
		Email:        u.Email,
		BusinessName: u.BusinessName,
		Guest:        u.ID == entity.GuestUserID,
	}, uc.cfg.ExpMinutes)
}

func (uc *AuthUseCase) startSession(ctx context.Context, u entity.User) (*dto.LoginResponse, error) {
	token, err := uc.Token(u)
	if err != nil {
		return nil, fmt.Errorf("generar token: %w", err)
	}
	if err := uc.session.SetCurrent(ctx, u); err != nil {
		return nil, fmt.Errorf("guardar sesión: %w", err)
	}
	return &dto.LoginResponse{Token: token, User: u}, nil
}

func findByEmail(users []entity.Credential, email string) int {
	email = strings.TrimSpace(email)
	for i, u := range users {
		if strings.EqualFold(u.Email, email) {
			return i
		}
	}
	return -1
}
