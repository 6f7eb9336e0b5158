package usecase

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/jhoicas/subguard-api/internal/application/audit"
	"github.com/jhoicas/subguard-api/internal/application/dto"
	"github.com/jhoicas/subguard-api/internal/domain"
	"github.com/jhoicas/subguard-api/internal/domain/entity"
	"github.com/jhoicas/subguard-api/internal/domain/repository"
)

// ProfileUseCase actualización del perfil del usuario de la sesión.
type ProfileUseCase struct {
	users   repository.CredentialRepository
	session repository.SessionRepository
	audit   *audit.Writer
	mu      sync.Mutex
}

// NewProfileUseCase construye el caso de uso.
func NewProfileUseCase(users repository.CredentialRepository, session repository.SessionRepository, auditWriter *audit.Writer) *ProfileUseCase {
	return &ProfileUseCase{users: users, session: session, audit: auditWriter}
}

// Update cambia nombre comercial y/o email. Los campos vacíos se conservan.
// El invitado solo actualiza la sesión; un usuario registrado también su credencial.
func (uc *ProfileUseCase) Update(ctx context.Context, current entity.User, in dto.ProfileUpdateRequest) (*entity.User, error) {
	updated := current
	if name := strings.TrimSpace(in.BusinessName); name != "" {
		updated.BusinessName = name
	}
	if email := strings.TrimSpace(in.Email); email != "" {
		updated.Email = email
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	if current.ID != entity.GuestUserID {
		users, err := uc.users.Load(ctx)
		if err != nil {
			return nil, fmt.Errorf("cargar usuarios: %w", err)
		}
		i := -1
		for j, u := range users {
			if u.ID == current.ID {
				i = j
			} else if strings.EqualFold(u.Email, updated.Email) {
				return nil, domain.ErrEmailAlreadyExists
			}
		}
		if i < 0 {
			return nil, domain.ErrUserNotFound
		}
		users[i].User = updated
		if err := uc.users.Save(ctx, users); err != nil {
			return nil, fmt.Errorf("guardar usuarios: %w", err)
		}
	}
	if err := uc.session.SetCurrent(ctx, updated); err != nil {
		return nil, fmt.Errorf("guardar sesión: %w", err)
	}
	if _, err := uc.audit.Record(ctx, audit.Entry{
		Action:  audit.ActionProfileUpdated,
		Actor:   updated.BusinessName,
		Target:  updated.Email,
		Details: "Business profile updated.",
	}); err != nil {
		return nil, err
	}
	return &updated, nil
}
