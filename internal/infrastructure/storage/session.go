package storage

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jhoicas/subguard-api/internal/domain/entity"
	"github.com/jhoicas/subguard-api/internal/domain/repository"
)

var _ repository.SessionRepository = (*SessionRepo)(nil)

// SessionRepo usuario de la sesión actual bajo la clave "user".
type SessionRepo struct {
	store repository.BlobStore
}

// NewSessionRepository construye el repositorio.
func NewSessionRepository(store repository.BlobStore) *SessionRepo {
	return &SessionRepo{store: store}
}

// Current devuelve nil si no hay sesión guardada.
func (r *SessionRepo) Current(ctx context.Context) (*entity.User, error) {
	raw, found, err := r.store.Get(ctx, repository.KeyUser)
	if err != nil {
		return nil, fmt.Errorf("storage: leer sesión: %w", err)
	}
	if !found {
		return nil, nil
	}
	var u entity.User
	if err := json.Unmarshal([]byte(raw), &u); err != nil {
		return nil, fmt.Errorf("storage: decodificar sesión: %w", err)
	}
	return &u, nil
}

// SetCurrent guarda el usuario de la sesión.
func (r *SessionRepo) SetCurrent(ctx context.Context, u entity.User) error {
	raw, err := json.Marshal(u)
	if err != nil {
		return fmt.Errorf("storage: serializar sesión: %w", err)
	}
	return r.store.Set(ctx, repository.KeyUser, string(raw))
}

// Clear elimina la sesión (logout).
func (r *SessionRepo) Clear(ctx context.Context) error {
	return r.store.Remove(ctx, repository.KeyUser)
}
