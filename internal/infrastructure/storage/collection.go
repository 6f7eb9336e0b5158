// Package storage implementa los repositorios de colecciones sobre un BlobStore:
// cada colección se guarda como un único documento JSON bajo su clave.
package storage

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jhoicas/subguard-api/internal/domain/entity"
	"github.com/jhoicas/subguard-api/internal/domain/repository"
)

var (
	_ repository.AssetRepository      = (*JSONCollection[entity.Asset])(nil)
	_ repository.RequestRepository    = (*JSONCollection[entity.Request])(nil)
	_ repository.AuditLogRepository   = (*JSONCollection[entity.AuditLog])(nil)
	_ repository.TeamRepository       = (*JSONCollection[entity.TeamMember])(nil)
	_ repository.RoleRepository       = (*JSONCollection[entity.Role])(nil)
	_ repository.VendorRepository     = (*JSONCollection[entity.VendorProfile])(nil)
	_ repository.CredentialRepository = (*JSONCollection[entity.Credential])(nil)
)

// JSONCollection colección serializada como arreglo JSON en una clave del almacén.
type JSONCollection[T any] struct {
	store repository.BlobStore
	key   string
	seed  func() []T
}

// NewJSONCollection construye la colección. seed puede ser nil (colección vacía por defecto).
func NewJSONCollection[T any](store repository.BlobStore, key string, seed func() []T) *JSONCollection[T] {
	return &JSONCollection[T]{store: store, key: key, seed: seed}
}

// Load lee la colección; si la clave no existe devuelve la semilla.
func (c *JSONCollection[T]) Load(ctx context.Context) ([]T, error) {
	raw, found, err := c.store.Get(ctx, c.key)
	if err != nil {
		return nil, fmt.Errorf("storage: leer %s: %w", c.key, err)
	}
	if !found {
		if c.seed == nil {
			return []T{}, nil
		}
		return c.seed(), nil
	}
	var items []T
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		return nil, fmt.Errorf("storage: decodificar %s: %w", c.key, err)
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}

// Save reescribe la colección completa.
func (c *JSONCollection[T]) Save(ctx context.Context, items []T) error {
	if items == nil {
		items = []T{}
	}
	raw, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("storage: serializar %s: %w", c.key, err)
	}
	if err := c.store.Set(ctx, c.key, string(raw)); err != nil {
		return fmt.Errorf("storage: guardar %s: %w", c.key, err)
	}
	return nil
}

// ── Constructores por colección ──────────────────────────────────────────────

// NewAssetRepository registro de activos con semilla.
func NewAssetRepository(store repository.BlobStore) *JSONCollection[entity.Asset] {
	return NewJSONCollection(store, repository.KeyAssets, SeedAssets)
}

// NewRequestRepository cola de solicitudes con semilla.
func NewRequestRepository(store repository.BlobStore) *JSONCollection[entity.Request] {
	return NewJSONCollection(store, repository.KeyRequests, SeedRequests)
}

// NewAuditLogRepository historial con semilla.
func NewAuditLogRepository(store repository.BlobStore) *JSONCollection[entity.AuditLog] {
	return NewJSONCollection(store, repository.KeyLogs, SeedLogs)
}

// NewTeamRepository equipo con semilla.
func NewTeamRepository(store repository.BlobStore) *JSONCollection[entity.TeamMember] {
	return NewJSONCollection(store, repository.KeyTeam, SeedTeam)
}

// NewRoleRepository roles con semilla.
func NewRoleRepository(store repository.BlobStore) *JSONCollection[entity.Role] {
	return NewJSONCollection(store, repository.KeyRoles, SeedRoles)
}

// NewVendorRepository fichas de proveedores, vacía por defecto.
func NewVendorRepository(store repository.BlobStore) *JSONCollection[entity.VendorProfile] {
	return NewJSONCollection[entity.VendorProfile](store, repository.KeyVendors, nil)
}

// NewCredentialRepository usuarios registrados, vacía por defecto.
func NewCredentialRepository(store repository.BlobStore) *JSONCollection[entity.Credential] {
	return NewJSONCollection[entity.Credential](store, repository.KeyUsers, nil)
}
